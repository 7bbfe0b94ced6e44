package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberUseCredits(t *testing.T) {
	m := newTestMember(t, 5, "2.5")

	got := m.UseCredits(dec("100"))
	assert.True(t, dec("87.5").Equal(got), "got %s", got)
	assert.Equal(t, 0, m.Credits())

	again := m.UseCredits(dec("100"))
	assert.True(t, dec("100").Equal(again), "zero balance must return the input, got %s", again)
}

func TestMemberUseCreditsIsNotFloored(t *testing.T) {
	m := newTestMember(t, 10, "3")

	got := m.UseCredits(dec("20"))
	assert.True(t, dec("-10").Equal(got), "got %s", got)
	assert.Equal(t, 0, m.Credits())
}

func TestMemberAddOrderCredit(t *testing.T) {
	m := newTestMember(t, 0, "1")
	m.AddOrderCredit()
	m.AddOrderCredit()
	assert.Equal(t, 2, m.Credits())
}

func TestNewMemberValidation(t *testing.T) {
	p := newTestPerson(t, "Jane", "Smith")

	_, err := NewMember(p, "", -1, dec("1"))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewMember(p, "", 0, dec("-0.5"))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewMember(Person{FirstName: "Jane"}, "", 0, dec("1"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNonMemberPromoteToMember(t *testing.T) {
	t.Run("requires email", func(t *testing.T) {
		n, err := NewNonMember(newTestPerson(t, "Bob", "Wilson"), "   ")
		require.NoError(t, err)

		m, err := n.PromoteToMember(dec("1.5"))
		assert.ErrorIs(t, err, ErrPrecondition)
		assert.Nil(t, m)
	})

	t.Run("carries identity and reservations", func(t *testing.T) {
		n, err := NewNonMember(newTestPerson(t, "Bob", "Wilson"), "bob@example.com")
		require.NoError(t, err)
		table := newTestTable(t, 1, 4)
		r, err := NewReservation("r-1", Date(2024, 6, 1), 2)
		require.NoError(t, err)
		ok, err := table.Reserve(n, r)
		require.NoError(t, err)
		require.True(t, ok)

		m, err := n.PromoteToMember(dec("1.5"))
		require.NoError(t, err)
		assert.Equal(t, n.FullName(), m.FullName())
		assert.Equal(t, n.CustomerID(), m.CustomerID())
		assert.Equal(t, "bob@example.com", m.Email())
		assert.Equal(t, 0, m.Credits())
		assert.True(t, dec("1.5").Equal(m.CreditRate()))
		assert.Equal(t, []*Reservation{r}, m.Reservations())
	})
}

func TestCustomerPlaceOrderAndPay(t *testing.T) {
	m := newTestMember(t, 0, "1")
	table := newTestTable(t, 1, 4)
	pizza := newTestDish(t, "Pizza", "14.50")
	line, err := NewOrderLine("Pizza Order", pizza, 2)
	require.NoError(t, err)

	order, err := m.PlaceOrder(table, []*OrderLine{line})
	require.NoError(t, err)
	assert.Equal(t, Customer(m), order.Customer())
	assert.Same(t, table, order.Table())
	assert.True(t, dec("29").Equal(order.TotalAmount()))

	payment, err := m.MakePayment(order, MethodCard, order.TotalAmount())
	require.NoError(t, err)
	assert.Equal(t, order.ID(), payment.OrderID())
	assert.Equal(t, PaymentCompleted, payment.Status())
	assert.NotNil(t, payment.ProcessedAt())

	_, err = m.MakePayment(nil, MethodCard, dec("1"))
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestCustomerViewMenu(t *testing.T) {
	n, err := NewNonMember(newTestPerson(t, "Ann", "Lee"), "")
	require.NoError(t, err)
	menu, err := NewMenu("Main", "Dinner", []string{"EN"})
	require.NoError(t, err)
	pasta := newTestDish(t, "Pasta", "25")
	_, err = menu.AddDish(pasta)
	require.NoError(t, err)

	assert.Equal(t, []*Dish{pasta}, n.ViewMenu(menu))
	assert.Nil(t, n.ViewMenu(nil))
}
