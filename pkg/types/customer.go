package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Customer is a guest of the restaurant, either a *Member or a *NonMember.
// A customer's reservations are appended only through Table.Reserve, which
// writes the table side and the customer side together.
type Customer interface {
	FullName() string
	CustomerID() string
	Email() string
	Reservations() []*Reservation

	addReservation(r *Reservation)
}

// customer carries the state common to members and non-members.
type customer struct {
	Person
	id           string
	email        string
	reservations []*Reservation
}

func newCustomer(p Person, email string) (customer, error) {
	if err := p.Validate(); err != nil {
		return customer{}, err
	}
	return customer{Person: p, id: NewID(), email: strings.TrimSpace(email)}, nil
}

// CustomerID returns the id reservations use to refer back to the customer.
func (c *customer) CustomerID() string { return c.id }

// Email returns the customer's email address, which may be empty.
func (c *customer) Email() string { return c.email }

// Reservations returns the customer's reservations in booking order.
func (c *customer) Reservations() []*Reservation {
	out := make([]*Reservation, len(c.reservations))
	copy(out, c.reservations)
	return out
}

func (c *customer) addReservation(r *Reservation) {
	c.reservations = append(c.reservations, r)
}

// MakePayment creates a payment for order and processes it immediately.
func (c *customer) MakePayment(order *Order, method PaymentMethod, amount decimal.Decimal) (*Payment, error) {
	if order == nil {
		return nil, preconditionf("order is required")
	}
	p, err := NewPayment(order.ID(), amount, method)
	if err != nil {
		return nil, err
	}
	if err := p.ProcessPayment(); err != nil {
		return nil, err
	}
	return p, nil
}

// ViewMenu returns the dishes currently on menu.
func (c *customer) ViewMenu(menu *Menu) []*Dish {
	if menu == nil {
		return nil
	}
	return menu.Dishes()
}

// placeOrder opens an order for c at table and adds lines in one batch.
func placeOrder(c Customer, table *Table, lines []*OrderLine) (*Order, error) {
	order, err := NewOrder(c, table)
	if err != nil {
		return nil, err
	}
	if err := order.AddDishes(lines); err != nil {
		return nil, err
	}
	return order, nil
}

// isNilCustomer catches typed nil pointers stored in the interface.
func isNilCustomer(c Customer) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *Member:
		return v == nil
	case *NonMember:
		return v == nil
	}
	return false
}

// creditsPerOrder is the loyalty credit granted for each completed order.
const creditsPerOrder = 1

// Member is a customer enrolled in the loyalty program.
type Member struct {
	customer
	credits    int
	creditRate decimal.Decimal
}

// NewMember returns a member with the given credit balance and the money
// value of one credit.
func NewMember(p Person, email string, credits int, creditRate decimal.Decimal) (*Member, error) {
	if credits < 0 {
		return nil, validationf("credits must not be negative")
	}
	if creditRate.IsNegative() {
		return nil, validationf("credit rate must not be negative")
	}
	c, err := newCustomer(p, email)
	if err != nil {
		return nil, err
	}
	return &Member{customer: c, credits: credits, creditRate: creditRate}, nil
}

// Credits returns the current credit balance.
func (m *Member) Credits() int { return m.credits }

// CreditRate returns the money value of one credit.
func (m *Member) CreditRate() decimal.Decimal { return m.creditRate }

// UseCredits spends the whole balance against amount. With a zero balance
// amount is returned unchanged. Otherwise the discount is credits × rate, the
// balance drops to zero, and the result is not floored at zero.
func (m *Member) UseCredits(amount decimal.Decimal) decimal.Decimal {
	if m.credits <= 0 {
		return amount
	}
	discount := decimal.NewFromInt(int64(m.credits)).Mul(m.creditRate)
	m.credits = 0
	return amount.Sub(discount)
}

// AddOrderCredit grants the loyalty credit for a completed order.
func (m *Member) AddOrderCredit() {
	m.credits += creditsPerOrder
}

// PlaceOrder opens an order at table holding lines.
func (m *Member) PlaceOrder(table *Table, lines []*OrderLine) (*Order, error) {
	return placeOrder(m, table, lines)
}

// NonMember is a customer outside the loyalty program.
type NonMember struct {
	customer
}

// NewNonMember returns a guest customer. email may be empty.
func NewNonMember(p Person, email string) (*NonMember, error) {
	c, err := newCustomer(p, email)
	if err != nil {
		return nil, err
	}
	return &NonMember{customer: c}, nil
}

// PlaceOrder opens an order at table holding lines.
func (n *NonMember) PlaceOrder(table *Table, lines []*OrderLine) (*Order, error) {
	return placeOrder(n, table, lines)
}

// PromoteToMember returns a Member with the same identity, customer id and
// reservations and an empty credit balance. The customer must have an email.
// The Member is a separate value: reservations booked later on n do not show
// up on it, so n should no longer be used once promoted.
func (n *NonMember) PromoteToMember(initialRate decimal.Decimal) (*Member, error) {
	if n.email == "" {
		return nil, preconditionf("promotion requires an email")
	}
	if initialRate.IsNegative() {
		return nil, validationf("credit rate must not be negative")
	}
	c := n.customer
	c.reservations = n.Reservations()
	return &Member{customer: c, creditRate: initialRate}, nil
}
