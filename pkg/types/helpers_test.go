package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestPerson(t *testing.T, first, last string) Person {
	t.Helper()
	p, err := NewPerson(first, last, Date(1990, 5, 15), "555-1234")
	require.NoError(t, err)
	return p
}

func newTestMember(t *testing.T, credits int, rate string) *Member {
	t.Helper()
	m, err := NewMember(newTestPerson(t, "Jane", "Smith"), "jane@example.com", credits, dec(rate))
	require.NoError(t, err)
	return m
}

func newTestDish(t *testing.T, name, price string) *Dish {
	t.Helper()
	d, err := NewDish(name, "Italian", true, false, dec(price), []string{"Salt", "Pepper"})
	require.NoError(t, err)
	return d
}

func newTestTable(t *testing.T, number, seats int) *Table {
	t.Helper()
	tbl, err := NewTable(number, seats, DefaultTableType)
	require.NoError(t, err)
	return tbl
}

func newTestEmployee(t *testing.T) Employee {
	t.Helper()
	work, err := NewWorkDetails("Dining", "Evening", Date(2022, 1, 10))
	require.NoError(t, err)
	profile, err := NewExperiencedProfile(5, "Chef Gomez")
	require.NoError(t, err)
	e, err := NewEmployee(newTestPerson(t, "Mustafa", "Atalan"), work, profile)
	require.NoError(t, err)
	return e
}
