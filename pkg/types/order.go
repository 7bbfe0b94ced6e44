package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine is one dish ordered in some quantity.
type OrderLine struct {
	name     string
	dish     *Dish
	quantity int
}

// NewOrderLine requires a dish, a name and a positive quantity.
func NewOrderLine(name string, dish *Dish, quantity int) (*OrderLine, error) {
	if dish == nil {
		return nil, preconditionf("dish is required")
	}
	if err := requireText("line name", name); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, validationf("quantity must be positive")
	}
	return &OrderLine{name: name, dish: dish, quantity: quantity}, nil
}

func (l *OrderLine) Name() string { return l.name }
func (l *OrderLine) Dish() *Dish { return l.dish }
func (l *OrderLine) Quantity() int { return l.quantity }

// Total is the dish's current price times the quantity.
func (l *OrderLine) Total() decimal.Decimal {
	return l.dish.Price().Mul(decimal.NewFromInt(int64(l.quantity)))
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Order states. Orders only move forward from pending to completed.
const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
)

// Order is a customer's order at a table.
type Order struct {
	id        string
	createdAt time.Time
	status    OrderStatus
	customer  Customer
	table     *Table
	lines     []*OrderLine
}

// NewOrder opens a pending order. Customer and table are required.
func NewOrder(customer Customer, table *Table) (*Order, error) {
	if isNilCustomer(customer) {
		return nil, preconditionf("customer is required")
	}
	if table == nil {
		return nil, preconditionf("table is required")
	}
	return &Order{
		id:        NewID(),
		createdAt: time.Now().UTC(),
		status:    OrderPending,
		customer:  customer,
		table:     table,
	}, nil
}

func (o *Order) ID() string { return o.id }

// CreatedAt is the UTC time the order was opened.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

func (o *Order) Status() OrderStatus { return o.status }

// Customer is who placed the order.
func (o *Order) Customer() Customer { return o.customer }

// Table is where the order is served.
func (o *Order) Table() *Table { return o.table }

// Lines returns the order lines in the order they were added.
func (o *Order) Lines() []*OrderLine {
	out := make([]*OrderLine, len(o.lines))
	copy(out, o.lines)
	return out
}

// TotalAmount sums the line totals. It is computed on every call.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.lines {
		total = total.Add(l.Total())
	}
	return total
}

// AddDish appends one line.
func (o *Order) AddDish(line *OrderLine) error {
	if line == nil {
		return preconditionf("order line is required")
	}
	o.lines = append(o.lines, line)
	return nil
}

// AddDishes appends lines as one batch. A nil slice is ErrPrecondition; a nil
// element is ErrValidation, and then no line is added.
func (o *Order) AddDishes(lines []*OrderLine) error {
	if lines == nil {
		return preconditionf("order lines are required")
	}
	for i, l := range lines {
		if l == nil {
			return validationf("order line %d is nil", i)
		}
	}
	o.lines = append(o.lines, lines...)
	return nil
}

// CompleteOrder moves a pending order to completed. Completing twice returns
// ErrInvalidState.
func (o *Order) CompleteOrder() error {
	if o.status == OrderCompleted {
		return invalidStatef("order %s is already completed", o.id)
	}
	o.status = OrderCompleted
	return nil
}
