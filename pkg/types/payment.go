package types

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a payment is made.
type PaymentMethod string

// Payment methods.
const (
	MethodCard PaymentMethod = "card"
	MethodCash PaymentMethod = "cash"
)

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

// Payment states. Only a completed payment can be refunded.
const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Tax rate bounds and default.
var (
	DefaultTaxRate = decimal.RequireFromString("0.08")
	MaxTaxRate     = decimal.RequireFromString("0.30")
)

// The tax rate is shared by every payment in the process.
var (
	taxMu   sync.RWMutex
	taxRate = DefaultTaxRate
)

// TaxRate returns the tax rate applied to payments.
func TaxRate() decimal.Decimal {
	taxMu.RLock()
	defer taxMu.RUnlock()
	return taxRate
}

// ChangeTaxRate sets the tax rate for all payments. The rate must lie in
// [0, MaxTaxRate].
func ChangeTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(MaxTaxRate) {
		return validationf("tax rate %s outside [0, %s]", rate, MaxTaxRate)
	}
	taxMu.Lock()
	taxRate = rate
	taxMu.Unlock()
	return nil
}

// Payment settles an order, which it refers to by id only.
type Payment struct {
	id          string
	orderID     string
	amount      decimal.Decimal
	method      PaymentMethod
	status      PaymentStatus
	processedAt *time.Time
}

// NewPayment returns a pending payment of amount for the order with orderID.
func NewPayment(orderID string, amount decimal.Decimal, method PaymentMethod) (*Payment, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, preconditionf("order id is required")
	}
	if !amount.IsPositive() {
		return nil, validationf("amount must be positive")
	}
	if method != MethodCard && method != MethodCash {
		return nil, validationf("unknown payment method %q", method)
	}
	return &Payment{
		id:      NewID(),
		orderID: orderID,
		amount:  amount,
		method:  method,
		status:  PaymentPending,
	}, nil
}

func (p *Payment) ID() string { return p.id }

// OrderID is the id of the order being paid.
func (p *Payment) OrderID() string { return p.orderID }

// Amount is the amount charged before tax.
func (p *Payment) Amount() decimal.Decimal { return p.amount }

func (p *Payment) Method() PaymentMethod { return p.method }
func (p *Payment) Status() PaymentStatus { return p.status }

// ProcessedAt is when the payment completed; nil until then.
func (p *Payment) ProcessedAt() *time.Time { return p.processedAt }

// Tax is the amount times the current tax rate, rounded to cents.
func (p *Payment) Tax() decimal.Decimal {
	return p.amount.Mul(TaxRate()).Round(2)
}

// TotalWithTax is the amount plus Tax.
func (p *Payment) TotalWithTax() decimal.Decimal {
	return p.amount.Add(p.Tax())
}

// ProcessPayment completes the payment and stamps the time.
// Returns ErrInvalidState when it is already completed or refunded.
func (p *Payment) ProcessPayment() error {
	if p.status != PaymentPending {
		return invalidStatef("payment %s is %s", p.id, p.status)
	}
	now := time.Now().UTC()
	p.status = PaymentCompleted
	p.processedAt = &now
	return nil
}

// RefundPayment refunds a completed payment.
// Returns ErrInvalidState from any other state.
func (p *Payment) RefundPayment() error {
	if p.status != PaymentCompleted {
		return invalidStatef("payment %s is %s, not completed", p.id, p.status)
	}
	p.status = PaymentRefunded
	return nil
}

// AdjustAmount replaces the amount, which must be positive.
func (p *Payment) AdjustAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return validationf("amount must be positive")
	}
	p.amount = amount
	return nil
}
