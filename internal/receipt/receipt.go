// Package receipt renders a processed payment as a QR code image.
package receipt

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/skip2/go-qrcode"

	"github.com/mesh-intelligence/bistro/pkg/types"
)

// DefaultSize is the edge length of the PNG in pixels.
const DefaultSize = 256

// Generator encodes payment receipts as PNG QR codes.
type Generator struct {
	Size int
}

// Content is the text carried by the QR code. Only completed payments have
// a receipt.
func Content(p *types.Payment) (string, error) {
	if p == nil {
		return "", fmt.Errorf("%w: payment is required", types.ErrPrecondition)
	}
	if p.Status() != types.PaymentCompleted || p.ProcessedAt() == nil {
		return "", fmt.Errorf("%w: payment %s is %s, not completed", types.ErrInvalidState, p.ID(), p.Status())
	}
	fields := []string{
		"bistro-receipt",
		"payment=" + p.ID(),
		"order=" + p.OrderID(),
		"method=" + string(p.Method()),
		"amount=" + p.Amount().StringFixed(2),
		"tax=" + p.Tax().StringFixed(2),
		"total=" + p.TotalWithTax().StringFixed(2),
		"paid=" + p.ProcessedAt().UTC().Format(time.RFC3339),
	}
	return strings.Join(fields, "|"), nil
}

// Encode returns the receipt for p as PNG bytes.
func (g Generator) Encode(p *types.Payment) ([]byte, error) {
	content, err := Content(p)
	if err != nil {
		return nil, err
	}
	size := g.Size
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}

// WriteFile writes the receipt for p to path.
func (g Generator) WriteFile(p *types.Payment, path string) error {
	png, err := g.Encode(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("writing receipt %s: %w", path, err)
	}
	return nil
}
