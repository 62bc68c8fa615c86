package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is the checkout summary handed to transaction submission.
// It is NOT a database entity: it is composed from the cart at checkout time.
type Sale struct {
	ID          uuid.UUID       `json:"id"`
	RegisterID  uuid.UUID       `json:"register_id"`
	InvoiceNo   string          `json:"invoice_no"`
	Currency    string          `json:"currency"`
	PaymentType string          `json:"payment_type,omitempty"`
	Items       []LineItem      `json:"items"`
	Discount    DiscountConfig  `json:"discount"`
	Tax         TaxConfig       `json:"tax"`
	Pricing     PricingResult   `json:"pricing"`
	Paid        decimal.Decimal `json:"paid"`
	Due         decimal.Decimal `json:"due"`
	Change      decimal.Decimal `json:"change"`
	CreatedAt   time.Time       `json:"created_at"`
}

// IsSettled reports whether the payment covers the final total
func (s *Sale) IsSettled() bool {
	return s.Due.IsZero()
}
