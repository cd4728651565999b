package checkout

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is how the sale is paid at the counter.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// Status is the per-session checkout state.
type Status string

const (
	// StatusIdle: no checkout in progress, cart freely mutable.
	StatusIdle Status = "idle"
	// StatusAwaitingPayment: checkout requested, waiting for a payment
	// method or a cancel.
	StatusAwaitingPayment Status = "awaiting_payment"
	// StatusSubmitting: the atomic sale call is in flight. Exactly one
	// submission may be in this state per session.
	StatusSubmitting Status = "submitting"
	// StatusSucceeded: the store assigned an order id and the cart was
	// cleared.
	StatusSucceeded Status = "succeeded"
)

// SaleItem is one line of the sale request, snapshotted from the cart at
// submission time.
type SaleItem struct {
	VariantID int64   `json:"variant_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// SaleRequest is handed to the atomic sale operation. It exists for the
// duration of one checkout attempt and is never retried automatically.
// Reference identifies the attempt in logs.
type SaleRequest struct {
	Reference     uuid.UUID     `json:"reference"`
	CustomerID    *int64        `json:"customer_id"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Items         []SaleItem    `json:"items"`
}

// Confirmation is the receipt-ready outcome of a successful sale.
type Confirmation struct {
	OrderID       int64         `json:"order_id"`
	CustomerName  string        `json:"customer_name"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Total         float64       `json:"total"`
	CompletedAt   time.Time     `json:"completed_at"`
}

// Customer is one roster entry used for reference resolution.
type Customer struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}

func (m PaymentMethod) valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}
