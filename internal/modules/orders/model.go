package orders

import "time"

// Order is a completed sale as written by the complete_sale operation. Rows
// are never created through this module; it is the read model for the order
// history screen and for receipts.
type Order struct {
	ID            int64     `json:"id"`
	CustomerID    *int64    `json:"customer_id,omitempty"`
	CustomerName  string    `json:"customer_name"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	TotalAmount   float64   `json:"total_amount"`
	ItemsCount    int       `json:"items_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// Item is one order line joined with its product name.
type Item struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"product_name"`
	ImageURL    string  `json:"image_url,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// WalkInName labels orders that have no customer record attached.
const WalkInName = "Walk-in"
