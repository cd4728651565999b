package receipt

// Header is the store block printed at the top of a receipt, taken from the
// store settings.
type Header struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	LogoURL   string `json:"logo_url,omitempty"`
}

// Item is one line item on the receipt.
type Item struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object assembled from order and settings data after a
// completed sale. It is never stored; rendering (PDF, print, email) is the
// consumer's concern.
type Receipt struct {
	Header        Header  `json:"header"`
	OrderID       int64   `json:"order_id"`
	Date          string  `json:"date"` // RFC 3339
	CustomerName  string  `json:"customer_name"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	Items         []Item  `json:"items"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
}
