package settings

// StoreSettings is the single-row store configuration. TaxRate feeds the cart
// engine's derived totals; the header fields feed receipts.
type StoreSettings struct {
	ID        int64   `json:"id"`
	StoreName string  `json:"store_name"`
	Address   string  `json:"address,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Email     string  `json:"email,omitempty"`
	LogoURL   string  `json:"logo_url,omitempty"`
	TaxRate   float64 `json:"tax_rate"`
	Currency  string  `json:"currency"`
}

// UpdateSettingsRequest holds the updatable fields.
type UpdateSettingsRequest struct {
	StoreName string  `json:"store_name"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	LogoURL   string  `json:"logo_url"`
	TaxRate   float64 `json:"tax_rate"`
	Currency  string  `json:"currency"`
}
