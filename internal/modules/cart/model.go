package cart

// DefaultTaxRate is applied when store_settings has no row yet.
const DefaultTaxRate = 0.16

// Product is the catalog snapshot handed to AddItem. VariantID identifies the
// sellable unit (a product variant, not the parent product); UnitPrice is the
// price at the moment of adding and is not updated afterwards.
type Product struct {
	VariantID int64   `json:"variant_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// Line is one entry in the cart: a variant plus the quantity selected.
type Line struct {
	VariantID int64   `json:"variant_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// CustomerRef points at the customer selected for the sale. ID is the stable
// identifier captured at selection time; Name is kept for display and as a
// resolution fallback. A nil ref means a walk-in sale.
type CustomerRef struct {
	ID   *int64 `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// State is the JSON shape returned to the UI: the lines, the selected
// customer and the derived totals at the moment of the read.
type State struct {
	Items    []Line       `json:"items"`
	Customer *CustomerRef `json:"customer,omitempty"`
	Subtotal float64      `json:"subtotal"`
	Tax      float64      `json:"tax"`
	Total    float64      `json:"total"`
}
