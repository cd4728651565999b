package catalog

import "time"

// Product is the parent record in the catalog. Pricing and stock live on the
// variant, which is the unit actually sold.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Variant is a sellable configuration (size/color) of a product. Stock is
// tracked here and decremented only by the complete_sale operation.
type Variant struct {
	ID                int64     `json:"id"`
	ProductID         int64     `json:"product_id"`
	SKU               string    `json:"sku"`
	Size              string    `json:"size,omitempty"`
	Color             string    `json:"color,omitempty"`
	CostPrice         float64   `json:"cost_price"`
	Price             float64   `json:"price"`
	CurrentStock      int       `json:"current_stock"`
	MinStockThreshold int       `json:"min_stock_threshold"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Category is a named product grouping managed from the inventory screen.
// Products carry the category by name.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StockStatus classifies a variant's stock level for the inventory screen.
type StockStatus string

const (
	StockHealthy   StockStatus = "Healthy"
	StockReorder   StockStatus = "Reorder"
	StockOverstock StockStatus = "Overstock"
)

// InventoryItem is the flattened product-plus-variant row consumed by the
// inventory table and the POS product grid.
type InventoryItem struct {
	ProductID int64       `json:"product_id"`
	VariantID int64       `json:"variant_id"`
	Name      string      `json:"name"`
	Category  string      `json:"category"`
	SKU       string      `json:"sku"`
	ImageURL  string      `json:"image_url,omitempty"`
	Price     float64     `json:"price"`
	Stock     int         `json:"stock"`
	Status    StockStatus `json:"status"`
}

// LowStockItem is one row of the view_low_stock view.
type LowStockItem struct {
	ProductName       string `json:"product_name"`
	SKU               string `json:"sku"`
	Size              string `json:"size,omitempty"`
	Color             string `json:"color,omitempty"`
	CurrentStock      int    `json:"current_stock"`
	MinStockThreshold int    `json:"min_stock_threshold"`
}

// CreateProductRequest holds the data for creating a product together with
// its default variant.
type CreateProductRequest struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	ImageURL          string  `json:"image_url"`
	SKU               string  `json:"sku"`
	Price             float64 `json:"price"`
	CostPrice         float64 `json:"cost_price"`
	CurrentStock      int     `json:"current_stock"`
	MinStockThreshold int     `json:"min_stock_threshold"`
	Size              string  `json:"size,omitempty"`
	Color             string  `json:"color,omitempty"`
}

func stockStatus(stock, threshold int) StockStatus {
	switch {
	case stock <= threshold:
		return StockReorder
	case threshold > 0 && stock > threshold*10:
		return StockOverstock
	default:
		return StockHealthy
	}
}
