package catalog

import "context"

// Repository defines data access for products and variants.
type Repository interface {
	CreateProductWithVariant(ctx context.Context, p *Product, v *Variant) error
	UpdateProduct(ctx context.Context, p *Product) error
	UpdateVariant(ctx context.Context, v *Variant) error
	DeleteProduct(ctx context.Context, productID int64) error
	GetVariant(ctx context.Context, variantID int64) (*Variant, *Product, error)
	ListInventory(ctx context.Context) ([]*InventoryItem, error)
	ListLowStock(ctx context.Context, limit int) ([]*LowStockItem, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, name string) (*Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
