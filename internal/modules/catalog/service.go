package catalog

import (
	"context"
	"fmt"
	"strings"
)

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, *Variant, error)
	UpdateProduct(ctx context.Context, productID, variantID int64, req CreateProductRequest) error
	DeleteProduct(ctx context.Context, productID int64) error
	GetVariant(ctx context.Context, variantID int64) (*Variant, *Product, error)
	ListInventory(ctx context.Context) ([]*InventoryItem, error)
	ListLowStock(ctx context.Context, limit int) ([]*LowStockItem, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, name string) (*Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, *Variant, error) {
	if req.Name == "" {
		return nil, nil, fmt.Errorf("name is required")
	}
	if req.SKU == "" {
		return nil, nil, fmt.Errorf("sku is required")
	}
	if req.Price < 0 || req.CostPrice < 0 {
		return nil, nil, fmt.Errorf("prices must not be negative")
	}
	if req.CurrentStock < 0 {
		return nil, nil, fmt.Errorf("current_stock must not be negative")
	}

	category := req.Category
	if category == "" {
		category = "Uncategorized"
	}

	p := &Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		ImageURL:    req.ImageURL,
	}
	v := &Variant{
		SKU:               req.SKU,
		Size:              req.Size,
		Color:             req.Color,
		CostPrice:         req.CostPrice,
		Price:             req.Price,
		CurrentStock:      req.CurrentStock,
		MinStockThreshold: req.MinStockThreshold,
	}
	if err := s.repo.CreateProductWithVariant(ctx, p, v); err != nil {
		return nil, nil, err
	}
	return p, v, nil
}

func (s *service) UpdateProduct(ctx context.Context, productID, variantID int64, req CreateProductRequest) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if req.SKU == "" {
		return fmt.Errorf("sku is required")
	}

	p := &Product{
		ID:          productID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return err
	}

	v := &Variant{
		ID:                variantID,
		SKU:               req.SKU,
		Size:              req.Size,
		Color:             req.Color,
		CostPrice:         req.CostPrice,
		Price:             req.Price,
		CurrentStock:      req.CurrentStock,
		MinStockThreshold: req.MinStockThreshold,
	}
	return s.repo.UpdateVariant(ctx, v)
}

func (s *service) DeleteProduct(ctx context.Context, productID int64) error {
	return s.repo.DeleteProduct(ctx, productID)
}

func (s *service) GetVariant(ctx context.Context, variantID int64) (*Variant, *Product, error) {
	return s.repo.GetVariant(ctx, variantID)
}

func (s *service) ListInventory(ctx context.Context) ([]*InventoryItem, error) {
	return s.repo.ListInventory(ctx)
}

func (s *service) ListLowStock(ctx context.Context, limit int) ([]*LowStockItem, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.repo.ListLowStock(ctx, limit)
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) CreateCategory(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	return s.repo.CreateCategory(ctx, name)
}

func (s *service) DeleteCategory(ctx context.Context, id int64) error {
	return s.repo.DeleteCategory(ctx, id)
}
