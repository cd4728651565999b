package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	categories []*Category
	created    []string
	deleted    []int64
}

func (m *mockRepo) CreateProductWithVariant(ctx context.Context, p *Product, v *Variant) error {
	return nil
}
func (m *mockRepo) UpdateProduct(ctx context.Context, p *Product) error   { return nil }
func (m *mockRepo) UpdateVariant(ctx context.Context, v *Variant) error   { return nil }
func (m *mockRepo) DeleteProduct(ctx context.Context, id int64) error     { return nil }
func (m *mockRepo) GetVariant(ctx context.Context, id int64) (*Variant, *Product, error) {
	return nil, nil, nil
}
func (m *mockRepo) ListInventory(ctx context.Context) ([]*InventoryItem, error) { return nil, nil }
func (m *mockRepo) ListLowStock(ctx context.Context, limit int) ([]*LowStockItem, error) {
	return nil, nil
}

func (m *mockRepo) ListCategories(ctx context.Context) ([]*Category, error) {
	return m.categories, nil
}

func (m *mockRepo) CreateCategory(ctx context.Context, name string) (*Category, error) {
	m.created = append(m.created, name)
	return &Category{ID: int64(len(m.created)), Name: name}, nil
}

func (m *mockRepo) DeleteCategory(ctx context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func TestCreateCategory_TrimsName(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	c, err := svc.CreateCategory(context.Background(), "  Jackets ")
	require.NoError(t, err)
	assert.Equal(t, "Jackets", c.Name)
	assert.Equal(t, []string{"Jackets"}, repo.created)
}

func TestCreateCategory_EmptyNameRejected(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	_, err := svc.CreateCategory(context.Background(), "   ")
	assert.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestListAndDeleteCategories(t *testing.T) {
	repo := &mockRepo{categories: []*Category{
		{ID: 1, Name: "Jeans"},
		{ID: 2, Name: "Shirts"},
	}}
	svc := NewService(repo)

	out, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 2)

	require.NoError(t, svc.DeleteCategory(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestStockStatus(t *testing.T) {
	assert.Equal(t, StockReorder, stockStatus(3, 5))
	assert.Equal(t, StockReorder, stockStatus(5, 5))
	assert.Equal(t, StockHealthy, stockStatus(6, 5))
	assert.Equal(t, StockOverstock, stockStatus(51, 5))
	assert.Equal(t, StockHealthy, stockStatus(100, 0))
}
