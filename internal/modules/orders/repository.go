package orders

import "context"

// Repository defines read access to completed orders.
type Repository interface {
	List(ctx context.Context) ([]*Order, error)
	GetByID(ctx context.Context, orderID int64) (*Order, error)
	ListItems(ctx context.Context, orderID int64) ([]*Item, error)
}
