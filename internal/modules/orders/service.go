package orders

import (
	"context"
	"fmt"
)

// Service defines order history business logic.
type Service interface {
	ListOrders(ctx context.Context) ([]*Order, error)
	GetOrder(ctx context.Context, orderID int64) (*Order, error)
	GetOrderItems(ctx context.Context, orderID int64) ([]*Item, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.List(ctx)
}

func (s *service) GetOrder(ctx context.Context, orderID int64) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	return o, nil
}

func (s *service) GetOrderItems(ctx context.Context, orderID int64) ([]*Item, error) {
	return s.repo.ListItems(ctx, orderID)
}
