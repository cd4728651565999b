package customer

import (
	"context"
	"fmt"

	"github.com/flupretail/flup-backend/internal/modules/checkout"
)

// Service defines customer business logic.
type Service interface {
	CreateCustomer(ctx context.Context, req UpsertCustomerRequest) (*Customer, error)
	GetCustomer(ctx context.Context, id int64) (*Customer, error)
	ListCustomers(ctx context.Context) ([]*Customer, error)
	UpdateCustomer(ctx context.Context, id int64, req UpsertCustomerRequest) (*Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateCustomer(ctx context.Context, req UpsertCustomerRequest) (*Customer, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("full_name is required")
	}
	c := &Customer{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
		BirthDate: req.BirthDate,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListCustomers(ctx context.Context) ([]*Customer, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateCustomer(ctx context.Context, id int64, req UpsertCustomerRequest) (*Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}
	c.FullName = req.FullName
	c.Email = req.Email
	c.Phone = req.Phone
	c.Notes = req.Notes
	c.BirthDate = req.BirthDate
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) DeleteCustomer(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Roster adapts the customer list to the checkout coordinator's resolution
// interface.
type Roster struct{ repo Repository }

func NewRoster(repo Repository) *Roster { return &Roster{repo: repo} }

func (r *Roster) ListCustomers(ctx context.Context) ([]checkout.Customer, error) {
	customers, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]checkout.Customer, 0, len(customers))
	for _, c := range customers {
		out = append(out, checkout.Customer{ID: c.ID, DisplayName: c.FullName})
	}
	return out, nil
}
