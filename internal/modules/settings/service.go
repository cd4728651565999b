package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/flupretail/flup-backend/internal/modules/cart"
)

// Service defines settings business logic.
type Service interface {
	GetSettings(ctx context.Context) (*StoreSettings, error)
	UpdateSettings(ctx context.Context, id int64, req UpdateSettingsRequest) (*StoreSettings, error)
	// TaxRate returns the configured rate, or the cart default when no
	// settings row exists yet.
	TaxRate(ctx context.Context) float64
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetSettings(ctx context.Context) (*StoreSettings, error) {
	return s.repo.Get(ctx)
}

func (s *service) UpdateSettings(ctx context.Context, id int64, req UpdateSettingsRequest) (*StoreSettings, error) {
	if req.StoreName == "" {
		return nil, fmt.Errorf("store_name is required")
	}
	if req.TaxRate < 0 || req.TaxRate >= 1 {
		return nil, fmt.Errorf("tax_rate must be in [0, 1)")
	}

	updated := &StoreSettings{
		ID:        id,
		StoreName: req.StoreName,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		LogoURL:   req.LogoURL,
		TaxRate:   req.TaxRate,
		Currency:  req.Currency,
	}
	if updated.Currency == "" {
		updated.Currency = "MXN"
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *service) TaxRate(ctx context.Context) float64 {
	st, err := s.repo.Get(ctx)
	if err != nil || st == nil {
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return cart.DefaultTaxRate
		}
		return cart.DefaultTaxRate
	}
	if st.TaxRate <= 0 {
		return cart.DefaultTaxRate
	}
	return st.TaxRate
}
