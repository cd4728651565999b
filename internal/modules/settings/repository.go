package settings

import "context"

// Repository defines data access for the store settings row.
type Repository interface {
	Get(ctx context.Context) (*StoreSettings, error)
	Update(ctx context.Context, s *StoreSettings) error
}
