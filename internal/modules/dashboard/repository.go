package dashboard

import "context"

// Repository defines read access to the dashboard aggregates.
type Repository interface {
	DailySales(ctx context.Context, days int) ([]*DailySales, error)
	CategoryDistribution(ctx context.Context) ([]*CategoryShare, error)
	Totals(ctx context.Context) (*Stats, error)
}
