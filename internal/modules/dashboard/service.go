package dashboard

import "context"

// Service defines dashboard business logic.
type Service interface {
	DailySales(ctx context.Context, days int) ([]*DailySales, error)
	CategoryDistribution(ctx context.Context) ([]*CategoryShare, error)
	Totals(ctx context.Context) (*Stats, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) DailySales(ctx context.Context, days int) ([]*DailySales, error) {
	if days <= 0 {
		days = 10
	}
	return s.repo.DailySales(ctx, days)
}

func (s *service) CategoryDistribution(ctx context.Context) ([]*CategoryShare, error) {
	return s.repo.CategoryDistribution(ctx)
}

func (s *service) Totals(ctx context.Context) (*Stats, error) {
	return s.repo.Totals(ctx)
}
