package dashboard

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) DailySales(ctx context.Context, days int) ([]*DailySales, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT day, total_revenue, total_orders
		FROM view_daily_sales
		ORDER BY day DESC
		LIMIT $1`, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*DailySales
	for rows.Next() {
		d := &DailySales{}
		if err := rows.Scan(&d.Day, &d.TotalRevenue, &d.TotalOrders); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	// Reverse to chronological order for the chart.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, rows.Err()
}

func (r *postgresRepo) CategoryDistribution(ctx context.Context) ([]*CategoryShare, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT category, COUNT(*)
		FROM products
		GROUP BY category
		ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*CategoryShare
	for rows.Next() {
		c := &CategoryShare{}
		if err := rows.Scan(&c.Name, &c.Value); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Totals(ctx context.Context) (*Stats, error) {
	s := &Stats{}
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_revenue), 0), COALESCE(SUM(total_orders), 0)
		FROM view_daily_sales`,
	).Scan(&s.Revenue, &s.Orders)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM view_low_stock`).Scan(&s.LowStockCount)
	if err != nil {
		return nil, err
	}
	return s, nil
}
