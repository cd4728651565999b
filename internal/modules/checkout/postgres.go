package checkout

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository submits sales through the complete_sale database
// function, which carries the all-or-nothing contract.
func NewPostgresRepository(db *sql.DB) SalesRepository { return &postgresRepo{db: db} }

func (r *postgresRepo) CompleteSale(ctx context.Context, req *SaleRequest) (int64, error) {
	items, err := json.Marshal(req.Items)
	if err != nil {
		return 0, fmt.Errorf("marshal sale items: %w", err)
	}

	var customerID sql.NullInt64
	if req.CustomerID != nil {
		customerID = sql.NullInt64{Int64: *req.CustomerID, Valid: true}
	}

	var orderID int64
	err = r.db.QueryRowContext(ctx,
		`SELECT complete_sale($1, $2, $3::jsonb)`,
		customerID, string(req.PaymentMethod), string(items),
	).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("complete_sale: %w", err)
	}
	return orderID, nil
}
