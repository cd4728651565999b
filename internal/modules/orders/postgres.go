package orders

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const orderColumns = `
	SELECT o.id, o.customer_id, COALESCE(c.full_name, ''), o.status,
	       COALESCE(o.payment_method, ''), o.total_amount,
	       (SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id),
	       o.created_at
	FROM orders o
	LEFT JOIN customers c ON c.id = o.customer_id`

func (r *postgresRepo) List(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, orderColumns+` ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, orderID int64) (*Order, error) {
	return scanOrder(r.db.QueryRowContext(ctx, orderColumns+` WHERE o.id=$1`, orderID))
}

func (r *postgresRepo) ListItems(ctx context.Context, orderID int64) ([]*Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, p.name, COALESCE(p.image_url, ''), oi.quantity, oi.unit_price, oi.subtotal
		FROM order_items oi
		JOIN variants v ON v.id = oi.variant_id
		JOIN products p ON p.id = v.product_id
		WHERE oi.order_id=$1
		ORDER BY oi.id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		it := &Item{}
		if err := rows.Scan(&it.ID, &it.ProductName, &it.ImageURL,
			&it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ── scanner ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanOrder(row rowScanner) (*Order, error) {
	o := &Order{}
	var customerID sql.NullInt64
	err := row.Scan(&o.ID, &customerID, &o.CustomerName, &o.Status,
		&o.PaymentMethod, &o.TotalAmount, &o.ItemsCount, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	if customerID.Valid {
		o.CustomerID = &customerID.Int64
	}
	if o.CustomerName == "" {
		o.CustomerName = WalkInName
	}
	return o, nil
}
