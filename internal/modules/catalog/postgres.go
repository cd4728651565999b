package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// CreateProductWithVariant inserts the product and its default variant in one
// transaction so a failed variant insert never leaves an orphan product.
func (r *postgresRepo) CreateProductWithVariant(ctx context.Context, p *Product, v *Variant) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO products (name, description, category, image_url)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at`,
		p.Name, p.Description, p.Category, p.ImageURL,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	v.ProductID = p.ID
	err = tx.QueryRowContext(ctx, `
		INSERT INTO variants (product_id, sku, size, color, cost_price, price, current_stock, min_stock_threshold)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, updated_at`,
		v.ProductID, v.SKU, v.Size, v.Color, v.CostPrice, v.Price, v.CurrentStock, v.MinStockThreshold,
	).Scan(&v.ID, &v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert variant: %w", err)
	}

	return tx.Commit()
}

func (r *postgresRepo) UpdateProduct(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products SET name=$1, description=$2, category=$3, image_url=$4
		WHERE id=$5`,
		p.Name, p.Description, p.Category, p.ImageURL, p.ID)
	return err
}

func (r *postgresRepo) UpdateVariant(ctx context.Context, v *Variant) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE variants
		SET sku=$1, size=$2, color=$3, cost_price=$4, price=$5,
		    current_stock=$6, min_stock_threshold=$7, updated_at=$8
		WHERE id=$9`,
		v.SKU, v.Size, v.Color, v.CostPrice, v.Price,
		v.CurrentStock, v.MinStockThreshold, time.Now(), v.ID)
	return err
}

// DeleteProduct relies on ON DELETE CASCADE to take the variants with it.
func (r *postgresRepo) DeleteProduct(ctx context.Context, productID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, productID)
	return err
}

func (r *postgresRepo) GetVariant(ctx context.Context, variantID int64) (*Variant, *Product, error) {
	v := &Variant{}
	p := &Product{}
	var size, color, description, imageURL sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT v.id, v.product_id, v.sku, v.size, v.color, v.cost_price, v.price,
		       v.current_stock, v.min_stock_threshold, v.updated_at,
		       p.id, p.name, p.description, p.category, p.image_url, p.created_at
		FROM variants v
		JOIN products p ON p.id = v.product_id
		WHERE v.id=$1`, variantID,
	).Scan(&v.ID, &v.ProductID, &v.SKU, &size, &color, &v.CostPrice, &v.Price,
		&v.CurrentStock, &v.MinStockThreshold, &v.UpdatedAt,
		&p.ID, &p.Name, &description, &p.Category, &imageURL, &p.CreatedAt)
	if err != nil {
		return nil, nil, err
	}
	v.Size = size.String
	v.Color = color.String
	p.Description = description.String
	p.ImageURL = imageURL.String
	return v, p, nil
}

func (r *postgresRepo) ListInventory(ctx context.Context) ([]*InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, v.id, p.name, p.category, v.sku, p.image_url,
		       v.price, v.current_stock, v.min_stock_threshold
		FROM variants v
		JOIN products p ON p.id = v.product_id
		ORDER BY p.name, v.sku`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*InventoryItem
	for rows.Next() {
		it := &InventoryItem{}
		var imageURL sql.NullString
		var threshold int
		if err := rows.Scan(&it.ProductID, &it.VariantID, &it.Name, &it.Category,
			&it.SKU, &imageURL, &it.Price, &it.Stock, &threshold); err != nil {
			return nil, err
		}
		it.ImageURL = imageURL.String
		it.Status = stockStatus(it.Stock, threshold)
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *postgresRepo) ListCategories(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Category
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *postgresRepo) CreateCategory(ctx context.Context, name string) (*Category, error) {
	c := &Category{Name: name}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, name,
	).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

func (r *postgresRepo) DeleteCategory(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id=$1`, id)
	return err
}

func (r *postgresRepo) ListLowStock(ctx context.Context, limit int) ([]*LowStockItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_name, sku, size, color, current_stock, min_stock_threshold
		FROM view_low_stock
		ORDER BY current_stock ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*LowStockItem
	for rows.Next() {
		it := &LowStockItem{}
		var size, color sql.NullString
		if err := rows.Scan(&it.ProductName, &it.SKU, &size, &color,
			&it.CurrentStock, &it.MinStockThreshold); err != nil {
			return nil, err
		}
		it.Size = size.String
		it.Color = color.String
		items = append(items, it)
	}
	return items, rows.Err()
}
