package customer

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, c *Customer) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO customers (full_name, email, phone, notes, birth_date)
		VALUES ($1,$2,$3,$4,NULLIF($5,'')::date)
		RETURNING id, created_at`,
		c.FullName, c.Email, c.Phone, c.Notes, c.BirthDate,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*Customer, error) {
	return r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, full_name, email, phone, notes, to_char(birth_date,'YYYY-MM-DD'), created_at
		FROM customers WHERE id=$1`, id))
}

func (r *postgresRepo) List(ctx context.Context) ([]*Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, full_name, email, phone, notes, to_char(birth_date,'YYYY-MM-DD'), created_at
		FROM customers ORDER BY full_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Customer
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, c *Customer) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE customers
		SET full_name=$1, email=$2, phone=$3, notes=$4, birth_date=NULLIF($5,'')::date
		WHERE id=$6`,
		c.FullName, c.Email, c.Phone, c.Notes, c.BirthDate, c.ID)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id=$1`, id)
	return err
}

// ── scanner ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

func (r *postgresRepo) scan(row rowScanner) (*Customer, error) {
	c := &Customer{}
	var fullName, email, phone, notes, birthDate sql.NullString
	err := row.Scan(&c.ID, &fullName, &email, &phone, &notes, &birthDate, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.FullName = fullName.String
	c.Email = email.String
	c.Phone = phone.String
	c.Notes = notes.String
	c.BirthDate = birthDate.String
	return c, nil
}
