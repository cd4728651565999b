package settings

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// Get always reads the first row; the table is expected to hold exactly one.
func (r *postgresRepo) Get(ctx context.Context) (*StoreSettings, error) {
	s := &StoreSettings{}
	var address, phone, email, logoURL sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT id, store_name, address, phone, email, logo_url, tax_rate, currency
		FROM store_settings ORDER BY id LIMIT 1`,
	).Scan(&s.ID, &s.StoreName, &address, &phone, &email, &logoURL, &s.TaxRate, &s.Currency)
	if err != nil {
		return nil, err
	}
	s.Address = address.String
	s.Phone = phone.String
	s.Email = email.String
	s.LogoURL = logoURL.String
	return s, nil
}

func (r *postgresRepo) Update(ctx context.Context, s *StoreSettings) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE store_settings
		SET store_name=$1, address=$2, phone=$3, email=$4, logo_url=$5, tax_rate=$6, currency=$7
		WHERE id=$8`,
		s.StoreName, s.Address, s.Phone, s.Email, s.LogoURL, s.TaxRate, s.Currency, s.ID)
	return err
}
