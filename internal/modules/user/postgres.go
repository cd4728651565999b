package user

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateUser(ctx context.Context, u *User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Email, u.PasswordHash, u.FullName, u.Role)
	return err
}

func (r *postgresRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, full_name, role, created_at
		FROM users WHERE email = $1`, email))
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, full_name, role, created_at
		FROM users WHERE id = $1`, parsedID))
}

func (r *postgresRepository) scan(row *sql.Row) (*User, error) {
	u := &User{}
	var fullName sql.NullString
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &fullName, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	u.FullName = fullName.String
	return u, nil
}
