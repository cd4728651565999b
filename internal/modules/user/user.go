package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is a dashboard account (store owner or cashier).
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name,omitempty"`
	Role         string    `json:"role"` // ADMIN, CASHIER
	CreatedAt    time.Time `json:"created_at"`
}

// Repository defines data access for users.
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
}
