package customer

import "time"

// Customer is a store customer record. BirthDate is an ISO date (YYYY-MM-DD).
type Customer struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	BirthDate string    `json:"birth_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UpsertCustomerRequest holds the fields accepted on create and update.
type UpsertCustomerRequest struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
	BirthDate string `json:"birth_date"`
}
