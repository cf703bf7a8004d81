package schemas

import "github.com/google/uuid"

type UserCreate struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// UserRead is the public view of a user; the password hash never leaves the
// server.
type UserRead struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	IsActive bool      `json:"is_active"`
}
