package domain

import (
	"errors"
	"time"
)

// User models an account holder. PasswordHash never leaves the process:
// it is excluded from JSON and from the profile lookup projection.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmailTaken       = errors.New("please use another email")
	ErrUserNotFound     = errors.New("user not found")
	ErrWrongPassword    = errors.New("incorrect password")
	ErrInvalidToken     = errors.New("invalid token")
)
