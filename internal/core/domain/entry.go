package domain

import (
	"errors"
	"time"
)

// Entry is a monetary record (expense or income) owned by a user.
// Entries reference their owner by user id only.
type Entry struct {
	ID       string    `json:"id"`
	UserID   string    `json:"id_user"`
	Title    string    `json:"title"`
	Value    float64   `json:"value"`
	Category string    `json:"category,omitempty"`
	Date     time.Time `json:"date"`
}

var (
	ErrTitleRequired = errors.New("title is required")
	ErrValueRequired = errors.New("value is required")
	ErrOwnerRequired = errors.New("user id is required")
)
