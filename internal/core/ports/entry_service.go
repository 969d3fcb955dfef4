package ports

import "context"

// CreateEntryInput carries the fields accepted by POST /create/entry.
type CreateEntryInput struct {
	Title    string
	Value    float64
	UserID   string
	Category string
}

type EntryService interface {
	Create(ctx context.Context, input CreateEntryInput) error
	Remove(ctx context.Context, id string) (int64, error)
}
