package ports

import (
	"context"

	"github.com/financetrack/finance-api/internal/core/domain"
)

// EntryRepository defines the persistence boundary for monetary entries.
type EntryRepository interface {
	Create(ctx context.Context, entry *domain.Entry) error
	// Delete removes the entry with the given id and returns how many
	// documents were removed (0 when the id did not exist).
	Delete(ctx context.Context, id string) (int64, error)
}
