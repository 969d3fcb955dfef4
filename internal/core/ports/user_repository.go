package ports

import (
	"context"

	"github.com/financetrack/finance-api/internal/core/domain"
)

// UserRepository defines the persistence boundary for user accounts.
// Create relies on a unique email index: the advisory ExistsByEmail
// pre-check is a fast path only, the index is the source of truth.
type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns the user without its password hash.
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
