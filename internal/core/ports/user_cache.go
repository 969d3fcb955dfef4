package ports

import (
	"context"

	"github.com/financetrack/finance-api/internal/core/domain"
)

// UserCache is a read-through cache in front of profile lookups.
// Misses and cache errors are both reported as (nil, false): the
// caller always falls back to the repository.
type UserCache interface {
	Get(ctx context.Context, id string) (*domain.User, bool)
	Set(ctx context.Context, user *domain.User)
}
