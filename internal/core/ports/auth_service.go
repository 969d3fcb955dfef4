package ports

import (
	"context"

	"github.com/financetrack/finance-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a new account. It never issues a token: a fresh
	// account must log in explicitly.
	Register(ctx context.Context, name, email, password, confirmPassword string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
