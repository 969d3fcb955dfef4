package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/financetrack/finance-api/internal/core/domain"
	"github.com/financetrack/finance-api/internal/core/ports"
)

// AuthService implements registration, login and profile lookup.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	cache  ports.UserCache
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, cache ports.UserCache, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, cache: cache, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, name, email, password, confirmPassword string) (*domain.User, error) {
	switch {
	case name == "":
		return nil, domain.ErrNameRequired
	case email == "":
		return nil, domain.ErrEmailRequired
	case password == "":
		return nil, domain.ErrPasswordRequired
	case password != confirmPassword:
		return nil, domain.ErrPasswordMismatch
	}

	// Advisory fast path. Two concurrent registrations can both pass
	// this check; the unique email index catches the loser in Create.
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	switch {
	case email == "":
		return "", domain.ErrEmailRequired
	case password == "":
		return "", domain.ErrPasswordRequired
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrWrongPassword
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("token issuance failed")
		return "", err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, nil
}

// GetUser resolves a profile by id, password hash excluded. Lookups go
// through the cache first; repository results are written back on miss.
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if user, ok := s.cache.Get(ctx, id); ok {
		return user, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, user)
	return user, nil
}
