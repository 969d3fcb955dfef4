package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/financetrack/finance-api/internal/core/domain"
	"github.com/financetrack/finance-api/internal/core/ports"
)

// EntryService records and removes monetary entries.
type EntryService struct {
	repo   ports.EntryRepository
	logger zerolog.Logger
}

func NewEntryService(repo ports.EntryRepository, logger zerolog.Logger) *EntryService {
	return &EntryService{repo: repo, logger: logger}
}

func (s *EntryService) Create(ctx context.Context, input ports.CreateEntryInput) error {
	switch {
	case input.Title == "":
		return domain.ErrTitleRequired
	case input.Value == 0:
		return domain.ErrValueRequired
	case input.UserID == "":
		return domain.ErrOwnerRequired
	}

	entry := &domain.Entry{
		UserID:   input.UserID,
		Title:    input.Title,
		Value:    input.Value,
		Category: input.Category,
		Date:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create entry")
		return err
	}

	s.logger.Info().Str("user_id", input.UserID).Str("title", input.Title).Msg("entry created")
	return nil
}

func (s *EntryService) Remove(ctx context.Context, id string) (int64, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("entry_id", id).Msg("failed to remove entry")
		return 0, err
	}
	return deleted, nil
}
