package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"mindhaven.app/server/common/id"
	"mindhaven.app/server/core/config"
	"mindhaven.app/server/internal/emotion"
	"mindhaven.app/server/internal/model"
	"mindhaven.app/server/internal/store"
)

// JournalService manages private mood-journal entries, one account each.
type JournalService interface {
	Create(ctx context.Context, username, content, mood string) (*model.JournalEntry, error)
	List(ctx context.Context, username string, page, pageSize int) ([]model.JournalEntry, error)
	Stats(ctx context.Context, username string) (map[string]int, error)
	Delete(ctx context.Context, entryID int64, username string) error
}

type journalService struct {
	journals store.JournalStore
	cfg      config.BoardConfig
}

func NewJournalService(journals store.JournalStore, cfg config.BoardConfig) JournalService {
	return &journalService{journals: journals, cfg: cfg}
}

func (s *journalService) Create(ctx context.Context, username, content, mood string) (*model.JournalEntry, error) {
	if strings.TrimSpace(content) == "" || strings.TrimSpace(username) == "" {
		return nil, ErrValidation
	}

	// Mood is optional; when the caller leaves it blank the classifier
	// derives it from the entry text.
	if mood == "" {
		mood = string(emotion.Classify(content))
	}

	entry := &model.JournalEntry{
		ID:       id.New(),
		Username: username,
		Content:  content,
		Mood:     mood,
	}
	if err := s.journals.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("creating journal entry: %w", err)
	}

	slog.InfoContext(ctx, "journal entry created",
		"journal_id", entry.ID,
		"mood", entry.Mood)
	return entry, nil
}

func (s *journalService) List(ctx context.Context, username string, page, pageSize int) ([]model.JournalEntry, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.cfg.FeedPageSize
	}
	if pageSize > s.cfg.MaxPageSize {
		pageSize = s.cfg.MaxPageSize
	}

	entries, err := s.journals.ListByUsername(ctx, username, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	return entries, nil
}

func (s *journalService) Stats(ctx context.Context, username string) (map[string]int, error) {
	counts, err := s.journals.MoodCounts(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("aggregating mood counts: %w", err)
	}
	return counts, nil
}

func (s *journalService) Delete(ctx context.Context, entryID int64, username string) error {
	entry, err := s.journals.Get(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.Username != username {
		return ErrForbidden
	}
	return s.journals.Delete(ctx, entryID)
}
