package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mindhaven.app/server/common/id"
	"mindhaven.app/server/common/logger"
	"mindhaven.app/server/core/config"
	"mindhaven.app/server/internal/model"
	"mindhaven.app/server/internal/store"
)

// BoardService drives the anonymous-letters board: moderated submission,
// paginated listing, like/reply mutation and author-gated deletion.
type BoardService interface {
	Submit(ctx context.Context, content, username string) (*model.Letter, error)
	List(ctx context.Context, sort string, page, pageSize int) ([]model.Letter, error)
	Recent(ctx context.Context) ([]model.Letter, error)
	Like(ctx context.Context, letterID int64) (int, error)
	Reply(ctx context.Context, letterID int64, content, username string) error
	Delete(ctx context.Context, letterID int64, username string) error
}

type boardService struct {
	letters   store.LetterStore
	moderator ModerationService
	cfg       config.BoardConfig
}

func NewBoardService(letters store.LetterStore, moderator ModerationService, cfg config.BoardConfig) BoardService {
	return &boardService{
		letters:   letters,
		moderator: moderator,
		cfg:       cfg,
	}
}

// Submit validates, then moderates, then creates. A flagged verdict rejects
// the submission before anything touches the store.
func (s *boardService) Submit(ctx context.Context, content, username string) (*model.Letter, error) {
	if strings.TrimSpace(content) == "" || strings.TrimSpace(username) == "" {
		return nil, ErrValidation
	}

	verdict := s.moderator.Moderate(ctx, content)
	if verdict.Flagged {
		slog.InfoContext(ctx, "letter submission blocked",
			"detail", logger.Truncate(verdict.Detail, 120))
		return nil, ErrModerationBlocked
	}

	letter := &model.Letter{
		ID:       id.New(),
		Content:  content,
		Username: username,
	}
	if err := s.letters.Create(ctx, letter); err != nil {
		return nil, fmt.Errorf("creating letter: %w", err)
	}

	slog.InfoContext(ctx, "letter created",
		"letter_id", letter.ID,
		"username", username)
	return letter, nil
}

func (s *boardService) List(ctx context.Context, sort string, page, pageSize int) ([]model.Letter, error) {
	opts := store.ListOptions{
		Sort:     store.SortLatest,
		Page:     page,
		PageSize: pageSize,
	}
	if sort == string(store.SortPopular) {
		opts.Sort = store.SortPopular
	}
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize <= 0 {
		opts.PageSize = s.cfg.FeedPageSize
	}
	if opts.PageSize > s.cfg.MaxPageSize {
		opts.PageSize = s.cfg.MaxPageSize
	}

	letters, err := s.letters.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("listing letters: %w", err)
	}
	return letters, nil
}

// Recent is the home-feed variant of List; it pages by the smaller
// recent-letters default.
func (s *boardService) Recent(ctx context.Context) ([]model.Letter, error) {
	letters, err := s.letters.List(ctx, store.ListOptions{
		Sort:     store.SortLatest,
		Page:     1,
		PageSize: s.cfg.RecentPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("listing recent letters: %w", err)
	}
	return letters, nil
}

func (s *boardService) Like(ctx context.Context, letterID int64) (int, error) {
	newLikes, err := s.letters.Like(ctx, letterID)
	if err != nil {
		return 0, err
	}
	return newLikes, nil
}

func (s *boardService) Reply(ctx context.Context, letterID int64, content, username string) error {
	if strings.TrimSpace(content) == "" || strings.TrimSpace(username) == "" {
		return ErrValidation
	}

	reply := model.Reply{
		Content:   content,
		Username:  username,
		Timestamp: time.Now().UTC(),
	}
	if err := s.letters.AppendReply(ctx, letterID, reply); err != nil {
		return err
	}

	slog.InfoContext(ctx, "reply appended", "letter_id", letterID, "username", username)
	return nil
}

// Delete trusts the caller-supplied username for the author check. There is
// no verified identity behind it; see the trust-boundary note in DESIGN.md.
func (s *boardService) Delete(ctx context.Context, letterID int64, username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrValidation
	}

	letter, err := s.letters.Get(ctx, letterID)
	if err != nil {
		return err
	}
	if letter.Username != username {
		return ErrForbidden
	}

	if err := s.letters.Delete(ctx, letterID); err != nil {
		return err
	}

	slog.InfoContext(ctx, "letter deleted", "letter_id", letterID, "username", username)
	return nil
}
