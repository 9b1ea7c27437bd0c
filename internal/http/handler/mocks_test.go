package handler_test

import (
	"context"

	"mindhaven.app/server/internal/emotion"
	"mindhaven.app/server/internal/model"
)

// mockBoard scripts each board operation per spec.
type mockBoard struct {
	submitFn func(ctx context.Context, content, username string) (*model.Letter, error)
	listFn   func(ctx context.Context, sort string, page, pageSize int) ([]model.Letter, error)
	recentFn func(ctx context.Context) ([]model.Letter, error)
	likeFn   func(ctx context.Context, letterID int64) (int, error)
	replyFn  func(ctx context.Context, letterID int64, content, username string) error
	deleteFn func(ctx context.Context, letterID int64, username string) error
}

func (m *mockBoard) Submit(ctx context.Context, content, username string) (*model.Letter, error) {
	return m.submitFn(ctx, content, username)
}

func (m *mockBoard) List(ctx context.Context, sort string, page, pageSize int) ([]model.Letter, error) {
	return m.listFn(ctx, sort, page, pageSize)
}

func (m *mockBoard) Recent(ctx context.Context) ([]model.Letter, error) {
	return m.recentFn(ctx)
}

func (m *mockBoard) Like(ctx context.Context, letterID int64) (int, error) {
	return m.likeFn(ctx, letterID)
}

func (m *mockBoard) Reply(ctx context.Context, letterID int64, content, username string) error {
	return m.replyFn(ctx, letterID, content, username)
}

func (m *mockBoard) Delete(ctx context.Context, letterID int64, username string) error {
	return m.deleteFn(ctx, letterID, username)
}

type mockChat struct {
	chatFn func(ctx context.Context, message string) (string, emotion.Label, error)
}

func (m *mockChat) Chat(ctx context.Context, message string) (string, emotion.Label, error) {
	return m.chatFn(ctx, message)
}

type mockAssistant struct {
	chatFn func(ctx context.Context, message string) (string, error)
}

func (m *mockAssistant) Chat(ctx context.Context, message string) (string, error) {
	return m.chatFn(ctx, message)
}
