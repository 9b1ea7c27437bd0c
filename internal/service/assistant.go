package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mindhaven.app/server/common/llm"
	"mindhaven.app/server/common/logger"
	"mindhaven.app/server/core/config"
)

const assistantPrompt = `You are a warm, supportive companion in a mental-wellness app.
Listen, validate feelings, and offer gentle, practical suggestions. Keep
replies short and conversational. You are not a therapist: when someone
describes a crisis or intent to harm themselves or others, encourage them to
contact local emergency services or a crisis hotline. Never give medical
diagnoses or medication advice.`

// AssistantService is the LLM-backed wellness companion. User messages pass
// through moderation before reaching the model.
type AssistantService interface {
	Chat(ctx context.Context, message string) (string, error)
}

type assistantService struct {
	client    llm.Client // nil when no assistant credentials are configured
	moderator ModerationService
	timeout   time.Duration
	maxTokens int
}

func NewAssistantService(client llm.Client, moderator ModerationService, cfg config.LLMConfig) AssistantService {
	return &assistantService{
		client:    client,
		moderator: moderator,
		timeout:   cfg.Timeout,
		maxTokens: cfg.MaxTokens,
	}
}

func (s *assistantService) Chat(ctx context.Context, message string) (string, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "mindhaven.assistant"})

	if strings.TrimSpace(message) == "" {
		return "", ErrValidation
	}
	if s.client == nil {
		return "", ErrUnconfigured
	}

	if verdict := s.moderator.Moderate(ctx, message); verdict.Flagged {
		return "", ErrModerationBlocked
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Complete(callCtx, llm.Request{
		SystemPrompt: assistantPrompt,
		UserPrompt:   message,
		MaxTokens:    s.maxTokens,
	})
	if err != nil {
		slog.ErrorContext(ctx, "assistant completion failed", "error", err)
		return "", fmt.Errorf("assistant completion: %w", err)
	}

	return resp, nil
}
