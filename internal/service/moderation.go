package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mindhaven.app/server/common/llm"
	"mindhaven.app/server/common/logger"
	"mindhaven.app/server/core/config"
)

// moderationPrompt demands a one-token verdict so parsing stays trivial.
// Anything other than the two expected tokens is treated as FLAGGED.
const moderationPrompt = `You are a content moderator for an anonymous mental-wellness community board.
Decide whether the submitted text is acceptable. Text is unacceptable if it
contains harassment, hate speech, threats, sexual content involving minors,
doxxing, spam, or encouragement of self-harm. Supportive discussion of
difficult feelings, including sadness and suicidal thoughts, is acceptable.

Answer with exactly one word: FLAGGED if the text is unacceptable, OK if it
is acceptable. Do not add any other text.`

// Verdict is the ephemeral moderation outcome. Detail carries the raw
// provider response or the failure reason for operator-side diagnostics; it
// is never persisted.
type Verdict struct {
	Flagged bool
	Detail  string
}

type ModerationService interface {
	// Moderate never returns an error: every failure path collapses to a
	// flagged verdict. Uncertainty must block content, not wave it through.
	Moderate(ctx context.Context, text string) Verdict
}

type moderationService struct {
	client    llm.Client // nil when no moderation credentials are configured
	timeout   time.Duration
	maxTokens int
}

func NewModerationService(client llm.Client, cfg config.LLMConfig) ModerationService {
	return &moderationService{
		client:    client,
		timeout:   cfg.Timeout,
		maxTokens: cfg.MaxTokens,
	}
}

func (s *moderationService) Moderate(ctx context.Context, text string) Verdict {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "mindhaven.board.moderation"})

	if strings.TrimSpace(text) == "" {
		return Verdict{Flagged: false, Detail: "empty text"}
	}

	if s.client == nil {
		slog.WarnContext(ctx, "moderation unavailable, failing closed", "reason", "no llm client configured")
		return Verdict{Flagged: true, Detail: "moderation unconfigured"}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Complete(callCtx, llm.Request{
		SystemPrompt: moderationPrompt,
		UserPrompt:   text,
		MaxTokens:    s.maxTokens,
		Temperature:  llm.Temp(0),
	})
	if err != nil {
		// Timeouts, quota errors and provider safety refusals all land here.
		slog.WarnContext(ctx, "moderation call failed, failing closed", "error", err)
		return Verdict{Flagged: true, Detail: err.Error()}
	}

	switch strings.ToUpper(strings.TrimSpace(resp)) {
	case "OK":
		return Verdict{Flagged: false, Detail: resp}
	case "FLAGGED":
		slog.InfoContext(ctx, "submission flagged by moderation")
		return Verdict{Flagged: true, Detail: resp}
	default:
		slog.WarnContext(ctx, "unexpected moderation verdict, failing closed",
			"verdict", logger.Truncate(resp, 120))
		return Verdict{Flagged: true, Detail: "unexpected verdict: " + resp}
	}
}
