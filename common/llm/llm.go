package llm

import (
	"context"
	"errors"
	"fmt"
)

// Provider constants for LLM provider selection.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// ErrSafetyBlocked is returned when the provider's own safety system refused
// to produce a completion. Callers in safety-relevant paths must treat it as
// a blocking outcome, not as a transient failure.
var ErrSafetyBlocked = errors.New("completion refused by provider safety system")

// Config holds LLM client configuration.
type Config struct {
	Provider string // "openai" or "anthropic"
	APIKey   string // Required: API key for the provider
	BaseURL  string // Optional: custom API endpoint
	Model    string // Model name (e.g. "gpt-4o-mini", "claude-sonnet-4-5-20250514")
}

// Client produces plain-text completions. Both the content moderator and the
// wellness assistant speak through this interface so tests can substitute a
// fake collaborator.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Model() string
}

// Request contains the prompts for one completion.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  *float64 // nil = model default, explicit 0 = deterministic
}

// NewClient creates a Client for the configured provider.
func NewClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	provider := cfg.Provider
	if provider == "" {
		provider = ProviderOpenAI
	}

	switch provider {
	case ProviderOpenAI:
		return newOpenAIClient(cfg)
	case ProviderAnthropic:
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

// Temp is a helper for setting Request.Temperature inline.
func Temp(t float64) *float64 {
	return &t
}
