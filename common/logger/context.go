package logger

import (
	"context"
	"unicode/utf8"
)

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Handlers and services enrich the context once; every slog call
// downstream picks the fields up without passing them explicitly.
type LogFields struct {
	LetterID  *int64  // letter being acted on
	JournalID *int64  // journal entry being acted on
	UserID    *int64  // authenticated account
	Username  *string // display handle supplied with the request
	Provider  *string // external collaborator name ("openai", "overpass", ...)
	Component string  // component name, e.g. "mindhaven.board.moderation"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values winning.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context, empty if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.LetterID != nil {
		result.LetterID = next.LetterID
	}
	if next.JournalID != nil {
		result.JournalID = next.JournalID
	}
	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.Username != nil {
		result.Username = next.Username
	}
	if next.Provider != nil {
		result.Provider = next.Provider
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value, for inline LogFields.
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to at most maxLen bytes, appending "..." if
// truncated. Useful when logging user-supplied text. The cut always lands on
// a rune boundary so multibyte text never yields invalid UTF-8.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
