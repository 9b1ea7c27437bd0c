package service

import "errors"

// Shared service-level sentinels, mapped to HTTP statuses at the handler
// boundary.
var (
	// ErrValidation covers missing or malformed caller input.
	ErrValidation = errors.New("missing or invalid input")

	// ErrForbidden means the requesting username does not own the document.
	ErrForbidden = errors.New("requester is not the author")

	// ErrModerationBlocked means moderation rejected the content, whether by
	// an explicit verdict or by the fail-closed path.
	ErrModerationBlocked = errors.New("content rejected by moderation")

	// ErrUnconfigured means a required external collaborator has no
	// credentials configured.
	ErrUnconfigured = errors.New("service not configured")
)
