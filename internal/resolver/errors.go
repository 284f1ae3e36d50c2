package resolver

import (
	"errors"
	"fmt"
)

// Validation errors. Their text is shown to the user as is.
var (
	ErrEmptyURL   = errors.New("Please enter a URL")
	ErrInvalidURL = errors.New("Please enter a valid URL")
)

// ErrUpstreamAuth is returned when the upstream rejects the configured API key.
var ErrUpstreamAuth = errors.New("API authentication failed")

// msgNoLink is reported when no tier of the payload yields a URL.
const msgNoLink = "Failed to fetch download link"

// UpstreamError is a failed call to the upstream resolver. Status is the
// HTTP status for non-2xx replies and zero for transport or decode failures.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream returned status %d", e.Status)
	}
	return fmt.Sprintf("upstream request failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ResolutionError means the upstream answered but no download link could be
// taken from the reply. Message is the upstream's own error text when it sent one.
type ResolutionError struct {
	Message string
}

func (e *ResolutionError) Error() string {
	return e.Message
}
