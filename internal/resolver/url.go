// Package resolver turns a user-submitted media link into a direct
// download URL by asking an upstream service and normalizing its reply.
package resolver

import (
	"strings"
)

// NormalizeURL trims raw and prefixes https:// when no http(s) scheme is
// present. Nothing else is checked or escaped; the upstream validates the rest.
func NormalizeURL(raw string) string {
	normalized := strings.TrimSpace(raw)

	if !strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://") {
		normalized = "https://" + normalized
	}

	return normalized
}

// ValidateURL applies the weak pre-check used before calling the upstream:
// the input must be non-empty and contain "http", "." or "/".
func ValidateURL(raw string) error {
	if raw == "" {
		return ErrEmptyURL
	}

	if !strings.Contains(raw, "http") && !strings.Contains(raw, ".") && !strings.Contains(raw, "/") {
		return ErrInvalidURL
	}

	return nil
}
