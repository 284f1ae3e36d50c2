// Package middleware provides HTTP middleware functions.
package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/naotica/studio/internal/domain"
	"github.com/naotica/studio/internal/ratelimit"
)

const unknownClient = "unknown"

// RateLimitMiddleware rejects requests once the client has used up the
// limiter's allowance for the current window.
func RateLimitMiddleware(l *ratelimit.Limiter) func(http.Handler) http.Handler {
	retryAfter := strconv.Itoa(int(l.Window().Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientKey(r)

			allowed, err := l.Admit(r.Context(), key)
			if err != nil {
				// Store outage: let the request through rather than take the tools down.
				slog.Error("Rate limit check failed",
					"error", err,
					"path", r.URL.Path,
				)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				slog.Warn("Rate limit exceeded",
					"ip", key,
					"path", r.URL.Path,
				)

				w.Header().Set("Retry-After", retryAfter)
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.Limit()))
				w.Header().Set("X-RateLimit-Remaining", "0")
				writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", "RATE_LIMIT")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientKey identifies the caller for rate limiting and usage hashing.
// Requests without any forwarding header share the "unknown" bucket.
func ClientKey(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	// Cloudflare's real IP header
	if ip := strings.TrimSpace(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}

	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	return unknownClient
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(&domain.ErrorResponse{Error: message, Code: code}); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}
