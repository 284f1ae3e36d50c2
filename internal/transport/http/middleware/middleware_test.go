package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naotica/studio/internal/domain"
	"github.com/naotica/studio/internal/ratelimit"
)

func TestClientKey(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "first forwarded-for entry",
			headers: map[string]string{"X-Forwarded-For": " 203.0.113.7 , 10.0.0.1", "CF-Connecting-IP": "1.1.1.1"},
			want:    "203.0.113.7",
		},
		{
			name:    "cloudflare header",
			headers: map[string]string{"CF-Connecting-IP": "198.51.100.2", "X-Real-IP": "1.1.1.1"},
			want:    "198.51.100.2",
		},
		{
			name:    "real ip header",
			headers: map[string]string{"X-Real-IP": "192.0.2.9"},
			want:    "192.0.2.9",
		},
		{
			name: "no headers share one bucket",
			want: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/tools/download", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			require.Equal(t, tt.want, ClientKey(r))
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	store := ratelimit.NewMemoryStore(0)
	defer store.Stop()

	limiter := ratelimit.New("download", 2, time.Minute, store)
	h := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(ip string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/api/tools/download", nil)
		r.Header.Set("X-Forwarded-For", ip)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec
	}

	require.Equal(t, http.StatusOK, do("1.2.3.4").Code)
	require.Equal(t, http.StatusOK, do("1.2.3.4").Code)

	rec := do("1.2.3.4")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "60", rec.Header().Get("Retry-After"))

	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.Equal(t, "Rate limit exceeded. Please try again later.", body.Error)
	require.Equal(t, "RATE_LIMIT", body.Code)

	require.Equal(t, http.StatusOK, do("5.6.7.8").Code)
}

func TestTurnstileMiddleware(t *testing.T) {
	verify := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "secret", r.PostForm.Get("secret"))
		ok := r.PostForm.Get("response") == "good"
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": ok})
	}))
	defer verify.Close()

	v := NewTurnstileVerifier("secret", verify.Client())
	v.endpoint = verify.URL

	h := TurnstileMiddleware(v)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		query  string
		want   int
	}{
		{name: "missing token", want: http.StatusBadRequest},
		{name: "valid header token", header: "good", want: http.StatusNoContent},
		{name: "valid query token", query: "good", want: http.StatusNoContent},
		{name: "invalid token", header: "bad", want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/api/tools/chat"
			if tt.query != "" {
				target += "?turnstile=" + tt.query
			}
			r := httptest.NewRequest(http.MethodPost, target, nil)
			if tt.header != "" {
				r.Header.Set(turnstileHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, r)
			require.Equal(t, tt.want, rec.Code)
		})
	}
}
