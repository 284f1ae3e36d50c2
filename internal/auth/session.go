// Package auth implements the single-admin session used by the dashboard.
package auth

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/naotica/studio/internal/domain"
)

// CookieName is the session cookie set on login.
const CookieName = "admin_session"

const adminSubject = "admin"

var (
	ErrInvalidPassword = errors.New("Invalid password")
	ErrInvalidSession  = errors.New("invalid session")
)

// Config configures a Manager.
type Config struct {
	// PasswordHash is a bcrypt hash. It wins over Password.
	PasswordHash string
	Password     string
	// Secret signs session tokens. When empty it is derived from the credential.
	Secret string
	TTL    time.Duration
	// Secure marks the cookie Secure (production).
	Secure bool
}

// Manager verifies the admin password and issues signed session cookies.
type Manager struct {
	hash   []byte
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewManager creates a Manager. A plaintext password is hashed once here.
func NewManager(cfg Config) (*Manager, error) {
	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 {
		if cfg.Password == "" {
			return nil, errors.New("admin password is not configured")
		}
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("invalid admin password hash: %w", err)
	}

	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		seed := cfg.Password
		if cfg.PasswordHash != "" {
			seed = cfg.PasswordHash
		}
		sum := sha256.Sum256([]byte("studio-session:" + seed))
		secret = sum[:]
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Manager{
		hash:   hash,
		secret: secret,
		ttl:    ttl,
		secure: cfg.Secure,
		now:    time.Now,
	}, nil
}

// Login checks password and returns a session token.
func (m *Manager) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(m.hash, []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}
	return m.issue()
}

func (m *Manager) issue() (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   adminSubject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// Validate checks a session token's signature, expiry and subject.
func (m *Manager) Validate(raw string) error {
	parsed, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(adminSubject),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !parsed.Valid {
		return ErrInvalidSession
	}
	return nil
}

// SetCookie writes the session cookie.
func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearCookie expires the session cookie.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// IsAdmin reports whether r carries a valid session cookie.
func (m *Manager) IsAdmin(r *http.Request) bool {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return false
	}
	return m.Validate(c.Value) == nil
}

// RequireAdmin rejects requests without a valid session.
func (m *Manager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.IsAdmin(r) {
			slog.Warn("Unauthorized admin request",
				"path", r.URL.Path,
				"method", r.Method,
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(&domain.ErrorResponse{Error: "Unauthorized", Code: "UNAUTHORIZED"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
