// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Resolver backends.
const (
	BackendAPI   = "api"
	BackendYtDlp = "ytdlp"
)

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port           string   `env:"PORT" envDefault:"8080"`
	Env            string   `env:"ENV" envDefault:"development"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string   `env:"LOG_FORMAT" envDefault:"text"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`

	// Download upstream
	DownloadAPIURL     string        `env:"DOWNLOAD_API_URL" envDefault:"https://vkrdownloader.org/server/"`
	DownloadAPIKey     string        `env:"DOWNLOAD_API_KEY" envDefault:"vkrdownloader"`
	DownloadAPITimeout time.Duration `env:"DOWNLOAD_API_TIMEOUT" envDefault:"20s"`
	ResolverBackend    string        `env:"RESOLVER_BACKEND" envDefault:"api"`
	YtDlpPath          string        `env:"YTDLP_PATH" envDefault:"yt-dlp"`
	UpstreamRPS        float64       `env:"UPSTREAM_RPS" envDefault:"2"`
	UpstreamBurst      int           `env:"UPSTREAM_BURST" envDefault:"4"`
	ResolveCacheTTL    time.Duration `env:"RESOLVE_CACHE_TTL" envDefault:"2m"`

	// Streaming proxy
	ProxyTimeout      time.Duration `env:"PROXY_TIMEOUT" envDefault:"10m"`
	ProxyAllowPrivate bool          `env:"PROXY_ALLOW_PRIVATE" envDefault:"false"`

	// Chat upstream
	ChatAPIURL     string        `env:"CHAT_API_URL" envDefault:"https://api.hamsoffc.me/ai/deepseek"`
	ChatAPIKey     string        `env:"CHAT_API_KEY"`
	ChatAPITimeout time.Duration `env:"CHAT_API_TIMEOUT" envDefault:"60s"`

	// Rate Limiting
	RateLimitDownload int           `env:"RATE_LIMIT_DOWNLOAD" envDefault:"10"`
	RateLimitChat     int           `env:"RATE_LIMIT_CHAT" envDefault:"20"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	RateLimitSweep    time.Duration `env:"RATE_LIMIT_SWEEP" envDefault:"5m"`
	RedisURL          string        `env:"REDIS_URL"`

	// Admin
	AdminPassword     string        `env:"ADMIN_PASSWORD" envDefault:"naotica-admin-2024"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	SessionSecret     string        `env:"SESSION_SECRET"`
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// Turnstile
	TurnstileSecretKey string `env:"TURNSTILE_SECRET_KEY"`
	TurnstileSkip      bool   `env:"TURNSTILE_SKIP" envDefault:"true"`

	// Storage
	DataDir       string `env:"DATA_DIR" envDefault:"./data"`
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	MaxUploadSize int64  `env:"MAX_UPLOAD_SIZE" envDefault:"5242880"` // 5MB

	// R2 Storage
	R2AccountID       string `env:"R2_ACCOUNT_ID"`
	R2AccessKeyID     string `env:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY"`
	R2BucketName      string `env:"R2_BUCKET_NAME"`
	R2PublicURL       string `env:"R2_PUBLIC_URL"`

	// Usage workers
	UsageWorkers    int           `env:"USAGE_WORKERS" envDefault:"2"`
	UsageQueueSize  int           `env:"USAGE_QUEUE_SIZE" envDefault:"100"`
	UsageRetention  time.Duration `env:"USAGE_RETENTION" envDefault:"2160h"` // 90 days
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"1h"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks values that env parsing alone cannot.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	switch c.ResolverBackend {
	case BackendAPI, BackendYtDlp:
	default:
		return fmt.Errorf("invalid resolver backend %q, must be %q or %q", c.ResolverBackend, BackendAPI, BackendYtDlp)
	}

	if c.RateLimitDownload <= 0 || c.RateLimitChat <= 0 {
		return fmt.Errorf("rate limits must be positive")
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	// go-cache treats a zero TTL as no expiry.
	if c.ResolveCacheTTL <= 0 {
		return fmt.Errorf("RESOLVE_CACHE_TTL must be positive")
	}

	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// R2Enabled reports whether all R2 credentials are present.
func (c *Config) R2Enabled() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}
