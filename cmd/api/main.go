// Package main is the entry point for the studio API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/naotica/studio/internal/auth"
	"github.com/naotica/studio/internal/chat"
	"github.com/naotica/studio/internal/config"
	"github.com/naotica/studio/internal/content"
	"github.com/naotica/studio/internal/domain"
	"github.com/naotica/studio/internal/infra/cache"
	"github.com/naotica/studio/internal/infra/r2"
	"github.com/naotica/studio/internal/infra/sqlite"
	"github.com/naotica/studio/internal/proxy"
	"github.com/naotica/studio/internal/ratelimit"
	"github.com/naotica/studio/internal/resolver"
	"github.com/naotica/studio/internal/service/queue"
	"github.com/naotica/studio/internal/service/retention"
	"github.com/naotica/studio/internal/service/usage"
	"github.com/naotica/studio/internal/storage"
	httptransport "github.com/naotica/studio/internal/transport/http"
	"github.com/naotica/studio/internal/transport/http/middleware"
	"github.com/naotica/studio/pkg/logger"
	"github.com/naotica/studio/pkg/safeclient"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Setup(&logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	slog.Info("Starting studio API",
		"env", cfg.Env,
		"port", cfg.Port,
		"resolver", cfg.ResolverBackend,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Content store
	repo, err := sqlite.NewRepository(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	seed, err := content.Load()
	if err != nil {
		return err
	}
	if err := repo.Seed(ctx, seed.Projects, seed.Services, &seed.Settings); err != nil {
		return fmt.Errorf("failed to seed content: %w", err)
	}

	// Rate limiting
	var limitStore ratelimit.Store
	if cfg.RedisURL != "" {
		client, err := ratelimit.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		limitStore = ratelimit.NewRedisStore(client, "studio:ratelimit:")
		slog.Info("Rate limiter using Redis")
	} else {
		memStore := ratelimit.NewMemoryStore(cfg.RateLimitSweep)
		defer memStore.Stop()
		limitStore = memStore
	}
	downloadLimiter := ratelimit.New("download", cfg.RateLimitDownload, cfg.RateLimitWindow, limitStore)
	chatLimiter := ratelimit.New("chat", cfg.RateLimitChat, cfg.RateLimitWindow, limitStore)

	// Download resolver
	var fetcher resolver.Fetcher
	switch cfg.ResolverBackend {
	case config.BackendYtDlp:
		ytdlp := resolver.NewYtDlp(cfg.YtDlpPath, cfg.DownloadAPITimeout)
		if err := ytdlp.CheckBinary(ctx); err != nil {
			return err
		}
		fetcher = ytdlp
	default:
		fetcher = resolver.NewAPIClient(cfg.DownloadAPIURL, cfg.DownloadAPIKey, cfg.DownloadAPITimeout)
	}
	mediaCache := cache.NewMediaCache(cfg.ResolveCacheTTL, 2*cfg.ResolveCacheTTL)
	throttle := rate.NewLimiter(rate.Limit(cfg.UpstreamRPS), cfg.UpstreamBurst)
	resolverSvc := resolver.NewService(fetcher, mediaCache, throttle)

	streamer := proxy.NewStreamer(safeclient.New(
		safeclient.WithTimeout(cfg.ProxyTimeout),
		safeclient.WithAllowPrivate(cfg.ProxyAllowPrivate),
	))

	chatClient := chat.NewClient(cfg.ChatAPIURL, cfg.ChatAPIKey, cfg.ChatAPITimeout)
	if !chatClient.Configured() {
		slog.Warn("CHAT_API_KEY not set, AI chat is disabled")
	}

	session, err := auth.NewManager(auth.Config{
		PasswordHash: cfg.AdminPasswordHash,
		Password:     cfg.AdminPassword,
		Secret:       cfg.SessionSecret,
		TTL:          cfg.SessionTTL,
		Secure:       cfg.IsProduction(),
	})
	if err != nil {
		return err
	}

	// Usage accounting is written by background workers.
	var usageSvc *usage.Service
	dispatcher := queue.NewDispatcher(cfg.UsageWorkers, cfg.UsageQueueSize, func(ctx context.Context, e *domain.UsageEvent) {
		usageSvc.Process(ctx, e)
	})
	usageSvc = usage.NewService(repo, dispatcher)
	dispatcher.Start(ctx)

	cleaner := retention.NewCleaner(repo, &retention.Config{
		MaxAge:   cfg.UsageRetention,
		Interval: cfg.CleanupInterval,
	})
	cleaner.Start(ctx)

	// Image uploads
	var backend storage.Backend
	var uploadDir string
	if cfg.R2Enabled() {
		client, err := r2.NewClient(ctx, &r2.Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicURL:       cfg.R2PublicURL,
		})
		if err != nil {
			return err
		}
		backend = client
	} else {
		local, err := storage.NewLocal(cfg.UploadDir, "/uploads")
		if err != nil {
			return err
		}
		backend = local
		uploadDir = local.Dir()
		slog.Info("R2 not configured, storing uploads locally", "dir", uploadDir)
	}

	var turnstile *middleware.TurnstileVerifier
	if !cfg.TurnstileSkip {
		turnstile = middleware.NewTurnstileVerifier(cfg.TurnstileSecretKey, safeclient.New(safeclient.WithTimeout(10*time.Second)))
	}

	handlers := httptransport.NewHandlers(&httptransport.Deps{
		Resolver: resolverSvc,
		Streamer: streamer,
		Chat:     chatClient,
		Store:    repo,
		Usage:    usageSvc,
		Uploader: storage.NewUploader(backend, cfg.MaxUploadSize),
		Queue:    dispatcher,
		Session:  session,
	})

	router := httptransport.NewRouter(&httptransport.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		Download:       downloadLimiter,
		Chat:           chatLimiter,
		Turnstile:      turnstile,
		UploadDir:      uploadDir,
	}, handlers)

	server := httptransport.NewServer(":"+cfg.Port, router, cfg.ProxyTimeout+time.Minute)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		slog.Info("Shutting down", "signal", sig.String())
	case err := <-serverErr:
		runErr = fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	// Drain pending usage events before the database closes.
	dispatcher.Stop()
	cleaner.Stop()

	slog.Info("Server stopped")
	return runErr
}
