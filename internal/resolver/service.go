package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/naotica/studio/internal/domain"
	"github.com/naotica/studio/internal/infra/cache"
)

// Fetcher returns the raw upstream reply for a normalized media URL.
type Fetcher interface {
	Fetch(ctx context.Context, mediaURL string) ([]byte, error)
}

// Service resolves user-submitted links.
type Service struct {
	fetcher  Fetcher
	cache    *cache.MediaCache
	throttle *rate.Limiter
}

// NewService creates a Service. cache and throttle may be nil.
func NewService(fetcher Fetcher, mediaCache *cache.MediaCache, throttle *rate.Limiter) *Service {
	return &Service{
		fetcher:  fetcher,
		cache:    mediaCache,
		throttle: throttle,
	}
}

// Resolve validates and normalizes rawURL, then resolves it through the
// fetcher. Only successful resolutions are cached.
func (s *Service) Resolve(ctx context.Context, rawURL string) (*domain.ResolvedMedia, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	mediaURL := NormalizeURL(rawURL)

	if s.cache != nil {
		if media, ok := s.cache.Get(mediaURL); ok {
			slog.Debug("Resolution cache hit", "url", mediaURL)
			return media, nil
		}
	}

	if s.throttle != nil {
		if err := s.throttle.Wait(ctx); err != nil {
			return nil, fmt.Errorf("failed to wait for upstream slot: %w", err)
		}
	}

	body, err := s.fetcher.Fetch(ctx, mediaURL)
	if err != nil {
		return nil, err
	}

	payload, err := Decode(body)
	if err != nil {
		return nil, err
	}

	media, err := Normalize(payload)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(mediaURL, media)
	}

	slog.Info("Download link resolved",
		"url", mediaURL,
		"title", media.Title,
		"formats", len(media.Formats),
	)

	return media, nil
}
