// Package cache provides in-memory caching for resolved media.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/naotica/studio/internal/domain"
)

// MediaCache caches resolution results by normalized URL so repeated
// submissions of the same link do not spend upstream quota.
type MediaCache struct {
	cache *gocache.Cache
}

// NewMediaCache creates a MediaCache with the given TTL and cleanup interval.
func NewMediaCache(ttl, cleanupInterval time.Duration) *MediaCache {
	return &MediaCache{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// Get returns a copy of the cached result for url.
func (c *MediaCache) Get(url string) (*domain.ResolvedMedia, bool) {
	item, found := c.cache.Get(url)
	if !found {
		return nil, false
	}
	media, ok := item.(*domain.ResolvedMedia)
	if !ok {
		return nil, false
	}
	return clone(media), true
}

// Set stores a copy of media under url with the default TTL.
func (c *MediaCache) Set(url string, media *domain.ResolvedMedia) {
	c.cache.Set(url, clone(media), gocache.DefaultExpiration)
}

func clone(m *domain.ResolvedMedia) *domain.ResolvedMedia {
	out := *m
	if m.Thumbnail != nil {
		thumb := *m.Thumbnail
		out.Thumbnail = &thumb
	}
	if m.Formats != nil {
		out.Formats = append([]domain.Format(nil), m.Formats...)
	}
	return &out
}
