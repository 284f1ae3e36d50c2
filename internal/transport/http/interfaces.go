package http

import (
	"context"
	"io"
	"net/http"

	"github.com/naotica/studio/internal/domain"
	"github.com/naotica/studio/internal/proxy"
)

// Resolver turns a user-submitted link into a direct download link.
//
//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks
type Resolver interface {
	Resolve(ctx context.Context, rawURL string) (*domain.ResolvedMedia, error)
}

// Streamer opens a media URL for relaying to the client.
type Streamer interface {
	Open(ctx context.Context, sourceURL string) (*proxy.Stream, error)
}

// ChatClient forwards prompts to the chat upstream.
type ChatClient interface {
	Configured() bool
	Ask(ctx context.Context, message string) (string, error)
}

// ContentStore persists the site content.
type ContentStore interface {
	// Projects
	ListProjects(ctx context.Context, featuredOnly bool) ([]domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	CreateProject(ctx context.Context, p *domain.Project) error
	UpdateProject(ctx context.Context, p *domain.Project) error
	DeleteProject(ctx context.Context, id string) error

	// Services
	ListServices(ctx context.Context) ([]domain.Service, error)
	GetService(ctx context.Context, id string) (*domain.Service, error)
	CreateService(ctx context.Context, svc *domain.Service) error
	UpdateService(ctx context.Context, svc *domain.Service) error
	DeleteService(ctx context.Context, id string) error

	// Watchlist
	ListWatchlist(ctx context.Context) ([]domain.WatchlistItem, error)
	GetWatchlistItem(ctx context.Context, id string) (*domain.WatchlistItem, error)
	CreateWatchlistItem(ctx context.Context, w *domain.WatchlistItem) error
	UpdateWatchlistItem(ctx context.Context, w *domain.WatchlistItem) error
	DeleteWatchlistItem(ctx context.Context, id string) error

	// Settings
	GetSettings(ctx context.Context) (*domain.Settings, error)
	SaveSettings(ctx context.Context, s *domain.Settings) error
}

// UsageTracker records tool usage and summarises it.
type UsageTracker interface {
	Record(r *http.Request, tool domain.Tool, success bool, clientIP string)
	Stats(ctx context.Context) (*domain.Stats, error)
}

// ImageUploader stores an uploaded image and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, r io.Reader) (string, error)
	MaxSize() int64
}

// QueueStats reports the usage worker pool state.
type QueueStats interface {
	QueueSize() int
	WorkerCount() int
}
