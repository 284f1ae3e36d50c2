package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/naotica/studio/internal/domain"
	"github.com/naotica/studio/internal/ratelimit"
	"github.com/naotica/studio/internal/transport/http/middleware"
)

// requestTimeout bounds every route except the streaming proxy.
const requestTimeout = 30 * time.Second

// RouterConfig holds what the router needs beyond the handlers.
type RouterConfig struct {
	AllowedOrigins []string
	// Download and Chat limit the tool endpoints per client.
	Download *ratelimit.Limiter
	Chat     *ratelimit.Limiter
	// Turnstile is nil when bot checks are skipped.
	Turnstile *middleware.TurnstileVerifier
	// UploadDir is served under /uploads/ when set.
	UploadDir string
}

// NewRouter creates a new chi router with all routes and middleware configured.
func NewRouter(cfg *RouterConfig, h *Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Compress(5))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Turnstile-Token"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	botCheck := func(next http.Handler) http.Handler { return next }
	if cfg.Turnstile != nil {
		botCheck = middleware.TurnstileMiddleware(cfg.Turnstile)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HealthHandler)

		// Streams may run for minutes, so the proxy sits outside the request timeout.
		r.With(h.Maintenance(domain.ToolDownloader)).Get("/tools/download/proxy", h.DownloadProxyHandler)

		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Timeout(requestTimeout))

			r.With(
				h.Maintenance(domain.ToolDownloader),
				middleware.RateLimitMiddleware(cfg.Download),
				botCheck,
			).Post("/tools/download", h.DownloadHandler)

			r.With(
				h.Maintenance(domain.ToolAIChat),
				h.RequireChat,
				middleware.RateLimitMiddleware(cfg.Chat),
				botCheck,
			).Post("/tools/chat", h.ChatHandler)

			r.With(h.Maintenance(domain.ToolImageTools)).Get("/tools/image", h.ImageToolsHandler)

			r.Get("/stats", h.StatsHandler)

			r.Route("/auth", func(r chi.Router) {
				r.Get("/", h.SessionHandler)
				r.Post("/", h.LoginHandler)
				r.Delete("/", h.LogoutHandler)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.ListProjectsHandler)
				r.With(h.session.RequireAdmin).Post("/", h.CreateProjectHandler)
				r.With(h.session.RequireAdmin).Put("/", h.UpdateProjectHandler)
				r.With(h.session.RequireAdmin).Delete("/", h.DeleteProjectHandler)
			})

			r.Route("/services", func(r chi.Router) {
				r.Get("/", h.ListServicesHandler)
				r.With(h.session.RequireAdmin).Post("/", h.CreateServiceHandler)
				r.With(h.session.RequireAdmin).Put("/", h.UpdateServiceHandler)
				r.With(h.session.RequireAdmin).Delete("/", h.DeleteServiceHandler)
			})

			r.Route("/watchlist", func(r chi.Router) {
				r.Get("/", h.ListWatchlistHandler)
				r.With(h.session.RequireAdmin).Post("/", h.CreateWatchlistHandler)
				r.With(h.session.RequireAdmin).Put("/", h.UpdateWatchlistHandler)
				r.With(h.session.RequireAdmin).Delete("/", h.DeleteWatchlistHandler)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.GetSettingsHandler)
				r.With(h.session.RequireAdmin).Post("/", h.UpdateSettingsHandler)
			})

			r.With(h.session.RequireAdmin).Post("/admin/uploads", h.UploadHandler)
		})
	})

	if cfg.UploadDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", noListing(http.FileServer(http.Dir(cfg.UploadDir)))))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found", "NOT_FOUND")
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	return r
}

// noListing hides directory indexes from the upload file server.
func noListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			writeError(w, http.StatusNotFound, "Not found", "NOT_FOUND")
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")
		next.ServeHTTP(w, r)
	})
}

// NewServer creates the HTTP server. writeTimeout must cover the longest proxied download.
func NewServer(addr string, handler http.Handler, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       120 * time.Second,
	}
}
