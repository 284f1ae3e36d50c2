package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/naotica/studio/internal/chat"
	"github.com/naotica/studio/internal/domain"
	"github.com/naotica/studio/internal/proxy"
	"github.com/naotica/studio/internal/resolver"
	"github.com/naotica/studio/internal/transport/http/middleware"
	"github.com/naotica/studio/pkg/safeclient"
)

const (
	msgConnectionError = "Connection error. Please try again."
	msgUpstreamFailed  = "Failed to fetch download link. Please check the URL."
)

// DownloadHandler handles POST /api/tools/download requests.
func (h *Handlers) DownloadHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.DownloadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	clientIP := middleware.ClientKey(r)

	media, err := h.resolver.Resolve(r.Context(), req.URL)
	if err != nil {
		status, message, code := resolveErrorStatus(err)
		if status == http.StatusInternalServerError {
			slog.Error("Download resolution failed",
				"error", err,
				"url", req.URL,
				"ip", clientIP,
			)
		} else {
			slog.Warn("Download resolution rejected",
				"error", err,
				"url", req.URL,
				"status", status,
			)
		}
		if code != "INVALID_URL" {
			h.usage.Record(r, domain.ToolDownloader, false, clientIP)
		}
		writeError(w, status, message, code)
		return
	}

	h.usage.Record(r, domain.ToolDownloader, true, clientIP)

	slog.Info("Download link resolved",
		"title", media.Title,
		"formats", len(media.Formats),
		"ip", clientIP,
	)

	writeJSON(w, http.StatusOK, &domain.DownloadResponse{Success: true, ResolvedMedia: media})
}

// resolveErrorStatus maps a resolver error to its HTTP status, message and code.
func resolveErrorStatus(err error) (int, string, string) {
	var upstreamErr *resolver.UpstreamError
	var resolutionErr *resolver.ResolutionError

	switch {
	case errors.Is(err, resolver.ErrEmptyURL), errors.Is(err, resolver.ErrInvalidURL):
		return http.StatusBadRequest, err.Error(), "INVALID_URL"
	case errors.Is(err, resolver.ErrUpstreamAuth):
		return http.StatusUnauthorized, resolver.ErrUpstreamAuth.Error(), "UPSTREAM_AUTH"
	case errors.As(err, &upstreamErr) && upstreamErr.Status != 0:
		return http.StatusBadRequest, msgUpstreamFailed, "UPSTREAM_UNAVAILABLE"
	case errors.As(err, &resolutionErr):
		return http.StatusBadRequest, resolutionErr.Message, "RESOLUTION_FAILED"
	default:
		return http.StatusInternalServerError, msgConnectionError, "INTERNAL_ERROR"
	}
}

// DownloadProxyHandler handles GET /api/tools/download/proxy requests. The
// upstream body is relayed without buffering.
func (h *Handlers) DownloadProxyHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sourceURL := q.Get("url")
	if sourceURL == "" {
		writeError(w, http.StatusBadRequest, "Download URL is required", "MISSING_URL")
		return
	}

	parsed, err := url.Parse(sourceURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		writeError(w, http.StatusBadRequest, "Invalid download URL", "INVALID_URL")
		return
	}

	format := q.Get("format")
	if format == "" {
		format = "mp4"
	}
	filename := proxy.SanitizeFilename(q.Get("filename"), format)

	stream, err := h.streamer.Open(r.Context(), sourceURL)
	if err != nil {
		switch {
		case errors.Is(err, proxy.ErrUpstreamFetch):
			slog.Warn("Proxy upstream rejected fetch", "host", parsed.Host, "error", err)
			writeError(w, http.StatusBadGateway, "Failed to fetch file", "UPSTREAM_FETCH_FAILED")
		case errors.Is(err, safeclient.ErrForbiddenIP):
			slog.Warn("Proxy blocked private address", "host", parsed.Host)
			writeError(w, http.StatusBadRequest, "Invalid download URL", "INVALID_URL")
		default:
			slog.Error("Proxy fetch failed", "host", parsed.Host, "error", err)
			writeError(w, http.StatusInternalServerError, "Download failed", "INTERNAL_ERROR")
		}
		return
	}
	defer stream.Close()

	w.Header().Set("Content-Type", proxy.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Cache-Control", "no-cache")
	if stream.ContentLength >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(stream.ContentLength, 10))
	}
	w.WriteHeader(http.StatusOK)

	written, err := io.Copy(w, stream.Body)
	if err != nil {
		// Headers are already sent; the client sees a truncated body.
		slog.Warn("Proxy stream interrupted",
			"filename", filename,
			"bytes", written,
			"error", err,
		)
		return
	}

	slog.Info("Proxy stream completed",
		"filename", filename,
		"bytes", written,
	)
}

// ChatHandler handles POST /api/tools/chat requests.
func (h *Handlers) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	if err := chat.ValidateMessage(req.Message); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_MESSAGE")
		return
	}

	clientIP := middleware.ClientKey(r)

	reply, err := h.chat.Ask(r.Context(), req.Message)
	if err != nil {
		var replyErr *chat.ReplyError
		switch {
		case errors.Is(err, chat.ErrNotConfigured):
			writeError(w, http.StatusServiceUnavailable, err.Error(), "SERVICE_UNAVAILABLE")
		case errors.As(err, &replyErr):
			slog.Warn("Chat upstream returned no reply", "error", err)
			h.usage.Record(r, domain.ToolAIChat, false, clientIP)
			writeError(w, http.StatusBadRequest, replyErr.Message, "CHAT_FAILED")
		default:
			slog.Error("Chat request failed", "error", err)
			h.usage.Record(r, domain.ToolAIChat, false, clientIP)
			writeError(w, http.StatusInternalServerError, msgConnectionError, "INTERNAL_ERROR")
		}
		return
	}

	h.usage.Record(r, domain.ToolAIChat, true, clientIP)

	slog.Info("Chat reply delivered", "length", len(reply))

	writeJSON(w, http.StatusOK, &domain.ChatResponse{Success: true, Response: reply})
}

// RequireChat answers 503 while the chat upstream has no API key.
func (h *Handlers) RequireChat(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.chat.Configured() {
			slog.Error("Chat API key not configured")
			writeError(w, http.StatusServiceUnavailable, chat.ErrNotConfigured.Error(), "SERVICE_UNAVAILABLE")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type imageTool struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

var imageTools = []imageTool{
	{
		Title:       "Image Upscaler",
		Description: "Enhance and upscale your images using AI technology. Increase resolution up to 4x without losing quality.",
		Features:    []string{"4x Resolution", "AI Enhanced", "Batch Processing"},
	},
	{
		Title:       "Background Remover",
		Description: "Remove backgrounds from images instantly. Perfect for product photos, portraits, and more.",
		Features:    []string{"Instant Removal", "HD Quality", "Transparent PNG"},
	},
}

// ImageToolsHandler handles GET /api/tools/image requests.
func (h *Handlers) ImageToolsHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"status":  "coming_soon",
		"tools":   imageTools,
	})
}

var maintenanceMessages = map[domain.Tool]string{
	domain.ToolDownloader: "Downloader is under maintenance",
	domain.ToolAIChat:     "AI Chat is under maintenance",
	domain.ToolImageTools: "Image tools are under maintenance",
}

// Maintenance answers 503 while the settings switch tool off. A settings
// read failure lets the request through.
func (h *Handlers) Maintenance(tool domain.Tool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			settings, err := h.store.GetSettings(r.Context())
			if err != nil {
				slog.Error("Failed to read maintenance flags", "tool", tool, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if settings.Maintenance(tool) {
				writeError(w, http.StatusServiceUnavailable, maintenanceMessages[tool], "MAINTENANCE")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
