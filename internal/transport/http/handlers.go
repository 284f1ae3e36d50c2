// Package http provides HTTP handlers and router configuration.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/naotica/studio/internal/auth"
	"github.com/naotica/studio/internal/domain"
)

// maxBodySize bounds JSON request bodies.
const maxBodySize = 1 << 20

// Deps holds the collaborators of Handlers.
type Deps struct {
	Resolver Resolver
	Streamer Streamer
	Chat     ChatClient
	Store    ContentStore
	Usage    UsageTracker
	Uploader ImageUploader
	Queue    QueueStats
	Session  *auth.Manager
}

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	resolver Resolver
	streamer Streamer
	chat     ChatClient
	store    ContentStore
	usage    UsageTracker
	uploader ImageUploader
	queue    QueueStats
	session  *auth.Manager
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(d *Deps) *Handlers {
	return &Handlers{
		resolver: d.Resolver,
		streamer: d.Streamer,
		chat:     d.Chat,
		store:    d.Store,
		usage:    d.Usage,
		uploader: d.Uploader,
		queue:    d.Queue,
		session:  d.Session,
	}
}

// HealthHandler handles GET /api/health requests.
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	response := &domain.HealthResponse{Status: "ok"}
	if h.queue != nil {
		response.QueueSize = h.queue.QueueSize()
		response.Workers = h.queue.WorkerCount()
	}

	writeJSON(w, http.StatusOK, response)
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, &domain.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// writeValidation writes a 400 for a domain.ValidationError, or a 500 with fallback.
func writeValidation(w http.ResponseWriter, err error, fallback string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, ve.Message, "VALIDATION_ERROR")
		return
	}
	writeError(w, http.StatusInternalServerError, fallback, "INTERNAL_ERROR")
}
