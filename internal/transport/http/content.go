package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/naotica/studio/internal/domain"
)

// ListProjectsHandler handles GET /api/projects. ?featured=true limits the
// list to featured projects.
func (h *Handlers) ListProjectsHandler(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.ListProjects(r.Context(), r.URL.Query().Get("featured") == "true")
	if err != nil {
		slog.Error("Failed to list projects", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch projects", "DB_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"projects": projects,
		"count":    len(projects),
	})
}

// CreateProjectHandler handles POST /api/projects.
func (h *Handlers) CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.ProjectInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	project, err := domain.NewProject(&in)
	if err != nil {
		writeValidation(w, err, "Failed to add project")
		return
	}

	if err := h.store.CreateProject(r.Context(), project); err != nil {
		slog.Error("Failed to create project", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to add project", "DB_ERROR")
		return
	}

	slog.Info("Project added", "id", project.ID, "title", project.Title)

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "project": project})
}

// UpdateProjectHandler handles PUT /api/projects. The body carries the id.
func (h *Handlers) UpdateProjectHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.ProjectInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}
	if in.ID == "" {
		writeError(w, http.StatusBadRequest, "Project ID is required", "MISSING_ID")
		return
	}

	project, err := h.store.GetProject(r.Context(), in.ID)
	if err != nil {
		writeLookupError(w, err, "Project not found", "Failed to update project")
		return
	}

	project.Apply(&in)
	if err := h.store.UpdateProject(r.Context(), project); err != nil {
		writeLookupError(w, err, "Project not found", "Failed to update project")
		return
	}

	slog.Info("Project updated", "id", project.ID)

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "project": project})
}

// DeleteProjectHandler handles DELETE /api/projects?id=.
func (h *Handlers) DeleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, "Project", h.store.DeleteProject)
}

// ListServicesHandler handles GET /api/services.
func (h *Handlers) ListServicesHandler(w http.ResponseWriter, r *http.Request) {
	services, err := h.store.ListServices(r.Context())
	if err != nil {
		slog.Error("Failed to list services", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch services", "DB_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"services": services,
		"count":    len(services),
	})
}

// CreateServiceHandler handles POST /api/services.
func (h *Handlers) CreateServiceHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.ServiceInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	service, err := domain.NewService(&in)
	if err != nil {
		writeValidation(w, err, "Failed to add service")
		return
	}

	if err := h.store.CreateService(r.Context(), service); err != nil {
		slog.Error("Failed to create service", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to add service", "DB_ERROR")
		return
	}

	slog.Info("Service added", "id", service.ID, "place", service.PlaceName)

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "service": service})
}

// UpdateServiceHandler handles PUT /api/services.
func (h *Handlers) UpdateServiceHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.ServiceInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}
	if in.ID == "" {
		writeError(w, http.StatusBadRequest, "Service ID is required", "MISSING_ID")
		return
	}

	service, err := h.store.GetService(r.Context(), in.ID)
	if err != nil {
		writeLookupError(w, err, "Service not found", "Failed to update service")
		return
	}

	service.Apply(&in)
	if err := h.store.UpdateService(r.Context(), service); err != nil {
		writeLookupError(w, err, "Service not found", "Failed to update service")
		return
	}

	slog.Info("Service updated", "id", service.ID)

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "service": service})
}

// DeleteServiceHandler handles DELETE /api/services?id=.
func (h *Handlers) DeleteServiceHandler(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, "Service", h.store.DeleteService)
}

// ListWatchlistHandler handles GET /api/watchlist.
func (h *Handlers) ListWatchlistHandler(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListWatchlist(r.Context())
	if err != nil {
		slog.Error("Failed to list watchlist", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch watchlist", "DB_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"watchlist": items,
		"count":     len(items),
	})
}

// CreateWatchlistHandler handles POST /api/watchlist.
func (h *Handlers) CreateWatchlistHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.WatchlistInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	item, err := domain.NewWatchlistItem(&in)
	if err != nil {
		writeValidation(w, err, "Failed to add watchlist item")
		return
	}

	if err := h.store.CreateWatchlistItem(r.Context(), item); err != nil {
		slog.Error("Failed to create watchlist item", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to add watchlist item", "DB_ERROR")
		return
	}

	slog.Info("Watchlist item added", "id", item.ID, "title", item.Title)

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "item": item})
}

// UpdateWatchlistHandler handles PUT /api/watchlist.
func (h *Handlers) UpdateWatchlistHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.WatchlistInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}
	if in.ID == "" {
		writeError(w, http.StatusBadRequest, "Watchlist item ID is required", "MISSING_ID")
		return
	}

	item, err := h.store.GetWatchlistItem(r.Context(), in.ID)
	if err != nil {
		writeLookupError(w, err, "Watchlist item not found", "Failed to update watchlist item")
		return
	}

	if err := item.Apply(&in); err != nil {
		writeValidation(w, err, "Failed to update watchlist item")
		return
	}
	if err := h.store.UpdateWatchlistItem(r.Context(), item); err != nil {
		writeLookupError(w, err, "Watchlist item not found", "Failed to update watchlist item")
		return
	}

	slog.Info("Watchlist item updated", "id", item.ID)

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "item": item})
}

// DeleteWatchlistHandler handles DELETE /api/watchlist?id=.
func (h *Handlers) DeleteWatchlistHandler(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, "Watchlist item", h.store.DeleteWatchlistItem)
}

// GetSettingsHandler handles GET /api/settings.
func (h *Handlers) GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.GetSettings(r.Context())
	if err != nil {
		slog.Error("Failed to get settings", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch settings", "DB_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "settings": settings})
}

// UpdateSettingsHandler handles POST /api/settings. Only fields carrying a
// value of the right JSON type are applied.
func (h *Handlers) UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var patch map[string]json.RawMessage
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	settings, err := h.store.GetSettings(r.Context())
	if err != nil {
		slog.Error("Failed to get settings", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update settings", "DB_ERROR")
		return
	}

	settings.ApplyPatch(patch)
	if err := h.store.SaveSettings(r.Context(), settings); err != nil {
		slog.Error("Failed to save settings", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update settings", "DB_ERROR")
		return
	}

	slog.Info("Settings updated",
		"downloader_maintenance", settings.DownloaderMaintenance,
		"ai_chat_maintenance", settings.AIChatMaintenance,
		"image_tools_maintenance", settings.ImageToolsMaintenance,
	)

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "settings": settings})
}

// StatsHandler handles GET /api/stats.
func (h *Handlers) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.usage.Stats(r.Context())
	if err != nil {
		slog.Error("Failed to compute stats", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch stats", "DB_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": stats})
}

func (h *Handlers) deleteByID(w http.ResponseWriter, r *http.Request, entity string, del func(ctx context.Context, id string) error) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, entity+" ID is required", "MISSING_ID")
		return
	}

	if err := del(r.Context(), id); err != nil {
		writeLookupError(w, err, entity+" not found", "Failed to delete "+strings.ToLower(entity))
		return
	}

	slog.Info(entity+" deleted", "id", id)

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": entity + " deleted"})
}

func writeLookupError(w http.ResponseWriter, err error, notFound, failed string) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, notFound, "NOT_FOUND")
		return
	}
	slog.Error(failed, "error", err)
	writeError(w, http.StatusInternalServerError, failed, "DB_ERROR")
}
