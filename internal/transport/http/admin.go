package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/naotica/studio/internal/auth"
	"github.com/naotica/studio/internal/storage"
	"github.com/naotica/studio/internal/transport/http/middleware"
)

type loginRequest struct {
	Password string `json:"password"`
}

// LoginHandler handles POST /api/auth.
func (h *Handlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	token, err := h.session.Login(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			slog.Warn("Admin login failed", "ip", middleware.ClientKey(r))
			writeError(w, http.StatusUnauthorized, err.Error(), "INVALID_PASSWORD")
			return
		}
		slog.Error("Failed to issue session", "error", err)
		writeError(w, http.StatusInternalServerError, "Authentication failed", "INTERNAL_ERROR")
		return
	}

	h.session.SetCookie(w, token)

	slog.Info("Admin logged in", "ip", middleware.ClientKey(r))

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// LogoutHandler handles DELETE /api/auth.
func (h *Handlers) LogoutHandler(w http.ResponseWriter, _ *http.Request) {
	h.session.ClearCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// SessionHandler handles GET /api/auth and reports whether the caller is signed in.
func (h *Handlers) SessionHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"authenticated": h.session.IsAdmin(r),
	})
}

// UploadHandler handles POST /api/admin/uploads. The image is sent as the
// multipart field "file".
func (h *Handlers) UploadHandler(w http.ResponseWriter, r *http.Request) {
	maxSize := h.uploader.MaxSize()
	// Leave room for the multipart envelope around the file.
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+64<<10)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, storage.ErrTooLarge.Error(), "FILE_TOO_LARGE")
			return
		}
		writeError(w, http.StatusBadRequest, "File is required", "MISSING_FILE")
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(r.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrTooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, err.Error(), "FILE_TOO_LARGE")
		case errors.Is(err, storage.ErrUnsupportedType), errors.Is(err, storage.ErrEmptyFile):
			writeError(w, http.StatusBadRequest, err.Error(), "INVALID_FILE")
		default:
			slog.Error("Failed to store upload", "filename", header.Filename, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to upload file", "UPLOAD_FAILED")
		}
		return
	}

	slog.Info("Image uploaded", "filename", header.Filename, "url", url)

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "url": url})
}
