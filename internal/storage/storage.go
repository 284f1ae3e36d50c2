// Package storage accepts admin image uploads and hands them to a backend.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTooLarge        = errors.New("File too large")
	ErrUnsupportedType = errors.New("Only JPEG, PNG, WebP and GIF images are allowed")
	ErrEmptyFile       = errors.New("File is empty")
)

// imageTypes maps sniffed content types to file extensions.
var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Backend stores an object and returns the URL it is served from.
type Backend interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

// Uploader validates images and stores them under a random key.
type Uploader struct {
	backend Backend
	maxSize int64
	now     func() time.Time
}

// NewUploader creates an Uploader accepting files up to maxSize bytes.
func NewUploader(backend Backend, maxSize int64) *Uploader {
	return &Uploader{backend: backend, maxSize: maxSize, now: time.Now}
}

// MaxSize returns the largest accepted upload in bytes.
func (u *Uploader) MaxSize() int64 {
	return u.maxSize
}

// Upload reads an image from r and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, u.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if int64(len(data)) > u.maxSize {
		return "", ErrTooLarge
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageTypes[contentType]
	if !ok {
		slog.Warn("Rejected upload", "content_type", contentType)
		return "", ErrUnsupportedType
	}

	key := path.Join("images", u.now().UTC().Format("2006/01"), uuid.NewString()+ext)
	return u.backend.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
}

// Local stores objects in a directory served under urlPrefix.
type Local struct {
	dir       string
	urlPrefix string
}

// NewLocal creates the directory if needed.
func NewLocal(dir, urlPrefix string) (*Local, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Local{dir: dir, urlPrefix: urlPrefix}, nil
}

// Dir returns the directory files are written to.
func (l *Local) Dir() string {
	return l.dir
}

// Put writes body to dir/key.
func (l *Local) Put(_ context.Context, key string, body io.Reader, _ int64, contentType string) (string, error) {
	dst := filepath.Join(l.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	n, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	slog.Info("File stored locally",
		"key", key,
		"size", n,
		"content_type", contentType,
	)

	return path.Join(l.urlPrefix, key), nil
}
