// Package proxy re-fetches resolved media with browser-like headers and
// relays the bytes to the caller.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

// ErrUpstreamFetch is returned when the media host answers with a non-2xx status.
var ErrUpstreamFetch = errors.New("failed to fetch file")

// browserHeaders are sent on every re-fetch. The CDNs serving resolved
// links reject requests that do not look like a browser tab.
var browserHeaders = map[string]string{
	"User-Agent":         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":             "*/*",
	"Accept-Language":    "en-US,en;q=0.9",
	"Accept-Encoding":    "identity",
	"Referer":            "https://www.tiktok.com/",
	"Origin":             "https://www.tiktok.com",
	"sec-ch-ua":          `"Not_A Brand";v="8", "Chromium";v="120", "Google Chrome";v="120"`,
	"sec-ch-ua-mobile":   "?0",
	"sec-ch-ua-platform": `"Windows"`,
	"sec-fetch-dest":     "video",
	"sec-fetch-mode":     "cors",
	"sec-fetch-site":     "cross-site",
}

// Stream is an open upstream body. The caller must Close it.
type Stream struct {
	Body io.ReadCloser
	// ContentLength is the upstream Content-Length, or -1 when unknown.
	ContentLength int64
}

// Close releases the upstream connection.
func (s *Stream) Close() error {
	return s.Body.Close()
}

// Streamer opens media URLs for relaying.
type Streamer struct {
	client *http.Client
}

// NewStreamer creates a Streamer that fetches with client.
func NewStreamer(client *http.Client) *Streamer {
	return &Streamer{client: client}
}

// Open issues the re-fetch. The body is not read.
func (s *Streamer) Open(ctx context.Context, sourceURL string) (*Stream, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", req.URL.Host, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamFetch, resp.StatusCode)
	}

	length := int64(-1)
	if cl := resp.Header.Get("Content-Length"); cl != "" {
		if n, err := strconv.ParseInt(cl, 10, 64); err == nil && n >= 0 {
			length = n
		}
	}

	return &Stream{Body: resp.Body, ContentLength: length}, nil
}

var (
	mediaExtPattern  = regexp.MustCompile(`(?i)\.(mp4|mp3|m4a|webm)$`)
	disallowedChars  = regexp.MustCompile(`[^A-Za-z0-9_\- ]`)
	whitespaceRunsRe = regexp.MustCompile(`\s+`)
)

const maxFilenameLength = 50

// SanitizeFilename builds a download filename from a title hint and the
// requested format. A trailing media extension on the hint is dropped before
// disallowed characters are removed, so "My Video!! #1.mp4" becomes
// "My Video 1.mp4".
func SanitizeFilename(hint, format string) string {
	name := strings.TrimSpace(hint)
	name = mediaExtPattern.ReplaceAllString(name, "")
	name = disallowedChars.ReplaceAllString(name, "")
	name = whitespaceRunsRe.ReplaceAllString(name, " ")
	if len(name) > maxFilenameLength {
		name = name[:maxFilenameLength]
	}
	name = strings.TrimSpace(name)

	if name == "" {
		name = "download"
	}

	return name + "." + Extension(format)
}

// Extension returns the file extension for a requested format.
func Extension(format string) string {
	if format == "mp3" {
		return "mp3"
	}
	return "mp4"
}

// ContentType returns the declared content type for a requested format.
// It is not sniffed from the bytes.
func ContentType(format string) string {
	if format == "mp3" {
		return "audio/mpeg"
	}
	return "video/mp4"
}
