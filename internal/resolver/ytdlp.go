package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// YtDlp resolves links with a local yt-dlp binary instead of the hosted API.
// Its output is rewritten into the upstream's formats shape so the same
// decoder and normalizer apply.
type YtDlp struct {
	path    string
	timeout time.Duration
}

// NewYtDlp creates a YtDlp fetcher for the binary at path.
func NewYtDlp(path string, timeout time.Duration) *YtDlp {
	return &YtDlp{path: path, timeout: timeout}
}

// ytdlpInfo is the subset of yt-dlp's --dump-json output that is used.
type ytdlpInfo struct {
	Title     string        `json:"title"`
	Thumbnail string        `json:"thumbnail"`
	URL       string        `json:"url"`
	Ext       string        `json:"ext"`
	Formats   []ytdlpFormat `json:"formats"`
}

type ytdlpFormat struct {
	FormatID       string  `json:"format_id"`
	FormatNote     string  `json:"format_note"`
	Height         int     `json:"height"`
	URL            string  `json:"url"`
	Ext            string  `json:"ext"`
	Protocol       string  `json:"protocol"`
	VCodec         string  `json:"vcodec"`
	ACodec         string  `json:"acodec"`
	Filesize       float64 `json:"filesize"`
	FilesizeApprox float64 `json:"filesize_approx"`
}

// upstreamShape mirrors the hosted API's formats reply.
type upstreamShape struct {
	Title       string          `json:"title,omitempty"`
	Thumbnail   string          `json:"thumbnail,omitempty"`
	DownloadURL string          `json:"download_url,omitempty"`
	Formats     []upstreamEntry `json:"formats,omitempty"`
}

type upstreamEntry struct {
	FormatID string `json:"format_id"`
	URL      string `json:"url"`
	Ext      string `json:"ext"`
	Size     string `json:"size,omitempty"`
}

// Fetch implements Fetcher.
func (y *YtDlp) Fetch(ctx context.Context, mediaURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, y.timeout)
	defer cancel()

	args := []string{
		"--dump-json",
		"--no-playlist",
		"--no-warnings",
		"--no-cache-dir",
		"--socket-timeout", "15",
		"-f", "best[ext=mp4]/best",
		"--", mediaURL,
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, y.path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &UpstreamError{Err: errors.New("yt-dlp timed out")}
		}

		errOutput := stderr.String()
		if strings.Contains(errOutput, "Video unavailable") {
			return nil, &ResolutionError{Message: "Video is unavailable or private"}
		}
		if strings.Contains(errOutput, "is not a valid URL") || strings.Contains(errOutput, "Unsupported URL") {
			return nil, &ResolutionError{Message: msgNoLink}
		}

		return nil, &UpstreamError{Err: fmt.Errorf("yt-dlp error: %w: %s", err, strings.TrimSpace(errOutput))}
	}

	var info ytdlpInfo
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("failed to parse yt-dlp output: %w", err)}
	}

	body, err := json.Marshal(toUpstreamShape(&info))
	if err != nil {
		return nil, fmt.Errorf("failed to encode yt-dlp result: %w", err)
	}
	return body, nil
}

// CheckBinary verifies that yt-dlp is installed and runnable.
func (y *YtDlp) CheckBinary(ctx context.Context) error {
	if err := exec.CommandContext(ctx, y.path, "--version").Run(); err != nil {
		return fmt.Errorf("yt-dlp not found or not executable: %w", err)
	}
	return nil
}

func toUpstreamShape(info *ytdlpInfo) *upstreamShape {
	out := &upstreamShape{
		Title:     info.Title,
		Thumbnail: info.Thumbnail,
	}

	for _, f := range info.Formats {
		// Manifests and video-only streams cannot be saved by a browser as is.
		if f.URL == "" || strings.HasPrefix(f.Protocol, "m3u8") || strings.Contains(f.Protocol, "dash") {
			continue
		}
		if f.VCodec != "" && f.VCodec != "none" && f.ACodec == "none" {
			continue
		}
		out.Formats = append(out.Formats, upstreamEntry{
			FormatID: formatLabel(f),
			URL:      f.URL,
			Ext:      f.Ext,
			Size:     formatSize(f),
		})
	}

	// A legacy URL outranks the formats list, so it is only set when no format survived.
	if len(out.Formats) == 0 {
		out.DownloadURL = info.URL
	}

	return out
}

func formatLabel(f ytdlpFormat) string {
	switch {
	case f.VCodec == "none":
		return "audio-" + f.FormatID
	case f.Height > 0:
		return strconv.Itoa(f.Height) + "p"
	case f.FormatNote != "":
		return f.FormatNote
	default:
		return f.FormatID
	}
}

func formatSize(f ytdlpFormat) string {
	size := f.Filesize
	if size == 0 {
		size = f.FilesizeApprox
	}
	if size <= 0 {
		return ""
	}

	const mb = 1024 * 1024
	return fmt.Sprintf("%.1f MB", size/mb)
}
