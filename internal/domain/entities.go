// Package domain contains the core business entities and types.
package domain

import (
	"time"
)

// DownloadRequest is the body of POST /api/tools/download.
type DownloadRequest struct {
	URL string `json:"url"`
}

// Format is one downloadable variant reported by the upstream.
type Format struct {
	Quality string `json:"quality"`
	URL     string `json:"url"`
	Ext     string `json:"ext"`
	Size    string `json:"size,omitempty"`
}

// ResolvedMedia is the canonical result of resolving a media URL.
type ResolvedMedia struct {
	Title       string   `json:"title"`
	Thumbnail   *string  `json:"thumbnail"`
	DownloadURL string   `json:"downloadUrl"`
	Formats     []Format `json:"formats,omitempty"`
}

// DownloadResponse is the success body of POST /api/tools/download.
type DownloadResponse struct {
	Success bool `json:"success"`
	*ResolvedMedia
}

// ChatRequest is the body of POST /api/tools/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the success body of POST /api/tools/chat.
type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

// HealthResponse represents the response for a health check.
type HealthResponse struct {
	Status    string `json:"status"`
	QueueSize int    `json:"queue_size"`
	Workers   int    `json:"workers"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// Tool identifies a site tool for usage accounting.
type Tool string

const (
	ToolDownloader Tool = "downloader"
	ToolAIChat     Tool = "aiChat"
	ToolImageTools Tool = "imageTools"
)

// UsageEvent is one recorded use of a tool.
type UsageEvent struct {
	Tool      Tool      `json:"tool"`
	Success   bool      `json:"success"`
	UserAgent string    `json:"user_agent,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
	IPHash    string    `json:"ip_hash,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToolUsage is the per-tool hit count shown on the dashboard.
type ToolUsage struct {
	Tool  string `json:"tool"`
	Hits  int    `json:"hits"`
	Color string `json:"color"`
}

// DailyTraffic is the number of tool uses on one weekday.
type DailyTraffic struct {
	Date   string `json:"date"`
	Visits int    `json:"visits"`
}

// Stats is the dashboard summary.
type Stats struct {
	TotalHits    int            `json:"totalHits"`
	ToolUsage    []ToolUsage    `json:"toolUsage"`
	DailyTraffic []DailyTraffic `json:"dailyTraffic"`
	Growth       string         `json:"growth"`
	LastUpdated  time.Time      `json:"lastUpdated"`
}
