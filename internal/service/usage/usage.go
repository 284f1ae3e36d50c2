// Package usage records tool usage and summarises it for the dashboard.
package usage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/naotica/studio/internal/domain"
)

// Store persists usage events and answers the dashboard queries.
type Store interface {
	InsertUsage(ctx context.Context, e *domain.UsageEvent) error
	CountByTool(ctx context.Context) (map[domain.Tool]int, error)
	CountByDay(ctx context.Context, since time.Time) (map[string]int, error)
	LastUsage(ctx context.Context) (time.Time, bool, error)
}

// Queue accepts events without blocking.
type Queue interface {
	Enqueue(e *domain.UsageEvent) error
}

type toolInfo struct {
	tool  domain.Tool
	label string
	color string
}

var tools = []toolInfo{
	{domain.ToolDownloader, "Downloader", "#6366f1"},
	{domain.ToolAIChat, "AI Chat", "#818cf8"},
	{domain.ToolImageTools, "Image Tools", "#a855f7"},
}

const dayLayout = "2006-01-02"

// Service records usage through a queue and reads it back from a Store.
type Service struct {
	store Store
	queue Queue
	now   func() time.Time
}

// NewService creates a usage Service. queue may be nil, in which case
// events are written synchronously.
func NewService(store Store, queue Queue) *Service {
	return &Service{store: store, queue: queue, now: time.Now}
}

// HashIP returns the hex SHA-256 of ip. Raw addresses are never stored.
func HashIP(ip string) string {
	if ip == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])
}

// Record queues one use of tool made by r from clientIP. It never blocks the caller.
func (s *Service) Record(r *http.Request, tool domain.Tool, success bool, clientIP string) {
	event := &domain.UsageEvent{
		Tool:      tool,
		Success:   success,
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
		IPHash:    HashIP(clientIP),
		CreatedAt: s.now(),
	}

	if s.queue == nil {
		s.Process(r.Context(), event)
		return
	}
	if err := s.queue.Enqueue(event); err != nil {
		slog.Warn("Usage event dropped", "tool", tool, "error", err)
	}
}

// Process writes one event to the store. It is the dispatcher's worker function.
func (s *Service) Process(ctx context.Context, e *domain.UsageEvent) {
	if err := s.store.InsertUsage(ctx, e); err != nil {
		slog.Error("Failed to record usage",
			"tool", e.Tool,
			"error", err,
		)
	}
}

// Stats builds the dashboard summary.
func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	byTool, err := s.store.CountByTool(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tool usage: %w", err)
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := today.AddDate(0, 0, -6)

	byDay, err := s.store.CountByDay(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily traffic: %w", err)
	}

	last, ok, err := s.store.LastUsage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load last usage: %w", err)
	}
	if !ok {
		last = now
	}

	stats := &domain.Stats{
		ToolUsage:    make([]domain.ToolUsage, 0, len(tools)),
		DailyTraffic: dailyTraffic(byDay, weekStart),
		Growth: Growth(
			byDay[today.Format(dayLayout)],
			byDay[today.AddDate(0, 0, -1).Format(dayLayout)],
		),
		LastUpdated: last,
	}
	for _, t := range tools {
		hits := byTool[t.tool]
		stats.TotalHits += hits
		stats.ToolUsage = append(stats.ToolUsage, domain.ToolUsage{Tool: t.label, Hits: hits, Color: t.color})
	}

	return stats, nil
}

// dailyTraffic lays the seven days starting at weekStart out as Mon..Sun.
func dailyTraffic(byDay map[string]int, weekStart time.Time) []domain.DailyTraffic {
	visits := make(map[time.Weekday]int, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		visits[day.Weekday()] = byDay[day.Format(dayLayout)]
	}

	traffic := make([]domain.DailyTraffic, 0, 7)
	for i := 0; i < 7; i++ {
		wd := time.Weekday((int(time.Monday) + i) % 7)
		traffic = append(traffic, domain.DailyTraffic{Date: wd.String()[:3], Visits: visits[wd]})
	}
	return traffic
}

// Growth formats the change from yesterday to today as "+N%" or "-N%".
// A quiet yesterday counts as one visit.
func Growth(today, yesterday int) string {
	if yesterday <= 0 {
		yesterday = 1
	}
	pct := int(math.Floor(float64(today-yesterday)/float64(yesterday)*100 + 0.5))
	if pct >= 0 {
		return "+" + strconv.Itoa(pct) + "%"
	}
	return strconv.Itoa(pct) + "%"
}
