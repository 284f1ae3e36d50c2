package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/naotica/studio/internal/domain"
)

// DayLayout is the layout of the usage_logs.day column.
const DayLayout = "2006-01-02"

// InsertUsage appends one usage event. A zero CreatedAt is stamped with the current time.
func (r *Repository) InsertUsage(ctx context.Context, e *domain.UsageEvent) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = r.now()
	}
	at := e.CreatedAt.UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO usage_logs (tool, success, user_agent, referrer, ip_hash, day, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(e.Tool), e.Success, e.UserAgent, e.Referrer, e.IPHash, at.Format(DayLayout), at.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert usage: %w", err)
	}
	return nil
}

// CountByTool returns the number of successful uses per tool.
func (r *Repository) CountByTool(ctx context.Context) (map[domain.Tool]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT tool, COUNT(*) FROM usage_logs WHERE success = 1 GROUP BY tool`)
	if err != nil {
		return nil, fmt.Errorf("failed to count usage by tool: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Tool]int)
	for rows.Next() {
		var tool string
		var n int
		if err := rows.Scan(&tool, &n); err != nil {
			return nil, fmt.Errorf("failed to scan usage count: %w", err)
		}
		counts[domain.Tool(tool)] = n
	}
	return counts, rows.Err()
}

// CountByDay returns successful uses per UTC day for days on or after since.
func (r *Repository) CountByDay(ctx context.Context, since time.Time) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day, COUNT(*) FROM usage_logs WHERE success = 1 AND day >= ? GROUP BY day`,
		since.UTC().Format(DayLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count usage by day: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day string
		var n int
		if err := rows.Scan(&day, &n); err != nil {
			return nil, fmt.Errorf("failed to scan usage count: %w", err)
		}
		counts[day] = n
	}
	return counts, rows.Err()
}

// LastUsage returns the time of the most recent usage row. ok is false when the log is empty.
func (r *Repository) LastUsage(ctx context.Context) (last time.Time, ok bool, err error) {
	var ts sql.NullInt64
	if err := r.db.QueryRowContext(ctx, `SELECT MAX(created_at) FROM usage_logs`).Scan(&ts); err != nil {
		return time.Time{}, false, fmt.Errorf("failed to get last usage: %w", err)
	}
	if !ts.Valid {
		return time.Time{}, false, nil
	}
	return time.Unix(ts.Int64, 0).UTC(), true, nil
}

// DeleteUsageBefore removes usage rows created before cutoff and returns how many were removed.
func (r *Repository) DeleteUsageBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM usage_logs WHERE created_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete old usage: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
