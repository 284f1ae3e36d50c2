// Package sqlite provides SQLite database operations.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Repository stores site content and the tool usage log.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// NewRepository opens studio.db inside dataDir, or an in-memory database
// when dataDir is MemoryPath.
func NewRepository(dataDir string) (*Repository, error) {
	dbPath := MemoryPath
	if dataDir != MemoryPath {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		dbPath = filepath.Join(dataDir, "studio.db")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single writer; also keeps one :memory: database per Repository.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := configureDB(db, dbPath == MemoryPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	slog.Info("Database initialized", "path", dbPath)

	return &Repository{db: db, now: time.Now}, nil
}

func configureDB(db *sql.DB, inMemory bool) error {
	pragmas := []string{
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	if !inMemory {
		pragmas = append([]string{"PRAGMA journal_mode=WAL"}, pragmas...)
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}

	return nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image_url TEXT,
			tags TEXT NOT NULL DEFAULT '[]',
			category TEXT NOT NULL DEFAULT 'Web App',
			live_url TEXT,
			github_url TEXT,
			featured INTEGER NOT NULL DEFAULT 0,
			display_order INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_projects_order ON projects(display_order, created_at);

		CREATE TABLE IF NOT EXISTS services (
			id TEXT PRIMARY KEY,
			place_name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			start_year INTEGER NOT NULL,
			end_year INTEGER,
			link TEXT,
			created_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS watchlist (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'movie' CHECK (type IN ('movie', 'series')),
			genre TEXT,
			year INTEGER,
			rating REAL,
			recommended INTEGER NOT NULL DEFAULT 0,
			poster_url TEXT,
			notes TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			ai_chat_maintenance INTEGER NOT NULL DEFAULT 0,
			image_tools_maintenance INTEGER NOT NULL DEFAULT 0,
			downloader_maintenance INTEGER NOT NULL DEFAULT 0,
			contact_email TEXT NOT NULL DEFAULT '',
			github_url TEXT NOT NULL DEFAULT '',
			instagram_url TEXT NOT NULL DEFAULT '',
			updated_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS usage_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tool TEXT NOT NULL,
			success INTEGER NOT NULL,
			user_agent TEXT,
			referrer TEXT,
			ip_hash TEXT,
			day TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_usage_logs_day ON usage_logs(day);
		CREATE INDEX IF NOT EXISTS idx_usage_logs_created ON usage_logs(created_at);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Ping checks the database connection.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}
