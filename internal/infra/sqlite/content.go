package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/naotica/studio/internal/domain"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const projectColumns = `id, title, description, image_url, tags, category, live_url, github_url,
	featured, display_order, created_at, updated_at`

func scanProject(s scanner) (*domain.Project, error) {
	p := &domain.Project{}
	var imageURL, liveURL, githubURL sql.NullString
	var tags string

	err := s.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&imageURL,
		&tags,
		&p.Category,
		&liveURL,
		&githubURL,
		&p.Featured,
		&p.DisplayOrder,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.ImageURL = nullable(imageURL)
	p.LiveURL = nullable(liveURL)
	p.GithubURL = nullable(githubURL)
	if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil || p.Tags == nil {
		p.Tags = []string{}
	}

	return p, nil
}

// ListProjects returns projects ordered by display order, oldest first within an order.
func (r *Repository) ListProjects(ctx context.Context, featuredOnly bool) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	if featuredOnly {
		query += ` WHERE featured = 1`
	}
	query += ` ORDER BY display_order ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}

	return projects, rows.Err()
}

// GetProject returns the project with id or domain.ErrNotFound.
func (r *Repository) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// CreateProject inserts p, assigning its id and timestamps.
func (r *Repository) CreateProject(ctx context.Context, p *domain.Project) error {
	now := r.now().UTC()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	tags, err := encodeTags(p.Tags)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO projects (`+projectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, p.ImageURL, tags, p.Category, p.LiveURL, p.GithubURL,
		p.Featured, p.DisplayOrder, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// UpdateProject saves every field of p.
func (r *Repository) UpdateProject(ctx context.Context, p *domain.Project) error {
	p.UpdatedAt = r.now().UTC()

	tags, err := encodeTags(p.Tags)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE projects
		SET title = ?, description = ?, image_url = ?, tags = ?, category = ?, live_url = ?,
			github_url = ?, featured = ?, display_order = ?, updated_at = ?
		WHERE id = ?`,
		p.Title, p.Description, p.ImageURL, tags, p.Category, p.LiveURL,
		p.GithubURL, p.Featured, p.DisplayOrder, p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return requireRow(result)
}

// DeleteProject removes the project with id.
func (r *Repository) DeleteProject(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "projects", id)
}

const serviceColumns = `id, place_name, description, start_year, end_year, link, created_at`

func scanService(s scanner) (*domain.Service, error) {
	svc := &domain.Service{}
	var endYear sql.NullInt64
	var link sql.NullString

	if err := s.Scan(&svc.ID, &svc.PlaceName, &svc.Description, &svc.StartYear, &endYear, &link, &svc.CreatedAt); err != nil {
		return nil, err
	}

	if endYear.Valid {
		y := int(endYear.Int64)
		svc.EndYear = &y
	}
	svc.Link = nullable(link)
	return svc, nil
}

// ListServices returns services, newest start year first.
func (r *Repository) ListServices(ctx context.Context) ([]domain.Service, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY start_year DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	services := []domain.Service{}
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, *svc)
	}

	return services, rows.Err()
}

// GetService returns the service with id or domain.ErrNotFound.
func (r *Repository) GetService(ctx context.Context, id string) (*domain.Service, error) {
	svc, err := scanService(r.db.QueryRowContext(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return svc, nil
}

// CreateService inserts svc, assigning its id and creation time.
func (r *Repository) CreateService(ctx context.Context, svc *domain.Service) error {
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}
	svc.CreatedAt = r.now().UTC()

	_, err := r.db.ExecContext(ctx, `INSERT INTO services (`+serviceColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		svc.ID, svc.PlaceName, svc.Description, svc.StartYear, svc.EndYear, svc.Link, svc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// UpdateService saves every field of svc.
func (r *Repository) UpdateService(ctx context.Context, svc *domain.Service) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE services SET place_name = ?, description = ?, start_year = ?, end_year = ?, link = ?
		WHERE id = ?`,
		svc.PlaceName, svc.Description, svc.StartYear, svc.EndYear, svc.Link, svc.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	return requireRow(result)
}

// DeleteService removes the service with id.
func (r *Repository) DeleteService(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "services", id)
}

const watchlistColumns = `id, title, type, genre, year, rating, recommended, poster_url, notes, created_at, updated_at`

func scanWatchlistItem(s scanner) (*domain.WatchlistItem, error) {
	w := &domain.WatchlistItem{}
	var genre, posterURL, notes sql.NullString
	var year sql.NullInt64
	var rating sql.NullFloat64

	err := s.Scan(&w.ID, &w.Title, &w.Type, &genre, &year, &rating, &w.Recommended, &posterURL, &notes, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}

	w.Genre = nullable(genre)
	w.PosterURL = nullable(posterURL)
	w.Notes = nullable(notes)
	if year.Valid {
		y := int(year.Int64)
		w.Year = &y
	}
	if rating.Valid {
		r := rating.Float64
		w.Rating = &r
	}
	return w, nil
}

// ListWatchlist returns recommended items first, newest first within each group.
func (r *Repository) ListWatchlist(ctx context.Context) ([]domain.WatchlistItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+watchlistColumns+` FROM watchlist ORDER BY recommended DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}
	defer rows.Close()

	items := []domain.WatchlistItem{}
	for rows.Next() {
		w, err := scanWatchlistItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watchlist item: %w", err)
		}
		items = append(items, *w)
	}

	return items, rows.Err()
}

// GetWatchlistItem returns the item with id or domain.ErrNotFound.
func (r *Repository) GetWatchlistItem(ctx context.Context, id string) (*domain.WatchlistItem, error) {
	w, err := scanWatchlistItem(r.db.QueryRowContext(ctx, `SELECT `+watchlistColumns+` FROM watchlist WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get watchlist item: %w", err)
	}
	return w, nil
}

// CreateWatchlistItem inserts w, assigning its id and timestamps.
func (r *Repository) CreateWatchlistItem(ctx context.Context, w *domain.WatchlistItem) error {
	now := r.now().UTC()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	w.CreatedAt = now
	w.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `INSERT INTO watchlist (`+watchlistColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.Title, w.Type, w.Genre, w.Year, w.Rating, w.Recommended, w.PosterURL, w.Notes, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create watchlist item: %w", err)
	}
	return nil
}

// UpdateWatchlistItem saves every field of w.
func (r *Repository) UpdateWatchlistItem(ctx context.Context, w *domain.WatchlistItem) error {
	w.UpdatedAt = r.now().UTC()

	result, err := r.db.ExecContext(ctx, `
		UPDATE watchlist
		SET title = ?, type = ?, genre = ?, year = ?, rating = ?, recommended = ?, poster_url = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		w.Title, w.Type, w.Genre, w.Year, w.Rating, w.Recommended, w.PosterURL, w.Notes, w.UpdatedAt,
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update watchlist item: %w", err)
	}
	return requireRow(result)
}

// DeleteWatchlistItem removes the item with id.
func (r *Repository) DeleteWatchlistItem(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "watchlist", id)
}

// GetSettings returns the site settings. A missing row yields zero settings.
func (r *Repository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	s := &domain.Settings{}
	err := r.db.QueryRowContext(ctx, `
		SELECT ai_chat_maintenance, image_tools_maintenance, downloader_maintenance,
			contact_email, github_url, instagram_url, updated_at
		FROM settings WHERE id = 1`).Scan(
		&s.AIChatMaintenance,
		&s.ImageToolsMaintenance,
		&s.DownloaderMaintenance,
		&s.ContactEmail,
		&s.GithubURL,
		&s.InstagramURL,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return s, nil
}

// SaveSettings writes the settings row.
func (r *Repository) SaveSettings(ctx context.Context, s *domain.Settings) error {
	s.UpdatedAt = r.now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (id, ai_chat_maintenance, image_tools_maintenance, downloader_maintenance,
			contact_email, github_url, instagram_url, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			ai_chat_maintenance = excluded.ai_chat_maintenance,
			image_tools_maintenance = excluded.image_tools_maintenance,
			downloader_maintenance = excluded.downloader_maintenance,
			contact_email = excluded.contact_email,
			github_url = excluded.github_url,
			instagram_url = excluded.instagram_url,
			updated_at = excluded.updated_at`,
		s.AIChatMaintenance, s.ImageToolsMaintenance, s.DownloaderMaintenance,
		s.ContactEmail, s.GithubURL, s.InstagramURL, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Seed inserts the given defaults into every content table that is empty.
func (r *Repository) Seed(ctx context.Context, projects []domain.Project, services []domain.Service, settings *domain.Settings) error {
	empty := func(table string) (bool, error) {
		var n int
		if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
			return false, fmt.Errorf("failed to count %s: %w", table, err)
		}
		return n == 0, nil
	}

	if ok, err := empty("projects"); err != nil {
		return err
	} else if ok {
		for i := range projects {
			p := projects[i]
			if err := r.CreateProject(ctx, &p); err != nil {
				return err
			}
		}
	}

	if ok, err := empty("services"); err != nil {
		return err
	} else if ok {
		for i := range services {
			svc := services[i]
			if err := r.CreateService(ctx, &svc); err != nil {
				return err
			}
		}
	}

	if ok, err := empty("settings"); err != nil {
		return err
	} else if ok && settings != nil {
		s := *settings
		if err := r.SaveSettings(ctx, &s); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) deleteByID(ctx context.Context, table, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(b), nil
}
