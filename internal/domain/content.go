package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// Project is a portfolio entry.
type Project struct {
	ID           string    `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	Description  string    `json:"description" yaml:"description"`
	ImageURL     *string   `json:"imageUrl" yaml:"image_url"`
	Tags         []string  `json:"tags" yaml:"tags"`
	Category     string    `json:"category" yaml:"category"`
	LiveURL      *string   `json:"liveUrl" yaml:"live_url"`
	GithubURL    *string   `json:"githubUrl" yaml:"github_url"`
	Featured     bool      `json:"featured" yaml:"featured"`
	DisplayOrder int       `json:"displayOrder" yaml:"display_order"`
	CreatedAt    time.Time `json:"createdAt" yaml:"-"`
	UpdatedAt    time.Time `json:"updatedAt" yaml:"-"`
}

// Service is a work-history entry. A nil EndYear means ongoing.
type Service struct {
	ID          string    `json:"id" yaml:"id"`
	PlaceName   string    `json:"placeName" yaml:"place_name"`
	Description string    `json:"description" yaml:"description"`
	StartYear   int       `json:"startYear" yaml:"start_year"`
	EndYear     *int      `json:"endYear" yaml:"end_year"`
	Link        *string   `json:"link" yaml:"link"`
	CreatedAt   time.Time `json:"createdAt" yaml:"-"`
}

// WatchlistType is either a movie or a series.
type WatchlistType string

const (
	WatchlistMovie  WatchlistType = "movie"
	WatchlistSeries WatchlistType = "series"
)

// WatchlistItem is a recommended movie or series.
type WatchlistItem struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Type        WatchlistType `json:"type"`
	Genre       *string       `json:"genre"`
	Year        *int          `json:"year"`
	Rating      *float64      `json:"rating"`
	Recommended bool          `json:"recommended"`
	PosterURL   *string       `json:"posterUrl"`
	Notes       *string       `json:"notes"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"-"`
}

// Settings holds site-wide flags and contact links.
type Settings struct {
	AIChatMaintenance     bool      `json:"aiChatMaintenance" yaml:"ai_chat_maintenance"`
	ImageToolsMaintenance bool      `json:"imageToolsMaintenance" yaml:"image_tools_maintenance"`
	DownloaderMaintenance bool      `json:"downloaderMaintenance" yaml:"downloader_maintenance"`
	ContactEmail          string    `json:"contactEmail" yaml:"contact_email"`
	GithubURL             string    `json:"githubUrl" yaml:"github_url"`
	InstagramURL          string    `json:"instagramUrl" yaml:"instagram_url"`
	UpdatedAt             time.Time `json:"-" yaml:"-"`
}

// Maintenance reports whether the given tool is switched off.
func (s *Settings) Maintenance(tool Tool) bool {
	switch tool {
	case ToolDownloader:
		return s.DownloaderMaintenance
	case ToolAIChat:
		return s.AIChatMaintenance
	case ToolImageTools:
		return s.ImageToolsMaintenance
	}
	return false
}

// ErrNotFound is returned when a content entity does not exist.
var ErrNotFound = errors.New("not found")

// ProjectInput is the body of project create and update requests.
type ProjectInput struct {
	ID           string             `json:"id"`
	Title        Optional[string]   `json:"title"`
	Description  Optional[string]   `json:"description"`
	ImageURL     Optional[string]   `json:"imageUrl"`
	Tags         Optional[[]string] `json:"tags"`
	Category     Optional[string]   `json:"category"`
	LiveURL      Optional[string]   `json:"liveUrl"`
	GithubURL    Optional[string]   `json:"githubUrl"`
	Featured     Optional[bool]     `json:"featured"`
	DisplayOrder Optional[FlexInt]  `json:"displayOrder"`
}

// NewProject builds a project from a create request.
func NewProject(in *ProjectInput) (*Project, error) {
	if !in.Title.Present() {
		return nil, &ValidationError{Message: "Title is required"}
	}

	p := &Project{
		Title:    in.Title.Value,
		Tags:     []string{},
		Category: "Web App",
	}
	p.Apply(in)
	return p, nil
}

// Apply copies the fields present in in onto p. An empty title is ignored.
func (p *Project) Apply(in *ProjectInput) {
	if in.Title.Present() {
		p.Title = in.Title.Value
	}
	if in.Description.Set {
		p.Description = in.Description.Value
	}
	if in.ImageURL.Set {
		p.ImageURL = in.ImageURL.Ptr()
	}
	if in.Tags.Set {
		p.Tags = in.Tags.Value
		if p.Tags == nil {
			p.Tags = []string{}
		}
	}
	if in.Category.Present() {
		p.Category = in.Category.Value
	}
	if in.LiveURL.Set {
		p.LiveURL = in.LiveURL.Ptr()
	}
	if in.GithubURL.Set {
		p.GithubURL = in.GithubURL.Ptr()
	}
	if in.Featured.Present() {
		p.Featured = in.Featured.Value
	}
	if in.DisplayOrder.Present() {
		p.DisplayOrder = int(in.DisplayOrder.Value)
	}
}

// ServiceInput is the body of service create and update requests. Years
// may be sent as numbers or numeric strings.
type ServiceInput struct {
	ID          string            `json:"id"`
	PlaceName   Optional[string]  `json:"placeName"`
	Description Optional[string]  `json:"description"`
	StartYear   Optional[FlexInt] `json:"startYear"`
	EndYear     Optional[FlexInt] `json:"endYear"`
	Link        Optional[string]  `json:"link"`
}

// NewService builds a service from a create request.
func NewService(in *ServiceInput) (*Service, error) {
	if !in.PlaceName.Present() || !in.StartYear.Present() || in.StartYear.Value == 0 {
		return nil, &ValidationError{Message: "Place name and start year are required"}
	}

	s := &Service{}
	s.Apply(in)
	return s, nil
}

// Apply copies the fields present in in onto s. A null or empty endYear
// clears it; an absent one leaves it unchanged.
func (s *Service) Apply(in *ServiceInput) {
	if in.PlaceName.Present() {
		s.PlaceName = in.PlaceName.Value
	}
	if in.Description.Set {
		s.Description = in.Description.Value
	}
	if in.StartYear.Present() && in.StartYear.Value != 0 {
		s.StartYear = int(in.StartYear.Value)
	}
	if in.EndYear.Set {
		if in.EndYear.Null || in.EndYear.Value == 0 {
			s.EndYear = nil
		} else {
			end := int(in.EndYear.Value)
			s.EndYear = &end
		}
	}
	if in.Link.Set {
		s.Link = in.Link.Ptr()
	}
}

// WatchlistInput is the body of watchlist create and update requests.
type WatchlistInput struct {
	ID          string              `json:"id"`
	Title       Optional[string]    `json:"title"`
	Type        Optional[string]    `json:"type"`
	Genre       Optional[string]    `json:"genre"`
	Year        Optional[FlexInt]   `json:"year"`
	Rating      Optional[FlexFloat] `json:"rating"`
	Recommended Optional[bool]      `json:"recommended"`
	PosterURL   Optional[string]    `json:"posterUrl"`
	Notes       Optional[string]    `json:"notes"`
}

// NewWatchlistItem builds an item from a create request. Type defaults to movie.
func NewWatchlistItem(in *WatchlistInput) (*WatchlistItem, error) {
	if !in.Title.Present() {
		return nil, &ValidationError{Message: "Title is required"}
	}

	item := &WatchlistItem{Type: WatchlistMovie}
	if err := item.Apply(in); err != nil {
		return nil, err
	}
	return item, nil
}

// Apply copies the fields present in in onto w. Zero years and ratings clear the field.
func (w *WatchlistItem) Apply(in *WatchlistInput) error {
	if in.Type.Present() {
		t := WatchlistType(in.Type.Value)
		if t != WatchlistMovie && t != WatchlistSeries {
			return &ValidationError{Message: "Type must be movie or series"}
		}
		w.Type = t
	}
	if in.Title.Present() {
		w.Title = in.Title.Value
	}
	if in.Genre.Set {
		w.Genre = in.Genre.Ptr()
	}
	if in.Year.Set {
		w.Year = nil
		if in.Year.Present() && in.Year.Value != 0 {
			y := int(in.Year.Value)
			w.Year = &y
		}
	}
	if in.Rating.Set {
		w.Rating = nil
		if in.Rating.Present() && in.Rating.Value != 0 {
			r := float64(in.Rating.Value)
			w.Rating = &r
		}
	}
	if in.Recommended.Present() {
		w.Recommended = in.Recommended.Value
	}
	if in.PosterURL.Set {
		w.PosterURL = in.PosterURL.Ptr()
	}
	if in.Notes.Set {
		w.Notes = in.Notes.Ptr()
	}
	return nil
}

// ApplyPatch updates s from a raw JSON object. A field is only applied when
// it has the right JSON type; anything else is ignored.
func (s *Settings) ApplyPatch(patch map[string]json.RawMessage) {
	flags := map[string]*bool{
		"aiChatMaintenance":     &s.AIChatMaintenance,
		"imageToolsMaintenance": &s.ImageToolsMaintenance,
		"downloaderMaintenance": &s.DownloaderMaintenance,
	}
	for key, dst := range flags {
		var v bool
		if raw, ok := patch[key]; ok && json.Unmarshal(raw, &v) == nil && !isNull(raw) {
			*dst = v
		}
	}

	texts := map[string]*string{
		"contactEmail": &s.ContactEmail,
		"githubUrl":    &s.GithubURL,
		"instagramUrl": &s.InstagramURL,
	}
	for key, dst := range texts {
		var v string
		if raw, ok := patch[key]; ok && json.Unmarshal(raw, &v) == nil && !isNull(raw) {
			*dst = v
		}
	}
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// ValidationError is a user-correctable problem with a request body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
