package resolver

import (
	"net/url"
	"strings"

	"github.com/naotica/studio/internal/domain"
)

const defaultTitle = "Download"

// qualityOrder ranks format ids when picking from a formats list.
var qualityOrder = []string{"1080p", "720p", "480p", "360p", "audio"}

// Normalize turns a decoded payload into a ResolvedMedia.
//
// An upstream error message fails the resolution before anything else is
// looked at. Otherwise sources are tried in order and the first usable URL
// wins; formats reported by a later source replace earlier ones.
func Normalize(p *Payload) (*domain.ResolvedMedia, error) {
	if p.ErrorMessage != "" {
		return nil, &ResolutionError{Message: p.ErrorMessage}
	}

	media := &domain.ResolvedMedia{
		Title: p.Title,
	}
	if media.Title == "" {
		media.Title = defaultTitle
	}
	if p.Thumbnail != "" {
		thumb := p.Thumbnail
		media.Thumbnail = &thumb
	}

	var formats []domain.Format
	for _, src := range p.Sources {
		u, f, ok := src.pick()
		if f != nil {
			formats = f
		}
		if ok {
			media.DownloadURL = u
			break
		}
	}

	if media.DownloadURL == "" {
		return nil, &ResolutionError{Message: msgNoLink}
	}

	if len(formats) > 0 {
		media.Formats = formats
	}
	return media, nil
}

func (s DownloadsSource) pick() (string, []domain.Format, bool) {
	formats := make([]domain.Format, 0, len(s.Entries))
	for _, d := range s.Entries {
		if d.URL == "" {
			continue
		}
		formats = append(formats, domain.Format{
			Quality: firstNonEmpty(d.Quality, d.Type, "download"),
			URL:     d.URL,
			Ext:     firstNonEmpty(d.Ext, "mp4"),
		})
	}

	chosen := ""
	for _, d := range s.Entries {
		if strings.Contains(d.Type, "video") || isMP4(d.URL) {
			chosen = d.URL
			break
		}
	}
	if chosen == "" && len(s.Entries) > 0 {
		chosen = s.Entries[0].URL
	}

	return chosen, formats, chosen != ""
}

func (s LegacySource) pick() (string, []domain.Format, bool) {
	return s.URL, nil, s.URL != ""
}

func (s FormatsSource) pick() (string, []domain.Format, bool) {
	formats := make([]domain.Format, 0, len(s.Entries))
	for _, f := range s.Entries {
		formats = append(formats, domain.Format{
			Quality: f.FormatID,
			URL:     f.URL,
			Ext:     f.Ext,
			Size:    f.Size,
		})
	}

	if len(formats) == 0 {
		return "", nil, false
	}

	if i := preferredFormat(formats); i >= 0 && formats[i].URL != "" {
		return formats[i].URL, formats, true
	}
	return formats[0].URL, formats, formats[0].URL != ""
}

// preferredFormat returns the index of the first format matching the best
// available quality, or -1.
func preferredFormat(formats []domain.Format) int {
	for _, q := range qualityOrder {
		for i, f := range formats {
			if strings.Contains(f.Quality, q) {
				return i
			}
		}
	}
	return -1
}

func (s AudioSource) pick() (string, []domain.Format, bool) {
	return s.URL, nil, s.URL != ""
}

// isMP4 reports whether the URL's path ends in .mp4, ignoring any query string.
func isMP4(raw string) bool {
	if raw == "" {
		return false
	}
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		return strings.HasSuffix(strings.ToLower(u.Path), ".mp4")
	}
	return strings.HasSuffix(strings.ToLower(raw), ".mp4")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
