package resolver

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/naotica/studio/internal/domain"
)

// Payload is an upstream reply decoded into the shapes the upstream is known
// to send. Sources lists the URL-bearing variants found in the record, in
// resolution precedence order.
type Payload struct {
	// ErrorMessage is the top-level error or message field, if any.
	ErrorMessage string
	Title        string
	Thumbnail    string
	Sources      []Source
}

// Source is one URL-bearing shape of an upstream record.
type Source interface {
	// pick returns the chosen URL, the formats the variant reports (nil when
	// it reports none) and whether a usable URL was found.
	pick() (url string, formats []domain.Format, ok bool)
}

// DownloadsSource is the structured downloads list.
type DownloadsSource struct {
	Entries []DownloadEntry
}

// DownloadEntry is one element of a downloads list.
type DownloadEntry struct {
	URL     string
	Type    string
	Quality string
	Ext     string
}

// LegacySource is the first non-empty single-URL field of the older reply
// format (download, download_url, video_hd, video_sd, video).
type LegacySource struct {
	Field string
	URL   string
}

// FormatsSource is the format_id keyed formats list.
type FormatsSource struct {
	Entries []FormatEntry
}

// FormatEntry is one element of a formats list.
type FormatEntry struct {
	FormatID string
	URL      string
	Ext      string
	Size     string
}

// AudioSource is an audio-only reply (audio, then music).
type AudioSource struct {
	Field string
	URL   string
}

// UnrecognizedSource marks a record with none of the known shapes.
type UnrecognizedSource struct{}

func (UnrecognizedSource) pick() (string, []domain.Format, bool) {
	return "", nil, false
}

var legacyFields = []string{"download", "download_url", "video_hd", "video_sd", "video"}

var audioFields = []string{"audio", "music"}

// record is one level of an upstream reply.
type record struct {
	Data      json.RawMessage       `json:"data"`
	Error     errorText             `json:"error"`
	Message   errorText             `json:"message"`
	Title     text                  `json:"title"`
	Thumbnail text                  `json:"thumbnail"`
	Downloads list[rawDownloadEntry] `json:"downloads"`
	Formats   list[rawFormatEntry]   `json:"formats"`

	Download    text `json:"download"`
	DownloadURL text `json:"download_url"`
	VideoHD     text `json:"video_hd"`
	VideoSD     text `json:"video_sd"`
	Video       text `json:"video"`
	Audio       text `json:"audio"`
	Music       text `json:"music"`
}

func (r *record) field(name string) string {
	switch name {
	case "download":
		return string(r.Download)
	case "download_url":
		return string(r.DownloadURL)
	case "video_hd":
		return string(r.VideoHD)
	case "video_sd":
		return string(r.VideoSD)
	case "video":
		return string(r.Video)
	case "audio":
		return string(r.Audio)
	case "music":
		return string(r.Music)
	}
	return ""
}

type rawDownloadEntry struct {
	URL     text `json:"url"`
	Type    text `json:"type"`
	Quality text `json:"quality"`
	Ext     text `json:"ext"`
}

type rawFormatEntry struct {
	URL      text `json:"url"`
	FormatID text `json:"format_id"`
	Ext      text `json:"ext"`
	Size     text `json:"size"`
}

// Decode parses an upstream reply. It fails only when body is not a JSON
// object; unexpected field types are treated as absent.
func Decode(body []byte) (*Payload, error) {
	var top record
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, fmt.Errorf("failed to decode upstream response: %w", err)
	}

	p := &Payload{}
	if top.Error != "" {
		p.ErrorMessage = string(top.Error)
	} else if top.Message != "" {
		p.ErrorMessage = string(top.Message)
	}

	rec := &top
	if isObject(top.Data) {
		var nested record
		if err := json.Unmarshal(top.Data, &nested); err != nil {
			return nil, fmt.Errorf("failed to decode upstream data: %w", err)
		}
		rec = &nested
	}

	p.Title = string(rec.Title)
	p.Thumbnail = string(rec.Thumbnail)
	p.Sources = sources(rec)

	return p, nil
}

func sources(rec *record) []Source {
	var out []Source

	if len(rec.Downloads) > 0 {
		entries := make([]DownloadEntry, 0, len(rec.Downloads))
		for _, d := range rec.Downloads {
			entries = append(entries, DownloadEntry{
				URL:     string(d.URL),
				Type:    string(d.Type),
				Quality: string(d.Quality),
				Ext:     string(d.Ext),
			})
		}
		out = append(out, DownloadsSource{Entries: entries})
	}

	for _, name := range legacyFields {
		if u := rec.field(name); u != "" {
			out = append(out, LegacySource{Field: name, URL: u})
			break
		}
	}

	if len(rec.Formats) > 0 {
		entries := make([]FormatEntry, 0, len(rec.Formats))
		for _, f := range rec.Formats {
			entries = append(entries, FormatEntry{
				FormatID: string(f.FormatID),
				URL:      string(f.URL),
				Ext:      string(f.Ext),
				Size:     string(f.Size),
			})
		}
		out = append(out, FormatsSource{Entries: entries})
	}

	for _, name := range audioFields {
		if u := rec.field(name); u != "" {
			out = append(out, AudioSource{Field: name, URL: u})
			break
		}
	}

	if len(out) == 0 {
		out = append(out, UnrecognizedSource{})
	}
	return out
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// text accepts a JSON string or number. Other JSON types decode as empty.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*t = text(n.String())
		return nil
	}

	*t = ""
	return nil
}

// errorText is an error or message field. Only a non-empty string or a
// non-zero number counts; 0, false and null decode as empty.
type errorText string

func (t *errorText) UnmarshalJSON(b []byte) error {
	*t = ""

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = errorText(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		if f, err := n.Float64(); err == nil && f != 0 {
			*t = errorText(n.String())
		}
	}
	return nil
}

// list decodes a JSON array of objects, skipping elements that are not
// objects. Anything other than an array decodes as empty.
type list[T any] []T

func (l *list[T]) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		*l = nil
		return nil
	}

	out := make([]T, 0, len(raw))
	for _, elem := range raw {
		if !isObject(elem) {
			continue
		}
		var v T
		if err := json.Unmarshal(elem, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	*l = out
	return nil
}
