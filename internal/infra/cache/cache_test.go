package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/naotica/studio/internal/domain"
)

func TestMediaCache(t *testing.T) {
	c := NewMediaCache(time.Minute, time.Minute)

	_, found := c.Get("https://example.com/v")
	require.False(t, found)

	thumb := "https://cdn.example.com/t.jpg"
	c.Set("https://example.com/v", &domain.ResolvedMedia{
		Title:       "Clip",
		Thumbnail:   &thumb,
		DownloadURL: "https://cdn.example.com/v.mp4",
		Formats:     []domain.Format{{Quality: "hd", URL: "https://cdn.example.com/v.mp4", Ext: "mp4"}},
	})

	got, found := c.Get("https://example.com/v")
	require.True(t, found)
	require.Equal(t, "Clip", got.Title)
	require.Equal(t, thumb, *got.Thumbnail)

	// Callers get their own copy.
	got.Formats[0].Quality = "changed"
	again, _ := c.Get("https://example.com/v")
	require.Equal(t, "hd", again.Formats[0].Quality)

}

func TestMediaCache_Expires(t *testing.T) {
	c := NewMediaCache(20*time.Millisecond, time.Hour)
	c.Set("https://example.com/v", &domain.ResolvedMedia{Title: "Clip", DownloadURL: "https://cdn.example.com/v.mp4"})

	_, found := c.Get("https://example.com/v")
	require.True(t, found)

	// Signed CDN links go stale, so an expired entry must not be served
	// even before the janitor runs.
	require.Eventually(t, func() bool {
		_, found := c.Get("https://example.com/v")
		return !found
	}, time.Second, 10*time.Millisecond)
}
