package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type recordingBackend struct {
	key         string
	size        int64
	contentType string
	body        []byte
}

func (b *recordingBackend) Put(_ context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	b.key, b.size, b.contentType, b.body = key, size, contentType, data
	return "https://cdn.example.com/" + key, nil
}

func TestUploader_Upload(t *testing.T) {
	img := pngBytes(t)

	tests := []struct {
		name    string
		body    []byte
		maxSize int64
		wantErr error
	}{
		{name: "png", body: img, maxSize: 1 << 20},
		{name: "empty", body: nil, maxSize: 1 << 20, wantErr: ErrEmptyFile},
		{name: "too large", body: img, maxSize: int64(len(img) - 1), wantErr: ErrTooLarge},
		{name: "exactly max", body: img, maxSize: int64(len(img))},
		{name: "not an image", body: []byte("<html><body>hi</body></html>"), maxSize: 1 << 20, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &recordingBackend{}
			u := NewUploader(backend, tt.maxSize)
			u.now = func() time.Time { return time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC) }

			url, err := u.Upload(context.Background(), bytes.NewReader(tt.body))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, backend.key)
				return
			}
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(backend.key, "images/2024/03/"))
			require.True(t, strings.HasSuffix(backend.key, ".png"))
			require.Equal(t, "image/png", backend.contentType)
			require.Equal(t, int64(len(tt.body)), backend.size)
			require.Equal(t, tt.body, backend.body)
			require.Equal(t, "https://cdn.example.com/"+backend.key, url)
		})
	}
}

func TestLocal_Put(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	l, err := NewLocal(dir, "/uploads")
	require.NoError(t, err)
	require.Equal(t, dir, l.Dir())

	url, err := l.Put(context.Background(), "images/2024/03/a.png", strings.NewReader("data"), 4, "image/png")
	require.NoError(t, err)
	require.Equal(t, "/uploads/images/2024/03/a.png", url)

	got, err := os.ReadFile(filepath.Join(dir, "images", "2024", "03", "a.png"))
	require.NoError(t, err)
	require.Equal(t, "data", string(got))
}
