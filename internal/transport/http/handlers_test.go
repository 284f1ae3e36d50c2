package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/naotica/studio/internal/auth"
	"github.com/naotica/studio/internal/chat"
	"github.com/naotica/studio/internal/domain"
	"github.com/naotica/studio/internal/proxy"
	"github.com/naotica/studio/internal/ratelimit"
	"github.com/naotica/studio/internal/resolver"
	"github.com/naotica/studio/internal/storage"
	"github.com/naotica/studio/internal/transport/http/mocks"
)

const testPassword = "letmein"

type testEnv struct {
	resolver *mocks.MockResolver
	streamer *mocks.MockStreamer
	chat     *mocks.MockChatClient
	store    *mocks.MockContentStore
	usage    *mocks.MockUsageTracker
	uploader *mocks.MockImageUploader
	queue    *mocks.MockQueueStats
	session  *auth.Manager
	router   http.Handler
}

func newTestEnv(t *testing.T, downloadLimit int) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	session, err := auth.NewManager(auth.Config{PasswordHash: string(hash), Secret: "test-secret", TTL: time.Hour})
	require.NoError(t, err)

	env := &testEnv{
		resolver: mocks.NewMockResolver(ctrl),
		streamer: mocks.NewMockStreamer(ctrl),
		chat:     mocks.NewMockChatClient(ctrl),
		store:    mocks.NewMockContentStore(ctrl),
		usage:    mocks.NewMockUsageTracker(ctrl),
		uploader: mocks.NewMockImageUploader(ctrl),
		queue:    mocks.NewMockQueueStats(ctrl),
		session:  session,
	}

	h := NewHandlers(&Deps{
		Resolver: env.resolver,
		Streamer: env.streamer,
		Chat:     env.chat,
		Store:    env.store,
		Usage:    env.usage,
		Uploader: env.uploader,
		Queue:    env.queue,
		Session:  session,
	})

	store := ratelimit.NewMemoryStore(0)
	env.router = NewRouter(&RouterConfig{
		AllowedOrigins: []string{"http://localhost:3000"},
		Download:       ratelimit.New("download", downloadLimit, time.Minute, store),
		Chat:           ratelimit.New("chat", 20, time.Minute, store),
	}, h)

	return env
}

func (e *testEnv) noMaintenance() {
	e.store.EXPECT().GetSettings(gomock.Any()).Return(&domain.Settings{}, nil).AnyTimes()
}

func (e *testEnv) adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := e.session.Login(testPassword)
	require.NoError(t, err)
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthHandler(t *testing.T) {
	env := newTestEnv(t, 10)
	env.queue.EXPECT().QueueSize().Return(3)
	env.queue.EXPECT().WorkerCount().Return(2)

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok","queue_size":3,"workers":2}`, w.Body.String())
}

func TestDownloadHandler_Success(t *testing.T) {
	env := newTestEnv(t, 10)
	env.noMaintenance()

	thumb := "https://img.example.com/t.jpg"
	env.resolver.EXPECT().
		Resolve(gomock.Any(), "https://youtu.be/abc").
		Return(&domain.ResolvedMedia{
			Title:       "Clip",
			Thumbnail:   &thumb,
			DownloadURL: "https://cdn.example.com/v.mp4",
			Formats:     []domain.Format{{Quality: "720p", URL: "https://cdn.example.com/v.mp4", Ext: "mp4"}},
		}, nil)
	env.usage.EXPECT().Record(gomock.Any(), domain.ToolDownloader, true, "203.0.113.9")

	w := env.do(jsonRequest(http.MethodPost, "/api/tools/download", `{"url":"https://youtu.be/abc"}`))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{
		"success": true,
		"title": "Clip",
		"thumbnail": "https://img.example.com/t.jpg",
		"downloadUrl": "https://cdn.example.com/v.mp4",
		"formats": [{"quality":"720p","url":"https://cdn.example.com/v.mp4","ext":"mp4"}]
	}`, w.Body.String())
}

func TestDownloadHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantCode   string
		recorded   bool
	}{
		{name: "empty url", err: resolver.ErrEmptyURL, wantStatus: 400, wantError: "Please enter a URL", wantCode: "INVALID_URL"},
		{name: "invalid url", err: resolver.ErrInvalidURL, wantStatus: 400, wantError: "Please enter a valid URL", wantCode: "INVALID_URL"},
		{name: "upstream auth", err: resolver.ErrUpstreamAuth, wantStatus: 401, wantError: "API authentication failed", wantCode: "UPSTREAM_AUTH", recorded: true},
		{name: "upstream status", err: &resolver.UpstreamError{Status: 503}, wantStatus: 400, wantError: msgUpstreamFailed, wantCode: "UPSTREAM_UNAVAILABLE", recorded: true},
		{name: "no link", err: &resolver.ResolutionError{Message: "Failed to fetch download link"}, wantStatus: 400, wantError: "Failed to fetch download link", wantCode: "RESOLUTION_FAILED", recorded: true},
		{name: "upstream message", err: &resolver.ResolutionError{Message: "Video is private"}, wantStatus: 400, wantError: "Video is private", wantCode: "RESOLUTION_FAILED", recorded: true},
		{name: "network", err: &resolver.UpstreamError{Err: io.ErrUnexpectedEOF}, wantStatus: 500, wantError: msgConnectionError, wantCode: "INTERNAL_ERROR", recorded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, 10)
			env.noMaintenance()
			env.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			if tt.recorded {
				env.usage.EXPECT().Record(gomock.Any(), domain.ToolDownloader, false, gomock.Any())
			}

			w := env.do(jsonRequest(http.MethodPost, "/api/tools/download", `{"url":"x"}`))

			require.Equal(t, tt.wantStatus, w.Code)
			body := decodeBody(t, w)
			require.Equal(t, false, body["success"])
			require.Equal(t, tt.wantError, body["error"])
			require.Equal(t, tt.wantCode, body["code"])
		})
	}
}

func TestDownloadHandler_InvalidBody(t *testing.T) {
	env := newTestEnv(t, 10)
	env.noMaintenance()

	w := env.do(jsonRequest(http.MethodPost, "/api/tools/download", `{"url":`))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "INVALID_BODY", decodeBody(t, w)["code"])
}

func TestDownloadHandler_Maintenance(t *testing.T) {
	env := newTestEnv(t, 10)
	env.store.EXPECT().GetSettings(gomock.Any()).Return(&domain.Settings{DownloaderMaintenance: true}, nil)

	w := env.do(jsonRequest(http.MethodPost, "/api/tools/download", `{"url":"https://youtu.be/abc"}`))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, "MAINTENANCE", decodeBody(t, w)["code"])
}

func TestDownloadHandler_RateLimit(t *testing.T) {
	env := newTestEnv(t, 2)
	env.noMaintenance()
	env.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(&domain.ResolvedMedia{Title: "t", DownloadURL: "https://cdn.example.com/v.mp4"}, nil).Times(2)
	env.usage.EXPECT().Record(gomock.Any(), domain.ToolDownloader, true, "203.0.113.9").Times(2)

	for i := 0; i < 2; i++ {
		w := env.do(jsonRequest(http.MethodPost, "/api/tools/download", `{"url":"https://youtu.be/abc"}`))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := env.do(jsonRequest(http.MethodPost, "/api/tools/download", `{"url":"https://youtu.be/abc"}`))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "60", w.Header().Get("Retry-After"))
	require.Equal(t, "Rate limit exceeded. Please try again later.", decodeBody(t, w)["error"])

	// Another client has its own window.
	req := jsonRequest(http.MethodPost, "/api/tools/download", `{"url":"https://youtu.be/abc"}`)
	req.Header.Set("X-Forwarded-For", "198.51.100.4")
	env.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(&domain.ResolvedMedia{Title: "t", DownloadURL: "u"}, nil)
	env.usage.EXPECT().Record(gomock.Any(), domain.ToolDownloader, true, "198.51.100.4")
	require.Equal(t, http.StatusOK, env.do(req).Code)
}

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestDownloadProxyHandler(t *testing.T) {
	t.Run("streams with headers", func(t *testing.T) {
		env := newTestEnv(t, 10)
		env.noMaintenance()
		body := &closeRecorder{Reader: strings.NewReader("videobytes")}
		env.streamer.EXPECT().
			Open(gomock.Any(), "https://cdn.example.com/v.mp4").
			Return(&proxy.Stream{Body: body, ContentLength: 10}, nil)

		w := env.do(httptest.NewRequest(http.MethodGet,
			"/api/tools/download/proxy?url=https%3A%2F%2Fcdn.example.com%2Fv.mp4&filename=My+Video!!+%231.mp4&format=mp4", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "videobytes", w.Body.String())
		require.Equal(t, "video/mp4", w.Header().Get("Content-Type"))
		require.Equal(t, `attachment; filename="My Video 1.mp4"`, w.Header().Get("Content-Disposition"))
		require.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
		require.Equal(t, "10", w.Header().Get("Content-Length"))
		require.True(t, body.closed)
	})

	t.Run("unknown length and mp3", func(t *testing.T) {
		env := newTestEnv(t, 10)
		env.noMaintenance()
		env.streamer.EXPECT().Open(gomock.Any(), gomock.Any()).
			Return(&proxy.Stream{Body: io.NopCloser(strings.NewReader("abc")), ContentLength: -1}, nil)

		w := env.do(httptest.NewRequest(http.MethodGet, "/api/tools/download/proxy?url=https://cdn.example.com/a&format=mp3", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
		require.Equal(t, `attachment; filename="download.mp3"`, w.Header().Get("Content-Disposition"))
		require.Empty(t, w.Header().Get("Content-Length"))
	})

	tests := []struct {
		name       string
		target     string
		openErr    error
		wantStatus int
		wantError  string
	}{
		{name: "missing url", target: "/api/tools/download/proxy", wantStatus: 400, wantError: "Download URL is required"},
		{name: "bad scheme", target: "/api/tools/download/proxy?url=file:///etc/passwd", wantStatus: 400, wantError: "Invalid download URL"},
		{name: "upstream status", target: "/api/tools/download/proxy?url=https://cdn.example.com/a", openErr: fmt.Errorf("%w: status 404", proxy.ErrUpstreamFetch), wantStatus: 502, wantError: "Failed to fetch file"},
		{name: "network", target: "/api/tools/download/proxy?url=https://cdn.example.com/a", openErr: io.ErrUnexpectedEOF, wantStatus: 500, wantError: "Download failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, 10)
			env.noMaintenance()
			if tt.openErr != nil {
				env.streamer.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, tt.openErr)
			}

			w := env.do(httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, tt.wantStatus, w.Code)
			require.Equal(t, tt.wantError, decodeBody(t, w)["error"])
		})
	}
}

func TestChatHandler(t *testing.T) {
	t.Run("not configured wins over validation", func(t *testing.T) {
		env := newTestEnv(t, 10)
		env.noMaintenance()
		env.chat.EXPECT().Configured().Return(false)

		w := env.do(jsonRequest(http.MethodPost, "/api/tools/chat", `{"message":""}`))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		require.Equal(t, "Service temporarily unavailable", decodeBody(t, w)["error"])
	})

	tests := []struct {
		name       string
		body       string
		reply      string
		askErr     error
		ask        bool
		wantStatus int
		wantError  string
	}{
		{name: "empty", body: `{"message":""}`, wantStatus: 400, wantError: "Message cannot be empty"},
		{name: "too long", body: `{"message":"` + strings.Repeat("a", chat.MaxMessageLength+1) + `"}`, wantStatus: 400, wantError: "Message too long"},
		{name: "reply", body: `{"message":"hi"}`, ask: true, reply: "hello", wantStatus: 200},
		{name: "upstream message", body: `{"message":"hi"}`, ask: true, askErr: &chat.ReplyError{Message: "quota exceeded"}, wantStatus: 400, wantError: "quota exceeded"},
		{name: "network", body: `{"message":"hi"}`, ask: true, askErr: io.ErrUnexpectedEOF, wantStatus: 500, wantError: msgConnectionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, 10)
			env.noMaintenance()
			env.chat.EXPECT().Configured().Return(true)
			if tt.ask {
				env.chat.EXPECT().Ask(gomock.Any(), "hi").Return(tt.reply, tt.askErr)
				env.usage.EXPECT().Record(gomock.Any(), domain.ToolAIChat, tt.askErr == nil, "203.0.113.9")
			}

			w := env.do(jsonRequest(http.MethodPost, "/api/tools/chat", tt.body))

			require.Equal(t, tt.wantStatus, w.Code)
			body := decodeBody(t, w)
			if tt.wantError != "" {
				require.Equal(t, tt.wantError, body["error"])
				return
			}
			require.Equal(t, true, body["success"])
			require.Equal(t, tt.reply, body["response"])
		})
	}
}

func TestImageToolsHandler(t *testing.T) {
	env := newTestEnv(t, 10)
	env.store.EXPECT().GetSettings(gomock.Any()).Return(&domain.Settings{ImageToolsMaintenance: true}, nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/tools/image", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, "Image tools are under maintenance", decodeBody(t, w)["error"])

	env.store.EXPECT().GetSettings(gomock.Any()).Return(&domain.Settings{}, nil)
	w = env.do(httptest.NewRequest(http.MethodGet, "/api/tools/image", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "coming_soon", decodeBody(t, w)["status"])
}

func TestAuthHandlers(t *testing.T) {
	env := newTestEnv(t, 10)

	w := env.do(jsonRequest(http.MethodPost, "/api/auth", `{"password":"nope"}`))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid password", decodeBody(t, w)["error"])

	w = env.do(jsonRequest(http.MethodPost, "/api/auth", `{"password":"`+testPassword+`"}`))
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, auth.CookieName, cookies[0].Name)

	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	req.AddCookie(cookies[0])
	w = env.do(req)
	require.Equal(t, true, decodeBody(t, w)["authenticated"])

	w = env.do(httptest.NewRequest(http.MethodGet, "/api/auth", nil))
	require.Equal(t, false, decodeBody(t, w)["authenticated"])

	w = env.do(httptest.NewRequest(http.MethodDelete, "/api/auth", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, -1, w.Result().Cookies()[0].MaxAge)
}

func TestProjectsHandlers(t *testing.T) {
	env := newTestEnv(t, 10)
	cookie := env.adminCookie(t)

	env.store.EXPECT().ListProjects(gomock.Any(), true).Return([]domain.Project{{ID: "p1", Title: "A", Tags: []string{}}}, nil)
	w := env.do(httptest.NewRequest(http.MethodGet, "/api/projects?featured=true", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.EqualValues(t, 1, body["count"])

	w = env.do(jsonRequest(http.MethodPost, "/api/projects", `{"title":"New"}`))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	req := jsonRequest(http.MethodPost, "/api/projects", `{"description":"no title"}`)
	req.AddCookie(cookie)
	w = env.do(req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Title is required", decodeBody(t, w)["error"])

	env.store.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, p *domain.Project) error {
		require.Equal(t, "New", p.Title)
		require.Equal(t, "Web App", p.Category)
		require.Equal(t, []string{"Go"}, p.Tags)
		p.ID = "p2"
		return nil
	})
	req = jsonRequest(http.MethodPost, "/api/projects", `{"title":"New","tags":["Go"]}`)
	req.AddCookie(cookie)
	w = env.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	project := decodeBody(t, w)["project"].(map[string]any)
	require.Equal(t, "p2", project["id"])

	env.store.EXPECT().GetProject(gomock.Any(), "p2").Return(&domain.Project{ID: "p2", Title: "New", Featured: false, Tags: []string{"Go"}}, nil)
	env.store.EXPECT().UpdateProject(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, p *domain.Project) error {
		require.True(t, p.Featured)
		require.Equal(t, "New", p.Title)
		require.Equal(t, []string{"Go"}, p.Tags)
		return nil
	})
	req = jsonRequest(http.MethodPut, "/api/projects", `{"id":"p2","featured":true}`)
	req.AddCookie(cookie)
	require.Equal(t, http.StatusOK, env.do(req).Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/projects", nil)
	req.AddCookie(cookie)
	w = env.do(req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Project ID is required", decodeBody(t, w)["error"])

	env.store.EXPECT().DeleteProject(gomock.Any(), "gone").Return(domain.ErrNotFound)
	req = httptest.NewRequest(http.MethodDelete, "/api/projects?id=gone", nil)
	req.AddCookie(cookie)
	w = env.do(req)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Project not found", decodeBody(t, w)["error"])

	env.store.EXPECT().DeleteProject(gomock.Any(), "p2").Return(nil)
	req = httptest.NewRequest(http.MethodDelete, "/api/projects?id=p2", nil)
	req.AddCookie(cookie)
	w = env.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Project deleted", decodeBody(t, w)["message"])
}

func TestServicesHandlers(t *testing.T) {
	env := newTestEnv(t, 10)
	cookie := env.adminCookie(t)

	req := jsonRequest(http.MethodPost, "/api/services", `{"placeName":"Agency"}`)
	req.AddCookie(cookie)
	w := env.do(req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Place name and start year are required", decodeBody(t, w)["error"])

	env.store.EXPECT().CreateService(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, s *domain.Service) error {
		require.Equal(t, 2021, s.StartYear)
		require.Nil(t, s.EndYear)
		return nil
	})
	req = jsonRequest(http.MethodPost, "/api/services", `{"placeName":"Agency","startYear":"2021"}`)
	req.AddCookie(cookie)
	require.Equal(t, http.StatusOK, env.do(req).Code)

	end := 2023
	env.store.EXPECT().GetService(gomock.Any(), "s1").Return(&domain.Service{ID: "s1", PlaceName: "Agency", StartYear: 2021, EndYear: &end}, nil)
	env.store.EXPECT().UpdateService(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, s *domain.Service) error {
		require.Nil(t, s.EndYear)
		require.Equal(t, "Agency", s.PlaceName)
		return nil
	})
	req = jsonRequest(http.MethodPut, "/api/services", `{"id":"s1","endYear":""}`)
	req.AddCookie(cookie)
	require.Equal(t, http.StatusOK, env.do(req).Code)

	env.store.EXPECT().GetService(gomock.Any(), "missing").Return(nil, domain.ErrNotFound)
	req = jsonRequest(http.MethodPut, "/api/services", `{"id":"missing"}`)
	req.AddCookie(cookie)
	w = env.do(req)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Service not found", decodeBody(t, w)["error"])
}

func TestWatchlistHandlers(t *testing.T) {
	env := newTestEnv(t, 10)
	cookie := env.adminCookie(t)

	env.store.EXPECT().ListWatchlist(gomock.Any()).Return([]domain.WatchlistItem{}, nil)
	w := env.do(httptest.NewRequest(http.MethodGet, "/api/watchlist", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true,"watchlist":[],"count":0}`, w.Body.String())

	env.store.EXPECT().GetWatchlistItem(gomock.Any(), "w1").Return(&domain.WatchlistItem{ID: "w1", Title: "Film", Type: domain.WatchlistMovie}, nil)
	req := jsonRequest(http.MethodPut, "/api/watchlist", `{"id":"w1","type":"podcast"}`)
	req.AddCookie(cookie)
	w = env.do(req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env.store.EXPECT().CreateWatchlistItem(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, item *domain.WatchlistItem) error {
		require.Equal(t, domain.WatchlistMovie, item.Type)
		require.Equal(t, 7.5, *item.Rating)
		return nil
	})
	req = jsonRequest(http.MethodPost, "/api/watchlist", `{"title":"Film","rating":"7.5"}`)
	req.AddCookie(cookie)
	require.Equal(t, http.StatusOK, env.do(req).Code)
}

func TestSettingsHandlers(t *testing.T) {
	env := newTestEnv(t, 10)
	cookie := env.adminCookie(t)

	env.store.EXPECT().GetSettings(gomock.Any()).Return(&domain.Settings{ContactEmail: "old@naotica.studio"}, nil)
	env.store.EXPECT().SaveSettings(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, s *domain.Settings) error {
		require.True(t, s.AIChatMaintenance)
		require.False(t, s.DownloaderMaintenance)
		require.Equal(t, "new@naotica.studio", s.ContactEmail)
		return nil
	})

	req := jsonRequest(http.MethodPost, "/api/settings",
		`{"aiChatMaintenance":true,"downloaderMaintenance":"yes","contactEmail":"new@naotica.studio"}`)
	req.AddCookie(cookie)
	w := env.do(req)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(jsonRequest(http.MethodPost, "/api/settings", `{}`))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStatsHandler(t *testing.T) {
	env := newTestEnv(t, 10)
	env.usage.EXPECT().Stats(gomock.Any()).Return(&domain.Stats{TotalHits: 4, Growth: "+0%"}, nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	require.EqualValues(t, 4, data["totalHits"])
	require.Equal(t, "+0%", data["growth"])
}

func multipartUpload(t *testing.T, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "cover.png")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadHandler(t *testing.T) {
	env := newTestEnv(t, 10)
	cookie := env.adminCookie(t)
	env.uploader.EXPECT().MaxSize().Return(int64(1 << 20)).AnyTimes()

	require.Equal(t, http.StatusUnauthorized, env.do(multipartUpload(t, []byte("x"))).Code)

	env.uploader.EXPECT().Upload(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, r io.Reader) (string, error) {
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, "image-bytes", string(data))
		return "/uploads/images/a.png", nil
	})
	req := multipartUpload(t, []byte("image-bytes"))
	req.AddCookie(cookie)
	w := env.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "/uploads/images/a.png", decodeBody(t, w)["url"])

	env.uploader.EXPECT().Upload(gomock.Any(), gomock.Any()).Return("", storage.ErrUnsupportedType)
	req = multipartUpload(t, []byte("<html>"))
	req.AddCookie(cookie)
	w = env.do(req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "INVALID_FILE", decodeBody(t, w)["code"])

	req = jsonRequest(http.MethodPost, "/api/admin/uploads", `{}`)
	req.AddCookie(cookie)
	w = env.do(req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "MISSING_FILE", decodeBody(t, w)["code"])
}

func TestNotFound(t *testing.T) {
	env := newTestEnv(t, 10)

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"success":false,"error":"Not found","code":"NOT_FOUND"}`, w.Body.String())
}
