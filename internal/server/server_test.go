package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/movieshelf/internal/client/api"
	"github.com/iudanet/movieshelf/internal/models"
	"github.com/iudanet/movieshelf/internal/server/config"
	"github.com/iudanet/movieshelf/internal/server/storage/sqlite"
	pkgapi "github.com/iudanet/movieshelf/pkg/api"
)

type staticToken string

func (s staticToken) AccessToken(ctx context.Context) (string, error) { return string(s), nil }

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	return newConfiguredServer(t, nil)
}

// newConfiguredServer поднимает сервер после Bootstrap; tune правит конфигурацию
func newConfiguredServer(t *testing.T, tune func(*config.Config)) (*Server, *httptest.Server) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:         "server-test-secret-0123456789",
		AccessTokenTTL:    time.Minute,
		RefreshTokenTTL:   time.Hour,
		GeneratorInterval: 20 * time.Millisecond,
		CORSOrigins:       []string{"*"},
		AdminUsername:     "admin",
	}
	if tune != nil {
		tune(cfg)
	}
	require.NoError(t, Bootstrap(context.Background(), cfg, store, logger))

	s := New(cfg, store, logger)
	ts := httptest.NewServer(s.Handler())

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
		ts.Close()
		_ = store.Close()
	})

	return s, ts
}

func login(t *testing.T, c *api.Client) string {
	t.Helper()
	ctx := context.Background()

	_, err := c.Register(ctx, pkgapi.RegisterRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	tokens, err := c.Login(ctx, pkgapi.LoginRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	return tokens.AccessToken
}

func TestServer_CatalogFlow(t *testing.T) {
	_, ts := newTestServer(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c := api.NewClient(ts.URL, logger)
	require.NoError(t, c.Health(ctx))

	// без токена изменения запрещены
	_, err := c.CreateMovie(ctx, &models.Movie{Title: "Heat", Director: "Michael Mann", Description: "Heist"})
	require.ErrorIs(t, err, api.ErrUnauthorized)

	c.SetTokenSource(staticToken(login(t, c)))

	created, err := c.CreateMovie(ctx, &models.Movie{
		Title:       "Heat",
		Director:    "Michael Mann",
		ReleaseDate: "1995-12-15",
		Rating:      8.3,
		Description: "Heist",
	})
	require.NoError(t, err)
	require.Positive(t, created.ID)
	assert.False(t, created.IsOffline)

	updated := created.Clone()
	updated.Rating = 9
	_, err = c.UpdateMovie(ctx, created.ID, updated)
	require.NoError(t, err)

	list, err := c.ListMovies(ctx, pkgapi.MovieQuery{Title: "hea"})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.InDelta(t, 9.0, list.Movies[0].Rating, 1e-9)

	rating, err := c.RateMovie(ctx, created.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, rating.Votes)

	mine, err := c.MyRatings(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, c.DeleteMovie(ctx, created.ID))
	_, err = c.GetMovie(ctx, created.ID)
	require.ErrorIs(t, err, api.ErrNotFound)
}

func TestServer_RelayGeneratesPersistedMovies(t *testing.T) {
	_, ts := newTestServer(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c := api.NewClient(ts.URL, logger)
	token := login(t, c)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/v1/ws?token=" + token
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	read := func() *pkgapi.Message {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var msg pkgapi.Message
		require.NoError(t, conn.ReadJSON(&msg))
		return &msg
	}

	assert.Equal(t, pkgapi.TypeGenerationState, read().Type)
	require.NoError(t, conn.WriteJSON(pkgapi.Message{Type: pkgapi.TypeStartGeneration}))

	var generated *models.Movie
	for generated == nil {
		msg := read()
		if msg.Type != pkgapi.TypeMovieCreated {
			continue
		}
		var payload pkgapi.MovieCreatedPayload
		require.NoError(t, msg.UnmarshalPayload(&payload))
		generated = payload.Movie
	}

	require.NoError(t, conn.WriteJSON(pkgapi.Message{Type: pkgapi.TypeStopGeneration}))

	// сгенерированный фильм сохранен в каталоге
	stored, err := c.GetMovie(ctx, generated.ID)
	require.NoError(t, err)
	assert.Equal(t, generated.Title, stored.Title)
	assert.Equal(t, generated.Director, stored.Director)
}

func TestServer_AuthRequiredRoutes(t *testing.T) {
	_, ts := newTestServer(t)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/v1/health", http.StatusOK},
		{http.MethodGet, "/api/v1/movies", http.StatusOK},
		{http.MethodPost, "/api/v1/movies", http.StatusUnauthorized},
		{http.MethodPut, "/api/v1/movies/1", http.StatusUnauthorized},
		{http.MethodDelete, "/api/v1/movies/1", http.StatusUnauthorized},
		{http.MethodPut, "/api/v1/movies/1/rating", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/me/ratings", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/auth/logout", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/ws", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/admin/users", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, nil)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestServer_AdminBootstrapAndSeed(t *testing.T) {
	_, ts := newConfiguredServer(t, func(cfg *config.Config) {
		cfg.AdminUsername = "root"
		cfg.AdminPassword = "root-password"
		cfg.Seed = true
	})
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c := api.NewClient(ts.URL, logger)

	list, err := c.ListMovies(ctx, pkgapi.MovieQuery{})
	require.NoError(t, err)
	assert.Equal(t, 10, list.Total)

	listUsers := func(token string) int {
		t.Helper()
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/admin/users", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		return resp.StatusCode
	}

	// обычный пользователь не проходит проверку роли
	assert.Equal(t, http.StatusForbidden, listUsers(login(t, c)))

	admin, err := c.Login(ctx, pkgapi.LoginRequest{Username: "root", Password: "root-password"})
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, http.StatusOK, listUsers(admin.AccessToken))
}

func TestServer_MetricsEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/movies")
	require.NoError(t, err)
	_ = resp.Body.Close()

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "movieshelf_http_requests_total")
	assert.Contains(t, string(body), `route="GET /api/v1/movies"`)
}

func TestServer_CORSPreflight(t *testing.T) {
	_, ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/v1/movies", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
