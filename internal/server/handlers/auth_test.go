package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/movieshelf/internal/crypto"
	"github.com/iudanet/movieshelf/internal/models"
	"github.com/iudanet/movieshelf/internal/server/storage"
	"github.com/iudanet/movieshelf/pkg/api"
)

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users        map[string]*models.User // username -> User
	createError  error
	getUserError error
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) DeleteUser(ctx context.Context, id string) error {
	return nil
}

// mockTokenStorage is a mock implementation of TokenStorage for testing
type mockTokenStorage struct {
	tokens        map[string]*models.RefreshToken // hash -> RefreshToken
	saveError     error
	getError      error
	deleteError   error
	savedTokens   []*models.RefreshToken
	deletedTokens []string
}

func newMockTokenStorage() *mockTokenStorage {
	return &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
}

func (m *mockTokenStorage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	if m.saveError != nil {
		return m.saveError
	}
	m.tokens[token.TokenHash] = token
	m.savedTokens = append(m.savedTokens, token)
	return nil
}

func (m *mockTokenStorage) GetRefreshToken(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	rt, ok := m.tokens[tokenHash]
	if !ok {
		return nil, storage.ErrTokenNotFound
	}
	return rt, nil
}

func (m *mockTokenStorage) DeleteRefreshToken(ctx context.Context, tokenHash string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	if _, ok := m.tokens[tokenHash]; !ok {
		return storage.ErrTokenNotFound
	}
	delete(m.tokens, tokenHash)
	m.deletedTokens = append(m.deletedTokens, tokenHash)
	return nil
}

func (m *mockTokenStorage) DeleteUserTokens(ctx context.Context, userID string) (int, error) {
	if m.deleteError != nil {
		return 0, m.deleteError
	}
	count := 0
	for hash, rt := range m.tokens {
		if rt.UserID == userID {
			delete(m.tokens, hash)
			m.deletedTokens = append(m.deletedTokens, hash)
			count++
		}
	}
	return count, nil
}

func (m *mockTokenStorage) DeleteExpiredTokens(ctx context.Context) (int, error) {
	return 0, nil
}

// existingUser создает пользователя с паролем "correct-horse"
func existingUser(t *testing.T) *mockUserStorage {
	t.Helper()
	hash, err := crypto.HashPassword("correct-horse")
	require.NoError(t, err)

	return &mockUserStorage{users: map[string]*models.User{
		"testuser": {ID: "user123", Username: "testuser", PasswordHash: hash},
	}}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	userStorage := &mockUserStorage{users: make(map[string]*models.User)}
	handler := NewAuthHandler(setupTestLogger(), userStorage, newMockTokenStorage(), newTestJWT())

	w := httptest.NewRecorder()
	handler.Register(w, jsonRequest(t, http.MethodPost, "/api/v1/auth/register", api.RegisterRequest{
		Username: "testuser",
		Password: "correct-horse",
	}))

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody[api.RegisterResponse](t, w)
	assert.NotEmpty(t, resp.UserID)

	user, err := userStorage.GetUserByUsername(context.Background(), "testuser")
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, user.ID)
	// пароль хранится только в виде bcrypt хеша
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.NoError(t, crypto.VerifyPassword("correct-horse", user.PasswordHash))
}

func TestAuthHandler_Register_Errors(t *testing.T) {
	tests := []struct {
		body        any
		storage     *mockUserStorage
		name        string
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "invalid json",
			body:       "{invalid",
			storage:    &mockUserStorage{users: map[string]*models.User{}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid username",
			body:       api.RegisterRequest{Username: "a!", Password: "correct-horse"},
			storage:    &mockUserStorage{users: map[string]*models.User{}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "short password",
			body:        api.RegisterRequest{Username: "testuser", Password: "short"},
			storage:     &mockUserStorage{users: map[string]*models.User{}},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "password must be at least 8 characters long",
		},
		{
			name: "duplicate username",
			body: api.RegisterRequest{Username: "testuser", Password: "correct-horse"},
			storage: &mockUserStorage{users: map[string]*models.User{
				"testuser": {ID: "existing", Username: "testuser"},
			}},
			wantStatus:  http.StatusConflict,
			wantMessage: "username already taken",
		},
		{
			name:       "storage error",
			body:       api.RegisterRequest{Username: "testuser", Password: "correct-horse"},
			storage:    &mockUserStorage{users: map[string]*models.User{}, createError: errors.New("disk full")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(setupTestLogger(), tt.storage, newMockTokenStorage(), newTestJWT())

			w := httptest.NewRecorder()
			handler.Register(w, jsonRequest(t, http.MethodPost, "/api/v1/auth/register", tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeBody[api.ErrorResponse](t, w)
			assert.Equal(t, http.StatusText(tt.wantStatus), resp.Error)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, resp.Message)
			}
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	tokenStorage := newMockTokenStorage()
	tokens := newTestJWT()
	handler := NewAuthHandler(setupTestLogger(), existingUser(t), tokenStorage, tokens)

	w := httptest.NewRecorder()
	handler.Login(w, jsonRequest(t, http.MethodPost, "/api/v1/auth/login", api.LoginRequest{
		Username: "testuser",
		Password: "correct-horse",
	}))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[api.TokenResponse](t, w)

	assert.Equal(t, "user123", resp.UserID)
	assert.Equal(t, int64(900), resp.ExpiresIn)
	assert.Equal(t, int64((30 * 24 * time.Hour).Seconds()), resp.RefreshExpiresIn)

	claims, err := tokens.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user123", claims.UserID)
	assert.Equal(t, "testuser", claims.Username)

	// в хранилище попадает только хеш refresh токена
	require.Len(t, tokenStorage.savedTokens, 1)
	saved := tokenStorage.savedTokens[0]
	assert.Equal(t, crypto.HashToken(resp.RefreshToken), saved.TokenHash)
	assert.Equal(t, "user123", saved.UserID)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), saved.ExpiresAt, time.Minute)
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	tests := []struct {
		body         any
		name         string
		getUserError error
		saveError    error
		wantStatus   int
	}{
		{
			name:       "invalid json",
			body:       "not json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty password",
			body:       api.LoginRequest{Username: "testuser"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown user",
			body:       api.LoginRequest{Username: "nobody", Password: "correct-horse"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong password",
			body:       api.LoginRequest{Username: "testuser", Password: "wrong-password"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:         "storage error",
			body:         api.LoginRequest{Username: "testuser", Password: "correct-horse"},
			getUserError: errors.New("database is locked"),
			wantStatus:   http.StatusInternalServerError,
		},
		{
			name:       "token save error",
			body:       api.LoginRequest{Username: "testuser", Password: "correct-horse"},
			saveError:  errors.New("database is locked"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := existingUser(t)
			users.getUserError = tt.getUserError
			tokenStorage := newMockTokenStorage()
			tokenStorage.saveError = tt.saveError
			handler := NewAuthHandler(setupTestLogger(), users, tokenStorage, newTestJWT())

			w := httptest.NewRecorder()
			handler.Login(w, jsonRequest(t, http.MethodPost, "/api/v1/auth/login", tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				resp := decodeBody[api.ErrorResponse](t, w)
				// сообщение не раскрывает, существует ли пользователь
				assert.Equal(t, "invalid credentials", resp.Message)
			}
		})
	}
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	oldRefreshToken := "old-refresh-token"
	oldHash := crypto.HashToken(oldRefreshToken)
	tokenStorage := newMockTokenStorage()
	tokenStorage.tokens[oldHash] = &models.RefreshToken{
		TokenHash: oldHash,
		UserID:    "user123",
		ExpiresAt: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	}

	handler := NewAuthHandler(setupTestLogger(), existingUser(t), tokenStorage, newTestJWT())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+oldRefreshToken)

	w := httptest.NewRecorder()
	handler.Refresh(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[api.TokenResponse](t, w)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEqual(t, oldRefreshToken, resp.RefreshToken)

	// старый токен отозван, новый сохранен
	assert.Contains(t, tokenStorage.deletedTokens, oldHash)
	require.Len(t, tokenStorage.savedTokens, 1)
	assert.Equal(t, crypto.HashToken(resp.RefreshToken), tokenStorage.savedTokens[0].TokenHash)
}

func TestAuthHandler_Refresh_Errors(t *testing.T) {
	validHash := crypto.HashToken("valid-token")
	expiredHash := crypto.HashToken("expired-token")
	orphanHash := crypto.HashToken("orphan-token")

	tests := []struct {
		getError   error
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer unknown-token", wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer expired-token", wantStatus: http.StatusUnauthorized},
		{name: "user deleted", header: "Bearer orphan-token", wantStatus: http.StatusUnauthorized},
		{name: "storage error", header: "Bearer valid-token", getError: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenStorage := newMockTokenStorage()
			tokenStorage.getError = tt.getError
			tokenStorage.tokens[validHash] = &models.RefreshToken{TokenHash: validHash, UserID: "user123", ExpiresAt: time.Now().Add(time.Hour)}
			tokenStorage.tokens[expiredHash] = &models.RefreshToken{TokenHash: expiredHash, UserID: "user123", ExpiresAt: time.Now().Add(-time.Hour)}
			tokenStorage.tokens[orphanHash] = &models.RefreshToken{TokenHash: orphanHash, UserID: "ghost", ExpiresAt: time.Now().Add(time.Hour)}

			handler := NewAuthHandler(setupTestLogger(), existingUser(t), tokenStorage, newTestJWT())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			handler.Refresh(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Empty(t, tokenStorage.savedTokens)
		})
	}
}

func TestAuthHandler_Refresh_ExpiredTokenIsRevoked(t *testing.T) {
	hash := crypto.HashToken("expired-token")
	tokenStorage := newMockTokenStorage()
	tokenStorage.tokens[hash] = &models.RefreshToken{TokenHash: hash, UserID: "user123", ExpiresAt: time.Now().Add(-time.Minute)}

	handler := NewAuthHandler(setupTestLogger(), existingUser(t), tokenStorage, newTestJWT())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	w := httptest.NewRecorder()
	handler.Refresh(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, tokenStorage.tokens, hash)
}

func TestAuthHandler_Logout(t *testing.T) {
	tokenStorage := newMockTokenStorage()
	tokenStorage.tokens["h1"] = &models.RefreshToken{TokenHash: "h1", UserID: "user123"}
	tokenStorage.tokens["h2"] = &models.RefreshToken{TokenHash: "h2", UserID: "user123"}
	tokenStorage.tokens["h3"] = &models.RefreshToken{TokenHash: "h3", UserID: "other"}

	handler := NewAuthHandler(setupTestLogger(), existingUser(t), tokenStorage, newTestJWT())

	t.Run("revokes all user tokens", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		req = req.WithContext(WithUser(req.Context(), "user123", "testuser"))

		w := httptest.NewRecorder()
		handler.Logout(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.ElementsMatch(t, []string{"h1", "h2"}, tokenStorage.deletedTokens)
		assert.Contains(t, tokenStorage.tokens, "h3")
	})

	t.Run("no user in context", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Logout(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("storage error", func(t *testing.T) {
		tokenStorage.deleteError = errors.New("boom")
		defer func() { tokenStorage.deleteError = nil }()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		req = req.WithContext(WithUser(req.Context(), "user123", "testuser"))

		w := httptest.NewRecorder()
		handler.Logout(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		header  string
		want    string
	}{
		{name: "valid", header: "Bearer abc.def", want: "abc.def"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "missing", header: "", wantErr: ErrMissingAuthHeader},
		{name: "no token", header: "Bearer", wantErr: ErrInvalidAuthHeader},
		{name: "blank token", header: "Bearer   ", wantErr: ErrInvalidAuthHeader},
		{name: "basic", header: "Basic abc", wantErr: ErrInvalidAuthHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			got, err := BearerToken(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
