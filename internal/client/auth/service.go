package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/movieshelf/internal/client/storage"
	"github.com/iudanet/movieshelf/internal/validation"
	pkgapi "github.com/iudanet/movieshelf/pkg/api"
)

// refreshLeeway access token обновляется заранее, чтобы не истечь в полёте
const refreshLeeway = 30 * time.Second

// service предоставляет функции авторизации
type service struct {
	remote Remote
	store  storage.AuthStorage
	logger *slog.Logger
	now    func() time.Time
	mu     sync.Mutex
}

// NewService создает новый сервис авторизации
func NewService(remote Remote, store storage.AuthStorage, logger *slog.Logger) Service {
	return &service{
		remote: remote,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Register регистрирует нового пользователя
func (s *service) Register(ctx context.Context, username, password string) (*pkgapi.RegisterResponse, error) {
	// Валидация входных данных
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.remote.Register(ctx, pkgapi.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return resp, nil
}

// Login выполняет аутентификацию пользователя и сохраняет токены
func (s *service) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if password == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}

	resp, err := s.remote.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	authData := s.authFromTokens(username, resp)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	s.logger.InfoContext(ctx, "Logged in", slog.String("username", username))

	return authData, nil
}

// Logout выполняет выход из системы
// Удаляет локальные данные авторизации и опционально уведомляет сервер
func (s *service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	authData, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get auth data: %w", err)
	}

	// Уведомляем сервер (best effort)
	if logoutErr := s.remote.Logout(ctx, authData.AccessToken); logoutErr != nil {
		// Не прерываем процесс, если сервер недоступен
		s.logger.WarnContext(ctx, "Failed to logout on server", slog.Any("error", logoutErr))
	}

	// Всегда удаляем локальные данные, даже если сервер недоступен
	if err := s.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}

	return nil
}

// Current возвращает сохранённую сессию
func (s *service) Current(ctx context.Context) (*storage.AuthData, error) {
	return s.store.GetAuth(ctx)
}

// IsAuthenticated checks if valid authentication exists
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.store.IsAuthenticated(ctx)
}

// AccessToken возвращает действующий access token.
// Если до истечения осталось меньше refreshLeeway, токены обновляются через сервер.
func (s *service) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	authData, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return "", fmt.Errorf("not logged in: %w", err)
		}
		return "", fmt.Errorf("failed to get auth data: %w", err)
	}

	if s.now().Add(refreshLeeway).Unix() < authData.AccessExpiresAt {
		return authData.AccessToken, nil
	}

	s.logger.DebugContext(ctx, "Access token expired, refreshing", slog.String("username", authData.Username))

	resp, err := s.remote.Refresh(ctx, authData.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}

	refreshed := s.authFromTokens(authData.Username, resp)
	if refreshed.UserID == "" {
		refreshed.UserID = authData.UserID
	}

	if err := s.store.SaveAuth(ctx, refreshed); err != nil {
		// Токен получен, сохраним при следующем обновлении
		s.logger.WarnContext(ctx, "Failed to save refreshed tokens", slog.Any("error", err))
	}

	return refreshed.AccessToken, nil
}

func (s *service) authFromTokens(username string, resp *pkgapi.TokenResponse) *storage.AuthData {
	now := s.now()
	authData := &storage.AuthData{
		Username:        username,
		UserID:          resp.UserID,
		AccessToken:     resp.AccessToken,
		RefreshToken:    resp.RefreshToken,
		AccessExpiresAt: now.Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
	}
	if resp.RefreshExpiresIn > 0 {
		authData.ExpiresAt = now.Add(time.Duration(resp.RefreshExpiresIn) * time.Second).Unix()
	}
	return authData
}
