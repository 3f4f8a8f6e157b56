package auth

import (
	"context"

	"github.com/iudanet/movieshelf/internal/client/storage"
	pkgapi "github.com/iudanet/movieshelf/pkg/api"
)

//go:generate moq -out service_mock.go . Service
//go:generate moq -out remote_mock.go . Remote

// Service defines the main interface for authentication operations.
// Service also implements api.TokenSource: AccessToken обновляет
// просроченный access token через refresh token.
type Service interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, username, password string) (*pkgapi.RegisterResponse, error)

	// Login выполняет аутентификацию и сохраняет сессию локально
	Login(ctx context.Context, username, password string) (*storage.AuthData, error)

	// Logout удаляет локальную сессию и по возможности отзывает токены на сервере
	Logout(ctx context.Context) error

	// Current возвращает сохранённую сессию
	// Returns storage.ErrAuthNotFound if user is not logged in
	Current(ctx context.Context) (*storage.AuthData, error)

	// IsAuthenticated checks if valid authentication exists
	IsAuthenticated(ctx context.Context) (bool, error)

	// AccessToken возвращает действующий access token, при необходимости обновляя его
	AccessToken(ctx context.Context) (string, error)
}

// Remote часть API клиента, нужная сервису авторизации
type Remote interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error)
	Logout(ctx context.Context, accessToken string) error
}
