package api

import "time"

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль в открытом виде, передаётся только по TLS
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	UserID  string `json:"user_id"` // UUID пользователя
	Message string `json:"message"` // сообщение об успешной регистрации
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль
}

// TokenResponse представляет ответ с токенами доступа
type TokenResponse struct {
	AccessToken      string `json:"access_token"`       // JWT access token
	RefreshToken     string `json:"refresh_token"`      // refresh token
	UserID           string `json:"user_id"`            // UUID пользователя
	ExpiresIn        int64  `json:"expires_in"`         // время жизни access token в секундах
	RefreshExpiresIn int64  `json:"refresh_expires_in"` // время жизни refresh token в секундах
	IsAdmin          bool   `json:"is_admin,omitempty"` // пользователь администратор
}

// UserInfo пользователь в административном списке, без хеша пароля
type UserInfo struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
