package models

import "time"

// User представляет пользователя в системе
type User struct {
	ID           string    `json:"id"`         // UUID пользователя
	Username     string    `json:"username"`   // уникальный username
	PasswordHash string    `json:"-"`          // bcrypt хеш пароля
	IsAdmin      bool      `json:"is_admin"`   // доступ к административным маршрутам
	CreatedAt    time.Time `json:"created_at"` // время создания
	UpdatedAt    time.Time `json:"updated_at"` // время последнего обновления
}

// RefreshToken представляет refresh token пользователя
type RefreshToken struct {
	UserID    string    `json:"user_id"`    // ID пользователя
	TokenHash string    `json:"token_hash"` // sha256 хеш токена
	ExpiresAt time.Time `json:"expires_at"` // время истечения
	CreatedAt time.Time `json:"created_at"` // время создания
}

// Rating оценка фильма пользователем
type Rating struct {
	UpdatedAt time.Time `json:"updated_at"`
	UserID    string    `json:"user_id"`
	MovieID   int64     `json:"movie_id"`
	Score     float64   `json:"score"`
}

// Director режиссёр, нормализованный в отдельную таблицу
type Director struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}
