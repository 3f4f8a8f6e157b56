package api

import (
	"time"

	"github.com/iudanet/movieshelf/internal/models"
)

// MovieListResponse ответ на запрос списка фильмов
type MovieListResponse struct {
	Movies []*models.Movie `json:"movies"`
	Total  int             `json:"total"`  // количество записей после фильтрации, до пагинации
	Limit  int             `json:"limit"`  // размер страницы
	Offset int             `json:"offset"`
}

// MovieQuery параметры выборки списка фильмов
type MovieQuery struct {
	Title    string // подстрока названия, без учета регистра
	Director string // подстрока имени режиссёра, без учета регистра
	Sort     string // title | rating
	Order    string // asc | desc
	Limit    int
	Offset   int
}

// Допустимые значения сортировки
const (
	SortTitle  = "title"
	SortRating = "rating"
	OrderAsc   = "asc"
	OrderDesc  = "desc"
)

// RatingRequest оценка фильма пользователем
type RatingRequest struct {
	Score float64 `json:"score" validate:"gte=0,lte=10"`
}

// RatingResponse оценка пользователя и средняя оценка фильма
type RatingResponse struct {
	UpdatedAt time.Time `json:"updated_at"`
	MovieID   int64     `json:"movie_id"`
	Score     float64   `json:"score"`
	Average   float64   `json:"average"`
	Votes     int       `json:"votes"`
}

// HealthResponse ответ probe сервиса
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
