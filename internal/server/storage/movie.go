package storage

import (
	"context"

	"github.com/iudanet/movieshelf/internal/models"
)

// Поля сортировки списка фильмов
const (
	SortByID     = "id"
	SortByTitle  = "title"
	SortByRating = "rating"
)

// MovieFilter параметры выборки каталога
type MovieFilter struct {
	Title    string // подстрока названия без учёта регистра
	Director string // подстрока имени режиссёра без учёта регистра
	SortBy   string // id | title | rating
	Limit    int    // 0 означает без ограничения
	Offset   int
	Desc     bool
}

// MovieStorage defines interface for the movie catalog persistence.
// Режиссёры хранятся в отдельной таблице и находятся или создаются по имени.
type MovieStorage interface {
	// CreateMovie inserts a movie and assigns its ID
	CreateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error)

	// GetMovie retrieves movie by ID
	// Returns ErrMovieNotFound if movie doesn't exist
	GetMovie(ctx context.Context, id int64) (*models.Movie, error)

	// ListMovies returns a page of movies and the total count after filtering
	ListMovies(ctx context.Context, filter MovieFilter) ([]*models.Movie, int, error)

	// UpdateMovie replaces all fields of the movie with ID movie.ID
	// Returns ErrMovieNotFound if movie doesn't exist
	UpdateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error)

	// DeleteMovie deletes movie by ID together with its ratings
	// Returns ErrMovieNotFound if movie doesn't exist
	DeleteMovie(ctx context.Context, id int64) error
}
