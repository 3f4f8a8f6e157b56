package storage

import (
	"context"

	"github.com/iudanet/movieshelf/internal/models"
)

//go:generate moq -out movies_mock.go . MovieStorage

// MovieStorage defines interface for persisting the local movie replica
type MovieStorage interface {
	// SaveMovie stores or replaces a movie by ID
	SaveMovie(ctx context.Context, movie *models.Movie) error

	// GetMovie retrieves a movie by ID
	// Returns ErrMovieNotFound if movie doesn't exist
	GetMovie(ctx context.Context, id int64) (*models.Movie, error)

	// GetAllMovies returns all movies ordered by ID
	GetAllMovies(ctx context.Context) ([]*models.Movie, error)

	// DeleteMovie removes a movie, no error if it doesn't exist
	DeleteMovie(ctx context.Context, id int64) error

	// ClearMovies removes all movies
	ClearMovies(ctx context.Context) error
}
