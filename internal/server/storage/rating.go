package storage

import (
	"context"

	"github.com/iudanet/movieshelf/internal/models"
)

// RatingSummary агрегированная оценка фильма пользователями
type RatingSummary struct {
	Average float64
	Votes   int
}

// RatingStorage defines interface for user ratings persistence
type RatingStorage interface {
	// SetRating creates or replaces user's rating of a movie
	// Returns ErrMovieNotFound if movie doesn't exist
	SetRating(ctx context.Context, rating *models.Rating) error

	// GetUserRatings returns all ratings of a user, newest first
	GetUserRatings(ctx context.Context, userID string) ([]*models.Rating, error)

	// GetRatingSummary returns average user score of a movie
	GetRatingSummary(ctx context.Context, movieID int64) (*RatingSummary, error)
}
