package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iudanet/movieshelf/internal/models"
	"github.com/iudanet/movieshelf/internal/server/storage"
)

// SetRating creates or replaces user's rating of a movie
func (s *Storage) SetRating(ctx context.Context, rating *models.Rating) error {
	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM movies WHERE id = ?)`, rating.MovieID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check movie: %w", err)
	}
	if !exists {
		return storage.ErrMovieNotFound
	}

	query := `
		INSERT INTO ratings (user_id, movie_id, score, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, movie_id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, rating.UserID, rating.MovieID, rating.Score, rating.UpdatedAt); err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}

	return nil
}

// GetUserRatings returns all ratings of a user, newest first
func (s *Storage) GetUserRatings(ctx context.Context, userID string) ([]*models.Rating, error) {
	query := `
		SELECT user_id, movie_id, score, updated_at
		FROM ratings
		WHERE user_id = ?
		ORDER BY updated_at DESC, movie_id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	ratings := make([]*models.Rating, 0)
	for rows.Next() {
		r := &models.Rating{}
		if err := rows.Scan(&r.UserID, &r.MovieID, &r.Score, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ratings, nil
}

// GetRatingSummary returns average user score of a movie
func (s *Storage) GetRatingSummary(ctx context.Context, movieID int64) (*storage.RatingSummary, error) {
	var (
		avg   sql.NullFloat64
		votes int
	)

	query := `SELECT AVG(score), COUNT(*) FROM ratings WHERE movie_id = ?`
	if err := s.db.QueryRowContext(ctx, query, movieID).Scan(&avg, &votes); err != nil {
		return nil, fmt.Errorf("failed to get rating summary: %w", err)
	}

	return &storage.RatingSummary{Average: avg.Float64, Votes: votes}, nil
}
