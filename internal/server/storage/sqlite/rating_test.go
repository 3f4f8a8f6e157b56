package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/movieshelf/internal/models"
	"github.com/iudanet/movieshelf/internal/server/storage"
)

func TestRatingStorage_SetRating(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user1 := createTestUser(t, ctx, s)
	user2 := createTestUser(t, ctx, s)
	movie := createTestMovie(t, ctx, s, "Alien", "Ridley Scott", 8.5)
	now := time.Now().UTC()

	require.NoError(t, s.SetRating(ctx, &models.Rating{UserID: user1, MovieID: movie.ID, Score: 6, UpdatedAt: now}))
	require.NoError(t, s.SetRating(ctx, &models.Rating{UserID: user2, MovieID: movie.ID, Score: 9, UpdatedAt: now}))

	summary, err := s.GetRatingSummary(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Votes)
	assert.InDelta(t, 7.5, summary.Average, 0.001)

	// повторная оценка заменяет предыдущую
	require.NoError(t, s.SetRating(ctx, &models.Rating{UserID: user1, MovieID: movie.ID, Score: 10, UpdatedAt: now.Add(time.Minute)}))

	summary, err = s.GetRatingSummary(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Votes)
	assert.InDelta(t, 9.5, summary.Average, 0.001)
}

func TestRatingStorage_SetRating_MovieNotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	err := s.SetRating(ctx, &models.Rating{UserID: userID, MovieID: 42, Score: 5, UpdatedAt: time.Now().UTC()})
	assert.ErrorIs(t, err, storage.ErrMovieNotFound)
}

func TestRatingStorage_GetUserRatings(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	other := createTestUser(t, ctx, s)
	alien := createTestMovie(t, ctx, s, "Alien", "Ridley Scott", 8.5)
	heat := createTestMovie(t, ctx, s, "Heat", "Michael Mann", 8.3)
	now := time.Now().UTC()

	require.NoError(t, s.SetRating(ctx, &models.Rating{UserID: userID, MovieID: alien.ID, Score: 7, UpdatedAt: now}))
	require.NoError(t, s.SetRating(ctx, &models.Rating{UserID: userID, MovieID: heat.ID, Score: 9, UpdatedAt: now.Add(time.Hour)}))
	require.NoError(t, s.SetRating(ctx, &models.Rating{UserID: other, MovieID: heat.ID, Score: 1, UpdatedAt: now}))

	ratings, err := s.GetUserRatings(ctx, userID)
	require.NoError(t, err)
	require.Len(t, ratings, 2)
	assert.Equal(t, heat.ID, ratings[0].MovieID)
	assert.InDelta(t, 9, ratings[0].Score, 0.001)
	assert.Equal(t, alien.ID, ratings[1].MovieID)

	// удаление фильма удаляет оценки
	require.NoError(t, s.DeleteMovie(ctx, heat.ID))
	ratings, err = s.GetUserRatings(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, ratings, 1)

	empty, err := s.GetUserRatings(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRatingStorage_GetRatingSummary_NoVotes(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	summary, err := s.GetRatingSummary(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, summary.Votes)
	assert.Zero(t, summary.Average)
}
