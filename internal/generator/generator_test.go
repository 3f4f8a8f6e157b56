package generator

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/movieshelf/internal/models"
	"github.com/iudanet/movieshelf/internal/server/storage/sqlite"
	"github.com/iudanet/movieshelf/internal/validation"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerator_Fabricate(t *testing.T) {
	g := New(nil, setupTestLogger(), 42)

	for i := 0; i < 200; i++ {
		movie := g.Fabricate()

		require.NoError(t, validation.ValidateMovie(movie), "movie %d: %+v", i, movie)
		assert.Zero(t, movie.ID)
		assert.False(t, movie.IsOffline)

		released, err := time.Parse(models.ReleaseDateLayout, movie.ReleaseDate)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, released.Year(), MinYear)
		assert.LessOrEqual(t, released.Year(), MaxYear)
		assert.LessOrEqual(t, released.Day(), 28)

		assert.GreaterOrEqual(t, movie.Rating, 0.0)
		assert.LessOrEqual(t, movie.Rating, 10.0)
		// шаг рейтинга 0.1
		assert.InDelta(t, movie.Rating*10, float64(int(movie.Rating*10+0.5)), 1e-9)

		assert.Contains(t, movie.Poster, "/200/300")
	}
}

func TestGenerator_SeedIsDeterministic(t *testing.T) {
	a := New(nil, setupTestLogger(), 7).Fabricate()
	b := New(nil, setupTestLogger(), 7).Fabricate()
	assert.Equal(t, a, b)
}

func TestGenerator_Next(t *testing.T) {
	ctx := context.Background()
	s, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	defer s.Close()

	g := New(s, setupTestLogger(), 1)

	movie, err := g.Next(ctx)
	require.NoError(t, err)
	assert.Positive(t, movie.ID)

	stored, err := s.GetMovie(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, movie.Title, stored.Title)
}

func TestGenerator_Next_StorageError(t *testing.T) {
	ctx := context.Background()
	s, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = New(s, setupTestLogger(), 1).Next(ctx)
	assert.Error(t, err)
}
