// Package generator фабрикует случайные фильмы для канала живых обновлений.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/iudanet/movieshelf/internal/models"
	"github.com/iudanet/movieshelf/internal/server/storage"
)

// Диапазоны случайных значений
const (
	MinYear      = 1950
	MaxYear      = 2024
	PosterWidth  = 200
	PosterHeight = 300
)

// Generator создает случайные фильмы и сохраняет их в каталог
type Generator struct {
	faker  *gofakeit.Faker
	movies storage.MovieStorage
	logger *slog.Logger
	title  cases.Caser
	mu     sync.Mutex
}

// New создает генератор. seed 0 означает случайный seed.
func New(movies storage.MovieStorage, logger *slog.Logger, seed int64) *Generator {
	return &Generator{
		faker:  gofakeit.New(seed),
		movies: movies,
		logger: logger,
		title:  cases.Title(language.English),
	}
}

// Fabricate создает случайный фильм без сохранения.
// Дата выхода YYYY-MM-DD с днем 1..28, рейтинг 0..10 с шагом 0.1.
func (g *Generator) Fabricate() *models.Movie {
	g.mu.Lock()
	defer g.mu.Unlock()

	f := g.faker
	year := f.IntRange(MinYear, MaxYear)
	month := f.IntRange(1, 12)
	day := f.IntRange(1, 28)

	return &models.Movie{
		Title:       g.title.String(f.Adjective() + " " + f.Noun()),
		Director:    f.Name(),
		ReleaseDate: fmt.Sprintf("%04d-%02d-%02d", year, month, day),
		Rating:      float64(f.IntRange(0, 100)) / 10,
		Description: f.Paragraph(1, 3, 12, " "),
		Poster:      fmt.Sprintf("https://picsum.photos/seed/%d/%d/%d", f.Number(1, 1_000_000), PosterWidth, PosterHeight),
	}
}

// Next создает случайный фильм и сохраняет его, сервер назначает ID
func (g *Generator) Next(ctx context.Context) (*models.Movie, error) {
	movie, err := g.movies.CreateMovie(ctx, g.Fabricate())
	if err != nil {
		return nil, fmt.Errorf("failed to store generated movie: %w", err)
	}

	g.logger.DebugContext(ctx, "movie generated",
		slog.Int64("movie_id", movie.ID),
		slog.String("title", movie.Title))

	return movie, nil
}
