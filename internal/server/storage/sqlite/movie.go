package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/movieshelf/internal/models"
	"github.com/iudanet/movieshelf/internal/server/storage"
)

const movieColumns = `
	m.id, m.title, d.name, m.release_date, m.rating, m.description, m.poster, m.trailer
`

// CreateMovie inserts a movie and assigns its ID
func (s *Storage) CreateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	directorID, err := findOrCreateDirector(ctx, tx, movie.Director)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO movies (title, director_id, release_date, rating, description, poster, trailer, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		movie.Title,
		directorID,
		movie.ReleaseDate,
		movie.Rating,
		movie.Description,
		movie.Poster,
		movie.Trailer,
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert movie: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get movie id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	created := movie.Clone()
	created.ID = id
	created.IsOffline = false
	return created, nil
}

// GetMovie retrieves movie by ID
func (s *Storage) GetMovie(ctx context.Context, id int64) (*models.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies m
		JOIN directors d ON d.id = m.director_id
		WHERE m.id = ?
	`

	movie, err := scanMovie(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	return movie, nil
}

// ListMovies returns a page of movies and the total count after filtering
func (s *Storage) ListMovies(ctx context.Context, filter storage.MovieFilter) ([]*models.Movie, int, error) {
	var (
		where []string
		args  []any
	)

	if filter.Title != "" {
		where = append(where, `m.title LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(filter.Title))
	}
	if filter.Director != "" {
		where = append(where, `d.name LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(filter.Director))
	}

	from := `
		FROM movies m
		JOIN directors d ON d.id = m.director_id
	`
	if len(where) > 0 {
		from += " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) "+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count movies: %w", err)
	}

	query := "SELECT " + movieColumns + from + " ORDER BY " + orderClause(filter)
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	} else if filter.Offset > 0 {
		query += " LIMIT -1 OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query movies: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	movies := make([]*models.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return movies, total, nil
}

// UpdateMovie replaces all fields of the movie with ID movie.ID
func (s *Storage) UpdateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	directorID, err := findOrCreateDirector(ctx, tx, movie.Director)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE movies
		SET title = ?, director_id = ?, release_date = ?, rating = ?,
			description = ?, poster = ?, trailer = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := tx.ExecContext(ctx, query,
		movie.Title,
		directorID,
		movie.ReleaseDate,
		movie.Rating,
		movie.Description,
		movie.Poster,
		movie.Trailer,
		time.Now().UTC(),
		movie.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return nil, storage.ErrMovieNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	updated := movie.Clone()
	updated.IsOffline = false
	return updated, nil
}

// DeleteMovie deletes movie by ID, ratings are removed by cascade
func (s *Storage) DeleteMovie(ctx context.Context, id int64) error {
	query := `DELETE FROM movies WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrMovieNotFound
	}

	return nil
}

// ListDirectors возвращает всех режиссёров по алфавиту
func (s *Storage) ListDirectors(ctx context.Context) ([]*models.Director, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM directors ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("failed to query directors: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var directors []*models.Director
	for rows.Next() {
		d := &models.Director{}
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan director: %w", err)
		}
		directors = append(directors, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return directors, nil
}

// findOrCreateDirector возвращает ID режиссёра, создавая запись при необходимости.
// Имена сравниваются без учёта регистра.
func findOrCreateDirector(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	name = strings.TrimSpace(name)

	if _, err := tx.ExecContext(ctx, `INSERT INTO directors (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, name); err != nil {
		return 0, fmt.Errorf("failed to insert director: %w", err)
	}

	var id int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM directors WHERE name = ?`, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to get director: %w", err)
	}

	return id, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (*models.Movie, error) {
	movie := &models.Movie{}
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Director,
		&movie.ReleaseDate,
		&movie.Rating,
		&movie.Description,
		&movie.Poster,
		&movie.Trailer,
	)
	if err != nil {
		return nil, err
	}
	return movie, nil
}

// orderClause строит ORDER BY из белого списка полей
func orderClause(filter storage.MovieFilter) string {
	dir := "ASC"
	if filter.Desc {
		dir = "DESC"
	}

	switch filter.SortBy {
	case storage.SortByTitle:
		return "m.title COLLATE NOCASE " + dir + ", m.id ASC"
	case storage.SortByRating:
		return "m.rating " + dir + ", m.id ASC"
	default:
		return "m.id " + dir
	}
}

// likePattern экранирует спецсимволы LIKE и оборачивает подстроку в %
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
