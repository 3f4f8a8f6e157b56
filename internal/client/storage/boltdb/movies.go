package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/movieshelf/internal/client/storage"
	"github.com/iudanet/movieshelf/internal/models"
)

// SaveMovie stores or replaces a movie by ID
func (s *Storage) SaveMovie(ctx context.Context, movie *models.Movie) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(movie)
	if err != nil {
		return fmt.Errorf("failed to marshal movie: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketMovies).Put(itob(movie.ID), data); err != nil {
			return fmt.Errorf("failed to save movie: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetMovie retrieves a movie by ID
func (s *Storage) GetMovie(ctx context.Context, id int64) (*models.Movie, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var movie *models.Movie

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMovies).Get(itob(id))
		if data == nil {
			return storage.ErrMovieNotFound
		}

		movie = &models.Movie{}
		if err := json.Unmarshal(data, movie); err != nil {
			return fmt.Errorf("failed to unmarshal movie: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return movie, nil
}

// GetAllMovies returns all movies ordered by ID
func (s *Storage) GetAllMovies(ctx context.Context) ([]*models.Movie, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var movies []*models.Movie

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMovies).ForEach(func(k, v []byte) error {
			var movie models.Movie
			if err := json.Unmarshal(v, &movie); err != nil {
				return fmt.Errorf("failed to unmarshal movie: %w", err)
			}
			movies = append(movies, &movie)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get all movies: %w", err)
	}

	// ключи отсортированы как uint64, временные ID оказываются в конце
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })

	return movies, nil
}

// DeleteMovie removes a movie, no error if it doesn't exist
func (s *Storage) DeleteMovie(ctx context.Context, id int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMovies).Delete(itob(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	return nil
}

// ClearMovies removes all movies
func (s *Storage) ClearMovies(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		// Удаляем bucket полностью
		if err := tx.DeleteBucket(bucketMovies); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}

		// Создаем заново пустой bucket
		if _, err := tx.CreateBucket(bucketMovies); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}
