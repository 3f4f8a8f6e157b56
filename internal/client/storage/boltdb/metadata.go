package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/movieshelf/internal/client/storage"
)

const (
	keyLastSyncTimestamp = "last_sync_timestamp"
	keyTempIDCounter     = "temp_id_counter"
)

// SaveLastSyncTimestamp saves the unix time of the last successful refresh
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	return s.putInt(keyLastSyncTimestamp, timestamp)
}

// GetLastSyncTimestamp retrieves the unix time of the last successful refresh
// Returns 0 if no sync has been performed yet
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	return s.getInt(keyLastSyncTimestamp)
}

// SaveTempIDCounter saves the last issued temporary ID counter
func (s *Storage) SaveTempIDCounter(ctx context.Context, counter int64) error {
	return s.putInt(keyTempIDCounter, counter)
}

// GetTempIDCounter retrieves the last issued temporary ID counter
func (s *Storage) GetTempIDCounter(ctx context.Context) (int64, error) {
	return s.getInt(keyTempIDCounter)
}

func (s *Storage) putInt(key string, value int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(key), itob(value)); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
		return nil
	})
}

func (s *Storage) getInt(key string) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var value int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		raw := bucket.Get([]byte(key))
		if raw == nil {
			// Значение ещё не сохранялось
			return nil
		}
		value = btoi(raw)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}
