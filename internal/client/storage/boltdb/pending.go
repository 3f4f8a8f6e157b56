package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/movieshelf/internal/client/storage"
	"github.com/iudanet/movieshelf/internal/models"
)

// Очередь хранится в bucket pending с ключом Seq (NextSequence, big-endian),
// поэтому ForEach отдаёт операции в порядке добавления.
// pending_index отображает ID операции в её ключ.

// AppendOperation adds operation to the tail of the queue and assigns op.Seq
func (s *Storage) AppendOperation(ctx context.Context, op *models.PendingOperation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate sequence: %w", err)
		}
		op.Seq = seq

		data, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("failed to marshal operation: %w", err)
		}

		key := itob(int64(seq))
		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save operation: %w", err)
		}

		if err := tx.Bucket(bucketPendingIndex).Put([]byte(op.ID), key); err != nil {
			return fmt.Errorf("failed to index operation: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// ListOperations returns all queued operations in enqueue order
func (s *Storage) ListOperations(ctx context.Context) ([]*models.PendingOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ops []*models.PendingOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPending).ForEach(func(k, v []byte) error {
			var op models.PendingOperation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			ops = append(ops, &op)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	return ops, nil
}

// UpdateOperation rewrites a queued operation keeping its position
func (s *Storage) UpdateOperation(ctx context.Context, op *models.PendingOperation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		key := tx.Bucket(bucketPendingIndex).Get([]byte(op.ID))
		if key == nil {
			return storage.ErrOperationNotFound
		}

		// Seq остаётся прежним
		op.Seq = uint64(btoi(key))

		data, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("failed to marshal operation: %w", err)
		}

		if err := tx.Bucket(bucketPending).Put(key, data); err != nil {
			return fmt.Errorf("failed to update operation: %w", err)
		}
		return nil
	})
}

// DeleteOperation removes operation by ID, no error if it doesn't exist
func (s *Storage) DeleteOperation(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		index := tx.Bucket(bucketPendingIndex)

		key := index.Get([]byte(id))
		if key == nil {
			return nil
		}

		if err := tx.Bucket(bucketPending).Delete(key); err != nil {
			return err
		}
		return index.Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}

	return nil
}
