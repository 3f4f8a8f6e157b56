package storage

import (
	"context"

	"github.com/iudanet/movieshelf/internal/models"
)

//go:generate moq -out pending_mock.go . PendingStorage

// PendingStorage defines interface for the persisted queue of pending operations
type PendingStorage interface {
	// AppendOperation adds operation to the tail of the queue and assigns op.Seq
	AppendOperation(ctx context.Context, op *models.PendingOperation) error

	// ListOperations returns all queued operations in enqueue order
	ListOperations(ctx context.Context) ([]*models.PendingOperation, error)

	// UpdateOperation rewrites a queued operation keeping its position
	// Returns ErrOperationNotFound if operation is not queued
	UpdateOperation(ctx context.Context, op *models.PendingOperation) error

	// DeleteOperation removes operation by ID, no error if it doesn't exist
	DeleteOperation(ctx context.Context, id string) error
}
