package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSyncTimestamp saves the unix time of the last successful refresh from server
	SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error

	// GetLastSyncTimestamp retrieves the unix time of the last successful refresh
	// Returns 0 if no sync has been performed yet
	GetLastSyncTimestamp(ctx context.Context) (int64, error)

	// SaveTempIDCounter saves the last issued temporary ID counter
	SaveTempIDCounter(ctx context.Context, counter int64) error

	// GetTempIDCounter retrieves the last issued temporary ID counter
	// Returns 0 if no temporary IDs have been issued yet
	GetTempIDCounter(ctx context.Context) (int64, error)
}
