package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/movieshelf/internal/client/storage"
	"github.com/iudanet/movieshelf/internal/models"
)

func newOp(id string, kind models.OperationKind, target int64) *models.PendingOperation {
	op := &models.PendingOperation{
		ID:        id,
		Kind:      kind,
		Status:    models.OperationStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if kind == models.OpCreate {
		op.TempID = target
		op.Movie = &models.Movie{ID: target, Title: "t"}
	} else {
		op.MovieID = target
	}
	return op
}

func TestStorage_PendingFIFO(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	ids := []string{"op-c", "op-a", "op-b"}
	for _, id := range ids {
		require.NoError(t, store.AppendOperation(ctx, newOp(id, models.OpDelete, 1)))
	}

	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 3)

	for i, op := range ops {
		assert.Equal(t, ids[i], op.ID)
		assert.Equal(t, uint64(i+1), op.Seq)
	}
}

func TestStorage_UpdateOperation_KeepsPosition(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	create := newOp("create", models.OpCreate, -1)
	update := newOp("update", models.OpUpdate, -1)
	update.DependsOn = "create"
	require.NoError(t, store.AppendOperation(ctx, create))
	require.NoError(t, store.AppendOperation(ctx, update))
	require.NoError(t, store.AppendOperation(ctx, newOp("other", models.OpDelete, 9)))

	// разрешаем временный ID
	update.MovieID = 100
	update.DependsOn = ""
	require.NoError(t, store.UpdateOperation(ctx, update))

	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, "update", ops[1].ID)
	assert.Equal(t, int64(100), ops[1].MovieID)
	assert.Empty(t, ops[1].DependsOn)

	err = store.UpdateOperation(ctx, newOp("missing", models.OpDelete, 1))
	assert.ErrorIs(t, err, storage.ErrOperationNotFound)
}

func TestStorage_DeleteOperation(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.AppendOperation(ctx, newOp("a", models.OpDelete, 1)))
	require.NoError(t, store.AppendOperation(ctx, newOp("b", models.OpDelete, 2)))

	require.NoError(t, store.DeleteOperation(ctx, "a"))
	// повторное удаление не ошибка
	require.NoError(t, store.DeleteOperation(ctx, "a"))

	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "b", ops[0].ID)

	// новая операция встаёт в хвост
	require.NoError(t, store.AppendOperation(ctx, newOp("c", models.OpDelete, 3)))
	ops, err = store.ListOperations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, []string{ops[0].ID, ops[1].ID})
}

func TestStorage_PendingSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "pending.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.AppendOperation(ctx, newOp("a", models.OpCreate, -1)))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.OpCreate, ops[0].Kind)
	assert.Equal(t, int64(-1), ops[0].Movie.ID)
	assert.Equal(t, models.OperationStatusPending, ops[0].Status)
}
