// Package sync координирует изменения каталога между локальной репликой и сервером.
// При наличии связи изменения сразу уходят на сервер, без связи копятся в очереди
// и воспроизводятся позже в порядке добавления.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/movieshelf/internal/client/api"
	"github.com/iudanet/movieshelf/internal/client/storage"
	"github.com/iudanet/movieshelf/internal/models"
	"github.com/iudanet/movieshelf/internal/validation"
	pkgapi "github.com/iudanet/movieshelf/pkg/api"
)

//go:generate moq -out remote_mock.go . Remote

// ErrDeleteDeferred удаление не дошло до сервера и поставлено в очередь.
// Локально запись уже удалена.
var ErrDeleteDeferred = errors.New("delete deferred until connectivity is restored")

// Remote операции удалённого каталога, которые нужны координатору
type Remote interface {
	CreateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	UpdateMovie(ctx context.Context, id int64, movie *models.Movie) (*models.Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
	ListMovies(ctx context.Context, q pkgapi.MovieQuery) (*pkgapi.MovieListResponse, error)
}

// Replica локальная копия каталога с очередью операций
type Replica interface {
	GetAll(ctx context.Context) []*models.Movie
	Get(ctx context.Context, id int64) (*models.Movie, bool)
	Has(ctx context.Context, id int64) bool
	Put(ctx context.Context, movie *models.Movie)
	Remove(ctx context.Context, id int64)
	Enqueue(ctx context.Context, op models.PendingOperation) *models.PendingOperation
	ListPending(ctx context.Context) []*models.PendingOperation
	Dequeue(ctx context.Context, opID string)
	ReplacePending(ctx context.Context, op *models.PendingOperation)
}

// Mutation изменение каталога, запрошенное пользователем
type Mutation struct {
	Movie *models.Movie        // данные для CREATE и UPDATE
	Kind  models.OperationKind // тип изменения
	ID    int64                // цель UPDATE и DELETE
}

// Coordinator применяет изменения и воспроизводит очередь
type Coordinator struct {
	remote   Remote
	replica  Replica
	meta     storage.MetadataStorage
	gen      *TempIDGenerator
	logger   *slog.Logger
	now      func() time.Time
	resolved map[int64]int64         // временный ID -> ID сервера
	stateMu  sync.Mutex              // офлайн путь и подтверждение CREATE
	replayMu sync.Mutex              // воспроизведение очереди строго по одному
}

// NewCoordinator создает координатор. Счётчик временных ID восстанавливается
// из метаданных и сверяется с временными записями реплики.
func NewCoordinator(
	ctx context.Context,
	remote Remote,
	replica Replica,
	meta storage.MetadataStorage,
	logger *slog.Logger,
) *Coordinator {
	last, err := meta.GetTempIDCounter(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Failed to load temporary ID counter", slog.Any("error", err))
	}

	gen := NewTempIDGenerator(last)
	for _, m := range replica.GetAll(ctx) {
		gen.Observe(m.ID)
	}
	for _, op := range replica.ListPending(ctx) {
		gen.Observe(op.TempID)
	}

	return &Coordinator{
		remote:   remote,
		replica:  replica,
		meta:     meta,
		gen:      gen,
		logger:   logger,
		now:      time.Now,
		resolved: make(map[int64]int64),
	}
}

// Mutate применяет изменение. Возвращает итоговую запись для CREATE и UPDATE,
// для DELETE возвращает nil.
//
// Ошибка связи никогда не возвращается для CREATE и UPDATE: изменение
// сохраняется локально и ставится в очередь. Для DELETE возвращается ошибка,
// оборачивающая ErrDeleteDeferred, а удаление ставится в очередь.
func (c *Coordinator) Mutate(ctx context.Context, m Mutation, state ConnectivityState) (*models.Movie, error) {
	if err := checkMutation(m); err != nil {
		return nil, err
	}

	if m.Kind != models.OpCreate && m.ID < 0 {
		c.stateMu.Lock()
		remoteID, ok := c.resolved[m.ID]
		c.stateMu.Unlock()
		if !ok {
			// сервер этого ID не видел
			return c.mutateOffline(ctx, m)
		}
		m.ID = remoteID
	}

	if !state.Online() || c.hasPending(ctx, m.ID) {
		return c.mutateOffline(ctx, m)
	}

	result, err := c.mutateOnline(ctx, m)
	if err == nil || !api.IsConnectivity(err) {
		return result, err
	}

	c.logger.WarnContext(ctx, "Remote unavailable, falling back to offline mode",
		slog.String("kind", string(m.Kind)),
		slog.Any("error", err))

	result, offErr := c.mutateOffline(ctx, m)
	if offErr != nil {
		return nil, offErr
	}
	if m.Kind == models.OpDelete {
		return nil, fmt.Errorf("%w: %w", ErrDeleteDeferred, err)
	}
	return result, nil
}

func checkMutation(m Mutation) error {
	switch m.Kind {
	case models.OpCreate, models.OpUpdate:
		if m.Movie == nil {
			return fmt.Errorf("%w: movie is required", api.ErrValidation)
		}
		if err := validation.ValidateMovie(m.Movie); err != nil {
			return fmt.Errorf("%w: %w", api.ErrValidation, err)
		}
	case models.OpDelete:
	default:
		return fmt.Errorf("%w: unknown operation %q", api.ErrValidation, m.Kind)
	}

	if m.Kind != models.OpCreate && m.ID == 0 {
		return fmt.Errorf("%w: movie id is required", api.ErrValidation)
	}
	return nil
}

// hasPending проверяет, ждут ли в очереди операции над записью.
// Такие записи меняются только через очередь, иначе нарушится порядок.
func (c *Coordinator) hasPending(ctx context.Context, id int64) bool {
	if id == 0 {
		return false
	}
	for _, op := range c.replica.ListPending(ctx) {
		if op.Target() == id {
			return true
		}
	}
	return false
}

func (c *Coordinator) mutateOnline(ctx context.Context, m Mutation) (*models.Movie, error) {
	switch m.Kind {
	case models.OpCreate:
		created, err := c.remote.CreateMovie(ctx, m.Movie)
		if err != nil {
			return nil, err
		}
		created.IsOffline = false
		c.replica.Put(ctx, created)
		return created, nil

	case models.OpUpdate:
		updated, err := c.remote.UpdateMovie(ctx, m.ID, m.Movie)
		if err != nil {
			if errors.Is(err, api.ErrNotFound) {
				c.replica.Remove(ctx, m.ID)
			}
			return nil, err
		}
		updated.IsOffline = false
		c.replica.Put(ctx, updated)
		return updated, nil

	default:
		err := c.remote.DeleteMovie(ctx, m.ID)
		if err != nil && !errors.Is(err, api.ErrNotFound) {
			return nil, err
		}
		c.replica.Remove(ctx, m.ID)
		return nil, err
	}
}

func (c *Coordinator) mutateOffline(ctx context.Context, m Mutation) (*models.Movie, error) {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()

	if m.Kind == models.OpCreate {
		return c.createOffline(ctx, m.Movie), nil
	}

	op := models.PendingOperation{
		Kind:    m.Kind,
		MovieID: m.ID,
	}

	if m.ID < 0 {
		// CREATE мог подтвердиться, пока ждали мьютекс
		if remoteID, ok := c.resolved[m.ID]; ok {
			m.ID = remoteID
			op.MovieID = remoteID
		} else {
			create := c.pendingCreate(ctx, m.ID)
			if create == nil {
				return nil, fmt.Errorf("%w: movie %d", api.ErrNotFound, m.ID)
			}
			op.DependsOn = create.ID
		}
	}

	if m.Kind == models.OpDelete {
		c.replica.Remove(ctx, m.ID)
		c.replica.Enqueue(ctx, op)
		return nil, nil
	}

	if !c.replica.Has(ctx, m.ID) {
		return nil, fmt.Errorf("%w: movie %d", api.ErrNotFound, m.ID)
	}

	movie := m.Movie.Clone()
	movie.ID = m.ID
	movie.IsOffline = true
	c.replica.Put(ctx, movie)

	op.Movie = movie.Clone()
	op.Movie.ID = op.MovieID
	c.replica.Enqueue(ctx, op)

	return movie, nil
}

// createOffline вызывается под stateMu
func (c *Coordinator) createOffline(ctx context.Context, payload *models.Movie) *models.Movie {
	tempID := c.gen.Next(func(id int64) bool {
		return c.replica.Has(ctx, id)
	})
	if err := c.meta.SaveTempIDCounter(ctx, c.gen.Last()); err != nil {
		c.logger.WarnContext(ctx, "Failed to persist temporary ID counter", slog.Any("error", err))
	}

	movie := payload.Clone()
	movie.ID = tempID
	movie.IsOffline = true
	c.replica.Put(ctx, movie)

	original := payload.Clone()
	original.ID = 0
	original.IsOffline = false
	c.replica.Enqueue(ctx, models.PendingOperation{
		Kind:   models.OpCreate,
		TempID: tempID,
		Movie:  original,
	})

	c.logger.InfoContext(ctx, "Movie created offline", slog.Int64("temp_id", tempID))

	return movie
}

// pendingCreate ищет в очереди CREATE для временного ID
func (c *Coordinator) pendingCreate(ctx context.Context, tempID int64) *models.PendingOperation {
	for _, op := range c.replica.ListPending(ctx) {
		if op.Kind == models.OpCreate && op.TempID == tempID {
			return op
		}
	}
	return nil
}
