// Package replica хранит локальную копию каталога и очередь отложенных операций.
// Состояние держится в памяти и дублируется в постоянное хранилище.
// Ошибки хранилища логируются и не возвращаются вызывающему: в худшем
// случае реплика продолжает работать как кэш в памяти.
package replica

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/movieshelf/internal/client/storage"
	"github.com/iudanet/movieshelf/internal/models"
)

// Store локальная реплика каталога
type Store struct {
	movies  storage.MovieStorage
	pending storage.PendingStorage
	logger  *slog.Logger
	now     func() time.Time
	byID    map[int64]*models.Movie
	queue   []*models.PendingOperation
	mu      sync.RWMutex
}

// Open создает реплику и загружает в память сохранённое состояние.
// Если хранилище недоступно, реплика стартует пустой.
func Open(ctx context.Context, movies storage.MovieStorage, pending storage.PendingStorage, logger *slog.Logger) *Store {
	s := &Store{
		movies:  movies,
		pending: pending,
		logger:  logger,
		now:     time.Now,
		byID:    make(map[int64]*models.Movie),
	}

	stored, err := movies.GetAllMovies(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load movies from local storage", slog.Any("error", err))
	}
	for _, m := range stored {
		s.byID[m.ID] = m
	}

	ops, err := pending.ListOperations(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load pending operations", slog.Any("error", err))
	}
	s.queue = ops

	logger.DebugContext(ctx, "Local replica loaded",
		slog.Int("movies", len(s.byID)),
		slog.Int("pending", len(s.queue)))

	return s
}

// GetAll возвращает копии всех записей: сначала подтверждённые по возрастанию ID,
// затем временные в порядке создания
func (s *Store) GetAll(ctx context.Context) []*models.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Movie, 0, len(s.byID))
	for _, m := range s.byID {
		result = append(result, m.Clone())
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].ID, result[j].ID
		if (a < 0) != (b < 0) {
			return a > 0
		}
		if a < 0 {
			return a > b
		}
		return a < b
	})

	return result
}

// Get возвращает копию записи по ID
func (s *Store) Get(ctx context.Context, id int64) (*models.Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return m.Clone(), true
}

// Has проверяет наличие записи с ID
func (s *Store) Has(ctx context.Context, id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byID[id]
	return ok
}

// Put вставляет или заменяет запись по ID
func (s *Store) Put(ctx context.Context, movie *models.Movie) {
	if movie == nil {
		return
	}
	m := movie.Clone()

	// последняя запись в памяти и на диске должна совпадать
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[m.ID] = m
	if err := s.movies.SaveMovie(ctx, m); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist movie",
			slog.Int64("movie_id", m.ID),
			slog.Any("error", err))
	}
}

// Remove удаляет запись по ID, отсутствие записи не ошибка
func (s *Store) Remove(ctx context.Context, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byID, id)
	if err := s.movies.DeleteMovie(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "Failed to remove movie from local storage",
			slog.Int64("movie_id", id),
			slog.Any("error", err))
	}
}

// Enqueue ставит операцию в конец очереди. ID, время создания и статус
// назначаются здесь, возвращается сохранённая копия.
func (s *Store) Enqueue(ctx context.Context, op models.PendingOperation) *models.PendingOperation {
	queued := op.Clone()
	queued.ID = uuid.New().String()
	queued.CreatedAt = s.now().UTC()
	queued.Status = models.OperationStatusPending

	// порядок в памяти и на диске должен совпадать, поэтому запись под мьютексом
	s.mu.Lock()
	if err := s.pending.AppendOperation(ctx, queued); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist pending operation",
			slog.String("op_id", queued.ID),
			slog.String("kind", string(queued.Kind)),
			slog.Any("error", err))
	}
	s.queue = append(s.queue, queued)
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "Operation queued",
		slog.String("op_id", queued.ID),
		slog.String("kind", string(queued.Kind)),
		slog.Int64("target", queued.Target()))

	return queued.Clone()
}

// ListPending возвращает копии операций в порядке добавления
func (s *Store) ListPending(ctx context.Context) []*models.PendingOperation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.PendingOperation, 0, len(s.queue))
	for _, op := range s.queue {
		result = append(result, op.Clone())
	}
	return result
}

// Dequeue удаляет операцию из очереди, отсутствие операции не ошибка
func (s *Store) Dequeue(ctx context.Context, opID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(opID)
	if idx < 0 {
		return
	}
	s.queue = append(s.queue[:idx], s.queue[idx+1:]...)
	if err := s.pending.DeleteOperation(ctx, opID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to remove pending operation",
			slog.String("op_id", opID),
			slog.Any("error", err))
	}
}

// ReplacePending перезаписывает операцию в очереди, сохраняя её позицию.
// Используется при замене временного ID на подтверждённый.
func (s *Store) ReplacePending(ctx context.Context, op *models.PendingOperation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(op.ID)
	if idx < 0 {
		return
	}
	updated := op.Clone()
	updated.Seq = s.queue[idx].Seq
	s.queue[idx] = updated
	if err := s.pending.UpdateOperation(ctx, updated.Clone()); err != nil {
		s.logger.ErrorContext(ctx, "Failed to update pending operation",
			slog.String("op_id", op.ID),
			slog.Any("error", err))
	}
}

// PendingCounts возвращает количество операций в очереди по типам
func (s *Store) PendingCounts(ctx context.Context) map[models.OperationKind]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[models.OperationKind]int{
		models.OpCreate: 0,
		models.OpUpdate: 0,
		models.OpDelete: 0,
	}
	for _, op := range s.queue {
		counts[op.Kind]++
	}
	return counts
}

// indexOf ищет операцию в очереди, вызывается под мьютексом
func (s *Store) indexOf(opID string) int {
	for i, op := range s.queue {
		if op.ID == opID {
			return i
		}
	}
	return -1
}
