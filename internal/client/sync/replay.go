package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/movieshelf/internal/client/api"
	"github.com/iudanet/movieshelf/internal/models"
)

// ReplayResult итог воспроизведения очереди
type ReplayResult struct {
	Synced    int  // операций применено на сервере
	Dropped   int  // операций отброшено без повторов
	Remaining int  // операций осталось в очереди
	Drained   bool // очередь пуста
}

// ReplayPending воспроизводит очередь и сообщает, опустела ли она
func (c *Coordinator) ReplayPending(ctx context.Context) (bool, error) {
	res, err := c.Replay(ctx)
	if res == nil {
		return false, err
	}
	return res.Drained, err
}

// Replay воспроизводит очередь в порядке добавления.
//
// Успешные операции удаляются из очереди. При ошибке связи операция остаётся,
// а следующие операции над той же записью ждут её. Операции, отклонённые
// сервером как невалидные или ссылающиеся на несуществующую запись, удаляются
// без повторов. Ошибка авторизации прерывает воспроизведение.
func (c *Coordinator) Replay(ctx context.Context) (*ReplayResult, error) {
	c.replayMu.Lock()
	defer c.replayMu.Unlock()

	res := &ReplayResult{}
	res.Dropped = c.collapseDeleted(ctx)

	ops := c.replica.ListPending(ctx)
	if len(ops) > 0 {
		c.logger.InfoContext(ctx, "Replaying pending operations", slog.Int("count", len(ops)))
	}

	blockedOps := make(map[string]bool)
	blockedTargets := make(map[int64]bool)
	dropped := make(map[string]bool)

	for _, op := range ops {
		if dropped[op.ID] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return c.finish(ctx, res), err
		}

		if op.DependsOn != "" {
			dep := depWaiting
			if !blockedOps[op.DependsOn] {
				dep = c.resolveDependency(ctx, op)
			}
			switch dep {
			case depWaiting:
				blockedOps[op.ID] = true
				blockedTargets[op.Target()] = true
				continue
			case depDangling:
				// CREATE, от которого зависит операция, пропал из очереди
				// без подтверждения: применять операцию не к чему
				c.logger.WarnContext(ctx, "Dropping operation with unresolved dependency",
					slog.String("op_id", op.ID),
					slog.String("depends_on", op.DependsOn))
				c.replica.Dequeue(ctx, op.ID)
				res.Dropped++
				continue
			}
		}

		if blockedTargets[op.Target()] {
			blockedOps[op.ID] = true
			continue
		}

		err := c.apply(ctx, op, ops)
		switch {
		case err == nil:
			res.Synced++

		case api.IsConnectivity(err):
			c.logger.WarnContext(ctx, "Operation kept in queue",
				slog.String("op_id", op.ID),
				slog.String("kind", string(op.Kind)),
				slog.Any("error", err))
			blockedOps[op.ID] = true
			blockedTargets[op.Target()] = true

		case errors.Is(err, api.ErrUnauthorized):
			return c.finish(ctx, res), fmt.Errorf("replay %s: %w", op.Kind, err)

		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return c.finish(ctx, res), err

		default:
			for _, id := range c.drop(ctx, op, err) {
				dropped[id] = true
				res.Dropped++
			}
		}
	}

	return c.finish(ctx, res), nil
}

func (c *Coordinator) finish(ctx context.Context, res *ReplayResult) *ReplayResult {
	res.Remaining = len(c.replica.ListPending(ctx))
	res.Drained = res.Remaining == 0

	c.logger.InfoContext(ctx, "Replay finished",
		slog.Int("synced", res.Synced),
		slog.Int("dropped", res.Dropped),
		slog.Int("remaining", res.Remaining))

	return res
}

type depState int

const (
	depResolved depState = iota // CREATE подтверждён, операция переписана на ID сервера
	depWaiting                  // CREATE ещё в очереди
	depDangling                 // CREATE пропал без подтверждения
)

// resolveDependency проверяет CREATE, от которого зависит операция
func (c *Coordinator) resolveDependency(ctx context.Context, op *models.PendingOperation) depState {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()

	for _, cur := range c.replica.ListPending(ctx) {
		if cur.ID == op.DependsOn {
			return depWaiting
		}
		// очередь могла переписаться после снимка
		if cur.ID == op.ID && cur.DependsOn == "" {
			retarget(op, cur.MovieID)
			return depResolved
		}
	}

	remoteID, ok := c.resolved[op.MovieID]
	if !ok {
		return depDangling
	}
	retarget(op, remoteID)
	c.replica.ReplacePending(ctx, op)
	return depResolved
}

// collapseDeleted отбрасывает записи, созданные и удалённые без связи.
// Сервер их никогда не видел, поэтому ни одного запроса не нужно.
func (c *Coordinator) collapseDeleted(ctx context.Context) int {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()

	ops := c.replica.ListPending(ctx)

	deleted := make(map[string]bool)
	for _, op := range ops {
		if op.Kind == models.OpDelete && op.DependsOn != "" {
			deleted[op.DependsOn] = true
		}
	}

	count := 0
	for _, create := range ops {
		if create.Kind != models.OpCreate || !deleted[create.ID] {
			continue
		}

		for _, op := range ops {
			if op.ID == create.ID || op.DependsOn == create.ID {
				c.replica.Dequeue(ctx, op.ID)
				count++
			}
		}
		c.replica.Remove(ctx, create.TempID)

		c.logger.DebugContext(ctx, "Dropped offline movie deleted before sync",
			slog.Int64("temp_id", create.TempID))
	}

	return count
}

// apply отправляет операцию на сервер и при успехе убирает её из очереди.
// snapshot это очередь текущего прохода, зависимые операции в ней
// переписываются вместе с очередью реплики.
func (c *Coordinator) apply(ctx context.Context, op *models.PendingOperation, snapshot []*models.PendingOperation) error {
	switch op.Kind {
	case models.OpCreate:
		created, err := c.remote.CreateMovie(ctx, op.Movie)
		if err != nil {
			return err
		}
		c.confirmCreate(ctx, op, created, snapshot)
		return nil

	case models.OpUpdate:
		updated, err := c.remote.UpdateMovie(ctx, op.MovieID, op.Movie)
		if err != nil {
			return err
		}
		c.replica.Dequeue(ctx, op.ID)
		if !c.hasPending(ctx, op.MovieID) {
			updated.IsOffline = false
			c.replica.Put(ctx, updated)
		}
		return nil

	case models.OpDelete:
		err := c.remote.DeleteMovie(ctx, op.MovieID)
		if err != nil && !errors.Is(err, api.ErrNotFound) {
			return err
		}
		c.replica.Dequeue(ctx, op.ID)
		c.replica.Remove(ctx, op.MovieID)
		return nil

	default:
		return fmt.Errorf("%w: unknown operation %q", api.ErrValidation, op.Kind)
	}
}

// confirmCreate заменяет временную запись подтверждённой и переписывает
// зависимые операции на ID сервера
func (c *Coordinator) confirmCreate(
	ctx context.Context,
	op *models.PendingOperation,
	created *models.Movie,
	snapshot []*models.PendingOperation,
) {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()

	c.resolved[op.TempID] = created.ID

	hasUpdates, hasDelete := false, false
	for _, dep := range c.replica.ListPending(ctx) {
		if dep.DependsOn != op.ID {
			continue
		}
		switch dep.Kind {
		case models.OpUpdate:
			hasUpdates = true
		case models.OpDelete:
			hasDelete = true
		}
		retarget(dep, created.ID)
		c.replica.ReplacePending(ctx, dep)
	}
	for _, dep := range snapshot {
		if dep.DependsOn == op.ID {
			retarget(dep, created.ID)
		}
	}

	local, ok := c.replica.Get(ctx, op.TempID)
	c.replica.Remove(ctx, op.TempID)

	switch {
	case hasDelete || !ok:
		// запись удалили, пока CREATE был в пути: удаление уже в очереди
	case hasUpdates:
		// локальная версия новее: ждёт своего UPDATE
		local.ID = created.ID
		local.IsOffline = true
		c.replica.Put(ctx, local)
	default:
		created.IsOffline = false
		c.replica.Put(ctx, created)
	}

	c.replica.Dequeue(ctx, op.ID)

	c.logger.InfoContext(ctx, "Offline movie confirmed by server",
		slog.Int64("temp_id", op.TempID),
		slog.Int64("movie_id", created.ID))
}

func retarget(op *models.PendingOperation, remoteID int64) {
	op.MovieID = remoteID
	op.DependsOn = ""
	if op.Movie != nil {
		op.Movie.ID = remoteID
	}
}

// drop удаляет из очереди операцию, отклонённую сервером, и возвращает
// ID всех отброшенных операций
func (c *Coordinator) drop(ctx context.Context, op *models.PendingOperation, cause error) []string {
	c.logger.WarnContext(ctx, "Dropping operation rejected by server",
		slog.String("op_id", op.ID),
		slog.String("kind", string(op.Kind)),
		slog.Int64("target", op.Target()),
		slog.Any("error", cause))

	switch op.Kind {
	case models.OpCreate:
		c.stateMu.Lock()
		defer c.stateMu.Unlock()

		ids := []string{op.ID}
		for _, dep := range c.replica.ListPending(ctx) {
			if dep.DependsOn == op.ID {
				c.replica.Dequeue(ctx, dep.ID)
				ids = append(ids, dep.ID)
			}
		}
		c.replica.Dequeue(ctx, op.ID)
		c.replica.Remove(ctx, op.TempID)
		return ids

	case models.OpUpdate:
		c.replica.Dequeue(ctx, op.ID)
		if errors.Is(cause, api.ErrNotFound) {
			c.replica.Remove(ctx, op.MovieID)
		}
		return []string{op.ID}

	default:
		c.replica.Dequeue(ctx, op.ID)
		return []string{op.ID}
	}
}
