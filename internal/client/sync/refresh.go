package sync

import (
	"context"
	"fmt"
	"log/slog"

	pkgapi "github.com/iudanet/movieshelf/pkg/api"
)

// refreshPageSize размер страницы при загрузке каталога
const refreshPageSize = 100

// RefreshResult итог обновления реплики с сервера
type RefreshResult struct {
	Fetched int // записей получено с сервера
	Removed int // записей удалено локально, потому что их нет на сервере
}

// SyncResult итог полной синхронизации
type SyncResult struct {
	Replay  *ReplayResult
	Refresh *RefreshResult
}

// Refresh загружает каталог с сервера в реплику.
// Записи с операциями в очереди не трогаются: их локальная версия новее.
// Подтверждённые записи, которых больше нет на сервере, удаляются.
func (c *Coordinator) Refresh(ctx context.Context) (*RefreshResult, error) {
	remote := make(map[int64]bool)
	res := &RefreshResult{}

	for offset := 0; ; {
		page, err := c.remote.ListMovies(ctx, pkgapi.MovieQuery{
			Sort:   pkgapi.SortTitle,
			Order:  pkgapi.OrderAsc,
			Limit:  refreshPageSize,
			Offset: offset,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch movies: %w", err)
		}

		pending := c.pendingTargets(ctx)
		for _, m := range page.Movies {
			remote[m.ID] = true
			res.Fetched++
			if pending[m.ID] {
				continue
			}
			m.IsOffline = false
			c.replica.Put(ctx, m)
		}

		offset += len(page.Movies)
		if len(page.Movies) == 0 || offset >= page.Total {
			break
		}
	}

	pending := c.pendingTargets(ctx)
	for _, m := range c.replica.GetAll(ctx) {
		if m.HasTemporaryID() || remote[m.ID] || pending[m.ID] {
			continue
		}
		c.replica.Remove(ctx, m.ID)
		res.Removed++
	}

	if err := c.meta.SaveLastSyncTimestamp(ctx, c.now().Unix()); err != nil {
		c.logger.WarnContext(ctx, "Failed to save last sync timestamp", slog.Any("error", err))
	}

	c.logger.InfoContext(ctx, "Replica refreshed from server",
		slog.Int("fetched", res.Fetched),
		slog.Int("removed", res.Removed))

	return res, nil
}

// Sync воспроизводит очередь, затем обновляет реплику с сервера
func (c *Coordinator) Sync(ctx context.Context) (*SyncResult, error) {
	replay, err := c.Replay(ctx)
	if err != nil {
		return &SyncResult{Replay: replay}, err
	}

	refresh, err := c.Refresh(ctx)
	if err != nil {
		return &SyncResult{Replay: replay}, err
	}

	return &SyncResult{Replay: replay, Refresh: refresh}, nil
}

// LastSync возвращает unix время последнего обновления с сервера, 0 если не было
func (c *Coordinator) LastSync(ctx context.Context) int64 {
	ts, err := c.meta.GetLastSyncTimestamp(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to read last sync timestamp", slog.Any("error", err))
		return 0
	}
	return ts
}

func (c *Coordinator) pendingTargets(ctx context.Context) map[int64]bool {
	targets := make(map[int64]bool)
	for _, op := range c.replica.ListPending(ctx) {
		targets[op.Target()] = true
	}
	return targets
}
