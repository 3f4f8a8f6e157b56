package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/iudanet/movieshelf/internal/client/live"
	"github.com/iudanet/movieshelf/internal/models"
)

// stopTimeout время на отправку stop_generation при выходе
const stopTimeout = 2 * time.Second

// runWatch подписывается на канал живых обновлений до отмены ctx.
// Пришедшие фильмы записываются в реплику, при восстановлении связи
// очередь воспроизводится.
func (c *Cli) runWatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	generate := fs.Bool("generate", false, "ask the server to start generating movies")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid watch arguments: %w", err)
	}

	if _, err := c.requireLogin(ctx); err != nil {
		return err
	}

	channel, err := c.newLive(
		live.OnMovie(func(m *models.Movie) {
			c.io.Printf("+ %s\n", listLine(m))
		}),
		live.OnState(func(state string) {
			c.io.Printf("generator: %s\n", state)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to create live channel: %w", err)
	}

	// соединение живет в runCtx, чтобы успеть остановить генератор после ctx
	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go c.monitor.Run(runCtx, func(ctx context.Context) {
		drained, err := c.coord.ReplayPending(ctx)
		if err != nil {
			c.logger.WarnContext(ctx, "Replay after reconnect failed", slog.Any("error", err))
			return
		}
		c.logger.DebugContext(ctx, "Replay after reconnect", slog.Bool("drained", drained))
	})

	onConnect := func(ctx context.Context) {
		if !*generate {
			return
		}
		if err := channel.StartGeneration(ctx); err != nil {
			c.logger.WarnContext(ctx, "Failed to start generation", slog.Any("error", err))
		}
	}

	c.io.Println("Watching for new movies, press Ctrl+C to stop.")

	done := make(chan error, 1)
	go func() { done <- channel.Run(runCtx, onConnect) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
	}

	if *generate {
		stopCtx, stopCancel := context.WithTimeout(runCtx, stopTimeout)
		if err := channel.StopGeneration(stopCtx); err != nil {
			c.logger.WarnContext(stopCtx, "Failed to stop generation", slog.Any("error", err))
		}
		stopCancel()
	}

	cancel()
	return <-done
}
