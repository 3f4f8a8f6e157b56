// Package relay реализует канал живых обновлений: генератор фильмов,
// управляемый командами клиентов, и рассылку событий по websocket.
package relay

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/movieshelf/internal/models"
	"github.com/iudanet/movieshelf/internal/server/metrics"
	"github.com/iudanet/movieshelf/pkg/api"
)

// State состояние генератора
type State int

const (
	// StateIdle генератор остановлен
	StateIdle State = iota
	// StateGenerating генератор создает фильмы с заданным интервалом
	StateGenerating
)

// DefaultInterval интервал генерации по умолчанию
const DefaultInterval = 5 * time.Second

func (s State) String() string {
	if s == StateGenerating {
		return "generating"
	}
	return "idle"
}

// MovieSource создает и сохраняет очередной фильм
type MovieSource interface {
	Next(ctx context.Context) (*models.Movie, error)
}

// Publisher рассылает события подписчикам
type Publisher interface {
	PublishMovie(movie *models.Movie)
	PublishState(state State)
}

// Relay управляет генерацией. Состояние принадлежит экземпляру:
// redundant Start и Stop в состоянии Idle ничего не делают.
type Relay struct {
	source    MovieSource
	publisher Publisher
	logger    *slog.Logger
	cancel    context.CancelFunc
	done      chan struct{}
	interval  time.Duration
	state     State
	mu        sync.Mutex
}

// New создает Relay в состоянии Idle
func New(source MovieSource, publisher Publisher, interval time.Duration, logger *slog.Logger) *Relay {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Relay{
		source:    source,
		publisher: publisher,
		interval:  interval,
		logger:    logger,
		state:     StateIdle,
	}
}

// State возвращает текущее состояние
func (r *Relay) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Start запускает генерацию. Первый фильм создается сразу.
// Возвращает false, если генерация уже идет.
func (r *Relay) Start() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateGenerating {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})
	r.state = StateGenerating

	go r.loop(ctx, r.done)

	r.logger.Info("movie generation started", slog.Duration("interval", r.interval))
	metrics.SetRelayGenerating(true)
	r.publisher.PublishState(StateGenerating)

	return true
}

// Stop останавливает генерацию и ждет завершения горутины.
// После возврата из Stop события movie_created больше не отправляются.
// Возвращает false, если генерация не шла.
func (r *Relay) Stop() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateIdle {
		return false
	}

	r.cancel()
	<-r.done
	r.cancel = nil
	r.done = nil
	r.state = StateIdle

	r.logger.Info("movie generation stopped")
	metrics.SetRelayGenerating(false)
	r.publisher.PublishState(StateIdle)

	return true
}

// HandleMessage обрабатывает управляющую команду клиента
func (r *Relay) HandleMessage(c *Client, msg *api.Message) {
	var changed bool

	switch msg.Type {
	case api.TypeStartGeneration:
		changed = r.Start()
	case api.TypeStopGeneration:
		changed = r.Stop()
	default:
		r.logger.Warn("unknown relay command", slog.String("type", string(msg.Type)), slog.String("client_id", c.ID))
		c.SendError("unknown command: " + string(msg.Type))
		return
	}

	// при смене состояния его получили все подписчики через PublishState
	if !changed {
		c.SendState(r.State())
	}
}

func (r *Relay) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.emit(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.emit(ctx)
		}
	}
}

func (r *Relay) emit(ctx context.Context) {
	movie, err := r.source.Next(ctx)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Error("failed to generate movie", slog.Any("error", err))
		}
		return
	}

	// Stop мог начаться, пока фильм сохранялся
	if ctx.Err() != nil {
		return
	}

	metrics.MoviesGenerated.Inc()
	r.publisher.PublishMovie(movie)
}
