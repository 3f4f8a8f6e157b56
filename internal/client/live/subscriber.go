// Package live подписывает клиент на канал живых обновлений сервера.
// Созданные генератором фильмы записываются в локальную реплику как
// подтверждённые сервером.
package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/movieshelf/internal/client/api"
	"github.com/iudanet/movieshelf/internal/models"
	pkgapi "github.com/iudanet/movieshelf/pkg/api"
)

// WSPath путь websocket канала на сервере
const WSPath = "/api/v1/ws"

// ErrNotConnected команда отправлена без установленного соединения
var ErrNotConnected = errors.New("live channel is not connected")

// Sink принимает подтверждённые сервером записи
type Sink interface {
	Put(ctx context.Context, movie *models.Movie)
}

// Subscriber клиент канала живых обновлений
type Subscriber struct {
	dialer   *websocket.Dialer
	tokens   api.TokenSource
	sink     Sink
	logger   *slog.Logger
	onMovie  func(*models.Movie)
	onState  func(state string)
	conn     *websocket.Conn
	wsURL    string
	minDelay time.Duration
	maxDelay time.Duration
	connMu   sync.Mutex
	writeMu  sync.Mutex
}

// Option настраивает Subscriber
type Option func(*Subscriber)

// WithDialer заменяет websocket dialer
func WithDialer(d *websocket.Dialer) Option {
	return func(s *Subscriber) {
		s.dialer = d
	}
}

// WithReconnectDelay задаёт границы экспоненциальной задержки переподключения
func WithReconnectDelay(minDelay, maxDelay time.Duration) Option {
	return func(s *Subscriber) {
		s.minDelay = minDelay
		s.maxDelay = maxDelay
	}
}

// OnMovie регистрирует обработчик созданных фильмов. Вызывается после записи в реплику.
func OnMovie(fn func(*models.Movie)) Option {
	return func(s *Subscriber) {
		s.onMovie = fn
	}
}

// OnState регистрирует обработчик смены состояния генератора
func OnState(fn func(state string)) Option {
	return func(s *Subscriber) {
		s.onState = fn
	}
}

// NewSubscriber создает подписчика для сервера serverURL
func NewSubscriber(serverURL string, tokens api.TokenSource, sink Sink, logger *slog.Logger, opts ...Option) (*Subscriber, error) {
	wsURL, err := buildWSURL(serverURL)
	if err != nil {
		return nil, err
	}

	s := &Subscriber{
		dialer:   &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		tokens:   tokens,
		sink:     sink,
		logger:   logger,
		wsURL:    wsURL,
		minDelay: time.Second,
		maxDelay: 32 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// buildWSURL переводит http(s) адрес сервера в ws(s) адрес канала
func buildWSURL(serverURL string) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", fmt.Errorf("parse server url: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported server url scheme %q", u.Scheme)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + WSPath
	return u.String(), nil
}

// Connect устанавливает соединение, если его ещё нет
func (s *Subscriber) Connect(ctx context.Context) error {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if s.conn != nil {
		return nil
	}

	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("live channel requires login: %w", err)
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	conn, resp, err := s.dialer.DialContext(ctx, s.wsURL, header)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			return fmt.Errorf("websocket dial failed: %w", &api.StatusError{StatusCode: resp.StatusCode, Message: err.Error()})
		}
		return fmt.Errorf("websocket dial: %w: %w", api.ErrConnectivity, err)
	}

	s.conn = conn
	s.logger.InfoContext(ctx, "Live channel connected", slog.String("url", s.wsURL))

	return nil
}

// Close закрывает соединение
func (s *Subscriber) Close() error {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if s.conn == nil {
		return nil
	}

	s.writeMu.Lock()
	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	s.writeMu.Unlock()

	err := s.conn.Close()
	s.conn = nil
	return err
}

// StartGeneration просит сервер запустить генератор
func (s *Subscriber) StartGeneration(ctx context.Context) error {
	return s.send(ctx, pkgapi.TypeStartGeneration)
}

// StopGeneration просит сервер остановить генератор
func (s *Subscriber) StopGeneration(ctx context.Context) error {
	return s.send(ctx, pkgapi.TypeStopGeneration)
}

func (s *Subscriber) send(ctx context.Context, msgType pkgapi.MessageType) error {
	msg, err := pkgapi.NewMessage(msgType, nil)
	if err != nil {
		return err
	}

	s.connMu.Lock()
	conn := s.conn
	s.connMu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	} else {
		_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	}
	if err := conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("send %s: %w", msgType, err)
	}

	s.logger.DebugContext(ctx, "Control message sent", slog.String("type", string(msgType)))
	return nil
}

// Run читает события до отмены ctx. При обрыве соединения переподключается
// с экспоненциальной задержкой. onConnect вызывается после каждого
// успешного подключения, включая первое.
func (s *Subscriber) Run(ctx context.Context, onConnect func(ctx context.Context)) error {
	// ReadMessage не знает о ctx, поэтому соединение закрывается при отмене
	stop := context.AfterFunc(ctx, func() { _ = s.Close() })
	defer stop()

	delay := s.minDelay
	for {
		if ctx.Err() != nil {
			return nil
		}

		if err := s.Connect(ctx); err != nil {
			if errors.Is(err, api.ErrUnauthorized) {
				return err
			}
			s.logger.WarnContext(ctx, "Live channel unavailable, retrying",
				slog.Duration("delay", delay),
				slog.Any("error", err))

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(delay):
			}
			delay = min(delay*2, s.maxDelay)
			continue
		}

		delay = s.minDelay
		if onConnect != nil {
			onConnect(ctx)
		}

		if err := s.readLoop(ctx); err != nil && ctx.Err() == nil {
			s.logger.WarnContext(ctx, "Live channel lost", slog.Any("error", err))
		}
		s.dropConn()
	}
}

func (s *Subscriber) readLoop(ctx context.Context) error {
	s.connMu.Lock()
	conn := s.conn
	s.connMu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}
		s.handle(ctx, data)
	}
}

func (s *Subscriber) dropConn() {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
}

// handle разбирает одно сообщение сервера
func (s *Subscriber) handle(ctx context.Context, data []byte) {
	var msg pkgapi.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		s.logger.WarnContext(ctx, "Malformed live message", slog.Any("error", err))
		return
	}

	switch msg.Type {
	case pkgapi.TypeMovieCreated:
		var payload pkgapi.MovieCreatedPayload
		if err := msg.UnmarshalPayload(&payload); err != nil || payload.Movie == nil {
			s.logger.WarnContext(ctx, "Malformed movie_created payload", slog.Any("error", err))
			return
		}
		movie := payload.Movie
		movie.IsOffline = false
		s.sink.Put(ctx, movie)

		s.logger.DebugContext(ctx, "Movie received", slog.Int64("movie_id", movie.ID))
		if s.onMovie != nil {
			s.onMovie(movie.Clone())
		}

	case pkgapi.TypeGenerationState:
		var payload pkgapi.GenerationStatePayload
		if err := msg.UnmarshalPayload(&payload); err != nil {
			s.logger.WarnContext(ctx, "Malformed generation_state payload", slog.Any("error", err))
			return
		}
		if s.onState != nil {
			s.onState(payload.State)
		}

	case pkgapi.TypeError:
		var payload pkgapi.ErrorPayload
		_ = msg.UnmarshalPayload(&payload)
		s.logger.WarnContext(ctx, "Server rejected live command", slog.String("message", payload.Message))

	default:
		s.logger.DebugContext(ctx, "Unknown live message type", slog.String("type", string(msg.Type)))
	}
}
