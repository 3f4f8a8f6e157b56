package relay

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/google/uuid"

	"github.com/iudanet/movieshelf/internal/models"
	"github.com/iudanet/movieshelf/internal/server/metrics"
	"github.com/iudanet/movieshelf/pkg/api"
)

// MessageHandler обрабатывает команды клиентов
type MessageHandler interface {
	HandleMessage(c *Client, msg *api.Message)
}

type hubConfig struct {
	writeWait      time.Duration
	pongWait       time.Duration
	pingPeriod     time.Duration
	maxMessageSize int64
	sendBuffer     int
}

// HubOption настраивает Hub
type HubOption func(*hubConfig)

// WithPingPeriod задает интервал ping, pongWait выставляется с запасом
func WithPingPeriod(d time.Duration) HubOption {
	return func(c *hubConfig) {
		c.pingPeriod = d
		c.pongWait = d * 10 / 9
	}
}

// WithSendBuffer задает размер очереди отправки клиента
func WithSendBuffer(n int) HubOption {
	return func(c *hubConfig) {
		c.sendBuffer = n
	}
}

// Hub хранит подключенных подписчиков и рассылает им события
type Hub struct {
	logger  *slog.Logger
	handler MessageHandler
	clients map[string]*Client
	cfg     hubConfig
	mu      sync.RWMutex
}

// NewHub создает пустой Hub
func NewHub(logger *slog.Logger, opts ...HubOption) *Hub {
	cfg := hubConfig{
		writeWait:      10 * time.Second,
		pongWait:       60 * time.Second,
		pingPeriod:     54 * time.Second,
		maxMessageSize: 4096,
		sendBuffer:     64,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Hub{
		logger:  logger,
		clients: make(map[string]*Client),
		cfg:     cfg,
	}
}

// SetMessageHandler задает обработчик команд клиентов
func (h *Hub) SetMessageHandler(handler MessageHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handler = handler
}

// Attach регистрирует websocket соединение и запускает его read/write циклы
func (h *Hub) Attach(conn *websocket.Conn, userID string) *Client {
	c := newClient(uuid.New().String(), userID, conn, h)

	h.mu.Lock()
	h.clients[c.ID] = c
	count := len(h.clients)
	h.mu.Unlock()

	metrics.RelaySubscribers.Set(float64(count))
	h.logger.Info("relay client connected",
		slog.String("client_id", c.ID),
		slog.String("user_id", userID))

	go c.writePump()
	go c.readPump()

	return c
}

// Count количество подключенных клиентов
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// PublishMovie рассылает событие movie_created
func (h *Hub) PublishMovie(movie *models.Movie) {
	msg, err := api.NewMessage(api.TypeMovieCreated, api.MovieCreatedPayload{Movie: movie})
	if err != nil {
		h.logger.Error("failed to build movie_created message", slog.Any("error", err))
		return
	}
	h.Broadcast(msg)
}

// PublishState рассылает событие generation_state
func (h *Hub) PublishState(state State) {
	msg, err := api.NewMessage(api.TypeGenerationState, api.GenerationStatePayload{State: state.String()})
	if err != nil {
		h.logger.Error("failed to build generation_state message", slog.Any("error", err))
		return
	}
	h.Broadcast(msg)
}

// Broadcast отправляет сообщение всем клиентам.
// Клиенты с переполненным буфером отключаются.
func (h *Hub) Broadcast(msg *api.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to marshal relay message", slog.Any("error", err))
		return
	}

	var slow []*Client

	h.mu.RLock()
	for _, c := range h.clients {
		if !c.enqueue(data) {
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	metrics.RecordRelayEvent(string(msg.Type))

	for _, c := range slow {
		h.logger.Warn("relay client send buffer full, disconnecting", slog.String("client_id", c.ID))
		h.unregister(c)
	}
}

// Close отключает всех клиентов
func (h *Hub) Close() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[string]*Client)
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
	metrics.RelaySubscribers.Set(0)
}

func (h *Hub) handle(c *Client, msg *api.Message) {
	h.mu.RLock()
	handler := h.handler
	h.mu.RUnlock()

	if handler == nil {
		c.SendError("commands are not supported")
		return
	}
	handler.HandleMessage(c, msg)
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c.ID]
	delete(h.clients, c.ID)
	count := len(h.clients)
	h.mu.Unlock()

	c.close()

	if ok {
		metrics.RelaySubscribers.Set(float64(count))
		h.logger.Info("relay client disconnected", slog.String("client_id", c.ID))
	}
}
