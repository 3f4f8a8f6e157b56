package relay

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/movieshelf/pkg/api"
)

// Client websocket подписчик
type Client struct {
	conn      *websocket.Conn
	hub       *Hub
	send      chan []byte
	done      chan struct{}
	ID        string
	UserID    string
	closeOnce sync.Once
}

func newClient(id, userID string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		ID:     id,
		UserID: userID,
		conn:   conn,
		hub:    hub,
		send:   make(chan []byte, hub.cfg.sendBuffer),
		done:   make(chan struct{}),
	}
}

// Send ставит сообщение в очередь отправки.
// Возвращает false, если клиент отключен или его буфер переполнен.
func (c *Client) Send(msg *api.Message) bool {
	data, err := json.Marshal(msg)
	if err != nil {
		c.hub.logger.Error("failed to marshal relay message", slog.Any("error", err))
		return false
	}
	return c.enqueue(data)
}

// SendState отправляет клиенту состояние генератора
func (c *Client) SendState(state State) {
	msg, err := api.NewMessage(api.TypeGenerationState, api.GenerationStatePayload{State: state.String()})
	if err != nil {
		return
	}
	c.Send(msg)
}

// SendError отправляет клиенту описание ошибки
func (c *Client) SendError(message string) {
	msg, err := api.NewMessage(api.TypeError, api.ErrorPayload{Message: message})
	if err != nil {
		return
	}
	c.Send(msg)
}

func (c *Client) enqueue(data []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// close вызывается хабом при отключении клиента
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(c.hub.cfg.maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.hub.cfg.pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.hub.cfg.pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Warn("relay connection closed unexpectedly",
					slog.String("client_id", c.ID),
					slog.Any("error", err))
			}
			return
		}

		var msg api.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.SendError("malformed message")
			continue
		}

		c.hub.handle(c, &msg)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(c.hub.cfg.pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
			return

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
