package relay

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/iudanet/movieshelf/internal/server/handlers"
	"github.com/iudanet/movieshelf/internal/server/jwt"
)

// TokenValidator проверяет access токен подписчика
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// Handler принимает websocket подключения на GET /api/v1/ws.
// Токен передается в заголовке Authorization или параметром ?token=
// (браузерный WebSocket не умеет задавать заголовки).
type Handler struct {
	hub      *Hub
	relay    *Relay
	tokens   TokenValidator
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler создает websocket handler
func NewHandler(hub *Hub, relay *Relay, tokens TokenValidator, logger *slog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		relay:  relay,
		tokens: tokens,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// доступ определяется токеном, origin проверяет CORS для REST
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP аутентифицирует и переводит соединение на websocket
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token, err := handlers.BearerToken(r)
	if err != nil {
		token = r.URL.Query().Get("token")
	}
	if token == "" {
		h.logger.Warn("relay connection without token")
		http.Error(w, "missing authorization token", http.StatusUnauthorized)
		return
	}

	claims, err := h.tokens.ValidateAccessToken(token)
	if err != nil {
		h.logger.Warn("relay token validation failed", slog.Any("error", err))
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		h.logger.Warn("failed to upgrade relay connection", slog.Any("error", err))
		return
	}

	c := h.hub.Attach(conn, claims.UserID)

	// новый подписчик сразу узнает текущее состояние
	c.SendState(h.relay.State())
}
