package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/movieshelf/internal/server/storage"
	"github.com/iudanet/movieshelf/pkg/api"
)

// AdminHandler административные маршруты, закрыты middleware.RequireAdmin
type AdminHandler struct {
	logger *slog.Logger
	users  storage.UserDirectory
}

// NewAdminHandler создает handler административных маршрутов
func NewAdminHandler(logger *slog.Logger, users storage.UserDirectory) *AdminHandler {
	return &AdminHandler{
		logger: logger,
		users:  users,
	}
}

// ListUsers обрабатывает GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.users.ListUsers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list users", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.UserInfo, 0, len(users))
	for _, u := range users {
		resp = append(resp, api.UserInfo{
			ID:        u.ID,
			Username:  u.Username,
			IsAdmin:   u.IsAdmin,
			CreatedAt: u.CreatedAt,
		})
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
