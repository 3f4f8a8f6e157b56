package middleware

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/movieshelf/internal/server/handlers"
	"github.com/iudanet/movieshelf/internal/server/jwt"
)

// AuthMiddleware создает middleware для проверки JWT access токена.
// user_id и username из токена кладутся в контекст запроса.
func AuthMiddleware(logger *slog.Logger, tokens *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := handlers.BearerToken(r)
			if err != nil {
				logger.Warn("Missing or malformed Authorization header", "path", r.URL.Path, "error", err)
				writeJSONError(w, http.StatusUnauthorized, "missing or malformed token")
				return
			}

			claims, err := tokens.ValidateAccessToken(token)
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			logger.Debug("User authenticated", "user_id", claims.UserID, "username", claims.Username, "admin", claims.IsAdmin)

			ctx := handlers.WithUser(r.Context(), claims.UserID, claims.Username)
			if claims.IsAdmin {
				ctx = handlers.WithAdmin(ctx)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пропускает только администраторов.
// Ставится после AuthMiddleware.
func RequireAdmin(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !handlers.IsAdmin(r.Context()) {
				userID, _ := handlers.GetUserID(r.Context())
				logger.Warn("Admin route denied", "path", r.URL.Path, "user_id", userID)
				writeJSONError(w, http.StatusForbidden, "admin privileges required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
