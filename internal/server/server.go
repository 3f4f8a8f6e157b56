// Package server собирает HTTP сервер каталога: маршруты REST API,
// канал живых обновлений и метрики.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iudanet/movieshelf/internal/generator"
	"github.com/iudanet/movieshelf/internal/server/config"
	"github.com/iudanet/movieshelf/internal/server/handlers"
	"github.com/iudanet/movieshelf/internal/server/jwt"
	"github.com/iudanet/movieshelf/internal/server/middleware"
	"github.com/iudanet/movieshelf/internal/server/relay"
	"github.com/iudanet/movieshelf/internal/server/storage/sqlite"
)

// tokenCleanupInterval период удаления просроченных refresh токенов
const tokenCleanupInterval = time.Hour

// Server HTTP сервер каталога
type Server struct {
	httpServer *http.Server
	store      *sqlite.Storage
	hub        *relay.Hub
	relay      *relay.Relay
	limiter    *middleware.RateLimiter
	logger     *slog.Logger
}

// New собирает сервер поверх открытого хранилища
func New(cfg *config.Config, store *sqlite.Storage, logger *slog.Logger) *Server {
	tokens := jwt.NewService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	hub := relay.NewHub(logger)
	gen := generator.New(store, logger, time.Now().UnixNano())
	rel := relay.New(gen, hub, cfg.GeneratorInterval, logger)
	hub.SetMessageHandler(rel)

	s := &Server{
		store:  store,
		hub:    hub,
		relay:  rel,
		logger: logger,
	}

	mux := http.NewServeMux()
	registerRoutes(mux, store, tokens, hub, rel, logger)

	mws := []func(http.Handler) http.Handler{
		middleware.RecoveryMiddleware(logger),
		middleware.MetricsMiddleware(),
		middleware.LoggingWithSkip(logger, []string{"/api/v1/health", "/metrics"}),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	}
	if cfg.RateLimit > 0 {
		s.limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
		mws = append(mws, middleware.RateLimitMiddleware(s.limiter, logger))
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           middleware.Chain(mux, mws...),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// Handler корневой обработчик со всеми middleware
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func registerRoutes(
	mux *http.ServeMux,
	store *sqlite.Storage,
	tokens *jwt.Service,
	hub *relay.Hub,
	rel *relay.Relay,
	logger *slog.Logger,
) {
	health := handlers.NewHealthHandler(logger, store)
	authHandler := handlers.NewAuthHandler(logger, store, store, tokens)
	movies := handlers.NewMovieHandler(logger, store, hub)
	ratings := handlers.NewRatingHandler(logger, store)
	admin := handlers.NewAdminHandler(logger, store)
	ws := relay.NewHandler(hub, rel, tokens, logger)

	protected := middleware.AuthMiddleware(logger, tokens)
	guard := func(h http.HandlerFunc) http.Handler { return protected(h) }
	adminOnly := middleware.RequireAdmin(logger)

	mux.HandleFunc("GET /api/v1/health", health.Health)

	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)
	mux.Handle("POST /api/v1/auth/logout", guard(authHandler.Logout))

	// чтение каталога открыто, изменения только с токеном
	mux.HandleFunc("GET /api/v1/movies", movies.List)
	mux.HandleFunc("GET /api/v1/movies/{id}", movies.Get)
	mux.Handle("POST /api/v1/movies", guard(movies.Create))
	mux.Handle("PUT /api/v1/movies/{id}", guard(movies.Update))
	mux.Handle("DELETE /api/v1/movies/{id}", guard(movies.Delete))

	mux.Handle("PUT /api/v1/movies/{id}/rating", guard(ratings.Rate))
	mux.Handle("GET /api/v1/me/ratings", guard(ratings.Mine))

	mux.Handle("GET /api/v1/admin/users", protected(adminOnly(http.HandlerFunc(admin.ListUsers))))

	mux.Handle("GET /api/v1/ws", ws)
	mux.Handle("GET /metrics", promhttp.Handler())
}

// Run слушает адрес до вызова Shutdown. Фоновые задачи живут до отмены ctx.
func (s *Server) Run(ctx context.Context) error {
	go s.cleanupTokens(ctx)

	s.logger.Info("movieshelf server listening", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown останавливает генерацию, отключает подписчиков и дожидается
// завершения активных запросов
func (s *Server) Shutdown(ctx context.Context) error {
	s.relay.Stop()
	s.hub.Close()

	err := s.httpServer.Shutdown(ctx)

	if s.limiter != nil {
		s.limiter.Stop()
	}
	return err
}

func (s *Server) cleanupTokens(ctx context.Context) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.store.DeleteExpiredTokens(ctx)
			if err != nil {
				s.logger.Error("failed to delete expired tokens", slog.Any("error", err))
				continue
			}
			if n > 0 {
				s.logger.Info("expired refresh tokens deleted", slog.Int("count", n))
			}
		}
	}
}
