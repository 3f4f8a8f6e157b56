package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/movieshelf/internal/crypto"
	"github.com/iudanet/movieshelf/internal/models"
	"github.com/iudanet/movieshelf/internal/server/config"
	"github.com/iudanet/movieshelf/internal/server/storage/sqlite"
)

// Bootstrap готовит базу перед запуском: заводит администратора из
// конфигурации и при необходимости заполняет пустой каталог.
func Bootstrap(ctx context.Context, cfg *config.Config, store *sqlite.Storage, logger *slog.Logger) error {
	if cfg.AdminPassword != "" {
		hash, err := crypto.HashPassword(cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}

		now := time.Now().UTC()
		created, err := store.EnsureAdmin(ctx, &models.User{
			ID:           uuid.New().String(),
			Username:     cfg.AdminUsername,
			PasswordHash: hash,
			IsAdmin:      true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("ensure admin: %w", err)
		}
		logger.InfoContext(ctx, "admin account ready",
			slog.String("username", cfg.AdminUsername),
			slog.Bool("created", created),
		)
	}

	if cfg.Seed {
		n, err := store.SeedMovies(ctx)
		if err != nil {
			return fmt.Errorf("seed movies: %w", err)
		}
		if n == 0 {
			logger.InfoContext(ctx, "catalog is not empty, seeding skipped")
		} else {
			logger.InfoContext(ctx, "catalog seeded", slog.Int("movies", n))
		}
	}

	return nil
}
