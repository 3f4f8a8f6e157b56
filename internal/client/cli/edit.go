package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/movieshelf/internal/client/api"
	"github.com/iudanet/movieshelf/internal/client/sync"
	"github.com/iudanet/movieshelf/internal/models"
	"github.com/iudanet/movieshelf/internal/validation"
)

func (c *Cli) runAdd(ctx context.Context) error {
	if _, err := c.requireLogin(ctx); err != nil {
		return err
	}

	c.io.Println("=== Add Movie ===")
	c.io.Println()

	movie, err := c.readMovie(&models.Movie{})
	if err != nil {
		return err
	}

	saved, err := c.coord.Mutate(ctx, sync.Mutation{Kind: models.OpCreate, Movie: movie}, c.monitor.Check(ctx))
	if err != nil {
		return fmt.Errorf("failed to add movie: %w", mutationError(err))
	}

	c.io.Println()
	c.io.Printf("✓ Movie %s added\n", movieRef(saved))
	c.reportOffline(saved)
	return nil
}

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	id, err := parseMovieID(args, "update")
	if err != nil {
		return err
	}
	if _, err := c.requireLogin(ctx); err != nil {
		return err
	}

	current, ok := c.replica.Get(ctx, id)
	if !ok {
		return fmt.Errorf("movie not found with ID: %d", id)
	}

	c.io.Println("=== Update Movie ===")
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	movie, err := c.readMovie(current)
	if err != nil {
		return err
	}

	saved, err := c.coord.Mutate(ctx, sync.Mutation{Kind: models.OpUpdate, ID: id, Movie: movie}, c.monitor.Check(ctx))
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", mutationError(err))
	}

	c.io.Println()
	c.io.Printf("✓ Movie %s updated\n", movieRef(saved))
	c.reportOffline(saved)
	return nil
}

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	id, err := parseMovieID(args, "delete")
	if err != nil {
		return err
	}
	if _, err := c.requireLogin(ctx); err != nil {
		return err
	}

	movie, ok := c.replica.Get(ctx, id)
	if !ok {
		return fmt.Errorf("movie not found with ID: %d", id)
	}

	answer, err := c.io.ReadInput(fmt.Sprintf("Delete %s? [y/N]: ", movieRef(movie)))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		c.io.Println("Cancelled.")
		return nil
	}

	_, err = c.coord.Mutate(ctx, sync.Mutation{Kind: models.OpDelete, ID: id}, c.monitor.Check(ctx))
	switch {
	case errors.Is(err, sync.ErrDeleteDeferred):
		c.io.Println("✓ Movie deleted locally.")
		c.io.Println("The server could not be reached, the deletion will be sent on the next sync.")
		return nil
	case err != nil:
		return fmt.Errorf("failed to delete movie: %w", mutationError(err))
	}

	c.io.Println("✓ Movie deleted")
	return nil
}

func (c *Cli) reportOffline(m *models.Movie) {
	if m != nil && m.IsOffline {
		c.io.Println("Note: the change is stored locally and will be sent on the next sync.")
	}
}

// mutationError дополняет ошибку подсказкой для пользователя
func mutationError(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return fmt.Errorf("%w (session expired? run 'movieshelf login')", err)
	}
	return err
}

// readMovie запрашивает поля фильма. Пустой ввод оставляет значение из base.
func (c *Cli) readMovie(base *models.Movie) (*models.Movie, error) {
	m := base.Clone()
	m.IsOffline = false

	fields := []struct {
		target *string
		prompt string
	}{
		{&m.Title, "Title"},
		{&m.Director, "Director"},
		{&m.ReleaseDate, "Release date (YYYY-MM-DD)"},
		{&m.Description, "Description"},
		{&m.Poster, "Poster URL (optional)"},
		{&m.Trailer, "Trailer URL (optional)"},
	}

	for _, f := range fields {
		value, err := c.io.ReadInput(fieldPrompt(f.prompt, *f.target))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", strings.ToLower(f.prompt), err)
		}
		if value != "" {
			*f.target = value
		}
	}

	current := ""
	if base.ID != 0 {
		current = strconv.FormatFloat(base.Rating, 'f', 1, 64)
	}
	rating, err := c.io.ReadInput(fieldPrompt("Rating (0-10)", current))
	if err != nil {
		return nil, fmt.Errorf("failed to read rating: %w", err)
	}
	if rating != "" {
		v, err := strconv.ParseFloat(rating, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rating %q: %w", rating, err)
		}
		m.Rating = v
	}

	if err := validation.ValidateMovie(m); err != nil {
		return nil, err
	}
	return m, nil
}

func fieldPrompt(name, current string) string {
	if current == "" {
		return name + ": "
	}
	return fmt.Sprintf("%s [%s]: ", name, current)
}
