package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	if _, err := c.requireLogin(ctx); err != nil {
		return err
	}

	state := c.monitor.Check(ctx)
	if !state.Online() {
		return fmt.Errorf("server is %s, changes stay queued", state)
	}

	result, err := c.coord.Sync(ctx)
	if result != nil && result.Replay != nil {
		r := result.Replay
		c.io.Printf("Pushed to server:  %d change(s)\n", r.Synced)
		if r.Dropped > 0 {
			c.io.Printf("Rejected:          %d change(s)\n", r.Dropped)
		}
		if r.Remaining > 0 {
			c.io.Printf("Still pending:     %d change(s)\n", r.Remaining)
		}
	}
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", mutationError(err))
	}

	if result.Refresh != nil {
		c.io.Printf("Fetched from server: %d movie(s)\n", result.Refresh.Fetched)
		if result.Refresh.Removed > 0 {
			c.io.Printf("Removed locally:     %d movie(s)\n", result.Refresh.Removed)
		}
	}

	c.io.Println()
	c.io.Println("✓ Synchronization completed")
	return nil
}

func (c *Cli) runRate(ctx context.Context, args []string) error {
	id, err := parseMovieID(args, "rate")
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("missing score. Usage: movieshelf rate <id> <0-10>")
	}
	score, err := strconv.ParseFloat(args[1], 64)
	if err != nil || score < 0 || score > 10 {
		return fmt.Errorf("invalid score %q: expected a number from 0 to 10", args[1])
	}
	if id < 0 {
		return fmt.Errorf("movie %d is not synced yet, run 'movieshelf sync' first", id)
	}
	if _, err := c.requireLogin(ctx); err != nil {
		return err
	}

	resp, err := c.ratings.RateMovie(ctx, id, score)
	if err != nil {
		return fmt.Errorf("failed to rate movie: %w", mutationError(err))
	}

	c.io.Printf("✓ Rated movie %d: %.1f\n", resp.MovieID, resp.Score)
	c.io.Printf("Average: %.1f (%d vote(s))\n", resp.Average, resp.Votes)
	return nil
}

func (c *Cli) runRatings(ctx context.Context) error {
	if _, err := c.requireLogin(ctx); err != nil {
		return err
	}

	ratings, err := c.ratings.MyRatings(ctx)
	if err != nil {
		return fmt.Errorf("failed to get ratings: %w", mutationError(err))
	}

	c.io.Println("=== My Ratings ===")
	c.io.Println()

	if len(ratings) == 0 {
		c.io.Println("No ratings yet. Use 'movieshelf rate <id> <score>'.")
		return nil
	}

	for _, r := range ratings {
		title := "?"
		if m, ok := c.replica.Get(ctx, r.MovieID); ok {
			title = m.Title
		}
		c.io.Printf("%6d  %-30s %4.1f  %s\n", r.MovieID, title, r.Score, r.UpdatedAt.Local().Format(time.DateOnly))
	}
	return nil
}
