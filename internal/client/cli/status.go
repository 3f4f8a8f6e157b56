package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/movieshelf/internal/client/storage"
	"github.com/iudanet/movieshelf/internal/models"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	authData, err := c.auth.Current(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		c.io.Println("Session:      not authenticated")
	case err != nil:
		return fmt.Errorf("failed to get auth data: %w", err)
	default:
		c.io.Printf("Session:      %s\n", authData.Username)
		expiresAt := time.Unix(authData.ExpiresAt, 0)
		if time.Until(expiresAt) > 0 {
			c.io.Printf("Valid until:  %s\n", expiresAt.Format(time.RFC3339))
		} else {
			c.io.Println("⚠️  Session has expired. Please login again.")
		}
	}

	state := c.monitor.Check(ctx)
	c.io.Printf("Connectivity: %s\n", state)

	if last := c.coord.LastSync(ctx); last > 0 {
		c.io.Printf("Last sync:    %s\n", time.Unix(last, 0).Format(time.RFC3339))
	} else {
		c.io.Println("Last sync:    never")
	}

	c.io.Printf("Movies:       %d\n", len(c.replica.GetAll(ctx)))

	counts := c.replica.PendingCounts(ctx)
	total := 0
	for _, n := range counts {
		total += n
	}

	c.io.Println()
	if total == 0 {
		c.io.Println("✓ No pending changes")
		return nil
	}

	c.io.Printf("⚠️  Pending changes: %d\n", total)
	for _, kind := range []models.OperationKind{models.OpCreate, models.OpUpdate, models.OpDelete} {
		if n := counts[kind]; n > 0 {
			c.io.Printf("   %-6s %d\n", kind, n)
		}
	}
	c.io.Println("Run 'movieshelf sync' when the server is reachable.")

	return nil
}
