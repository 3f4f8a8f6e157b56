package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iudanet/movieshelf/internal/client/catalog"
	"github.com/iudanet/movieshelf/internal/models"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var q catalog.Query
	fs.StringVar(&q.Sort, "sort", catalog.SortNone, "sort order")
	fs.StringVar(&q.Title, "title", "", "filter by title")
	fs.StringVar(&q.Director, "director", "", "filter by director")
	fs.IntVar(&q.Page, "page", 1, "page number")
	fs.IntVar(&q.PerPage, "per-page", catalog.DefaultPerPage, "movies per page")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid list arguments: %w", err)
	}

	page, err := catalog.View(c.replica.GetAll(ctx), q)
	if err != nil {
		return err
	}

	c.io.Println("=== Movies ===")
	c.io.Println()

	if page.Total == 0 {
		c.io.Println("No movies found.")
		c.io.Println()
		c.io.Println("Use 'movieshelf sync' to fetch the catalog or 'movieshelf add' to add a movie.")
		return nil
	}

	for _, m := range page.Movies {
		c.io.Printf("%s\n", listLine(m))
	}

	c.io.Println()
	c.io.Printf("Page %d of %d (%d movies)\n", page.Page, page.Pages, page.Total)

	return nil
}

// listLine одна строка списка: ID, название, режиссер, рейтинг, категория
func listLine(m *models.Movie) string {
	line := fmt.Sprintf("%6d  %s (%s), %.1f/10 [%s]", m.ID, m.Title, m.Director, m.Rating, m.Classification())
	if m.IsOffline {
		line += " *offline*"
	}
	return line
}
