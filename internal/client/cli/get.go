package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/template"

	"github.com/iudanet/movieshelf/internal/models"
)

const movieTemplate = `
=== Movie Details ===

Title:       {{.Title}}
ID:          {{.ID}}{{if .IsOffline}} (not synced yet){{end}}
Director:    {{.Director}}
{{- if .ReleaseDate}}
Released:    {{.ReleaseDate}} ({{.Classification}})
{{- end}}
Rating:      {{printf "%.1f" .Rating}}/10
{{- if .Poster}}
Poster:      {{.Poster}}
{{- end}}
{{- if .Trailer}}
Trailer:     {{.Trailer}}
{{- end}}

{{.Description}}
`

var movieTmpl = template.Must(template.New("movie").Parse(movieTemplate))

func (c *Cli) runGet(ctx context.Context, args []string) error {
	id, err := parseMovieID(args, "get")
	if err != nil {
		return err
	}

	movie, ok := c.replica.Get(ctx, id)
	if !ok {
		return fmt.Errorf("movie not found with ID: %d", id)
	}

	if err := movieTmpl.Execute(c.io, movie); err != nil {
		return fmt.Errorf("failed to render movie: %w", err)
	}
	return nil
}

// parseMovieID разбирает ID записи из первого аргумента.
// Отрицательные ID допустимы: так помечены записи, созданные без связи.
func parseMovieID(args []string, command string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing movie ID. Usage: movieshelf %s <id>", command)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid movie ID: %s", args[0])
	}
	return id, nil
}

// movieRef короткое описание записи для сообщений
func movieRef(m *models.Movie) string {
	return fmt.Sprintf("%q (ID %d)", m.Title, m.ID)
}
