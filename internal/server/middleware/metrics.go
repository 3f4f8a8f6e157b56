package middleware

import (
	"net/http"
	"time"

	"github.com/iudanet/movieshelf/internal/server/metrics"
)

// MetricsMiddleware считает запросы и их длительность по шаблону маршрута ServeMux
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.TrackActiveRequest(true)
			defer metrics.TrackActiveRequest(false)

			wrapped := wrapResponseWriter(w)
			next.ServeHTTP(wrapped, r)

			metrics.RecordHTTPRequest(r.Method, routeLabel(r), wrapped.statusCode, time.Since(start))
		})
	}
}

// routeLabel шаблон маршрута вместо пути, чтобы ID не раздували кардинальность
func routeLabel(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return "unmatched"
}
