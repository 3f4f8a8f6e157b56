// Package metrics содержит Prometheus метрики сервера.
// Метрики регистрируются в registry по умолчанию и отдаются на /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP API
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movieshelf_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movieshelf_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movieshelf_http_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	RateLimitHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movieshelf_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// Live update relay
	RelayEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movieshelf_relay_events_total",
			Help: "Total number of events broadcast to relay subscribers",
		},
		[]string{"type"},
	)

	RelayGenerating = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movieshelf_relay_generating",
			Help: "1 when the movie generator is running, 0 when idle",
		},
	)

	RelaySubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movieshelf_relay_subscribers",
			Help: "Current number of connected relay subscribers",
		},
	)

	MoviesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movieshelf_movies_generated_total",
			Help: "Total number of movies fabricated by the generator",
		},
	)
)

// RecordHTTPRequest records an API request metric
func RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest увеличивает или уменьшает счетчик активных запросов
func TrackActiveRequest(inc bool) {
	if inc {
		HTTPActiveRequests.Inc()
	} else {
		HTTPActiveRequests.Dec()
	}
}

// RecordRelayEvent учитывает событие, отправленное подписчикам
func RecordRelayEvent(eventType string) {
	RelayEventsTotal.WithLabelValues(eventType).Inc()
}

// SetRelayGenerating отражает состояние генератора
func SetRelayGenerating(generating bool) {
	if generating {
		RelayGenerating.Set(1)
	} else {
		RelayGenerating.Set(0)
	}
}
