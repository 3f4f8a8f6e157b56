package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("burst is allowed then denied", func(t *testing.T) {
		limiter := NewRateLimiter(1, 3)
		defer limiter.Stop()

		for i := 0; i < 3; i++ {
			assert.True(t, limiter.Allow("192.168.1.1"), fmt.Sprintf("request %d should be allowed", i+1))
		}
		assert.False(t, limiter.Allow("192.168.1.1"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		limiter := NewRateLimiter(1, 1)
		defer limiter.Stop()

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.2"))
	})

	t.Run("tokens refill over time", func(t *testing.T) {
		limiter := NewRateLimiter(1, 1)
		defer limiter.Stop()

		now := time.Now()
		limiter.now = func() time.Time { return now }

		assert.True(t, limiter.Allow("k"))
		assert.False(t, limiter.Allow("k"))

		now = now.Add(1100 * time.Millisecond)
		assert.True(t, limiter.Allow("k"))
	})
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := NewRateLimiter(10, 10)
	defer limiter.Stop()

	now := time.Now()
	limiter.now = func() time.Time { return now }

	limiter.Allow("old")
	now = now.Add(idleLimiterTTL + time.Minute)
	limiter.Allow("fresh")

	limiter.cleanup()
	assert.Equal(t, 1, limiter.size())

	// повторный Stop безопасен
	limiter.Stop()
}

func TestRateLimiter_RetryAfter(t *testing.T) {
	assert.Equal(t, 1, (&RateLimiter{rate: 10}).RetryAfter())
	assert.Equal(t, 5, (&RateLimiter{rate: 0.2}).RetryAfter())
	assert.Equal(t, 1, (&RateLimiter{rate: 0}).RetryAfter())
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter(0.5, 2)
	defer limiter.Stop()

	handler := RateLimitMiddleware(limiter, setupTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:5000").Code)
	// другой порт того же клиента считается тем же ключом
	assert.Equal(t, http.StatusOK, send("10.0.0.1:5001").Code)

	w := send("10.0.0.1:5002")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate limit exceeded")

	assert.Equal(t, http.StatusOK, send("10.0.0.2:5000").Code)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		headers    map[string]string
		name       string
		remoteAddr string
		expected   string
	}{
		{name: "remote addr with port", remoteAddr: "192.168.1.1:12345", expected: "192.168.1.1"},
		{name: "remote addr without port", remoteAddr: "192.168.1.1", expected: "192.168.1.1"},
		{name: "ipv6", remoteAddr: "[::1]:8080", expected: "::1"},
		{
			name:       "x-forwarded-for takes first",
			remoteAddr: "10.0.0.1:1",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5, 70.41.3.18"},
			expected:   "203.0.113.5",
		},
		{
			name:       "x-real-ip",
			remoteAddr: "10.0.0.1:1",
			headers:    map[string]string{"X-Real-IP": "198.51.100.7"},
			expected:   "198.51.100.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, getClientIP(req))
		})
	}
}
