package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront_server/api/middleware"
	"storefront_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLimiter captures the counter keys the middleware increments.
type recordingLimiter struct {
	lastKey string
	count   int
	err     error
}

func (rl *recordingLimiter) Increment(ctx context.Context, key string, ttl time.Duration) (int, error) {
	rl.lastKey = key
	return rl.count, rl.err
}

func rateLimitConfig() *structs.Config {
	return &structs.Config{
		RateLimit: &structs.RateLimitConfig{
			Enabled:         true,
			GeneralLimit:    100,
			GeneralWindow:   time.Minute,
			ExpensiveLimit:  30,
			ExpensiveWindow: time.Minute,
			SubmitLimit:     5,
			SubmitWindow:    time.Minute,
		},
	}
}

func serveThroughLimiter(t *testing.T, limiter *recordingLimiter, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	mw := middleware.NewMiddleware(rateLimitConfig(), gecho.NewDefaultLogger(), limiter)

	handler := mw.RateLimitMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	return rec
}

func TestRateLimitClientKeys(t *testing.T) {
	t.Run("ipv4 remote addr drops the port", func(t *testing.T) {
		limiter := &recordingLimiter{count: 1}

		r := httptest.NewRequest("GET", "/cart", nil)
		r.RemoteAddr = "203.0.113.9:51234"

		rec := serveThroughLimiter(t, limiter, r)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ratelimit:203.0.113.9:/cart", limiter.lastKey)
	})

	t.Run("ipv6 remote addr keeps the full address", func(t *testing.T) {
		limiter := &recordingLimiter{count: 1}

		r := httptest.NewRequest("GET", "/cart", nil)
		r.RemoteAddr = "[2001:db8::1]:51234"

		rec := serveThroughLimiter(t, limiter, r)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ratelimit:2001:db8::1:/cart", limiter.lastKey)
	})

	t.Run("bare address without a port passes through", func(t *testing.T) {
		limiter := &recordingLimiter{count: 1}

		r := httptest.NewRequest("GET", "/cart", nil)
		r.RemoteAddr = "2001:db8::1"

		rec := serveThroughLimiter(t, limiter, r)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ratelimit:2001:db8::1:/cart", limiter.lastKey)
	})

	t.Run("forwarded header wins over remote addr", func(t *testing.T) {
		limiter := &recordingLimiter{count: 1}

		r := httptest.NewRequest("GET", "/cart", nil)
		r.RemoteAddr = "203.0.113.9:51234"
		r.Header.Set("X-Forwarded-For", "198.51.100.7, 203.0.113.9")

		rec := serveThroughLimiter(t, limiter, r)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ratelimit:198.51.100.7:/cart", limiter.lastKey)
	})
}

func TestRateLimitEnforcement(t *testing.T) {
	t.Run("over the limit returns 429 with headers", func(t *testing.T) {
		limiter := &recordingLimiter{count: 101}

		r := httptest.NewRequest("GET", "/cart", nil)
		r.RemoteAddr = "203.0.113.9:51234"

		rec := serveThroughLimiter(t, limiter, r)
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "100", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("counter errors fail open", func(t *testing.T) {
		limiter := &recordingLimiter{err: assert.AnError}

		r := httptest.NewRequest("GET", "/cart", nil)
		r.RemoteAddr = "203.0.113.9:51234"

		rec := serveThroughLimiter(t, limiter, r)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("health endpoints bypass limiting", func(t *testing.T) {
		limiter := &recordingLimiter{count: 1000}

		r := httptest.NewRequest("GET", "/health/server", nil)
		r.RemoteAddr = "203.0.113.9:51234"

		rec := serveThroughLimiter(t, limiter, r)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, limiter.lastKey)
	})
}
