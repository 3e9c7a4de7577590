package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

// getRateLimitForEndpoint determines which rate limit to apply based on config
func (mw *Middleware) getRateLimitForEndpoint(path, method string) (int, time.Duration) {

	// Checkout and contact submissions - strictest limits
	if method == http.MethodPost && (strings.HasPrefix(path, "/checkout") ||
		strings.HasPrefix(path, "/contact")) {
		return mw.cfg.RateLimit.SubmitLimit, mw.cfg.RateLimit.SubmitWindow
	}

	// Expensive read operations
	if method == http.MethodGet && strings.Contains(path, "/products") {
		return mw.cfg.RateLimit.ExpensiveLimit, mw.cfg.RateLimit.ExpensiveWindow
	}

	// Default limit for everything else
	return mw.cfg.RateLimit.GeneralLimit, mw.cfg.RateLimit.GeneralWindow
}

// getClientIP extracts the real client IP from request headers
func (mw *Middleware) getClientIP(r *http.Request) string {
	// Try X-Forwarded-For first (if behind proxy/load balancer)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// X-Forwarded-For can contain multiple IPs, take the first one
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	// Try X-Real-IP
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// Fallback to RemoteAddr, stripping the port. A bare address without
	// a port (possible with custom listeners) passes through unchanged.
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}

// RateLimitMiddleware implements counter-based rate limiting backed by the
// redis store, failing open on counter errors.
func (mw *Middleware) RateLimitMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skip if rate limiting is disabled or no counter backend exists
			if !mw.cfg.RateLimit.Enabled || mw.limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			// Skip rate limiting for health checks and the welcome route
			if r.URL.Path == "/" || strings.HasPrefix(r.URL.Path, "/health") ||
				r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			clientIP := mw.getClientIP(r)
			limit, window := mw.getRateLimitForEndpoint(r.URL.Path, r.Method)
			key := fmt.Sprintf("ratelimit:%s:%s", clientIP, r.URL.Path)

			count, err := mw.limiter.Increment(r.Context(), key, window)
			if err != nil {
				// Counter error - log and allow request (fail open)
				mw.logger.Warn("Rate limit counter error, allowing request",
					gecho.Field("error", err),
					gecho.Field("ip", clientIP),
					gecho.Field("endpoint", r.URL.Path),
				)
				next.ServeHTTP(w, r)
				return
			}

			if count > limit {
				mw.logger.Warn("Rate limit exceeded",
					gecho.Field("ip", clientIP),
					gecho.Field("endpoint", r.URL.Path),
					gecho.Field("count", count),
					gecho.Field("limit", limit),
				)

				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(window).Unix()))
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
				w.Header().Set("Content-Type", "application/json")

				http.Error(w, fmt.Sprintf(`{"message":"Rate limit exceeded. Please try again later.","data":{"limit":%d,"window":"%s","retry_after":%d}}`,
					limit, window.String(), int(window.Seconds())), http.StatusTooManyRequests)
				return
			}

			remaining := max(0, limit-count)
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(window).Unix()))

			next.ServeHTTP(w, r)
		})
	}
}
