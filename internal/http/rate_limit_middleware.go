package http

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/allisson/tokenparser/internal/httputil"
)

const (
	rateLimiterCleanupInterval = 5 * time.Minute
	rateLimiterIdleTTL         = time.Hour
)

// ipRateLimiterStore holds per-IP rate limiters with automatic cleanup.
type ipRateLimiterStore struct {
	limiters sync.Map // map[string]*ipRateLimiterEntry (IP -> limiter)
	rps      float64
	burst    int
	now      func() time.Time
}

// ipRateLimiterEntry holds a rate limiter and last access time for cleanup.
type ipRateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

func newIPRateLimiterStore(rps float64, burst int) *ipRateLimiterStore {
	return &ipRateLimiterStore{rps: rps, burst: burst, now: time.Now}
}

// IPRateLimitMiddleware enforces per-IP rate limiting on the parse endpoints.
//
// Uses the token bucket from golang.org/x/time/rate with one limiter per c.ClientIP().
// Stale limiters are evicted by a goroutine that stops when ctx is done.
//
// Returns 429 Too Many Requests with a Retry-After header when the limit is exceeded.
func IPRateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newIPRateLimiterStore(rps, burst)

	go store.cleanupStale(ctx, rateLimiterCleanupInterval)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limiter := store.getLimiter(clientIP)

		if !limiter.Allow() {
			reservation := limiter.Reserve()
			retryAfter := int(math.Ceil(reservation.Delay().Seconds()))
			reservation.Cancel()

			logger.Debug("rate limit exceeded",
				slog.String("client_ip", clientIP),
				slog.Int("retry_after", retryAfter))

			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.ErrorResponse{
				Error: "Too many requests. Please retry after the specified delay.",
			})
			return
		}

		c.Next()
	}
}

// getLimiter retrieves or creates the rate limiter of an IP address.
func (s *ipRateLimiterStore) getLimiter(ip string) *rate.Limiter {
	now := s.now()

	if val, ok := s.limiters.Load(ip); ok {
		entry := val.(*ipRateLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = now
		entry.mu.Unlock()
		return entry.limiter
	}

	entry := &ipRateLimiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: now,
	}
	actual, _ := s.limiters.LoadOrStore(ip, entry)
	return actual.(*ipRateLimiterEntry).limiter
}

// evictIdle removes limiters not accessed within ttl.
func (s *ipRateLimiterStore) evictIdle(ttl time.Duration) {
	threshold := s.now().Add(-ttl)
	s.limiters.Range(func(key, value any) bool {
		entry := value.(*ipRateLimiterEntry)
		entry.mu.Lock()
		shouldDelete := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if shouldDelete {
			s.limiters.Delete(key)
		}
		return true
	})
}

// cleanupStale periodically evicts idle limiters until ctx is done.
func (s *ipRateLimiterStore) cleanupStale(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evictIdle(rateLimiterIdleTTL)
		}
	}
}
