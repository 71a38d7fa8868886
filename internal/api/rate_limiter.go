package api

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

const (
	rateLimiterIdleTTL    = 10 * time.Minute
	rateLimiterSweepAbove = 10000
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter keeps one token bucket per client IP.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	rate     rate.Limit
	burst    int
}

func newIPRateLimiter(requestsPerSecond float64, burst int) *ipRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ipRateLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (limiter *ipRateLimiter) allow(key string, now time.Time) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	if len(limiter.limiters) > rateLimiterSweepAbove {
		limiter.sweepLocked(now)
	}

	entry, ok := limiter.limiters[key]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(limiter.rate, limiter.burst)}
		limiter.limiters[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

func (limiter *ipRateLimiter) sweepLocked(now time.Time) {
	for key, entry := range limiter.limiters {
		if now.Sub(entry.lastSeen) > rateLimiterIdleTTL {
			delete(limiter.limiters, key)
		}
	}
}

func (limiter *ipRateLimiter) middleware(c *fiber.Ctx) error {
	if !limiter.allow(requestLimiterKey(c), time.Now()) {
		return apiError(c, fiber.StatusTooManyRequests, "rate limit exceeded")
	}
	return c.Next()
}
