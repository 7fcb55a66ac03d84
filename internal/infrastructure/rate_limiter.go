package infrastructure

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"exercise-tracker/internal/config"
)

// RateLimiter keeps one token bucket per client key and drops buckets that
// have been idle for a while.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows RATE_LIMIT_MAX_REQUESTS requests per client per
// RATE_LIMIT_WINDOW: the bucket holds one window's allowance and refills at
// that allowance spread over the window.
func NewRateLimiter() *RateLimiter {
	window := config.GetDuration("RATE_LIMIT_WINDOW", time.Minute)
	maxRequests := config.GetInt("RATE_LIMIT_MAX_REQUESTS", 100)

	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(float64(maxRequests) / window.Seconds()),
		burst:    maxRequests,
	}

	go rl.cleanupStaleEntries(window)
	return rl
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (rl *RateLimiter) cleanupStaleEntries(window time.Duration) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-window)

		rl.mu.Lock()
		for key, v := range rl.visitors {
			if v.lastSeen.Before(cutoff) {
				delete(rl.visitors, key)
			}
		}
		rl.mu.Unlock()
	}
}
