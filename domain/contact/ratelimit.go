package contact

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter limits contact submissions per client IP.
type RateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewRateLimiter allows perMinute sustained submissions with the given burst.
// A non-positive perMinute disables limiting.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

// Allow reports whether ip may submit now and consumes a token if so.
func (m *RateLimiter) Allow(ip string) bool {
	return m.getLimiter(ip).Allow()
}

// Exhausted reports whether ip has no submission left right now without
// consuming anything.
func (m *RateLimiter) Exhausted(ip string) bool {
	if m.limit == rate.Inf {
		return false
	}
	return m.getLimiter(ip).Tokens() < 1
}

func (m *RateLimiter) getLimiter(ip string) *rate.Limiter {
	m.mu.RLock()
	limiter, exists := m.limiters[ip]
	m.mu.RUnlock()
	if exists {
		return limiter
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double check after taking the write lock
	if limiter, exists = m.limiters[ip]; exists {
		return limiter
	}
	limiter = rate.NewLimiter(m.limit, m.burst)
	m.limiters[ip] = limiter
	return limiter
}

// Prune drops limiters whose bucket has refilled, returning how many were
// removed. A dropped limiter behaves exactly like a fresh one.
func (m *RateLimiter) Prune(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for ip, l := range m.limiters {
		if l.TokensAt(now) >= float64(m.burst) {
			delete(m.limiters, ip)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients.
func (m *RateLimiter) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.limiters)
}
