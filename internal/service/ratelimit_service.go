package service

import (
	"sync"
	"time"
)

// SlidingWindowLimiter implements ports.RateLimiter with an in-memory
// sliding window of request timestamps per key. State is process-local
// and resets on restart.
type SlidingWindowLimiter struct {
	mu          sync.Mutex
	window      time.Duration
	maxRequests int
	requests    map[string][]time.Time
	now         func() time.Time // injectable clock for tests
}

// NewSlidingWindowLimiter creates a limiter allowing maxRequests per
// key within the sliding window.
func NewSlidingWindowLimiter(window time.Duration, maxRequests int) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		window:      window,
		maxRequests: maxRequests,
		requests:    make(map[string][]time.Time),
		now:         time.Now,
	}
}

// IsRateLimited reports whether the caller is over budget. The
// filter-compare-append sequence runs under one lock: two concurrent
// callers for the same key cannot both claim the last slot.
func (l *SlidingWindowLimiter) IsRateLimited(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	valid := l.requests[key][:0]
	for _, ts := range l.requests[key] {
		if ts.After(cutoff) {
			valid = append(valid, ts)
		}
	}

	if len(valid) >= l.maxRequests {
		l.requests[key] = valid
		return true
	}

	l.requests[key] = append(valid, now)
	return false
}

// Reset clears the request history for a key.
func (l *SlidingWindowLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.requests, key)
}
