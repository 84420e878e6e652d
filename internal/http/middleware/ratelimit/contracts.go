package ratelimit

import "time"

// Limiter decides whether the client identified by key may proceed.
// When it may not, wait is how long until the next request would be admitted.
type Limiter interface {
	Allow(key string) (ok bool, wait time.Duration)
}

// NopLimiter admits every request.
type NopLimiter struct{}

// Allow always admits.
func (NopLimiter) Allow(string) (bool, time.Duration) { return true, 0 }
