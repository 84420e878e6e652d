package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Config stores TokenBucket settings.
type Config struct {
	Rate       float64       // tokens per second
	Burst      int           // capacity (max tokens)
	TTL        time.Duration // drop idle buckets (0 keeps them)
	MaxBuckets int           // 0 means unbounded
}

// TokenBucket is a per-key token bucket limiter.
type TokenBucket struct {
	cfg         Config
	clock       Clock
	mu          sync.RWMutex
	buckets     map[string]*bucket
	lastCleanup time.Time
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	last     time.Time
	lastSeen time.Time
}

// NewTokenBucket creates a limiter. A nil clock uses the wall clock.
func NewTokenBucket(clock Clock, cfg Config) *TokenBucket {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &TokenBucket{
		cfg:     cfg,
		clock:   clock,
		buckets: make(map[string]*bucket),
	}
}

// Allow takes one token from key's bucket.
// New keys are refused while MaxBuckets buckets are live.
func (l *TokenBucket) Allow(key string) (bool, time.Duration) {
	now := l.clock.Now()
	l.maybeCleanup(now)

	b := l.bucketFor(key, now)
	if b == nil {
		return false, l.fullRefill()
	}
	return b.take(now, l.cfg.Rate, float64(l.cfg.Burst))
}

// Len returns the number of live buckets.
func (l *TokenBucket) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.buckets)
}

func (l *TokenBucket) fullRefill() time.Duration {
	return secondsToDuration(1 / l.cfg.Rate)
}

func (l *TokenBucket) bucketFor(key string, now time.Time) *bucket {
	l.mu.RLock()
	b := l.buckets[key]
	l.mu.RUnlock()
	if b != nil {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if b = l.buckets[key]; b != nil {
		return b
	}
	if l.cfg.MaxBuckets > 0 && len(l.buckets) >= l.cfg.MaxBuckets {
		return nil
	}

	b = &bucket{
		tokens:   float64(l.cfg.Burst),
		last:     now,
		lastSeen: now,
	}
	l.buckets[key] = b
	return b
}

func (b *bucket) take(now time.Time, rate, burst float64) (bool, time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if dt := now.Sub(b.last); dt > 0 {
		b.tokens = math.Min(burst, b.tokens+dt.Seconds()*rate)
		b.last = now
	}
	b.lastSeen = now

	if b.tokens < 1 {
		return false, secondsToDuration((1 - b.tokens) / rate)
	}
	b.tokens--
	return true, 0
}

func (l *TokenBucket) maybeCleanup(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}

	interval := time.Minute
	if half := l.cfg.TTL / 2; half > interval {
		interval = half
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.lastCleanup.IsZero() && now.Sub(l.lastCleanup) < interval {
		return
	}
	l.lastCleanup = now

	for k, b := range l.buckets {
		b.mu.Lock()
		seen := b.lastSeen
		b.mu.Unlock()

		if now.Sub(seen) > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(math.Ceil(s * float64(time.Second)))
}
