// Package ratelimiter implements a per-key token bucket limiter used to
// throttle expensive engine operations (thread creation, voting, search).
package ratelimiter

import (
	"sync"
	"time"
)

// bucket is a single token bucket.
type bucket struct {
	tokens     float64
	capacity   float64
	rate       float64
	lastRefill time.Time
	mu         sync.Mutex
	timer      *time.Timer
	key        string
	parent     *KeyedLimiter
}

// KeyedLimiter manages one bucket per identity (user id, IP, "global").
// Idle buckets expire to bound memory.
type KeyedLimiter struct {
	buckets        map[string]*bucket
	mu             sync.RWMutex
	rate           float64
	capacity       float64
	expirationTime time.Duration
}

// New creates a KeyedLimiter refilling at rate tokens/sec with the given
// burst capacity. Buckets idle for expirationTime are dropped.
func New(rate float64, capacity float64, expirationTime time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		buckets:        make(map[string]*bucket),
		rate:           rate,
		capacity:       capacity,
		expirationTime: expirationTime,
	}
}

func (kl *KeyedLimiter) cleanup(key string) {
	kl.mu.Lock()
	delete(kl.buckets, key)
	kl.mu.Unlock()
}

func (b *bucket) resetTimer() {
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.parent.expirationTime, func() {
		b.parent.cleanup(b.key)
	})
}

func (kl *KeyedLimiter) getBucket(key string) *bucket {
	// First try read-only lookup
	kl.mu.RLock()
	b, exists := kl.buckets[key]
	kl.mu.RUnlock()

	if exists {
		b.resetTimer()
		return b
	}

	kl.mu.Lock()
	defer kl.mu.Unlock()

	// Double-check after acquiring write lock
	b, exists = kl.buckets[key]
	if exists {
		b.resetTimer()
		return b
	}

	b = &bucket{
		tokens:     kl.capacity,
		capacity:   kl.capacity,
		rate:       kl.rate,
		lastRefill: time.Now(),
		key:        key,
		parent:     kl,
	}
	kl.buckets[key] = b
	b.resetTimer()

	return b
}

func (b *bucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()

	b.tokens += elapsed * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Allow checks whether a request for the given key should be admitted.
func (kl *KeyedLimiter) Allow(key string) bool {
	return kl.getBucket(key).allow()
}

// Stop cleans up all expiration timers.
func (kl *KeyedLimiter) Stop() {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	for _, b := range kl.buckets {
		if b.timer != nil {
			b.timer.Stop()
		}
	}
}

// Common presets.

func OnceInSecond() *KeyedLimiter { return New(1, 1, time.Hour) }
func OnceInMinute() *KeyedLimiter { return New(1.0/60.0, 1, time.Hour) }
func Rps10() *KeyedLimiter        { return New(10, 10, time.Hour) }
func Rps100() *KeyedLimiter       { return New(100, 100, time.Hour) }
