package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowWithinCapacity(t *testing.T) {
	kl := New(1, 3, time.Hour)
	defer kl.Stop()

	assert.True(t, kl.Allow("u1"))
	assert.True(t, kl.Allow("u1"))
	assert.True(t, kl.Allow("u1"))
	assert.False(t, kl.Allow("u1"), "burst capacity exhausted")
}

func TestKeysAreIndependent(t *testing.T) {
	kl := New(1, 1, time.Hour)
	defer kl.Stop()

	assert.True(t, kl.Allow("u1"))
	assert.False(t, kl.Allow("u1"))
	assert.True(t, kl.Allow("u2"), "a different key gets its own bucket")
}

func TestRefill(t *testing.T) {
	// 100 tokens/sec so the refill happens within a short sleep
	kl := New(100, 1, time.Hour)
	defer kl.Stop()

	assert.True(t, kl.Allow("u1"))
	assert.False(t, kl.Allow("u1"))

	time.Sleep(50 * time.Millisecond)
	assert.True(t, kl.Allow("u1"), "bucket should refill over time")
}

func TestBucketExpiration(t *testing.T) {
	kl := New(1, 1, 20*time.Millisecond)
	defer kl.Stop()

	assert.True(t, kl.Allow("u1"))
	time.Sleep(60 * time.Millisecond)

	kl.mu.RLock()
	_, exists := kl.buckets["u1"]
	kl.mu.RUnlock()
	assert.False(t, exists, "idle bucket should expire")
}
