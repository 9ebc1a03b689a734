package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucket_AllowsUpToCapacity(t *testing.T) {
	bucket := newTokenBucket(3, 0)

	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow())
}

func TestTokenBucket_Refills(t *testing.T) {
	// 1000 tokens/sec so the refill happens within the test.
	bucket := newTokenBucket(1, 1000)

	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow())

	time.Sleep(5 * time.Millisecond)
	assert.True(t, bucket.allow())
}

func TestTokenBucket_RetryAfter(t *testing.T) {
	bucket := newTokenBucket(1, 2) // 1 token every 500ms

	assert.True(t, bucket.allow())
	retry := bucket.retryAfter()

	assert.Greater(t, retry, time.Duration(0))
	assert.LessOrEqual(t, retry, 500*time.Millisecond)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false, Limit: 1, Window: time.Minute, Burst: 1})

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("client", "/stats")
		assert.True(t, allowed)
	}
}

func TestLimiter_HealthExempt(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, Limit: 1, Window: time.Minute, Burst: 1})

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("client", "/health")
		assert.True(t, allowed)
	}
}

func TestLimiter_EnforcesBurst(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, Limit: 60, Window: time.Minute, Burst: 2})

	allowed, _ := limiter.Allow("client", "/stats")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("client", "/stats")
	assert.True(t, allowed)

	allowed, info := limiter.Allow("client", "/stats")
	assert.False(t, allowed)
	assert.Equal(t, 60, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_PerClientBuckets(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, Limit: 60, Window: time.Minute, Burst: 1})

	allowed, _ := limiter.Allow("client-a", "/stats")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("client-a", "/stats")
	assert.False(t, allowed)

	// A different client has its own bucket.
	allowed, _ = limiter.Allow("client-b", "/stats")
	assert.True(t, allowed)
}

func TestNewLimiter_NilConfigUsesDefaults(t *testing.T) {
	limiter := NewLimiter(nil)

	allowed, _ := limiter.Allow("client", "/stats")
	assert.True(t, allowed)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 120, cfg.Limit)
	assert.Equal(t, time.Minute, cfg.Window)
	assert.Equal(t, 20, cfg.Burst)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "30")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 30, cfg.Limit)
	assert.Equal(t, 30*time.Second, cfg.Window)
	assert.Equal(t, 5, cfg.Burst)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "not-a-number")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "soon")

	cfg := LoadConfig()

	assert.Equal(t, 120, cfg.Limit)
	assert.Equal(t, time.Minute, cfg.Window)
}
