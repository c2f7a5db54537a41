package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Close()

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Close()

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	// Другой клиент не задет
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl := NewRateLimiter(1, 50*time.Millisecond)
	defer rl.Close()

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.Allow("10.0.0.1"))
}
