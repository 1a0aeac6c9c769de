package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowBurstPerKey(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("me@x.com"), "request %d", i)
	}
	assert.False(t, l.Allow("me@x.com"))

	assert.True(t, l.Allow("you@x.com"))
}

func TestZeroRequestsDoesNotPanic(t *testing.T) {
	l := NewInMemoryLimiter(0, time.Second, 1)
	assert.True(t, l.Allow("a"))
}
