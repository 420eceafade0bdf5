package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_AllowsUpToMax(t *testing.T) {
	l := New(3, time.Minute)

	r1 := l.Check("1.2.3.4")
	r2 := l.Check("1.2.3.4")
	r3 := l.Check("1.2.3.4")
	r4 := l.Check("1.2.3.4")

	assert.True(t, r1.Allowed)
	assert.Equal(t, 2, r1.Remaining)
	assert.True(t, r2.Allowed)
	assert.Equal(t, 1, r2.Remaining)
	assert.True(t, r3.Allowed)
	assert.Equal(t, 0, r3.Remaining)

	assert.False(t, r4.Allowed)
	assert.Greater(t, r4.RetryAfter, 0)
}

func TestLimiter_IndependentIdentifiers(t *testing.T) {
	l := New(1, time.Minute)

	assert.True(t, l.Check("a").Allowed)
	assert.False(t, l.Check("a").Allowed)
	assert.True(t, l.Check("b").Allowed)
}

func TestLimiter_WindowReset(t *testing.T) {
	l := New(2, 30*time.Millisecond)

	l.Check("ip")
	l.Check("ip")
	assert.False(t, l.Check("ip").Allowed)

	time.Sleep(40 * time.Millisecond)

	r := l.Check("ip")
	assert.True(t, r.Allowed)
	assert.Equal(t, 1, r.Remaining) // fresh window, count back to 1
}

func TestLimiter_BoundaryBurstIsAccepted(t *testing.T) {
	// Fixed windows admit up to 2x the limit straddling a boundary.
	// Pinned here so nobody "fixes" it into a sliding window.
	l := New(2, 30*time.Millisecond)

	assert.True(t, l.Check("ip").Allowed)
	assert.True(t, l.Check("ip").Allowed)

	time.Sleep(40 * time.Millisecond)

	assert.True(t, l.Check("ip").Allowed)
	assert.True(t, l.Check("ip").Allowed)
}

func TestLimiter_Cleanup(t *testing.T) {
	l := New(5, 10*time.Millisecond)

	l.Check("old")
	time.Sleep(30 * time.Millisecond)
	l.Check("new")

	removed := l.Cleanup(15 * time.Millisecond)

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, l.Size())
}

func TestLoginLimiter_BlocksAfterMaxAttempts(t *testing.T) {
	l := NewLogin(5, 15*time.Minute)

	for i := 0; i < 4; i++ {
		assert.True(t, l.Check("ip").Allowed, "attempt %d", i+1)
	}

	r := l.Check("ip")
	assert.False(t, r.Allowed)
	assert.Greater(t, r.RetryAfter, 0)
	assert.LessOrEqual(t, r.RetryAfter, 900)

	// Still blocked on the next attempt.
	assert.False(t, l.Check("ip").Allowed)
}

func TestLoginLimiter_ResetOnSuccess(t *testing.T) {
	l := NewLogin(5, 15*time.Minute)

	l.Check("ip")
	l.Check("ip")
	l.Reset("ip")

	r := l.Check("ip")
	assert.True(t, r.Allowed)
	assert.Equal(t, 4, r.Remaining)
}

func TestLoginLimiter_BlockExpires(t *testing.T) {
	l := NewLogin(2, 20*time.Millisecond)

	l.Check("ip")
	assert.False(t, l.Check("ip").Allowed)

	time.Sleep(30 * time.Millisecond)

	r := l.Check("ip")
	assert.True(t, r.Allowed)
	assert.Equal(t, 1, r.Remaining)
}
