// Package ratelimit implements the two per-instance request limiters:
// a fixed-window counter for public endpoints and a consecutive-attempt
// counter with a lockout for logins. Counters live in process memory
// and reset on restart; that best-effort scope is intentional and must
// not be "fixed" with shared storage.
//
// A fixed window resets at discrete boundaries, so a client can burst
// up to twice the per-window limit across a boundary. Known and
// accepted imprecision; the reference behavior is reproduced as is.
package ratelimit

import (
	"sync"
	"time"
)

// Result reports the outcome of a limiter check.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter int // seconds until the window resets; set on denial
}

type window struct {
	count   int
	resetAt time.Time
}

// Limiter counts requests per identifier within a fixed window.
type Limiter struct {
	mu          sync.Mutex
	windows     map[string]*window
	maxRequests int
	duration    time.Duration
}

// New creates a limiter allowing maxRequests per window duration.
func New(maxRequests int, duration time.Duration) *Limiter {
	return &Limiter{
		windows:     make(map[string]*window),
		maxRequests: maxRequests,
		duration:    duration,
	}
}

// Check consumes one request for id. The first request after a window
// lapses starts a fresh one.
func (l *Limiter) Check(id string) Result {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, exists := l.windows[id]
	if !exists || now.After(w.resetAt) {
		l.windows[id] = &window{count: 1, resetAt: now.Add(l.duration)}
		return Result{Allowed: true, Remaining: l.maxRequests - 1}
	}

	w.count++
	if w.count > l.maxRequests {
		retry := int(time.Until(w.resetAt).Seconds())
		if retry < 1 {
			retry = 1
		}
		return Result{Allowed: false, Remaining: 0, RetryAfter: retry}
	}

	return Result{Allowed: true, Remaining: l.maxRequests - w.count}
}

// Cleanup drops windows that lapsed before the cutoff. Optional; the
// maps are also bounded in practice by the client population.
func (l *Limiter) Cleanup(olderThan time.Duration) int {
	cutoff := time.Now().Add(-olderThan)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for id, w := range l.windows {
		if w.resetAt.Before(cutoff) {
			delete(l.windows, id)
			removed++
		}
	}
	return removed
}

// Size returns the number of tracked identifiers.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

type loginRecord struct {
	count        int
	blockedUntil time.Time
}

// LoginLimiter guards the login endpoint against brute force: it
// counts consecutive attempts per identifier and blocks for a fixed
// duration once the threshold is reached. A successful login resets
// the counter via Reset. Distinct from Limiter by design: different
// keys, thresholds and lockout lengths.
type LoginLimiter struct {
	mu          sync.Mutex
	records     map[string]*loginRecord
	maxAttempts int
	blockFor    time.Duration
}

// NewLogin creates a login limiter blocking for blockFor after
// maxAttempts consecutive attempts.
func NewLogin(maxAttempts int, blockFor time.Duration) *LoginLimiter {
	return &LoginLimiter{
		records:     make(map[string]*loginRecord),
		maxAttempts: maxAttempts,
		blockFor:    blockFor,
	}
}

// Check records one login attempt for id and reports whether it may
// proceed. Attempts are counted whether or not they later succeed; the
// caller clears the counter with Reset on success.
func (l *LoginLimiter) Check(id string) Result {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	r, exists := l.records[id]

	if exists && !r.blockedUntil.IsZero() && r.blockedUntil.After(now) {
		retry := int(time.Until(r.blockedUntil).Seconds())
		if retry < 1 {
			retry = 1
		}
		return Result{Allowed: false, RetryAfter: retry}
	}

	if !exists || (!r.blockedUntil.IsZero() && !r.blockedUntil.After(now)) {
		l.records[id] = &loginRecord{count: 1}
		return Result{Allowed: true, Remaining: l.maxAttempts - 1}
	}

	r.count++
	if r.count >= l.maxAttempts {
		r.blockedUntil = now.Add(l.blockFor)
		return Result{Allowed: false, RetryAfter: int(l.blockFor.Seconds())}
	}

	return Result{Allowed: true, Remaining: l.maxAttempts - r.count}
}

// Reset clears the attempt counter for id after a successful login.
func (l *LoginLimiter) Reset(id string) {
	l.mu.Lock()
	delete(l.records, id)
	l.mu.Unlock()
}

// Size returns the number of tracked identifiers.
func (l *LoginLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
