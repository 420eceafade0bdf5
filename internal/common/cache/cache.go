// Package cache provides a bounded in-memory TTL cache. State is
// per-process and intentionally lost on restart: every cached value is
// cheap to re-derive, so durability is traded for simplicity.
package cache

import (
	"math/rand"
	"sync"
	"time"
)

// sweepProbability bounds sweep overhead: Set triggers a sweep on
// roughly one write in ten instead of every write.
const sweepProbability = 0.1

type entry struct {
	value      interface{}
	expiresAt  time.Time
	insertedAt time.Time
}

func (e *entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// Stats tracks cache performance counters.
type Stats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Sets    int64 `json:"sets"`
	Expires int64 `json:"expires"`
	Evicted int64 `json:"evicted"`
}

// Cache is a TTL map with a size ceiling. Expired entries are skipped
// on read and removed by Sweep; when the map grows past maxEntries,
// Sweep drops the oldest half by insertion order. That is deliberately
// not an LRU: insertion age, not access recency, decides eviction.
type Cache struct {
	mu         sync.Mutex
	data       map[string]*entry
	order      []string // insertion order, may contain stale keys
	maxEntries int
	stats      Stats
}

// New creates a cache holding at most maxEntries live entries.
func New(maxEntries int) *Cache {
	return &Cache{
		data:       make(map[string]*entry),
		maxEntries: maxEntries,
	}
}

// Get returns the value for key if present and not expired. A stale
// entry is deleted on sight and reported as a miss.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, exists := c.data[key]
	if !exists {
		c.stats.Misses++
		return nil, false
	}

	if e.expired(time.Now()) {
		delete(c.data, key)
		c.dropOrderLocked(key)
		c.stats.Expires++
		c.stats.Misses++
		return nil, false
	}

	c.stats.Hits++
	return e.value, true
}

// Set inserts or replaces the value under key. Replacement creates a
// fresh entry; nothing is mutated in place. A sweep runs with a small
// probability, and always when the map is over its ceiling.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	now := time.Now()

	c.mu.Lock()
	if _, exists := c.data[key]; !exists {
		c.order = append(c.order, key)
	}
	c.data[key] = &entry{
		value:      value,
		expiresAt:  now.Add(ttl),
		insertedAt: now,
	}
	c.stats.Sets++

	sweep := len(c.data) > c.maxEntries || rand.Float64() < sweepProbability
	if sweep {
		c.sweepLocked(now)
	}
	c.mu.Unlock()
}

// Sweep removes expired entries, then, if the cache is still over its
// ceiling, the oldest half by insertion order. Returns the number of
// entries removed. Exposed so tests and health checks can trigger it
// deterministically.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sweepLocked(time.Now())
}

func (c *Cache) sweepLocked(now time.Time) int {
	removed := 0

	for key, e := range c.data {
		if e.expired(now) {
			delete(c.data, key)
			c.stats.Expires++
			removed++
		}
	}

	// Compact the insertion log down to live keys.
	live := c.order[:0]
	for _, key := range c.order {
		if _, exists := c.data[key]; exists {
			live = append(live, key)
		}
	}
	c.order = live

	if len(c.data) > c.maxEntries {
		drop := len(c.order) / 2
		for _, key := range c.order[:drop] {
			delete(c.data, key)
			c.stats.Evicted++
			removed++
		}
		c.order = append([]string(nil), c.order[drop:]...)
	}

	return removed
}

// Delete removes a key if present.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.data, key)
	c.dropOrderLocked(key)
	c.mu.Unlock()
}

// dropOrderLocked removes key's slot from the insertion log. Every
// removal from data must come through here (or through sweepLocked's
// compaction), otherwise a re-Set key would hold two slots and inflate
// the oldest-half eviction window.
func (c *Cache) dropOrderLocked(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// Size returns the number of stored entries, expired ones included
// until the next sweep touches them.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
