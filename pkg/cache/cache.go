package cache

import (
	"sync"
	"time"
)

// Kind partitions cache entries by the type of data they hold, so that
// write operations can invalidate a whole family of entries without
// matching key substrings.
type Kind string

const (
	// KindDirectory holds combined directory query results.
	KindDirectory Kind = "directory"
	// KindBarber holds individual barber profiles.
	KindBarber Kind = "barber"
	// KindBookingList holds user and barber booking lists.
	KindBookingList Kind = "booking_list"
)

// Key identifies a cached entry. Params encodes the request parameters
// the entry was produced for (already serialized by the caller).
type Key struct {
	Kind   Kind
	Params string
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache is an in-memory TTL cache. Entries expire after the TTL supplied
// at construction and are pruned lazily, when a lookup finds them stale.
// There is no size bound.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[Key]entry
	now     func() time.Time
}

// New creates a cache with the given TTL.
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[Key]entry),
		now:     time.Now,
	}
}

// Get returns the cached value for key, or false if absent or expired.
// Expired entries are deleted on lookup.
func (c *Cache) Get(key Key) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have refreshed it.
		if cur, still := c.entries[key]; still && c.now().After(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

// Set stores value under key with the cache's TTL.
func (c *Cache) Set(key Key, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Invalidate removes every entry of the given kind.
func (c *Cache) Invalidate(kind Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if key.Kind == kind {
			delete(c.entries, key)
		}
	}
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Key]entry)
}

// Len returns the number of stored entries, including not-yet-pruned
// expired ones.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
