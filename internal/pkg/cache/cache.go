// Package cache provides a small in-process TTL cache. It replaces a
// distributed cache for data that is cheap to rebuild and only needs to
// be fresh within a handful of seconds, such as a rendered seat map.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// TTLCache is a mutex-guarded map with lazy expiry on read. It holds no
// background goroutine; an expired entry is simply treated as a miss
// and overwritten on the next Set.
type TTLCache struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]entry
}

// New creates a cache whose entries expire ttl after being set.
func New(ttl time.Duration) *TTLCache {
	return &TTLCache{
		ttl: ttl,
		m:   make(map[string]entry),
	}
}

// Get returns the cached value for key and true, or false if the key is
// missing or has expired.
func (c *TTLCache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with the cache's configured TTL.
func (c *TTLCache) Set(key string, value any) {
	c.mu.Lock()
	c.m[key] = entry{value: value, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Invalidate removes key from the cache, if present.
func (c *TTLCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.m, key)
	c.mu.Unlock()
}
