package search

import "sync"

// RuntimeCache maps content ids to known runtimes in minutes. It lives for
// the process session, is append-only and never evicts.
type RuntimeCache struct {
	mu sync.RWMutex
	m  map[int]int
}

// NewRuntimeCache creates an empty runtime cache
func NewRuntimeCache() *RuntimeCache {
	return &RuntimeCache{m: make(map[int]int)}
}

// Get returns the known runtime for an id, if any
func (c *RuntimeCache) Get(id int) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	minutes, ok := c.m[id]
	return minutes, ok
}

// Set records the runtime for an id. Non-positive runtimes are ignored so
// an unknown stays unknown.
func (c *RuntimeCache) Set(id, minutes int) {
	if minutes <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[id] = minutes
}

// Len returns the number of cached runtimes
func (c *RuntimeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
