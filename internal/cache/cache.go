// Package cache implements a small in-memory cache with TTL expiry.
//
// It is used as a read-through cache in front of the budget store so that
// repeated dashboard reads for the same month do not hit the database. The
// cache must be updated or invalidated on every successful write, it never
// serves values that diverge from the store.
package cache

import (
	"sync"
	"time"
)

// Cache is a generic key-value cache.
type Cache[T any] interface {
	// Get retrieves a value from the cache
	Get(key string) (T, bool)

	// Set stores a value in the cache
	Set(key string, data T)

	// Delete removes a key from the cache
	Delete(key string)

	// Size returns the current number of items in the cache
	Size() int
}

type item[T any] struct {
	data      T
	expiresAt time.Time
}

// Memory is an in-memory Cache implementation with TTL expiry.
type Memory[T any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]item[T]
}

// NewMemory creates a new in-memory cache. Entries expire after the TTL.
func NewMemory[T any](ttl time.Duration) *Memory[T] {
	return &Memory[T]{
		ttl:   ttl,
		items: make(map[string]item[T]),
	}
}

// Get retrieves a value from the cache.
func (c *Memory[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	entry, exists := c.items[key]
	if !exists {
		return zero, false
	}

	if time.Now().After(entry.expiresAt) {
		return zero, false
	}

	return entry.data, true
}

// Set stores a value in the cache.
func (c *Memory[T]) Set(key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = item[T]{
		data:      data,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Delete removes a key from the cache.
func (c *Memory[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// Size returns the current number of items in the cache.
func (c *Memory[T]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// CleanExpired removes all expired entries and returns the count of removed
// items.
func (c *Memory[T]) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0

	for key, entry := range c.items {
		if now.After(entry.expiresAt) {
			delete(c.items, key)
			removed++
		}
	}

	return removed
}
