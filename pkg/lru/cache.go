// Package lru provides a fixed-capacity, generically typed LRU cache.
package lru

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the capacity used by NewDefault.
const DefaultCapacity = 100

// ErrInvalidConfiguration is returned by New when the capacity is not positive.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Slots 0 and 1 of the arena are the list sentinels. They never hold a
// real entry and are never stored in the index.
const (
	front handle = 0
	back  handle = 1
)

type handle int

type entry[K comparable, V any] struct {
	key   K
	value V
	prev  handle
	next  handle
}

// Cache is an LRU cache holding at most a fixed number of keys.
// Get and Put both mark a key as most recently used. A Put of a new key on a
// full cache first evicts the least recently used key.
//
// Entries live in an arena and link to each other by slot index, ordered
// from least recently used (front) to most recently used (back).
//
// This type is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	capacity int
	index    map[K]handle
	arena    []entry[K, V]
}

// New creates a cache that holds up to capacity keys.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfiguration, capacity)
	}

	arena := make([]entry[K, V], 2)
	arena[front].next = back
	arena[back].prev = front

	return &Cache[K, V]{
		capacity: capacity,
		index:    make(map[K]handle),
		arena:    arena,
	}, nil
}

// NewDefault creates a cache with DefaultCapacity.
func NewDefault[K comparable, V any]() *Cache[K, V] {
	c, _ := New[K, V](DefaultCapacity)
	return c
}

// Get returns the value stored for key and marks it most recently used.
// A miss returns the zero value and false and leaves the cache untouched.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	h, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.unlink(h)
	c.appendBack(h)
	return c.arena[h].value, true
}

// Put stores value for key and marks it most recently used.
// Updating an existing key never evicts.
func (c *Cache[K, V]) Put(key K, value V) {
	if h, ok := c.index[key]; ok {
		c.arena[h].value = value
		c.unlink(h)
		c.appendBack(h)
		return
	}

	var h handle
	if len(c.index) == c.capacity {
		h = c.evictFront()
	} else {
		c.arena = append(c.arena, entry[K, V]{})
		h = handle(len(c.arena) - 1)
	}
	c.arena[h] = entry[K, V]{key: key, value: value}
	c.appendBack(h)
	c.index[key] = h
}

// Contains reports whether key is cached without changing its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Oldest returns the least recently used key, which is the key the next
// Put of a new key would evict once the cache is full.
func (c *Cache[K, V]) Oldest() (K, bool) {
	h := c.arena[front].next
	if h == back {
		var zero K
		return zero, false
	}
	return c.arena[h].key, true
}

// Keys returns the cached keys from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.index))
	for h := c.arena[front].next; h != back; h = c.arena[h].next {
		keys = append(keys, c.arena[h].key)
	}
	return keys
}

// Len returns the number of cached keys.
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// Capacity returns the maximum number of keys the cache holds.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// unlink splices h out of the list by joining its neighbours.
func (c *Cache[K, V]) unlink(h handle) {
	prev, next := c.arena[h].prev, c.arena[h].next
	c.arena[prev].next = next
	c.arena[next].prev = prev
}

// appendBack links h in immediately before the back sentinel.
func (c *Cache[K, V]) appendBack(h handle) {
	last := c.arena[back].prev
	c.arena[h].prev = last
	c.arena[h].next = back
	c.arena[last].next = h
	c.arena[back].prev = h
}

// evictFront removes the least recently used entry and returns its slot
// for reuse. The cache must not be empty.
func (c *Cache[K, V]) evictFront() handle {
	h := c.arena[front].next
	c.unlink(h)
	delete(c.index, c.arena[h].key)
	c.arena[h] = entry[K, V]{}
	return h
}
