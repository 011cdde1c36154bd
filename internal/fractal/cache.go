// Package fractal implements Fibonacci-restricted multiplication as a sum
// of squared Fibonacci terms. This file contains the multiplier's result
// cache: a bounded LRU keyed by the exact ordered operand pair.
package fractal

import "container/list"

// resultCache is a fixed-capacity LRU cache for products. The underlying
// table is immutable, so cached results never need invalidation; only
// capacity pressure evicts entries. No third-party cache is pulled in for
// this: the structure is a textbook map+list pairing and the value type is
// package-private.
type resultCache struct {
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front = most recently used
}

type cacheEntry struct {
	key   string
	value string // decimal form of the product; decoded on the way out
}

// newResultCache creates a cache holding at most capacity entries. A zero
// or negative capacity disables caching entirely.
func newResultCache(capacity int) *resultCache {
	return &resultCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

// get returns the cached decimal product for key and marks it most
// recently used.
func (c *resultCache) get(key string) (string, bool) {
	el, ok := c.entries[key]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).value, true
}

// put stores the decimal product for key, evicting the least recently used
// entry when the cache is full.
func (c *resultCache) put(key, value string) {
	if c.capacity <= 0 {
		return
	}
	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).value = value
		c.order.MoveToFront(el)
		return
	}
	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, value: value})
}

// len reports the current number of cached entries.
func (c *resultCache) len() int { return c.order.Len() }
