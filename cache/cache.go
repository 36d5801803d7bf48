package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/IvanBrykalov/genlru/list"
)

// ErrCacheMiss is the ordinary "key not present" outcome.
var ErrCacheMiss = errors.New("cache: miss")

// ErrCacheBroken signals that the cache's internal bijection between the key
// map and the recency list has been violated, or that the cache can never
// admit an entry (capacity 0). It wraps the underlying list error; a cache
// returning it stays memory-safe but should not be trusted for further Sets.
var ErrCacheBroken = errors.New("cache: broken")

// ErrNoLoader is returned by GetOrLoad when no Loader was configured in Options.
var ErrNoLoader = errors.New("cache: no Loader provided")

// block is one cache entry as stored in the recency list.
type block[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a fixed-capacity LRU cache. Not safe for concurrent use; the
// caller owns synchronization if an instance is shared.
type Cache[K comparable, V any] struct {
	blocks *list.List[block[K, V]] // head=MRU, tail=LRU
	refs   map[K]list.Link
	opt    Options[K, V]
}

// New constructs a cache with the provided Options. A Capacity of 0 yields a
// deliberately degenerate cache: Get always misses and every Set fails with
// ErrCacheBroken. Negative capacities are treated as 0. Nil Metrics defaults
// to NoopMetrics.
func New[K comparable, V any](opt Options[K, V]) *Cache[K, V] {
	if opt.Capacity < 0 {
		opt.Capacity = 0
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	return &Cache[K, V]{
		blocks: list.WithCapacity[block[K, V]](opt.Capacity),
		refs:   make(map[K]list.Link, opt.Capacity),
		opt:    opt,
	}
}

// broken tags err as a structural cache failure. errors.Is sees both
// ErrCacheBroken and the underlying list/arena sentinel.
func broken(err error) error {
	return fmt.Errorf("%w: %w", ErrCacheBroken, err)
}

// Get returns a pointer to the value for k and promotes the entry to MRU.
// A missing key returns ErrCacheMiss. A key whose recorded link the list no
// longer recognizes returns ErrCacheBroken: that is a bookkeeping bug, never
// a normal miss.
func (c *Cache[K, V]) Get(k K) (*V, error) {
	link, ok := c.refs[k]
	if !ok {
		c.opt.Metrics.Miss()
		return nil, ErrCacheMiss
	}
	if err := c.blocks.MoveToFront(link); err != nil {
		return nil, broken(err)
	}
	b, ok := c.blocks.Get(link)
	if !ok {
		return nil, broken(list.ErrBrokenLink)
	}
	c.opt.Metrics.Hit()
	return &b.value, nil
}

// Set inserts or updates k→v. An existing key is overwritten in place and
// promoted to MRU. A new key evicts the LRU entry first if the cache is
// full, then lands at MRU. With capacity 0 every Set fails with
// ErrCacheBroken: there is no slot that could ever hold the entry.
func (c *Cache[K, V]) Set(k K, v V) error {
	if link, ok := c.refs[k]; ok {
		if err := c.blocks.MoveToFront(link); err != nil {
			return broken(err)
		}
		b, ok := c.blocks.Get(link)
		if !ok {
			return broken(list.ErrBrokenLink)
		}
		b.value = v
		return nil
	}

	// New key: make room first so the list can never exceed capacity.
	for c.blocks.IsFull() {
		b, err := c.blocks.PopBack()
		if err != nil {
			return broken(err)
		}
		delete(c.refs, b.key)
		c.opt.Metrics.Evict()
		if cb := c.opt.OnEvict; cb != nil {
			cb(b.key, b.value)
		}
	}

	link, err := c.blocks.PushFront(block[K, V]{key: k, value: v})
	if err != nil {
		return broken(err)
	}
	c.refs[k] = link
	c.opt.Metrics.Size(c.blocks.Len())
	return nil
}

// Remove deletes k and returns its value. A missing key returns ErrCacheMiss.
func (c *Cache[K, V]) Remove(k K) (V, error) {
	var zero V
	link, ok := c.refs[k]
	if !ok {
		return zero, ErrCacheMiss
	}
	delete(c.refs, k)
	b, err := c.blocks.Remove(link)
	if err != nil {
		return zero, broken(err)
	}
	c.opt.Metrics.Size(c.blocks.Len())
	return b.value, nil
}

// Peek returns a pointer to the value for k without promoting the entry.
func (c *Cache[K, V]) Peek(k K) (*V, bool) {
	link, ok := c.refs[k]
	if !ok {
		return nil, false
	}
	b, ok := c.blocks.Get(link)
	if !ok {
		return nil, false
	}
	return &b.value, true
}

// Contains reports whether k is resident, without promoting the entry.
func (c *Cache[K, V]) Contains(k K) bool {
	_, ok := c.refs[k]
	return ok
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int { return c.blocks.Len() }

// Cap returns the capacity set at construction.
func (c *Cache[K, V]) Cap() int { return c.blocks.Capacity() }

// GetOrLoad returns the value for k, filling a miss via Options.Loader and
// caching the result. The load is synchronous and runs in the caller's
// goroutine; ctx is passed through to the Loader. Returns ErrNoLoader when
// no Loader is configured.
func (c *Cache[K, V]) GetOrLoad(ctx context.Context, k K) (V, error) {
	var zero V
	if v, err := c.Get(k); err == nil {
		return *v, nil
	} else if !errors.Is(err, ErrCacheMiss) {
		return zero, err
	}
	if c.opt.Loader == nil {
		return zero, ErrNoLoader
	}
	v, err := c.opt.Loader(ctx, k)
	if err != nil {
		return zero, err
	}
	if err := c.Set(k, v); err != nil {
		return zero, err
	}
	return v, nil
}

// KeyIter traverses resident keys from MRU to LRU. It assumes no cache
// mutation while in progress.
type KeyIter[K comparable, V any] struct {
	it *list.Iter[block[K, V]]
}

// Keys returns a fresh MRU-to-LRU key traversal.
func (c *Cache[K, V]) Keys() *KeyIter[K, V] {
	return &KeyIter[K, V]{it: c.blocks.Iter()}
}

// Next returns the next key, or false when the traversal is exhausted.
func (it *KeyIter[K, V]) Next() (K, bool) {
	b, ok := it.it.Next()
	if !ok {
		var zero K
		return zero, false
	}
	return b.key, true
}
