package cache

import "context"

// Options configures the cache. Zero values are safe; defaults are applied
// in New():
//   - nil Metrics => NoopMetrics
//   - Capacity 0  => degenerate cache (constructs fine, every Set fails)
type Options[K comparable, V any] struct {
	// Capacity is the entry count ceiling, fixed at construction.
	// The cache always evicts before it would exceed it.
	Capacity int

	// Loader fetches a value on cache miss. Used by GetOrLoad; nil disables it.
	// The load runs synchronously in the caller's goroutine.
	Loader func(ctx context.Context, k K) (V, error)

	// OnEvict is called for every capacity eviction, after the entry has left
	// both the list and the map. Keep callbacks lightweight.
	OnEvict func(k K, v V)

	// Metrics receives Hit/Miss/Evict/Size signals. Nil => NoopMetrics.
	Metrics Metrics
}
