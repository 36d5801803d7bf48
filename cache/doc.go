// Package cache provides a fixed-capacity, generic LRU cache built on a
// generational-arena linked list. The internal structure uses no raw
// pointers: nodes reference each other through validated arena handles, so
// bookkeeping bugs surface as typed errors instead of memory corruption.
//
// Design
//
//   - Storage: a map[K]list.Link for O(1) lookup plus a doubly linked list
//     of (key, value) blocks ordered head=MRU to tail=LRU. Map and list are
//     kept in bijection: every key resolves to a live block and every block's
//     key points back at it.
//
//   - Recency: a successful Get or Set of an existing key relinks the block
//     to the head in place. Promotion never reallocates the node, so the
//     recorded Link keeps its identity.
//
//   - Eviction: Set of a new key while full removes the tail (LRU) block and
//     its map entry before admitting the new block at the head. Capacity is
//     a hard ceiling; the cache never grows its list to avoid an eviction.
//
//   - Errors: ErrCacheMiss is the ordinary "not found" outcome. ErrCacheBroken
//     wraps an underlying list error and signals that the map/list bijection
//     (or the capacity machinery) is no longer trustworthy; it should never
//     occur under correct operation, with one documented exception: a cache
//     constructed with capacity 0 fails every Set this way.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     NoopMetrics is the default; plug the metrics/prom adapter to export
//     Prometheus counters. Options.OnEvict observes capacity evictions.
//
// Basic usage
//
//	c := cache.New[string, int](cache.Options[string, int]{Capacity: 1024})
//	_ = c.Set("a", 1)
//	if v, err := c.Get("a"); err == nil {
//	    _ = *v // use value
//	}
//	c.Remove("a")
//
// With a loader
//
//	c := cache.New[string, string](cache.Options[string, string]{
//	    Capacity: 1024,
//	    Loader: func(ctx context.Context, k string) (string, error) {
//	        return "v:" + k, nil // e.g. fetch from DB
//	    },
//	})
//	v, err := c.GetOrLoad(context.Background(), "key")
//
// Thread-safety & complexity
//
// The cache is a single-threaded data structure: no internal locking is
// performed and concurrent use of one instance is undefined. Wrap it in a
// mutex if you need sharing. Distinct instances are fully independent.
// All operations are O(1) expected time: one map access plus a constant
// number of handle-validated link fixes.
package cache
