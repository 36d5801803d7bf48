// Package arena provides a generational slot arena: a growable pool of
// fixed-position slots addressed by validated handles instead of pointers.
//
// Design
//
//   - Storage: slots live in a single slice that only ever grows (Reserve
//     appends, nothing relocates). A handle therefore stays pinned to the
//     same slot for the slot's whole occupancy.
//
//   - Handles: an Index carries the slot position plus the generation the
//     caller expects to find there. Every dereference checks both; a stale
//     Index is an ordinary "not found", never a dangling access.
//
//   - Generations: each slot keeps its own counter, bumped when the slot is
//     freed. A handle taken before a Remove can never match again, even
//     after the slot is recycled for a new value. Counters start at 1 so
//     the zero Index matches nothing.
//
//   - Recycling: free slots form a LIFO free list threaded through the
//     slots themselves. Insert pops the head, Remove pushes it back, both
//     O(1). The arena never grows on Insert; when the free list is empty,
//     Insert reports ErrOutOfMemory and the caller decides whether to
//     Reserve and retry.
//
// The arena is not safe for concurrent use; callers own synchronization.
package arena
