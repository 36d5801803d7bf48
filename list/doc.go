// Package list implements a doubly linked deque whose nodes live in a
// generational arena. Links between nodes are arena handles, not pointers:
// every traversal step is validated, so a stale Link surfaces as a checkable
// "broken link" instead of a dangling dereference.
//
// The list offers O(1) push/pop/peek on both ends, O(1) removal and
// promotion of an arbitrary node by Link, and a restartable head-to-tail
// iterator. Capacity is bounded by the underlying arena; pushes fail with
// an out-of-memory error once it is full, and Reserve grows it explicitly.
//
// Not safe for concurrent use.
package list
