package list

import (
	"errors"
	"fmt"

	"github.com/IvanBrykalov/genlru/arena"
)

// ErrEmptyList is returned by pops on an empty list.
var ErrEmptyList = errors.New("list: empty")

// ErrBrokenLink is returned when a Link does not identify a live node.
// Under correct bookkeeping by callers it should be unreachable, but a stale
// or foreign Link must fail as a typed result, never corrupt the chain.
var ErrBrokenLink = errors.New("list: broken link")

// Link identifies a node in a List. The zero Link points at nothing and
// plays the role of a nil pointer in the chain.
type Link struct {
	index arena.Index
}

// IsZero reports whether l points at nothing.
func (l Link) IsZero() bool { return l.index.IsZero() }

// node is one list element as stored in the arena.
type node[T any] struct {
	value T
	next  Link
	prev  Link
}

// List is an arena-backed doubly linked deque. The zero List is not ready
// for use; construct with New or WithCapacity.
type List[T any] struct {
	arena *arena.Arena[node[T]]
	head  Link
	tail  Link
	size  int
}

// New returns an empty list with no capacity; every push fails until
// Reserve is called.
func New[T any]() *List[T] {
	return &List[T]{arena: arena.New[node[T]]()}
}

// WithCapacity returns an empty list over an arena sized for capacity nodes.
func WithCapacity[T any](capacity int) *List[T] {
	return &List[T]{arena: arena.WithCapacity[node[T]](capacity)}
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no nodes.
func (l *List[T]) IsEmpty() bool { return l.head.IsZero() }

// IsFull reports whether the list has used every slot of its arena.
func (l *List[T]) IsFull() bool { return l.size == l.arena.Capacity() }

// Capacity returns the node capacity of the underlying arena.
func (l *List[T]) Capacity() int { return l.arena.Capacity() }

// Reserve grows the underlying arena by additional node slots.
// Existing Links remain valid.
func (l *List[T]) Reserve(additional int) { l.arena.Reserve(additional) }

// Front returns the Link of the head node, or false if the list is empty.
func (l *List[T]) Front() (Link, bool) { return l.head, !l.head.IsZero() }

// Back returns the Link of the tail node, or false if the list is empty.
func (l *List[T]) Back() (Link, bool) { return l.tail, !l.tail.IsZero() }

// Get returns a pointer to the value of the node identified by link, or
// (nil, false) when link no longer identifies a live node.
func (l *List[T]) Get(link Link) (*T, bool) {
	n, ok := l.node(link)
	if !ok {
		return nil, false
	}
	return &n.value, true
}

// node resolves a Link through the arena; the zero Link resolves to nothing.
func (l *List[T]) node(link Link) (*node[T], bool) {
	if link.IsZero() {
		return nil, false
	}
	return l.arena.Get(link.index)
}

// PushFront inserts value as the new head and returns its Link.
// Fails with the arena's ErrOutOfMemory when the list is full.
func (l *List[T]) PushFront(value T) (Link, error) {
	index, err := l.arena.Insert(node[T]{value: value, next: l.head})
	if err != nil {
		return Link{}, fmt.Errorf("list: push front: %w", err)
	}
	link := Link{index: index}
	if h, ok := l.node(l.head); ok {
		h.prev = link
	} else {
		l.tail = link // first node is both ends
	}
	l.head = link
	l.size++
	return link, nil
}

// PushBack inserts value as the new tail and returns its Link.
// Fails with the arena's ErrOutOfMemory when the list is full.
func (l *List[T]) PushBack(value T) (Link, error) {
	index, err := l.arena.Insert(node[T]{value: value, prev: l.tail})
	if err != nil {
		return Link{}, fmt.Errorf("list: push back: %w", err)
	}
	link := Link{index: index}
	if t, ok := l.node(l.tail); ok {
		t.next = link
	} else {
		l.head = link
	}
	l.tail = link
	l.size++
	return link, nil
}

// PopFront removes and returns the head value. Fails with ErrEmptyList on
// an empty list.
func (l *List[T]) PopFront() (T, error) {
	var zero T
	if l.head.IsZero() {
		return zero, ErrEmptyList
	}
	n, err := l.arena.Remove(l.head.index)
	if err != nil {
		return zero, ErrBrokenLink
	}
	l.head = n.next
	if h, ok := l.node(l.head); ok {
		h.prev = Link{}
	} else {
		l.tail = Link{} // removed the sole node
	}
	l.size--
	return n.value, nil
}

// PopBack removes and returns the tail value. Fails with ErrEmptyList on
// an empty list.
func (l *List[T]) PopBack() (T, error) {
	var zero T
	if l.tail.IsZero() {
		return zero, ErrEmptyList
	}
	n, err := l.arena.Remove(l.tail.index)
	if err != nil {
		return zero, ErrBrokenLink
	}
	l.tail = n.prev
	if t, ok := l.node(l.tail); ok {
		t.next = Link{}
	} else {
		l.head = Link{}
	}
	l.size--
	return n.value, nil
}

// PeekFront returns a pointer to the head value without removing it,
// or false if the list is empty.
func (l *List[T]) PeekFront() (*T, bool) { return l.Get(l.head) }

// PeekBack returns a pointer to the tail value without removing it,
// or false if the list is empty.
func (l *List[T]) PeekBack() (*T, bool) { return l.Get(l.tail) }

// Remove detaches the node identified by link and returns its value,
// patching its neighbors (or the list ends) around it. Fails with
// ErrBrokenLink when link does not identify a live node.
func (l *List[T]) Remove(link Link) (T, error) {
	var zero T
	if link == l.head {
		return l.PopFront()
	}
	if link == l.tail {
		return l.PopBack()
	}
	// Interior node: both neighbors exist.
	n, err := l.arena.Remove(link.index)
	if err != nil {
		return zero, ErrBrokenLink
	}
	if p, ok := l.node(n.prev); ok {
		p.next = n.next
	}
	if s, ok := l.node(n.next); ok {
		s.prev = n.prev
	}
	l.size--
	return n.value, nil
}

// MoveToFront relinks the node identified by link to the head position
// without reallocating it, so the Link keeps its identity. Fails with
// ErrBrokenLink when link does not identify a live node.
func (l *List[T]) MoveToFront(link Link) error {
	if link == l.head {
		// Already at the front; still refuse stale handles.
		if _, ok := l.node(link); !ok {
			return ErrBrokenLink
		}
		return nil
	}
	n, ok := l.node(link)
	if !ok {
		return ErrBrokenLink
	}

	// Detach. link is not the head, so n.prev is live.
	prev, next := n.prev, n.next
	if p, ok := l.node(prev); ok {
		p.next = next
	}
	if s, ok := l.node(next); ok {
		s.prev = prev
	} else {
		l.tail = prev // link was the tail
	}

	// Reattach at the head.
	n.prev = Link{}
	n.next = l.head
	if h, ok := l.node(l.head); ok {
		h.prev = link
	}
	l.head = link
	return nil
}

// Iter is a lazy head-to-tail traversal over a List. It assumes no
// structural mutation while in progress.
type Iter[T any] struct {
	list    *List[T]
	current Link
}

// Iter returns a fresh traversal starting at the head. Each call yields an
// independent, restartable iterator.
func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{list: l, current: l.head}
}

// Next returns a pointer to the next value, or false when the traversal is
// exhausted.
func (it *Iter[T]) Next() (*T, bool) {
	n, ok := it.list.node(it.current)
	if !ok {
		return nil, false
	}
	it.current = n.next
	return &n.value, true
}
