package arena

import "errors"

// ErrOutOfMemory is returned by Insert when no free slot is available.
// The caller may Reserve additional capacity and retry.
var ErrOutOfMemory = errors.New("arena: out of memory")

// ErrInvalidIndex is returned by Remove when the index does not identify a
// live allocation (stale, foreign, or zero handle). Unlike Get, Remove fails
// loudly: removal callers must know whether the removal actually happened.
var ErrInvalidIndex = errors.New("arena: invalid index")

// Index is a handle to a value allocated in an Arena. It stays valid until
// the value is removed; after that it never matches again, even if the slot
// is reused. Index is comparable and the zero Index identifies nothing.
type Index struct {
	slot       int
	generation uint64
}

// IsZero reports whether i is the zero Index (a handle to nothing).
func (i Index) IsZero() bool { return i.generation == 0 }

// entry is one slot: either occupied (value + generation of the occupant)
// or free (generation for the next occupant + free-list link).
type entry[T any] struct {
	value      T
	generation uint64
	nextFree   int // next slot in the free list; -1 terminates
	occupied   bool
}

// Arena is a generational slot arena for values of type T.
// The zero Arena is not ready for use; construct with New or WithCapacity.
type Arena[T any] struct {
	items    []entry[T]
	freeHead int // head of the free list; -1 when exhausted
	occupied int
}

// New returns an empty arena with no capacity. Every Insert fails with
// ErrOutOfMemory until Reserve is called.
func New[T any]() *Arena[T] {
	return &Arena[T]{freeHead: -1}
}

// WithCapacity returns an arena with capacity free slots, chained into the
// free list in slot order.
func WithCapacity[T any](capacity int) *Arena[T] {
	a := New[T]()
	a.Reserve(capacity)
	return a
}

// Capacity returns the total slot count, free and occupied.
func (a *Arena[T]) Capacity() int { return len(a.items) }

// Len returns the number of occupied slots.
func (a *Arena[T]) Len() int { return a.occupied }

// Reserve grows the arena by additional free slots, appended to the slice
// and pushed onto the free list. Existing slots never move, so outstanding
// handles remain valid. Non-positive counts are a no-op.
func (a *Arena[T]) Reserve(additional int) {
	if additional <= 0 {
		return
	}
	start := len(a.items)
	end := start + additional
	for i := start; i < end; i++ {
		next := i + 1
		if i == end-1 {
			next = a.freeHead // last new slot links to the old head (or -1)
		}
		a.items = append(a.items, entry[T]{generation: 1, nextFree: next})
	}
	a.freeHead = start
}

// Insert allocates value in the first free slot and returns its handle.
// The arena does not grow implicitly: with the free list empty, Insert
// returns ErrOutOfMemory.
func (a *Arena[T]) Insert(value T) (Index, error) {
	if a.freeHead < 0 {
		return Index{}, ErrOutOfMemory
	}
	slot := a.freeHead
	e := &a.items[slot]
	a.freeHead = e.nextFree
	e.value = value
	e.occupied = true
	e.nextFree = -1
	a.occupied++
	return Index{slot: slot, generation: e.generation}, nil
}

// Get returns a pointer to the value identified by index, or (nil, false)
// when the index no longer (or never did) identify a live value. An invalid
// handle is a normal, checkable condition, not an error.
func (a *Arena[T]) Get(index Index) (*T, bool) {
	if index.slot < 0 || index.slot >= len(a.items) {
		return nil, false
	}
	e := &a.items[index.slot]
	if !e.occupied || e.generation != index.generation {
		return nil, false
	}
	return &e.value, true
}

// Remove extracts and returns the value identified by index, frees its slot
// and pushes it onto the free list. The slot's generation is bumped, which
// permanently invalidates every outstanding handle to it.
func (a *Arena[T]) Remove(index Index) (T, error) {
	var zero T
	if index.slot < 0 || index.slot >= len(a.items) {
		return zero, ErrInvalidIndex
	}
	e := &a.items[index.slot]
	if !e.occupied || e.generation != index.generation {
		return zero, ErrInvalidIndex
	}
	value := e.value
	e.value = zero // release the value; the arena must not pin it
	e.occupied = false
	e.generation++
	e.nextFree = a.freeHead
	a.freeHead = index.slot
	a.occupied--
	return value, nil
}
