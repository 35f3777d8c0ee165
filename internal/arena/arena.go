// Package arena implements a bump allocator over 2 MB slabs, grounded on
// matcheroni/SlabAlloc.h: advance a cursor through the current slab, retire
// it and grab a fresh one on overflow, and let Reset recycle every retired
// slab into a free list so the next parse reuses the backing memory instead
// of re-allocating it.
package arena

import "unsafe"

const slabBytes = 2 * 1024 * 1024

// Arena bump-allocates values of T. Alloc returns a pointer into a slab's
// backing array; the returned *T is not zeroed when the slab came from the
// free list, so callers must write every field they depend on.
type Arena[T any] struct {
	slabLen int // elements per slab, derived from slabBytes/sizeof(T)

	current []T
	cursor  int

	oldSlabs  [][]T
	freeSlabs [][]T

	bytesInUse    int
	bytesRetired  int
	maxBytesInUse int
}

// New returns an arena with its first slab ready to bump-allocate from.
func New[T any]() *Arena[T] {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		elemSize = 1
	}
	slabLen := slabBytes / elemSize
	if slabLen < 1 {
		slabLen = 1
	}
	return &Arena[T]{
		slabLen: slabLen,
		current: make([]T, slabLen),
	}
}

// Alloc bumps the cursor and returns a pointer to the next T, taking a
// fresh or recycled slab when the current one is full.
func (a *Arena[T]) Alloc() *T {
	if a.cursor >= len(a.current) {
		a.oldSlabs = append(a.oldSlabs, a.current)
		if n := len(a.freeSlabs); n > 0 {
			a.current = a.freeSlabs[n-1]
			a.freeSlabs = a.freeSlabs[:n-1]
		} else {
			a.current = make([]T, a.slabLen)
		}
		a.cursor = 0
	}

	p := &a.current[a.cursor]
	a.cursor++

	a.bytesInUse += int(unsafe.Sizeof(*p))
	if a.bytesInUse > a.maxBytesInUse {
		a.maxBytesInUse = a.bytesInUse
	}
	return p
}

// Reset recycles every slab (retired and current) into the free list and
// starts a new parse's allocation from the top of one of them, amortizing
// allocation across files the way repeated parses in one process benefit
// from.
func (a *Arena[T]) Reset() {
	a.bytesRetired += a.bytesInUse
	a.freeSlabs = append(a.freeSlabs, a.oldSlabs...)
	a.freeSlabs = append(a.freeSlabs, a.current)
	a.oldSlabs = a.oldSlabs[:0]

	n := len(a.freeSlabs)
	a.current = a.freeSlabs[n-1]
	a.freeSlabs = a.freeSlabs[:n-1]
	a.cursor = 0
	a.bytesInUse = 0
}

// BytesInUse reports bytes allocated since the last Reset.
func (a *Arena[T]) BytesInUse() int { return a.bytesInUse }

// BytesRetired reports cumulative bytes allocated across all past Resets.
func (a *Arena[T]) BytesRetired() int { return a.bytesRetired }

// MaxBytesInUse reports the high-water mark of BytesInUse since
// construction.
func (a *Arena[T]) MaxBytesInUse() int { return a.maxBytesInUse }

// SlabCount reports how many slabs (retired, current, and free) the arena
// currently holds, for tests and stats reporting.
func (a *Arena[T]) SlabCount() int { return len(a.oldSlabs) + len(a.freeSlabs) + 1 }
