package pqueue

import "errors"

// Sentinel errors for heap operations.
var (
	// ErrEmpty indicates Pop or Peek was called on an empty heap.
	ErrEmpty = errors.New("pqueue: heap is empty")
	// ErrStaleHandle indicates the handle does not reference a live entry.
	ErrStaleHandle = errors.New("pqueue: stale or unknown handle")
)

// Order selects which key sits at the top of the heap.
type Order int

const (
	// MinFirst keeps the smallest key at the top.
	MinFirst Order = iota
	// MaxFirst keeps the largest key at the top.
	MaxFirst
)

// String returns a readable name of the ordering.
func (o Order) String() string {
	if o == MaxFirst {
		return "max-first"
	}
	return "min-first"
}

// Handle identifies one pushed entry. The low 32 bits hold the slot number,
// the high 32 bits the slot generation at the time of Push.
type Handle uint64

const noPosition = -1

func makeHandle(slot int, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(uint32(slot)))
}

func (h Handle) slot() int { return int(uint32(h)) }

func (h Handle) gen() uint32 { return uint32(h >> 32) }

// entry is one slot of the payload store.
type entry[K any, V any] struct {
	key   K
	value V
	pos   int    // index into tree, noPosition when the slot is free
	gen   uint32 // bumped every time the slot is released
}
