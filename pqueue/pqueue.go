package pqueue

import (
	"cmp"
	"fmt"
)

// Heap is an indexed binary heap of (key, value) pairs.
// The zero value is not usable; construct with New, NewMin or NewMax.
type Heap[K cmp.Ordered, V any] struct {
	order   Order
	before  func(a, b K) bool // true when a must sit above b
	entries []entry[K, V]     // slot store, never reordered
	tree    []int             // heap-ordered slot numbers
	free    []int             // released slots available for reuse
}

// New returns an empty heap with the given ordering.
func New[K cmp.Ordered, V any](order Order) *Heap[K, V] {
	h := &Heap[K, V]{order: order}
	if order == MaxFirst {
		h.before = func(a, b K) bool { return cmp.Less(b, a) }
	} else {
		h.before = cmp.Less[K]
	}

	return h
}

// NewMin returns an empty heap that pops the smallest key first.
func NewMin[K cmp.Ordered, V any]() *Heap[K, V] { return New[K, V](MinFirst) }

// NewMax returns an empty heap that pops the largest key first.
func NewMax[K cmp.Ordered, V any]() *Heap[K, V] { return New[K, V](MaxFirst) }

// Order reports the ordering chosen at construction.
func (h *Heap[K, V]) Order() Order { return h.order }

// Len returns the number of live entries.
func (h *Heap[K, V]) Len() int { return len(h.tree) }

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[K, V]) IsEmpty() bool { return len(h.tree) == 0 }

// Grow reserves room for n more entries without reallocating.
func (h *Heap[K, V]) Grow(n int) {
	if n <= 0 {
		return
	}
	if need := len(h.tree) + n; need > cap(h.tree) {
		tree := make([]int, len(h.tree), need)
		copy(tree, h.tree)
		h.tree = tree
	}
	if need := len(h.entries) + n; need > cap(h.entries) {
		entries := make([]entry[K, V], len(h.entries), need)
		copy(entries, h.entries)
		h.entries = entries
	}
}

// Reset drops every entry while keeping allocated storage.
// All handles issued before Reset become stale.
func (h *Heap[K, V]) Reset() {
	var zeroK K
	var zeroV V
	h.tree = h.tree[:0]
	h.free = h.free[:0]
	for i := len(h.entries) - 1; i >= 0; i-- {
		e := &h.entries[i]
		if e.pos != noPosition {
			e.pos = noPosition
			e.gen++
		}
		e.key, e.value = zeroK, zeroV
		h.free = append(h.free, i)
	}
}

// Push inserts value under key and returns a handle to the new entry.
// Complexity: O(log n).
func (h *Heap[K, V]) Push(key K, value V) Handle {
	// 1) Take a recycled slot, or grow the slot store.
	var slot int
	if n := len(h.free); n > 0 {
		slot = h.free[n-1]
		h.free = h.free[:n-1]
	} else {
		slot = len(h.entries)
		h.entries = append(h.entries, entry[K, V]{})
	}

	// 2) Place the slot at the end of the tree and restore order upward.
	e := &h.entries[slot]
	e.key, e.value = key, value
	e.pos = len(h.tree)
	h.tree = append(h.tree, slot)
	h.up(e.pos)

	return makeHandle(slot, e.gen)
}

// Peek returns the top entry without removing it.
// Complexity: O(1).
func (h *Heap[K, V]) Peek() (K, V, error) {
	if len(h.tree) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, ErrEmpty
	}
	e := &h.entries[h.tree[0]]

	return e.key, e.value, nil
}

// Pop removes and returns the top entry (smallest key for MinFirst,
// largest for MaxFirst). Its handle becomes stale.
// Complexity: O(log n).
func (h *Heap[K, V]) Pop() (K, V, error) {
	if len(h.tree) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, ErrEmpty
	}

	return h.removeAt(0)
}

// ChangeKey replaces the key of the entry referenced by hd and moves it
// toward the root or the leaves as the new key requires.
// Complexity: O(log n).
func (h *Heap[K, V]) ChangeKey(hd Handle, key K) error {
	e, err := h.lookup(hd)
	if err != nil {
		return err
	}
	old := e.key
	e.key = key
	switch {
	case h.before(key, old):
		h.up(e.pos)
	case h.before(old, key):
		h.down(e.pos)
	}

	return nil
}

// Remove deletes the entry referenced by hd, wherever it sits in the tree,
// and returns its key and value.
// Complexity: O(log n).
func (h *Heap[K, V]) Remove(hd Handle) (K, V, error) {
	e, err := h.lookup(hd)
	if err != nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, err
	}

	return h.removeAt(e.pos)
}

// Contains reports whether hd still references a live entry.
func (h *Heap[K, V]) Contains(hd Handle) bool {
	_, err := h.lookup(hd)
	return err == nil
}

// Key returns the current key of the entry referenced by hd.
func (h *Heap[K, V]) Key(hd Handle) (K, error) {
	e, err := h.lookup(hd)
	if err != nil {
		var zeroK K
		return zeroK, err
	}

	return e.key, nil
}

// Value returns the payload of the entry referenced by hd.
func (h *Heap[K, V]) Value(hd Handle) (V, error) {
	e, err := h.lookup(hd)
	if err != nil {
		var zeroV V
		return zeroV, err
	}

	return e.value, nil
}

// lookup resolves a handle to its live slot or reports ErrStaleHandle.
func (h *Heap[K, V]) lookup(hd Handle) (*entry[K, V], error) {
	slot := hd.slot()
	if slot >= len(h.entries) {
		return nil, fmt.Errorf("%w: slot %d never issued", ErrStaleHandle, slot)
	}
	e := &h.entries[slot]
	if e.pos == noPosition || e.gen != hd.gen() {
		return nil, fmt.Errorf("%w: slot %d generation %d", ErrStaleHandle, slot, hd.gen())
	}

	return e, nil
}

// removeAt detaches the entry at tree position i and releases its slot.
func (h *Heap[K, V]) removeAt(i int) (K, V, error) {
	slot := h.tree[i]
	last := len(h.tree) - 1
	if i != last {
		h.swap(i, last)
	}
	h.tree = h.tree[:last]
	if i < last {
		// The moved entry may belong above or below position i.
		if !h.down(i) {
			h.up(i)
		}
	}

	e := &h.entries[slot]
	key, value := e.key, e.value
	var zeroK K
	var zeroV V
	e.key, e.value = zeroK, zeroV
	e.pos = noPosition
	e.gen++
	h.free = append(h.free, slot)

	return key, value, nil
}

// up moves the entry at position i toward the root while it beats its parent.
func (h *Heap[K, V]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.before(h.entries[h.tree[i]].key, h.entries[h.tree[parent]].key) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the entry at position i toward the leaves while a child beats it.
// It reports whether the entry moved.
func (h *Heap[K, V]) down(i int) bool {
	start := i
	n := len(h.tree)
	for {
		best := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.before(h.entries[h.tree[left]].key, h.entries[h.tree[best]].key) {
			best = left
		}
		if right < n && h.before(h.entries[h.tree[right]].key, h.entries[h.tree[best]].key) {
			best = right
		}
		if best == i {
			break
		}
		h.swap(i, best)
		i = best
	}

	return i > start
}

// swap exchanges two tree positions and records the new positions in the slots.
func (h *Heap[K, V]) swap(i, j int) {
	h.tree[i], h.tree[j] = h.tree[j], h.tree[i]
	h.entries[h.tree[i]].pos = i
	h.entries[h.tree[j]].pos = j
}
