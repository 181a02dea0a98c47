// Package pqueue implements an indexed mutable binary heap.
//
// What:
//
//   - Heap[K, V] stores (key, value) pairs ordered by key, either
//     minimum-first (NewMin) or maximum-first (NewMax).
//   - Push returns a Handle. The handle stays valid until the entry is
//     popped or removed, no matter how the heap reorders itself meanwhile.
//   - ChangeKey and Remove address an entry by handle in O(log n),
//     without scanning for its current tree position.
//
// Why:
//
//   - container/heap cannot locate a given entry; callers fall back to
//     "lazy decrease-key" (push duplicates, skip stale pops), which wastes
//     memory and breaks sweeps that must see every element exactly once.
//
// How:
//
//   - entries is a slot store that is never reordered. Each slot records its
//     key, value, current tree position and a generation counter.
//   - tree is the complete binary tree of slot numbers; every swap updates
//     the position stored in the two affected slots.
//   - A Handle packs (slot, generation). Released slots are recycled and
//     their generation bumped, so an old handle is refused (ErrStaleHandle)
//     instead of silently addressing a newer entry.
//
// Complexity:
//
//   - Push, Pop, ChangeKey, Remove: O(log n).
//   - Peek, Len, IsEmpty, Key, Value, Contains: O(1).
//   - Memory: O(peak number of live entries).
//
// Errors:
//
//   - ErrEmpty: Pop or Peek on an empty heap.
//   - ErrStaleHandle: handle was popped, removed, reset or never issued.
//
// A Heap is not safe for concurrent use.
package pqueue
