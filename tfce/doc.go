// Package tfce computes Threshold-Free Cluster Enhancement over any graph
// exposed as an adjacency.Source.
//
// What:
//
//   - For a scalar field on N elements (surface vertices, voxels, ...) TFCE
//     assigns every element the integral, over all thresholds h between 0
//     and its value, of extent(h)^E · h^H, where extent(h) is the weighted
//     size of the supra-threshold cluster containing it.
//   - Positive and negative values are enhanced separately; the result keeps
//     the sign of the input.
//
// How:
//
//   - Elements are popped from a max-first pqueue.Heap in descending value
//     order. Each popped element starts a cluster, joins the single cluster
//     it touches, or merges every cluster it touches into the one with the
//     most members.
//   - A cluster integrates lazily: its accumulator only grows when the
//     sweep crosses a new threshold. An element records the negated
//     accumulator of its cluster when it joins; members of an absorbed
//     cluster receive a one-off correction; finally every cluster is closed
//     at 0 and its accumulator is added to all its members. The net value
//     per element is exactly the integral it would have seen with eager
//     bookkeeping, without rescanning members on every threshold step.
//   - Clusters live in a slot arena with a free list; the membership table
//     stores slot numbers, never pointers.
//
// Complexity (one invocation):
//
//   - Time:   O(N log N + E) for the sweep, plus O(N log N) member relinks
//     in total, because a member only moves when its cluster is merged
//     into one that is at least as large.
//   - Memory: O(N).
//
// Options:
//
//   - WithExponents(E, H): extent and height exponents (default 1, 2).
//   - WithVolumeDefaults(): E=0.5, H=2, the customary volumetric setting.
//   - WithROI(mask): restrict processing to mask[i] == true.
//   - WithWorkers(n): worker count for EnhanceColumns.
//   - WithLogger(l): zerolog logger, default disabled.
//   - WithMetrics(m): Prometheus collectors fed after every invocation.
//
// Errors:
//
//   - ErrNilSource, ErrLengthMismatch, ErrNonPositiveWeight,
//     ErrBadExponent, ErrBadWorkers: rejected before a sweep starts.
//   - ErrPrecondition: a sweep aborted on an internal precondition
//     violation (neighbor index outside [0, N), non-monotonic threshold).
//     No partial output is returned.
//
// An Engine reuses its scratch buffers across invocations and is not safe
// for concurrent use; EnhanceColumns gives every worker its own Engine.
package tfce
