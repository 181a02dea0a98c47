package adjacency

import "errors"

// Sentinel errors for adjacency construction and validation.
var (
	// ErrNilSource indicates a nil Source.
	ErrNilSource = errors.New("adjacency: source is nil")
	// ErrIndexRange indicates a neighbor index outside [0, N).
	ErrIndexRange = errors.New("adjacency: element index out of range")
	// ErrSelfLoop indicates an element listed among its own neighbors.
	ErrSelfLoop = errors.New("adjacency: element is its own neighbor")
	// ErrAsymmetric indicates a one-directional neighbor relation.
	ErrAsymmetric = errors.New("adjacency: neighbor relation is not symmetric")
	// ErrNegativeCount indicates a negative element count.
	ErrNegativeCount = errors.New("adjacency: element count must be non-negative")
)

// Source reports, for each element in [0, Len()), its neighboring elements.
//
// Neighbors appends the neighbors of element i to dst and returns the
// extended slice, so callers can reuse one buffer for a whole sweep.
// Implementations must be deterministic and symmetric, and must not be
// mutated while a sweep is running.
type Source interface {
	Len() int
	Neighbors(dst []int, i int) []int
}

// Edge is an undirected connection between two elements.
type Edge [2]int
