package adjacency

import (
	"fmt"
	"sort"
)

// List is a compressed-row adjacency over N elements.
// Row i is adj[off[i]:off[i+1]], sorted ascending without duplicates.
type List struct {
	off []int
	adj []int
}

// NewList builds a List from per-element neighbor lists.
// Duplicate entries are collapsed. The input is copied.
// Returns ErrIndexRange or ErrSelfLoop on malformed rows; symmetry is not
// checked here (see Validate).
func NewList(rows [][]int) (*List, error) {
	n := len(rows)
	l := &List{off: make([]int, n+1)}
	total := 0
	for _, r := range rows {
		total += len(r)
	}
	l.adj = make([]int, 0, total)

	for i, r := range rows {
		start := len(l.adj)
		for _, j := range r {
			if j < 0 || j >= n {
				return nil, fmt.Errorf("%w: %d lists %d (N=%d)", ErrIndexRange, i, j, n)
			}
			if j == i {
				return nil, fmt.Errorf("%w: %d", ErrSelfLoop, i)
			}
			l.adj = append(l.adj, j)
		}
		l.adj = l.adj[:start+sortUnique(l.adj[start:])]
		l.off[i+1] = len(l.adj)
	}

	return l, nil
}

// FromEdges builds a symmetric List over n elements from undirected edges.
// Repeated edges are collapsed.
func FromEdges(n int, edges []Edge) (*List, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	// 1) Count degrees.
	deg := make([]int, n)
	for _, e := range edges {
		a, b := e[0], e[1]
		if a < 0 || a >= n || b < 0 || b >= n {
			return nil, fmt.Errorf("%w: edge %d–%d (N=%d)", ErrIndexRange, a, b, n)
		}
		if a == b {
			return nil, fmt.Errorf("%w: %d", ErrSelfLoop, a)
		}
		deg[a]++
		deg[b]++
	}

	// 2) Prefix sums give row offsets; fill both directions.
	off := make([]int, n+1)
	for i := 0; i < n; i++ {
		off[i+1] = off[i] + deg[i]
	}
	adj := make([]int, off[n])
	cursor := append([]int(nil), off[:n]...)
	for _, e := range edges {
		adj[cursor[e[0]]] = e[1]
		cursor[e[0]]++
		adj[cursor[e[1]]] = e[0]
		cursor[e[1]]++
	}

	// 3) Sort and compact each row in place.
	l := &List{off: make([]int, n+1), adj: adj[:0]}
	for i := 0; i < n; i++ {
		row := adj[off[i]:off[i+1]]
		k := sortUnique(row)
		l.adj = append(l.adj, row[:k]...)
		l.off[i+1] = len(l.adj)
	}

	return l, nil
}

// Len returns the number of elements.
func (l *List) Len() int { return len(l.off) - 1 }

// Neighbors appends the neighbors of i to dst.
func (l *List) Neighbors(dst []int, i int) []int {
	return append(dst, l.adj[l.off[i]:l.off[i+1]]...)
}

// Degree returns the number of neighbors of i.
func (l *List) Degree(i int) int { return l.off[i+1] - l.off[i] }

// EdgeCount returns the number of undirected edges, assuming symmetry.
func (l *List) EdgeCount() int { return len(l.adj) / 2 }

// sortUnique sorts s ascending, moves distinct values to the front and
// returns how many there are.
func sortUnique(s []int) int {
	if len(s) < 2 {
		return len(s)
	}
	sort.Ints(s)
	k := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[k-1] {
			s[k] = s[i]
			k++
		}
	}

	return k
}
