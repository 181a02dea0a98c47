package adjacency

import (
	"fmt"
	"sort"
)

// Validate checks that every neighbor reported by src lies in [0, N), that
// no element neighbors itself, and that the relation is symmetric.
// It is meant to run once, before any sweep over src.
// Complexity: O(N + E log d), d = maximum degree.
func Validate(src Source) error {
	if src == nil {
		return ErrNilSource
	}
	n := src.Len()
	if n < 0 {
		return ErrNegativeCount
	}

	// 1) Range and self-loop checks; keep sorted rows for the symmetry pass.
	rows := make([][]int, n)
	var buf []int
	for i := 0; i < n; i++ {
		buf = src.Neighbors(buf[:0], i)
		row := make([]int, len(buf))
		copy(row, buf)
		for _, j := range row {
			if j < 0 || j >= n {
				return fmt.Errorf("%w: %d lists %d (N=%d)", ErrIndexRange, i, j, n)
			}
			if j == i {
				return fmt.Errorf("%w: %d", ErrSelfLoop, i)
			}
		}
		sort.Ints(row)
		rows[i] = row
	}

	// 2) Every a→b must have a matching b→a.
	for a, row := range rows {
		for _, b := range row {
			back := rows[b]
			k := sort.SearchInts(back, a)
			if k == len(back) || back[k] != a {
				return fmt.Errorf("%w: %d→%d without %d→%d", ErrAsymmetric, a, b, b, a)
			}
		}
	}

	return nil
}
