package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tfce/adjacency"
)

// TestNewList_Normalizes verifies sorting and duplicate collapse.
func TestNewList_Normalizes(t *testing.T) {
	l, err := adjacency.NewList([][]int{
		{2, 1, 1},
		{0},
		{0},
	})
	require.NoError(t, err)
	require.Equal(t, 3, l.Len())
	assert.Equal(t, []int{1, 2}, l.Neighbors(nil, 0))
	assert.Equal(t, []int{0}, l.Neighbors(nil, 1))
	assert.Equal(t, 2, l.Degree(0))
	assert.Equal(t, 2, l.EdgeCount())
	require.NoError(t, adjacency.Validate(l))
}

// TestNewList_Errors rejects out-of-range entries and self loops.
func TestNewList_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"OutOfRange", [][]int{{1}, {5}}, adjacency.ErrIndexRange},
		{"Negative", [][]int{{-1}}, adjacency.ErrIndexRange},
		{"SelfLoop", [][]int{{0}}, adjacency.ErrSelfLoop},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := adjacency.NewList(tc.rows)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFromEdges builds a path and checks both directions.
func TestFromEdges(t *testing.T) {
	l, err := adjacency.FromEdges(4, []adjacency.Edge{{0, 1}, {1, 2}, {2, 3}, {2, 1}})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, l.Neighbors(nil, 0))
	assert.Equal(t, []int{0, 2}, l.Neighbors(nil, 1))
	assert.Equal(t, []int{1, 3}, l.Neighbors(nil, 2))
	assert.Equal(t, []int{2}, l.Neighbors(nil, 3))
	assert.Equal(t, 3, l.EdgeCount())
	require.NoError(t, adjacency.Validate(l))

	// Appending to a non-empty buffer keeps the prefix.
	buf := []int{99}
	assert.Equal(t, []int{99, 0, 2}, l.Neighbors(buf, 1))
}

// TestFromEdges_Errors covers invalid edge lists.
func TestFromEdges_Errors(t *testing.T) {
	_, err := adjacency.FromEdges(-1, nil)
	require.ErrorIs(t, err, adjacency.ErrNegativeCount)
	_, err = adjacency.FromEdges(2, []adjacency.Edge{{0, 2}})
	require.ErrorIs(t, err, adjacency.ErrIndexRange)
	_, err = adjacency.FromEdges(2, []adjacency.Edge{{1, 1}})
	require.ErrorIs(t, err, adjacency.ErrSelfLoop)
}

// TestValidate_Asymmetric detects one-directional rows.
func TestValidate_Asymmetric(t *testing.T) {
	l, err := adjacency.NewList([][]int{{1}, {}})
	require.NoError(t, err)
	require.ErrorIs(t, adjacency.Validate(l), adjacency.ErrAsymmetric)
	require.ErrorIs(t, adjacency.Validate(nil), adjacency.ErrNilSource)
}

// brokenSource reports an out-of-range neighbor for element 0.
type brokenSource struct{}

func (brokenSource) Len() int { return 2 }

func (brokenSource) Neighbors(dst []int, i int) []int {
	if i == 0 {
		return append(dst, 7)
	}
	return dst
}

// TestValidate_Range detects neighbors outside [0, N).
func TestValidate_Range(t *testing.T) {
	require.ErrorIs(t, adjacency.Validate(brokenSource{}), adjacency.ErrIndexRange)
}
