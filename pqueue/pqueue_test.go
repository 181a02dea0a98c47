package pqueue_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tfce/pqueue"
)

//----------------------------------------------------------------------------//
// Ordering
//----------------------------------------------------------------------------//

// TestPopOrder verifies that both orderings drain keys in sorted order.
func TestPopOrder(t *testing.T) {
	keys := []float64{3.5, -1, 7, 0, 7, 2.25, 11, -4}
	cases := []struct {
		name  string
		order pqueue.Order
		less  func(a, b float64) bool
	}{
		{"MinFirst", pqueue.MinFirst, func(a, b float64) bool { return a < b }},
		{"MaxFirst", pqueue.MaxFirst, func(a, b float64) bool { return a > b }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := pqueue.New[float64, int](tc.order)
			for i, k := range keys {
				h.Push(k, i)
			}
			require.Equal(t, len(keys), h.Len())

			want := append([]float64(nil), keys...)
			sort.Slice(want, func(i, j int) bool { return tc.less(want[i], want[j]) })

			got := make([]float64, 0, len(keys))
			for !h.IsEmpty() {
				k, v, err := h.Pop()
				require.NoError(t, err)
				require.Equal(t, keys[v], k, "payload must travel with its key")
				got = append(got, k)
			}
			assert.Equal(t, want, got)
		})
	}
}

// TestEmpty checks the empty-heap errors.
func TestEmpty(t *testing.T) {
	h := pqueue.NewMax[int, string]()
	require.True(t, h.IsEmpty())

	_, _, err := h.Pop()
	require.ErrorIs(t, err, pqueue.ErrEmpty)
	_, _, err = h.Peek()
	require.ErrorIs(t, err, pqueue.ErrEmpty)
}

// TestPeek verifies that Peek reports the top without removing it.
func TestPeek(t *testing.T) {
	h := pqueue.NewMin[int, string]()
	h.Push(5, "five")
	h.Push(2, "two")
	h.Push(9, "nine")

	k, v, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	assert.Equal(t, "two", v)
	assert.Equal(t, 3, h.Len())
}

//----------------------------------------------------------------------------//
// Handles
//----------------------------------------------------------------------------//

// TestChangeKey moves entries in both directions.
func TestChangeKey(t *testing.T) {
	h := pqueue.NewMax[float64, string]()
	a := h.Push(1, "a")
	b := h.Push(5, "b")
	c := h.Push(3, "c")

	// Promote a above everything.
	require.NoError(t, h.ChangeKey(a, 10))
	k, v, _ := h.Peek()
	assert.Equal(t, 10.0, k)
	assert.Equal(t, "a", v)

	// Demote a below everything.
	require.NoError(t, h.ChangeKey(a, 0))
	k, v, _ = h.Peek()
	assert.Equal(t, 5.0, k)
	assert.Equal(t, "b", v)

	// Same key is a no-op.
	require.NoError(t, h.ChangeKey(c, 3))
	key, err := h.Key(c)
	require.NoError(t, err)
	assert.Equal(t, 3.0, key)

	var order []string
	for !h.IsEmpty() {
		_, v, err := h.Pop()
		require.NoError(t, err)
		order = append(order, v)
	}
	assert.Equal(t, []string{"b", "c", "a"}, order)
	assert.False(t, h.Contains(b))
}

// TestRemove deletes entries from the middle of the tree.
func TestRemove(t *testing.T) {
	h := pqueue.NewMin[int, int]()
	handles := make([]pqueue.Handle, 10)
	for i := 0; i < 10; i++ {
		handles[i] = h.Push(i*10, i)
	}

	k, v, err := h.Remove(handles[4])
	require.NoError(t, err)
	assert.Equal(t, 40, k)
	assert.Equal(t, 4, v)

	k, v, err = h.Remove(handles[0])
	require.NoError(t, err)
	assert.Equal(t, 0, k)
	assert.Equal(t, 0, v)

	var got []int
	for !h.IsEmpty() {
		_, v, _ := h.Pop()
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7, 8, 9}, got)
}

// TestStaleHandle verifies that popped, removed and recycled handles are refused.
func TestStaleHandle(t *testing.T) {
	h := pqueue.NewMin[int, string]()
	a := h.Push(1, "a")
	_, _, err := h.Pop()
	require.NoError(t, err)

	// a's slot is recycled by b; a must not alias b.
	b := h.Push(2, "b")
	require.NotEqual(t, a, b)

	err = h.ChangeKey(a, 0)
	require.True(t, errors.Is(err, pqueue.ErrStaleHandle), "got %v", err)
	_, _, err = h.Remove(a)
	require.ErrorIs(t, err, pqueue.ErrStaleHandle)
	_, err = h.Value(a)
	require.ErrorIs(t, err, pqueue.ErrStaleHandle)

	v, err := h.Value(b)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	// A handle that was never issued.
	_, err = h.Key(pqueue.Handle(1 << 20))
	require.ErrorIs(t, err, pqueue.ErrStaleHandle)
}

// TestReset drops entries and invalidates handles while keeping the heap usable.
func TestReset(t *testing.T) {
	h := pqueue.NewMax[int, int]()
	h.Grow(8)
	old := h.Push(1, 1)
	h.Push(2, 2)
	h.Reset()

	require.True(t, h.IsEmpty())
	require.False(t, h.Contains(old))

	h.Push(7, 7)
	k, _, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, 7, k)
}

//----------------------------------------------------------------------------//
// Randomized agreement with a sorted model
//----------------------------------------------------------------------------//

// TestRandomOperations mixes pushes, key changes and removals and checks the
// drain order against a sorted copy of the surviving keys.
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	h := pqueue.NewMax[float64, int]()
	live := map[int]pqueue.Handle{}
	keys := map[int]float64{}

	for id := 0; id < 500; id++ {
		k := rng.Float64() * 100
		live[id] = h.Push(k, id)
		keys[id] = k

		if id%3 == 0 {
			victim := rng.Intn(id + 1)
			if hd, ok := live[victim]; ok {
				nk := rng.Float64() * 100
				require.NoError(t, h.ChangeKey(hd, nk))
				keys[victim] = nk
			}
		}
		if id%7 == 0 {
			victim := rng.Intn(id + 1)
			if hd, ok := live[victim]; ok {
				_, v, err := h.Remove(hd)
				require.NoError(t, err)
				require.Equal(t, victim, v)
				delete(live, victim)
				delete(keys, victim)
			}
		}
	}
	require.Equal(t, len(live), h.Len())

	want := make([]float64, 0, len(keys))
	for _, k := range keys {
		want = append(want, k)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(want)))

	got := make([]float64, 0, len(keys))
	for !h.IsEmpty() {
		k, v, err := h.Pop()
		require.NoError(t, err)
		require.Equal(t, keys[v], k)
		got = append(got, k)
	}
	assert.Equal(t, want, got)
}

// TestOrderString covers the Stringer.
func TestOrderString(t *testing.T) {
	assert.Equal(t, "min-first", pqueue.MinFirst.String())
	assert.Equal(t, "max-first", pqueue.MaxFirst.String())
}
