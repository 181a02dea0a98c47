package voxel

import "fmt"

// NewGrid constructs a Grid of the given dimensions.
// Returns ErrEmptyGrid, ErrBadSpacing or ErrBadConnectivity on invalid input.
// Complexity: O(1).
func NewGrid(dims [3]int, opts GridOptions) (*Grid, error) {
	for axis, d := range dims {
		if d <= 0 {
			return nil, fmt.Errorf("%w: axis %d has size %d", ErrEmptyGrid, axis, d)
		}
	}
	for axis, s := range opts.Spacing {
		if !(s > 0) {
			return nil, fmt.Errorf("%w: axis %d spacing %g", ErrBadSpacing, axis, s)
		}
	}
	offsets, err := neighborOffsets(opts.Conn)
	if err != nil {
		return nil, err
	}

	return &Grid{
		Dims:    dims,
		Conn:    opts.Conn,
		Spacing: opts.Spacing,
		offsets: offsets,
	}, nil
}

// neighborOffsets precomputes the (di, dj, dk) steps for a connectivity.
// A step qualifies when it changes at most 1, 2 or 3 axes respectively.
func neighborOffsets(conn Connectivity) ([][3]int, error) {
	var maxAxes int
	switch conn {
	case Conn6:
		maxAxes = 1
	case Conn18:
		maxAxes = 2
	case Conn26:
		maxAxes = 3
	default:
		return nil, fmt.Errorf("%w: got %d", ErrBadConnectivity, conn)
	}
	offsets := make([][3]int, 0, int(conn))
	for dk := -1; dk <= 1; dk++ {
		for dj := -1; dj <= 1; dj++ {
			for di := -1; di <= 1; di++ {
				moved := abs(di) + abs(dj) + abs(dk)
				if moved == 0 || moved > maxAxes {
					continue
				}
				offsets = append(offsets, [3]int{di, dj, dk})
			}
		}
	}

	return offsets, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Len returns the number of voxels, Nx·Ny·Nz.
func (g *Grid) Len() int { return g.Dims[0] * g.Dims[1] * g.Dims[2] }

// InBounds reports whether (i, j, k) lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(i, j, k int) bool {
	return i >= 0 && i < g.Dims[0] &&
		j >= 0 && j < g.Dims[1] &&
		k >= 0 && k < g.Dims[2]
}

// Index maps (i, j, k) to its flat x-fastest index.
// Complexity: O(1).
func (g *Grid) Index(i, j, k int) int {
	return i + g.Dims[0]*(j+g.Dims[1]*k)
}

// Coordinate converts a flat index back to (i, j, k).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (i, j, k int) {
	i = idx % g.Dims[0]
	idx /= g.Dims[0]
	j = idx % g.Dims[1]
	k = idx / g.Dims[1]

	return i, j, k
}

// Neighbors appends the in-bounds neighbors of voxel idx to dst,
// in the fixed order of the connectivity offsets.
// Complexity: O(d).
func (g *Grid) Neighbors(dst []int, idx int) []int {
	i, j, k := g.Coordinate(idx)
	for _, d := range g.offsets {
		ni, nj, nk := i+d[0], j+d[1], k+d[2]
		if !g.InBounds(ni, nj, nk) {
			continue
		}
		dst = append(dst, g.Index(ni, nj, nk))
	}

	return dst
}

// VoxelVolume returns the volume of one voxel.
func (g *Grid) VoxelVolume() float64 {
	return g.Spacing[0] * g.Spacing[1] * g.Spacing[2]
}

// UniformWeights returns a weight slice of length Len() filled with the
// voxel volume.
func (g *Grid) UniformWeights() []float64 {
	w := make([]float64, g.Len())
	vol := g.VoxelVolume()
	for i := range w {
		w[i] = vol
	}

	return w
}
