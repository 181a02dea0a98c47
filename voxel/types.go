package voxel

import "errors"

// Sentinel errors for voxel grid construction.
var (
	// ErrEmptyGrid indicates a non-positive dimension.
	ErrEmptyGrid = errors.New("voxel: all grid dimensions must be positive")
	// ErrBadSpacing indicates a non-positive voxel edge length.
	ErrBadSpacing = errors.New("voxel: spacing must be positive")
	// ErrBadConnectivity indicates an unsupported connectivity value.
	ErrBadConnectivity = errors.New("voxel: connectivity must be 6, 18 or 26")
)

// Connectivity selects which voxels count as neighbors.
type Connectivity int

const (
	// Conn6 connects voxels sharing a face.
	Conn6 Connectivity = 6
	// Conn18 adds voxels sharing an edge.
	Conn18 Connectivity = 18
	// Conn26 adds voxels sharing a corner.
	Conn26 Connectivity = 26
)

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 6-, 18- or 26-connectivity.
	Conn Connectivity
	// Spacing holds the voxel edge lengths along x, y and z.
	Spacing [3]float64
}

// DefaultGridOptions returns Conn6 with unit spacing.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:    Conn6,
		Spacing: [3]float64{1, 1, 1},
	}
}

// Grid is a regular voxel lattice. It is immutable once built.
// Dims holds (Nx, Ny, Nz); voxels are addressed in x-fastest order.
type Grid struct {
	Dims    [3]int
	Conn    Connectivity
	Spacing [3]float64
	offsets [][3]int
}
