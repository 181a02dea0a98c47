package surface

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tfce/adjacency"
)

var (
	// ErrNoVertices indicates a non-positive vertex count.
	ErrNoVertices = errors.New("surface: vertex count must be positive")
	// ErrBadTriangle indicates a malformed triangle.
	ErrBadTriangle = errors.New("surface: malformed triangle")
)

// Triangle lists the three vertex indices of one face.
type Triangle [3]int

// Topology is the vertex neighbor structure of a triangulated surface.
// It is immutable once built and safe for concurrent reads.
type Topology struct {
	*adjacency.List
	triangles int
}

// NewTopology builds the neighbor rows of a surface with n vertices.
// Vertices that appear in no triangle get an empty row.
func NewTopology(n int, tris []Triangle) (*Topology, error) {
	if n <= 0 {
		return nil, ErrNoVertices
	}
	edges := make([]adjacency.Edge, 0, 3*len(tris))
	for k, t := range tris {
		for _, v := range t {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: triangle %d vertex %d (N=%d)", ErrBadTriangle, k, v, n)
			}
		}
		if t[0] == t[1] || t[1] == t[2] || t[0] == t[2] {
			return nil, fmt.Errorf("%w: triangle %d repeats a vertex %v", ErrBadTriangle, k, t)
		}
		// Shared edges show up twice; FromEdges collapses them.
		edges = append(edges,
			adjacency.Edge{t[0], t[1]},
			adjacency.Edge{t[1], t[2]},
			adjacency.Edge{t[2], t[0]},
		)
	}
	l, err := adjacency.FromEdges(n, edges)
	if err != nil {
		return nil, err
	}

	return &Topology{List: l, triangles: len(tris)}, nil
}

// TriangleCount returns the number of faces the topology was built from.
func (t *Topology) TriangleCount() int { return t.triangles }
