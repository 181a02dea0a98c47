// Package adjacency defines the neighbor capability consumed by the TFCE
// engine and a list-backed implementation for arbitrary graphs.
//
// What:
//
//   - Source is the only thing the engine knows about geometry: an element
//     count and, per element, the indices of its neighbors.
//   - List stores neighbors in compressed rows (one offsets array plus one
//     flat neighbor array), built from per-element lists or an edge list.
//   - Validate checks a Source once, before any sweep: every neighbor index
//     in range, no self loops, and symmetry.
//
// Implementations in sibling packages:
//
//   - surface.Topology: mesh vertices connected by triangle edges.
//   - voxel.Grid: regular 3-D grid with 6, 18 or 26 connectivity.
//
// Errors:
//
//   - ErrNilSource: nil Source passed to Validate.
//   - ErrIndexRange: neighbor or edge endpoint outside [0, N).
//   - ErrSelfLoop: element listed as its own neighbor.
//   - ErrAsymmetric: a→b present without b→a.
//   - ErrNegativeCount: negative element count.
package adjacency
