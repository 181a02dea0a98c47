// Package voxel treats a regular 3-D grid of voxels as a graph.
//
// What:
//
//   - Grid maps voxel (i, j, k) to the flat index i + Nx·(j + Ny·k) and back.
//   - Neighbors follow the chosen connectivity: Conn6 (faces, the TFCE
//     default), Conn18 (faces and edges) or Conn26 (faces, edges, corners).
//     Voxels on the grid border simply have fewer neighbors.
//   - Grid implements adjacency.Source.
//   - UniformWeights returns the per-voxel extent weight (voxel volume)
//     used by volumetric TFCE.
//
// Complexity:
//
//   - NewGrid:   O(1).
//   - Neighbors: O(d), d = 6, 18 or 26.
//
// Options:
//
//   - GridOptions.Conn: Conn6 (default), Conn18 or Conn26.
//   - GridOptions.Spacing: voxel edge lengths, default (1, 1, 1).
//
// Errors:
//
//   - ErrEmptyGrid: a dimension is not positive.
//   - ErrBadSpacing: a spacing component is not positive.
//   - ErrBadConnectivity: unknown connectivity value.
package voxel
