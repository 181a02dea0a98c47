// Package surface builds vertex adjacency for triangulated surfaces.
//
// What:
//
//   - Topology turns a triangle list over N vertices into symmetric
//     vertex neighbor rows: two vertices are neighbors when they share an
//     edge of at least one triangle.
//   - Topology implements adjacency.Source, so a mesh can be passed
//     directly to the TFCE engine.
//
// Vertex areas (the extent weights of surface TFCE) are supplied by the
// caller; this package only describes connectivity.
//
// Complexity:
//
//   - NewTopology: O(T + N + E log d), T triangles, d = maximum degree.
//   - Neighbors:   O(d).
//
// Errors:
//
//   - ErrNoVertices: vertex count is not positive.
//   - ErrBadTriangle: a triangle references a vertex outside [0, N) or
//     repeats a vertex.
package surface
