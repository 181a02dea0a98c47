// Package tfce is the root of a Threshold-Free Cluster Enhancement toolkit
// for fields defined on graphs: triangulated surfaces, voxel volumes or any
// symmetric adjacency.
//
// What is inside:
//
//	pqueue/    : indexed mutable heap with stable handles (min- or max-first)
//	adjacency/ : the Source capability, compressed-row lists, validation
//	surface/   : vertex adjacency from a triangle list
//	voxel/     : regular 3-D grid adjacency (6, 18 or 26 connectivity)
//	tfce/      : the enhancement engine, dual-sign driver and column worker pool
//	config/    : YAML job files
//	cmd/tfce/  : command-line front end
//
// Quick ASCII example:
//
//	5 ─ 5 ─ 5 ─ 1 ─ 1
//
// The plateau of three 5s is one cluster long before the 1s join it, so
// its members collect far more enhancement than the tail.
//
//	go get github.com/katalvlaran/tfce
package tfce
