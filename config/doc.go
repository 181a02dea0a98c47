// Package config loads TFCE job descriptions from YAML.
//
// A job names a domain (a triangulated surface, a voxel volume or a plain
// edge list), the TFCE exponents, per-element extent weights, an optional
// ROI and one or more data columns:
//
//	domain:
//	  kind: volume          # surface | volume | graph
//	  dims: [4, 4, 2]
//	  connectivity: 6       # volume only: 6, 18 or 26
//	  spacing: [2, 2, 2]    # volume only, voxel edge lengths
//	exponents:
//	  e: 0.5
//	  h: 2
//	workers: 4
//	roi: [1, 1, 0, ...]     # optional, > 0 means included
//	columns:
//	  - [0.1, 2.3, ...]
//
// Surfaces list `vertices` and `triangles`; graphs list `vertices` and
// `edges`. Weights are either an explicit `weights` list or a single
// `uniform_weight`; volumes default to the voxel volume, other domains
// to 1.
//
// Exponents default per domain: E=1, H=2 for surfaces and graphs, E=0.5,
// H=2 for volumes.
package config
