// Command tfce runs Threshold-Free Cluster Enhancement on YAML job files.
//
// Usage:
//
//	tfce run --config job.yaml [--output out.yaml] [--format yaml|json] [--workers N]
//	tfce validate --config job.yaml
//
// A job names a domain (surface triangles, voxel grid or edge list),
// exponents, weights, an optional ROI and the data columns; see package
// config for the format. The enhanced columns are written with a per-column
// summary.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
