package tfce_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/tfce/tfce"
	"github.com/katalvlaran/tfce/voxel"
)

// BenchmarkEngine_Volume measures one invocation on a 32³ noise volume.
func BenchmarkEngine_Volume(b *testing.B) {
	g, err := voxel.NewGrid([3]int{32, 32, 32}, voxel.DefaultGridOptions())
	if err != nil {
		b.Fatal(err)
	}
	field := frames(5, 1, g.Len())[0]
	eng, err := tfce.NewEngine(g, g.UniformWeights(), tfce.WithVolumeDefaults())
	if err != nil {
		b.Fatal(err)
	}
	out := make([]float64, g.Len())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Enhance(field, out); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEnhanceColumns measures the worker pool on 16 frames of 16³.
func BenchmarkEnhanceColumns(b *testing.B) {
	g, err := voxel.NewGrid([3]int{16, 16, 16}, voxel.DefaultGridOptions())
	if err != nil {
		b.Fatal(err)
	}
	cols := frames(6, 16, g.Len())
	w := g.UniformWeights()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tfce.EnhanceColumns(context.Background(), cols, g, w, tfce.WithVolumeDefaults()); err != nil {
			b.Fatal(err)
		}
	}
}
