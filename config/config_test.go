package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tfce/config"
	"github.com/katalvlaran/tfce/surface"
	"github.com/katalvlaran/tfce/voxel"
)

const volumeJob = `
domain:
  kind: volume
  dims: [2, 2, 1]
  spacing: [2, 1.5, 1]
workers: 2
roi: [1, 1, 0, 1]
columns:
  - [1, 2, 3, 4]
  - [-1, 0, 0, 2]
`

// TestParse_Volume decodes a volume job and applies its defaults.
func TestParse_Volume(t *testing.T) {
	job, err := config.Parse([]byte(volumeJob))
	require.NoError(t, err)

	e, h := job.ExponentValues()
	assert.Equal(t, 0.5, e, "volume default E")
	assert.Equal(t, 2.0, h)
	assert.Equal(t, 2, job.Workers)
	require.Len(t, job.Columns, 2)

	src, err := job.Source()
	require.NoError(t, err)
	grid, ok := src.(*voxel.Grid)
	require.True(t, ok)
	assert.Equal(t, voxel.Conn6, grid.Conn)
	assert.Equal(t, 4, src.Len())

	w, err := job.ExtentWeights(src)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3, 3}, w, "voxel volume")

	mask, err := job.Mask(src.Len())
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false, true}, mask)
}

// TestParse_Surface builds a surface with explicit exponents and weights.
func TestParse_Surface(t *testing.T) {
	job, err := config.Parse([]byte(`
domain:
  kind: surface
  triangles: [[0, 1, 2], [0, 2, 3]]
exponents: {e: 2, h: 1}
weights: [0.5, 0.5, 1, 1]
columns: [[1, 1, 1, 1]]
`))
	require.NoError(t, err)
	e, h := job.ExponentValues()
	assert.Equal(t, 2.0, e)
	assert.Equal(t, 1.0, h)

	src, err := job.Source()
	require.NoError(t, err)
	topo, ok := src.(*surface.Topology)
	require.True(t, ok)
	assert.Equal(t, 4, topo.Len(), "vertex count inferred from triangles")
	assert.Equal(t, 2, topo.TriangleCount())

	w, err := job.ExtentWeights(src)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5, 1, 1}, w)

	mask, err := job.Mask(4)
	require.NoError(t, err)
	assert.Nil(t, mask)
}

// TestParse_Graph uses a uniform weight on an edge list.
func TestParse_Graph(t *testing.T) {
	job, err := config.Parse([]byte(`
domain:
  kind: graph
  vertices: 3
  edges: [[0, 1], [1, 2]]
uniform_weight: 2.5
columns: [[1, 2, 3]]
`))
	require.NoError(t, err)
	src, err := job.Source()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, src.Neighbors(nil, 1))

	w, err := job.ExtentWeights(src)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 2.5, 2.5}, w)
}

// TestParse_Errors covers invalid jobs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		err  error
	}{
		{"UnknownKind", "domain: {kind: torus}\ncolumns: [[1]]", config.ErrUnknownDomain},
		{"NoColumns", "domain: {kind: graph, vertices: 1}", config.ErrInvalidJob},
		{"BadDims", "domain: {kind: volume, dims: [2, 2]}\ncolumns: [[1]]", config.ErrInvalidJob},
		{"BadTriangle", "domain: {kind: surface, triangles: [[0, 1]]}\ncolumns: [[1]]", config.ErrInvalidJob},
		{"NegativeE", "domain: {kind: graph, vertices: 1}\nexponents: {e: -1}\ncolumns: [[1]]", config.ErrInvalidJob},
		{"BothWeights", "domain: {kind: graph, vertices: 1}\nweights: [1]\nuniform_weight: 2\ncolumns: [[1]]", config.ErrInvalidJob},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_UnknownField rejects typos instead of silently ignoring them.
func TestParse_UnknownField(t *testing.T) {
	_, err := config.Parse([]byte("domain: {kind: graph, vertices: 1}\ncolum: [[1]]"))
	require.Error(t, err)
}

// TestLoad reads a job from disk.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(volumeJob), 0o600))

	job, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.KindVolume, job.Domain.Kind)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// TestMask_Length rejects a mismatched ROI.
func TestMask_Length(t *testing.T) {
	job, err := config.Parse([]byte(volumeJob))
	require.NoError(t, err)
	_, err = job.Mask(3)
	require.ErrorIs(t, err, config.ErrInvalidJob)
}
