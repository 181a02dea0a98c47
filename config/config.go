package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tfce/adjacency"
	"github.com/katalvlaran/tfce/surface"
	"github.com/katalvlaran/tfce/voxel"
)

// Sentinel errors for job validation.
var (
	// ErrUnknownDomain indicates an unsupported domain kind.
	ErrUnknownDomain = errors.New("config: domain kind must be surface, volume or graph")
	// ErrInvalidJob indicates a structurally invalid job.
	ErrInvalidJob = errors.New("config: invalid job")
)

// Domain kinds.
const (
	KindSurface = "surface"
	KindVolume  = "volume"
	KindGraph   = "graph"
)

// Job is one TFCE run: a domain, parameters and the data columns.
type Job struct {
	Domain        Domain      `yaml:"domain"`
	Exponents     Exponents   `yaml:"exponents"`
	Workers       int         `yaml:"workers"`
	Weights       []float64   `yaml:"weights"`
	UniformWeight float64     `yaml:"uniform_weight"`
	ROI           []float64   `yaml:"roi"`
	Columns       [][]float64 `yaml:"columns"`
}

// Domain describes the element graph.
type Domain struct {
	Kind         string    `yaml:"kind"`
	Vertices     int       `yaml:"vertices"`
	Triangles    [][]int   `yaml:"triangles"`
	Edges        [][]int   `yaml:"edges"`
	Dims         []int     `yaml:"dims"`
	Connectivity int       `yaml:"connectivity"`
	Spacing      []float64 `yaml:"spacing"`
}

// Exponents holds optional E and H; nil means the domain default.
type Exponents struct {
	E *float64 `yaml:"e"`
	H *float64 `yaml:"h"`
}

// Load reads and parses a job file.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML job, rejecting unknown fields, and validates it.
func Parse(data []byte) (*Job, error) {
	var job Job
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	return &job, nil
}

// Validate checks the job for structural errors that can be detected
// without building the domain.
func (j *Job) Validate() error {
	switch j.Domain.Kind {
	case KindSurface:
		if len(j.Domain.Triangles) == 0 {
			return fmt.Errorf("%w: surface needs triangles", ErrInvalidJob)
		}
		for k, t := range j.Domain.Triangles {
			if len(t) != 3 {
				return fmt.Errorf("%w: triangle %d has %d vertices", ErrInvalidJob, k, len(t))
			}
		}
	case KindVolume:
		if len(j.Domain.Dims) != 3 {
			return fmt.Errorf("%w: volume dims must have 3 entries", ErrInvalidJob)
		}
		if j.Domain.Spacing != nil && len(j.Domain.Spacing) != 3 {
			return fmt.Errorf("%w: volume spacing must have 3 entries", ErrInvalidJob)
		}
	case KindGraph:
		for k, e := range j.Domain.Edges {
			if len(e) != 2 {
				return fmt.Errorf("%w: edge %d has %d endpoints", ErrInvalidJob, k, len(e))
			}
		}
	default:
		return fmt.Errorf("%w: got %q", ErrUnknownDomain, j.Domain.Kind)
	}

	e, h := j.ExponentValues()
	if e < 0 || h < 0 || math.IsNaN(e) || math.IsNaN(h) || math.IsInf(e, 0) || math.IsInf(h, 0) {
		return fmt.Errorf("%w: exponents E=%g H=%g", ErrInvalidJob, e, h)
	}
	if j.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative", ErrInvalidJob)
	}
	if j.Weights != nil && j.UniformWeight != 0 {
		return fmt.Errorf("%w: weights and uniform_weight are exclusive", ErrInvalidJob)
	}
	if j.UniformWeight < 0 {
		return fmt.Errorf("%w: uniform_weight must be positive", ErrInvalidJob)
	}
	if len(j.Columns) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidJob)
	}

	return nil
}

// ExponentValues returns E and H with domain defaults applied.
func (j *Job) ExponentValues() (e, h float64) {
	e, h = 1.0, 2.0
	if j.Domain.Kind == KindVolume {
		e = 0.5
	}
	if j.Exponents.E != nil {
		e = *j.Exponents.E
	}
	if j.Exponents.H != nil {
		h = *j.Exponents.H
	}

	return e, h
}

// Source builds the adjacency of the job's domain.
func (j *Job) Source() (adjacency.Source, error) {
	d := j.Domain
	switch d.Kind {
	case KindSurface:
		n := d.Vertices
		if n == 0 {
			n = maxIndex(d.Triangles) + 1
		}
		tris := make([]surface.Triangle, len(d.Triangles))
		for k, t := range d.Triangles {
			tris[k] = surface.Triangle{t[0], t[1], t[2]}
		}
		topo, err := surface.NewTopology(n, tris)
		if err != nil {
			return nil, err
		}
		return topo, nil
	case KindVolume:
		opts := voxel.DefaultGridOptions()
		if d.Connectivity != 0 {
			opts.Conn = voxel.Connectivity(d.Connectivity)
		}
		if d.Spacing != nil {
			copy(opts.Spacing[:], d.Spacing)
		}
		grid, err := voxel.NewGrid([3]int{d.Dims[0], d.Dims[1], d.Dims[2]}, opts)
		if err != nil {
			return nil, err
		}
		return grid, nil
	case KindGraph:
		n := d.Vertices
		if n == 0 {
			n = maxIndex(d.Edges) + 1
		}
		edges := make([]adjacency.Edge, len(d.Edges))
		for k, e := range d.Edges {
			edges[k] = adjacency.Edge{e[0], e[1]}
		}
		list, err := adjacency.FromEdges(n, edges)
		if err != nil {
			return nil, err
		}
		return list, nil
	}

	return nil, fmt.Errorf("%w: got %q", ErrUnknownDomain, d.Kind)
}

// ExtentWeights returns the per-element weights for a domain of n elements:
// the explicit list, the uniform weight, the voxel volume for volumes, or 1.
func (j *Job) ExtentWeights(src adjacency.Source) ([]float64, error) {
	n := src.Len()
	if j.Weights != nil {
		if len(j.Weights) != n {
			return nil, fmt.Errorf("%w: %d weights for %d elements", ErrInvalidJob, len(j.Weights), n)
		}
		return j.Weights, nil
	}
	if g, ok := src.(*voxel.Grid); ok && j.UniformWeight == 0 {
		return g.UniformWeights(), nil
	}
	w := j.UniformWeight
	if w == 0 {
		w = 1
	}
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = w
	}

	return weights, nil
}

// Mask converts the ROI list to inclusion flags; nil when no ROI is given.
func (j *Job) Mask(n int) ([]bool, error) {
	if j.ROI == nil {
		return nil, nil
	}
	if len(j.ROI) != n {
		return nil, fmt.Errorf("%w: ROI has %d entries for %d elements", ErrInvalidJob, len(j.ROI), n)
	}
	mask := make([]bool, n)
	for i, v := range j.ROI {
		mask[i] = v > 0
	}

	return mask, nil
}

func maxIndex(rows [][]int) int {
	m := -1
	for _, r := range rows {
		for _, v := range r {
			if v > m {
				m = v
			}
		}
	}

	return m
}
