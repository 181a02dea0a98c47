package tfce

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/rs/zerolog"
)

// Sentinel errors for TFCE execution.
var (
	// ErrNilSource indicates a nil adjacency source.
	ErrNilSource = errors.New("tfce: adjacency source is nil")
	// ErrLengthMismatch indicates a field, weight or ROI length different from N.
	ErrLengthMismatch = errors.New("tfce: input length does not match element count")
	// ErrNonPositiveWeight indicates an extent weight that is not strictly positive.
	ErrNonPositiveWeight = errors.New("tfce: extent weights must be strictly positive")
	// ErrBadExponent indicates a negative or non-finite E or H.
	ErrBadExponent = errors.New("tfce: exponents must be finite and non-negative")
	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("tfce: worker count must be at least 1")
	// ErrPrecondition indicates a sweep aborted on an internal precondition violation.
	ErrPrecondition = errors.New("tfce: precondition violated")
)

// PreconditionError describes why a sweep aborted. It unwraps to ErrPrecondition.
type PreconditionError struct {
	Op     string // failing step
	Detail string // offending values
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("tfce: precondition violated in %s: %s", e.Op, e.Detail)
}

// Unwrap allows errors.Is(err, ErrPrecondition).
func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

// violate aborts the running sweep. The public entry points recover it.
func violate(op, format string, args ...any) {
	panic(&PreconditionError{Op: op, Detail: fmt.Sprintf(format, args...)})
}

// Options configures TFCE.
type Options struct {
	// E weights the cluster extent: extent^E.
	E float64
	// H weights the threshold height: h^H.
	H float64
	// ROI, when non-nil, limits processing to elements with ROI[i] == true.
	// Excluded elements get 0 and never act as neighbors.
	ROI []bool
	// Workers is the pool size used by EnhanceColumns.
	Workers int
	// Logger receives per-invocation and batch diagnostics.
	Logger zerolog.Logger
	// Metrics, when non-nil, is updated after every invocation.
	Metrics *Metrics

	// first invalid option seen while applying
	err error
}

// Option represents a functional option for configuring TFCE.
type Option func(*Options)

// DefaultOptions returns the customary surface setting:
//   - E: 1.0, H: 2.0
//   - ROI: nil (every element included)
//   - Workers: GOMAXPROCS
//   - Logger: disabled
func DefaultOptions() Options {
	return Options{
		E:       1.0,
		H:       2.0,
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zerolog.Nop(),
	}
}

// WithExponents sets the extent exponent e and the height exponent h.
// Negative or non-finite values surface as ErrBadExponent.
func WithExponents(e, h float64) Option {
	return func(o *Options) {
		if !validExponent(e) || !validExponent(h) {
			o.fail(fmt.Errorf("%w: E=%g H=%g", ErrBadExponent, e, h))
			return
		}
		o.E, o.H = e, h
	}
}

// WithSurfaceDefaults sets E=1, H=2, the customary surface setting.
func WithSurfaceDefaults() Option {
	return func(o *Options) {
		o.E, o.H = 1.0, 2.0
	}
}

// WithVolumeDefaults sets E=0.5, H=2, the customary volumetric setting.
func WithVolumeDefaults() Option {
	return func(o *Options) {
		o.E, o.H = 0.5, 2.0
	}
}

// WithROI restricts processing to elements whose mask entry is true.
// The mask is read, never copied or modified.
func WithROI(mask []bool) Option {
	return func(o *Options) {
		o.ROI = mask
	}
}

// WithWorkers sets the EnhanceColumns pool size; n < 1 surfaces as ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail(fmt.Errorf("%w: got %d", ErrBadWorkers, n))
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

func validExponent(x float64) bool {
	return x >= 0 && !math.IsInf(x, 0)
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

// Stats summarizes one invocation (both sign passes).
type Stats struct {
	Elements        int // elements popped from the heap
	ClustersCreated int // clusters started by an isolated element
	Merges          int // clusters absorbed into a larger one
	Relinked        int // member reassignments performed by merges
	PeakClusters    int // largest number of simultaneously live clusters
}

func (s *Stats) add(o Stats) {
	s.Elements += o.Elements
	s.ClustersCreated += o.ClustersCreated
	s.Merges += o.Merges
	s.Relinked += o.Relinked
	if o.PeakClusters > s.PeakClusters {
		s.PeakClusters = o.PeakClusters
	}
}
