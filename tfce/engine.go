package tfce

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tfce/adjacency"
	"github.com/katalvlaran/tfce/pqueue"
)

// Membership markers; values >= 0 are cluster slots.
const (
	excluded = -2 // outside the ROI or not strictly positive in this pass
	unseen   = -1 // queued, not yet popped
)

// Engine runs TFCE invocations over one adjacency and one set of weights.
// Scratch state is reset at the start of every sweep and reused across
// invocations. An Engine is not safe for concurrent use.
type Engine struct {
	src     adjacency.Source
	weights []float64
	opts    Options
	n       int

	heap       *pqueue.Heap[float64, int]
	membership []int     // excluded, unseen or the owning cluster slot
	arena      arena     // clusters of the running sweep
	neighbors  []int     // reused neighbor buffer
	touching   []int     // distinct cluster slots touching the popped element
	positive   []float64 // accumulator of the positive pass
	negative   []float64 // accumulator of the negative pass

	stats Stats
}

// NewEngine validates the shared inputs and returns an Engine.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadExponent, ErrBadWorkers).
//  2. src must be non-nil (ErrNilSource).
//  3. len(weights) must equal src.Len() (ErrLengthMismatch).
//  4. Every weight must be strictly positive (ErrNonPositiveWeight).
//  5. A non-nil ROI must have length src.Len() (ErrLengthMismatch).
//
// Neighbor symmetry and range are not checked here; see adjacency.Validate.
func NewEngine(src adjacency.Source, weights []float64, opts ...Option) (*Engine, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return newEngine(src, weights, cfg)
}

func newEngine(src adjacency.Source, weights []float64, cfg Options) (*Engine, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	n := src.Len()
	if len(weights) != n {
		return nil, fmt.Errorf("%w: %d weights for %d elements", ErrLengthMismatch, len(weights), n)
	}
	if n > 0 && (floats.HasNaN(weights) || !(floats.Min(weights) > 0)) {
		return nil, fmt.Errorf("%w: min=%g", ErrNonPositiveWeight, floats.Min(weights))
	}
	if cfg.ROI != nil && len(cfg.ROI) != n {
		return nil, fmt.Errorf("%w: ROI has %d entries for %d elements", ErrLengthMismatch, len(cfg.ROI), n)
	}

	return &Engine{
		src:        src,
		weights:    weights,
		opts:       cfg,
		n:          n,
		heap:       pqueue.NewMax[float64, int](),
		membership: make([]int, n),
	}, nil
}

// Len returns the number of elements the engine was built for.
func (e *Engine) Len() int { return e.n }

// LastStats returns the statistics of the most recent invocation.
func (e *Engine) LastStats() Stats { return e.stats }

// Enhance computes TFCE of field and returns it. If dst has enough
// capacity it is reused for the result and is written only after both
// passes finish, so dst may be field itself. field is otherwise never
// modified.
//
// Positive values are enhanced on the field as given, negative values on
// the negated field; the result keeps the sign of the input and elements
// that are zero, NaN or outside the ROI receive 0.
//
// A precondition violation inside the sweep aborts the invocation and
// returns an error wrapping ErrPrecondition with a nil result; dst is left
// untouched in that case.
func (e *Engine) Enhance(field, dst []float64) (out []float64, err error) {
	if len(field) != e.n {
		return nil, fmt.Errorf("%w: field has %d values for %d elements", ErrLengthMismatch, len(field), e.n)
	}
	if cap(e.positive) < e.n {
		e.positive = make([]float64, e.n)
		e.negative = make([]float64, e.n)
	}
	pos, neg := e.positive[:e.n], e.negative[:e.n]

	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*PreconditionError)
			if !ok {
				panic(r)
			}
			e.opts.Logger.Error().Err(pe).Msg("tfce invocation aborted")
			out, err = nil, pe
		}
	}()

	start := time.Now()
	e.stats = Stats{}

	// 1) Positive pass on the field as given.
	e.stats.add(e.sweep(field, 1, pos))
	// 2) Negative pass on the negated field.
	e.stats.add(e.sweep(field, -1, neg))
	// 3) Both passes completed; only now is dst written.
	if cap(dst) >= e.n {
		out = dst[:e.n]
	} else {
		out = make([]float64, e.n)
	}
	for i := range out {
		out[i] = pos[i] - neg[i]
	}

	elapsed := time.Since(start)
	e.opts.Logger.Debug().
		Int("elements", e.stats.Elements).
		Int("clusters", e.stats.ClustersCreated).
		Int("merges", e.stats.Merges).
		Int("relinked", e.stats.Relinked).
		Dur("elapsed", elapsed).
		Msg("tfce invocation complete")
	if e.opts.Metrics != nil {
		e.opts.Metrics.observe(e.stats, elapsed)
	}

	return out, nil
}

// Enhance is a one-shot helper: NewEngine followed by a single Enhance.
func Enhance(field []float64, src adjacency.Source, weights []float64, opts ...Option) ([]float64, error) {
	eng, err := NewEngine(src, weights, opts...)
	if err != nil {
		return nil, err
	}

	return eng.Enhance(field, nil)
}

// sweep runs one sign pass: every in-ROI element with sign·field[i] > 0 is
// enhanced into acc. Every other entry of acc is left at 0.
func (e *Engine) sweep(field []float64, sign float64, acc []float64) Stats {
	var st Stats
	roi := e.opts.ROI
	h := e.heap

	// 1) Reset engine-owned state and seed the heap.
	h.Reset()
	e.arena.reset()
	for i := range acc {
		acc[i] = 0
	}
	for i := 0; i < e.n; i++ {
		v := sign * field[i]
		if (roi == nil || roi[i]) && v > 0 {
			e.membership[i] = unseen
			h.Push(v, i)
		} else {
			e.membership[i] = excluded
		}
	}

	// 2) Descending sweep.
	for !h.IsEmpty() {
		v, elem, _ := h.Pop()
		st.Elements++

		e.collectTouching(elem)
		switch len(e.touching) {
		case 0:
			slot := e.arena.alloc()
			e.arena.clusters[slot].add(elem, v, e.weights[elem], e.opts.E, e.opts.H)
			e.membership[elem] = slot
			st.ClustersCreated++
		case 1:
			slot := e.touching[0]
			c := &e.arena.clusters[slot]
			c.add(elem, v, e.weights[elem], e.opts.E, e.opts.H)
			e.membership[elem] = slot
			acc[elem] -= c.accum
		default:
			e.merge(elem, v, acc, &st)
		}
	}

	// 3) Close every live cluster at 0 and settle its members.
	for slot := range e.arena.clusters {
		c := &e.arena.clusters[slot]
		if !c.live {
			continue
		}
		c.update(0, e.opts.E, e.opts.H)
		for _, m := range c.members {
			acc[m] += c.accum
		}
	}
	st.PeakClusters = e.arena.peak

	return st
}

// collectTouching fills e.touching with the distinct clusters adjacent to
// elem, in the order their first neighbor is reported.
func (e *Engine) collectTouching(elem int) {
	e.touching = e.touching[:0]
	e.neighbors = e.src.Neighbors(e.neighbors[:0], elem)
	for _, nb := range e.neighbors {
		if nb < 0 || nb >= e.n {
			violate("neighbor lookup", "element %d reports neighbor %d (N=%d)", elem, nb, e.n)
		}
		slot := e.membership[nb]
		if slot < 0 {
			continue // excluded, or not reached by the sweep yet
		}
		if !containsInt(e.touching, slot) {
			e.touching = append(e.touching, slot)
		}
	}
}

// merge joins every touching cluster into the one with the most members
// (first encountered on ties), then adds elem to it at threshold v.
func (e *Engine) merge(elem int, v float64, acc []float64, st *Stats) {
	clusters := e.arena.clusters
	best := e.touching[0]
	for _, slot := range e.touching[1:] {
		if len(clusters[slot].members) > len(clusters[best].members) {
			best = slot
		}
	}

	into := &clusters[best]
	into.update(v, e.opts.E, e.opts.H)
	for _, slot := range e.touching {
		if slot == best {
			continue
		}
		from := &clusters[slot]
		from.update(v, e.opts.E, e.opts.H)
		correction := from.accum - into.accum
		for _, m := range from.members {
			acc[m] += correction
			e.membership[m] = best
		}
		into.members = append(into.members, from.members...)
		into.extent += from.extent
		st.Merges++
		st.Relinked += len(from.members)
		e.arena.release(slot)
	}

	into.add(elem, v, e.weights[elem], e.opts.E, e.opts.H)
	e.membership[elem] = best
	acc[elem] -= into.accum
}

func containsInt(s []int, x int) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}
	return false
}
