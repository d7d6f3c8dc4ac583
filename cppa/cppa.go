// Package cppa - the generic cyclic proximal point solver.
package cppa

import (
	"math"

	"github.com/katalvlaran/proxman/manifold"
)

// CyclicProximalPoint minimizes the sum represented by p, starting from
// x0, and returns the final iterate.
//
// Each iteration i (1-indexed) computes λ_i from the schedule, applies
// every proximal map in the current evaluation order as a Gauss-Seidel
// sweep (each map sees its predecessor's output within the sweep),
// updates the order per the strategy, and evaluates the stopping
// predicate. Errors raised by nothing — proximal maps are total — but a
// sweep producing a non-finite coordinate aborts with ErrNonFinite.
//
// opts may be nil for DefaultOptions. x0 is copied; the caller's point
// is never mutated.
//
// Complexity: O(iterations · m) proximal evaluations.
func CyclicProximalPoint(p *Problem, x0 manifold.Point, opts *Options) (manifold.Point, error) {
	st, err := CyclicProximalPointState(p, x0, opts)
	if err != nil {
		return nil, err
	}

	return st.X, nil
}

// CyclicProximalPointState runs the same solve as CyclicProximalPoint
// but returns the full solver state for introspection: final iterate,
// iteration count, last step size, last change and (when
// Options.RecordTrace is set) the trace of all iterates.
func CyclicProximalPointState(p *Problem, x0 manifold.Point, opts *Options) (*State, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if len(x0) == 0 {
		return nil, ErrNilInitial
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	man := p.Manifold()
	lambda := o.Lambda
	if lambda == nil {
		scale := man.TypicalDistance()
		lambda = func(iter int) float64 { return scale / (2 * float64(iter)) }
	}
	stop := o.Stop
	if stop == nil {
		maxIter, minChange := o.MaxIterations, o.MinimalChange
		stop = func(s *State) bool {
			return s.Iteration >= maxIter || s.LastChange < minChange
		}
	}

	rng := rngFromSeed(o.Seed)
	st := &State{
		X:          x0.Clone(),
		Order:      nextOrder(identityOrder(p.NumProxes()), 0, o.OrderStrategy, rng),
		LastChange: math.Inf(1),
	}

	for {
		st.Iteration++
		st.Lambda = lambda(st.Iteration)

		xold := st.X
		for _, k := range st.Order {
			st.X = p.proxes[k](st.Lambda, st.X)
		}
		if !finite(st.X) {
			return st, ErrNonFinite
		}

		st.LastChange = man.Distance(xold, st.X)
		if o.RecordTrace {
			st.Trace = append(st.Trace, st.X.Clone())
		}
		st.Order = nextOrder(st.Order, st.Iteration, o.OrderStrategy, rng)

		if stop(st) {
			return st, nil
		}
	}
}

// finite reports whether every coordinate of x is a finite number.
func finite(x manifold.Point) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
