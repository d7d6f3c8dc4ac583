// Package cppa - problem representation, solver state, options and
// sentinel errors for the cyclic proximal point algorithm.
package cppa

import (
	"errors"

	"github.com/katalvlaran/proxman/manifold"
)

// Sentinel errors returned by the cppa solvers.
var (
	// ErrNilManifold indicates a Problem was constructed without a manifold.
	ErrNilManifold = errors.New("cppa: manifold is nil")

	// ErrNilProblem indicates a nil *Problem was passed to the solver.
	ErrNilProblem = errors.New("cppa: problem is nil")

	// ErrNoProxFns indicates a Problem was constructed with an empty
	// proximal-map list; CPPA needs at least one summand.
	ErrNoProxFns = errors.New("cppa: at least one proximal map is required")

	// ErrNilProx indicates a nil entry in the proximal-map list.
	ErrNilProx = errors.New("cppa: proximal map is nil")

	// ErrNilInitial indicates a nil or empty initial point.
	ErrNilInitial = errors.New("cppa: initial point is nil or empty")

	// ErrNonFinite indicates a proximal map produced a NaN or Inf
	// coordinate; the solve aborts rather than propagate invalid values.
	ErrNonFinite = errors.New("cppa: iterate contains a non-finite coordinate")
)

// ProxFn is the resolvent of one summand f_k of the objective:
//
//	prox_{λ·f_k}(x) = argmin_y [ f_k(y) + distance(x,y)²/(2λ) ]
//
// in closed form. λ is a positive step size. Implementations must not
// mutate x; they return a fresh point. No mathematical validation is
// performed — a malformed ProxFn silently yields a wrong but
// well-typed result.
type ProxFn func(lambda float64, x manifold.Point) manifold.Point

// CostFn evaluates the full objective at x. It is used for reporting
// only; the solver never differentiates or minimizes it directly.
type CostFn func(x manifold.Point) float64

// Problem binds a manifold, an optional cost function and an ordered,
// non-empty list of proximal maps. Immutable after construction.
type Problem struct {
	man    manifold.Manifold
	cost   CostFn
	proxes []ProxFn
}

// NewProblem validates and assembles a Problem. The prox list is copied
// so later caller mutations cannot reach the solver.
//
// Errors: ErrNilManifold, ErrNoProxFns, ErrNilProx.
func NewProblem(m manifold.Manifold, cost CostFn, proxes []ProxFn) (*Problem, error) {
	if m == nil {
		return nil, ErrNilManifold
	}
	if len(proxes) == 0 {
		return nil, ErrNoProxFns
	}
	ps := make([]ProxFn, len(proxes))
	for i, p := range proxes {
		if p == nil {
			return nil, ErrNilProx
		}
		ps[i] = p
	}

	return &Problem{man: m, cost: cost, proxes: ps}, nil
}

// Manifold returns the manifold the problem lives on.
func (p *Problem) Manifold() manifold.Manifold { return p.man }

// NumProxes returns m, the number of summands.
func (p *Problem) NumProxes() int { return len(p.proxes) }

// Cost evaluates the reporting cost at x. ok is false when the problem
// was built without a cost function.
func (p *Problem) Cost(x manifold.Point) (cost float64, ok bool) {
	if p.cost == nil {
		return 0, false
	}

	return p.cost(x), true
}

// State is the mutable per-solve state observed by stopping criteria
// and returned by CyclicProximalPointState. It is created before the
// first iteration, updated once per iteration, and owned by a single
// solve; nothing is shared between concurrent solves.
type State struct {
	// X is the current iterate.
	X manifold.Point

	// Order is the evaluation order used by the *next* sweep; always a
	// permutation of 0..m-1.
	Order []int

	// Iteration counts completed sweeps, 1-indexed after the first.
	Iteration int

	// Lambda is the step size used by the most recent sweep.
	Lambda float64

	// LastChange is the manifold distance between the previous and the
	// current iterate. Initialized to +Inf before the first sweep.
	LastChange float64

	// Trace holds a copy of the iterate after every sweep when
	// Options.RecordTrace is enabled; nil otherwise.
	Trace []manifold.Point
}

// StopFn inspects the solver state after a completed sweep and reports
// whether iteration should halt. Stopping-criterion combinators are the
// caller's business; the solver only consumes this single predicate.
type StopFn func(s *State) bool

// LambdaFn is a step-size schedule: iteration number (1-indexed) to a
// positive step size.
type LambdaFn func(iter int) float64

// Options configures a CPPA solve.
//
// OrderStrategy – sweep permutation policy (Linear, Random, FixedRandom).
// Seed          – RNG seed for the random strategies; 0 means a fixed
//
//	default seed, so runs are reproducible unless a caller
//	opts into a specific stream.
//
// Lambda        – step-size schedule; nil means TypicalDistance()/(2·iter).
// MaxIterations – hard cap used by the default stopping rule; always
//
//	finite, so solves terminate even if MinimalChange is
//	never reached.
//
// MinimalChange – iterate-change threshold used by the default stopping rule.
// Stop          – custom stopping predicate; nil means the default rule
//
//	"Iteration ≥ MaxIterations OR LastChange < MinimalChange".
//
// RecordTrace   – record a copy of the iterate after every sweep.
type Options struct {
	OrderStrategy OrderStrategy
	Seed          int64
	Lambda        LambdaFn
	MaxIterations int
	MinimalChange float64
	Stop          StopFn
	RecordTrace   bool
}

// DefaultOptions returns the documented defaults: Linear order, seed 0
// (fixed default stream), nil Lambda (typical-distance schedule),
// MaxIterations=5000, MinimalChange=1e-12, default stopping rule, no
// trace.
func DefaultOptions() Options {
	return Options{
		OrderStrategy: Linear,
		Seed:          0,
		Lambda:        nil,
		MaxIterations: 5000,
		MinimalChange: 1e-12,
		Stop:          nil,
		RecordTrace:   false,
	}
}
