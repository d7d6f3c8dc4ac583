// Package cppa implements the cyclic proximal point algorithm (CPPA)
// for minimizing a sum F(x) = f₁(x) + … + f_m(x) of functions of a
// manifold-valued variable, together with the closed-form proximal
// maps the rest of the module is built from.
//
// 🚀 What is CPPA?
//
//	Instead of a gradient step — unavailable when the f_k are non-smooth
//	or the space is curved — each iteration applies every summand's
//	proximal map (resolvent) in sequence with a decaying step size:
//
//	  x ← prox_{λ_i·f_k}(x)   for k in the current evaluation order
//
//	The sweep is Gauss-Seidel: each proximal map sees the output of the
//	previous one within the same sweep. With λ_i = c/i the iterates
//	converge to a minimizer under standard assumptions.
//
// ✨ Key features:
//   - Problem = manifold + optional cost (reporting only) + ordered prox maps
//   - Evaluation orders: Linear, Random (reshuffled every sweep) and
//     FixedRandom (shuffled once, then frozen) — always a permutation
//   - Deterministic randomness: explicit Seed, never the global generator
//   - Pluggable stopping: any predicate over *State; sensible default
//     (iteration cap OR iterate change below threshold)
//   - Optional trace recording of every iterate for inspection
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/proxman/cppa"
//
//	m, _ := manifold.NewEuclidean(1)
//	prob, _ := cppa.NewProblem(m, nil, proxes)
//	opts := cppa.DefaultOptions()
//	opts.OrderStrategy = cppa.Random
//	opts.Seed = 7
//
//	x, err := cppa.CyclicProximalPoint(prob, x0, &opts)
//
// Errors (sentinel): ErrNilManifold, ErrNoProxFns, ErrNilProx,
// ErrNilInitial, ErrNonFinite — see types.go.
//
// Complexity per iteration: O(m) proximal evaluations plus one distance
// for the change metric; memory O(dim) (plus O(iterations·dim) when
// RecordTrace is enabled).
package cppa
