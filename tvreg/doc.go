// Package tvreg performs total-variation (TV) regularization of
// D-dimensional arrays of manifold-valued data — denoising, inpainting
// and mask-constrained editing — via a cyclic proximal point sweep.
//
// 🚀 What is TV regularization here?
//
//	Given an observed array f of manifold points, tvreg approximately
//	minimizes
//
//	  Σ_i ½·d(f_i, x_i)²  +  Σ_d α_d · Σ_{i,i+e_d} d(x_i, x_{i+e_d})
//
//	the data-fidelity term plus, per axis d, the geodesic distance
//	between every pair of forward neighbors. Both terms are handled by
//	closed-form proximal maps (cppa.ProxDistanceSquared, cppa.ProxPair)
//	applied in place with a λ/iter decaying step — a CPPA with a
//	hand-rolled, deterministic evaluation order.
//
// ✨ Key features:
//   - Grid: row-major D-dimensional array of points with linear⇄coords
//     index helpers and forward-neighbor lookup
//   - UnknownMask: inpainting — unfilled cells adopt a neighbor's value
//     on first contact, then join the regular coupling updates
//   - FixedMask: trusted cells are held invariant under the coupling
//     term while still steering their neighbors
//   - Gauss-Seidel sweeps: updates are sequentially visible within a
//     sweep, exactly as the convergence analysis assumes
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/proxman/tvreg"
//
//	g, _ := tvreg.NewGrid(m, []int{rows, cols}, points)
//	opts := tvreg.DefaultOptions()
//	opts.Alpha = tvreg.UniformAlpha(0.3, g.Dims())
//
//	res, err := tvreg.Denoise(m, g, &opts)
//	// res.X, res.Iterations, res.Change
//
// To feed a TV problem to the generic solver instead, see NewProblem,
// which flattens the grid into one long point over a product geometry
// and emits the same data/coupling terms as cppa.ProxFn values.
//
// Errors (sentinel): ErrNilManifold, ErrNilGrid, ErrBadShape,
// ErrPointCount, ErrPointDim, ErrAlphaLength, ErrMaskLength,
// ErrBadLambda — see types.go.
//
// Complexity: O(D·N) proximal evaluations per iteration for N cells.
package tvreg
