// Package proxman is your toolbox for optimizing sums of functions whose
// variables live on a curved space — from the generic cyclic proximal
// point algorithm (CPPA) to total-variation denoising and inpainting of
// manifold-valued signals and images.
//
// 🚀 What is proxman?
//
//	A pure-Go numerical library that brings together:
//		• Manifold capability: distance, typical scale & geodesic interpolation
//		• Reference geometries: Euclidean Rⁿ, the circle S¹, the sphere Sⁿ
//		• Proximal maps: closed-form resolvents of distance terms & pairwise couplings
//		• CPPA solver: Gauss-Seidel sweeps, decaying step sizes, pluggable stopping
//		• Evaluation orders: Linear, Random and FixedRandom sweep permutations
//		• TV regularization: denoising, inpainting & mask-constrained editing
//		  of D-dimensional arrays of manifold points
//
// ✨ Why choose proxman?
//
//   - Deterministic – every random choice sits behind an explicit seed
//   - Faithful – in-place Gauss-Seidel sweeps, exactly as the math prescribes
//   - Minimal API – three small packages, plain options structs, sentinel errors
//   - Extensible – bring your own manifold; the solvers only see the interface
//
// Everything is organized under three subpackages:
//
//	manifold/ — Point, the Manifold interface & small reference geometries
//	cppa/     — proximal maps, problems, evaluation orders & the CPPA solver
//	tvreg/    — grids of manifold points, masks & the TV regularization sweep
//
// Quick sketch (1-D total variation on the real line):
//
//	    f:  0 ──── 10 ──── 0        noisy signal
//	    x:  1 ────  8 ──── 1        after one TV sweep
//
//	the spike is pulled toward its neighbors, the neighbors rise slightly.
//
// Dive into examples/ for full walkthroughs: signal denoising with plots,
// phase-valued inpainting on the circle, and geodesic medians via the
// generic solver.
//
//	go get github.com/katalvlaran/proxman
package proxman
