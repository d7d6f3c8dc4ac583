package tvreg_test

import (
	"fmt"

	"github.com/katalvlaran/proxman/manifold"
	"github.com/katalvlaran/proxman/tvreg"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDenoise
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 1-D signal on the real line with a single spike: f = [0, 10, 0].
//	One TV sweep with α=1, λ=1 pulls the spike toward its neighbors and
//	lifts the flanks — (0,10) → (1,9), then (9,0) → (8,1).
//
// Use case:
//
//	The smallest possible denoising run; see examples/ for longer
//	signals and other geometries.
func ExampleDenoise() {
	e, _ := manifold.NewEuclidean(1)
	f, _ := tvreg.NewGrid(e, []int{3}, []manifold.Point{{0}, {10}, {0}})

	opts := tvreg.DefaultOptions()
	opts.MaxIterations = 1

	res, _ := tvreg.Denoise(e, f, &opts)
	fmt.Printf("x = %.0f %.0f %.0f\n", res.X.At(0)[0], res.X.At(1)[0], res.X.At(2)[0])
	fmt.Printf("iterations=%d change=%.0f\n", res.Iterations, res.Change)
	// Output:
	// x = 1 8 1
	// iterations=1 change=4
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDenoise_inpainting
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The middle cell of f = [5, _, 5] has no observation (UnknownMask).
//	During the first coupling pass it adopts the value of its known
//	neighbor and leaves the still-unknown set.
func ExampleDenoise_inpainting() {
	e, _ := manifold.NewEuclidean(1)
	f, _ := tvreg.NewGrid(e, []int{3}, []manifold.Point{{5}, {0}, {5}})

	opts := tvreg.DefaultOptions()
	opts.MaxIterations = 1
	opts.UnknownMask = []bool{false, true, false}

	res, _ := tvreg.Denoise(e, f, &opts)
	fmt.Printf("x = %.0f %.0f %.0f\n", res.X.At(0)[0], res.X.At(1)[0], res.X.At(2)[0])
	fmt.Printf("still unknown: %v\n", res.StillUnknown)
	// Output:
	// x = 5 5 5
	// still unknown: [false false false]
}
