// Package tvreg - the TV regularization sweep.
package tvreg

import (
	"fmt"

	"github.com/katalvlaran/proxman/cppa"
	"github.com/katalvlaran/proxman/manifold"
)

// Denoise runs TV regularization of the observed grid f and returns the
// regularized array together with the iteration count and the final
// change metric. opts may be nil for DefaultOptions.
//
// One outer iteration i (1-indexed) performs, with step λ_i = Lambda/i:
//
//  1. Data pass — every cell, masked or not, moves toward its
//     observation: x_c ← prox_{λ_i·½d(f_c,·)²}(x_c).
//  2. Coupling pass, once per axis d — for every cell and its forward
//     neighbor along d: if either side is a still-unfilled unknown
//     cell it simply adopts the other side's value (inpainting
//     propagation); otherwise both move toward each other via the
//     pairwise TV resolvent with step α_d·λ_i, except that cells in
//     FixedMask keep their value while their neighbor may still move.
//
// Sweeps traverse cells in increasing linear index and updates are
// visible immediately within a sweep (Gauss-Seidel); this in-place
// sequencing is part of the contract, not an implementation detail.
//
// The loop runs while (change > MinimalChange && iter < MaxIterations)
// || iter == 1, so at least one full sweep always executes. Reaching
// MaxIterations is not an error.
//
// Errors: ErrNilManifold, ErrNilGrid, ErrBadLambda, ErrAlphaLength
// (wrapped, naming both lengths), ErrMaskLength — all reported before
// any mutation.
//
// Complexity: O(iterations · D · N) proximal evaluations for N cells.
func Denoise(m manifold.Manifold, f *Grid, opts *Options) (*Result, error) {
	if m == nil {
		return nil, ErrNilManifold
	}
	if f == nil {
		return nil, ErrNilGrid
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Lambda <= 0 {
		return nil, ErrBadLambda
	}

	dims, n := f.Dims(), f.Len()
	alpha, err := broadcastAlpha(o.Alpha, dims)
	if err != nil {
		return nil, err
	}
	fixed, err := normalizeMask(o.FixedMask, n)
	if err != nil {
		return nil, err
	}
	unknown, err := normalizeMask(o.UnknownMask, n)
	if err != nil {
		return nil, err
	}

	// stillUnknown drains monotonically as unfilled cells acquire a
	// propagated value; it never regains entries.
	stillUnknown := append([]bool(nil), unknown...)

	// The change metric sums over the cells that started unknown. With
	// no UnknownMask that set would be empty and every run would stop
	// after one sweep with metric 0, so the measured set falls back to
	// all cells.
	measured := make([]int, 0, n)
	for i, u := range unknown {
		if u {
			measured = append(measured, i)
		}
	}
	measureAll := len(measured) == 0

	x := f.Clone()
	iter := 1
	change := o.MinimalChange

	for (change > o.MinimalChange && iter < o.MaxIterations) || iter == 1 {
		xold := x.Clone()
		lambda := o.Lambda / float64(iter)

		// Data pass: unconditional, including masked cells — FixedMask
		// only suppresses the coupling write-back below.
		for i := 0; i < n; i++ {
			x.Set(i, cppa.ProxDistanceSquared(m, f.At(i), lambda, x.At(i)))
		}

		// Coupling pass, one axis at a time.
		for d := 0; d < dims; d++ {
			for i := 0; i < n; i++ {
				j, ok := x.Forward(i, d)
				if !ok {
					continue
				}
				switch {
				case stillUnknown[i]:
					x.Set(i, x.At(j).Clone())
					stillUnknown[i] = false
				case stillUnknown[j]:
					x.Set(j, x.At(i).Clone())
					stillUnknown[j] = false
				default:
					a, b := cppa.ProxPair(m, x.At(i), x.At(j), alpha[d]*lambda)
					if !fixed[i] {
						x.Set(i, a)
					}
					if !fixed[j] {
						x.Set(j, b)
					}
				}
			}
		}

		iter++
		change = 0
		if measureAll {
			for i := 0; i < n; i++ {
				change += m.Distance(x.At(i), xold.At(i))
			}
		} else {
			for _, i := range measured {
				change += m.Distance(x.At(i), xold.At(i))
			}
		}
	}

	return &Result{
		X:            x,
		Iterations:   iter - 1,
		Change:       change,
		StillUnknown: stillUnknown,
	}, nil
}

// broadcastAlpha resolves the per-axis weights: one entry broadcasts to
// all axes, otherwise the length must equal the grid dimensionality.
func broadcastAlpha(alpha []float64, dims int) ([]float64, error) {
	switch len(alpha) {
	case 0:
		return UniformAlpha(1, dims), nil
	case 1:
		return UniformAlpha(alpha[0], dims), nil
	case dims:
		return append([]float64(nil), alpha...), nil
	default:
		return nil, fmt.Errorf("%w: %d weights for %d axes", ErrAlphaLength, len(alpha), dims)
	}
}

// normalizeMask validates a mask's length, expanding nil to all-false.
func normalizeMask(mask []bool, n int) ([]bool, error) {
	if mask == nil {
		return make([]bool, n), nil
	}
	if len(mask) != n {
		return nil, fmt.Errorf("%w: %d entries for %d cells", ErrMaskLength, len(mask), n)
	}

	return append([]bool(nil), mask...), nil
}
