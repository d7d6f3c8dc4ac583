// Package tvreg - options, result type and sentinel errors.
package tvreg

import "errors"

// Sentinel errors for grid construction and TV regularization.
var (
	// ErrNilManifold indicates a nil manifold argument.
	ErrNilManifold = errors.New("tvreg: manifold is nil")

	// ErrNilGrid indicates a nil grid argument.
	ErrNilGrid = errors.New("tvreg: grid is nil")

	// ErrBadShape indicates an empty shape or a non-positive extent.
	ErrBadShape = errors.New("tvreg: shape must list positive extents")

	// ErrPointCount indicates the flat point slice does not match the
	// product of the shape extents.
	ErrPointCount = errors.New("tvreg: number of points does not match shape")

	// ErrPointDim indicates a point whose length does not match the
	// manifold's ambient dimension.
	ErrPointDim = errors.New("tvreg: point length does not match manifold dimension")

	// ErrOutOfBounds indicates coordinates or a linear index outside the grid.
	ErrOutOfBounds = errors.New("tvreg: index out of grid bounds")

	// ErrAlphaLength indicates a per-axis weight vector whose length is
	// neither 1 (broadcast) nor the grid dimensionality. Reported before
	// any iteration, wrapped with both lengths.
	ErrAlphaLength = errors.New("tvreg: alpha length does not match grid dimensionality")

	// ErrMaskLength indicates a mask whose length differs from the
	// grid's cell count.
	ErrMaskLength = errors.New("tvreg: mask length does not match grid size")

	// ErrBadLambda indicates a non-positive base step size.
	ErrBadLambda = errors.New("tvreg: lambda must be positive")
)

// Options configures a TV regularization run.
//
// Alpha         – per-axis coupling weights. A single entry is broadcast
//
//	to every axis (see UniformAlpha); otherwise the length
//	must equal the grid dimensionality.
//
// Lambda        – base proximal step size; the sweep at iteration i uses
//
//	Lambda/i. Must be positive.
//
// MinimalChange – change-metric threshold for the outer loop.
// MaxIterations – outer-loop cap; reaching it is not an error, the
//
//	caller assesses convergence from Result.Change.
//
// FixedMask     – cells whose value the coupling term must not move.
//
//	nil means no fixed cells.
//
// UnknownMask   – cells with no observed value, to be inpainted by
//
//	neighbor propagation. nil means none.
type Options struct {
	Alpha         []float64
	Lambda        float64
	MinimalChange float64
	MaxIterations int
	FixedMask     []bool
	UnknownMask   []bool
}

// DefaultOptions returns the documented defaults: Alpha broadcast 1,
// Lambda=1, MinimalChange=1e-9, MaxIterations=1000, no masks.
func DefaultOptions() Options {
	return Options{
		Alpha:         []float64{1},
		Lambda:        1,
		MinimalChange: 1e-9,
		MaxIterations: 1000,
		FixedMask:     nil,
		UnknownMask:   nil,
	}
}

// UniformAlpha returns a weight vector assigning a to all dims axes.
func UniformAlpha(a float64, dims int) []float64 {
	alpha := make([]float64, dims)
	for i := range alpha {
		alpha[i] = a
	}

	return alpha
}

// Result is the outcome of a TV regularization run.
type Result struct {
	// X is the regularized array.
	X *Grid

	// Iterations is the number of full data+coupling sweeps performed.
	Iterations int

	// Change is the final convergence metric: the summed manifold
	// distance between the last two iterates over the measured cells.
	// Measured cells are those that started unknown; when no
	// UnknownMask was given, all cells are measured. Note that cells
	// filled by inpainting stay in the measured set, so with sparse
	// unknowns the metric tracks only that shrinking population.
	Change float64

	// StillUnknown flags cells that never received a value — possible
	// only when an unknown cell has no known cell anywhere in the grid
	// to propagate from. Entries flip true→false over the run, never back.
	StillUnknown []bool
}
