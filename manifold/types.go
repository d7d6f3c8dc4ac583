// Package manifold - core types and sentinel errors shared by all
// geometries.
package manifold

import "errors"

// Sentinel errors for manifold construction and point validation.
var (
	// ErrBadDimension indicates a geometry was requested with dimension < 1.
	ErrBadDimension = errors.New("manifold: dimension must be at least 1")

	// ErrDimensionMismatch indicates a Point whose length does not match
	// the geometry's ambient dimension.
	ErrDimensionMismatch = errors.New("manifold: point length does not match manifold dimension")
)

// Point is a point in ambient coordinates. The solvers never interpret
// the coordinates themselves; only a Manifold does.
type Point []float64

// Clone returns an independent copy of p.
// Complexity: O(len(p)).
func (p Point) Clone() Point {
	q := make(Point, len(p))
	copy(q, p)

	return q
}

// Manifold is the geometric capability consumed by the cppa and tvreg
// solvers. Implementations must be stateless and safe for concurrent
// reads; all three methods are pure.
//
// Geodesic must satisfy Geodesic(p, q, 0) == p and Geodesic(p, q, 1) == q
// (up to floating-point rounding) and trace the minimizing geodesic for
// t in between. TypicalDistance must be positive; it anchors the default
// step-size schedule TypicalDistance()/(2·iter).
type Manifold interface {
	// Dim reports the ambient coordinate length a Point must have.
	Dim() int

	// Distance returns the geodesic distance between p and q. Nonnegative.
	Distance(p, q Point) float64

	// TypicalDistance returns a positive characteristic length scale.
	TypicalDistance() float64

	// Geodesic returns the point at parameter t ∈ [0,1] along the
	// minimizing geodesic from p to q. The result is a fresh Point.
	Geodesic(p, q Point, t float64) Point
}
