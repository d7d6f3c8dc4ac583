// Package cppa - closed-form proximal maps shared by the generic solver
// and the TV regularization sweep.
package cppa

import (
	"math"

	"github.com/katalvlaran/proxman/manifold"
)

// ProxDistanceSquared is the resolvent of g(y) = ½·distance(f,y)²:
//
//	prox_{λ·g}(x) = γ(x, f; λ/(1+λ))
//
// i.e. the point a geodesic fraction λ/(1+λ) of the way from x toward
// the observation f. As λ → 0 the point stays put; as λ → ∞ it reaches f.
func ProxDistanceSquared(m manifold.Manifold, f manifold.Point, lambda float64, x manifold.Point) manifold.Point {
	return m.Geodesic(x, f, lambda/(1+lambda))
}

// DistanceSquaredProx packages ProxDistanceSquared with a fixed
// observation f as a ProxFn for the generic solver.
func DistanceSquaredProx(m manifold.Manifold, f manifold.Point) ProxFn {
	return func(lambda float64, x manifold.Point) manifold.Point {
		return ProxDistanceSquared(m, f, lambda, x)
	}
}

// ProxDistance is the resolvent of g(y) = distance(f,y): x moves toward
// f by arc length min(λ, distance(x,f)) — never past f. This is the
// building block of geodesic medians.
func ProxDistance(m manifold.Manifold, f manifold.Point, lambda float64, x manifold.Point) manifold.Point {
	d := m.Distance(x, f)
	if d == 0 {
		return x.Clone()
	}

	return m.Geodesic(x, f, math.Min(lambda, d)/d)
}

// DistanceProx packages ProxDistance with a fixed observation f as a
// ProxFn for the generic solver.
func DistanceProx(m manifold.Manifold, f manifold.Point) ProxFn {
	return func(lambda float64, x manifold.Point) manifold.Point {
		return ProxDistance(m, f, lambda, x)
	}
}

// ProxPair is the joint resolvent of the pairwise total-variation term
// g(a,b) = distance(a,b): both points move toward each other along the
// connecting geodesic by arc length min(λ, distance(a,b)/2), so they
// can meet in the middle but never swap sides.
//
// Returns fresh points; a and b are not mutated.
func ProxPair(m manifold.Manifold, a, b manifold.Point, lambda float64) (manifold.Point, manifold.Point) {
	d := m.Distance(a, b)
	if d == 0 {
		return a.Clone(), b.Clone()
	}
	t := math.Min(lambda, d/2) / d

	return m.Geodesic(a, b, t), m.Geodesic(b, a, t)
}
