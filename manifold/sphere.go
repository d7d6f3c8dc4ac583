package manifold

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sphere is the unit sphere Sⁿ embedded in Rⁿ⁺¹: points are unit
// vectors, distance is the great-circle angle, and geodesics are
// spherical linear interpolation (slerp). It models directional data
// such as surface normals or chromaticity.
//
// Points are assumed to be unit length; callers normalize their inputs.
type Sphere struct {
	n int
}

// NewSphere constructs Sⁿ for n ≥ 1 (ambient dimension n+1).
// Returns ErrBadDimension for n < 1.
func NewSphere(n int) (Sphere, error) {
	if n < 1 {
		return Sphere{}, ErrBadDimension
	}

	return Sphere{n: n}, nil
}

// Dim reports the ambient coordinate length, n+1.
func (s Sphere) Dim() int { return s.n + 1 }

// Distance returns the great-circle angle arccos⟨p,q⟩, clamped against
// rounding so the result is always in [0, π].
func (s Sphere) Distance(p, q Point) float64 {
	return math.Acos(clampUnit(floats.Dot(p, q)))
}

// TypicalDistance returns π/2, a quarter of a great circle.
func (s Sphere) TypicalDistance() float64 { return math.Pi / 2 }

// Geodesic returns the slerp between p and q at parameter t.
//
// Degenerate cases are resolved deterministically: coincident points
// return a copy of p, and antipodal points (where the minimizing
// geodesic is not unique) travel through a fixed orthogonal direction
// derived from p, so repeated solves remain reproducible.
func (s Sphere) Geodesic(p, q Point, t float64) Point {
	d := s.Distance(p, q)
	if d == 0 {
		return p.Clone()
	}
	if math.Pi-d < 1e-12 {
		return s.antipodalGeodesic(p, t)
	}

	// slerp: (sin((1−t)d)·p + sin(td)·q) / sin(d)
	sd := math.Sin(d)
	r := make(Point, len(p))
	floats.AddScaled(r, math.Sin((1-t)*d)/sd, p)
	floats.AddScaled(r, math.Sin(t*d)/sd, q)

	return r
}

// antipodalGeodesic walks from p toward −p through a fixed orthogonal
// waypoint: the coordinate axis least aligned with p, projected onto
// the tangent space at p and normalized.
func (s Sphere) antipodalGeodesic(p Point, t float64) Point {
	// Pick the axis with the smallest |p[i]|.
	axis := 0
	for i := 1; i < len(p); i++ {
		if math.Abs(p[i]) < math.Abs(p[axis]) {
			axis = i
		}
	}

	// v = e_axis − ⟨e_axis,p⟩·p, normalized: a unit tangent at p.
	v := make(Point, len(p))
	v[axis] = 1
	floats.AddScaled(v, -p[axis], p)
	floats.Scale(1/floats.Norm(v, 2), v)

	// Great circle through p and v; antipode reached at angle π.
	r := make(Point, len(p))
	floats.AddScaled(r, math.Cos(t*math.Pi), p)
	floats.AddScaled(r, math.Sin(t*math.Pi), v)

	return r
}

// clampUnit clamps x into [−1, 1] to keep Acos well-defined under
// floating-point drift.
func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}

	return x
}
