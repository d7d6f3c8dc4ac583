package manifold

import "math"

// Circle is S¹ represented as a single angle in (−π, π]. Distance is
// the absolute phase difference along the shorter arc, and geodesics
// walk that arc. It models phase-valued data (interferometry, signal
// phase, wind direction).
type Circle struct{}

// NewCircle constructs the circle geometry. It never fails; the
// constructor exists for symmetry with the other geometries.
func NewCircle() Circle { return Circle{} }

// Dim reports 1: a point is a single angle.
func (Circle) Dim() int { return 1 }

// wrapAngle maps a to the representative in (−π, π].
func wrapAngle(a float64) float64 {
	w := math.Mod(a+math.Pi, 2*math.Pi)
	if w <= 0 {
		w += 2 * math.Pi
	}

	return w - math.Pi
}

// Distance returns the shorter-arc phase difference |q−p| wrapped to [0, π].
func (Circle) Distance(p, q Point) float64 {
	return math.Abs(wrapAngle(q[0] - p[0]))
}

// TypicalDistance returns π/2, a quarter turn.
func (Circle) TypicalDistance() float64 { return math.Pi / 2 }

// Geodesic walks a fraction t of the shorter arc from p toward q and
// rewraps the result into (−π, π].
func (Circle) Geodesic(p, q Point, t float64) Point {
	return Point{wrapAngle(p[0] + t*wrapAngle(q[0]-p[0]))}
}
