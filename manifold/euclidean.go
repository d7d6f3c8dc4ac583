package manifold

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Euclidean is flat Rⁿ: distance is the l2 norm of the difference and
// geodesics are straight segments. It is the geometry of ordinary
// real-valued signals and images.
type Euclidean struct {
	n int
}

// NewEuclidean constructs flat Rⁿ for n ≥ 1.
// Returns ErrBadDimension for n < 1.
func NewEuclidean(n int) (Euclidean, error) {
	if n < 1 {
		return Euclidean{}, ErrBadDimension
	}

	return Euclidean{n: n}, nil
}

// Dim reports the ambient coordinate length, n.
func (e Euclidean) Dim() int { return e.n }

// Distance returns the l2 norm ‖p−q‖₂.
// Complexity: O(n).
func (e Euclidean) Distance(p, q Point) float64 {
	return floats.Distance(p, q, 2)
}

// TypicalDistance returns √n, the diameter of the unit cube — a neutral
// length scale for default step-size schedules.
func (e Euclidean) TypicalDistance() float64 {
	return math.Sqrt(float64(e.n))
}

// Geodesic returns p + t·(q−p), a fresh Point.
// Complexity: O(n).
func (e Euclidean) Geodesic(p, q Point, t float64) Point {
	r := p.Clone()
	floats.AddScaled(r, t, q)
	floats.AddScaled(r, -t, p)

	return r
}
