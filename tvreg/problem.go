// Package tvreg - bridge from grids to the generic cppa solver.
//
// The specialized sweep in Denoise handles masks and inpainting; this
// file exposes the same objective as plain cppa building blocks for
// callers who want the generic solver's order strategies, stopping
// criteria and tracing instead. The grid is flattened row-major into a
// single long point over a product geometry, one block per cell.
package tvreg

import (
	"math"

	"github.com/katalvlaran/proxman/cppa"
	"github.com/katalvlaran/proxman/manifold"
)

// product is the N-fold product of a base manifold: points are N
// consecutive coordinate blocks, distance is the l2 norm of the
// per-cell distances, geodesics run cellwise.
type product struct {
	base manifold.Manifold
	n    int
}

func (p product) Dim() int { return p.n * p.base.Dim() }

func (p product) Distance(a, b manifold.Point) float64 {
	k := p.base.Dim()
	sum := 0.0
	for i := 0; i < p.n; i++ {
		d := p.base.Distance(a[i*k:(i+1)*k], b[i*k:(i+1)*k])
		sum += d * d
	}

	return math.Sqrt(sum)
}

func (p product) TypicalDistance() float64 {
	return p.base.TypicalDistance() * math.Sqrt(float64(p.n))
}

func (p product) Geodesic(a, b manifold.Point, t float64) manifold.Point {
	k := p.base.Dim()
	r := make(manifold.Point, len(a))
	for i := 0; i < p.n; i++ {
		copy(r[i*k:], p.base.Geodesic(a[i*k:(i+1)*k], b[i*k:(i+1)*k], t))
	}

	return r
}

// Flatten packs the grid row-major into one long point suitable for the
// problem built by NewProblem.
func Flatten(g *Grid) manifold.Point {
	k := g.man.Dim()
	flat := make(manifold.Point, g.Len()*k)
	for i := 0; i < g.Len(); i++ {
		copy(flat[i*k:], g.At(i))
	}

	return flat
}

// FromFlat unpacks a flattened point back into a grid of the given
// shape on m. Errors as NewGrid.
func FromFlat(m manifold.Manifold, shape []int, flat manifold.Point) (*Grid, error) {
	if m == nil {
		return nil, ErrNilManifold
	}
	k := m.Dim()
	if len(flat)%k != 0 {
		return nil, ErrPointCount
	}
	points := make([]manifold.Point, len(flat)/k)
	for i := range points {
		points[i] = flat[i*k : (i+1)*k].Clone()
	}

	return NewGrid(m, shape, points)
}

// DataProxes returns one data-fidelity proximal map per cell of f, each
// acting on the flattened iterate: block i moves toward the observation
// f_i under the resolvent of ½·d(f_i,·)².
func DataProxes(m manifold.Manifold, f *Grid) []cppa.ProxFn {
	k := m.Dim()
	proxes := make([]cppa.ProxFn, f.Len())
	for i := 0; i < f.Len(); i++ {
		i, obs := i, f.At(i).Clone()
		proxes[i] = func(lambda float64, x manifold.Point) manifold.Point {
			r := x.Clone()
			copy(r[i*k:], cppa.ProxDistanceSquared(m, obs, lambda, x[i*k:(i+1)*k]))

			return r
		}
	}

	return proxes
}

// CouplingProxes returns one pairwise TV proximal map per (cell, axis)
// forward-neighbor pair of g, each acting on the flattened iterate:
// blocks i and j move toward each other under the joint resolvent of
// α_d·d(x_i, x_j). Masks are not consulted here; masked and inpainting
// behavior belongs to the specialized sweep in Denoise.
//
// Errors: ErrAlphaLength (wrapped) when alpha cannot broadcast to the
// grid's axes.
func CouplingProxes(m manifold.Manifold, g *Grid, alpha []float64) ([]cppa.ProxFn, error) {
	a, err := broadcastAlpha(alpha, g.Dims())
	if err != nil {
		return nil, err
	}

	return couplingProxes(m, g, a), nil
}

// couplingProxes builds the pair proxes from an already broadcast
// per-axis weight vector.
func couplingProxes(m manifold.Manifold, g *Grid, a []float64) []cppa.ProxFn {
	k := m.Dim()
	var proxes []cppa.ProxFn
	for d := 0; d < g.Dims(); d++ {
		for i := 0; i < g.Len(); i++ {
			j, ok := g.Forward(i, d)
			if !ok {
				continue
			}
			i, j, w := i, j, a[d]
			proxes = append(proxes, func(lambda float64, x manifold.Point) manifold.Point {
				p, q := cppa.ProxPair(m, x[i*k:(i+1)*k], x[j*k:(j+1)*k], w*lambda)
				r := x.Clone()
				copy(r[i*k:], p)
				copy(r[j*k:], q)

				return r
			})
		}
	}

	return proxes
}

// NewProblem assembles the full TV objective over f — data proxes first,
// then coupling proxes axis by axis — as a cppa.Problem on the product
// geometry, plus the flattened observation as a ready initial point.
// The problem's cost function reports the true TV objective value.
//
// Errors: ErrNilManifold, ErrNilGrid, ErrAlphaLength (wrapped).
func NewProblem(m manifold.Manifold, f *Grid, alpha []float64) (*cppa.Problem, manifold.Point, error) {
	if m == nil {
		return nil, nil, ErrNilManifold
	}
	if f == nil {
		return nil, nil, ErrNilGrid
	}

	a, err := broadcastAlpha(alpha, f.Dims())
	if err != nil {
		return nil, nil, err
	}
	proxes := append(DataProxes(m, f), couplingProxes(m, f, a)...)
	cost := tvCost(m, f, a)

	prob, err := cppa.NewProblem(product{base: m, n: f.Len()}, cost, proxes)
	if err != nil {
		return nil, nil, err
	}

	return prob, Flatten(f), nil
}

// tvCost evaluates ½Σ d(f_i,x_i)² + Σ_d α_d Σ d(x_i, x_{i+e_d}) on the
// flattened iterate.
func tvCost(m manifold.Manifold, f *Grid, alpha []float64) cppa.CostFn {
	k := m.Dim()

	return func(x manifold.Point) float64 {
		total := 0.0
		for i := 0; i < f.Len(); i++ {
			d := m.Distance(f.At(i), x[i*k:(i+1)*k])
			total += d * d / 2
		}
		for d := 0; d < f.Dims(); d++ {
			for i := 0; i < f.Len(); i++ {
				j, ok := f.Forward(i, d)
				if !ok {
					continue
				}
				total += alpha[d] * m.Distance(x[i*k:(i+1)*k], x[j*k:(j+1)*k])
			}
		}

		return total
	}
}
