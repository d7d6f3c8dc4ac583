package tvreg

import (
	"github.com/katalvlaran/proxman/manifold"
)

// Grid is a D-dimensional array of manifold points in row-major flat
// storage: the last axis varies fastest. Cells are addressed either by
// linear index (the sweep order) or by per-axis coordinates.
type Grid struct {
	man     manifold.Manifold
	shape   []int
	strides []int
	points  []manifold.Point
}

// NewGrid validates shape and points and builds a Grid. The shape must
// list positive extents whose product equals len(points), and every
// point must match the manifold's ambient dimension. Points are
// deep-copied to prevent external mutation.
//
// Errors: ErrNilManifold, ErrBadShape, ErrPointCount, ErrPointDim.
// Complexity: O(N·dim) time and memory for N cells.
func NewGrid(m manifold.Manifold, shape []int, points []manifold.Point) (*Grid, error) {
	if m == nil {
		return nil, ErrNilManifold
	}
	if len(shape) == 0 {
		return nil, ErrBadShape
	}
	n := 1
	for _, s := range shape {
		if s < 1 {
			return nil, ErrBadShape
		}
		n *= s
	}
	if len(points) != n {
		return nil, ErrPointCount
	}
	for _, p := range points {
		if len(p) != m.Dim() {
			return nil, ErrPointDim
		}
	}

	g := &Grid{
		man:     m,
		shape:   append([]int(nil), shape...),
		strides: rowMajorStrides(shape),
		points:  make([]manifold.Point, n),
	}
	for i, p := range points {
		g.points[i] = p.Clone()
	}

	return g, nil
}

// rowMajorStrides precomputes the linear step per axis: the last axis
// has stride 1.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	strides[len(shape)-1] = 1
	for d := len(shape) - 2; d >= 0; d-- {
		strides[d] = strides[d+1] * shape[d+1]
	}

	return strides
}

// Manifold returns the manifold the grid's points live on.
func (g *Grid) Manifold() manifold.Manifold { return g.man }

// Dims returns D, the number of axes.
func (g *Grid) Dims() int { return len(g.shape) }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.points) }

// Shape returns a copy of the per-axis extents.
func (g *Grid) Shape() []int { return append([]int(nil), g.shape...) }

// At returns the point stored at linear index i. The returned slice is
// the live cell storage; use Set to replace it, or Clone the result
// before mutating.
func (g *Grid) At(i int) manifold.Point { return g.points[i] }

// Set replaces the point at linear index i.
func (g *Grid) Set(i int, p manifold.Point) { g.points[i] = p }

// Index converts per-axis coordinates to a linear index.
// Returns ErrOutOfBounds if any coordinate leaves the grid.
func (g *Grid) Index(coords []int) (int, error) {
	if len(coords) != len(g.shape) {
		return 0, ErrOutOfBounds
	}
	idx := 0
	for d, c := range coords {
		if c < 0 || c >= g.shape[d] {
			return 0, ErrOutOfBounds
		}
		idx += c * g.strides[d]
	}

	return idx, nil
}

// Coords converts a linear index to per-axis coordinates.
func (g *Grid) Coords(idx int) []int {
	coords := make([]int, len(g.shape))
	for d := range g.shape {
		coords[d] = (idx / g.strides[d]) % g.shape[d]
	}

	return coords
}

// Forward returns the linear index of the forward neighbor of cell idx
// along axis d, and whether that neighbor exists (false at the upper
// boundary, and for any axis or index outside the grid). Complexity: O(1).
func (g *Grid) Forward(idx, d int) (int, bool) {
	if d < 0 || d >= len(g.shape) || idx < 0 || idx >= len(g.points) {
		return 0, false
	}
	if (idx/g.strides[d])%g.shape[d]+1 >= g.shape[d] {
		return 0, false
	}

	return idx + g.strides[d], true
}

// Clone returns an independent deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		man:     g.man,
		shape:   g.shape,
		strides: g.strides,
		points:  make([]manifold.Point, len(g.points)),
	}
	for i, p := range g.points {
		c.points[i] = p.Clone()
	}

	return c
}
