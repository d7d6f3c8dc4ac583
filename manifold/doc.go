// Package manifold defines the geometric capability consumed by the
// proxman solvers, plus a few small reference geometries.
//
// Overview:
//
//   - A Point is a slice of ambient coordinates. The solvers treat it as
//     opaque; only a Manifold knows how to interpret it.
//   - A Manifold supplies the three primitives every proximal method in
//     this module is built from:
//     – Distance(p, q): geodesic distance between two points.
//     – Geodesic(p, q, t): the point a fraction t along the minimizing
//     geodesic from p to q (t=0 ⇒ p, t=1 ⇒ q).
//     – TypicalDistance(): a positive length scale used by default
//     step-size schedules.
//
// Reference geometries:
//
//   - Euclidean — flat Rⁿ; geodesics are straight segments. The workhorse
//     for tests and for real-valued signals/images.
//   - Circle — S¹ stored as a single angle in (−π, π]; distances and
//     geodesics wrap around the shorter arc. Models phase data.
//   - Sphere — the unit sphere Sⁿ embedded in Rⁿ⁺¹; geodesics follow
//     great circles (slerp). Models directional data.
//
// Anything satisfying the Manifold interface plugs into cppa and tvreg
// unchanged; the reference geometries exist so the solvers can be used
// (and tested) out of the box, not as a general-purpose manifold zoo.
//
// Errors (sentinel):
//
//   - ErrBadDimension  if a geometry is constructed with dimension < 1.
//   - ErrDimensionMismatch if a Point's length does not match the
//     geometry's ambient dimension.
//
// See examples in example_test.go for usage patterns.
package manifold
