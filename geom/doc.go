// Package geom provides the planar primitives shared by every stage of
// the displacement pipeline: displacement vectors, identified polyline
// segments, and the closest-point kernels used for exact distance tests.
//
// What:
//
//   - Vector: a 2D displacement (dx, dy) with magnitude, normalization,
//     scaling, addition and perpendicular helpers.
//   - Segment: an immutable identity plus an ordered orb.LineString of
//     ≥ 2 vertices; derived length, bounds and local perpendiculars.
//   - Closest-point kernels: point↔edge projection, edge↔edge and
//     segment↔segment closest pairs (true geometry distance, not just
//     endpoint distance).
//   - Bearing: typed s1.Angle direction from one point to another,
//     used for angular ordering at intersections.
//
// Why:
//
//   - Conflict detection needs exact minimum distances between polyline
//     geometries, with the realizing point on each side.
//   - The displacement engine needs perpendiculars, second differences
//     (discrete curvature) and vector arithmetic on shared vertices.
//   - Topology validation needs stable departure bearings.
//
// Geometry is built on github.com/paulmach/orb types (orb.Point,
// orb.LineString, orb.Bound) with github.com/paulmach/orb/planar for
// Euclidean measures; no spherical math is involved anywhere.
//
// Coordinate equality is tolerance-based (DefaultTolerance = 1e-6) to
// absorb round-off introduced by displacement arithmetic.
//
// Errors:
//
//   - ErrZeroVector    if a (near-)zero-length vector is normalized.
//   - ErrTooFewPoints  if a segment has fewer than two vertices.
package geom
