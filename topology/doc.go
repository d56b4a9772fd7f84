// Package topology builds the graph structure of a planar street
// network: which segments meet at which points, and what lies near what.
//
// What:
//
//   - Graph ingests identified segments and clusters their endpoints
//     into IntersectionPoints by rounding each coordinate to a fixed
//     number of decimal digits (the bucket key).
//   - Buckets touched by two or more distinct segments are true
//     intersections; single-segment buckets are dangling ends, kept
//     internally but excluded from intersection statistics.
//   - Adjacency (segments sharing an endpoint bucket), proximity
//     candidates (R-tree lookup via the spatial package) and network
//     statistics (degree histogram, connected components) are exposed
//     as queries.
//
// Why:
//
//   - Conflict detection must never flag segments that legitimately
//     meet; adjacency is the exclusion list.
//   - Displacement must move a shared intersection as one point; the
//     endpoint groups define which vertices are welded together.
//   - Validation re-derives this structure from displaced geometry and
//     compares, so the build is always from scratch, never patched.
//
// Complexity:
//
//   - NewGraph: O(n log n) for n segments (bucketing plus index build).
//   - Adjacency and bucket lookups: O(1) map access.
//   - Nearby: O(log n + k) via the R-tree.
//   - Stats: O(V + E) breadth-first sweep over the adjacency relation.
//
// Errors:
//
//   - ErrDuplicateID: two input segments carry the same ID.
//   - ErrSegmentNotFound: a query names an ID the graph does not hold.
//   - ErrBadPrecision: Options.Precision is negative.
//   - geom.ErrTooFewPoints (wrapped): an input segment has < 2 vertices.
//
// Degenerate geometry (zero-length segments, repeated consecutive
// vertices) does not abort the build; it is reported per segment ID via
// Degeneracies.
//
// Known limitation: bucketing is deterministic for a fixed precision,
// so two endpoints that are closer than the tolerance but round to
// different buckets (boundary straddling) are treated as distinct
// nodes. This is intentional; the build never widens the search radius
// to merge them.
package topology
