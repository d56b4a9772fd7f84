// Package conflict finds pairs of non-adjacent segments that violate a
// minimum separation distance.
//
// What:
//
//   - Detect scans a topology.Graph for unordered pairs of segments
//     that do not share an intersection yet lie closer than
//     minDistance, computing the exact closest point on each side and
//     the shortfall (minDistance − distance).
//   - For filters a conflict set down to one segment's conflicts.
//   - Zones derives the repair region per conflict: a disc of radius
//     shortfall/2 centered between the two closest points.
//
// Why:
//
//   - Adjacent segments legitimately touch; flagging them would tear
//     the network apart. The graph's adjacency is the exclusion list.
//   - The R-tree candidate query keeps the scan sub-quadratic; exact
//     polyline-to-polyline distance is computed only for candidates
//     whose bounding boxes are close enough to possibly conflict.
//
// Guarantees:
//
//   - Soundness: every reported conflict has distance < minDistance
//     and a non-adjacent pair.
//   - Completeness: every non-adjacent pair with true distance
//     < minDistance is reported exactly once (A < B).
//   - Determinism: output is sorted by (A, B) regardless of worker
//     count or scheduling.
//
// Complexity: O(n·(log n + k·e²)) for n segments, k candidates each,
// e vertices per segment; pathological all-overlapping inputs degrade
// to the quadratic pair scan.
//
// Errors:
//
//   - ErrNonPositiveDistance: minDistance ≤ 0.
//   - Context cancellation surfaces as the context's error.
package conflict
