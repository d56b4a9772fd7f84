// Package displace computes and applies the displacement field that
// resolves spatial conflicts while keeping the network recognizable.
//
// What:
//
//   - Calculate derives a per-vertex displacement field for a graph and
//     its detected conflicts by minimizing a two-term energy under a
//     hard displacement bound.
//   - Apply materializes new segments (same IDs, same vertex counts)
//     from a field; it never mutates the graph's geometry.
//   - Run chains both and re-measures every input conflict on the
//     displaced geometry, returning whatever remains unresolved.
//
// Model:
//
//	E = Alpha·E_internal + Beta·E_external
//
//   - E_internal is shape fidelity: the squared deviation of each
//     interior vertex's discrete curvature (second difference) from its
//     original value, weighted by 1/(ε + ‖κ_orig‖) so straight spans
//     resist bending harder than already-curved ones.
//   - E_external is conflict pressure: the squared shortfall below the
//     separation target, summed over the live conflicts. The target
//     overshoots MinDistance by a small margin because a quadratic
//     penalty only reaches its own zero asymptotically; resolution is
//     still judged against MinDistance itself.
//
// The descent is iterative: per-slot numeric gradients (central
// differences over the local energy terms), one simultaneous step per
// iteration scaled so the largest vertex move equals the current step
// size, backtracking halving whenever a step fails to reduce the global
// energy, and a hard per-vertex clamp at MaxDisplacement after every
// step. Vertices welded into one intersection bucket share a single
// displacement slot, so a junction moves as one point by construction.
//
// Strategies shape the proposed step direction only:
//
//   - StrategyPerpendicular projects the gradient onto the local
//     segment normal.
//   - StrategyAngular projects onto the tangent of rotation about the
//     segment's nearest intersection (the rotation center is pinned).
//   - StrategyHybrid uses the angular direction near intersections and
//     the perpendicular one elsewhere.
//
// Welded (degree ≥ 2) slots always follow the raw negative gradient: a
// single segment's normal would bias a point that several segments own.
//
// Complexity: O(I·(S·w + C·e²)) for I iterations, S slots with w local
// energy terms each, C conflicts over segments of e vertices.
//
// Errors:
//
//   - Config.Validate joins one sentinel per violated field
//     (ErrMinDistance, ErrMaxDisplacement, ErrStrategy, ErrAlpha,
//     ErrBeta, ErrMaxIterations, ErrConvergence, ErrPrecision), so a
//     caller can report every problem at once.
//   - ErrFieldMismatch: Apply got a field whose vector count disagrees
//     with a segment's vertex count.
//   - Context cancellation surfaces as the context's error.
//
// Exhausted iterations with conflicts still open is not an error: the
// best geometry found is returned together with the unresolved list.
package displace
