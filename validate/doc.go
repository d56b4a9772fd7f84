// Package validate certifies that displacement preserved the network's
// topology. It compares the graph built on the original geometry with
// the graph rebuilt from scratch on the displaced geometry; rebuilding
// keeps the check independent of anything the displacement engine
// believes it did.
//
// What:
//
//   - Compare(original, displaced, opts) runs all structural checks and
//     returns an always-populated Result. It never fails: a broken
//     topology is a finding, not an error, and the caller decides to
//     discard the displacement when Valid is false.
//
// Checks, in order:
//
//  1. The true intersection counts match.
//  2. Every original intersection reappears in the displaced graph with
//     the identical segment-ID set. Locations legitimately move, so a
//     set occurring at several places is matched nearest-first.
//  3. At every matched intersection of degree ≥ 3, the clockwise order
//     of departing streets is unchanged. Rotations of the cyclic order
//     are fine; reflections (a mirrored junction) are not.
//  4. Every segment pair adjacent before displacement is still adjacent
//     after. Lost pairs land in BrokenConnections.
//
// Every detected break appends one human-readable line to Messages;
// Valid is true exactly when Messages stays empty.
//
// Complexity: O(S + I·d log d + P) for S segments, I intersections of
// maximum degree d and P adjacent pairs.
package validate
