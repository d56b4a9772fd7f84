// Package spatial provides an R-tree backed index over segment bounding
// boxes for fast proximity lookups.
//
// What:
//
//   - Index maps integer segment IDs to their axis-aligned bounds.
//   - Within(bound, radius) reports every indexed ID whose bounds come
//     within radius of the query bound, in ascending ID order.
//   - Candidates(id, radius) is the common self-query: neighbors of an
//     already-indexed segment, excluding the segment itself.
//
// Why:
//
//   - Conflict detection compares segment pairs; scanning all O(n²)
//     pairs drowns large networks. The index prunes the candidate set
//     to bounds that can possibly violate the separation threshold.
//   - Bounding-box distance never exceeds true geometry distance, so
//     pruning by padded bounds is conservative: no conflicting pair is
//     ever skipped.
//
// Complexity:
//
//   - Insert: O(log n) amortized.
//   - Within / Candidates: O(log n + k) for k reported IDs.
//
// The index is append-only and safe for concurrent readers once loading
// has finished. Mixing Insert with queries from other goroutines is not
// supported.
package spatial
