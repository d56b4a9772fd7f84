// Package wktio reads and writes street networks as Well-Known Text,
// one LINESTRING per line:
//
//	LINESTRING (0 0, 10 0)
//	LINESTRING (0 2, 10 2)
//
// What:
//
//   - Parse / ParseFile turn such text into segments with stable IDs in
//     file order, starting at 0. Blank lines and lines starting with
//     '#' are skipped.
//   - Writer formats segments back at a configurable decimal precision,
//     preserving input order, and writes files atomically (temp file
//     plus rename) so a failed run never clobbers existing output.
//
// Errors:
//
//   - A malformed line surfaces as *ParseError carrying the 1-based
//     line number and the offending text (truncated for readability);
//     errors.Is/As reach the underlying cause through it.
//   - ErrNoGeometries: the input contained no LINESTRING at all.
//   - ErrEmptyNetwork: asked to write zero segments.
//   - ErrNegativePrecision: a Writer cannot round to negative digits.
//
// Complexity: linear in the input size for both directions.
package wktio
