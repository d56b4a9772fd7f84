// SPDX-License-Identifier: MIT

package displace

import (
	"context"
	"errors"

	"github.com/katalvlaran/cartoshift/conflict"
	"github.com/katalvlaran/cartoshift/geom"
)

// ErrFieldMismatch is returned by Apply when a field's vector count
// disagrees with a segment's vertex count.
var ErrFieldMismatch = errors.New("displace: field does not match segment vertices")

// Field is a computed displacement field: one vector per vertex per
// segment, plus the descent outcome.
type Field struct {
	// Vectors maps segment ID to its per-vertex displacement, aligned
	// with the segment's vertex order. Vertices welded into one
	// intersection bucket carry identical vectors.
	Vectors map[int][]geom.Vector

	// Energy is the final value of the minimized functional.
	Energy float64

	// Iterations is the number of descent iterations performed.
	Iterations int

	// Converged is true when the loop stopped on the energy-delta
	// threshold (or a flat gradient) rather than exhausting
	// MaxIterations or stalling below the minimum step.
	Converged bool
}

// Options tunes one engine invocation.
type Options struct {
	// Ctx cancels a long run; nil means context.Background().
	Ctx context.Context

	// OnIteration, when set, is called after every accepted descent
	// step with the iteration number, the current energy and the count
	// of input conflicts currently at or above the required
	// separation. Must be fast; it runs inside the loop.
	OnIteration func(iteration int, energy float64, resolved int)
}

// DefaultOptions returns the canonical engine options.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// Result is the outcome of a full displacement run.
type Result struct {
	// Segments is the displaced geometry, same IDs and vertex counts
	// as the input, in graph order.
	Segments []geom.Segment

	// Field is the displacement field that produced Segments.
	Field *Field

	// Unresolved lists the input conflicts still violating
	// MinDistance on the displaced geometry, re-measured, in input
	// order. Empty means full resolution.
	Unresolved []conflict.Conflict
}
