// SPDX-License-Identifier: MIT

package conflict

import (
	"context"
	"errors"
	"runtime"

	"github.com/paulmach/orb"
)

// ErrNonPositiveDistance is returned by Detect when minDistance ≤ 0.
var ErrNonPositiveDistance = errors.New("conflict: min distance must be > 0")

// Conflict is one separation violation between two non-adjacent
// segments. A < B always, so an unordered pair has one canonical form.
type Conflict struct {
	// A and B are the conflicting segment IDs, A < B.
	A, B int

	// PointA is the point on segment A closest to segment B;
	// PointB the converse.
	PointA, PointB orb.Point

	// Distance is the true minimum distance between the two polylines.
	Distance float64

	// Shortfall is the missing separation, minDistance − Distance.
	// Always > 0 for a reported conflict.
	Shortfall float64
}

// Zone is the repair region of one conflict: the disc each side must
// retreat from so the pair reaches the required separation.
type Zone struct {
	// A and B identify the originating conflict pair.
	A, B int

	// Center is the midpoint between the two closest points.
	Center orb.Point

	// Radius is half the conflict's shortfall.
	Radius float64
}

// Options tunes detection.
type Options struct {
	// Ctx cancels a long scan; nil means context.Background().
	Ctx context.Context

	// Workers caps the parallel scan width; values < 1 fall back to
	// runtime.NumCPU(). Worker count never affects the result.
	Workers int
}

// DefaultOptions returns the canonical detection options.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.NumCPU(),
	}
}
