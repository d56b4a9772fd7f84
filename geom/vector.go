// SPDX-License-Identifier: MIT
package geom

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
)

// Sentinel errors for geom primitives.
var (
	// ErrZeroVector indicates an attempt to normalize a vector whose
	// magnitude is indistinguishable from zero.
	ErrZeroVector = errors.New("geom: cannot normalize zero-length vector")

	// ErrTooFewPoints indicates a segment with fewer than two vertices.
	ErrTooFewPoints = errors.New("geom: segment requires at least 2 points")
)

// DefaultTolerance is the coordinate tolerance used for point equality
// throughout the pipeline. Displacement arithmetic accumulates round-off
// well below this bound.
const DefaultTolerance = 1e-6

// zeroEps is the magnitude below which a vector is treated as zero.
const zeroEps = 1e-12

// Vector is a 2D displacement with components (DX, DY).
// The zero value is the null displacement.
type Vector struct {
	DX, DY float64
}

// NewVector returns the vector pointing from `from` to `to`.
// Complexity: O(1).
func NewVector(from, to orb.Point) Vector {
	return Vector{DX: to[0] - from[0], DY: to[1] - from[1]}
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.DX, v.DY)
}

// IsZero reports whether v is indistinguishable from the null vector.
func (v Vector) IsZero() bool {
	return v.Magnitude() < zeroEps
}

// Normalize returns the unit vector in the direction of v.
// Returns ErrZeroVector when v has (near-)zero magnitude: a zero-length
// vector has no direction.
func (v Vector) Normalize() (Vector, error) {
	mag := v.Magnitude()
	if mag < zeroEps {
		return Vector{}, ErrZeroVector
	}

	return Vector{DX: v.DX / mag, DY: v.DY / mag}, nil
}

// Scale returns v multiplied by factor.
func (v Vector) Scale(factor float64) Vector {
	return Vector{DX: v.DX * factor, DY: v.DY * factor}
}

// Add returns the component-wise sum v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{DX: v.DX + o.DX, DY: v.DY + o.DY}
}

// Sub returns the component-wise difference v − o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{DX: v.DX - o.DX, DY: v.DY - o.DY}
}

// Dot returns the scalar product v·o.
func (v Vector) Dot(o Vector) float64 {
	return v.DX*o.DX + v.DY*o.DY
}

// Cross returns the 2D cross product v×o (the signed area of the
// parallelogram spanned by v and o).
func (v Vector) Cross(o Vector) float64 {
	return v.DX*o.DY - v.DY*o.DX
}

// Perp returns v rotated 90° counter-clockwise: (−dy, dx).
func (v Vector) Perp() Vector {
	return Vector{DX: -v.DY, DY: v.DX}
}

// Translate returns p moved by v.
func (v Vector) Translate(p orb.Point) orb.Point {
	return orb.Point{p[0] + v.DX, p[1] + v.DY}
}

// Clamp returns v unchanged when its magnitude is ≤ limit, and otherwise
// v scaled back onto the circle of radius limit. A non-positive limit
// yields the null vector.
func (v Vector) Clamp(limit float64) Vector {
	if limit <= 0 {
		return Vector{}
	}
	mag := v.Magnitude()
	if mag <= limit {
		return v
	}

	return v.Scale(limit / mag)
}

// PointsEqual reports whether a and b coincide within tol on both axes.
// Pass DefaultTolerance unless the caller derives a tolerance from its
// coordinate precision.
func PointsEqual(a, b orb.Point, tol float64) bool {
	return math.Abs(a[0]-b[0]) < tol && math.Abs(a[1]-b[1]) < tol
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b orb.Point) orb.Point {
	return orb.Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}
