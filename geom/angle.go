package geom

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/paulmach/orb"
)

// Bearing returns the direction of travel from one point to another,
// measured counter-clockwise from the positive X axis in the range
// (−π, π]. Coincident points yield a zero bearing.
func Bearing(from, to orb.Point) s1.Angle {
	return s1.Angle(math.Atan2(to[1]-from[1], to[0]-from[0])) * s1.Radian
}

// NormalizeBearing maps a into the half-open range [0, 2π).
func NormalizeBearing(a s1.Angle) s1.Angle {
	r := math.Mod(a.Radians(), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}

	return s1.Angle(r) * s1.Radian
}

// Rotate returns v rotated counter-clockwise by a.
func (v Vector) Rotate(a s1.Angle) Vector {
	sin, cos := math.Sincos(a.Radians())

	return Vector{
		DX: v.DX*cos - v.DY*sin,
		DY: v.DX*sin + v.DY*cos,
	}
}
