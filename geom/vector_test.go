package geom_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cartoshift/geom"
)

// TestNewVector_Basics verifies component extraction and magnitude.
func TestNewVector_Basics(t *testing.T) {
	v := geom.NewVector(orb.Point{1, 1}, orb.Point{4, 5})

	assert.Equal(t, 3.0, v.DX, "DX must be to.X - from.X")
	assert.Equal(t, 4.0, v.DY, "DY must be to.Y - from.Y")
	assert.Equal(t, 5.0, v.Magnitude(), "3-4-5 triangle magnitude")
}

// TestVector_NormalizeZero ensures the null vector cannot be normalized.
func TestVector_NormalizeZero(t *testing.T) {
	_, err := geom.Vector{}.Normalize()
	assert.ErrorIs(t, err, geom.ErrZeroVector, "null vector must error ErrZeroVector")
}

// TestVector_NormalizeUnit verifies a normalized vector has magnitude one
// and keeps its direction.
func TestVector_NormalizeUnit(t *testing.T) {
	u, err := geom.Vector{DX: 0, DY: -7}.Normalize()
	require.NoError(t, err, "non-null vector should normalize")

	assert.InDelta(t, 1.0, u.Magnitude(), 1e-12, "unit magnitude")
	assert.InDelta(t, 0.0, u.DX, 1e-12)
	assert.InDelta(t, -1.0, u.DY, 1e-12, "direction preserved")
}

// TestVector_PerpIsCCW verifies Perp rotates by +90° counter-clockwise.
func TestVector_PerpIsCCW(t *testing.T) {
	p := geom.Vector{DX: 1, DY: 0}.Perp()

	assert.Equal(t, geom.Vector{DX: 0, DY: 1}, p, "perp of +X is +Y")
	assert.Equal(t, 0.0, p.Dot(geom.Vector{DX: 1, DY: 0}), "perpendicular vectors have zero dot product")
}

// TestVector_ClampWithinLimit keeps short vectors untouched.
func TestVector_ClampWithinLimit(t *testing.T) {
	v := geom.Vector{DX: 3, DY: 4}

	assert.Equal(t, v, v.Clamp(10), "magnitude below the limit must pass through unchanged")
}

// TestVector_ClampScalesBack verifies radial scale-back preserves direction
// and caps the magnitude exactly.
func TestVector_ClampScalesBack(t *testing.T) {
	c := geom.Vector{DX: 30, DY: 40}.Clamp(5)

	assert.InDelta(t, 5.0, c.Magnitude(), 1e-12, "clamped magnitude equals the limit")
	assert.InDelta(t, 3.0, c.DX, 1e-12, "direction preserved")
	assert.InDelta(t, 4.0, c.DY, 1e-12, "direction preserved")
}

// TestVector_ClampNonPositiveLimit collapses to the null vector.
func TestVector_ClampNonPositiveLimit(t *testing.T) {
	assert.True(t, geom.Vector{DX: 1, DY: 1}.Clamp(0).IsZero(), "limit 0 forbids any displacement")
	assert.True(t, geom.Vector{DX: 1, DY: 1}.Clamp(-2).IsZero(), "negative limit forbids any displacement")
}

// TestVector_Rotate verifies counter-clockwise rotation by π/2.
func TestVector_Rotate(t *testing.T) {
	r := geom.Vector{DX: 1, DY: 0}.Rotate(math.Pi / 2)

	assert.InDelta(t, 0.0, r.DX, 1e-12)
	assert.InDelta(t, 1.0, r.DY, 1e-12, "+X rotated by +90° is +Y")
}

// TestVector_TranslateRoundTrip verifies Translate applies the offset.
func TestVector_TranslateRoundTrip(t *testing.T) {
	p := geom.Vector{DX: -2, DY: 3}.Translate(orb.Point{10, 10})

	assert.Equal(t, orb.Point{8, 13}, p)
}

// TestPointsEqual_Tolerance exercises the per-axis comparison.
func TestPointsEqual_Tolerance(t *testing.T) {
	a := orb.Point{1, 1}
	b := orb.Point{1 + 1e-7, 1 - 1e-7}

	assert.True(t, geom.PointsEqual(a, b, geom.DefaultTolerance), "within tolerance")
	assert.False(t, geom.PointsEqual(a, orb.Point{1.1, 1}, geom.DefaultTolerance), "outside tolerance")
}
