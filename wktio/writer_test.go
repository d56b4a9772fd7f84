package wktio_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cartoshift/geom"
	"github.com/katalvlaran/cartoshift/wktio"
)

// TestNewWriter_RejectsNegativePrecision pins the constructor gate.
func TestNewWriter_RejectsNegativePrecision(t *testing.T) {
	_, err := wktio.NewWriter(-1)
	assert.ErrorIs(t, err, wktio.ErrNegativePrecision)

	w, err := wktio.NewWriter(0)
	require.NoError(t, err)
	assert.Equal(t, 0, w.Precision())
}

// TestWriter_FormatSegment verifies fixed-precision rendering with
// zero padding.
func TestWriter_FormatSegment(t *testing.T) {
	w, err := wktio.NewWriter(2)
	require.NoError(t, err)

	out, err := w.FormatSegment(seg(t, 7, orb.Point{0.5, 1.25}, orb.Point{10, 0}))
	require.NoError(t, err)
	assert.Equal(t, "LINESTRING (0.50 1.25, 10.00 0.00)", out)
}

// TestWriter_FormatSegment_PrecisionZero drops the decimal point
// entirely.
func TestWriter_FormatSegment_PrecisionZero(t *testing.T) {
	w, err := wktio.NewWriter(0)
	require.NoError(t, err)

	out, err := w.FormatSegment(seg(t, 0, orb.Point{1, 2}, orb.Point{3, 4}))
	require.NoError(t, err)
	assert.Equal(t, "LINESTRING (1 2, 3 4)", out)
}

// TestWriter_FormatSegment_TooFewPoints rejects a zero-value segment.
func TestWriter_FormatSegment_TooFewPoints(t *testing.T) {
	w, err := wktio.NewWriter(6)
	require.NoError(t, err)

	_, err = w.FormatSegment(geom.Segment{ID: 3})
	assert.ErrorIs(t, err, geom.ErrTooFewPoints)
}

// TestWriter_Format verifies order preservation, one line per segment
// and the trailing newline.
func TestWriter_Format(t *testing.T) {
	w, err := wktio.NewWriter(1)
	require.NoError(t, err)

	out, err := w.Format([]geom.Segment{
		seg(t, 0, orb.Point{0, 0}, orb.Point{10, 0}),
		seg(t, 1, orb.Point{0, 2.5}, orb.Point{10, 2.5}),
	})
	require.NoError(t, err)
	assert.Equal(t, "LINESTRING (0.0 0.0, 10.0 0.0)\nLINESTRING (0.0 2.5, 10.0 2.5)\n", out)
}

// TestWriter_Format_Empty refuses to produce an empty file.
func TestWriter_Format_Empty(t *testing.T) {
	w, err := wktio.NewWriter(6)
	require.NoError(t, err)

	_, err = w.Format(nil)
	assert.ErrorIs(t, err, wktio.ErrEmptyNetwork)
}

// TestWriter_WriteFile_Atomic verifies the temp file is gone and the
// target holds the full content.
func TestWriter_WriteFile_Atomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.wkt")
	w, err := wktio.NewWriter(0)
	require.NoError(t, err)

	segs := []geom.Segment{seg(t, 0, orb.Point{0, 0}, orb.Point{10, 0})}
	require.NoError(t, w.WriteFile(segs, path))

	_, statErr := os.Stat(path + ".tmp")
	assert.ErrorIs(t, statErr, fs.ErrNotExist, "temp file must not survive")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "LINESTRING (0 0, 10 0)\n", string(data))
}

// TestWriter_WriteFile_Overwrites replaces existing output in place.
func TestWriter_WriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.wkt")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))

	w, err := wktio.NewWriter(0)
	require.NoError(t, err)
	require.NoError(t, w.WriteFile([]geom.Segment{seg(t, 0, orb.Point{1, 1}, orb.Point{2, 2})}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "LINESTRING (1 1, 2 2)\n", string(data))
}
