package wktio_test

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cartoshift/geom"
	"github.com/katalvlaran/cartoshift/wktio"
)

// seg builds a test segment or fails the test.
func seg(t *testing.T, id int, pts ...orb.Point) geom.Segment {
	t.Helper()
	s, err := geom.NewSegment(id, orb.LineString(pts))
	require.NoError(t, err)
	return s
}

// TestParse_NetworkFile verifies IDs follow file order while blank
// lines and comments vanish.
func TestParse_NetworkFile(t *testing.T) {
	input := `# demo network
LINESTRING (0 0, 10 0)

LINESTRING (0 2, 5 2, 10 2)
`
	segs, err := wktio.Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, segs, 2)
	assert.Equal(t, 0, segs[0].ID)
	assert.Equal(t, 1, segs[1].ID)
	assert.Equal(t, orb.LineString{{0, 0}, {10, 0}}, segs[0].Line)
	assert.Equal(t, 3, segs[1].VertexCount())
}

// TestParse_ReportsLineNumber verifies the error points at the exact
// input line, counting blanks and comments.
func TestParse_ReportsLineNumber(t *testing.T) {
	input := "LINESTRING (0 0, 1 1)\n\nPOINT (1 1)\n"

	_, err := wktio.Parse(strings.NewReader(input))
	require.Error(t, err)

	var pe *wktio.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Line)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, pe.WKT, "POINT")
}

// TestParse_TooFewPoints verifies a single-vertex LINESTRING is
// rejected through the segment constructor, cause reachable via
// errors.Is.
func TestParse_TooFewPoints(t *testing.T) {
	_, err := wktio.Parse(strings.NewReader("LINESTRING (5 5)\n"))
	require.Error(t, err)

	var pe *wktio.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Line)
	assert.ErrorIs(t, err, geom.ErrTooFewPoints)
}

// TestParse_TruncatesOffendingText verifies long garbage is cut down
// before landing in the error.
func TestParse_TruncatesOffendingText(t *testing.T) {
	long := "LINESTRING (" + strings.Repeat("9", 200) + "\n"

	_, err := wktio.Parse(strings.NewReader(long))
	require.Error(t, err)

	var pe *wktio.ParseError
	require.ErrorAs(t, err, &pe)
	assert.True(t, strings.HasSuffix(pe.WKT, "..."))
	assert.LessOrEqual(t, len([]rune(pe.WKT)), 103)
}

// TestParse_NoGeometries verifies comment-only input is an error, not
// an empty network.
func TestParse_NoGeometries(t *testing.T) {
	_, err := wktio.Parse(strings.NewReader("# nothing here\n\n"))
	assert.ErrorIs(t, err, wktio.ErrNoGeometries)

	_, err = wktio.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, wktio.ErrNoGeometries)
}

// TestParseLineString covers the single-geometry convenience.
func TestParseLineString(t *testing.T) {
	ls, err := wktio.ParseLineString("  LINESTRING (1 2, 3 4)  ")
	require.NoError(t, err)
	assert.Equal(t, orb.LineString{{1, 2}, {3, 4}}, ls)

	_, err = wktio.ParseLineString("POLYGON ((0 0, 1 0, 1 1, 0 0))")
	assert.Error(t, err)
}

// TestParseFile_RoundTrip writes a network and reads it back.
func TestParseFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "network.wkt")

	w, err := wktio.NewWriter(3)
	require.NoError(t, err)
	segs := []geom.Segment{
		seg(t, 0, orb.Point{0.1234, 0}, orb.Point{10, 0}),
		seg(t, 1, orb.Point{0, 2}, orb.Point{10, 2}),
	}
	require.NoError(t, w.WriteFile(segs, path))

	back, err := wktio.ParseFile(path)
	require.NoError(t, err)

	require.Len(t, back, 2)
	assert.Equal(t, 0.123, back[0].Line[0][0], "coordinates rounded to the writer's precision")
	assert.Equal(t, 1, back[1].ID)
}

// TestParseFile_Missing surfaces the OS error unchanged.
func TestParseFile_Missing(t *testing.T) {
	_, err := wktio.ParseFile(filepath.Join(t.TempDir(), "absent.wkt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
