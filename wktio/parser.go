// SPDX-License-Identifier: MIT

package wktio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"github.com/katalvlaran/cartoshift/geom"
)

// ErrNoGeometries indicates input with no LINESTRING geometry at all.
var ErrNoGeometries = errors.New("wktio: no LINESTRING geometries found")

// truncateAt bounds the offending text carried inside a ParseError.
const truncateAt = 100

// maxLineBytes caps a single input line; street geometries with very
// long coordinate lists still fit comfortably.
const maxLineBytes = 4 * 1024 * 1024

// ParseError reports a malformed geometry together with where it was
// found.
type ParseError struct {
	// Line is the 1-based line number in the input.
	Line int

	// WKT is the offending text, truncated for readability.
	WKT string

	// Err is the underlying failure.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("wktio: line %d: %v (in %q)", e.Line, e.Err, e.WKT)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *ParseError) Unwrap() error { return e.Err }

// truncate keeps the first truncateAt runes of s.
func truncate(s string) string {
	r := []rune(s)
	if len(r) <= truncateAt {
		return s
	}

	return string(r[:truncateAt]) + "..."
}

// ParseLineString parses a single WKT LINESTRING into line geometry.
func ParseLineString(s string) (orb.LineString, error) {
	return wkt.UnmarshalLineString(strings.TrimSpace(s))
}

// Parse reads WKT LINESTRING geometries from r, one per line. Blank
// lines and '#' comments are skipped; anything else must parse.
// Segment IDs follow file order, starting at 0.
func Parse(r io.Reader) ([]geom.Segment, error) {
	var segs []geom.Segment

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ls, err := wkt.UnmarshalLineString(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, WKT: truncate(line), Err: err}
		}
		s, err := geom.NewSegment(len(segs), ls)
		if err != nil {
			return nil, &ParseError{Line: lineNo, WKT: truncate(line), Err: err}
		}
		segs = append(segs, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wktio: read: %w", err)
	}
	if len(segs) == 0 {
		return nil, ErrNoGeometries
	}

	return segs, nil
}

// ParseFile opens path and parses its geometries.
func ParseFile(path string) ([]geom.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wktio: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
