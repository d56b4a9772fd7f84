// SPDX-License-Identifier: MIT

package wktio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/cartoshift/geom"
)

var (
	// ErrEmptyNetwork indicates an attempt to write zero segments.
	ErrEmptyNetwork = errors.New("wktio: empty network")

	// ErrNegativePrecision indicates a Writer built with negative
	// decimal digits.
	ErrNegativePrecision = errors.New("wktio: precision must be ≥ 0")
)

// Writer formats segments back to WKT text at a fixed coordinate
// precision.
type Writer struct {
	precision int
}

// NewWriter returns a Writer rounding coordinates to the given number
// of decimal digits.
func NewWriter(precision int) (*Writer, error) {
	if precision < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativePrecision, precision)
	}

	return &Writer{precision: precision}, nil
}

// Precision returns the writer's decimal digits.
func (w *Writer) Precision() int {
	return w.precision
}

// FormatSegment renders one segment as "LINESTRING (x y, x y, …)".
func (w *Writer) FormatSegment(s geom.Segment) (string, error) {
	if len(s.Line) < 2 {
		return "", fmt.Errorf("wktio: segment %d: %w", s.ID, geom.ErrTooFewPoints)
	}

	var b strings.Builder
	b.WriteString("LINESTRING (")
	for i, p := range s.Line {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(p[0], 'f', w.precision, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(p[1], 'f', w.precision, 64))
	}
	b.WriteByte(')')

	return b.String(), nil
}

// Format renders the whole network, one LINESTRING per line in input
// order, ending with a newline.
func (w *Writer) Format(segs []geom.Segment) (string, error) {
	if len(segs) == 0 {
		return "", ErrEmptyNetwork
	}

	var b strings.Builder
	for _, s := range segs {
		line, err := w.FormatSegment(s)
		if err != nil {
			return "", err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// WriteFile writes the network to path atomically: the text lands in a
// sibling temp file and replaces path only once fully written. Missing
// parent directories are created.
func (w *Writer) WriteFile(segs []geom.Segment, path string) error {
	content, err := w.Format(segs)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("wktio: create output directory: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return fmt.Errorf("wktio: write %s: %w", tmp, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("wktio: replace %s: %w", path, err)
	}

	return nil
}
