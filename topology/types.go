// SPDX-License-Identifier: MIT

package topology

import (
	"errors"

	"github.com/paulmach/orb"
)

var (
	// ErrDuplicateID is returned by NewGraph when two segments share an ID.
	ErrDuplicateID = errors.New("topology: duplicate segment id")

	// ErrSegmentNotFound is returned when a query names an unknown segment ID.
	ErrSegmentNotFound = errors.New("topology: segment not found")

	// ErrBadPrecision is returned when Options.Precision is negative.
	ErrBadPrecision = errors.New("topology: precision must be ≥ 0")
)

// DefaultPrecision is the number of decimal digits used for endpoint
// bucketing when no explicit option is given.
const DefaultPrecision = 6

// Options tunes graph construction.
type Options struct {
	// Precision is the number of decimal digits endpoints are rounded
	// to when clustered into intersection buckets. Must be ≥ 0.
	Precision int
}

// DefaultOptions returns the canonical construction options.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision}
}

// IntersectionPoint is a location where two or more distinct segments
// meet: the representative (rounded) location plus the sorted set of
// incident segment IDs. Immutable once the graph is built.
type IntersectionPoint struct {
	// Location is the bucket's representative coordinate.
	Location orb.Point

	// SegmentIDs lists the distinct segments incident to this point,
	// in ascending order. Degree is len(SegmentIDs).
	SegmentIDs []int
}

// Degree returns the number of distinct incident segments.
func (ip IntersectionPoint) Degree() int {
	return len(ip.SegmentIDs)
}

// EndpointRef names one polyline endpoint: the segment it belongs to
// and the vertex index within that segment (0 or last).
type EndpointRef struct {
	SegmentID int
	Vertex    int
}

// DegeneracyKind classifies a degenerate-geometry finding.
type DegeneracyKind uint8

const (
	// DegenerateZeroLength marks a segment whose total length is zero.
	DegenerateZeroLength DegeneracyKind = iota

	// DegenerateRepeatedVertex marks a pair of equal consecutive vertices.
	DegenerateRepeatedVertex
)

// String implements fmt.Stringer.
func (k DegeneracyKind) String() string {
	switch k {
	case DegenerateZeroLength:
		return "zero-length"
	case DegenerateRepeatedVertex:
		return "repeated-vertex"
	default:
		return "unknown"
	}
}

// Degeneracy reports one degenerate-geometry finding. Findings never
// abort the build; they are surfaced for the caller to log or act on.
type Degeneracy struct {
	// SegmentID is the offending segment.
	SegmentID int

	// Vertex is the index of the first vertex of a repeated pair;
	// -1 for zero-length findings, which concern the whole segment.
	Vertex int

	Kind DegeneracyKind
}

// Stats summarizes the network structure.
type Stats struct {
	// Segments is the total number of segments in the graph.
	Segments int

	// Intersections counts true intersections (degree ≥ 2 buckets).
	Intersections int

	// DanglingEnds counts degree-1 buckets (street ends).
	DanglingEnds int

	// Components is the number of connected components over the
	// adjacency relation; an isolated segment is its own component.
	Components int

	// DegreeCounts maps intersection degree to the number of
	// intersections with that degree.
	DegreeCounts map[int]int
}
