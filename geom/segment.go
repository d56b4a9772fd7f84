package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Segment is an identified polyline: a stable ID plus an ordered sequence
// of ≥ 2 vertices. The ID is assigned at ingestion and survives unchanged
// through detection, displacement and output.
//
// Segments are immutable by contract: no stage of the pipeline mutates a
// Segment's vertices in place; the displacement engine produces new
// Segment values with the same IDs.
type Segment struct {
	// ID uniquely identifies the segment within one network.
	ID int

	// Line holds the ordered vertices. Treat as read-only.
	Line orb.LineString
}

// NewSegment builds a Segment from id and line, deep-copying line so the
// caller's slice cannot alias the segment's vertices.
// Returns ErrTooFewPoints when line has fewer than two vertices.
// Complexity: O(n) for the copy.
func NewSegment(id int, line orb.LineString) (Segment, error) {
	if len(line) < 2 {
		return Segment{}, ErrTooFewPoints
	}

	return Segment{ID: id, Line: line.Clone()}, nil
}

// Start returns the first vertex.
func (s Segment) Start() orb.Point {
	return s.Line[0]
}

// End returns the last vertex.
func (s Segment) End() orb.Point {
	return s.Line[len(s.Line)-1]
}

// VertexCount returns the number of vertices.
func (s Segment) VertexCount() int {
	return len(s.Line)
}

// Length returns the total Euclidean length of the polyline.
func (s Segment) Length() float64 {
	return planar.Length(s.Line)
}

// Bound returns the axis-aligned bounding box of the polyline.
func (s Segment) Bound() orb.Bound {
	return s.Line.Bound()
}

// Clone returns a deep copy of s.
func (s Segment) Clone() Segment {
	return Segment{ID: s.ID, Line: s.Line.Clone()}
}

// PerpendicularAt returns the unit vector perpendicular to the segment at
// the edge nearest to p (left-hand normal of that edge's direction).
// Zero-length edges are skipped; ErrZeroVector is returned when every
// edge of the segment is degenerate.
// Complexity: O(n) over the segment's edges.
func (s Segment) PerpendicularAt(p orb.Point) (Vector, error) {
	bestDist := math.Inf(1)
	bestDir := Vector{}
	found := false

	for i := 0; i+1 < len(s.Line); i++ {
		a, b := s.Line[i], s.Line[i+1]
		dir := NewVector(a, b)
		if dir.IsZero() {
			continue
		}
		d := planar.Distance(p, ClosestOnEdge(a, b, p))
		if d < bestDist {
			bestDist = d
			bestDir = dir
			found = true
		}
	}
	if !found {
		return Vector{}, ErrZeroVector
	}

	return bestDir.Perp().Normalize()
}

// DistanceTo returns the minimum distance from p to the polyline.
// Complexity: O(n) over the segment's edges.
func (s Segment) DistanceTo(p orb.Point) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(s.Line); i++ {
		d := planar.Distance(p, ClosestOnEdge(s.Line[i], s.Line[i+1], p))
		if d < best {
			best = d
		}
	}

	return best
}

// SecondDifference returns the discrete curvature vector at cur given its
// polyline neighbors: prev − 2·cur + next. A straight span yields the
// null vector.
func SecondDifference(prev, cur, next orb.Point) Vector {
	return Vector{
		DX: prev[0] - 2*cur[0] + next[0],
		DY: prev[1] - 2*cur[1] + next[1],
	}
}
