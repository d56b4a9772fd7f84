// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/cartoshift/geom"
	"github.com/katalvlaran/cartoshift/spatial"
)

// bucketKey is an endpoint cluster key: both coordinates rounded to the
// configured precision and scaled to integers, so the key is exact and
// hashable without float equality.
type bucketKey struct {
	x, y int64
}

// bucket collects every segment endpoint that rounds to one key.
type bucket struct {
	refs []EndpointRef // every endpoint here; a self-loop contributes two
	ids  []int         // distinct segment IDs, ascending
}

// Graph is the topological structure of one street network. Build it
// with NewGraph; all methods are read-only and safe for concurrent use
// after construction.
type Graph struct {
	segments  []geom.Segment
	byID      map[int]int
	buckets   map[bucketKey]*bucket
	keys      []bucketKey
	inters    []IntersectionPoint
	adjacency map[int][]int
	index     *spatial.Index
	degens    []Degeneracy
	precision int
	factor    float64
}

// NewGraph builds the topology of segments: endpoint buckets,
// intersections, adjacency and the spatial index. The graph deep-copies
// its input, so later mutation of segments cannot skew queries.
// A nil opts uses DefaultOptions.
//
// Degenerate geometry is recorded (see Degeneracies), never fatal.
// Complexity: O(n·v + b·log b) for n segments, v vertices each,
// b buckets.
func NewGraph(segments []geom.Segment, opts *Options) (*Graph, error) {
	// 1. Resolve and validate options.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Precision < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadPrecision, o.Precision)
	}

	g := &Graph{
		segments:  make([]geom.Segment, 0, len(segments)),
		byID:      make(map[int]int, len(segments)),
		buckets:   make(map[bucketKey]*bucket),
		adjacency: make(map[int][]int),
		index:     spatial.NewIndex(),
		precision: o.Precision,
		factor:    math.Pow(10, float64(o.Precision)),
	}

	// 2. Validate and ingest segments.
	for _, s := range segments {
		if len(s.Line) < 2 {
			return nil, fmt.Errorf("topology: segment %d: %w", s.ID, geom.ErrTooFewPoints)
		}
		if _, dup := g.byID[s.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, s.ID)
		}
		g.byID[s.ID] = len(g.segments)
		g.segments = append(g.segments, s.Clone())
	}

	// 3. Record degenerate geometry, bucket endpoints, index bounds.
	for _, s := range g.segments {
		g.recordDegeneracies(s)

		start := bucketKey{g.roundCoord(s.Start()[0]), g.roundCoord(s.Start()[1])}
		end := bucketKey{g.roundCoord(s.End()[0]), g.roundCoord(s.End()[1])}
		g.addEndpoint(start, EndpointRef{SegmentID: s.ID, Vertex: 0})
		g.addEndpoint(end, EndpointRef{SegmentID: s.ID, Vertex: s.VertexCount() - 1})

		g.index.Insert(s.ID, s.Bound())
	}

	// 4. Order buckets, distill distinct IDs, derive intersections.
	g.finalizeBuckets()

	return g, nil
}

func (g *Graph) roundCoord(c float64) int64 {
	return int64(math.Round(c * g.factor))
}

func (g *Graph) location(k bucketKey) orb.Point {
	return orb.Point{float64(k.x) / g.factor, float64(k.y) / g.factor}
}

func (g *Graph) addEndpoint(k bucketKey, ref EndpointRef) {
	b, ok := g.buckets[k]
	if !ok {
		b = &bucket{}
		g.buckets[k] = b
	}
	b.refs = append(b.refs, ref)
}

func (g *Graph) recordDegeneracies(s geom.Segment) {
	if s.Length() < geom.DefaultTolerance {
		g.degens = append(g.degens, Degeneracy{SegmentID: s.ID, Vertex: -1, Kind: DegenerateZeroLength})
		return
	}
	for i := 0; i+1 < len(s.Line); i++ {
		if geom.PointsEqual(s.Line[i], s.Line[i+1], geom.DefaultTolerance) {
			g.degens = append(g.degens, Degeneracy{SegmentID: s.ID, Vertex: i, Kind: DegenerateRepeatedVertex})
		}
	}
}

// finalizeBuckets freezes bucket ordering and derives intersections and
// adjacency. Buckets are sorted by (x, y) so every exposed sequence is
// deterministic for a given input.
func (g *Graph) finalizeBuckets() {
	g.keys = make([]bucketKey, 0, len(g.buckets))
	for k := range g.buckets {
		g.keys = append(g.keys, k)
	}
	sort.Slice(g.keys, func(i, j int) bool {
		if g.keys[i].x != g.keys[j].x {
			return g.keys[i].x < g.keys[j].x
		}
		return g.keys[i].y < g.keys[j].y
	})

	neighbor := make(map[int]map[int]bool)
	for _, k := range g.keys {
		b := g.buckets[k]
		sort.Slice(b.refs, func(i, j int) bool {
			if b.refs[i].SegmentID != b.refs[j].SegmentID {
				return b.refs[i].SegmentID < b.refs[j].SegmentID
			}
			return b.refs[i].Vertex < b.refs[j].Vertex
		})

		// Distinct incident IDs; a self-loop counts once.
		b.ids = b.ids[:0]
		for _, r := range b.refs {
			if len(b.ids) == 0 || b.ids[len(b.ids)-1] != r.SegmentID {
				b.ids = append(b.ids, r.SegmentID)
			}
		}

		if len(b.ids) < 2 {
			continue
		}

		// True intersection: record it and mark all incident pairs adjacent.
		g.inters = append(g.inters, IntersectionPoint{
			Location:   g.location(k),
			SegmentIDs: append([]int(nil), b.ids...),
		})
		for _, a := range b.ids {
			for _, c := range b.ids {
				if a == c {
					continue
				}
				if neighbor[a] == nil {
					neighbor[a] = make(map[int]bool)
				}
				neighbor[a][c] = true
			}
		}
	}

	for id, set := range neighbor {
		ids := make([]int, 0, len(set))
		for other := range set {
			ids = append(ids, other)
		}
		sort.Ints(ids)
		g.adjacency[id] = ids
	}
}

// SegmentCount returns the number of segments in the graph.
func (g *Graph) SegmentCount() int {
	return len(g.segments)
}

// Precision returns the bucketing precision in decimal digits.
func (g *Graph) Precision() int {
	return g.precision
}

// Segments returns the segments in ingestion order. The returned slice
// is fresh; the segment geometries are shared and must be treated as
// read-only.
func (g *Graph) Segments() []geom.Segment {
	return append([]geom.Segment(nil), g.segments...)
}

// Segment returns the segment with the given ID, or ErrSegmentNotFound.
func (g *Graph) Segment(id int) (geom.Segment, error) {
	i, ok := g.byID[id]
	if !ok {
		return geom.Segment{}, fmt.Errorf("%w: %d", ErrSegmentNotFound, id)
	}

	return g.segments[i], nil
}

// Intersections returns every true intersection (degree ≥ 2), sorted by
// location (x, then y).
func (g *Graph) Intersections() []IntersectionPoint {
	return append([]IntersectionPoint(nil), g.inters...)
}

// ConnectedSegments returns the distinct segment IDs whose endpoint
// bucket contains pt (after rounding), in ascending order. A location
// that hits no bucket yields an empty result.
func (g *Graph) ConnectedSegments(pt orb.Point) []int {
	k := bucketKey{g.roundCoord(pt[0]), g.roundCoord(pt[1])}
	b, ok := g.buckets[k]
	if !ok {
		return nil
	}

	return append([]int(nil), b.ids...)
}

// AdjacentSegments returns the IDs sharing an endpoint bucket with id,
// ascending, excluding id itself. Unknown IDs yield ErrSegmentNotFound.
func (g *Graph) AdjacentSegments(id int) ([]int, error) {
	if _, ok := g.byID[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrSegmentNotFound, id)
	}

	return append([]int(nil), g.adjacency[id]...), nil
}

// Adjacent reports whether segments a and b share an endpoint bucket.
func (g *Graph) Adjacent(a, b int) bool {
	for _, id := range g.adjacency[a] {
		if id == b {
			return true
		}
	}

	return false
}

// Nearby returns candidate segment IDs whose bounding box lies within
// radius of id's bounding box, ascending, excluding id itself. This is
// a conservative superset; exact distances are the caller's business.
func (g *Graph) Nearby(id int, radius float64) ([]int, error) {
	ids, err := g.index.Candidates(id, radius)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrSegmentNotFound, id)
	}

	return ids, nil
}

// Degeneracies returns the degenerate-geometry findings recorded during
// the build, in segment ingestion order.
func (g *Graph) Degeneracies() []Degeneracy {
	return append([]Degeneracy(nil), g.degens...)
}

// EndpointGroups returns every bucket holding two or more endpoint
// references, in bucket order; refs within a group are sorted by
// (SegmentID, Vertex). A self-loop's two endpoints form a group of
// their own even when no other segment touches the bucket.
func (g *Graph) EndpointGroups() [][]EndpointRef {
	var groups [][]EndpointRef
	for _, k := range g.keys {
		b := g.buckets[k]
		if len(b.refs) < 2 {
			continue
		}
		groups = append(groups, append([]EndpointRef(nil), b.refs...))
	}

	return groups
}

// AdjacencyPairs returns every unordered adjacent pair as [2]int with
// the smaller ID first, sorted. Used for connectivity comparison.
func (g *Graph) AdjacencyPairs() [][2]int {
	var pairs [][2]int
	for a, others := range g.adjacency {
		for _, b := range others {
			if a < b {
				pairs = append(pairs, [2]int{a, b})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	return pairs
}

// NearestIntersection returns the true intersection closest to p and
// its distance. ok is false when the graph has no intersections.
// Ties keep the first intersection in location order.
func (g *Graph) NearestIntersection(p orb.Point) (ip IntersectionPoint, dist float64, ok bool) {
	dist = math.Inf(1)
	for _, cand := range g.inters {
		dx := cand.Location[0] - p[0]
		dy := cand.Location[1] - p[1]
		if d := math.Hypot(dx, dy); d < dist {
			dist = d
			ip = cand
			ok = true
		}
	}

	return ip, dist, ok
}
