// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/s1"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/cartoshift/geom"
	"github.com/katalvlaran/cartoshift/topology"
)

// Options configures structural comparison.
type Options struct {
	// Precision is the coordinate precision in decimal digits used to
	// derive the endpoint matching tolerance. A negative value, like a
	// nil *Options, falls back to the original graph's own precision.
	Precision int
}

// DefaultOptions returns the canonical comparison options.
func DefaultOptions() Options {
	return Options{Precision: topology.DefaultPrecision}
}

// Result is the always-populated outcome of Compare.
type Result struct {
	// Valid reports whether the displaced network preserves the
	// original topology. True exactly when Messages is empty.
	Valid bool

	// OriginalIntersections and DisplacedIntersections are the true
	// intersection counts of the two graphs.
	OriginalIntersections  int
	DisplacedIntersections int

	// BrokenConnections lists segment pairs adjacent before
	// displacement and not after, smaller ID first, sorted.
	BrokenConnections [][2]int

	// Messages holds one human-readable line per detected break.
	Messages []string
}

// candidate is a displaced intersection still available for matching.
type candidate struct {
	ip    topology.IntersectionPoint
	taken bool
}

// Compare certifies a displaced graph against the original. It never
// fails; every break is recorded in the result for diagnostics.
func Compare(original, displaced *topology.Graph, opts *Options) Result {
	// 1. Derive the endpoint tolerance from the precision in force.
	p := original.Precision()
	if opts != nil && opts.Precision >= 0 {
		p = opts.Precision
	}
	tol := math.Pow(10, -float64(p))

	origInters := original.Intersections()
	dispInters := displaced.Intersections()
	res := Result{
		OriginalIntersections:  len(origInters),
		DisplacedIntersections: len(dispInters),
	}

	// 2. Intersection count.
	if len(origInters) != len(dispInters) {
		res.Messages = append(res.Messages, fmt.Sprintf(
			"intersection count changed: %d before, %d after",
			len(origInters), len(dispInters)))
	}

	// 3. Re-find every original intersection by its segment-ID set.
	//    The same set can occur at more than one place (a street pair
	//    joined at both ends), so matching consumes the nearest free
	//    candidate.
	byKey := make(map[string][]*candidate, len(dispInters))
	for i := range dispInters {
		k := idKey(dispInters[i].SegmentIDs)
		byKey[k] = append(byKey[k], &candidate{ip: dispInters[i]})
	}

	type matched struct {
		before topology.IntersectionPoint
		after  topology.IntersectionPoint
	}
	var pairs []matched
	for _, ip := range origInters {
		c := nearestFree(byKey[idKey(ip.SegmentIDs)], ip.Location)
		if c == nil {
			res.Messages = append(res.Messages, fmt.Sprintf(
				"intersection %v at (%g, %g) lost after displacement",
				ip.SegmentIDs, ip.Location[0], ip.Location[1]))
			continue
		}
		c.taken = true
		pairs = append(pairs, matched{before: ip, after: c.ip})
	}

	// 4. Clockwise departure order at every surviving junction.
	for _, m := range pairs {
		if m.before.Degree() < 3 {
			continue
		}
		before := clockwiseOrder(original, m.before, tol)
		after := clockwiseOrder(displaced, m.after, tol)
		if !cyclicallyEqual(before, after) {
			res.Messages = append(res.Messages, fmt.Sprintf(
				"clockwise order changed at intersection %v: %v before, %v after",
				m.before.SegmentIDs, before, after))
		}
	}

	// 5. Connectivity: every pair adjacent before must stay adjacent.
	after := make(map[[2]int]bool)
	for _, pr := range displaced.AdjacencyPairs() {
		after[pr] = true
	}
	for _, pr := range original.AdjacencyPairs() {
		if after[pr] {
			continue
		}
		res.BrokenConnections = append(res.BrokenConnections, pr)
		res.Messages = append(res.Messages, fmt.Sprintf(
			"connection broken between segments %d and %d", pr[0], pr[1]))
	}

	res.Valid = len(res.Messages) == 0

	return res
}

// idKey folds a sorted ID set into a map key.
func idKey(ids []int) string {
	return fmt.Sprint(ids)
}

// nearestFree picks the unconsumed candidate closest to loc.
func nearestFree(cands []*candidate, loc orb.Point) *candidate {
	var best *candidate
	bestDist := math.Inf(1)
	for _, c := range cands {
		if c.taken {
			continue
		}
		if d := geom.NewVector(loc, c.ip.Location).Magnitude(); d < bestDist {
			bestDist = d
			best = c
		}
	}

	return best
}

// clockwiseOrder returns the intersection's incident segment IDs sorted
// by departure bearing, clockwise. Segments too degenerate to yield a
// direction are left out; ties keep ascending ID.
func clockwiseOrder(g *topology.Graph, ip topology.IntersectionPoint, tol float64) []int {
	type departure struct {
		id      int
		bearing s1.Angle
	}
	deps := make([]departure, 0, len(ip.SegmentIDs))
	for _, id := range ip.SegmentIDs {
		s, err := g.Segment(id)
		if err != nil {
			continue
		}
		b, ok := departureBearing(s, ip.Location, tol)
		if !ok {
			continue
		}
		deps = append(deps, departure{id: id, bearing: b})
	}

	sort.Slice(deps, func(i, j int) bool {
		if deps[i].bearing != deps[j].bearing {
			return deps[i].bearing > deps[j].bearing
		}
		return deps[i].id < deps[j].id
	})

	ids := make([]int, len(deps))
	for i, d := range deps {
		ids[i] = d.id
	}

	return ids
}

// departureBearing walks inward from the segment end welded at loc and
// returns the bearing toward the first vertex clear of the tolerance.
// ok is false when every vertex sits inside the tolerance.
func departureBearing(s geom.Segment, loc orb.Point, tol float64) (s1.Angle, bool) {
	n := s.VertexCount()
	fromStart := geom.NewVector(loc, s.Start()).Magnitude() <= geom.NewVector(loc, s.End()).Magnitude()

	for i := 0; i < n; i++ {
		v := s.Line[i]
		if !fromStart {
			v = s.Line[n-1-i]
		}
		if geom.PointsEqual(v, loc, tol) {
			continue
		}

		return geom.NormalizeBearing(geom.Bearing(loc, v)), true
	}

	return 0, false
}

// cyclicallyEqual reports whether b is a rotation of a. Reflections do
// not count: a mirrored junction reads differently on the ground.
func cyclicallyEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	off := -1
	for i, v := range b {
		if v == a[0] {
			off = i
			break
		}
	}
	if off < 0 {
		return false
	}
	for i := range a {
		if a[i] != b[(off+i)%len(b)] {
			return false
		}
	}

	return true
}
