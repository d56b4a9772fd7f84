// SPDX-License-Identifier: MIT

package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ClosestOnEdge returns the point on the closed edge [a,b] nearest to p.
// Degenerate edges (a == b) collapse to a.
func ClosestOnEdge(a, b, p orb.Point) orb.Point {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	den := dx*dx + dy*dy
	if den < zeroEps {
		return a
	}

	t := ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / den
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}

	return orb.Point{a[0] + t*dx, a[1] + t*dy}
}

// EdgesIntersect solves the two-edge intersection [a1,a2] × [b1,b2].
// It returns the crossing point and true when the closed edges properly
// intersect. Parallel and collinear pairs report false; overlap distance
// for those is handled by the closest-point fallback.
func EdgesIntersect(a1, a2, b1, b2 orb.Point) (orb.Point, bool) {
	rx := a2[0] - a1[0]
	ry := a2[1] - a1[1]
	sx := b2[0] - b1[0]
	sy := b2[1] - b1[1]

	den := rx*sy - ry*sx
	if math.Abs(den) < zeroEps {
		return orb.Point{}, false
	}

	qpx := b1[0] - a1[0]
	qpy := b1[1] - a1[1]
	t := (qpx*sy - qpy*sx) / den
	u := (qpx*ry - qpy*rx) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return orb.Point{}, false
	}

	return orb.Point{a1[0] + t*rx, a1[1] + t*ry}, true
}

// EdgeClosestPoints returns the pair of mutually closest points between
// the closed edges [a1,a2] and [b1,b2], plus their distance. Crossing
// edges return the intersection point twice with distance zero.
func EdgeClosestPoints(a1, a2, b1, b2 orb.Point) (orb.Point, orb.Point, float64) {
	if x, ok := EdgesIntersect(a1, a2, b1, b2); ok {
		return x, x, 0
	}

	// Non-crossing edges attain the minimum at an endpoint of one edge
	// projected onto the other. Check all four candidates.
	best := math.Inf(1)
	var pa, pb orb.Point

	consider := func(onA, onB orb.Point) {
		if d := planar.Distance(onA, onB); d < best {
			best = d
			pa, pb = onA, onB
		}
	}

	consider(ClosestOnEdge(a1, a2, b1), b1)
	consider(ClosestOnEdge(a1, a2, b2), b2)
	consider(a1, ClosestOnEdge(b1, b2, a1))
	consider(a2, ClosestOnEdge(b1, b2, a2))

	return pa, pb, best
}

// ClosestPoints returns the mutually closest points between two polylines
// and the distance between them, scanning every edge pair. Ties keep the
// first pair found in edge order, so the result is deterministic for a
// given pair of segments.
// Complexity: O(n·m) over the two edge counts.
func ClosestPoints(s1, s2 Segment) (orb.Point, orb.Point, float64) {
	best := math.Inf(1)
	var p1, p2 orb.Point

	for i := 0; i+1 < len(s1.Line); i++ {
		for j := 0; j+1 < len(s2.Line); j++ {
			a, b, d := EdgeClosestPoints(s1.Line[i], s1.Line[i+1], s2.Line[j], s2.Line[j+1])
			if d < best {
				best = d
				p1, p2 = a, b
			}
			if best == 0 {
				return p1, p2, 0
			}
		}
	}

	return p1, p2, best
}
