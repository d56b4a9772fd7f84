package displace

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/cartoshift/geom"
	"github.com/katalvlaran/cartoshift/topology"
)

// hybridRadiusFactor scales MinDistance into the hybrid switchover
// radius: within it a vertex steps angularly, beyond it perpendicularly.
const hybridRadiusFactor = 2.0

// buildDirections precomputes the unit step direction of every private
// slot from the original geometry; recomputing per iteration would let
// the direction chase the moving geometry and oscillate. Welded slots
// keep the zero vector and follow the raw gradient instead.
func buildDirections(ar *arena, g *topology.Graph, cfg Config) []geom.Vector {
	dirs := make([]geom.Vector, ar.count)
	centers, hasCenter := rotationCenters(ar, g)
	hybridRadius := hybridRadiusFactor * cfg.MinDistance

	for slot := 0; slot < ar.count; slot++ {
		if ar.welded(slot) {
			continue
		}
		r := ar.refs[slot][0]
		line := ar.segs[r.seg].Line

		switch cfg.Strategy {
		case StrategyAngular:
			dirs[slot] = angularDir(line, r.vertex, centers[r.seg], hasCenter[r.seg])
		case StrategyHybrid:
			if hasCenter[r.seg] && planar.Distance(line[r.vertex], centers[r.seg]) <= hybridRadius {
				dirs[slot] = angularDir(line, r.vertex, centers[r.seg], true)
			} else {
				dirs[slot] = vertexNormal(line, r.vertex)
			}
		default:
			dirs[slot] = vertexNormal(line, r.vertex)
		}
	}

	return dirs
}

// rotationCenters finds, per segment, the nearest true intersection to
// its polyline. A graph without intersections has no centers and the
// angular strategy degrades to perpendicular.
func rotationCenters(ar *arena, g *topology.Graph) ([]orb.Point, []bool) {
	centers := make([]orb.Point, len(ar.segs))
	has := make([]bool, len(ar.segs))

	inters := g.Intersections()
	if len(inters) == 0 {
		return centers, has
	}

	for si, s := range ar.segs {
		best := math.Inf(1)
		for _, ip := range inters {
			if d := s.DistanceTo(ip.Location); d < best {
				best = d
				centers[si] = ip.Location
				has[si] = true
			}
		}
	}

	return centers, has
}

// angularDir is the tangent of rotation about center: the normalized
// perpendicular of the radial vector. A vertex at the center is pinned.
func angularDir(line orb.LineString, vi int, center orb.Point, ok bool) geom.Vector {
	if !ok {
		return vertexNormal(line, vi)
	}
	radial := geom.NewVector(center, line[vi])
	if radial.Magnitude() < geom.DefaultTolerance {
		return geom.Vector{}
	}
	u, err := radial.Perp().Normalize()
	if err != nil {
		return geom.Vector{}
	}

	return u
}

// vertexNormal is the local segment normal at a vertex: the normalized
// mean of the adjacent edges' unit normals. Degenerate neighborhoods
// (zero-length edges, a 180° fold) yield the zero vector, pinning the
// vertex.
func vertexNormal(line orb.LineString, vi int) geom.Vector {
	var sum geom.Vector
	if vi > 0 {
		if e := geom.NewVector(line[vi-1], line[vi]); !e.IsZero() {
			if n, err := e.Perp().Normalize(); err == nil {
				sum = sum.Add(n)
			}
		}
	}
	if vi+1 < len(line) {
		if e := geom.NewVector(line[vi], line[vi+1]); !e.IsZero() {
			if n, err := e.Perp().Normalize(); err == nil {
				sum = sum.Add(n)
			}
		}
	}

	u, err := sum.Normalize()
	if err != nil {
		return geom.Vector{}
	}

	return u
}
