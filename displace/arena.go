// SPDX-License-Identifier: MIT

package displace

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/cartoshift/geom"
	"github.com/katalvlaran/cartoshift/topology"
)

// vref names one vertex: segment index in graph order plus vertex index.
type vref struct {
	seg    int
	vertex int
}

// arena owns the displacement variables. Every vertex maps to a slot;
// vertices sharing an intersection bucket map to the same slot, so the
// coupling of a junction is structural, not reconciled after the fact.
// Each vertex keeps its own original coordinate; a slot stores only the
// shared displacement, which preserves sub-tolerance offsets between
// merged endpoints exactly.
type arena struct {
	segs   []geom.Segment
	segIdx map[int]int // segment ID → index in segs
	slotOf [][]int     // [seg][vertex] → slot
	refs   [][]vref    // slot → vertices welded into it
	count  int
}

func newArena(g *topology.Graph) *arena {
	segs := g.Segments()
	a := &arena{
		segs:   segs,
		segIdx: make(map[int]int, len(segs)),
		slotOf: make([][]int, len(segs)),
	}
	for i, s := range segs {
		a.segIdx[s.ID] = i
		a.slotOf[i] = make([]int, len(s.Line))
		for j := range a.slotOf[i] {
			a.slotOf[i][j] = -1
		}
	}

	// Welded slots first: one per endpoint group, in bucket order.
	for _, group := range g.EndpointGroups() {
		slot := a.newSlot()
		for _, ref := range group {
			si := a.segIdx[ref.SegmentID]
			a.slotOf[si][ref.Vertex] = slot
			a.refs[slot] = append(a.refs[slot], vref{seg: si, vertex: ref.Vertex})
		}
	}

	// Private slots for every remaining vertex, in segment order.
	for si := range a.slotOf {
		for vi, slot := range a.slotOf[si] {
			if slot >= 0 {
				continue
			}
			s := a.newSlot()
			a.slotOf[si][vi] = s
			a.refs[s] = append(a.refs[s], vref{seg: si, vertex: vi})
		}
	}

	return a
}

func (a *arena) newSlot() int {
	a.refs = append(a.refs, nil)
	a.count++

	return a.count - 1
}

// welded reports whether the slot couples two or more vertices.
func (a *arena) welded(slot int) bool {
	return len(a.refs[slot]) >= 2
}

// materialize returns fresh displaced copies of every segment's line.
func (a *arena) materialize(disp []geom.Vector) []orb.LineString {
	lines := make([]orb.LineString, len(a.segs))
	for i, s := range a.segs {
		lines[i] = s.Line.Clone()
	}
	a.applyTo(lines, disp)

	return lines
}

// applyTo rewrites every vertex of lines as original + displacement.
func (a *arena) applyTo(lines []orb.LineString, disp []geom.Vector) {
	for si, s := range a.segs {
		for vi, p := range s.Line {
			lines[si][vi] = disp[a.slotOf[si][vi]].Translate(p)
		}
	}
}

// place rewrites only the slot's vertices as original + d. Positions are
// always recomputed from the originals, so placing the slot back to its
// prior displacement restores the lines bit-exactly.
func (a *arena) place(lines []orb.LineString, slot int, d geom.Vector) {
	for _, r := range a.refs[slot] {
		lines[r.seg][r.vertex] = d.Translate(a.segs[r.seg].Line[r.vertex])
	}
}

// field shapes the flat slot array into the public per-segment form.
func (a *arena) field(disp []geom.Vector) map[int][]geom.Vector {
	out := make(map[int][]geom.Vector, len(a.segs))
	for si, s := range a.segs {
		vecs := make([]geom.Vector, len(s.Line))
		for vi := range s.Line {
			vecs[vi] = disp[a.slotOf[si][vi]]
		}
		out[s.ID] = vecs
	}

	return out
}
