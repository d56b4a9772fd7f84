// SPDX-License-Identifier: MIT

package displace

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/cartoshift/conflict"
	"github.com/katalvlaran/cartoshift/geom"
)

// Numeric constants of the descent.
const (
	// weightEps regularizes the curvature weight 1/(ε + ‖κ‖).
	weightEps = 1e-3

	// sepMargin is the overshoot of the separation target over
	// MinDistance; the quadratic penalty reaches its own target only
	// asymptotically, so the engine aims slightly past the threshold.
	sepMargin = 0.05

	// diffStep is the central-difference probe distance.
	diffStep = 1e-4

	// gradFloor is the largest step magnitude treated as stationary.
	gradFloor = 1e-12

	// minStep ends backtracking: no step this small is worth taking.
	minStep = 1e-9
)

// window is one internal-energy term: the curvature deviation at
// lines[seg][center].
type window struct {
	seg    int
	center int
}

// evaluator computes the energy functional and its per-slot local view.
// All cross-slot structure (which windows and conflicts a slot touches)
// is resolved once at construction, so gradient probes only ever price
// the terms a perturbation can change.
type evaluator struct {
	ar        *arena
	cfg       Config
	target    float64
	conflicts []conflict.Conflict
	weights   [][]float64 // [seg][vertex] interior curvature weight
	slotWin   [][]window  // slot → windows containing one of its vertices
	slotConf  [][]int     // slot → conflict indexes touching its segments
}

func newEvaluator(ar *arena, conflicts []conflict.Conflict, cfg Config) *evaluator {
	ev := &evaluator{
		ar:        ar,
		cfg:       cfg,
		target:    cfg.MinDistance * (1 + sepMargin),
		conflicts: conflicts,
		weights:   make([][]float64, len(ar.segs)),
		slotWin:   make([][]window, ar.count),
		slotConf:  make([][]int, ar.count),
	}

	// Interior curvature weights from the original geometry: straight
	// spans (small ‖κ‖) weigh heaviest.
	for si, s := range ar.segs {
		w := make([]float64, len(s.Line))
		for i := 1; i+1 < len(s.Line); i++ {
			k := geom.SecondDifference(s.Line[i-1], s.Line[i], s.Line[i+1])
			w[i] = 1 / (weightEps + k.Magnitude())
		}
		ev.weights[si] = w
	}

	// Conflicts per segment index.
	perSeg := make([][]int, len(ar.segs))
	for ci, c := range conflicts {
		ia, ib := ar.segIdx[c.A], ar.segIdx[c.B]
		perSeg[ia] = append(perSeg[ia], ci)
		perSeg[ib] = append(perSeg[ib], ci)
	}

	// Local term lists per slot.
	for slot := 0; slot < ar.count; slot++ {
		for _, r := range ar.refs[slot] {
			n := len(ar.segs[r.seg].Line)
			for c := r.vertex - 1; c <= r.vertex+1; c++ {
				if c < 1 || c+1 >= n {
					continue
				}
				ev.addWindow(slot, window{seg: r.seg, center: c})
			}
			for _, ci := range perSeg[r.seg] {
				ev.addConflict(slot, ci)
			}
		}
	}

	return ev
}

func (ev *evaluator) addWindow(slot int, w window) {
	for _, have := range ev.slotWin[slot] {
		if have == w {
			return
		}
	}
	ev.slotWin[slot] = append(ev.slotWin[slot], w)
}

func (ev *evaluator) addConflict(slot, ci int) {
	for _, have := range ev.slotConf[slot] {
		if have == ci {
			return
		}
	}
	ev.slotConf[slot] = append(ev.slotConf[slot], ci)
}

// deviation is the curvature change at one window: because displaced
// positions are original + displacement, the deviation from original
// curvature is exactly the second difference of the displacement
// vectors themselves.
func (ev *evaluator) deviation(disp []geom.Vector, si, center int, override int, d geom.Vector) (dx, dy float64) {
	at := func(vi int) geom.Vector {
		slot := ev.ar.slotOf[si][vi]
		if slot == override {
			return d
		}
		return disp[slot]
	}
	prev, cur, next := at(center-1), at(center), at(center+1)

	return prev.DX - 2*cur.DX + next.DX, prev.DY - 2*cur.DY + next.DY
}

// pairDistance measures the current separation of one conflict pair on
// the displaced geometry.
func (ev *evaluator) pairDistance(lines []orb.LineString, c conflict.Conflict) float64 {
	a := geom.Segment{ID: c.A, Line: lines[ev.ar.segIdx[c.A]]}
	b := geom.Segment{ID: c.B, Line: lines[ev.ar.segIdx[c.B]]}
	_, _, d := geom.ClosestPoints(a, b)

	return d
}

// total evaluates the full functional over the current state and counts
// how many input conflicts already meet MinDistance.
func (ev *evaluator) total(disp []geom.Vector, lines []orb.LineString) (energy float64, resolved int) {
	var eint float64
	for si, s := range ev.ar.segs {
		for i := 1; i+1 < len(s.Line); i++ {
			dx, dy := ev.deviation(disp, si, i, -1, geom.Vector{})
			eint += ev.weights[si][i] * (dx*dx + dy*dy)
		}
	}

	var eext float64
	for _, c := range ev.conflicts {
		d := ev.pairDistance(lines, c)
		if d >= ev.cfg.MinDistance {
			resolved++
		}
		if short := ev.target - d; short > 0 {
			eext += short * short
		}
	}

	return ev.cfg.Alpha*eint + ev.cfg.Beta*eext, resolved
}

// local evaluates only the terms the slot can influence, with the
// slot's displacement overridden by d. lines must already hold the
// slot's vertices at d.
func (ev *evaluator) local(slot int, d geom.Vector, disp []geom.Vector, lines []orb.LineString) float64 {
	var eint float64
	for _, w := range ev.slotWin[slot] {
		dx, dy := ev.deviation(disp, w.seg, w.center, slot, d)
		eint += ev.weights[w.seg][w.center] * (dx*dx + dy*dy)
	}

	var eext float64
	for _, ci := range ev.slotConf[slot] {
		if short := ev.target - ev.pairDistance(lines, ev.conflicts[ci]); short > 0 {
			eext += short * short
		}
	}

	return ev.cfg.Alpha*eint + ev.cfg.Beta*eext
}

// gradient probes the local energy with central differences on both
// axes and restores the lines to the slot's current displacement.
func (ev *evaluator) gradient(slot int, disp []geom.Vector, lines []orb.LineString) geom.Vector {
	base := disp[slot]

	probe := func(d geom.Vector) float64 {
		ev.ar.place(lines, slot, d)
		return ev.local(slot, d, disp, lines)
	}

	xPlus := base
	xPlus.DX += diffStep
	xMinus := base
	xMinus.DX -= diffStep
	gx := (probe(xPlus) - probe(xMinus)) / (2 * diffStep)

	yPlus := base
	yPlus.DY += diffStep
	yMinus := base
	yMinus.DY -= diffStep
	gy := (probe(yPlus) - probe(yMinus)) / (2 * diffStep)

	ev.ar.place(lines, slot, base)

	return geom.Vector{DX: gx, DY: gy}
}
