// SPDX-License-Identifier: MIT

package displace

import (
	"context"
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/cartoshift/conflict"
	"github.com/katalvlaran/cartoshift/geom"
	"github.com/katalvlaran/cartoshift/topology"
)

// Calculate derives the displacement field that minimizes
// E = Alpha·E_internal + Beta·E_external over the graph's vertices,
// subject to the hard MaxDisplacement clamp. A nil opts uses
// DefaultOptions.
//
// Steps:
//  1. Validate the config; an invalid config stops everything before
//     any graph work (every violated field is reported).
//  2. Check that every conflict names segments the graph holds.
//  3. No conflicts: return the zero field untouched (idempotence).
//  4. Build the slot arena (intersection-welded vertices share slots),
//     the energy evaluator and the per-slot strategy directions.
//  5. Descend for up to MaxIterations: per-slot local gradients, one
//     simultaneous step scaled so the largest move equals the current
//     step size, backtracking halving until the global energy drops,
//     cumulative clamp at MaxDisplacement, cancellation check per
//     iteration. Stop early when an accepted step improves the energy
//     by less than ConvergenceThreshold, when the gradient goes flat,
//     or when backtracking underflows (stalled against the clamp).
//
// The loop is sequential by design: a fixed evaluation order keeps the
// floating-point result reproducible for a given input.
func Calculate(g *topology.Graph, conflicts []conflict.Conflict, cfg Config, opts *Options) (*Field, error) {
	// 1. Config gate.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	// 2. Conflicts must reference known segments.
	for _, c := range conflicts {
		if _, err := g.Segment(c.A); err != nil {
			return nil, err
		}
		if _, err := g.Segment(c.B); err != nil {
			return nil, err
		}
	}

	ar := newArena(g)

	// 3. Zero conflicts, zero field.
	if len(conflicts) == 0 {
		return &Field{Vectors: ar.field(make([]geom.Vector, ar.count)), Converged: true}, nil
	}

	// 4. Structure.
	ev := newEvaluator(ar, conflicts, cfg)
	dirs := buildDirections(ar, g, cfg)

	disp := make([]geom.Vector, ar.count)
	trial := make([]geom.Vector, ar.count)
	steps := make([]geom.Vector, ar.count)
	lines := ar.materialize(disp)

	energy, _ := ev.total(disp, lines)
	maxStep := cfg.MinDistance / 2
	stepSize := maxStep
	converged := false
	iterations := 0

	// 5. Bounded descent.
	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		iterations = iter

		// 5a. Propose per-slot steps: projected onto the strategy
		//     direction for private slots, raw negative gradient for
		//     welded ones.
		gmax := 0.0
		for s := 0; s < ar.count; s++ {
			grad := ev.gradient(s, disp, lines)
			if ar.welded(s) {
				steps[s] = grad.Scale(-1)
			} else {
				u := dirs[s]
				steps[s] = u.Scale(-grad.Dot(u))
			}
			if m := steps[s].Magnitude(); m > gmax {
				gmax = m
			}
		}
		if gmax < gradFloor {
			converged = true
			break
		}

		// 5b. Simultaneous update with backtracking: scale so the
		//     largest move equals stepSize, clamp, accept only if the
		//     global energy drops, otherwise halve and retry.
		accepted := false
		for stepSize >= minStep {
			scale := stepSize / gmax
			for s := 0; s < ar.count; s++ {
				trial[s] = disp[s].Add(steps[s].Scale(scale)).Clamp(cfg.MaxDisplacement)
			}
			ar.applyTo(lines, trial)

			e, resolved := ev.total(trial, lines)
			if e < energy {
				delta := energy - e
				disp, trial = trial, disp
				energy = e
				accepted = true
				if o.OnIteration != nil {
					o.OnIteration(iter, energy, resolved)
				}
				if delta < cfg.ConvergenceThreshold {
					converged = true
				}
				stepSize = math.Min(stepSize*2, maxStep)
				break
			}
			stepSize /= 2
		}
		if !accepted {
			// Every trial was rejected; put the scratch geometry back.
			ar.applyTo(lines, disp)
			break
		}
		if converged {
			break
		}
	}

	return &Field{
		Vectors:    ar.field(disp),
		Energy:     energy,
		Iterations: iterations,
		Converged:  converged,
	}, nil
}

// Apply materializes displaced segments from a field: same IDs, same
// vertex counts, every vertex moved by its vector. Segments absent from
// the field are copied unchanged. The graph's own geometry is never
// touched.
func Apply(g *topology.Graph, field *Field) ([]geom.Segment, error) {
	segs := g.Segments()
	out := make([]geom.Segment, len(segs))

	for i, s := range segs {
		var vecs []geom.Vector
		if field != nil {
			vecs = field.Vectors[s.ID]
		}
		if vecs == nil {
			out[i] = s.Clone()
			continue
		}
		if len(vecs) != s.VertexCount() {
			return nil, fmt.Errorf("%w: segment %d has %d vertices, field carries %d vectors",
				ErrFieldMismatch, s.ID, s.VertexCount(), len(vecs))
		}

		line := make(orb.LineString, len(s.Line))
		for j, p := range s.Line {
			line[j] = vecs[j].Translate(p)
		}
		out[i] = geom.Segment{ID: s.ID, Line: line}
	}

	return out, nil
}

// Run chains Calculate and Apply, then re-measures every input conflict
// on the displaced geometry. Conflicts still below MinDistance come
// back in Unresolved with their post-displacement distances; the engine
// never silently claims success.
func Run(g *topology.Graph, conflicts []conflict.Conflict, cfg Config, opts *Options) (*Result, error) {
	field, err := Calculate(g, conflicts, cfg, opts)
	if err != nil {
		return nil, err
	}
	segs, err := Apply(g, field)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]geom.Segment, len(segs))
	for _, s := range segs {
		byID[s.ID] = s
	}

	var unresolved []conflict.Conflict
	for _, c := range conflicts {
		pa, pb, d := geom.ClosestPoints(byID[c.A], byID[c.B])
		if d >= cfg.MinDistance {
			continue
		}
		unresolved = append(unresolved, conflict.Conflict{
			A:         c.A,
			B:         c.B,
			PointA:    pa,
			PointB:    pb,
			Distance:  d,
			Shortfall: cfg.MinDistance - d,
		})
	}

	return &Result{Segments: segs, Field: field, Unresolved: unresolved}, nil
}
