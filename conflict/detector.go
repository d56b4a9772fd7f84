// SPDX-License-Identifier: MIT

package conflict

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cartoshift/geom"
	"github.com/katalvlaran/cartoshift/topology"
)

// Detect returns every separation violation in the graph: non-adjacent
// segment pairs closer than minDistance, with exact closest points.
// The result is sorted by (A, B). A nil opts uses DefaultOptions.
// See the package doc for the soundness/completeness guarantees.
func Detect(g *topology.Graph, minDistance float64, opts *Options) ([]Conflict, error) {
	// 1. Validate input before any scan work starts.
	if minDistance <= 0 {
		return nil, ErrNonPositiveDistance
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	workers := o.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	segments := g.Segments()
	if len(segments) < 2 {
		return nil, nil
	}

	// 2. Fan segment indexes out to a bounded worker pool. Each worker
	//    collects into its own slice; no shared mutable state.
	eg, ctx := errgroup.WithContext(o.Ctx)
	jobs := make(chan int, workers)
	perWorker := make([][]Conflict, workers)

	eg.Go(func() error {
		defer close(jobs)
		for i := range segments {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		slot := w
		eg.Go(func() error {
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				found, err := scanSegment(g, segments[i], minDistance)
				if err != nil {
					return err
				}
				perWorker[slot] = append(perWorker[slot], found...)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 3. Merge and order deterministically.
	var all []Conflict
	for _, part := range perWorker {
		all = append(all, part...)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].A != all[j].A {
			return all[i].A < all[j].A
		}
		return all[i].B < all[j].B
	})

	return all, nil
}

// scanSegment reports the conflicts of one segment against candidates
// with a greater ID. The ID ordering makes each unordered pair the
// responsibility of exactly one scan, so no pair is reported twice.
func scanSegment(g *topology.Graph, s geom.Segment, minDistance float64) ([]Conflict, error) {
	candidates, err := g.Nearby(s.ID, minDistance)
	if err != nil {
		return nil, err
	}

	var found []Conflict
	for _, other := range candidates {
		if other <= s.ID || g.Adjacent(s.ID, other) {
			continue
		}
		os, err := g.Segment(other)
		if err != nil {
			return nil, err
		}

		pa, pb, d := geom.ClosestPoints(s, os)
		if d >= minDistance {
			continue
		}
		found = append(found, Conflict{
			A:         s.ID,
			B:         other,
			PointA:    pa,
			PointB:    pb,
			Distance:  d,
			Shortfall: minDistance - d,
		})
	}

	return found, nil
}

// For filters conflicts down to those involving segment id, preserving
// order.
func For(conflicts []Conflict, id int) []Conflict {
	var out []Conflict
	for _, c := range conflicts {
		if c.A == id || c.B == id {
			out = append(out, c)
		}
	}

	return out
}

// Zones maps each conflict to its repair region: a disc of radius
// Shortfall/2 centered between the two closest points.
func Zones(conflicts []Conflict) []Zone {
	zones := make([]Zone, len(conflicts))
	for i, c := range conflicts {
		zones[i] = Zone{
			A:      c.A,
			B:      c.B,
			Center: geom.Midpoint(c.PointA, c.PointB),
			Radius: c.Shortfall / 2,
		}
	}

	return zones
}
