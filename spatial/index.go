// SPDX-License-Identifier: MIT

package spatial

import (
	"errors"
	"sort"

	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"
)

// ErrUnknownID is returned when a query names an ID that was never inserted.
var ErrUnknownID = errors.New("spatial: unknown id")

// Index is an R-tree over segment bounding boxes keyed by segment ID.
//
// Build it once with Insert, then query freely; see the package doc for
// the concurrency contract.
type Index struct {
	tree   rtree.RTreeG[int]
	bounds map[int]orb.Bound
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{bounds: make(map[int]orb.Bound)}
}

// Insert registers id with its bounding box. Re-inserting an existing ID
// overwrites the recorded bound but leaves the previous R-tree entry in
// place, so callers are expected to insert each ID exactly once.
func (ix *Index) Insert(id int, b orb.Bound) {
	ix.tree.Insert(b.Min, b.Max, id)
	ix.bounds[id] = b
}

// Len returns the number of inserted entries.
func (ix *Index) Len() int {
	return ix.tree.Len()
}

// Bound returns the bounding box recorded for id.
func (ix *Index) Bound(id int) (orb.Bound, error) {
	b, ok := ix.bounds[id]
	if !ok {
		return orb.Bound{}, ErrUnknownID
	}

	return b, nil
}

// Within reports every indexed ID whose bound lies within radius of b,
// in ascending ID order. A zero radius means direct bound overlap.
// Complexity: O(log n + k·log k) for k hits.
func (ix *Index) Within(b orb.Bound, radius float64) []int {
	query := b
	if radius > 0 {
		query = b.Pad(radius)
	}

	var ids []int
	ix.tree.Search(query.Min, query.Max, func(_, _ [2]float64, id int) bool {
		ids = append(ids, id)
		return true
	})
	sort.Ints(ids)

	return ids
}

// Candidates reports the neighbors of an already-indexed segment: every
// other ID whose bound lies within radius of id's bound, in ascending ID
// order. Returns ErrUnknownID when id was never inserted.
func (ix *Index) Candidates(id int, radius float64) ([]int, error) {
	b, ok := ix.bounds[id]
	if !ok {
		return nil, ErrUnknownID
	}

	hits := ix.Within(b, radius)
	out := hits[:0]
	for _, h := range hits {
		if h != id {
			out = append(out, h)
		}
	}

	return out, nil
}
