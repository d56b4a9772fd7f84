package spatial_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cartoshift/spatial"
)

func boundOf(minX, minY, maxX, maxY float64) orb.Bound {
	return orb.Bound{Min: orb.Point{minX, minY}, Max: orb.Point{maxX, maxY}}
}

// TestIndex_Empty verifies queries on a fresh index come back empty.
func TestIndex_Empty(t *testing.T) {
	ix := spatial.NewIndex()

	assert.Equal(t, 0, ix.Len())
	assert.Empty(t, ix.Within(boundOf(0, 0, 100, 100), 10), "nothing indexed, nothing found")
}

// TestIndex_WithinRadius verifies padding pulls in nearby but
// non-overlapping bounds and leaves distant ones out.
func TestIndex_WithinRadius(t *testing.T) {
	ix := spatial.NewIndex()
	ix.Insert(1, boundOf(0, 0, 10, 0))  // query target
	ix.Insert(2, boundOf(0, 2, 10, 2))  // 2 away
	ix.Insert(3, boundOf(0, 40, 10, 40)) // far away

	got := ix.Within(boundOf(0, 0, 10, 0), 5)

	assert.Equal(t, []int{1, 2}, got, "radius 5 reaches the 2-away bound, not the 40-away one")
}

// TestIndex_WithinZeroRadius means direct overlap only.
func TestIndex_WithinZeroRadius(t *testing.T) {
	ix := spatial.NewIndex()
	ix.Insert(1, boundOf(0, 0, 10, 10))
	ix.Insert(2, boundOf(20, 20, 30, 30))

	got := ix.Within(boundOf(5, 5, 6, 6), 0)

	assert.Equal(t, []int{1}, got)
}

// TestIndex_WithinSortedOutput verifies ascending ID order regardless of
// insertion order.
func TestIndex_WithinSortedOutput(t *testing.T) {
	ix := spatial.NewIndex()
	for _, id := range []int{5, 1, 9, 3} {
		ix.Insert(id, boundOf(0, 0, 1, 1))
	}

	got := ix.Within(boundOf(0, 0, 1, 1), 0)

	assert.Equal(t, []int{1, 3, 5, 9}, got, "output must be sorted for deterministic downstream scans")
}

// TestIndex_Candidates excludes the queried ID itself.
func TestIndex_Candidates(t *testing.T) {
	ix := spatial.NewIndex()
	ix.Insert(1, boundOf(0, 0, 10, 0))
	ix.Insert(2, boundOf(0, 2, 10, 2))
	ix.Insert(3, boundOf(0, 100, 10, 100))

	got, err := ix.Candidates(1, 5)
	require.NoError(t, err)

	assert.Equal(t, []int{2}, got, "neighbor within radius, self excluded")
}

// TestIndex_CandidatesUnknownID errors on IDs never inserted.
func TestIndex_CandidatesUnknownID(t *testing.T) {
	ix := spatial.NewIndex()

	_, err := ix.Candidates(42, 5)
	assert.ErrorIs(t, err, spatial.ErrUnknownID)

	_, err = ix.Bound(42)
	assert.ErrorIs(t, err, spatial.ErrUnknownID)
}

// TestIndex_DegenerateBounds verifies point-like bounds (vertical or
// horizontal segments) are indexed and found.
func TestIndex_DegenerateBounds(t *testing.T) {
	ix := spatial.NewIndex()
	ix.Insert(1, boundOf(5, 0, 5, 10)) // vertical segment: zero-width bound
	ix.Insert(2, boundOf(0, 5, 10, 5)) // horizontal segment: zero-height bound

	got := ix.Within(boundOf(5, 5, 5, 5), 1)

	assert.Equal(t, []int{1, 2}, got, "zero-area bounds must still be discoverable")
}
