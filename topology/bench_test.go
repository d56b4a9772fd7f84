package topology_test

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/cartoshift/geom"
	"github.com/katalvlaran/cartoshift/topology"
)

// benchChain builds n streets laid end to end, so construction welds
// n−1 shared endpoints into degree-2 intersections.
func benchChain(n int) []geom.Segment {
	segs := make([]geom.Segment, 0, n)
	for i := 0; i < n; i++ {
		x := float64(i * 10)
		s, _ := geom.NewSegment(i, orb.LineString{{x, 0}, {x + 10, 0}})
		segs = append(segs, s)
	}

	return segs
}

// BenchmarkNewGraph_Chain measures construction (bucketing, adjacency,
// spatial index) on a 1000-street chain.
func BenchmarkNewGraph_Chain(b *testing.B) {
	segs := benchChain(1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := topology.NewGraph(segs, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNearby measures proximity queries against the spatial index
// of a 1000-street chain.
func BenchmarkNearby(b *testing.B) {
	g, err := topology.NewGraph(benchChain(1000), nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Nearby(i%1000, 15); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkStats measures the network summary, dominated by the BFS
// component count.
func BenchmarkStats(b *testing.B) {
	g, err := topology.NewGraph(benchChain(1000), nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Stats()
	}
}
