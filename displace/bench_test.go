package displace_test

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/cartoshift/conflict"
	"github.com/katalvlaran/cartoshift/displace"
	"github.com/katalvlaran/cartoshift/geom"
	"github.com/katalvlaran/cartoshift/topology"
)

// ladder builds n parallel streets with the given vertex count each,
// stacked `gap` apart so every neighboring pair sits closer than the
// benchmark's required separation.
func ladder(n, vertices int, gap float64) []geom.Segment {
	segs := make([]geom.Segment, 0, n)
	for i := 0; i < n; i++ {
		line := make(orb.LineString, vertices)
		for j := 0; j < vertices; j++ {
			line[j] = orb.Point{float64(j * 10), float64(i) * gap}
		}
		s, _ := geom.NewSegment(i, line)
		segs = append(segs, s)
	}

	return segs
}

// BenchmarkCalculate_Ladder measures the full descent on 10 parallel
// streets (5 vertices each) whose neighbors all conflict.
func BenchmarkCalculate_Ladder(b *testing.B) {
	g, err := topology.NewGraph(ladder(10, 5, 4), nil)
	if err != nil {
		b.Fatal(err)
	}
	conflicts, err := conflict.Detect(g, 5, nil)
	if err != nil {
		b.Fatal(err)
	}

	cfg := displace.DefaultConfig()
	cfg.MinDistance = 5
	cfg.MaxDisplacement = 10

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = displace.Calculate(g, conflicts, cfg, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkApply_Ladder measures field materialization alone: building
// displaced copies of 50 streets from a precomputed field.
func BenchmarkApply_Ladder(b *testing.B) {
	g, err := topology.NewGraph(ladder(50, 10, 20), nil)
	if err != nil {
		b.Fatal(err)
	}
	field, err := displace.Calculate(g, nil, displace.DefaultConfig(), nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = displace.Apply(g, field); err != nil {
			b.Fatal(err)
		}
	}
}
