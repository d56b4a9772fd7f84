// File: conflict/example_test.go
package conflict_test

import (
	"fmt"
	"log"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/cartoshift/conflict"
	"github.com/katalvlaran/cartoshift/geom"
	"github.com/katalvlaran/cartoshift/topology"
)

// ExampleDetect demonstrates detection with adjacency exclusion.
// Scenario:
//
//   - Two parallel streets run two units apart, connected at their east
//     ends by a short cross street.
//   - Required separation is five. The cross street touches both
//     neighbors, so only the parallel pair itself conflicts.
//
// Complexity: O(n·log n) candidate lookup plus exact distances.
func ExampleDetect() {
	lines := []orb.LineString{
		{{0, 0}, {10, 0}},
		{{0, 2}, {10, 2}},
		{{10, 0}, {10, 2}},
	}
	segs := make([]geom.Segment, len(lines))
	for i, line := range lines {
		s, err := geom.NewSegment(i, line)
		if err != nil {
			log.Fatal(err)
		}
		segs[i] = s
	}
	g, err := topology.NewGraph(segs, nil)
	if err != nil {
		log.Fatal(err)
	}

	conflicts, err := conflict.Detect(g, 5, nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("conflicts:", len(conflicts))
	for _, c := range conflicts {
		fmt.Printf("segments %d and %d: distance %.1f, shortfall %.1f\n",
			c.A, c.B, c.Distance, c.Shortfall)
	}
	for _, z := range conflict.Zones(conflicts) {
		fmt.Printf("repair zone at (%g, %g), radius %g\n",
			z.Center[0], z.Center[1], z.Radius)
	}

	// Output:
	// conflicts: 1
	// segments 0 and 1: distance 2.0, shortfall 3.0
	// repair zone at (0, 1), radius 1.5
}
