// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cartoshift/displace"
	"github.com/katalvlaran/cartoshift/topology"
	"github.com/katalvlaran/cartoshift/wktio"
)

var statsCmd = &cobra.Command{
	Use:   "stats [input.wkt]",
	Short: "Display topology statistics for a street network",
	Long:  "Show segment and intersection counts, the degree histogram, connected components and degenerate geometry findings.",
	Args:  cobra.ExactArgs(1),
	Run:   runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVar(&precisionFlag, "precision", displace.DefaultConfig().Precision, "coordinate precision in decimal digits")
}

func runStats(cmd *cobra.Command, args []string) {
	filename := args[0]

	segs, err := wktio.ParseFile(filename)
	if err != nil {
		fail(err)
	}

	g, err := topology.NewGraph(segs, &topology.Options{Precision: precisionFlag})
	if err != nil {
		fail(err)
	}

	st := g.Stats()

	fmt.Println("Network Statistics")
	fmt.Println("==================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Topology:")
	fmt.Printf("  Segments: %d\n", st.Segments)
	fmt.Printf("  Intersections: %d\n", st.Intersections)
	fmt.Printf("  Dangling ends: %d\n", st.DanglingEnds)
	fmt.Printf("  Connected components: %d\n", st.Components)

	if len(st.DegreeCounts) > 0 {
		degrees := make([]int, 0, len(st.DegreeCounts))
		for d := range st.DegreeCounts {
			degrees = append(degrees, d)
		}
		sort.Ints(degrees)

		fmt.Println("\nDegree Histogram:")
		for _, d := range degrees {
			fmt.Printf("  degree %d: %d\n", d, st.DegreeCounts[d])
		}
	}

	if degens := g.Degeneracies(); len(degens) > 0 {
		fmt.Println("\nDegenerate Geometry:")
		for _, d := range degens {
			if d.Vertex < 0 {
				fmt.Printf("  segment %d: %s\n", d.SegmentID, d.Kind)
			} else {
				fmt.Printf("  segment %d (vertex %d): %s\n", d.SegmentID, d.Vertex, d.Kind)
			}
		}
	}
}
