// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cartoshift/conflict"
	"github.com/katalvlaran/cartoshift/displace"
	"github.com/katalvlaran/cartoshift/topology"
	"github.com/katalvlaran/cartoshift/wktio"
)

var conflictsCmd = &cobra.Command{
	Use:   "conflicts [input.wkt]",
	Short: "Report segment pairs closer than the required separation",
	Long: `Detect conflicts without displacing anything: every non-adjacent
segment pair whose closest approach falls below the required
separation, ordered by ascending ID pair.`,
	Args: cobra.ExactArgs(1),
	Run:  runConflicts,
}

func init() {
	rootCmd.AddCommand(conflictsCmd)

	def := displace.DefaultConfig()
	fl := conflictsCmd.Flags()
	fl.StringVarP(&configFlag, "config", "c", "", "YAML config file overlaying the defaults")
	fl.Float64Var(&minDistanceFlag, "min-distance", def.MinDistance, "required separation between non-adjacent segments")
	fl.IntVar(&precisionFlag, "precision", def.Precision, "coordinate precision in decimal digits")
}

func runConflicts(cmd *cobra.Command, args []string) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		fail(err)
	}

	segs, err := wktio.ParseFile(args[0])
	if err != nil {
		fail(err)
	}

	g, err := topology.NewGraph(segs, &topology.Options{Precision: cfg.Precision})
	if err != nil {
		fail(err)
	}

	found, err := conflict.Detect(g, cfg.MinDistance, nil)
	if err != nil {
		fail(err)
	}

	if len(found) == 0 {
		fmt.Printf("no conflicts (required separation %g)\n", cfg.MinDistance)
		return
	}

	fmt.Printf("%d conflicts (required separation %g)\n", len(found), cfg.MinDistance)
	for _, c := range found {
		fmt.Printf("  segments %d and %d: distance %.3f, shortfall %.3f\n",
			c.A, c.B, c.Distance, c.Shortfall)
	}
}
