// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cartoshift/conflict"
	"github.com/katalvlaran/cartoshift/displace"
	"github.com/katalvlaran/cartoshift/topology"
	"github.com/katalvlaran/cartoshift/validate"
	"github.com/katalvlaran/cartoshift/wktio"
)

// Flags shared by the subcommands. Each command registers the subset it
// understands; buildConfig only reads flags the invoked command changed.
var (
	configFlag          string
	minDistanceFlag     float64
	maxDisplacementFlag float64
	strategyFlag        string
	maxIterationsFlag   int
	thresholdFlag       float64
	precisionFlag       int
	partialFlag         bool
	quietFlag           bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [input.wkt] [output.wkt]",
	Short: "Displace conflicting streets and write the resolved network",
	Long: `Run the full pipeline: parse the input network, detect segment pairs
closer than the required separation, displace geometry within the
allowance, certify that topology survived and write the result.

The input file is never modified. When the displaced network fails
topology validation the output is not written and the command exits
nonzero; the same happens for unresolved conflicts unless --partial
asks for best-effort output.`,
	Args: cobra.ExactArgs(2),
	Run:  runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	def := displace.DefaultConfig()
	fl := resolveCmd.Flags()
	fl.StringVarP(&configFlag, "config", "c", "", "YAML config file overlaying the defaults")
	fl.Float64Var(&minDistanceFlag, "min-distance", def.MinDistance, "required separation between non-adjacent segments")
	fl.Float64Var(&maxDisplacementFlag, "max-displacement", def.MaxDisplacement, "hard cap on any vertex's movement")
	fl.StringVar(&strategyFlag, "strategy", def.Strategy.String(), "step direction: perpendicular, angular or hybrid")
	fl.IntVar(&maxIterationsFlag, "max-iterations", def.MaxIterations, "upper bound on descent iterations")
	fl.Float64Var(&thresholdFlag, "threshold", def.ConvergenceThreshold, "energy improvement below which the descent stops")
	fl.IntVar(&precisionFlag, "precision", def.Precision, "coordinate precision in decimal digits")
	fl.BoolVar(&partialFlag, "partial", false, "write best-effort geometry even when conflicts remain")
	fl.BoolVarP(&quietFlag, "quiet", "q", false, "suppress the progress bar")
}

func runResolve(cmd *cobra.Command, args []string) {
	input, output := args[0], args[1]
	logger := slog.Default().With(slog.String("component", "resolve"))

	// 1. Resolve configuration before touching the input, so a bad
	//    config fails fast without any parsing.
	cfg, err := buildConfig(cmd)
	if err != nil {
		fail(err)
	}

	// 2. Parse the network and build its topology graph.
	segs, err := wktio.ParseFile(input)
	if err != nil {
		fail(err)
	}
	logger.Debug("network parsed", slog.Int("segments", len(segs)))

	g, err := topology.NewGraph(segs, &topology.Options{Precision: cfg.Precision})
	if err != nil {
		fail(err)
	}

	writer, err := wktio.NewWriter(cfg.Precision)
	if err != nil {
		fail(err)
	}

	// 3. Detect conflicts. A clean network passes through unchanged.
	conflicts, err := conflict.Detect(g, cfg.MinDistance, nil)
	if err != nil {
		fail(err)
	}
	logger.Info("conflicts detected",
		slog.Int("count", len(conflicts)),
		slog.Float64("min_distance", cfg.MinDistance))

	if len(conflicts) == 0 {
		if err = writer.WriteFile(segs, output); err != nil {
			fail(err)
		}
		logger.Info("no conflicts, geometry unchanged", slog.String("output", output))
		return
	}

	// 4. Displace. The progress bar tracks descent iterations on stderr
	//    so stdout stays clean for scripting.
	opts := displace.DefaultOptions()
	var bar *pb.ProgressBar
	if !quietFlag {
		bar = pb.New(cfg.MaxIterations)
		bar.SetWriter(os.Stderr)
		bar.Start()
		opts.OnIteration = func(iteration int, _ float64, _ int) {
			bar.SetCurrent(int64(iteration))
		}
	}

	res, err := displace.Run(g, conflicts, cfg, &opts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		fail(err)
	}
	logger.Info("displacement finished",
		slog.Int("iterations", res.Field.Iterations),
		slog.Bool("converged", res.Field.Converged),
		slog.Float64("energy", res.Field.Energy),
		slog.Int("unresolved", len(res.Unresolved)))

	// 5. Certify topology. A displacement that tore the network is
	//    discarded wholesale, keeping the input geometry authoritative.
	displaced, err := topology.NewGraph(res.Segments, &topology.Options{Precision: cfg.Precision})
	if err != nil {
		fail(err)
	}
	report := validate.Compare(g, displaced, &validate.Options{Precision: cfg.Precision})
	if !report.Valid {
		for _, msg := range report.Messages {
			fmt.Fprintln(os.Stderr, "  "+msg)
		}
		fail(fmt.Errorf("displacement rejected: topology not preserved, input kept"))
	}

	if len(res.Unresolved) > 0 && !partialFlag {
		for _, c := range res.Unresolved {
			fmt.Fprintf(os.Stderr, "  segments %d and %d: distance %.3f, shortfall %.3f\n",
				c.A, c.B, c.Distance, c.Shortfall)
		}
		fail(fmt.Errorf("%d conflicts remain unresolved, rerun with --partial for best-effort output", len(res.Unresolved)))
	}

	// 6. Write the resolved network.
	if err = writer.WriteFile(res.Segments, output); err != nil {
		fail(err)
	}
	logger.Info("resolved network written",
		slog.String("output", output),
		slog.Int("segments", len(res.Segments)),
		slog.Int("unresolved", len(res.Unresolved)))
}
