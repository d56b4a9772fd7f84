package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cartoshift/displace"
)

// fileConfig mirrors displace.Config for YAML loading. Pointer fields
// tell absent keys apart from explicit zeroes; Strategy travels in its
// string form.
type fileConfig struct {
	MinDistance          *float64 `yaml:"min_distance"`
	MaxDisplacement      *float64 `yaml:"max_displacement"`
	Strategy             *string  `yaml:"strategy"`
	Alpha                *float64 `yaml:"energy_alpha"`
	Beta                 *float64 `yaml:"energy_beta"`
	MaxIterations        *int     `yaml:"max_iterations"`
	ConvergenceThreshold *float64 `yaml:"convergence_threshold"`
	Precision            *int     `yaml:"coordinate_precision"`
}

// loadConfigFile overlays the YAML file at path onto cfg. Keys absent
// from the file keep their current values.
func loadConfigFile(path string, cfg *displace.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err = yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.MinDistance != nil {
		cfg.MinDistance = *fc.MinDistance
	}
	if fc.MaxDisplacement != nil {
		cfg.MaxDisplacement = *fc.MaxDisplacement
	}
	if fc.Strategy != nil {
		s, err := displace.ParseStrategy(*fc.Strategy)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Strategy = s
	}
	if fc.Alpha != nil {
		cfg.Alpha = *fc.Alpha
	}
	if fc.Beta != nil {
		cfg.Beta = *fc.Beta
	}
	if fc.MaxIterations != nil {
		cfg.MaxIterations = *fc.MaxIterations
	}
	if fc.ConvergenceThreshold != nil {
		cfg.ConvergenceThreshold = *fc.ConvergenceThreshold
	}
	if fc.Precision != nil {
		cfg.Precision = *fc.Precision
	}

	return nil
}

// overlayFlags copies every flag the user actually set onto cfg, so
// command-line values win over the config file.
func overlayFlags(cmd *cobra.Command, cfg *displace.Config) error {
	f := cmd.Flags()
	if f.Changed("min-distance") {
		cfg.MinDistance = minDistanceFlag
	}
	if f.Changed("max-displacement") {
		cfg.MaxDisplacement = maxDisplacementFlag
	}
	if f.Changed("strategy") {
		s, err := displace.ParseStrategy(strategyFlag)
		if err != nil {
			return err
		}
		cfg.Strategy = s
	}
	if f.Changed("max-iterations") {
		cfg.MaxIterations = maxIterationsFlag
	}
	if f.Changed("threshold") {
		cfg.ConvergenceThreshold = thresholdFlag
	}
	if f.Changed("precision") {
		cfg.Precision = precisionFlag
	}

	return nil
}

// buildConfig resolves the effective configuration: defaults, then the
// optional YAML file, then explicit flags, then validation.
func buildConfig(cmd *cobra.Command) (displace.Config, error) {
	cfg := displace.DefaultConfig()
	if configFlag != "" {
		if err := loadConfigFile(configFlag, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := overlayFlags(cmd, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
