// SPDX-License-Identifier: MIT

package displace

import (
	"errors"
	"fmt"
)

var (
	// ErrMinDistance marks a non-positive MinDistance.
	ErrMinDistance = errors.New("displace: min_distance must be > 0")

	// ErrMaxDisplacement marks a negative MaxDisplacement.
	ErrMaxDisplacement = errors.New("displace: max_displacement must be ≥ 0")

	// ErrStrategy marks an unknown displacement strategy.
	ErrStrategy = errors.New("displace: unknown strategy")

	// ErrAlpha marks an Alpha weight outside [0, 1].
	ErrAlpha = errors.New("displace: energy_alpha must be in [0, 1]")

	// ErrBeta marks a Beta weight outside [0, 1].
	ErrBeta = errors.New("displace: energy_beta must be in [0, 1]")

	// ErrMaxIterations marks a non-positive MaxIterations.
	ErrMaxIterations = errors.New("displace: max_iterations must be > 0")

	// ErrConvergence marks a non-positive ConvergenceThreshold.
	ErrConvergence = errors.New("displace: convergence_threshold must be > 0")

	// ErrPrecision marks a negative Precision.
	ErrPrecision = errors.New("displace: coordinate_precision must be ≥ 0")
)

// Strategy selects how the unconstrained step direction is proposed.
// See the package doc; the energy machinery is strategy-independent.
type Strategy uint8

const (
	// StrategyPerpendicular moves vertices along the local segment normal.
	StrategyPerpendicular Strategy = iota

	// StrategyAngular rotates vertices about the segment's nearest
	// intersection point.
	StrategyAngular

	// StrategyHybrid is angular near intersections, perpendicular away
	// from them.
	StrategyHybrid
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyPerpendicular:
		return "perpendicular"
	case StrategyAngular:
		return "angular"
	case StrategyHybrid:
		return "hybrid"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// ParseStrategy maps a config string to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "perpendicular":
		return StrategyPerpendicular, nil
	case "angular":
		return StrategyAngular, nil
	case "hybrid":
		return StrategyHybrid, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrStrategy, name)
	}
}

// Config carries every displacement parameter. Validate before use;
// the engine refuses to start on an invalid config.
type Config struct {
	// MinDistance is the required separation between non-adjacent
	// segments. Must be > 0.
	MinDistance float64

	// MaxDisplacement caps the cumulative movement of any vertex.
	// Must be ≥ 0; zero forbids all movement.
	MaxDisplacement float64

	// Strategy shapes the proposed step direction.
	Strategy Strategy

	// Alpha weighs shape fidelity (internal energy), in [0, 1].
	Alpha float64

	// Beta weighs conflict pressure (external energy), in [0, 1].
	Beta float64

	// MaxIterations bounds the descent loop. Must be > 0.
	MaxIterations int

	// ConvergenceThreshold stops the loop once an accepted step
	// improves the energy by less than this. Must be > 0.
	ConvergenceThreshold float64

	// Precision is the coordinate precision in decimal digits, used
	// for topology bucketing and output formatting. Must be ≥ 0.
	Precision int
}

// DefaultConfig returns the canonical parameters.
func DefaultConfig() Config {
	return Config{
		MinDistance:          10.0,
		MaxDisplacement:      50.0,
		Strategy:             StrategyPerpendicular,
		Alpha:                0.3,
		Beta:                 0.7,
		MaxIterations:        100,
		ConvergenceThreshold: 0.01,
		Precision:            6,
	}
}

// Validate checks every field and reports every violation, not just the
// first: the result joins one matchable sentinel per bad field. A nil
// result means the config is usable.
func (c Config) Validate() error {
	var errs []error
	if c.MinDistance <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %g", ErrMinDistance, c.MinDistance))
	}
	if c.MaxDisplacement < 0 {
		errs = append(errs, fmt.Errorf("%w: got %g", ErrMaxDisplacement, c.MaxDisplacement))
	}
	if c.Strategy > StrategyHybrid {
		errs = append(errs, fmt.Errorf("%w: %d", ErrStrategy, c.Strategy))
	}
	if c.Alpha < 0 || c.Alpha > 1 {
		errs = append(errs, fmt.Errorf("%w: got %g", ErrAlpha, c.Alpha))
	}
	if c.Beta < 0 || c.Beta > 1 {
		errs = append(errs, fmt.Errorf("%w: got %g", ErrBeta, c.Beta))
	}
	if c.MaxIterations <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrMaxIterations, c.MaxIterations))
	}
	if c.ConvergenceThreshold <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %g", ErrConvergence, c.ConvergenceThreshold))
	}
	if c.Precision < 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrPrecision, c.Precision))
	}

	return errors.Join(errs...)
}
