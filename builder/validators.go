// SPDX-License-Identifier: MIT
// Package: tempnet/builder
//
// validators.go — parameter contracts shared by the generators.
// Priority when several checks fail: size → probability → rng.

package builder

import "fmt"

// Generator minima and probability domain.
const (
	minVertices = 1
	minSamples  = 1
	minEvents   = 0
	probMin     = 0.0
	probMax     = 1.0
)

// validateParams checks n, steps and p for the given method.
func validateParams(method string, n, steps, minSteps int, p float64, cfg builderConfig) error {
	if n < minVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minVertices, ErrTooFewVertices)
	}
	if steps < minSteps {
		return fmt.Errorf("%s: steps=%d < min=%d: %w", method, steps, minSteps, ErrBadSize)
	}
	if !(p >= probMin && p <= probMax) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	// RNG is only required for true stochastic sampling.
	if cfg.rng == nil && p > probMin && p < probMax {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}
