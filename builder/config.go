// SPDX-License-Identifier: MIT
// Package: tempnet/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng      = nil  (pure/deterministic unless seeded)
//   • start    = 0.0
//   • step     = 1.0
//   • timeUnit = ""   (unspecified)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	rng      *rand.Rand // nil means "no randomness"
	start    float64    // local time origin
	step     float64    // > 0
	timeUnit string
	notes    string
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultStart = 0.0
	defaultStep  = 1.0
)

// newBuilderConfig applies options in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		start: defaultStart,
		step:  defaultStep,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// at returns the k-th grid time start + k·step.
func (c builderConfig) at(k int) float64 {
	return c.start + float64(k)*c.step
}
