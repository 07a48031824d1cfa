// SPDX-License-Identifier: MIT
// Package: tempnet/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a generator by mutating a builderConfig before use.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithStart sets the local time origin of generated segments. Panics on NaN/Inf.
func WithStart(t0 float64) BuilderOption {
	if math.IsNaN(t0) || math.IsInf(t0, 0) {
		panic("builder: WithStart(non-finite)")
	}
	return func(c *builderConfig) { c.start = t0 }
}

// WithStep sets the spacing between consecutive sampling/event times.
// Panics unless step is finite and > 0.
func WithStep(step float64) BuilderOption {
	if !(step > 0) || math.IsInf(step, 0) {
		panic("builder: WithStep(step<=0)")
	}
	return func(c *builderConfig) { c.step = step }
}

// WithTimeUnit tags generated segments with a time unit.
func WithTimeUnit(unit string) BuilderOption {
	return func(c *builderConfig) { c.timeUnit = unit }
}

// WithNotes attaches provenance text to generated segments.
func WithNotes(notes string) BuilderOption {
	return func(c *builderConfig) { c.notes = notes }
}
