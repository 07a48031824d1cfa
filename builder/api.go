// SPDX-License-Identifier: MIT
// Package: tempnet/builder
//
// api.go - public entry-points of the builder package.
//
// Design contract:
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed ⇒ identical segments.
//   - Safety: never panic; return sentinel errors from generators.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tempnet/edgeset"
	"github.com/katalvlaran/tempnet/temporal"
)

// Method tags used as error prefixes.
const (
	MethodRandomSnapshots = "RandomSnapshots"
	MethodRandomEvents    = "RandomEvents"
)

// RandomSnapshots samples a snapshot series over n nodes with `steps`
// sampling times start, start+step, …; each snapshot is an independent
// Erdős–Rényi graph with edge probability p. Tmax = start + steps·step.
//
// Errors: ErrTooFewVertices (n < 1), ErrBadSize (steps < 1),
// ErrInvalidProbability, ErrNeedRandSource.
//
// Complexity: O(steps · n²) Bernoulli trials.
func RandomSnapshots(n, steps int, p float64, opts ...BuilderOption) (*temporal.SnapshotSeries, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateParams(MethodRandomSnapshots, n, steps, minSamples, p, cfg); err != nil {
		return nil, err
	}

	s := &temporal.SnapshotSeries{
		N:        n,
		T:        make([]float64, steps),
		Tmax:     cfg.at(steps),
		Edges:    make([]*edgeset.Set, steps),
		TimeUnit: cfg.timeUnit,
		Notes:    cfg.notes,
	}
	for k := 0; k < steps; k++ {
		s.T[k] = cfg.at(k)
		s.Edges[k] = sampleGraph(n, p, cfg)
	}

	return s, nil
}

// RandomEvents samples an event series over n nodes: an Erdős–Rényi initial
// state at start, then `steps` events at start+step, start+2·step, …
// Each event toggles every node pair independently with probability p:
// absent pairs go to EdgesIn, present pairs to EdgesOut, which keeps every
// event valid by construction. Tmax = start + (steps+1)·step.
//
// Errors: ErrTooFewVertices (n < 1), ErrBadSize (steps < 0),
// ErrInvalidProbability, ErrNeedRandSource.
//
// Complexity: O(steps · n² · log E).
func RandomEvents(n, steps int, p float64, opts ...BuilderOption) (*temporal.EventSeries, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateParams(MethodRandomEvents, n, steps, minEvents, p, cfg); err != nil {
		return nil, err
	}

	s := &temporal.EventSeries{
		N:            n,
		EdgesInitial: sampleGraph(n, p, cfg),
		T0:           cfg.at(0),
		Tmax:         cfg.at(steps + 1),
		T:            make([]float64, steps),
		EdgesIn:      make([]*edgeset.Set, steps),
		EdgesOut:     make([]*edgeset.Set, steps),
		TimeUnit:     cfg.timeUnit,
		Notes:        cfg.notes,
	}
	state := s.EdgesInitial.Clone()
	for k := 0; k < steps; k++ {
		in, out := edgeset.New(), edgeset.New()
		forEachPair(n, p, cfg, func(e edgeset.Edge) {
			if state.Has(e) {
				out.Add(e)
			} else {
				in.Add(e)
			}
		})
		s.T[k] = cfg.at(k + 1)
		s.EdgesIn[k], s.EdgesOut[k] = in, out
		state = edgeset.Apply(state, in, out)
	}

	if err := s.Validate(); err != nil {
		// generated events must always satisfy the representation invariants
		return nil, fmt.Errorf("%s: %w", MethodRandomEvents, err)
	}

	return s, nil
}

// sampleGraph draws one Erdős–Rényi graph G(n, p).
func sampleGraph(n int, p float64, cfg builderConfig) *edgeset.Set {
	g := edgeset.New()
	forEachPair(n, p, cfg, g.Add)

	return g
}

// forEachPair runs one Bernoulli(p) trial per unordered pair {i<j} in
// ascending order and calls fn for every success. Without an RNG, p must
// be 0 or 1 (validated upstream) and the outcome is deterministic.
func forEachPair(n int, p float64, cfg builderConfig, fn func(edgeset.Edge)) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var hit bool
			if cfg.rng == nil {
				hit = p == probMax
			} else {
				hit = cfg.rng.Float64() < p
			}
			if hit {
				fn(edgeset.Edge{U: i, V: j})
			}
		}
	}
}
