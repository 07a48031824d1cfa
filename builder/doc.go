// SPDX-License-Identifier: MIT
//
// Package builder generates deterministic, always-valid temporal network
// segments for tests, benchmarks, examples and command-line fixtures.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, time origin, sampling step, metadata.
//   - Segment generators:
//     – RandomSnapshots: Erdős–Rényi snapshot at each of `steps` sampling times.
//     – RandomEvents:    Erdős–Rényi initial state, then `steps` events that
//     toggle every node pair independently with probability p.
//
// Guarantees:
//
//   - Every generated segment passes Validate (in/out disjoint, removals
//     drawn from the current state, strictly increasing times).
//   - Same parameters, options and seed ⇒ identical segments (pairs are
//     trialled in ascending (i, j) order).
//   - Times are start + k·step, so with integral start/step every value is
//     exactly representable and rebasing in concat is exact.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     invalid generator parameters surface as sentinel errors.
package builder
