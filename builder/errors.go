// SPDX-License-Identifier: MIT
// Package: tempnet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`: "RandomEvents: n=0 < min=1: builder: parameter too small".
//   • Generators never panic; option constructors (WithX) do on meaningless input.

package builder

import "errors"

// ErrTooFewVertices indicates a node count below the generator minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic generator (0 < p < 1) without an RNG;
// set WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadSize indicates an invalid number of sampling times or events.
var ErrBadSize = errors.New("builder: invalid size/length")
