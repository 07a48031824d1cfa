// SPDX-License-Identifier: MIT
//
// File: timeaxis.go
// Role: running time offset that lays segments back-to-back on one axis.

package concat

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// aligner keeps the global offset at which the next segment begins.
// The zero value starts the global axis at 0.
type aligner struct {
	offset float64
}

// rebase maps local times onto the global axis as (t - start) + offset.
// It returns a fresh slice; ts is left untouched.
func (a *aligner) rebase(ts []float64, start float64) []float64 {
	out := make([]float64, len(ts))
	copy(out, ts)
	floats.AddConst(-start, out)
	floats.AddConst(a.offset, out)

	return out
}

// advance moves the offset past a segment of the given duration.
func (a *aligner) advance(duration float64) {
	a.offset += duration
}

// mergeMetadata reconciles time units and joins notes.
// All non-empty units must agree; an empty unit means "unspecified".
func mergeMetadata(method string, units, notes []string) (unit, joined string, err error) {
	var parts []string
	for i, u := range units {
		switch {
		case u == "":
		case unit == "":
			unit = u
		case u != unit:
			return "", "", fmt.Errorf("%s: segment %d: time unit %q differs from %q: %w",
				method, i, u, unit, ErrInconsistentRepresentation)
		}
	}
	for _, n := range notes {
		if n != "" {
			parts = append(parts, n)
		}
	}

	return unit, strings.Join(parts, "\n"), nil
}
