// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors of the concatenation engine.
// Policy:
//   - Callers branch with errors.Is; messages carry the method and segment index.
//   - No partial result is ever returned together with an error.

package concat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tempnet/temporal"
)

var (
	// ErrEmptyInput indicates an empty segment list.
	ErrEmptyInput = errors.New("concat: no segments to concatenate")

	// ErrInvalidSegment indicates a segment violating its representation's
	// invariants, or one whose times collapse when rebased onto the global axis.
	// It is the same value as temporal.ErrInvalidSegment.
	ErrInvalidSegment = temporal.ErrInvalidSegment

	// ErrInconsistentRepresentation indicates segments of different kinds, or
	// with conflicting time units, in one call.
	ErrInconsistentRepresentation = errors.New("concat: inconsistent segment representation")
)

// Method tags used as error prefixes.
const (
	methodSnapshots = "Snapshots"
	methodEvents    = "Events"
	methodSegments  = "Segments"
	methodReconcile = "ReconcileNodes"
)

// segmentErr prefixes err with the method and the offending segment index.
func segmentErr(method string, index int, err error) error {
	return fmt.Errorf("%s: segment %d: %w", method, index, err)
}

// resolutionErr reports rebased times that are no longer strictly increasing.
// This happens only when float64 rounding swallows a tiny interval at a large offset.
func resolutionErr(method string, index int, at float64) error {
	return fmt.Errorf("%s: segment %d: time %g collapses onto the previous instant after rebasing: %w",
		method, index, at, ErrInvalidSegment)
}
