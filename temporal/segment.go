// SPDX-License-Identifier: MIT
//
// File: segment.go
// Role: sentinel errors, the Kind tag, and the Segment variant shared by both
// representations.

package temporal

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for segment validation.
var (
	// ErrInvalidSegment indicates a segment violating one of its structural invariants.
	ErrInvalidSegment = errors.New("temporal: invalid segment")

	// ErrUnknownKind indicates an unrecognised representation name.
	ErrUnknownKind = errors.New("temporal: unknown representation kind")
)

// Kind tags the representation of a Segment.
type Kind int

const (
	// KindSnapshots marks a SnapshotSeries.
	KindSnapshots Kind = iota

	// KindEvents marks an EventSeries.
	KindEvents
)

// String returns the wire name of k.
func (k Kind) String() string {
	switch k {
	case KindSnapshots:
		return "snapshots"
	case KindEvents:
		return "events"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a wire name ("snapshots", "events") to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "snapshots", "edge_lists":
		return KindSnapshots, nil
	case "events", "edge_changes":
		return KindEvents, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Segment is one contiguous temporal network recording.
//
// Start, End and Duration are meaningful only for a segment whose Validate
// returned nil.
type Segment interface {
	// Kind reports the representation.
	Kind() Kind
	// NodeCount returns the declared node count N.
	NodeCount() int
	// Start returns the first instant of the observation window.
	Start() float64
	// End returns the declared end of the observation window (Tmax).
	End() float64
	// Duration returns End() - Start().
	Duration() float64
	// MaxNode returns the largest node id referenced by any edge, or -1.
	MaxNode() int
	// Validate checks every structural invariant of the representation.
	Validate() error
}

// invalidf wraps ErrInvalidSegment with a formatted reason.
func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidSegment, fmt.Sprintf(format, args...))
}

// checkFinite rejects NaN or ±Inf anywhere in ts.
func checkFinite(name string, ts ...float64) error {
	if floats.HasNaN(ts) {
		return invalidf("%s contains NaN", name)
	}
	for _, v := range ts {
		if math.IsInf(v, 0) {
			return invalidf("%s contains an infinite value", name)
		}
	}

	return nil
}

// checkIncreasing rejects any i with ts[i] <= ts[i-1].
func checkIncreasing(name string, ts []float64) error {
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			return invalidf("%s not strictly increasing at index %d (%g after %g)", name, i, ts[i], ts[i-1])
		}
	}

	return nil
}
