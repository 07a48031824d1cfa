// SPDX-License-Identifier: MIT
//
// File: segments.go
// Role: kind-tagged dispatch over mixed temporal.Segment lists.

package concat

import (
	"fmt"

	"github.com/katalvlaran/tempnet/temporal"
)

// Segments concatenates a list of segments of one representation kind and
// returns the merged segment of that kind.
//
// The kind is read from Segment.Kind; all segments must agree with the first.
//
// Errors:
//   - ErrEmptyInput                 for an empty list.
//   - ErrInvalidSegment             for a nil segment or any invariant violation.
//   - ErrInconsistentRepresentation when kinds differ, or a segment reports a
//     kind its concrete type does not implement.
func Segments(segments []temporal.Segment, opts ...Option) (temporal.Segment, error) {
	if len(segments) == 0 {
		return nil, segmentsEmpty(methodSegments)
	}
	for i, seg := range segments {
		if seg == nil {
			return nil, segmentErr(methodSegments, i, fmt.Errorf("nil segment: %w", ErrInvalidSegment))
		}
	}

	kind := segments[0].Kind()
	for i, seg := range segments[1:] {
		if k := seg.Kind(); k != kind {
			return nil, segmentErr(methodSegments, i+1,
				fmt.Errorf("kind %s after %s: %w", k, kind, ErrInconsistentRepresentation))
		}
	}

	switch kind {
	case temporal.KindSnapshots:
		typed, err := narrow[*temporal.SnapshotSeries](segments)
		if err != nil {
			return nil, err
		}
		out, err := Snapshots(typed, opts...)
		if err != nil {
			return nil, err
		}

		return out, nil
	case temporal.KindEvents:
		typed, err := narrow[*temporal.EventSeries](segments)
		if err != nil {
			return nil, err
		}
		out, err := Events(typed, opts...)
		if err != nil {
			return nil, err
		}

		return out, nil
	}

	return nil, fmt.Errorf("%s: %w: %w", methodSegments, ErrInconsistentRepresentation, temporal.ErrUnknownKind)
}

// narrow converts a kind-checked list into its concrete element type.
func narrow[T temporal.Segment](segments []temporal.Segment) ([]T, error) {
	out := make([]T, len(segments))
	for i, seg := range segments {
		typed, ok := seg.(T)
		if !ok {
			return nil, segmentErr(methodSegments, i,
				fmt.Errorf("%T does not implement kind %s: %w", seg, seg.Kind(), ErrInconsistentRepresentation))
		}
		out[i] = typed
	}

	return out, nil
}

// segmentsEmpty wraps ErrEmptyInput with the method tag.
func segmentsEmpty(method string) error {
	return fmt.Errorf("%s: %w", method, ErrEmptyInput)
}
