// SPDX-License-Identifier: MIT
//
// File: nodes.go
// Role: node-domain reconciliation across segments.

package concat

import (
	"fmt"

	"github.com/katalvlaran/tempnet/temporal"
)

// ReconcileNodes returns the node count of the merged trace: the largest N
// declared by any segment.
//
// Node ids are assumed to be drawn from one shared 0..N-1 space, so nothing
// is relabelled; a segment with a smaller N simply never mentions the higher ids.
//
// Errors:
//   - ErrEmptyInput     for an empty list.
//   - ErrInvalidSegment for a nil segment, N < 0, or an edge id ≥ the
//     segment's own N.
//
// Complexity: O(E) over all edge mentions.
func ReconcileNodes(segments []temporal.Segment) (int, error) {
	if len(segments) == 0 {
		return 0, fmt.Errorf("%s: %w", methodReconcile, ErrEmptyInput)
	}

	n := 0
	for i, seg := range segments {
		if isNilSegment(seg) {
			return 0, segmentErr(methodReconcile, i, fmt.Errorf("nil segment: %w", ErrInvalidSegment))
		}
		segN := seg.NodeCount()
		if segN < 0 {
			return 0, segmentErr(methodReconcile, i, fmt.Errorf("negative node count %d: %w", segN, ErrInvalidSegment))
		}
		if id := seg.MaxNode(); id >= segN {
			return 0, segmentErr(methodReconcile, i,
				fmt.Errorf("edge references node %d with N=%d: %w", id, segN, ErrInvalidSegment))
		}
		n = max(n, segN)
	}

	return n, nil
}

// isNilSegment catches both a nil interface and a typed nil series.
func isNilSegment(seg temporal.Segment) bool {
	switch s := seg.(type) {
	case nil:
		return true
	case *temporal.SnapshotSeries:
		return s == nil
	case *temporal.EventSeries:
		return s == nil
	}

	return false
}
