// SPDX-License-Identifier: MIT
//
// File: snapshots.go
// Role: concatenation of SnapshotSeries segments.

package concat

import (
	"math"

	"github.com/katalvlaran/tempnet/edgeset"
	"github.com/katalvlaran/tempnet/temporal"
)

// Snapshots merges snapshot-series segments, in the given order, into one series.
//
// Algorithm:
//  1. Reject an empty list (ErrEmptyInput) and validate every segment
//     (ErrInvalidSegment); a length mismatch between T and Edges is never
//     truncated or padded.
//  2. N = ReconcileNodes(segments).
//  3. For each segment, rebase T onto the running offset and append it;
//     append a copy of each edge set, ids unchanged.
//  4. Tmax = Σ (Tmax_k − T_k[0]).
//
// Guarantees: len(T) == len(Edges), T strictly increasing starting at 0,
// Tmax > T[last]. The inputs are not mutated and share no sets with the result.
func Snapshots(segments []*temporal.SnapshotSeries, opts ...Option) (*temporal.SnapshotSeries, error) {
	cfg := resolveOptions(opts)
	if len(segments) == 0 {
		return nil, segmentsEmpty(methodSnapshots)
	}

	generic := make([]temporal.Segment, len(segments))
	units := make([]string, len(segments))
	notes := make([]string, len(segments))
	total := 0
	for i, s := range segments {
		if err := s.Validate(); err != nil {
			return nil, segmentErr(methodSnapshots, i, err)
		}
		generic[i] = s
		units[i], notes[i] = s.TimeUnit, s.Notes
		total += len(s.T)
	}

	n, err := ReconcileNodes(generic)
	if err != nil {
		return nil, err
	}
	unit, joined, err := mergeMetadata(methodSnapshots, units, notes)
	if err != nil {
		return nil, err
	}

	out := &temporal.SnapshotSeries{
		N:        n,
		T:        make([]float64, 0, total),
		Edges:    make([]*edgeset.Set, 0, total),
		TimeUnit: unit,
		Notes:    joined,
	}
	placements := make([]placement, 0, len(segments))

	var ax aligner
	last := math.Inf(-1)
	for i, s := range segments {
		placements = append(placements, placement{index: i, offset: ax.offset})
		for j, at := range ax.rebase(s.T, s.Start()) {
			if at <= last {
				return nil, resolutionErr(methodSnapshots, i, at)
			}
			out.T = append(out.T, at)
			out.Edges = append(out.Edges, s.Edges[j].Clone())
			last = at
		}
		ax.advance(s.Duration())
	}
	if ax.offset <= last {
		return nil, resolutionErr(methodSnapshots, len(segments)-1, ax.offset)
	}
	out.Tmax = ax.offset

	cfg.report(placements, nil)

	return out, nil
}
