// SPDX-License-Identifier: MIT
//
// File: events.go
// Role: concatenation of EventSeries segments with boundary-event synthesis.

package concat

import (
	"github.com/katalvlaran/tempnet/edgeset"
	"github.com/katalvlaran/tempnet/temporal"
)

// Events merges event-series segments, in the given order, into one series.
//
// Algorithm:
//  1. Reject an empty list (ErrEmptyInput) and validate every segment
//     (ErrInvalidSegment).
//  2. N = ReconcileNodes(segments).
//  3. The first segment's EdgesInitial becomes the result's; T0 = 0.
//  4. At every later join (time = running offset) compare the replayed final
//     state P of the previous segment with the segment's declared initial
//     state I. If they differ, emit one boundary event with
//     in = I − P and out = P − I.
//  5. Append the segment's rebased events, then advance the offset by
//     Tmax − T0.
//  6. Tmax = final offset.
//
// Tie-break:
//
//	If the segment's first event, once rebased, lands exactly on the join
//	(float64 rounding at large offsets), the boundary and that event become
//	one event carrying the net change from P to the state after the event.
//	A net change of nothing is dropped.
//
// Guarantees: 0 = T0 < T[0] < … < T[last] < Tmax, and replaying
// EdgesInitial through the events reproduces every input segment's states
// at its rebased times.
func Events(segments []*temporal.EventSeries, opts ...Option) (*temporal.EventSeries, error) {
	cfg := resolveOptions(opts)
	if len(segments) == 0 {
		return nil, segmentsEmpty(methodEvents)
	}

	generic := make([]temporal.Segment, len(segments))
	units := make([]string, len(segments))
	notes := make([]string, len(segments))
	total := 0
	for i, s := range segments {
		if err := s.Validate(); err != nil {
			return nil, segmentErr(methodEvents, i, err)
		}
		generic[i] = s
		units[i], notes[i] = s.TimeUnit, s.Notes
		total += len(s.T) + 1
	}

	n, err := ReconcileNodes(generic)
	if err != nil {
		return nil, err
	}
	unit, joined, err := mergeMetadata(methodEvents, units, notes)
	if err != nil {
		return nil, err
	}

	b := &eventBuilder{
		out: &temporal.EventSeries{
			N:            n,
			EdgesInitial: segments[0].EdgesInitial.Clone(),
			T0:           0,
			T:            make([]float64, 0, total),
			EdgesIn:      make([]*edgeset.Set, 0, total),
			EdgesOut:     make([]*edgeset.Set, 0, total),
			TimeUnit:     unit,
			Notes:        joined,
		},
		placements: make([]placement, 0, len(segments)),
	}

	var ax aligner
	var prevFinal *edgeset.Set
	for i, s := range segments {
		b.placements = append(b.placements, placement{index: i, offset: ax.offset})
		times := ax.rebase(s.T, s.T0)

		first := 0
		if i > 0 {
			consumed, err := b.join(i, ax.offset, prevFinal, s, times)
			if err != nil {
				return nil, err
			}
			if consumed {
				first = 1
			}
		}
		for j := first; j < len(times); j++ {
			if err := b.push(i, times[j], s.EdgesIn[j].Clone(), s.EdgesOut[j].Clone()); err != nil {
				return nil, err
			}
		}

		prevFinal = s.FinalState()
		ax.advance(s.Duration())
	}
	if ax.offset <= b.last {
		return nil, resolutionErr(methodEvents, len(segments)-1, ax.offset)
	}
	b.out.Tmax = ax.offset

	cfg.report(b.placements, b.boundaries)

	return b.out, nil
}

// eventBuilder accumulates the merged series of one Events call.
type eventBuilder struct {
	out        *temporal.EventSeries
	last       float64 // time of the latest appended event, or T0
	placements []placement
	boundaries []Boundary
}

// push appends one event after checking strict time order.
func (b *eventBuilder) push(segment int, at float64, in, out *edgeset.Set) error {
	if at <= b.last {
		return resolutionErr(methodEvents, segment, at)
	}
	b.out.T = append(b.out.T, at)
	b.out.EdgesIn = append(b.out.EdgesIn, in)
	b.out.EdgesOut = append(b.out.EdgesOut, out)
	b.last = at

	return nil
}

// join emits the boundary event between prev (replayed final state of the
// previous segment) and segment s starting at global time at. times are the
// rebased event times of s. consumed reports whether s's first event was
// merged into the boundary.
func (b *eventBuilder) join(index int, at float64, prev *edgeset.Set, s *temporal.EventSeries, times []float64) (consumed bool, err error) {
	target := s.EdgesInitial
	if len(times) > 0 && times[0] == at {
		// simultaneous with the first event: target the state after it
		target = edgeset.Apply(s.EdgesInitial, s.EdgesIn[0], s.EdgesOut[0])
		consumed = true
	}

	added := edgeset.Difference(target, prev)
	removed := edgeset.Difference(prev, target)
	if added.Empty() && removed.Empty() {
		return consumed, nil
	}
	if err := b.push(index, at, added, removed); err != nil {
		return false, err
	}
	b.boundaries = append(b.boundaries, Boundary{
		Segment:   index,
		Time:      at,
		Added:     added.Clone(),
		Removed:   removed.Clone(),
		Coalesced: consumed,
	})

	return consumed, nil
}
