// SPDX-License-Identifier: MIT
//
// File: snapshots.go
// Role: SnapshotSeries representation, its invariants and state lookup.

package temporal

import (
	"sort"

	"github.com/katalvlaran/tempnet/edgeset"
)

// SnapshotSeries samples the complete edge set at each time in T.
//
// Invariants (checked by Validate):
//   - N ≥ 0 and every edge references ids in [0, N).
//   - len(T) ≥ 1, T finite and strictly increasing.
//   - Tmax > T[len(T)-1].
//   - len(Edges) == len(T).
type SnapshotSeries struct {
	// N is the node count of the id domain 0..N-1.
	N int

	// T holds the sampling times.
	T []float64

	// Tmax is the declared end of the observation window.
	Tmax float64

	// Edges[i] is the edge set observed at T[i]. A nil entry is an empty graph.
	Edges []*edgeset.Set

	// TimeUnit optionally names the unit of T and Tmax (e.g. "s", "20s").
	TimeUnit string

	// Notes is free-form provenance text.
	Notes string
}

// Kind implements Segment.
func (s *SnapshotSeries) Kind() Kind { return KindSnapshots }

// NodeCount implements Segment.
func (s *SnapshotSeries) NodeCount() int { return s.N }

// Start implements Segment; it is T[0], or Tmax for a series with no samples.
func (s *SnapshotSeries) Start() float64 {
	if len(s.T) == 0 {
		return s.Tmax
	}

	return s.T[0]
}

// End implements Segment.
func (s *SnapshotSeries) End() float64 { return s.Tmax }

// Duration implements Segment.
func (s *SnapshotSeries) Duration() float64 { return s.Tmax - s.Start() }

// MaxNode implements Segment.
func (s *SnapshotSeries) MaxNode() int {
	maxID := -1
	for _, es := range s.Edges {
		maxID = max(maxID, es.MaxNode())
	}

	return maxID
}

// Validate implements Segment. Unequal len(T) and len(Edges) is always an
// error: the series is never truncated or padded to make it fit.
func (s *SnapshotSeries) Validate() error {
	if s == nil {
		return invalidf("nil snapshot series")
	}
	if s.N < 0 {
		return invalidf("negative node count %d", s.N)
	}
	if len(s.T) == 0 {
		return invalidf("snapshot series has no sampling times")
	}
	if len(s.T) != len(s.Edges) {
		return invalidf("len(t)=%d does not match len(edges)=%d", len(s.T), len(s.Edges))
	}
	if err := checkFinite("t", s.T...); err != nil {
		return err
	}
	if err := checkFinite("tmax", s.Tmax); err != nil {
		return err
	}
	if err := checkIncreasing("t", s.T); err != nil {
		return err
	}
	if last := s.T[len(s.T)-1]; s.Tmax <= last {
		return invalidf("tmax=%g does not exceed last time %g", s.Tmax, last)
	}
	for i, es := range s.Edges {
		if err := es.Validate(s.N); err != nil {
			return invalidf("edges[%d]: %v", i, err)
		}
	}

	return nil
}

// StateAt returns the snapshot in effect at time t, i.e. Edges[i] for the
// largest i with T[i] ≤ t. ok is false when t lies outside [T[0], Tmax).
// The returned set is shared with the series and must not be mutated.
func (s *SnapshotSeries) StateAt(t float64) (state *edgeset.Set, ok bool) {
	if len(s.T) == 0 || t < s.T[0] || t >= s.Tmax {
		return nil, false
	}
	// first index with T[i] > t, minus one
	i := sort.Search(len(s.T), func(i int) bool { return s.T[i] > t }) - 1
	if i >= len(s.Edges) {
		return nil, false
	}

	return s.Edges[i], true
}
