// SPDX-License-Identifier: MIT
//
// File: events.go
// Role: EventSeries representation, its invariants, replay and final state.

package temporal

import (
	"sort"

	"github.com/katalvlaran/tempnet/edgeset"
)

// EventSeries describes a network as an initial edge set plus discrete changes.
//
// Invariants (checked by Validate):
//   - N ≥ 0 and every edge references ids in [0, N).
//   - T0 < Tmax, all times finite.
//   - T strictly increasing with T0 < T[0] and T[last] < Tmax (T may be empty).
//   - len(T) == len(EdgesIn) == len(EdgesOut).
//   - EdgesIn[i] and EdgesOut[i] are disjoint.
//   - EdgesOut[i] is a subset of the state immediately before event i.
type EventSeries struct {
	// N is the node count of the id domain 0..N-1.
	N int

	// EdgesInitial is the graph at T0.
	EdgesInitial *edgeset.Set

	// T0 is the start of the observation window.
	T0 float64

	// Tmax is the declared end of the observation window.
	Tmax float64

	// T holds the event times.
	T []float64

	// EdgesIn[i] is the set of edges appearing at T[i].
	EdgesIn []*edgeset.Set

	// EdgesOut[i] is the set of edges disappearing at T[i].
	EdgesOut []*edgeset.Set

	// TimeUnit optionally names the unit of every time value.
	TimeUnit string

	// Notes is free-form provenance text.
	Notes string
}

// Kind implements Segment.
func (s *EventSeries) Kind() Kind { return KindEvents }

// NodeCount implements Segment.
func (s *EventSeries) NodeCount() int { return s.N }

// Start implements Segment.
func (s *EventSeries) Start() float64 { return s.T0 }

// End implements Segment.
func (s *EventSeries) End() float64 { return s.Tmax }

// Duration implements Segment.
func (s *EventSeries) Duration() float64 { return s.Tmax - s.T0 }

// MaxNode implements Segment. Edges mentioned only in EdgesOut are counted too.
func (s *EventSeries) MaxNode() int {
	maxID := s.EdgesInitial.MaxNode()
	for i := range s.EdgesIn {
		maxID = max(maxID, s.EdgesIn[i].MaxNode())
	}
	for i := range s.EdgesOut {
		maxID = max(maxID, s.EdgesOut[i].MaxNode())
	}

	return maxID
}

// Validate implements Segment.
//
// Complexity: O(E log E) where E is the total number of edge mentions, because
// the subset check on EdgesOut needs the replayed state before each event.
func (s *EventSeries) Validate() error {
	if s == nil {
		return invalidf("nil event series")
	}
	if s.N < 0 {
		return invalidf("negative node count %d", s.N)
	}
	if len(s.T) != len(s.EdgesIn) || len(s.T) != len(s.EdgesOut) {
		return invalidf("len(t)=%d, len(edges_in)=%d, len(edges_out)=%d differ",
			len(s.T), len(s.EdgesIn), len(s.EdgesOut))
	}
	if err := checkFinite("t0/tmax", s.T0, s.Tmax); err != nil {
		return err
	}
	if err := checkFinite("t", s.T...); err != nil {
		return err
	}
	if s.T0 >= s.Tmax {
		return invalidf("t0=%g is not before tmax=%g", s.T0, s.Tmax)
	}
	if err := checkIncreasing("t", s.T); err != nil {
		return err
	}
	if n := len(s.T); n > 0 {
		if s.T[0] <= s.T0 {
			return invalidf("first event time %g is not after t0=%g", s.T[0], s.T0)
		}
		if s.T[n-1] >= s.Tmax {
			return invalidf("last event time %g is not before tmax=%g", s.T[n-1], s.Tmax)
		}
	}
	if err := s.EdgesInitial.Validate(s.N); err != nil {
		return invalidf("edges_initial: %v", err)
	}

	state := s.EdgesInitial.Clone()
	for i := range s.T {
		in, out := s.EdgesIn[i], s.EdgesOut[i]
		if err := in.Validate(s.N); err != nil {
			return invalidf("edges_in[%d]: %v", i, err)
		}
		if err := out.Validate(s.N); err != nil {
			return invalidf("edges_out[%d]: %v", i, err)
		}
		if edgeset.Intersects(in, out) {
			return invalidf("edges_in[%d] and edges_out[%d] overlap", i, i)
		}
		if !edgeset.IsSubset(out, state) {
			return invalidf("edges_out[%d] removes edges absent from the current state", i)
		}
		state = edgeset.Apply(state, in, out)
	}

	return nil
}

// Replay walks the state trajectory. fn is first called with index -1 at T0
// and the initial state, then once per event with the state right after it.
// Returning false stops the walk. Each state passed to fn is a fresh Set.
func (s *EventSeries) Replay(fn func(i int, t float64, state *edgeset.Set) bool) {
	state := s.EdgesInitial.Clone()
	if !fn(-1, s.T0, state) {
		return
	}
	for i := range s.T {
		state = edgeset.Apply(state, s.EdgesIn[i], s.EdgesOut[i])
		if !fn(i, s.T[i], state) {
			return
		}
	}
}

// FinalState returns the edge set after every event has been applied.
func (s *EventSeries) FinalState() *edgeset.Set {
	var final *edgeset.Set
	s.Replay(func(_ int, _ float64, state *edgeset.Set) bool {
		final = state
		return true
	})

	return final
}

// StateAt returns the edge set in effect at time t (events at exactly t are
// applied). ok is false when t lies outside [T0, Tmax).
func (s *EventSeries) StateAt(t float64) (state *edgeset.Set, ok bool) {
	if t < s.T0 || t >= s.Tmax {
		return nil, false
	}
	upto := sort.Search(len(s.T), func(i int) bool { return s.T[i] > t })
	state = s.EdgesInitial.Clone()
	for i := 0; i < upto; i++ {
		state = edgeset.Apply(state, s.EdgesIn[i], s.EdgesOut[i])
	}

	return state, true
}
