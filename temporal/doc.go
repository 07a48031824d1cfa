// SPDX-License-Identifier: MIT
//
// Package temporal defines the two canonical representations of a temporal
// network segment and the invariants every segment must satisfy.
//
//   - SnapshotSeries — the full edge set sampled at each of an ordered list of
//     time points; snapshot i holds on [T[i], T[i+1]) and the last one on
//     [T[last], Tmax).
//   - EventSeries    — an initial edge set at T0 plus discrete events, each
//     adding EdgesIn[i] and removing EdgesOut[i] at time T[i].
//
// Both implement Segment, a Kind-tagged variant that lets callers dispatch on
// the representation without reflection.
//
// Validation:
//
//	Validate reports the first violated invariant wrapped around
//	ErrInvalidSegment. Segments are treated as read-only values: nothing in
//	this package mutates a series it was handed.
//
// Derived state:
//
//	EventSeries.FinalState replays every event from EdgesInitial; Replay and
//	StateAt expose the intermediate states for verification and analysis.
package temporal
