// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options and observation hooks.

package concat

import "github.com/katalvlaran/tempnet/edgeset"

// Boundary describes a synthetic event emitted at a segment join.
type Boundary struct {
	// Segment is the index of the segment that begins at Time.
	Segment int

	// Time is the global time of the join.
	Time float64

	// Added and Removed are the edge sets of the emitted event.
	Added   *edgeset.Set
	Removed *edgeset.Set

	// Coalesced is true when the join fell on the segment's first event and
	// both were merged into this one event.
	Coalesced bool
}

// Option configures a concatenation call.
type Option func(*Options)

// Options holds the hooks of one call. Hooks run after the merge has
// succeeded, in segment order; they never observe a failed call.
type Options struct {
	// OnSegment is called once per segment with its index and the global
	// offset at which it was placed.
	OnSegment func(index int, offset float64)

	// OnBoundary is called for every boundary event present in the result.
	OnBoundary func(b Boundary)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnSegment:  func(int, float64) {},
		OnBoundary: func(Boundary) {},
	}
}

// WithOnSegment registers a placement hook. Panics on nil.
func WithOnSegment(fn func(index int, offset float64)) Option {
	if fn == nil {
		panic("concat: WithOnSegment(nil)")
	}
	return func(o *Options) { o.OnSegment = fn }
}

// WithOnBoundary registers a boundary hook. Panics on nil.
func WithOnBoundary(fn func(b Boundary)) Option {
	if fn == nil {
		panic("concat: WithOnBoundary(nil)")
	}
	return func(o *Options) { o.OnBoundary = fn }
}

// resolveOptions applies opts in order over the defaults.
func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// placement records where a segment landed on the global axis.
type placement struct {
	index  int
	offset float64
}

// report replays the recorded observations into the hooks.
func (o Options) report(placements []placement, boundaries []Boundary) {
	for _, p := range placements {
		o.OnSegment(p.index, p.offset)
	}
	for _, b := range boundaries {
		o.OnBoundary(b)
	}
}
