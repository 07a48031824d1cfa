// SPDX-License-Identifier: MIT
//
// Package concat stitches separately recorded temporal network segments into
// one continuous trace on a single global time axis.
//
// 🚀 What does concatenation reconcile?
//
//	Three invariants at once:
//	  • Monotonic global time — every segment is rebased so that it starts
//	    exactly where the previous one ended (no gap, no overlap), whatever
//	    its own time origin was.
//	  • One node domain — the merged N is the largest N of any segment; ids
//	    are shared across segments and never relabelled.
//	  • State continuity (events only) — when a segment's declared initial
//	    state differs from the replayed final state of its predecessor, a
//	    synthetic boundary event at the join explains the jump.
//
// ✨ Entry points:
//   - Snapshots(segments) — merge SnapshotSeries segments.
//   - Events(segments)    — merge EventSeries segments.
//   - Segments(segments)  — dispatch on temporal.Kind; mixing kinds fails
//     with ErrInconsistentRepresentation.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tempnet/concat"
//
//	merged, err := concat.Events(runs,
//	    concat.WithOnBoundary(func(b concat.Boundary) {
//	        fmt.Println("join at", b.Time, "added", b.Added, "removed", b.Removed)
//	    }),
//	)
//
// Guarantees:
//
//	Every call is all-or-nothing: inputs are validated before anything is
//	built, the result is a fresh value sharing no mutable state with the
//	inputs, and hooks fire only after the merge succeeded. The functions are
//	pure and hold no locks; concurrent calls on shared read-only inputs are safe.
//
// Complexity:
//
//	Snapshots: O(T + E) for T sampling times and E edge mentions.
//	Events:    O(E log E), dominated by replaying each segment's final state.
package concat
