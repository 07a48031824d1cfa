// SPDX-License-Identifier: MIT
//
// Package edgeset provides the set algebra used to reason about the edge
// state of a temporal network at one instant.
//
// 🚀 What is an edge set?
//
//	An undirected simple graph on the node ids 0..N-1 is fully described by
//	the set of unordered node pairs it contains. Temporal networks are
//	sequences of such sets, so every merge or replay step reduces to a
//	handful of set operations:
//	  • Union      — state ∪ edges_in
//	  • Difference — state − edges_out, or the diff between two states
//	  • Apply      — one event step: (state ∪ in) − out
//
// ✨ Canonical encoding:
//   - Every Edge is stored as (U, V) with U < V, so (2,1) and (1,2) are the
//     same member and equality is independent of input ordering.
//   - Sets iterate in ascending (U, V) order, which makes output and tests
//     deterministic.
//   - Storage is an ordered B-tree (github.com/tidwall/btree) without
//     internal locking: a Set is a value owned by one goroutine at a time.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tempnet/edgeset"
//
//	prev := edgeset.MustFromPairs([][2]int{{0, 1}, {1, 2}})
//	next := edgeset.MustFromPairs([][2]int{{1, 2}, {2, 3}})
//	added := edgeset.Difference(next, prev)   // {(2,3)}
//	removed := edgeset.Difference(prev, next) // {(0,1)}
//
// A nil *Set is a valid, empty, read-only set for every query and for the
// package-level operations; only Add and Remove need a non-nil receiver.
package edgeset
