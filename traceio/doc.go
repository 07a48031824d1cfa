// SPDX-License-Identifier: MIT
//
// Package traceio reads and writes documents holding an ordered list of
// temporal network segments of one representation kind.
//
// Wire schema (YAML shown; JSON uses the same keys):
//
//	kind: snapshots          # or: events (aliases edge_lists / edge_changes)
//	segments:
//	  - n: 3
//	    t: [0, 1, 2]
//	    tmax: 3
//	    time_unit: s         # optional
//	    notes: run 1         # optional
//	    edges:               # one list of [u, v] pairs per entry of t
//	      - [[0, 1]]
//	      - [[1, 2], [0, 2]]
//	      - [[0, 1]]
//
//	kind: events
//	segments:
//	  - n: 3
//	    t0: 1
//	    tmax: 3
//	    edges_initial: [[0, 1]]
//	    t: [2]
//	    edges_in:  [[[1, 2], [0, 2]]]
//	    edges_out: [[[0, 1]]]
//
// Decoding canonicalises pairs and rejects malformed ones (not exactly two
// ids, self-loops, negative ids) and unknown keys. The structural invariants
// of each series (lengths, time order, node range) are left to the consumer,
// typically concat, which validates before merging.
//
// Schema returns the same layout as a JSON Schema document.
package traceio
