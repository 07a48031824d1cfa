// Package tempnet is your in-memory toolkit for stitching temporal network
// traces: sequences of graphs whose edge sets evolve over time, recorded in
// separate windows and merged into one continuous trace.
//
// 🚀 What is tempnet?
//
//	A small, pure-Go library that brings together:
//		• Edge sets: canonical unordered pairs, union / difference / apply
//		• Temporal segments: snapshot series and event series with validation
//		• Concatenation: one global time axis, one node domain, boundary events
//		• Codecs: YAML and JSON trace documents
//		• Fixtures: seeded random segments for tests and benchmarks
//
// ✨ Why choose tempnet?
//
//   - All-or-nothing merges – a failed call never leaks a partial trace
//   - Deterministic – ordered edge sets, seeded generators, stable output
//   - Observable – boundary hooks and Prometheus counters
//
// Under the hood, everything is organized under these subpackages:
//
//	edgeset/  — canonical Edge and ordered Set algebra
//	temporal/ — SnapshotSeries, EventSeries, Segment, invariants
//	concat/   — Snapshots, Events, Segments, ReconcileNodes
//	builder/  — RandomSnapshots, RandomEvents
//	traceio/  — Decode / Encode of trace documents
//	metrics/  — Prometheus collector fed by concat hooks
//	cmd/tempconcat — command-line front end
//
// Quick ASCII example (event series, two runs):
//
//	run A  t0=1 ──(2: +{1-2,0-2} −{0-1})── tmax=3
//	run B  t0=1 ─────────────────────────── tmax=3
//	merged 0 ──1──────────2 (boundary)──────── 4
//
//	go get github.com/katalvlaran/tempnet
package tempnet
