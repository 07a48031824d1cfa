// SPDX-License-Identifier: MIT
//
// File: document.go
// Role: in-memory Document and its conversion to and from the wire schema.

package traceio

import (
	"fmt"

	"github.com/katalvlaran/tempnet/edgeset"
	"github.com/katalvlaran/tempnet/temporal"
)

// Document is an ordered list of segments of one kind.
// Exactly one of Snapshots / Events is populated, according to Kind.
type Document struct {
	Kind      temporal.Kind
	Snapshots []*temporal.SnapshotSeries
	Events    []*temporal.EventSeries
}

// Len returns the number of segments.
func (d *Document) Len() int {
	if d.Kind == temporal.KindEvents {
		return len(d.Events)
	}

	return len(d.Snapshots)
}

// Segments returns the segments as the kind-tagged variant, in order.
func (d *Document) Segments() []temporal.Segment {
	out := make([]temporal.Segment, 0, d.Len())
	if d.Kind == temporal.KindEvents {
		for _, s := range d.Events {
			out = append(out, s)
		}

		return out
	}
	for _, s := range d.Snapshots {
		out = append(out, s)
	}

	return out
}

// DocumentOf wraps segments of one kind in a Document.
func DocumentOf(segs ...temporal.Segment) (*Document, error) {
	if len(segs) == 0 {
		return nil, fmt.Errorf("DocumentOf: no segments: %w", ErrMalformedDocument)
	}
	for i, seg := range segs {
		if isNil(seg) {
			return nil, fmt.Errorf("DocumentOf: segment %d is nil: %w", i, ErrMalformedDocument)
		}
	}
	d := &Document{Kind: segs[0].Kind()}
	for i, seg := range segs {
		switch s := seg.(type) {
		case *temporal.SnapshotSeries:
			if d.Kind == temporal.KindSnapshots {
				d.Snapshots = append(d.Snapshots, s)
				continue
			}
		case *temporal.EventSeries:
			if d.Kind == temporal.KindEvents {
				d.Events = append(d.Events, s)
				continue
			}
		}

		return nil, fmt.Errorf("DocumentOf: segment %d (%T) does not match kind %s: %w", i, seg, d.Kind, ErrMalformedDocument)
	}

	return d, nil
}

// isNil reports a nil interface or a typed nil series pointer.
func isNil(seg temporal.Segment) bool {
	switch s := seg.(type) {
	case nil:
		return true
	case *temporal.SnapshotSeries:
		return s == nil
	case *temporal.EventSeries:
		return s == nil
	}

	return false
}

// Join appends the segments of several documents, in order, into one.
// All documents must share a kind.
func Join(docs ...*Document) (*Document, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("Join: no documents: %w", ErrMalformedDocument)
	}
	out := &Document{Kind: docs[0].Kind}
	for i, d := range docs {
		if d.Kind != out.Kind {
			return nil, fmt.Errorf("Join: document %d is %s, expected %s: %w", i, d.Kind, out.Kind, ErrMalformedDocument)
		}
		out.Snapshots = append(out.Snapshots, d.Snapshots...)
		out.Events = append(out.Events, d.Events...)
	}

	return out, nil
}

// wireDocument is the serialised form shared by YAML and JSON.
type wireDocument struct {
	Kind     string        `yaml:"kind" json:"kind" jsonschema:"representation of every segment: snapshots or events"`
	Segments []wireSegment `yaml:"segments" json:"segments" jsonschema:"segments in concatenation order"`
}

// wireSegment carries the fields of both kinds; pairs are []int so that a
// wrong arity can be reported instead of silently zero-filled.
type wireSegment struct {
	N            int       `yaml:"n" json:"n" jsonschema:"node count; node ids are 0..n-1"`
	T0           *float64  `yaml:"t0,omitempty" json:"t0,omitempty" jsonschema:"start of the observation window (events only)"`
	T            []float64 `yaml:"t" json:"t" jsonschema:"strictly increasing sampling or event times"`
	Tmax         float64   `yaml:"tmax" json:"tmax" jsonschema:"end of the observation window"`
	TimeUnit     string    `yaml:"time_unit,omitempty" json:"time_unit,omitempty" jsonschema:"unit of every time value"`
	Notes        string    `yaml:"notes,omitempty" json:"notes,omitempty" jsonschema:"free-form provenance text"`
	Edges        [][][]int `yaml:"edges,omitempty" json:"edges,omitempty" jsonschema:"edge list per sampling time (snapshots only)"`
	EdgesInitial [][]int   `yaml:"edges_initial,omitempty" json:"edges_initial,omitempty" jsonschema:"edges present at t0 (events only)"`
	EdgesIn      [][][]int `yaml:"edges_in,omitempty" json:"edges_in,omitempty" jsonschema:"edges switched on per event (events only)"`
	EdgesOut     [][][]int `yaml:"edges_out,omitempty" json:"edges_out,omitempty" jsonschema:"edges switched off per event (events only)"`
}

// fromWire converts a decoded wire document.
func fromWire(w *wireDocument) (*Document, error) {
	kind, err := temporal.ParseKind(w.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	d := &Document{Kind: kind}
	for i := range w.Segments {
		ws := &w.Segments[i]
		switch kind {
		case temporal.KindSnapshots:
			s, err := ws.snapshots()
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
			d.Snapshots = append(d.Snapshots, s)
		case temporal.KindEvents:
			s, err := ws.events()
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
			d.Events = append(d.Events, s)
		}
	}

	return d, nil
}

func (ws *wireSegment) snapshots() (*temporal.SnapshotSeries, error) {
	if ws.T0 != nil || ws.EdgesInitial != nil || ws.EdgesIn != nil || ws.EdgesOut != nil {
		return nil, fmt.Errorf("event fields in a snapshots document: %w", ErrMalformedDocument)
	}
	edges, err := setList("edges", ws.Edges)
	if err != nil {
		return nil, err
	}

	return &temporal.SnapshotSeries{
		N:        ws.N,
		T:        ws.T,
		Tmax:     ws.Tmax,
		Edges:    edges,
		TimeUnit: ws.TimeUnit,
		Notes:    ws.Notes,
	}, nil
}

func (ws *wireSegment) events() (*temporal.EventSeries, error) {
	if ws.Edges != nil {
		return nil, fmt.Errorf("snapshot field edges in an events document: %w", ErrMalformedDocument)
	}
	if ws.T0 == nil {
		return nil, fmt.Errorf("missing t0: %w", ErrMalformedDocument)
	}
	initial, err := toSet("edges_initial", ws.EdgesInitial)
	if err != nil {
		return nil, err
	}
	in, err := setList("edges_in", ws.EdgesIn)
	if err != nil {
		return nil, err
	}
	out, err := setList("edges_out", ws.EdgesOut)
	if err != nil {
		return nil, err
	}

	return &temporal.EventSeries{
		N:            ws.N,
		EdgesInitial: initial,
		T0:           *ws.T0,
		Tmax:         ws.Tmax,
		T:            ws.T,
		EdgesIn:      in,
		EdgesOut:     out,
		TimeUnit:     ws.TimeUnit,
		Notes:        ws.Notes,
	}, nil
}

// toSet converts raw pairs into a canonical Set.
func toSet(field string, raw [][]int) (*edgeset.Set, error) {
	pairs := make([][2]int, len(raw))
	for i, p := range raw {
		if len(p) != 2 {
			return nil, fmt.Errorf("%s: pair %d has %d ids: %w: %w", field, i, len(p), ErrMalformedDocument, edgeset.ErrMalformedPair)
		}
		pairs[i] = [2]int{p[0], p[1]}
	}
	s, err := edgeset.FromPairs(pairs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", field, ErrMalformedDocument, err)
	}

	return s, nil
}

// setList converts a list of raw pair lists.
func setList(field string, raw [][][]int) ([]*edgeset.Set, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]*edgeset.Set, len(raw))
	for i, r := range raw {
		s, err := toSet(fmt.Sprintf("%s[%d]", field, i), r)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}

	return out, nil
}

// toWire converts a Document into its serialised form.
func toWire(d *Document) *wireDocument {
	w := &wireDocument{Kind: d.Kind.String(), Segments: make([]wireSegment, 0, d.Len())}
	for _, s := range d.Snapshots {
		w.Segments = append(w.Segments, wireSegment{
			N:        s.N,
			T:        s.T,
			Tmax:     s.Tmax,
			TimeUnit: s.TimeUnit,
			Notes:    s.Notes,
			Edges:    rawList(s.Edges),
		})
	}
	for _, s := range d.Events {
		t0 := s.T0
		w.Segments = append(w.Segments, wireSegment{
			N:            s.N,
			T0:           &t0,
			T:            s.T,
			Tmax:         s.Tmax,
			TimeUnit:     s.TimeUnit,
			Notes:        s.Notes,
			EdgesInitial: raw(s.EdgesInitial),
			EdgesIn:      rawList(s.EdgesIn),
			EdgesOut:     rawList(s.EdgesOut),
		})
	}

	return w
}

// raw renders a set as [][]int pairs; never nil, so empty sets serialise as [].
func raw(s *edgeset.Set) [][]int {
	out := make([][]int, 0, s.Len())
	s.Scan(func(e edgeset.Edge) bool {
		out = append(out, []int{e.U, e.V})
		return true
	})

	return out
}

func rawList(ss []*edgeset.Set) [][][]int {
	if len(ss) == 0 {
		return nil
	}
	out := make([][][]int, len(ss))
	for i, s := range ss {
		out[i] = raw(s)
	}

	return out
}
