// SPDX-License-Identifier: MIT
//
// Package metrics counts concatenation activity with Prometheus collectors.
//
// A Collector is registered on a caller-supplied registry (no global state);
// its hooks plug straight into concat options:
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(reg)
//	merged, err := concat.Segments(segs, m.Options()...)
//	m.ObserveConcat(kind, len(segs), err)
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/tempnet/concat"
	"github.com/katalvlaran/tempnet/temporal"
)

const namespace = "tempnet"

// Outcome label values.
const (
	OutcomeOK           = "ok"
	OutcomeEmpty        = "empty_input"
	OutcomeInvalid      = "invalid_segment"
	OutcomeInconsistent = "inconsistent_representation"
	OutcomeOtherError   = "error"
)

const (
	labelKind    = "kind"
	labelOutcome = "outcome"
)

// Collector groups the counters of the concatenation engine.
type Collector struct {
	Concatenations *prometheus.CounterVec
	Segments       *prometheus.CounterVec
	Boundaries     prometheus.Counter
	Coalesced      prometheus.Counter
	BoundaryEdges  *prometheus.CounterVec
}

// New creates a Collector and registers it on reg.
// It panics if registration fails, like prometheus.MustRegister.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		Concatenations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "concatenations_total",
			Help:      "Concatenation calls by representation kind and outcome.",
		}, []string{labelKind, labelOutcome}),
		Segments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "segments_merged_total",
			Help:      "Segments merged by successful concatenations.",
		}, []string{labelKind}),
		Boundaries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boundary_events_total",
			Help:      "Synthetic boundary events emitted at segment joins.",
		}),
		Coalesced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boundary_events_coalesced_total",
			Help:      "Boundary events merged with a segment's simultaneous first event.",
		}),
		BoundaryEdges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boundary_edges_total",
			Help:      "Edges added or removed by boundary events.",
		}, []string{"direction"}),
	}
	reg.MustRegister(c.Concatenations, c.Segments, c.Boundaries, c.Coalesced, c.BoundaryEdges)

	return c
}

// Options returns the concat options that feed this collector.
func (c *Collector) Options() []concat.Option {
	return []concat.Option{concat.WithOnBoundary(c.observeBoundary)}
}

func (c *Collector) observeBoundary(b concat.Boundary) {
	c.Boundaries.Inc()
	if b.Coalesced {
		c.Coalesced.Inc()
	}
	c.BoundaryEdges.WithLabelValues("in").Add(float64(b.Added.Len()))
	c.BoundaryEdges.WithLabelValues("out").Add(float64(b.Removed.Len()))
}

// ObserveConcat records the outcome of one concatenation of n segments.
func (c *Collector) ObserveConcat(kind temporal.Kind, n int, err error) {
	outcome := Outcome(err)
	c.Concatenations.WithLabelValues(kind.String(), outcome).Inc()
	if err == nil {
		c.Segments.WithLabelValues(kind.String()).Add(float64(n))
	}
}

// Outcome classifies err into an outcome label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, concat.ErrEmptyInput):
		return OutcomeEmpty
	case errors.Is(err, concat.ErrInvalidSegment):
		return OutcomeInvalid
	case errors.Is(err, concat.ErrInconsistentRepresentation):
		return OutcomeInconsistent
	}

	return OutcomeOtherError
}

// WriteTextfile gathers g and writes it in the node-exporter text-file format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
