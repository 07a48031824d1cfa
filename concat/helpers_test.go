package concat_test

import (
	"github.com/katalvlaran/tempnet/edgeset"
	"github.com/katalvlaran/tempnet/temporal"
)

// pairs builds an edge set from literal pairs.
func pairs(ps ...[2]int) *edgeset.Set { return edgeset.MustFromPairs(ps) }

// sets builds a slice of edge sets, one literal group per entry.
func sets(groups ...[][2]int) []*edgeset.Set {
	out := make([]*edgeset.Set, len(groups))
	for i, g := range groups {
		out[i] = edgeset.MustFromPairs(g)
	}

	return out
}

// recordingA is the three-sample snapshot recording of the first experiment run.
func recordingA() *temporal.SnapshotSeries {
	return &temporal.SnapshotSeries{
		N:    3,
		T:    []float64{0, 1, 2},
		Tmax: 3,
		Edges: sets(
			[][2]int{{0, 1}},
			[][2]int{{1, 2}, {0, 2}},
			[][2]int{{0, 1}},
		),
	}
}

// recordingB is the second run; it introduces node 3.
func recordingB() *temporal.SnapshotSeries {
	return &temporal.SnapshotSeries{
		N:    4,
		T:    []float64{0, 1},
		Tmax: 3,
		Edges: sets(
			[][2]int{{3, 1}},
			[][2]int{{3, 2}, {0, 2}},
		),
	}
}

// changesC is an event recording with one event at t=2.
func changesC() *temporal.EventSeries {
	return &temporal.EventSeries{
		N:            3,
		EdgesInitial: pairs([2]int{0, 1}),
		T0:           1,
		Tmax:         3,
		T:            []float64{2},
		EdgesIn:      sets([][2]int{{1, 2}, {0, 2}}),
		EdgesOut:     sets([][2]int{{0, 1}}),
	}
}

// changesD is a second event recording over four nodes.
func changesD() *temporal.EventSeries {
	return &temporal.EventSeries{
		N:            4,
		EdgesInitial: pairs([2]int{3, 1}),
		T0:           1,
		Tmax:         3,
		T:            []float64{2},
		EdgesIn:      sets([][2]int{{3, 2}, {0, 2}}),
		EdgesOut:     sets([][2]int{{3, 1}}),
	}
}

// pairsOf renders a slice of sets as raw pairs for compact assertions.
func pairsOf(ss []*edgeset.Set) [][][2]int {
	out := make([][][2]int, len(ss))
	for i, s := range ss {
		out[i] = s.Pairs()
	}

	return out
}
