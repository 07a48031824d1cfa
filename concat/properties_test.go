package concat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempnet/builder"
	"github.com/katalvlaran/tempnet/concat"
	"github.com/katalvlaran/tempnet/edgeset"
	"github.com/katalvlaran/tempnet/temporal"
)

// Property-test fixture sizes. Integral starts and steps keep every rebased
// time exactly representable, so equality checks below are exact.
const (
	propRounds = 20
	propSteps  = 4
	propP      = 0.3
)

// randomEventRuns draws three event segments with different N and origins.
func randomEventRuns(t *testing.T, seed int64) []*temporal.EventSeries {
	t.Helper()
	var runs []*temporal.EventSeries
	for k, n := range []int{4, 6, 5} {
		s, err := builder.RandomEvents(n, propSteps+k, propP,
			builder.WithSeed(seed*10+int64(k)), builder.WithStart(float64(7*k-3)))
		require.NoError(t, err)
		runs = append(runs, s)
	}

	return runs
}

// randomSnapshotRuns draws three snapshot segments with different N and origins.
func randomSnapshotRuns(t *testing.T, seed int64) []*temporal.SnapshotSeries {
	t.Helper()
	var runs []*temporal.SnapshotSeries
	for k, n := range []int{3, 5, 4} {
		s, err := builder.RandomSnapshots(n, propSteps+k, propP,
			builder.WithSeed(seed*10+int64(k)), builder.WithStart(float64(11*k)), builder.WithStep(2))
		require.NoError(t, err)
		runs = append(runs, s)
	}

	return runs
}

// assertEventsEqual compares two event series member by member.
func assertEventsEqual(t *testing.T, want, got *temporal.EventSeries) {
	t.Helper()
	assert.Equal(t, want.N, got.N)
	assert.Equal(t, want.T0, got.T0)
	assert.Equal(t, want.Tmax, got.Tmax)
	assert.Equal(t, want.T, got.T)
	assert.True(t, edgeset.Equal(want.EdgesInitial, got.EdgesInitial), "edges_initial")
	require.Len(t, got.EdgesIn, len(want.EdgesIn))
	for i := range want.EdgesIn {
		assert.True(t, edgeset.Equal(want.EdgesIn[i], got.EdgesIn[i]), "edges_in[%d]", i)
		assert.True(t, edgeset.Equal(want.EdgesOut[i], got.EdgesOut[i]), "edges_out[%d]", i)
	}
}

// TestProperties_Events checks monotonic time, node domain, duration
// additivity and state continuity on random event runs.
func TestProperties_Events(t *testing.T) {
	for r := int64(1); r <= propRounds; r++ {
		runs := randomEventRuns(t, r)

		var offsets []float64
		got, err := concat.Events(runs, concat.WithOnSegment(func(_ int, off float64) { offsets = append(offsets, off) }))
		require.NoError(t, err)
		require.NoError(t, got.Validate(), "merged series must satisfy every invariant")

		// monotonic time
		prev := got.T0
		for _, at := range got.T {
			require.Greater(t, at, prev)
			prev = at
		}
		require.Greater(t, got.Tmax, prev)

		// node domain
		assert.Equal(t, 6, got.N)
		assert.Less(t, got.MaxNode(), got.N)

		// duration additivity
		sum := 0.0
		for _, s := range runs {
			sum += s.Duration()
		}
		assert.Equal(t, sum, got.Tmax)

		// continuity: at every original instant the merged state equals the declared one
		for k, s := range runs {
			s.Replay(func(_ int, local float64, want *edgeset.Set) bool {
				have, ok := got.StateAt(local - s.T0 + offsets[k])
				require.True(t, ok)
				assert.True(t, edgeset.Equal(want, have), "round %d segment %d at local t=%g", r, k, local)
				return true
			})
		}
	}
}

func TestProperties_Snapshots(t *testing.T) {
	for r := int64(1); r <= propRounds; r++ {
		runs := randomSnapshotRuns(t, r)

		var offsets []float64
		got, err := concat.Snapshots(runs, concat.WithOnSegment(func(_ int, off float64) { offsets = append(offsets, off) }))
		require.NoError(t, err)
		require.NoError(t, got.Validate())

		assert.Equal(t, 5, got.N)
		assert.Len(t, got.T, len(got.Edges))
		assert.Equal(t, 0.0, got.T[0])

		sum := 0.0
		for _, s := range runs {
			sum += s.Duration()
		}
		assert.Equal(t, sum, got.Tmax)

		for k, s := range runs {
			for j, local := range s.T {
				have, ok := got.StateAt(local - s.Start() + offsets[k])
				require.True(t, ok)
				assert.True(t, edgeset.Equal(s.Edges[j], have), "round %d segment %d sample %d", r, k, j)
			}
		}
	}
}

// TestProperties_Identity: a single segment comes back unchanged except for
// rebasing to start at 0.
func TestProperties_Identity(t *testing.T) {
	ev := randomEventRuns(t, 3)[2]
	got, err := concat.Events([]*temporal.EventSeries{ev})
	require.NoError(t, err)

	want := &temporal.EventSeries{
		N:            ev.N,
		EdgesInitial: ev.EdgesInitial,
		T0:           0,
		Tmax:         ev.Tmax - ev.T0,
		EdgesIn:      ev.EdgesIn,
		EdgesOut:     ev.EdgesOut,
	}
	for _, at := range ev.T {
		want.T = append(want.T, at-ev.T0)
	}
	assertEventsEqual(t, want, got)

	snap := randomSnapshotRuns(t, 3)[1]
	gotSnap, err := concat.Snapshots([]*temporal.SnapshotSeries{snap})
	require.NoError(t, err)
	assert.Equal(t, snap.N, gotSnap.N)
	assert.Equal(t, snap.Tmax-snap.T[0], gotSnap.Tmax)
	for j := range snap.T {
		assert.Equal(t, snap.T[j]-snap.T[0], gotSnap.T[j])
		assert.True(t, edgeset.Equal(snap.Edges[j], gotSnap.Edges[j]))
	}
}

// TestProperties_Associativity: ((A B) C) == (A (B C)) == (A B C).
func TestProperties_Associativity(t *testing.T) {
	for r := int64(1); r <= propRounds; r++ {
		runs := randomEventRuns(t, r)
		a, b, c := runs[0], runs[1], runs[2]

		flat, err := concat.Events([]*temporal.EventSeries{a, b, c})
		require.NoError(t, err)

		ab, err := concat.Events([]*temporal.EventSeries{a, b})
		require.NoError(t, err)
		left, err := concat.Events([]*temporal.EventSeries{ab, c})
		require.NoError(t, err)

		bc, err := concat.Events([]*temporal.EventSeries{b, c})
		require.NoError(t, err)
		right, err := concat.Events([]*temporal.EventSeries{a, bc})
		require.NoError(t, err)

		assertEventsEqual(t, flat, left)
		assertEventsEqual(t, flat, right)
	}

	sr := randomSnapshotRuns(t, 5)
	flat, err := concat.Snapshots(sr)
	require.NoError(t, err)
	bc, err := concat.Snapshots(sr[1:])
	require.NoError(t, err)
	right, err := concat.Snapshots([]*temporal.SnapshotSeries{sr[0], bc})
	require.NoError(t, err)
	ab, err := concat.Snapshots(sr[:len(sr)-1])
	require.NoError(t, err)
	left, err := concat.Snapshots([]*temporal.SnapshotSeries{ab, sr[len(sr)-1]})
	require.NoError(t, err)

	for name, nested := range map[string]*temporal.SnapshotSeries{"left": left, "right": right} {
		assert.Equal(t, flat.T, nested.T, name)
		assert.Equal(t, flat.Tmax, nested.Tmax, name)
		assert.Equal(t, pairsOf(flat.Edges), pairsOf(nested.Edges), name)
	}
}
