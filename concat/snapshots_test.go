package concat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempnet/concat"
	"github.com/katalvlaran/tempnet/temporal"
)

// TestSnapshots_TwoRecordings checks the reference two-run scenario.
func TestSnapshots_TwoRecordings(t *testing.T) {
	got, err := concat.Snapshots([]*temporal.SnapshotSeries{recordingA(), recordingB()})
	require.NoError(t, err)

	assert.Equal(t, 4, got.N)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, got.T)
	assert.Equal(t, 6.0, got.Tmax)
	assert.Equal(t, [][][2]int{
		{{0, 1}},
		{{0, 2}, {1, 2}},
		{{0, 1}},
		{{1, 3}},
		{{0, 2}, {2, 3}},
	}, pairsOf(got.Edges))
	require.NoError(t, got.Validate())
}

// TestSnapshots_Rebasing verifies that segment origins are discarded and
// segments are placed back-to-back.
func TestSnapshots_Rebasing(t *testing.T) {
	a := recordingA()
	a.T = []float64{100, 101, 102}
	a.Tmax = 103.5
	b := recordingB()
	b.T = []float64{-7, -6}
	b.Tmax = -4

	var offsets []float64
	got, err := concat.Snapshots([]*temporal.SnapshotSeries{a, b},
		concat.WithOnSegment(func(_ int, offset float64) { offsets = append(offsets, offset) }))
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 2, 3.5, 4.5}, got.T)
	assert.Equal(t, 6.5, got.Tmax)
	assert.Equal(t, []float64{0, 3.5}, offsets)
}

// TestSnapshots_LengthMismatch reproduces a recording whose sampling times
// outnumber its snapshots: it must fail, never be truncated or padded.
func TestSnapshots_LengthMismatch(t *testing.T) {
	bad := recordingB()
	bad.T = []float64{0, 1, 2}

	got, err := concat.Snapshots([]*temporal.SnapshotSeries{recordingA(), bad, recordingA()})
	assert.ErrorIs(t, err, concat.ErrInvalidSegment)
	assert.ErrorContains(t, err, "segment 1")
	assert.Nil(t, got)
}

func TestSnapshots_Errors(t *testing.T) {
	_, err := concat.Snapshots(nil)
	assert.ErrorIs(t, err, concat.ErrEmptyInput)

	_, err = concat.Snapshots([]*temporal.SnapshotSeries{recordingA(), nil})
	assert.ErrorIs(t, err, concat.ErrInvalidSegment)

	outOfRange := recordingA()
	outOfRange.N = 2
	_, err = concat.Snapshots([]*temporal.SnapshotSeries{outOfRange})
	assert.ErrorIs(t, err, concat.ErrInvalidSegment)

	units := recordingB()
	units.TimeUnit = "ms"
	a := recordingA()
	a.TimeUnit = "s"
	_, err = concat.Snapshots([]*temporal.SnapshotSeries{a, units})
	assert.ErrorIs(t, err, concat.ErrInconsistentRepresentation)
}

// TestSnapshots_ResolutionLoss places a tiny segment after a huge one so
// that float64 rounding merges two sampling times.
func TestSnapshots_ResolutionLoss(t *testing.T) {
	huge := &temporal.SnapshotSeries{N: 1, T: []float64{0}, Tmax: 1e17, Edges: sets(nil)}
	tiny := &temporal.SnapshotSeries{N: 1, T: []float64{0, 1}, Tmax: 2, Edges: sets(nil, nil)}

	_, err := concat.Snapshots([]*temporal.SnapshotSeries{huge, tiny})
	assert.ErrorIs(t, err, concat.ErrInvalidSegment)
	assert.ErrorContains(t, err, "collapses")
}

// TestSnapshots_InputsUntouched ensures the result shares no edge sets with its inputs.
func TestSnapshots_InputsUntouched(t *testing.T) {
	a := recordingA()
	got, err := concat.Snapshots([]*temporal.SnapshotSeries{a})
	require.NoError(t, err)

	got.Edges[0].Add(pairs([2]int{1, 2}).Edges()[0])
	got.T[0] = 42

	assert.Equal(t, 1, a.Edges[0].Len())
	assert.Equal(t, 0.0, a.T[0])
}

func TestSnapshots_Metadata(t *testing.T) {
	a, b := recordingA(), recordingB()
	a.TimeUnit, a.Notes = "s", "run 1"
	b.Notes = "run 2"

	got, err := concat.Snapshots([]*temporal.SnapshotSeries{a, b})
	require.NoError(t, err)
	assert.Equal(t, "s", got.TimeUnit, "an unspecified unit adopts the common one")
	assert.Equal(t, "run 1\nrun 2", got.Notes)
}
