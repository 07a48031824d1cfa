package concat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempnet/concat"
	"github.com/katalvlaran/tempnet/temporal"
)

func TestSegments_Dispatch(t *testing.T) {
	snap, err := concat.Segments([]temporal.Segment{recordingA(), recordingB()})
	require.NoError(t, err)
	require.Equal(t, temporal.KindSnapshots, snap.Kind())
	assert.Equal(t, 6.0, snap.End())

	ev, err := concat.Segments([]temporal.Segment{changesC(), changesD()})
	require.NoError(t, err)
	require.Equal(t, temporal.KindEvents, ev.Kind())
	assert.Equal(t, 4, ev.NodeCount())
	assert.IsType(t, &temporal.EventSeries{}, ev)
}

func TestSegments_MixedKinds(t *testing.T) {
	_, err := concat.Segments([]temporal.Segment{recordingA(), changesC()})
	assert.ErrorIs(t, err, concat.ErrInconsistentRepresentation)
	assert.ErrorContains(t, err, "segment 1")
}

// impostor claims to be a snapshot series without being one.
type impostor struct{ temporal.EventSeries }

func (impostor) Kind() temporal.Kind { return temporal.KindSnapshots }

func TestSegments_KindImpostor(t *testing.T) {
	_, err := concat.Segments([]temporal.Segment{recordingA(), &impostor{EventSeries: *changesC()}})
	assert.ErrorIs(t, err, concat.ErrInconsistentRepresentation)
}

func TestSegments_Errors(t *testing.T) {
	_, err := concat.Segments(nil)
	assert.ErrorIs(t, err, concat.ErrEmptyInput)

	_, err = concat.Segments([]temporal.Segment{recordingA(), nil})
	assert.ErrorIs(t, err, concat.ErrInvalidSegment)

	var typedNil *temporal.EventSeries
	_, err = concat.Segments([]temporal.Segment{changesC(), typedNil})
	assert.ErrorIs(t, err, concat.ErrInvalidSegment)

	bad := recordingB()
	bad.T = []float64{0, 1, 2}
	res, err := concat.Segments([]temporal.Segment{bad})
	assert.ErrorIs(t, err, concat.ErrInvalidSegment)
	assert.Nil(t, res, "a failed call returns a nil interface, not a typed nil")
}

func TestReconcileNodes(t *testing.T) {
	n, err := concat.ReconcileNodes([]temporal.Segment{recordingA(), recordingB(), changesC()})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = concat.ReconcileNodes(nil)
	assert.ErrorIs(t, err, concat.ErrEmptyInput)

	neg := recordingA()
	neg.N = -1
	_, err = concat.ReconcileNodes([]temporal.Segment{neg})
	assert.ErrorIs(t, err, concat.ErrInvalidSegment)

	small := changesD()
	small.N = 3
	_, err = concat.ReconcileNodes([]temporal.Segment{recordingA(), small})
	assert.ErrorIs(t, err, concat.ErrInvalidSegment)
	assert.ErrorContains(t, err, "node 3 with N=3")

	var typedNil *temporal.SnapshotSeries
	_, err = concat.ReconcileNodes([]temporal.Segment{typedNil})
	assert.ErrorIs(t, err, concat.ErrInvalidSegment)
}
