package concat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAligner_RebaseAndAdvance(t *testing.T) {
	var ax aligner
	src := []float64{5, 6, 7.5}

	assert.Equal(t, []float64{0, 1, 2.5}, ax.rebase(src, 5))
	ax.advance(3)
	assert.Equal(t, []float64{3, 4, 5.5}, ax.rebase(src, 5))
	assert.Equal(t, []float64{5, 6, 7.5}, src, "rebase must not touch its input")
	assert.Empty(t, ax.rebase(nil, 0))
}

func TestMergeMetadata(t *testing.T) {
	unit, notes, err := mergeMetadata("test", []string{"", "s", "s"}, []string{"a", "", "b"})
	require.NoError(t, err)
	assert.Equal(t, "s", unit)
	assert.Equal(t, "a\nb", notes)

	_, _, err = mergeMetadata("test", []string{"s", "ms"}, nil)
	assert.ErrorIs(t, err, ErrInconsistentRepresentation)
}
