package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweepmind/internal/types"
)

func TestObserve_RecordsMoveAndSafety(t *testing.T) {
	b := NewBase(3, 3, nil)

	require.NoError(t, b.Observe(cell(1, 1), 1))

	assert.True(t, b.Moves().Has(cell(1, 1)))
	assert.True(t, b.Safes().Has(cell(1, 1)))
	assert.Equal(t, 1, b.SentenceCount())
}

func TestObserve_RejectsDuplicates(t *testing.T) {
	b := NewBase(3, 3, nil)

	require.NoError(t, b.Observe(cell(0, 0), 0))
	err := b.Observe(cell(0, 0), 0)
	require.ErrorIs(t, err, ErrDuplicateObservation)
}

func TestObserve_RejectsOutOfBounds(t *testing.T) {
	b := NewBase(3, 3, nil)

	require.ErrorIs(t, b.Observe(cell(3, 0), 0), ErrOutOfBounds)
	require.ErrorIs(t, b.Observe(cell(0, -1), 0), ErrOutOfBounds)
}

func TestObserve_ZeroCountMarksNeighborsSafe(t *testing.T) {
	b := NewBase(3, 3, nil)

	require.NoError(t, b.Observe(cell(2, 2), 0))

	safes := b.Safes()
	for _, c := range []types.Cell{cell(1, 1), cell(1, 2), cell(2, 1), cell(2, 2)} {
		assert.True(t, safes.Has(c), "%s should be proven safe", c)
	}
	assert.Equal(t, 0, b.SentenceCount(), "a fully-resolved sentence must be purged")
}

func TestObserve_FullCountMarksNeighborsMines(t *testing.T) {
	b := NewBase(2, 2, nil)

	require.NoError(t, b.Observe(cell(0, 0), 3))

	mines := b.Mines()
	for _, c := range []types.Cell{cell(0, 1), cell(1, 0), cell(1, 1)} {
		assert.True(t, mines.Has(c), "%s should be proven a mine", c)
	}
	assert.Equal(t, 0, b.SentenceCount())
}

func TestObserve_KnownMinesReduceTheCount(t *testing.T) {
	// 1x4 strip with a mine at (0, 1).
	b := NewBase(1, 4, nil)

	// (0, 0)'s only neighbor is the mine.
	require.NoError(t, b.Observe(cell(0, 0), 1))
	require.True(t, b.Mines().Has(cell(0, 1)))

	// (0, 2) sees the known mine plus (0, 3). The mine is already accounted
	// for, so the new sentence is {(0, 3)} = 0 and (0, 3) comes out safe.
	require.NoError(t, b.Observe(cell(0, 2), 1))

	assert.True(t, b.Safes().Has(cell(0, 3)))
	assert.Equal(t, 0, b.SentenceCount())
}

func TestSubsetInference(t *testing.T) {
	// A = {a, b, c} = 1 and B = {a, b, c, d} = 2 must yield {d} = 1, i.e. d
	// is a mine.
	b := NewBase(4, 4, nil)
	a, b2, c, d := cell(0, 0), cell(0, 1), cell(0, 2), cell(0, 3)

	sA, err := NewSentence(types.NewCellSet(a, b2, c), 1)
	require.NoError(t, err)
	sB, err := NewSentence(types.NewCellSet(a, b2, c, d), 2)
	require.NoError(t, err)
	b.sentences = append(b.sentences, sA, sB)

	require.NoError(t, b.saturate())

	assert.True(t, b.Mines().Has(d), "subset inference must prove d a mine")
	for _, s := range b.sentences {
		assert.False(t, s.Cells().Has(d), "no live sentence may still contain a known mine")
	}
}

func TestSaturate_DedupesSentences(t *testing.T) {
	b := NewBase(4, 4, nil)
	dup1, err := NewSentence(types.NewCellSet(cell(0, 0), cell(0, 1)), 1)
	require.NoError(t, err)
	dup2, err := NewSentence(types.NewCellSet(cell(0, 1), cell(0, 0)), 1)
	require.NoError(t, err)
	b.sentences = append(b.sentences, dup1, dup2)

	require.NoError(t, b.saturate())

	assert.Equal(t, 1, b.SentenceCount(), "value-equal sentences must collapse to one")
}

func TestSaturate_EqualCellsDifferentCountsIsInconsistent(t *testing.T) {
	b := NewBase(4, 4, nil)
	s1, err := NewSentence(types.NewCellSet(cell(0, 0), cell(0, 1)), 1)
	require.NoError(t, err)
	s2, err := NewSentence(types.NewCellSet(cell(0, 0), cell(0, 1)), 2)
	require.NoError(t, err)
	b.sentences = append(b.sentences, s1, s2)

	require.ErrorIs(t, b.saturate(), ErrInconsistent)
}

func TestObserve_LyingEnvironmentSurfacesInconsistency(t *testing.T) {
	b := NewBase(1, 1, nil)

	// A 1x1 grid has no neighbors, so any non-zero count is a lie.
	err := b.Observe(cell(0, 0), 1)
	require.ErrorIs(t, err, ErrInconsistent)
}

func TestObserve_CountExceedingNeighborsIsInconsistent(t *testing.T) {
	b := NewBase(2, 2, nil)

	err := b.Observe(cell(0, 0), 4)
	require.ErrorIs(t, err, ErrInconsistent)
}

func TestSafeAndMineSetsStayDisjoint(t *testing.T) {
	// 3x3 board, single mine at (0, 0); feed the true counts and check the
	// invariant after every observation.
	b := NewBase(3, 3, nil)
	observations := []struct {
		c     types.Cell
		count int
	}{
		{cell(2, 2), 0},
		{cell(1, 1), 1},
		{cell(1, 2), 0},
		{cell(2, 1), 0},
		{cell(0, 1), 1},
		{cell(0, 2), 0},
		{cell(1, 0), 1},
		{cell(2, 0), 0},
	}
	for _, obs := range observations {
		if b.Moves().Has(obs.c) {
			continue
		}
		require.NoError(t, b.Observe(obs.c, obs.count))
		for m := range b.Mines() {
			assert.False(t, b.Safes().Has(m), "%s is both safe and mine", m)
		}
	}
}

func TestEndToEnd_SingleMineIsDeduced(t *testing.T) {
	// The scenario from the design discussion: 3x3 grid, mine at (0, 0).
	// Observing (2, 2) = 0 clears the center block; (1, 1) = 1 constrains
	// the remaining frontier; two more zero cells pin the mine exactly.
	b := NewBase(3, 3, nil)

	require.NoError(t, b.Observe(cell(2, 2), 0))
	require.NoError(t, b.Observe(cell(1, 1), 1))
	require.NoError(t, b.Observe(cell(1, 2), 0))
	require.NoError(t, b.Observe(cell(2, 1), 0))

	mines := b.Mines()
	require.True(t, mines.Has(cell(0, 0)), "the mine must be deduced, got mines=%v", mines.Sorted())
	assert.Equal(t, 1, len(mines))

	// Everything else is proven safe.
	safes := b.Safes()
	assert.Equal(t, 8, len(safes))
	assert.False(t, safes.Has(cell(0, 0)))

	// No live sentence still mentions the known mine.
	for _, s := range b.Sentences() {
		assert.False(t, s.Cells().Has(cell(0, 0)))
	}
}

func TestEndToEnd_SingletonSentence(t *testing.T) {
	b := NewBase(2, 1, nil)

	// (0, 0)'s only neighbor is (1, 0); a count of 1 pins it immediately.
	require.NoError(t, b.Observe(cell(0, 0), 1))

	assert.True(t, b.Mines().Has(cell(1, 0)))
	assert.Equal(t, 0, b.SentenceCount())
}

func TestObserve_ReachesFixedPoint(t *testing.T) {
	// After Observe returns, another saturation pass must change nothing.
	b := NewBase(3, 3, nil)
	require.NoError(t, b.Observe(cell(2, 2), 0))
	require.NoError(t, b.Observe(cell(1, 1), 1))

	sentencesBefore := b.SentenceCount()
	safesBefore := len(b.Safes())
	minesBefore := len(b.Mines())

	require.NoError(t, b.saturate())

	assert.Equal(t, sentencesBefore, b.SentenceCount())
	assert.Equal(t, safesBefore, len(b.Safes()))
	assert.Equal(t, minesBefore, len(b.Mines()))
}

func TestSentencesSnapshotIsIndependent(t *testing.T) {
	b := NewBase(3, 3, nil)
	require.NoError(t, b.Observe(cell(1, 1), 1))

	snap := b.Sentences()
	require.Len(t, snap, 1)
	snap[0].MarkSafe(cell(0, 0))

	assert.Equal(t, 8, b.sentences[0].Len(), "mutating a snapshot must not touch the base")
}
