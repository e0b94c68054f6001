package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"KolamStudio/internal/pattern"
)

func TestFreehandStrokeLifecycle(t *testing.T) {
	s := New()

	s.BeginStroke(1, 1, "#FF6B35")
	s.ExtendStroke(2, 2, "#FF6B35")
	s.ExtendStroke(3, 3, "#FF6B35")
	assert.Equal(t, 0, s.Len(), "uncommitted stroke must not count")

	live := s.Drawing()
	require.NotNil(t, live)
	assert.Len(t, live.Points, 3)

	id := s.EndStroke()
	assert.NotEmpty(t, id)
	assert.Equal(t, 3, s.Len())
	assert.Nil(t, s.Drawing())
}

func TestEndStrokeWithoutBegin(t *testing.T) {
	s := New()
	assert.Empty(t, s.EndStroke())
	s.ExtendStroke(1, 1, "#FF6B35") // no-op without an open stroke
	assert.Equal(t, 0, s.Len())
}

func TestMergeAssignsStrokeIDs(t *testing.T) {
	s := New()
	s.Merge(pattern.Generate(pattern.StyleTraditional, 3, 100, 100, "#118AB2"))

	snap := s.Snapshot()
	require.NotEmpty(t, snap.Strokes)
	for _, st := range snap.Strokes {
		assert.NotEmpty(t, st.ID)
	}
	assert.Len(t, snap.Markers, 1)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := New()
	s.Merge(pattern.Quick(pattern.QuickStar, 50, 50, "#FFD23F"))

	snap := s.Snapshot()
	snap.Strokes[0].Points[0].X = 9999

	again := s.Snapshot()
	assert.NotEqual(t, float32(9999), again.Strokes[0].Points[0].X)
}

func TestReplaceDiscardsInFlightStroke(t *testing.T) {
	s := New()
	s.BeginStroke(1, 1, "#FF6B35")

	fresh := pattern.Quick(pattern.QuickSpiral, 0, 0, "#073B4C")
	s.Replace(fresh)

	assert.Nil(t, s.Drawing())
	assert.Equal(t, fresh.Len(), s.Len())
}

func TestClear(t *testing.T) {
	s := New()
	s.Merge(pattern.Quick(pattern.QuickMandala, 0, 0, "#06FFA5"))
	require.NotZero(t, s.Len())

	s.Clear()
	assert.Zero(t, s.Len())
	assert.True(t, s.Snapshot().IsEmpty())
}
