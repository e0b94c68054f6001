package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsFlattensInInsertionOrder(t *testing.T) {
	p := Pattern{
		Strokes: []Stroke{
			{Points: []Point{{X: 1, Color: "a"}, {X: 2, Color: "a"}}},
			{Points: []Point{{X: 3, Color: "b"}}},
		},
		Markers: []Point{{X: 4, Color: "c"}},
	}

	pts := p.Points()
	require.Len(t, pts, 4)
	assert.Equal(t, float32(1), pts[0].X)
	assert.Equal(t, float32(2), pts[1].X)
	assert.Equal(t, float32(3), pts[2].X)
	assert.Equal(t, float32(4), pts[3].X)
	assert.Equal(t, 4, p.Len())
}

func TestEmptyPattern(t *testing.T) {
	var p Pattern
	assert.True(t, p.IsEmpty())
	assert.Empty(t, p.Points())
	assert.Equal(t, Bounds{}, p.Bounds())
}

func TestBounds(t *testing.T) {
	p := Pattern{
		Strokes: []Stroke{{Points: []Point{{X: -5, Y: 2}, {X: 10, Y: -3}}}},
		Markers: []Point{{X: 1, Y: 20}},
	}
	b := p.Bounds()
	assert.Equal(t, float32(-5), b.MinX)
	assert.Equal(t, float32(10), b.MaxX)
	assert.Equal(t, float32(-3), b.MinY)
	assert.Equal(t, float32(20), b.MaxY)
	assert.Equal(t, float32(15), b.Width())
	assert.Equal(t, float32(23), b.Height())
}

func TestAppend(t *testing.T) {
	a := Generate(StyleTraditional, 2, 0, 0, "#111111")
	b := Generate(StyleModern, 3, 50, 50, "#222222")

	var p Pattern
	p.Append(a)
	p.Append(b)
	assert.Equal(t, a.Len()+b.Len(), p.Len())
	assert.Len(t, p.Strokes, len(a.Strokes)+len(b.Strokes))
}
