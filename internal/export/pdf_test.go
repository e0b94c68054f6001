package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"KolamStudio/internal/pattern"
)

func TestPDFWritesDocument(t *testing.T) {
	p := pattern.Generate(pattern.StyleGeometric, 3, 200, 200, "#FF6B35")
	p.Append(pattern.Quick(pattern.QuickDotsGrid, 200, 200, "#118AB2"))

	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, p))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}

func TestPDFEmptyPattern(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PDF(&buf, pattern.Pattern{}))
	assert.Zero(t, buf.Len())
}

func TestHexRGB(t *testing.T) {
	r, g, b := hexRGB("#FF6B35")
	assert.Equal(t, [3]int{0xFF, 0x6B, 0x35}, [3]int{r, g, b})

	r, g, b = hexRGB("red")
	assert.Equal(t, [3]int{0, 0, 0}, [3]int{r, g, b})
}

func TestFitScaleFitsPage(t *testing.T) {
	// A very wide pattern must be shrunk to the content box.
	b := pattern.Bounds{MinX: 0, MinY: 0, MaxX: 3600, MaxY: 100}
	scale := fitScale(b)
	assert.InDelta(t, 0.05, scale, 1e-9)

	// A single dot gets scale 1, not a division by zero.
	assert.Equal(t, 1.0, fitScale(pattern.Bounds{}))
}
