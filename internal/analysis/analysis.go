// Package analysis derives descriptive statistics and a cosmetic
// classification from a drawn pattern. Everything here is a pure
// function of the point list; nothing is cached between calls.
package analysis

import (
	"errors"
	"time"

	"github.com/chewxy/math32"

	"KolamStudio/internal/pattern"
)

// ErrEmptyPattern is reported when there is nothing to analyze.
var ErrEmptyPattern = errors.New("nothing to analyze")

// Classification is the three-way design label derived from how many
// symmetry tags were found.
type Classification string

const (
	TraditionalKolam Classification = "Traditional Kolam"
	SemiTraditional  Classification = "Semi-Traditional"
	ModernAbstract   Classification = "Modern/Abstract"
)

// Score accompanies the classification.
type Score string

const (
	ScoreExcellent Score = "Excellent"
	ScoreGood      Score = "Good"
	ScoreCreative  Score = "Creative"
)

// Center is the pattern centroid.
type Center struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Result is an immutable snapshot of one analysis run.
type Result struct {
	NumPoints      int            `json:"numPoints"`
	Center         Center         `json:"center"`
	Complexity     int            `json:"complexity"`
	Symmetries     []Symmetry     `json:"symmetries"`
	AvgRadius      float32        `json:"avgRadius"`
	MaxRadius      float32        `json:"maxRadius"`
	Classification Classification `json:"classification"`
	Score          Score          `json:"score"`
	ColorsUsed     []string       `json:"colorsUsed"`

	// Design-principle percentages shown in the analysis panel.
	Harmony int `json:"harmony"`
	Density int `json:"density"`
	Balance int `json:"balance"`

	Timestamp time.Time `json:"timestamp"`
}

// HasSymmetry reports whether the given tag was detected.
func (r *Result) HasSymmetry(s Symmetry) bool {
	for _, tag := range r.Symmetries {
		if tag == s {
			return true
		}
	}
	return false
}

// Analyzer computes Results. The zero value is not usable; construct
// with New, then swap Detector to change how symmetry tags are derived.
type Analyzer struct {
	Detector SymmetryDetector
}

// New returns an Analyzer using the count-threshold detector.
func New() *Analyzer {
	return &Analyzer{Detector: CountDetector{}}
}

// Analyze derives a fresh Result from the pattern. It fails with
// ErrEmptyPattern on a pattern of zero points and never returns a
// partial result.
func (a *Analyzer) Analyze(p pattern.Pattern) (*Result, error) {
	points := p.Points()
	if len(points) == 0 {
		return nil, ErrEmptyPattern
	}

	var sumX, sumY float32
	for _, pt := range points {
		sumX += pt.X
		sumY += pt.Y
	}
	center := Center{X: sumX / float32(len(points)), Y: sumY / float32(len(points))}

	var sumR, maxR float32
	for _, pt := range points {
		r := math32.Hypot(pt.X-center.X, pt.Y-center.Y)
		sumR += r
		if r > maxR {
			maxR = r
		}
	}

	complexity := len(points) / 20
	if complexity > 10 {
		complexity = 10
	}

	symmetries := a.Detector.Detect(points, center)
	classification, score := classify(len(symmetries))

	res := &Result{
		NumPoints:      len(points),
		Center:         center,
		Complexity:     complexity,
		Symmetries:     symmetries,
		AvgRadius:      sumR / float32(len(points)),
		MaxRadius:      maxR,
		Classification: classification,
		Score:          score,
		ColorsUsed:     distinctColors(points),
		Harmony:        clampPct(len(symmetries) * 20),
		Density:        clampPct(len(points) * 2),
		Balance:        clampPct(complexity * 10),
		Timestamp:      time.Now(),
	}
	return res, nil
}

func classify(tags int) (Classification, Score) {
	switch {
	case tags >= 2:
		return TraditionalKolam, ScoreExcellent
	case tags == 1:
		return SemiTraditional, ScoreGood
	default:
		return ModernAbstract, ScoreCreative
	}
}

// distinctColors keeps first-appearance order so reports are stable.
func distinctColors(points []pattern.Point) []string {
	seen := make(map[string]bool, 4)
	var colors []string
	for _, pt := range points {
		if !seen[pt.Color] {
			seen[pt.Color] = true
			colors = append(colors, pt.Color)
		}
	}
	return colors
}

func clampPct(v int) int {
	if v > 100 {
		return 100
	}
	return v
}
