package pattern

import "github.com/chewxy/math32"

// Style selects one of the procedural generators.
type Style string

const (
	StyleTraditional Style = "traditional"
	StyleModern      Style = "modern"
	StyleGeometric   Style = "geometric"
	StyleFloral      Style = "floral"
)

// Per-style layer caps so a big complexity value can't blow up the
// geometry. Modern is deliberately uncapped.
const (
	maxTraditionalLayers = 8
	maxGeometricShapes   = 6
	maxFloralLayers      = 5
)

// Styles lists the generator styles in display order.
func Styles() []Style {
	return []Style{StyleTraditional, StyleModern, StyleGeometric, StyleFloral}
}

// Generate produces the ordered stroke/point sequence for one decorative
// motif of the given style, centered at cx,cy in the given color. It is
// deterministic and never fails: out-of-range complexity is clamped, and
// complexity <= 0 yields an empty pattern.
func Generate(style Style, complexity int, cx, cy float32, color string) Pattern {
	if complexity <= 0 {
		return Pattern{}
	}
	switch style {
	case StyleModern:
		return generateModern(complexity, cx, cy, color)
	case StyleGeometric:
		return generateGeometric(complexity, cx, cy, color)
	case StyleFloral:
		return generateFloral(complexity, cx, cy, color)
	default:
		return generateTraditional(complexity, cx, cy, color)
	}
}

// generateTraditional emits concentric closed polygons, one stroke per
// layer: layer L has 4+2L vertices at radius 15L, with the closing point
// repeating the first angle. A single marker records the center.
func generateTraditional(complexity int, cx, cy float32, color string) Pattern {
	layers := complexity
	if layers > maxTraditionalLayers {
		layers = maxTraditionalLayers
	}

	var p Pattern
	for layer := 1; layer <= layers; layer++ {
		sides := 4 + 2*layer
		radius := 15 * float32(layer)
		stroke := Stroke{Points: make([]Point, 0, sides+1)}
		for i := 0; i <= sides; i++ {
			angle := 2 * math32.Pi * float32(i) / float32(sides)
			stroke.Points = append(stroke.Points, Point{
				X:     cx + radius*math32.Cos(angle),
				Y:     cy + radius*math32.Sin(angle),
				Color: color,
			})
		}
		p.Strokes = append(p.Strokes, stroke)
	}
	p.Markers = append(p.Markers, Point{X: cx, Y: cy, Color: color})
	return p
}

// generateModern emits one open stroke tracing a decaying spiral whose
// angular speed scales with complexity: 10*c segments, 10*c+1 points.
func generateModern(complexity int, cx, cy float32, color string) Pattern {
	iterations := 10 * complexity
	stroke := Stroke{Points: make([]Point, 0, iterations+1)}
	for i := 0; i <= iterations; i++ {
		t := float32(i) / float32(iterations)
		angle := t * float32(complexity) * math32.Pi
		radius := 50 + 100*t
		decay := 1 - 0.5*t
		stroke.Points = append(stroke.Points, Point{
			X:     cx + radius*math32.Cos(angle)*decay,
			Y:     cy + radius*math32.Sin(angle)*decay,
			Color: color,
		})
	}
	return Pattern{Strokes: []Stroke{stroke}}
}

// circleSegments is the tessellation used for drawn circles.
const circleSegments = 24

// generateGeometric draws, for each size step, an axis-aligned square and
// a circle (two strokes), and drops 8 marker points around the circle at
// 45 degree steps for analysis only.
func generateGeometric(complexity int, cx, cy float32, color string) Pattern {
	shapes := complexity
	if shapes > maxGeometricShapes {
		shapes = maxGeometricShapes
	}

	var p Pattern
	for i := 1; i <= shapes; i++ {
		size := 20 * float32(i)

		square := Stroke{Points: []Point{
			{X: cx - size, Y: cy - size, Color: color},
			{X: cx + size, Y: cy - size, Color: color},
			{X: cx + size, Y: cy + size, Color: color},
			{X: cx - size, Y: cy + size, Color: color},
			{X: cx - size, Y: cy - size, Color: color},
		}}
		p.Strokes = append(p.Strokes, square)

		circle := Stroke{Points: make([]Point, 0, circleSegments+1)}
		for j := 0; j <= circleSegments; j++ {
			angle := 2 * math32.Pi * float32(j) / circleSegments
			circle.Points = append(circle.Points, Point{
				X:     cx + size*math32.Cos(angle),
				Y:     cy + size*math32.Sin(angle),
				Color: color,
			})
		}
		p.Strokes = append(p.Strokes, circle)

		for j := 0; j < 8; j++ {
			angle := 2 * math32.Pi * float32(j) / 8
			p.Markers = append(p.Markers, Point{
				X:     cx + size*math32.Cos(angle),
				Y:     cy + size*math32.Sin(angle),
				Color: color,
			})
		}
	}
	return p
}

// generateFloral emits one closed petal outline per layer. The radius is
// sinusoidally modulated so the outline scallops into 4+c petals. All
// samples are kept in the returned stroke.
func generateFloral(complexity int, cx, cy float32, color string) Pattern {
	layers := complexity
	if layers > maxFloralLayers {
		layers = maxFloralLayers
	}
	petals := 4 + complexity
	samples := 3*petals + 1

	var p Pattern
	for layer := 1; layer <= layers; layer++ {
		base := float32(layer) * 25
		stroke := Stroke{Points: make([]Point, 0, samples)}
		for i := 0; i < samples; i++ {
			angle := 2 * math32.Pi * float32(i) / float32(samples-1)
			radius := base * (1 + 0.3*math32.Sin(float32(petals)*angle))
			stroke.Points = append(stroke.Points, Point{
				X:     cx + radius*math32.Cos(angle),
				Y:     cy + radius*math32.Sin(angle),
				Color: color,
			})
		}
		p.Strokes = append(p.Strokes, stroke)
	}
	return p
}
