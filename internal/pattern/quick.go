package pattern

import "github.com/chewxy/math32"

// QuickKind names one of the canned single-configuration motifs. Unlike
// the Style generators these take no complexity knob.
type QuickKind string

const (
	QuickDotsGrid QuickKind = "dots"
	QuickFlower   QuickKind = "flower"
	QuickStar     QuickKind = "star"
	QuickSpiral   QuickKind = "spiral"
	QuickMandala  QuickKind = "mandala"
	QuickCross    QuickKind = "cross"
)

// QuickKinds lists the canned motifs in display order.
func QuickKinds() []QuickKind {
	return []QuickKind{QuickDotsGrid, QuickFlower, QuickStar, QuickSpiral, QuickMandala, QuickCross}
}

// Quick returns the fixed-recipe motif for kind, centered at cx,cy. A
// one-point stroke renders as a dot.
func Quick(kind QuickKind, cx, cy float32, color string) Pattern {
	switch kind {
	case QuickFlower:
		return quickFlower(cx, cy, color)
	case QuickStar:
		return quickStar(cx, cy, color)
	case QuickSpiral:
		return quickSpiral(cx, cy, color)
	case QuickMandala:
		return quickMandala(cx, cy, color)
	case QuickCross:
		return quickCross(cx, cy, color)
	default:
		return quickDotsGrid(cx, cy, color)
	}
}

// quickDotsGrid lays a 5x5 dot grid, the classic kolam foundation. Each
// dot is its own one-point stroke.
func quickDotsGrid(cx, cy float32, color string) Pattern {
	const rows, cols = 5, 5
	const spacing float32 = 30
	ox := cx - spacing*float32(cols-1)/2
	oy := cy - spacing*float32(rows-1)/2

	var p Pattern
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			p.Strokes = append(p.Strokes, Stroke{Points: []Point{{
				X:     ox + float32(j)*spacing,
				Y:     oy + float32(i)*spacing,
				Color: color,
			}}})
		}
	}
	return p
}

// quickFlower traces six petals, each a lobe swept out and back along its
// own ray using r = R*sin(t) for t in [0, pi].
func quickFlower(cx, cy float32, color string) Pattern {
	const petals = 6
	const radius float32 = 45
	const samples = 10

	var p Pattern
	for i := 0; i < petals; i++ {
		dir := 2 * math32.Pi * float32(i) / petals
		stroke := Stroke{Points: make([]Point, 0, samples)}
		for j := 0; j < samples; j++ {
			t := math32.Pi * float32(j) / float32(samples-1)
			r := radius * math32.Sin(t)
			stroke.Points = append(stroke.Points, Point{
				X:     cx + r*math32.Cos(dir),
				Y:     cy + r*math32.Sin(dir),
				Color: color,
			})
		}
		p.Strokes = append(p.Strokes, stroke)
	}
	return p
}

// quickStar is a five-pointed star: vertices alternate between the outer
// and inner radius every half step.
func quickStar(cx, cy float32, color string) Pattern {
	const points = 5
	const outer, inner float32 = 60, 30

	stroke := Stroke{Points: make([]Point, 0, 2*points+1)}
	for i := 0; i <= 2*points; i++ {
		angle := math32.Pi * float32(i%(2*points)) / points
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		stroke.Points = append(stroke.Points, Point{
			X:     cx + radius*math32.Cos(angle),
			Y:     cy + radius*math32.Sin(angle),
			Color: color,
		})
	}
	return Pattern{Strokes: []Stroke{stroke}}
}

// quickSpiral is an Archimedean spiral, three turns over fifty steps.
func quickSpiral(cx, cy float32, color string) Pattern {
	const steps = 50
	const turns = 3
	const maxRadius float32 = 75

	stroke := Stroke{Points: make([]Point, 0, steps)}
	for i := 0; i < steps; i++ {
		t := float32(turns) * 2 * math32.Pi * float32(i) / steps
		r := maxRadius * float32(i) / steps
		stroke.Points = append(stroke.Points, Point{
			X:     cx + r*math32.Cos(t),
			Y:     cy + r*math32.Sin(t),
			Color: color,
		})
	}
	return Pattern{Strokes: []Stroke{stroke}}
}

// quickMandala stacks three closed rings with increasing vertex counts
// (4+2L vertices at radius 30L) around a center dot.
func quickMandala(cx, cy float32, color string) Pattern {
	var p Pattern
	for layer := 1; layer <= 3; layer++ {
		radius := 30 * float32(layer)
		sides := 4 + 2*layer
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
	p.Strokes = append(p.Strokes, Stroke{Points: []Point{{X: cx, Y: cy, Color: color}}})
	return p
}

// quickCross traces a plus-sign outline: arm half-width 15, reach 60.
func quickCross(cx, cy float32, color string) Pattern {
	const w float32 = 15
	const reach float32 = 60

	corners := [][2]float32{
		{-w, -reach}, {w, -reach}, {w, -w}, {reach, -w},
		{reach, w}, {w, w}, {w, reach}, {-w, reach},
		{-w, w}, {-reach, w}, {-reach, -w}, {-w, -w},
	}
	stroke := Stroke{Points: make([]Point, 0, len(corners)+1)}
	for _, c := range corners {
		stroke.Points = append(stroke.Points, Point{X: cx + c[0], Y: cy + c[1], Color: color})
	}
	stroke.Points = append(stroke.Points, stroke.Points[0])
	return Pattern{Strokes: []Stroke{stroke}}
}
