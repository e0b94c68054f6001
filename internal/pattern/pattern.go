package pattern

import "github.com/chewxy/math32"

// Point is a single colored coordinate on the canvas. Color is an opaque
// token (usually a hex string like "#FF6B35") that the core never
// interprets beyond equality.
type Point struct {
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
	Color string  `json:"color"`
}

// Stroke is an ordered run of points connected by line segments when
// rendered. A one-point stroke is drawn as a dot.
type Stroke struct {
	ID     string  `json:"id,omitempty"`
	Points []Point `json:"points"`
}

// Pattern is one design: an ordered sequence of strokes plus loose marker
// points. Markers count toward analysis but are never drawn.
type Pattern struct {
	Strokes []Stroke `json:"strokes"`
	Markers []Point  `json:"markers,omitempty"`
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

func (b Bounds) Width() float32  { return b.MaxX - b.MinX }
func (b Bounds) Height() float32 { return b.MaxY - b.MinY }

// Points flattens the pattern in insertion order: every stroke's points
// first, then the markers.
func (p Pattern) Points() []Point {
	pts := make([]Point, 0, p.Len())
	for _, s := range p.Strokes {
		pts = append(pts, s.Points...)
	}
	pts = append(pts, p.Markers...)
	return pts
}

// Len is the total point count, markers included.
func (p Pattern) Len() int {
	n := len(p.Markers)
	for _, s := range p.Strokes {
		n += len(s.Points)
	}
	return n
}

func (p Pattern) IsEmpty() bool { return p.Len() == 0 }

// Append merges another pattern's strokes and markers onto this one.
func (p *Pattern) Append(other Pattern) {
	p.Strokes = append(p.Strokes, other.Strokes...)
	p.Markers = append(p.Markers, other.Markers...)
}

// Bounds returns the bounding box of every point in the pattern. An empty
// pattern yields a zero box.
func (p Pattern) Bounds() Bounds {
	pts := p.Points()
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, pt := range pts[1:] {
		b.MinX = math32.Min(b.MinX, pt.X)
		b.MinY = math32.Min(b.MinY, pt.Y)
		b.MaxX = math32.Max(b.MaxX, pt.X)
		b.MaxY = math32.Max(b.MaxY, pt.Y)
	}
	return b
}
