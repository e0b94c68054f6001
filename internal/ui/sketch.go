package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"KolamStudio/internal/pattern"
	"KolamStudio/internal/session"
)

// SketchWidget is the drawing surface. Freehand input goes straight into
// the session; the renderer re-reads the session on every refresh, so a
// generated or loaded pattern shows up with a plain Refresh call.
type SketchWidget struct {
	widget.BaseWidget
	session *session.Session

	panX, panY    float32
	drawing       bool
	currentColor  string
	currentStroke float32

	// OnStrokeDone fires after a freehand stroke is committed.
	OnStrokeDone func()
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)

func NewSketchWidget(s *session.Session, startColor string, strokeWidth float32) *SketchWidget {
	w := &SketchWidget{
		session:       s,
		currentColor:  startColor,
		currentStroke: strokeWidth,
	}
	w.ExtendBaseWidget(w)
	return w
}

func (w *SketchWidget) SetColor(token string) { w.currentColor = token }

func (w *SketchWidget) Color() string { return w.currentColor }

func (w *SketchWidget) SetStroke(width float32) { w.currentStroke = width }

// Center is the canvas midpoint in pattern coordinates, where generated
// motifs are placed.
func (w *SketchWidget) Center() (float32, float32) {
	size := w.Size()
	return size.Width/2 - w.panX, size.Height/2 - w.panY
}

func (w *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.drawing = true
	w.session.BeginStroke(e.Position.X-w.panX, e.Position.Y-w.panY, w.currentColor)
	w.Refresh()
}

func (w *SketchWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !w.drawing {
		return
	}
	w.drawing = false
	if w.session.EndStroke() != "" && w.OnStrokeDone != nil {
		w.OnStrokeDone()
	}
	w.Refresh()
}

func (w *SketchWidget) Dragged(e *fyne.DragEvent) {
	if w.drawing {
		w.session.ExtendStroke(e.Position.X-w.panX, e.Position.Y-w.panY, w.currentColor)
	} else {
		// Secondary-drag pans the view.
		w.panX += e.Dragged.DX
		w.panY += e.Dragged.DY
	}
	w.Refresh()
}

func (w *SketchWidget) DragEnd()                       {}
func (w *SketchWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *SketchWidget) MouseOut()                      {}
func (w *SketchWidget) MouseMoved(*desktop.MouseEvent) {}

func (w *SketchWidget) Scrolled(e *fyne.ScrollEvent) {
	w.panX += e.Scrolled.DX
	w.panY += e.Scrolled.DY
	w.Refresh()
}

func (w *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &sketchRenderer{sketch: w}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type sketchRenderer struct {
	sketch     *SketchWidget
	background *canvas.Rectangle
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background}

	p := r.sketch.session.Snapshot()
	for _, st := range p.Strokes {
		objects = append(objects, r.strokeObjects(st)...)
	}
	if live := r.sketch.session.Drawing(); live != nil {
		objects = append(objects, r.strokeObjects(*live)...)
	}
	// Markers are analysis bookkeeping only; they are never drawn.
	return objects
}

func (r *sketchRenderer) strokeObjects(st pattern.Stroke) []fyne.CanvasObject {
	panX, panY := r.sketch.panX, r.sketch.panY
	width := r.sketch.currentStroke

	if len(st.Points) == 1 {
		pt := st.Points[0]
		dot := canvas.NewCircle(parseHex(pt.Color))
		dot.Resize(fyne.NewSize(6, 6))
		dot.Move(fyne.NewPos(pt.X+panX-3, pt.Y+panY-3))
		return []fyne.CanvasObject{dot}
	}

	objects := make([]fyne.CanvasObject, 0, len(st.Points))
	for i := 1; i < len(st.Points); i++ {
		seg := canvas.NewLine(parseHex(st.Points[i].Color))
		seg.StrokeWidth = width
		seg.Position1 = fyne.NewPos(st.Points[i-1].X+panX, st.Points[i-1].Y+panY)
		seg.Position2 = fyne.NewPos(st.Points[i].X+panX, st.Points[i].Y+panY)
		objects = append(objects, seg)
	}
	return objects
}

func (r *sketchRenderer) Layout(size fyne.Size) { r.background.Resize(size) }
func (r *sketchRenderer) MinSize() fyne.Size    { return fyne.NewSize(400, 400) }
func (r *sketchRenderer) Refresh()              { canvas.Refresh(r.sketch) }
func (r *sketchRenderer) Destroy()              {}
