// Package export renders a pattern to PDF so finished designs can be
// printed or shared outside the studio.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"KolamStudio/internal/pattern"
)

// A4 page and margin in millimeters.
const (
	pageW  = 210.0
	pageH  = 297.0
	margin = 15.0
)

// PDF writes p to w as a single A4 page, scaled to fit and centered.
// Strokes become polylines in their point colors; one-point strokes
// become dots. Markers are not drawn, matching the canvas.
func PDF(w io.Writer, p pattern.Pattern) error {
	if p.IsEmpty() {
		return fmt.Errorf("nothing to export")
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetLineWidth(0.5)

	b := p.Bounds()
	scale := fitScale(b)
	offX := margin + (pageW-2*margin-float64(b.Width())*scale)/2
	offY := margin + (pageH-2*margin-float64(b.Height())*scale)/2
	mapX := func(x float32) float64 { return offX + float64(x-b.MinX)*scale }
	mapY := func(y float32) float64 { return offY + float64(y-b.MinY)*scale }

	for _, st := range p.Strokes {
		if len(st.Points) == 0 {
			continue
		}
		if len(st.Points) == 1 {
			pt := st.Points[0]
			r, g, bb := hexRGB(pt.Color)
			doc.SetFillColor(r, g, bb)
			doc.Circle(mapX(pt.X), mapY(pt.Y), 0.8, "F")
			continue
		}
		for i := 1; i < len(st.Points); i++ {
			r, g, bb := hexRGB(st.Points[i].Color)
			doc.SetDrawColor(r, g, bb)
			doc.Line(
				mapX(st.Points[i-1].X), mapY(st.Points[i-1].Y),
				mapX(st.Points[i].X), mapY(st.Points[i].Y),
			)
		}
	}

	return doc.Output(w)
}

// PDFFile is the save-dialog convenience wrapper around PDF.
func PDFFile(path string, p pattern.Pattern) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return PDF(f, p)
}

func fitScale(b pattern.Bounds) float64 {
	w := float64(b.Width())
	h := float64(b.Height())
	if w <= 0 && h <= 0 {
		return 1
	}
	scale := 1.0
	if w > 0 {
		scale = (pageW - 2*margin) / w
	}
	if h > 0 {
		if s := (pageH - 2*margin) / h; s < scale {
			scale = s
		}
	}
	return scale
}

// hexRGB parses "#RRGGBB"; anything else falls back to black, the same
// way unknown color tokens render on the canvas.
func hexRGB(token string) (int, int, int) {
	if len(token) != 7 || token[0] != '#' {
		return 0, 0, 0
	}
	var r, g, b int
	if _, err := fmt.Sscanf(token[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}
