// Package store round-trips a pattern through the studio's saved-file
// format. The shape is fixed for interoperability with files written by
// earlier versions, so the pattern travels as a flat point array.
package store

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"KolamStudio/internal/analysis"
	"KolamStudio/internal/pattern"
)

// CanvasSize records the drawing surface dimensions at save time.
type CanvasSize struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// Document is the persisted file shape.
type Document struct {
	Pattern    []pattern.Point  `json:"pattern"`
	Analysis   *analysis.Result `json:"analysis,omitempty"`
	Timestamp  string           `json:"timestamp"`
	CanvasSize CanvasSize       `json:"canvasSize"`
}

// MalformedDocumentError reports a file that does not parse as a saved
// design. Callers should fall back to an empty pattern, not crash.
type MalformedDocumentError struct {
	Err error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed design document: %v", e.Err)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }

// Save writes p to w in the saved-file shape, points in stroke/point
// insertion order. res may be nil when no analysis has been run.
func Save(w io.Writer, p pattern.Pattern, res *analysis.Result, size CanvasSize) error {
	doc := Document{
		Pattern:    p.Points(),
		Analysis:   res,
		Timestamp:  time.Now().Format(time.RFC3339),
		CanvasSize: size,
	}
	if doc.Pattern == nil {
		doc.Pattern = []pattern.Point{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode design: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Load reads a saved design from r. A document with no pattern field is
// accepted and yields an empty pattern; anything that does not parse is
// reported as a MalformedDocumentError.
//
// The flat array cannot carry stroke boundaries, so strokes are
// reconstructed by grouping maximal runs of consecutive same-colored
// points. The flattened point sequence is preserved exactly.
func Load(r io.Reader) (pattern.Pattern, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return pattern.Pattern{}, &MalformedDocumentError{Err: err}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return pattern.Pattern{}, &MalformedDocumentError{Err: err}
	}
	return regroup(doc.Pattern), nil
}

func regroup(points []pattern.Point) pattern.Pattern {
	var p pattern.Pattern
	var current *pattern.Stroke
	for _, pt := range points {
		if current == nil || current.Points[len(current.Points)-1].Color != pt.Color {
			p.Strokes = append(p.Strokes, pattern.Stroke{})
			current = &p.Strokes[len(p.Strokes)-1]
		}
		current.Points = append(current.Points, pt)
	}
	return p
}
