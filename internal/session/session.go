// Package session owns the live pattern being drawn. The generators and
// the analyzer are pure; all mutable state lives here, behind one lock,
// so a generation call replaces or extends the pattern atomically and an
// analysis read never observes a half-applied stroke.
package session

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"KolamStudio/internal/pattern"
)

// Session holds the current design and the in-progress freehand stroke.
type Session struct {
	mu      sync.RWMutex
	current pattern.Pattern
	drawing *pattern.Stroke
}

func New() *Session {
	return &Session{}
}

// BeginStroke starts a freehand stroke at x,y in the given color.
func (s *Session) BeginStroke(x, y float32, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawing = &pattern.Stroke{
		ID:     uuid.NewString(),
		Points: []pattern.Point{{X: x, Y: y, Color: color}},
	}
}

// ExtendStroke appends a point to the in-progress stroke. No-op when no
// stroke is open.
func (s *Session) ExtendStroke(x, y float32, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drawing == nil {
		return
	}
	s.drawing.Points = append(s.drawing.Points, pattern.Point{X: x, Y: y, Color: color})
}

// EndStroke commits the in-progress stroke to the pattern and returns
// its ID, or "" when nothing was being drawn.
func (s *Session) EndStroke() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drawing == nil {
		return ""
	}
	id := s.drawing.ID
	s.current.Strokes = append(s.current.Strokes, *s.drawing)
	s.drawing = nil
	log.Printf("[Session] Stroke %s committed (%d strokes total)", id, len(s.current.Strokes))
	return id
}

// Merge appends a generated pattern onto the current design, tagging any
// unidentified strokes.
func (s *Session) Merge(p pattern.Pattern) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range p.Strokes {
		if p.Strokes[i].ID == "" {
			p.Strokes[i].ID = uuid.NewString()
		}
	}
	s.current.Append(p)
	log.Printf("[Session] Merged %d strokes, %d markers", len(p.Strokes), len(p.Markers))
}

// Replace swaps in a whole new pattern, discarding any stroke in flight.
// Used by the load path.
func (s *Session) Replace(p pattern.Pattern) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = p
	s.drawing = nil
	log.Printf("[Session] Pattern replaced (%d points)", p.Len())
}

// Clear discards the design.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = pattern.Pattern{}
	s.drawing = nil
	log.Println("[Session] Cleared")
}

// Snapshot returns a deep copy of the committed pattern, safe to analyze
// or save while drawing continues.
func (s *Session) Snapshot() pattern.Pattern {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := pattern.Pattern{
		Strokes: make([]pattern.Stroke, len(s.current.Strokes)),
		Markers: append([]pattern.Point(nil), s.current.Markers...),
	}
	for i, st := range s.current.Strokes {
		out.Strokes[i] = pattern.Stroke{
			ID:     st.ID,
			Points: append([]pattern.Point(nil), st.Points...),
		}
	}
	return out
}

// Drawing returns a copy of the in-progress stroke, or nil.
func (s *Session) Drawing() *pattern.Stroke {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.drawing == nil {
		return nil
	}
	cp := pattern.Stroke{
		ID:     s.drawing.ID,
		Points: append([]pattern.Point(nil), s.drawing.Points...),
	}
	return &cp
}

// Len is the committed point count, markers included.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Len()
}
