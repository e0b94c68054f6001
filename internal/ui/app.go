package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"KolamStudio/internal/analysis"
	"KolamStudio/internal/config"
	"KolamStudio/internal/export"
	"KolamStudio/internal/pattern"
	"KolamStudio/internal/session"
	"KolamStudio/internal/store"
)

// Studio ties the drawing surface, the generators and the analyzer
// together under one window.
type Studio struct {
	cfg      config.Config
	session  *session.Session
	analyzer *analysis.Analyzer

	window fyne.Window
	sketch *SketchWidget
	report *widget.Label
	status *widget.Label

	complexity int
	style      pattern.Style
}

// RunApp builds the studio window and blocks until it closes.
func RunApp(cfg config.Config) {
	a := app.New()
	win := a.NewWindow("Kolam Design Studio")
	win.Resize(fyne.NewSize(cfg.CanvasWidth+320, cfg.CanvasHeight))

	s := &Studio{
		cfg:        cfg,
		session:    session.New(),
		analyzer:   analysis.New(),
		window:     win,
		complexity: cfg.Complexity,
		style:      pattern.StyleTraditional,
	}
	s.sketch = NewSketchWidget(s.session, cfg.DefaultColor, cfg.StrokeWidth)
	s.sketch.OnStrokeDone = s.updateLiveStats

	s.report = widget.NewLabel("Draw on the canvas or generate a pattern,\nthen press Analyze.")
	s.report.TextStyle = fyne.TextStyle{Monospace: true}
	s.status = widget.NewLabel("Ready")

	toolbar := newToolbar(s.sketch, cfg.Palette, toolbarActions{
		OnAnalyze: s.analyze,
		OnSave:    s.save,
		OnLoad:    s.load,
		OnExport:  s.exportPDF,
		OnClear:   s.clear,
	})

	content := container.NewBorder(
		toolbar, s.status,
		s.generatorPanel(), container.NewVScroll(s.report),
		s.sketch,
	)
	win.SetContent(content)
	win.ShowAndRun()
}

// generatorPanel is the left column: style generator controls plus the
// quick-pattern buttons.
func (s *Studio) generatorPanel() fyne.CanvasObject {
	styleNames := make([]string, 0, 4)
	for _, st := range pattern.Styles() {
		styleNames = append(styleNames, string(st))
	}
	styleSelect := widget.NewSelect(styleNames, func(v string) {
		s.style = pattern.Style(v)
	})
	styleSelect.SetSelected(string(pattern.StyleTraditional))

	complexityLabel := widget.NewLabel(fmt.Sprintf("Complexity: %d", s.complexity))
	complexitySlider := widget.NewSlider(1, 10)
	complexitySlider.SetValue(float64(s.complexity))
	complexitySlider.OnChanged = func(v float64) {
		s.complexity = int(v)
		complexityLabel.SetText(fmt.Sprintf("Complexity: %d", s.complexity))
	}

	generateBtn := widget.NewButton("Generate", func() {
		cx, cy := s.sketch.Center()
		p := pattern.Generate(s.style, s.complexity, cx, cy, s.sketch.Color())
		s.session.Merge(p)
		s.sketch.Refresh()
		s.setStatus(fmt.Sprintf("Generated %s pattern (%d points)", s.style, p.Len()))
		s.updateLiveStats()
	})

	quick := container.NewGridWithColumns(2)
	for _, kind := range pattern.QuickKinds() {
		k := kind
		quick.Add(widget.NewButton(string(k), func() {
			cx, cy := s.sketch.Center()
			p := pattern.Quick(k, cx, cy, s.sketch.Color())
			s.session.Merge(p)
			s.sketch.Refresh()
			s.setStatus(fmt.Sprintf("Added %s motif", k))
			s.updateLiveStats()
		}))
	}

	return container.NewVBox(
		widget.NewLabel("Pattern Generator"),
		styleSelect,
		complexityLabel,
		complexitySlider,
		generateBtn,
		widget.NewSeparator(),
		widget.NewLabel("Quick Patterns"),
		quick,
	)
}

func (s *Studio) analyze() {
	res, err := s.analyzer.Analyze(s.session.Snapshot())
	if err != nil {
		dialog.ShowInformation("Analyze", "No pattern to analyze yet.", s.window)
		return
	}
	s.report.SetText(formatReport(res))
	s.setStatus(fmt.Sprintf("Analyzed %d points: %s", res.NumPoints, res.Classification))
}

// updateLiveStats refreshes the short stats line after each stroke or
// generation, without replacing a full report the user asked for.
func (s *Studio) updateLiveStats() {
	res, err := s.analyzer.Analyze(s.session.Snapshot())
	if err != nil {
		s.setStatus("Ready")
		return
	}
	s.setStatus(fmt.Sprintf("Points: %d   Complexity: %d/10   Symmetries: %d",
		res.NumPoints, res.Complexity, len(res.Symmetries)))
}

func (s *Studio) save() {
	snap := s.session.Snapshot()
	if snap.IsEmpty() {
		dialog.ShowInformation("Save", "No pattern to save yet.", s.window)
		return
	}
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		res, aerr := s.analyzer.Analyze(snap)
		if aerr != nil {
			res = nil
		}
		size := store.CanvasSize{Width: s.cfg.CanvasWidth, Height: s.cfg.CanvasHeight}
		if err := store.Save(writer, snap, res, size); err != nil {
			log.Printf("[Studio] Save failed: %v", err)
			dialog.ShowError(err, s.window)
			return
		}
		s.setStatus(fmt.Sprintf("Saved %d points to %s", snap.Len(), writer.URI().Name()))
	}, s.window)
}

func (s *Studio) load() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		p, lerr := store.Load(reader)
		if lerr != nil {
			var malformed *store.MalformedDocumentError
			if errors.As(lerr, &malformed) {
				log.Printf("[Studio] Load failed: %v", lerr)
			}
			dialog.ShowError(lerr, s.window)
			s.session.Replace(pattern.Pattern{})
			s.sketch.Refresh()
			return
		}
		s.session.Replace(p)
		s.sketch.Refresh()
		s.setStatus(fmt.Sprintf("Loaded %d points from %s", p.Len(), reader.URI().Name()))
		s.updateLiveStats()
	}, s.window)
}

func (s *Studio) exportPDF() {
	snap := s.session.Snapshot()
	if snap.IsEmpty() {
		dialog.ShowInformation("Export", "No pattern to export yet.", s.window)
		return
	}
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := export.PDF(writer, snap); err != nil {
			log.Printf("[Studio] Export failed: %v", err)
			dialog.ShowError(err, s.window)
			return
		}
		s.setStatus("Exported PDF to " + writer.URI().Name())
	}, s.window)
}

func (s *Studio) clear() {
	if s.session.Len() == 0 {
		return
	}
	dialog.ShowConfirm("Clear", "Clear the current pattern?", func(ok bool) {
		if !ok {
			return
		}
		s.session.Clear()
		s.sketch.Refresh()
		s.report.SetText("Canvas cleared. Ready for a new design.")
		s.setStatus("Ready")
	}, s.window)
}

func (s *Studio) setStatus(text string) {
	s.status.SetText(text)
}
