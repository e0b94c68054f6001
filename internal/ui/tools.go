package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// colorSwatch is a tappable square of one palette color.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// toolbarActions are the studio commands wired up by the app layer.
type toolbarActions struct {
	OnAnalyze func()
	OnSave    func()
	OnLoad    func()
	OnExport  func()
	OnClear   func()
}

// newToolbar assembles the top bar: action buttons, the palette, and the
// stroke width slider.
func newToolbar(sketch *SketchWidget, palette []string, acts toolbarActions) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.SearchIcon(), acts.OnAnalyze),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), acts.OnSave),
		widget.NewToolbarAction(theme.FolderOpenIcon(), acts.OnLoad),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), acts.OnExport),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), acts.OnClear),
	)

	colorBox := container.NewHBox()
	for _, token := range palette {
		colorBox.Add(newColorSwatch(parseHex(token), func(c color.Color) {
			sketch.SetColor(hexToken(c))
		}))
	}

	strokeSlider := widget.NewSlider(1, 12)
	strokeSlider.SetValue(3)
	strokeSlider.OnChanged = func(v float64) { sketch.SetStroke(float32(v)) }
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(140, 35)), strokeSlider)

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderBox,
		layout.NewSpacer(),
	)
}
