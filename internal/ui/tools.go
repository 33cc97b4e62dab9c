package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"DigitalWhiteboard/internal/state"
)

// --- Custom Widget for Color Swatches ---
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
	rect.SetMinSize(fyne.NewSize(24, 24))

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

var swatchColors = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 255, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 255, A: 255}, // Yellow
}

func sidebarLabel(text string) *canvas.Text {
	t := canvas.NewText(text, color.White)
	t.TextSize = 14
	t.Alignment = fyne.TextAlignCenter
	return t
}

// newSidebar builds the tool column on the left of the window.
func (w *whiteboard) newSidebar() fyne.CanvasObject {
	cfg := w.surface.Config()

	onColorTapped := func(c color.Color) {
		w.surface.SetColor(c)
		w.board.SetStatus("Pen color changed")
	}
	swatches := container.NewGridWithColumns(len(swatchColors))
	for _, c := range swatchColors {
		swatches.Add(newColorSwatch(c, onColorTapped))
	}

	labels := make([]string, len(state.ShapeModes))
	for i, m := range state.ShapeModes {
		labels[i] = m.String()
	}
	w.shapes = widget.NewRadioGroup(labels, func(selected string) {
		w.surface.SetShapeMode(state.ParseShapeMode(selected))
	})
	w.shapes.Required = true
	w.shapes.SetSelected(w.surface.Tool().Shape.String())

	widthLabel := sidebarLabel(fmt.Sprintf("Width: %d", w.surface.Tool().Width))
	w.width = widget.NewSlider(float64(cfg.MinStrokeWidth), float64(cfg.MaxStrokeWidth))
	w.width.Step = 1
	w.width.SetValue(float64(w.surface.Tool().Width))
	w.width.OnChanged = func(val float64) {
		n := w.surface.SetStrokeWidth(int(val))
		widthLabel.Text = fmt.Sprintf("Width: %d", n)
		widthLabel.Refresh()
	}

	scaleLabel := sidebarLabel(fmt.Sprintf("Image Size: %d%%", w.surface.ImageScale()))
	w.imageSize = widget.NewSlider(float64(cfg.MinImageScale), float64(cfg.MaxImageScale))
	w.imageSize.Step = 1
	w.imageSize.SetValue(float64(w.surface.ImageScale()))
	w.imageSize.OnChanged = func(val float64) {
		pct := w.surface.SetImageScale(int(val))
		scaleLabel.Text = fmt.Sprintf("Image Size: %d%%", pct)
		scaleLabel.Refresh()
	}

	tools := container.NewVBox(
		widget.NewButtonWithIcon("Choose Color", theme.ColorPaletteIcon(), w.chooseColor),
		swatches,
		widget.NewButtonWithIcon("Eraser", theme.DeleteIcon(), func() {
			w.surface.SetEraser()
			w.board.SetStatus("Eraser on")
		}),
		widget.NewButtonWithIcon("Clear Board", theme.ContentClearIcon(), func() {
			w.surface.Clear()
			w.board.SetStatus("Board cleared")
		}),
		widget.NewButtonWithIcon("Save as PNG", theme.DocumentSaveIcon(), w.saveCanvas),
		widget.NewButtonWithIcon("Export PDF", theme.DocumentPrintIcon(), w.exportPDF),
		widget.NewButtonWithIcon("Upload Image", theme.FileImageIcon(), w.uploadImage),
		widget.NewSeparator(),
		sidebarLabel("Shape"),
		w.shapes,
		widget.NewSeparator(),
		widthLabel,
		w.width,
		scaleLabel,
		w.imageSize,
		layout.NewSpacer(),
		w.board.statusBar,
	)

	bg := canvas.NewRectangle(cfg.SidebarColor)
	bg.SetMinSize(fyne.NewSize(cfg.SidebarWidth, 0))
	return container.NewStack(bg, container.NewPadded(tools))
}
