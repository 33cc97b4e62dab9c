package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"DigitalWhiteboard/internal/state"
	"DigitalWhiteboard/internal/surface"
)

// BoardWidget shows a DrawSurface and feeds it pointer events.
type BoardWidget struct {
	widget.BaseWidget
	surface   *surface.DrawSurface
	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)

func NewBoardWidget(s *surface.DrawSurface) *BoardWidget {
	b := &BoardWidget{
		surface:   s,
		statusBar: widget.NewLabel("Ready"),
	}
	b.statusBar.Wrapping = fyne.TextWrapWord
	s.OnChange = b.Refresh
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Surface() *surface.DrawSurface { return b.surface }

func (b *BoardWidget) SetStatus(text string) {
	fyne.Do(func() {
		b.statusBar.SetText(text)
	})
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.surface.PointerDown(e.Position.X, e.Position.Y)
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.surface.PointerRelease()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.surface.PointerDrag(e.Position.X, e.Position.Y)
}

func (b *BoardWidget) DragEnd() {
	b.surface.PointerRelease()
}

// Scrolled does nothing, but being Scrollable makes the board a clip
// boundary: drivers cut its strokes at the canvas edge the same way the
// raster buffer does.
func (b *BoardWidget) Scrolled(*fyne.ScrollEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	cfg := b.surface.Config()
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(cfg.Background)
	r.picture = canvas.NewImageFromImage(nil)
	r.picture.FillMode = canvas.ImageFillStretch
	r.picture.Hide()
	r.hint = canvas.NewText(cfg.PlaceholderText, cfg.PlaceholderColor)
	r.hint.TextSize = cfg.PlaceholderSize
	r.rebuild()
	return r
}

// boardWidgetRenderer appends canvas objects for new primitives and
// rebuilds only after the display layer is reset.
type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	strokes    []fyne.CanvasObject
	generation uint64 // display layer generation the strokes belong to
	lastSeq    uint64 // newest primitive rendered
	picture    *canvas.Image
	shown      *image.RGBA
	hint       *canvas.Text
}

func (r *boardWidgetRenderer) rebuild() {
	r.strokes = nil
	r.generation = r.board.surface.Display().Generation()
	r.lastSeq = 0
	r.sync()
}

// sync brings the canvas objects in line with the surface.
func (r *boardWidgetRenderer) sync() {
	s := r.board.surface
	layer := s.Display()
	if layer.Generation() != r.generation {
		r.strokes = nil
		r.generation = layer.Generation()
		r.lastSeq = 0
	}
	for _, p := range layer.Since(r.lastSeq) {
		r.strokes = append(r.strokes, primitiveObjects(p)...)
		r.lastSeq = p.Seq
	}

	if img := s.Image(); img != nil {
		if img.Scaled != r.shown {
			r.shown = img.Scaled
			r.picture.Image = img.Scaled
			r.picture.Refresh()
		}
		sz := img.Size()
		size := fyne.NewSize(float32(sz.X), float32(sz.Y))
		r.picture.Resize(size)
		r.picture.Move(fyne.NewPos(img.Anchor.X-size.Width/2, img.Anchor.Y-size.Height/2))
		r.picture.Show()
	} else {
		r.shown = nil
		r.picture.Image = nil
		r.picture.Hide()
	}

	if s.HintVisible() {
		cfg := s.Config()
		hs := r.hint.MinSize()
		r.hint.Move(fyne.NewPos((float32(cfg.CanvasWidth)-hs.Width)/2, (float32(cfg.CanvasHeight)-hs.Height)/2))
		r.hint.Resize(hs)
		r.hint.Show()
	} else {
		r.hint.Hide()
	}
}

// primitiveObjects converts one primitive into canvas objects. Lines get
// a disc at both ends to match the raster's round caps.
func primitiveObjects(p state.Primitive) []fyne.CanvasObject {
	switch p.Kind {
	case state.KindEllipse:
		return []fyne.CanvasObject{newDisc(p.P1, p.P2, p.Color)}
	case state.KindRect:
		rect := canvas.NewRectangle(p.Color)
		rect.Move(fyne.NewPos(p.P1.X, p.P1.Y))
		rect.Resize(fyne.NewSize(p.P2.X-p.P1.X, p.P2.Y-p.P1.Y))
		return []fyne.CanvasObject{rect}
	default:
		line := canvas.NewLine(p.Color)
		line.StrokeWidth = p.Width
		line.Position1 = fyne.NewPos(p.P1.X, p.P1.Y)
		line.Position2 = fyne.NewPos(p.P2.X, p.P2.Y)
		return []fyne.CanvasObject{line, roundCap(p.P1, p.Width, p.Color), roundCap(p.P2, p.Width, p.Color)}
	}
}

func roundCap(at state.Point, width float32, c color.Color) *canvas.Circle {
	half := width / 2
	return newDisc(state.Pt(at.X-half, at.Y-half), state.Pt(at.X+half, at.Y+half), c)
}

func newDisc(p1, p2 state.Point, c color.Color) *canvas.Circle {
	disc := canvas.NewCircle(c)
	disc.Position1 = fyne.NewPos(p1.X, p1.Y)
	disc.Position2 = fyne.NewPos(p2.X, p2.Y)
	return disc
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.strokes)+3)
	objects = append(objects, r.background)
	objects = append(objects, r.strokes...)
	return append(objects, r.picture, r.hint)
}

func (r *boardWidgetRenderer) Refresh() {
	r.sync()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(r.MinSize())
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	cfg := r.board.surface.Config()
	return fyne.NewSize(float32(cfg.CanvasWidth), float32(cfg.CanvasHeight))
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut() {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}
func (r *boardWidgetRenderer) Destroy() {}
