// Package surface is the drawing core of the whiteboard. A DrawSurface
// owns the tool state and fans every painted primitive out to the
// on-screen display layer and the off-screen raster buffer, in that order.
package surface

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"log"
	"os"

	"DigitalWhiteboard/internal/config"
	"DigitalWhiteboard/internal/display"
	"DigitalWhiteboard/internal/export"
	"DigitalWhiteboard/internal/imageio"
	"DigitalWhiteboard/internal/raster"
	"DigitalWhiteboard/internal/state"
)

// Sink receives every primitive the surface paints.
type Sink interface {
	Paint(p state.Primitive)
	Reset()
}

var (
	_ Sink = (*display.Layer)(nil)
	_ Sink = (*raster.Buffer)(nil)
)

// DrawSurface is not safe for concurrent use. All calls are expected on
// the UI event thread.
type DrawSurface struct {
	cfg         config.Config
	tool        state.ToolState
	cursor      state.StrokeCursor
	interaction state.Interaction
	imageScale  int
	image       *ImageLayer
	hint        bool

	display *display.Layer
	raster  *raster.Buffer
	sinks   []Sink

	// OnChange is called after every mutation that affects what is shown.
	OnChange func()
}

// New builds a blank surface of the configured size.
func New(cfg config.Config) *DrawSurface {
	s := &DrawSurface{
		cfg: cfg,
		tool: state.ToolState{
			Color: cfg.PenColor,
			Width: cfg.ClampStrokeWidth(cfg.DefaultStrokeWidth),
			Shape: state.Freehand,
		},
		imageScale: cfg.ClampImageScale(cfg.DefaultImageScale),
		hint:       true,
		display:    display.New(),
		raster:     raster.New(cfg.CanvasWidth, cfg.CanvasHeight, cfg.Background),
	}
	s.sinks = []Sink{s.display, s.raster}
	return s
}

// AddSink registers an extra observer of painted primitives. It is fed
// after the display and raster.
func (s *DrawSurface) AddSink(k Sink) { s.sinks = append(s.sinks, k) }

func (s *DrawSurface) Config() config.Config { return s.cfg }
func (s *DrawSurface) Tool() state.ToolState { return s.tool }
func (s *DrawSurface) Interaction() state.Interaction { return s.interaction }
func (s *DrawSurface) Display() *display.Layer { return s.display }
func (s *DrawSurface) Raster() *raster.Buffer { return s.raster }
func (s *DrawSurface) HintVisible() bool { return s.hint }
func (s *DrawSurface) ImageScale() int { return s.imageScale }
func (s *DrawSurface) Cursor() (state.Point, bool) { return s.cursor.Get() }

// Image returns the current picture, or nil.
func (s *DrawSurface) Image() *ImageLayer { return s.image }

// SetColor picks a pen colour and leaves eraser mode. Alpha is dropped.
func (s *DrawSurface) SetColor(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s.tool.Color = color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xFF}
	s.tool.Eraser = false
}

// SetEraser paints with the background colour until a colour is picked.
func (s *DrawSurface) SetEraser() {
	s.tool.Eraser = true
	s.tool.Color = s.cfg.Background
}

// SetStrokeWidth clamps n into the allowed range and returns the value used.
func (s *DrawSurface) SetStrokeWidth(n int) int {
	s.tool.Width = s.cfg.ClampStrokeWidth(n)
	return s.tool.Width
}

// SetShapeMode changes what the next drag paints. The mode persists
// across strokes.
func (s *DrawSurface) SetShapeMode(m state.ShapeMode) {
	switch m {
	case state.Circle, state.Rectangle:
		s.tool.Shape = m
	default:
		s.tool.Shape = state.Freehand
	}
}

// PointerDown starts an interaction. Pressing on the picture begins an
// image drag, anywhere else begins a new stroke.
func (s *DrawSurface) PointerDown(x, y float32) {
	if s.interaction != state.Idle {
		return
	}
	if s.image != nil && s.image.Area().Contains(state.Pt(x, y)) {
		s.BeginImageDrag()
		return
	}
	s.cursor.Clear()
	s.interaction = state.Painting
}

// PointerDrag handles one pointer move with the primary button held.
func (s *DrawSurface) PointerDrag(x, y float32) {
	s.hint = false
	if s.interaction == state.ImageDragging {
		s.DragImage(x, y)
		return
	}
	s.interaction = state.Painting

	pos := state.Pt(x, y)
	c := s.tool.PaintColor(s.cfg.Background)
	w := s.tool.Width
	switch s.tool.Shape {
	case state.Circle:
		s.paint(state.NewEllipse(pos, w, w, c))
	case state.Rectangle:
		s.paint(state.NewRect(pos, 2*w, w, c))
	default:
		if prev, ok := s.cursor.Get(); ok && prev != pos {
			s.paint(state.NewLine(prev, pos, w, c))
		}
		s.cursor.Set(pos)
	}
	s.changed()
}

// PointerRelease ends whatever interaction is active and breaks the
// stroke so the next drag does not connect to a stale point.
func (s *DrawSurface) PointerRelease() {
	if s.interaction == state.ImageDragging {
		s.EndImageDrag()
	}
	s.cursor.Clear()
	s.interaction = state.Idle
}

// paint applies p to every sink, display first.
func (s *DrawSurface) paint(p state.Primitive) {
	for _, k := range s.sinks {
		k.Paint(p)
	}
}

// Clear wipes the board back to its startup state.
func (s *DrawSurface) Clear() {
	for _, k := range s.sinks {
		k.Reset()
	}
	s.image = nil
	s.cursor.Clear()
	s.interaction = state.Idle
	s.hint = true
	log.Println("[SURFACE] Board cleared")
	s.changed()
}

// WritePNG encodes the raster buffer as PNG.
func (s *DrawSurface) WritePNG(w io.Writer) error {
	if err := s.raster.EncodePNG(w); err != nil {
		return newError("save", "", ErrIO, err)
	}
	return nil
}

// Save writes the raster buffer to path as PNG. An empty path means the
// user dismissed the file dialog.
func (s *DrawSurface) Save(path string) error {
	if path == "" {
		return newError("save", "", ErrUserCancelled, nil)
	}
	f, err := os.Create(path)
	if err != nil {
		return newError("save", path, ErrIO, err)
	}
	if err := s.raster.EncodePNG(f); err != nil {
		f.Close()
		return newError("save", path, ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return newError("save", path, ErrIO, err)
	}
	log.Printf("[SURFACE] Canvas saved as %s", path)
	return nil
}

// ExportPDF writes the raster buffer to path as a one-page PDF.
func (s *DrawSurface) ExportPDF(path string) error {
	if path == "" {
		return newError("export pdf", "", ErrUserCancelled, nil)
	}
	if err := export.ExportPDF(path, s.raster.Image()); err != nil {
		return newError("export pdf", path, ErrIO, err)
	}
	return nil
}

// WritePDF encodes the raster buffer as a one-page PDF.
func (s *DrawSurface) WritePDF(w io.Writer) error {
	if err := export.WritePDF(w, s.raster.Image()); err != nil {
		return newError("export pdf", "", ErrIO, err)
	}
	return nil
}

// LoadImage decodes the file at path and makes it the board picture.
func (s *DrawSurface) LoadImage(path string) error {
	if path == "" {
		return newError("load image", "", ErrUserCancelled, nil)
	}
	img, format, err := imageio.Open(path)
	if err != nil {
		return newError("load image", path, ErrImageDecode, err)
	}
	s.PlaceImage(img, format)
	log.Printf("[SURFACE] Image uploaded successfully: %s (%s)", path, format)
	return nil
}

// DropImage takes raw bytes delivered by a drop and makes them the
// board picture.
func (s *DrawSurface) DropImage(data []byte) error {
	img, format, err := imageio.Decode(bytes.NewReader(data))
	if err != nil {
		return newError("drop image", "", ErrImageDecode, err)
	}
	s.PlaceImage(img, format)
	log.Printf("[SURFACE] Image dropped successfully (%s)", format)
	return nil
}

// ReadImage decodes a picture from r. name only labels errors and logs.
func (s *DrawSurface) ReadImage(r io.Reader, name string) error {
	img, format, err := imageio.Decode(r)
	if err != nil {
		return newError("load image", name, ErrImageDecode, err)
	}
	s.PlaceImage(img, format)
	log.Printf("[SURFACE] Image uploaded successfully: %s (%s)", name, format)
	return nil
}

// PlaceImage replaces any picture with src, centred on the canvas and
// scaled to the current image size. It is the entry point for pictures
// decoded elsewhere, e.g. off the UI thread.
func (s *DrawSurface) PlaceImage(src image.Image, format string) {
	board := state.Area{Width: float32(s.cfg.CanvasWidth), Height: float32(s.cfg.CanvasHeight)}
	center := board.Center()
	s.image = newImageLayer(src, format, center, s.imageScale)
	if s.interaction == state.ImageDragging {
		s.interaction = state.Idle
	}
	s.hint = false
	s.changed()
}

// SetImageScale clamps pct into range, rescales the current picture in
// place and returns the value used.
func (s *DrawSurface) SetImageScale(pct int) int {
	s.imageScale = s.cfg.ClampImageScale(pct)
	if s.image != nil && s.image.Scale != s.imageScale {
		s.image.rescale(s.imageScale)
		s.changed()
	}
	return s.imageScale
}

// BeginImageDrag enters image dragging. It fails when there is no
// picture or another interaction is in progress.
func (s *DrawSurface) BeginImageDrag() bool {
	if s.image == nil || s.interaction != state.Idle {
		return false
	}
	s.interaction = state.ImageDragging
	return true
}

// DragImage moves the picture centre to (x, y) while dragging.
func (s *DrawSurface) DragImage(x, y float32) {
	if s.interaction != state.ImageDragging || s.image == nil {
		return
	}
	s.image.Anchor = state.Pt(x, y)
	s.changed()
}

func (s *DrawSurface) EndImageDrag() {
	if s.interaction == state.ImageDragging {
		s.interaction = state.Idle
	}
}

func (s *DrawSurface) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}
