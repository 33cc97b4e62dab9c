// Package raster holds the off-screen pixel grid that is written to disk
// when the board is saved.
package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	ftraster "github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"

	"DigitalWhiteboard/internal/state"
)

// Buffer is an opaque RGBA canvas of fixed size.
type Buffer struct {
	img *image.RGBA
	bg  color.RGBA
	rz  *ftraster.Rasterizer
}

// New returns a width x height buffer filled with bg.
func New(width, height int, bg color.RGBA) *Buffer {
	b := &Buffer{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		bg:  bg,
		rz:  ftraster.NewRasterizer(width, height),
	}
	b.rz.UseNonZeroWinding = true
	b.Reset()
	return b
}

// Reset fills the whole buffer with the background colour.
func (b *Buffer) Reset() {
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(b.bg), image.Point{}, draw.Src)
}

func (b *Buffer) Bounds() image.Rectangle { return b.img.Bounds() }

func (b *Buffer) Background() color.RGBA { return b.bg }

// Image exposes the live pixels. Callers must not modify them.
func (b *Buffer) Image() *image.RGBA { return b.img }

// Snapshot returns a copy of the current pixels.
func (b *Buffer) Snapshot() *image.RGBA {
	out := image.NewRGBA(b.img.Bounds())
	copy(out.Pix, b.img.Pix)
	return out
}

// Paint rasterises p onto the buffer. Primitives entirely off-canvas are
// dropped.
func (b *Buffer) Paint(p state.Primitive) {
	r := b.img.Bounds()
	canvas := state.Area{Width: float32(r.Dx()), Height: float32(r.Dy())}
	if !p.Area().Overlaps(canvas) {
		return
	}
	switch p.Kind {
	case state.KindLine:
		b.strokeLine(p)
	case state.KindEllipse:
		b.fillEllipse(p)
	case state.KindRect:
		b.fillRect(p)
	}
}

// strokeLine draws an anti-aliased segment with round caps.
func (b *Buffer) strokeLine(p state.Primitive) {
	if p.P1 == p.P2 || p.Width <= 0 {
		return
	}
	var path ftraster.Path
	path.Start(toFixed(p.P1))
	path.Add1(toFixed(p.P2))

	b.rz.Clear()
	ftraster.Stroke(b.rz, path, fixed.Int26_6(p.Width*64), ftraster.RoundCapper, ftraster.RoundJoiner)
	painter := ftraster.NewRGBAPainter(b.img)
	painter.SetColor(p.Color)
	b.rz.Rasterize(painter)
}

// fillEllipse sets every pixel whose centre lies strictly inside the
// ellipse bounded by P1 and P2.
func (b *Buffer) fillEllipse(p state.Primitive) {
	rx := float64(p.P2.X-p.P1.X) / 2
	ry := float64(p.P2.Y-p.P1.Y) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	cx := float64(p.P1.X) + rx
	cy := float64(p.P1.Y) + ry
	src := image.NewUniform(p.Color)

	y0 := int(math.Floor(float64(p.P1.Y)))
	y1 := int(math.Ceil(float64(p.P2.Y)))
	for py := y0; py < y1; py++ {
		dy := (float64(py) + 0.5 - cy) / ry
		if dy*dy >= 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		x0 := int(math.Ceil(cx - half - 0.5))
		x1 := int(math.Floor(cx+half-0.5)) + 1
		if x1 <= x0 {
			continue
		}
		draw.Draw(b.img, image.Rect(x0, py, x1, py+1), src, image.Point{}, draw.Src)
	}
}

func (b *Buffer) fillRect(p state.Primitive) {
	r := image.Rect(round(p.P1.X), round(p.P1.Y), round(p.P2.X), round(p.P2.Y))
	draw.Draw(b.img, r, image.NewUniform(p.Color), image.Point{}, draw.Src)
}

// Equal reports whether both buffers hold the same pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	return b.img.Bounds() == o.img.Bounds() && bytes.Equal(b.img.Pix, o.img.Pix)
}

// EqualImage compares the buffer against any decoded image pixel by pixel.
func (b *Buffer) EqualImage(img image.Image) bool {
	if img.Bounds().Size() != b.img.Bounds().Size() {
		return false
	}
	other := image.NewRGBA(b.img.Bounds())
	draw.Draw(other, other.Bounds(), img, img.Bounds().Min, draw.Src)
	return bytes.Equal(b.img.Pix, other.Pix)
}

// IsBlank reports whether every pixel is the background colour.
func (b *Buffer) IsBlank() bool {
	return b.Equal(New(b.img.Bounds().Dx(), b.img.Bounds().Dy(), b.bg))
}

// EncodePNG writes the buffer as PNG. The buffer is opaque, so the file
// is stored as 8-bit RGB.
func (b *Buffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.img)
}

func toFixed(p state.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(float64(p.X) * 64)),
		Y: fixed.Int26_6(math.Round(float64(p.Y) * 64)),
	}
}

func round(v float32) int { return int(math.Round(float64(v))) }
