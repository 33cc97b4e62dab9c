package surface

import (
	"image"

	"DigitalWhiteboard/internal/imageio"
	"DigitalWhiteboard/internal/state"
)

// ImageLayer is the draggable picture shown over the painted canvas.
// It is never rasterised into the saved buffer.
type ImageLayer struct {
	Source image.Image // as decoded
	Scaled *image.RGBA // what is on screen
	Format string
	Anchor state.Point // centre of the picture
	Scale  int         // percent of the intrinsic size
}

func newImageLayer(src image.Image, format string, anchor state.Point, pct int) *ImageLayer {
	l := &ImageLayer{Source: src, Format: format, Anchor: anchor}
	l.rescale(pct)
	return l
}

func (l *ImageLayer) rescale(pct int) {
	l.Scale = pct
	l.Scaled = imageio.Scale(l.Source, pct)
}

// Size is the on-screen size in pixels.
func (l *ImageLayer) Size() image.Point { return l.Scaled.Bounds().Size() }

// Area is the on-screen region covered by the picture.
func (l *ImageLayer) Area() state.Area {
	sz := l.Size()
	return state.AreaAround(l.Anchor, float32(sz.X), float32(sz.Y))
}
