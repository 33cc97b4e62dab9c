// Package imageio decodes pictures brought onto the board and scales
// them for display.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrUnsupported is returned for data that is not an image in one of the
// decodable formats.
var ErrUnsupported = errors.New("unsupported image format")

// Decodable lists the formats Decode accepts, by filetype extension.
var Decodable = map[string]bool{
	"png":  true,
	"jpg":  true,
	"bmp":  true,
	"webp": true,
	"gif":  true,
}

// Open decodes the image file at path.
func Open(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return Decode(f)
}

// Decode sniffs the data and decodes it. The returned string is the
// format name reported by the decoder.
func Decode(r io.Reader) (image.Image, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}
	kind, err := filetype.Match(data)
	if err != nil || !Decodable[kind.Extension] {
		return nil, "", ErrUnsupported
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", kind.Extension, err)
	}
	return img, format, nil
}

// ScaledSize is the size of img at pct percent, each side at least 1.
func ScaledSize(size image.Point, pct int) image.Point {
	w := size.X * pct / 100
	h := size.Y * pct / 100
	return image.Pt(max(w, 1), max(h, 1))
}

// Scale resizes img to pct percent of its intrinsic size with a Lanczos
// filter.
func Scale(img image.Image, pct int) *image.RGBA {
	sz := ScaledSize(img.Bounds().Size(), pct)
	return transform.Resize(img, sz.X, sz.Y, transform.Lanczos)
}
