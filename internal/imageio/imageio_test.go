package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func sample(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}
	return img
}

func TestDecodeFormats(t *testing.T) {
	src := sample(40, 30)
	tests := []struct {
		name   string
		encode func(*bytes.Buffer) error
		format string
	}{
		{"png", func(b *bytes.Buffer) error { return png.Encode(b, src) }, "png"},
		{"jpeg", func(b *bytes.Buffer) error { return jpeg.Encode(b, src, nil) }, "jpeg"},
		{"bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, src) }, "bmp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.encode(&buf))
			img, format, err := Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, image.Pt(40, 30), img.Bounds().Size())
		})
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("definitely not a picture")))
	assert.ErrorIs(t, err, ErrUnsupported)

	_, _, err = Decode(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestDecodeTruncatedPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, sample(40, 30)))
	truncated := buf.Bytes()[:buf.Len()/2]

	_, _, err := Decode(bytes.NewReader(truncated))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupported)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pic.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, sample(8, 8)))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	img, format, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Pt(8, 8), img.Bounds().Size())

	_, _, err = Open(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScaledSize(t *testing.T) {
	assert.Equal(t, image.Pt(40, 30), ScaledSize(image.Pt(400, 300), 10))
	assert.Equal(t, image.Pt(400, 300), ScaledSize(image.Pt(400, 300), 100))
	assert.Equal(t, image.Pt(1, 1), ScaledSize(image.Pt(5, 5), 10))
}

func TestScale(t *testing.T) {
	out := Scale(sample(200, 100), 25)
	assert.Equal(t, image.Rect(0, 0, 50, 25), out.Bounds())
}
