package export

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"
)

const pageImage = "board"

// newPDF lays img out on a single page of the same size, one
// point per pixel.
func newPDF(img image.Image) (*gofpdf.Fpdf, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	sz := img.Bounds().Size()
	w, h := float64(sz.X), float64(sz.Y)

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(pageImage, opts, &buf)
	p.ImageOptions(pageImage, 0, 0, w, h, false, opts, 0, "")
	return p, p.Error()
}

// WritePDF writes img as a one-page PDF.
func WritePDF(w io.Writer, img image.Image) error {
	p, err := newPDF(img)
	if err != nil {
		return err
	}
	return p.Output(w)
}

// ExportPDF writes img as a one-page PDF file at path.
func ExportPDF(path string, img image.Image) error {
	p, err := newPDF(img)
	if err != nil {
		return err
	}
	if err := p.OutputFileAndClose(path); err != nil {
		return err
	}
	log.Printf("[EXPORT] Board exported to %s", path)
	return nil
}
