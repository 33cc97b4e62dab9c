package ui

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"DigitalWhiteboard/internal/config"
	"DigitalWhiteboard/internal/surface"
)

var (
	pngFilter   = storage.NewExtensionFileFilter([]string{".png"})
	pdfFilter   = storage.NewExtensionFileFilter([]string{".pdf"})
	imageFilter = storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".bmp", ".webp", ".gif"})
)

// whiteboard ties the window, the board widget and the sidebar together.
type whiteboard struct {
	win     fyne.Window
	surface *surface.DrawSurface
	board   *BoardWidget
	content fyne.CanvasObject

	shapes    *widget.RadioGroup
	width     *widget.Slider
	imageSize *widget.Slider
}

func newWhiteboard(cfg config.Config, win fyne.Window) *whiteboard {
	w := &whiteboard{
		win:     win,
		surface: surface.New(cfg),
	}
	w.board = NewBoardWidget(w.surface)
	w.content = container.NewBorder(nil, nil, w.newSidebar(), nil, container.NewCenter(w.board))
	return w
}

func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Title)

	wb := newWhiteboard(cfg, myWindow)
	myWindow.SetContent(wb.content)
	myWindow.SetOnDropped(wb.dropped)
	myWindow.Resize(fyne.NewSize(cfg.SidebarWidth+float32(cfg.CanvasWidth)+60, float32(cfg.CanvasHeight)+40))
	myWindow.ShowAndRun()
}

// report logs err and tells the user about it. Cancellations are silent.
// It returns true when err was not nil.
func (w *whiteboard) report(err error) bool {
	if err == nil {
		return false
	}
	if surface.Cancelled(err) {
		return true
	}
	msg := surface.UserMessage(err)
	log.Printf("[UI] %s", msg)
	w.board.SetStatus(msg)
	dialog.ShowError(errors.New(msg), w.win)
	return true
}

func (w *whiteboard) chooseColor() {
	picker := dialog.NewColorPicker("Choose Color", "Pen color", func(c color.Color) {
		w.surface.SetColor(c)
		w.board.SetStatus("Pen color changed")
	}, w.win)
	picker.Advanced = true
	picker.Show()
}

// closePath closes what a file dialog opened and returns its path.
func closePath(c interface {
	io.Closer
	URI() fyne.URI
}) string {
	if err := c.Close(); err != nil {
		log.Printf("[UI] Error closing %s: %v", c.URI(), err)
	}
	return c.URI().Path()
}

// saveTo hands a save dialog's result to the surface. Local files are
// written by path. Other URIs are written through the dialog's writer.
// It returns the name to show the user.
func (w *whiteboard) saveTo(writer fyne.URIWriteCloser, toPath func(string) error, toWriter func(io.Writer) error) (string, error) {
	if writer == nil {
		return "", toPath("")
	}
	if writer.URI().Scheme() == "file" {
		path := closePath(writer)
		return path, toPath(path)
	}
	name := writer.URI().String()
	err := toWriter(writer)
	if cerr := writer.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("save %s: %w: %w", name, surface.ErrIO, cerr)
	}
	return name, err
}

func (w *whiteboard) saveCanvas() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if w.report(err) {
			return
		}
		name, err := w.saveTo(writer, w.surface.Save, w.surface.WritePNG)
		if w.report(err) {
			return
		}
		w.board.SetStatus(fmt.Sprintf("Canvas saved as %s", name))
	}, w.win)
	d.SetFileName("whiteboard.png")
	d.SetFilter(pngFilter)
	d.Show()
}

func (w *whiteboard) exportPDF() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if w.report(err) {
			return
		}
		name, err := w.saveTo(writer, w.surface.ExportPDF, w.surface.WritePDF)
		if w.report(err) {
			return
		}
		w.board.SetStatus(fmt.Sprintf("Exported %s", name))
	}, w.win)
	d.SetFileName("whiteboard.pdf")
	d.SetFilter(pdfFilter)
	d.Show()
}

func (w *whiteboard) uploadImage() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if w.report(err) {
			return
		}
		if reader == nil {
			return
		}
		if reader.URI().Scheme() != "file" {
			w.openImage(reader)
			return
		}
		path := closePath(reader)
		if w.report(w.surface.LoadImage(path)) {
			return
		}
		w.board.SetStatus("Image uploaded: " + reader.URI().Name())
	}, w.win)
	d.SetFilter(imageFilter)
	d.Show()
}

// openImage decodes straight from a reader whose URI has no local path.
func (w *whiteboard) openImage(reader fyne.URIReadCloser) {
	defer reader.Close()
	name := reader.URI().Name()
	if w.report(w.surface.ReadImage(reader, name)) {
		return
	}
	w.board.SetStatus("Image uploaded: " + name)
}

// dropped reads the first dropped file off the UI thread and hands the
// bytes back to the surface on it.
func (w *whiteboard) dropped(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	uri := uris[0]
	w.board.SetStatus("Loading " + uri.Name() + "...")
	go func() {
		data, err := readURI(uri)
		fyne.Do(func() {
			if err != nil {
				w.report(fmt.Errorf("drop image %s: %w", uri.Name(), err))
				return
			}
			if w.report(w.surface.DropImage(data)) {
				return
			}
			w.board.SetStatus("Image dropped: " + uri.Name())
		})
	}()
}

func readURI(uri fyne.URI) ([]byte, error) {
	r, err := storage.Reader(uri)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
