package view

import (
	"image"
	"log/slog"

	"github.com/soocke/leetsnap-go/ui/images"
	"github.com/soocke/leetsnap-go/ui/presenter"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// SurfaceTitle is the caption of the crop window.
const SurfaceTitle = "Select Area (Click and drag to select, Release to crop, ESC when done)"

// CropSurface is the full-screen window a crop session draws on.
type CropSurface struct {
	logger *slog.Logger
	win    *ToplevelWidget
	label  *LabelWidget
	photo  *Img
}

func NewCropSurface(logger *slog.Logger) *CropSurface {
	return &CropSurface{logger: logger}
}

// Open creates the window showing img and routes pointer events to h.
// The label has no border or padding so event coordinates are image pixels.
func (v *CropSurface) Open(img image.Image, h presenter.SurfaceHandlers) {
	if v.win != nil {
		v.Close()
	}
	win := App.Toplevel(Borderwidth(0), Background("#000000"))
	win.WmTitle(SurfaceTitle)
	v.win = win
	WmAttributes(win.Window, "-fullscreen", true)
	WmAttributes(win.Window, "-topmost", 1)

	v.photo = NewPhoto(Data(images.EncodePNG(img)))
	v.label = win.Label(Image(v.photo), Borderwidth(0), Padx(0), Pady(0), Highlightthickness(0), Anchor("nw"))
	Grid(v.label, Row(0), Column(0), Sticky("nw"))

	Bind(v.label, "<ButtonPress-1>", Command(func(e *Event) { h.Press(e.X, e.Y) }))
	Bind(v.label, "<B1-Motion>", Command(func(e *Event) { h.Move(e.X, e.Y) }))
	Bind(v.label, "<ButtonRelease-1>", Command(func(e *Event) { h.Release(e.X, e.Y) }))
	Bind(win, "<Escape>", Command(h.Done))
	WmProtocol(win.Window, "WM_DELETE_WINDOW", h.Done)
	Focus(win)
	if v.logger != nil {
		b := img.Bounds()
		v.logger.Debug("crop surface opened", "width", b.Dx(), "height", b.Dy())
	}
}

// Show replaces the displayed frame, releasing the previous Tk photo.
func (v *CropSurface) Show(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	p := NewPhoto(Data(images.EncodePNG(img)))
	v.label.Configure(Image(p))
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = p
}

func (v *CropSurface) Close() {
	if v.win == nil {
		return
	}
	Destroy(v.win)
	v.win, v.label = nil, nil
	if v.photo != nil {
		v.photo.Delete()
		v.photo = nil
	}
}
