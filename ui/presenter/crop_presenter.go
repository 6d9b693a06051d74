package presenter

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/leetsnap-go/domain/crop"
	"github.com/soocke/leetsnap-go/domain/storage"
	"github.com/soocke/leetsnap-go/ui/images"
	"github.com/soocke/leetsnap-go/ui/model"
)

// CropPresenter runs interactive crop sessions over the current source
// image. It translates surface events into crop.Session calls and pushes
// completed crops into the results model and the gallery.
type CropPresenter struct {
	source   *model.SourceModel
	results  *model.ResultsModel
	stats    *model.SessionModel
	saver    crop.Saver
	surface  CropSurface
	gallery  GalleryView
	dialogs  Dialogs
	controls ControlsView
	screen   func() (image.Rectangle, error)
	minSel   int
	logger   *slog.Logger

	active  *crop.Session
	gen     uint64
	vp      images.Viewport
	base    *image.RGBA // annotated copy scaled to the viewport
	baseRev int
	// set while closing a session whose source went away
	quietClose bool
}

// CropDeps groups the collaborators of a CropPresenter.
type CropDeps struct {
	Source   *model.SourceModel
	Results  *model.ResultsModel
	Stats    *model.SessionModel
	Saver    crop.Saver
	Surface  CropSurface
	Gallery  GalleryView
	Dialogs  Dialogs
	Controls ControlsView
	Screen   func() (image.Rectangle, error)
}

func NewCropPresenter(d CropDeps, minSelection int, logger *slog.Logger) *CropPresenter {
	return &CropPresenter{
		source:   d.Source,
		results:  d.Results,
		stats:    d.Stats,
		saver:    d.Saver,
		surface:  d.Surface,
		gallery:  d.Gallery,
		dialogs:  d.Dialogs,
		controls: d.Controls,
		screen:   d.Screen,
		minSel:   minSelection,
		logger:   logger,
	}
}

// SetMinSelection changes the degenerate-drag threshold for later sessions.
func (p *CropPresenter) SetMinSelection(px int) {
	if p != nil {
		p.minSel = px
	}
}

// Cropping reports whether a session is open.
func (p *CropPresenter) Cropping() bool { return p != nil && p.active != nil }

// Start opens a crop session over the current source image. Without a
// source the user is warned and no surface is opened. Starting while a
// session is already open is a no-op.
func (p *CropPresenter) Start() error {
	if p == nil || p.surface == nil {
		return nil
	}
	if p.active != nil {
		return nil
	}
	img, gen := p.source.Current()
	if img == nil {
		p.warnNoSource()
		return crop.ErrNoSource
	}
	sess, err := crop.NewSession(img, p.saver, crop.Options{MinSelection: p.minSel, Logger: p.logger})
	if err != nil {
		if errors.Is(err, crop.ErrNoSource) {
			p.warnNoSource()
		}
		return err
	}
	sess.AddListener(p)
	p.active, p.gen = sess, gen

	b := sess.Source().Bounds()
	maxW, maxH := b.Dx(), b.Dy()
	if p.screen != nil {
		if sr, err := p.screen(); err == nil && !sr.Empty() {
			maxW, maxH = sr.Dx(), sr.Dy()
		} else if err != nil && p.logger != nil {
			p.logger.Debug("screen bounds unavailable", "error", err)
		}
	}
	p.vp = images.NewViewport(b.Dx(), b.Dy(), maxW, maxH)
	p.base, p.baseRev = nil, -1
	p.surface.Open(p.displayBase(), SurfaceHandlers{
		Press:   p.OnPress,
		Move:    p.OnMove,
		Release: p.OnRelease,
		Done:    p.OnDone,
	})
	if p.controls != nil {
		p.controls.SetStatus("Select Area (click and drag, release to crop, Esc when done)")
	}
	return nil
}

func (p *CropPresenter) warnNoSource() {
	if p.logger != nil {
		p.logger.Warn("no_source")
	}
	if p.dialogs != nil {
		p.dialogs.Warn("Warning", "Please paste a full screenshot first!")
	}
}

func (p *CropPresenter) OnPress(x, y int) {
	if p == nil || p.active == nil {
		return
	}
	_ = p.active.Press(p.vp.ToSource(image.Pt(x, y)))
}

// OnMove redraws the in-progress rectangle over the annotated copy.
func (p *CropPresenter) OnMove(x, y int) {
	if p == nil || p.active == nil {
		return
	}
	r, ok := p.active.Move(p.vp.ToSource(image.Pt(x, y)))
	if !ok {
		return
	}
	p.surface.Show(images.DragFrame(p.displayBase(), p.vp.ToDisplay(r)))
}

// OnRelease commits the drag. Write failures are shown and the session
// stays open.
func (p *CropPresenter) OnRelease(x, y int) {
	if p == nil || p.active == nil {
		return
	}
	_, err := p.active.Release(p.vp.ToSource(image.Pt(x, y)))
	p.surface.Show(p.displayBase())
	if err == nil {
		return
	}
	var we *storage.WriteError
	if errors.As(err, &we) {
		if p.dialogs != nil {
			p.dialogs.Error("Error", fmt.Sprintf("Failed to save crop: %v", we.Err))
		}
		return
	}
	if p.logger != nil {
		p.logger.Error("crop release", "error", err)
	}
	if p.dialogs != nil {
		p.dialogs.Error("Error", err.Error())
	}
}

// OnDone ends the session; an in-progress drag is abandoned.
func (p *CropPresenter) OnDone() {
	if p == nil || p.active == nil {
		return
	}
	p.active.Done()
}

// Tick closes the session when the source image it was opened on has been
// replaced or cleared.
func (p *CropPresenter) Tick() {
	if p == nil || p.active == nil {
		return
	}
	if p.source.Generation() != p.gen {
		if p.logger != nil {
			p.logger.Debug("source replaced, closing crop session", "session", p.active.ID())
		}
		p.quietClose = true
		p.active.Done()
	}
}

// CropCompleted implements crop.Listener.
func (p *CropPresenter) CropCompleted(r crop.Result) {
	p.results.Append(model.Entry{Original: r.Crop, Resized: r.Square, Path: r.Path})
	p.stats.AddCrop()
	if p.gallery != nil {
		p.gallery.AddPair(r.Crop, r.Square)
	}
	if p.controls != nil {
		p.controls.SetDownloadEnabled(true)
		p.controls.SetStatus(fmt.Sprintf("crop_completed: %s", r.Path))
	}
}

// SessionComplete implements crop.Listener.
func (p *CropPresenter) SessionComplete(s crop.Summary) {
	p.surface.Close()
	p.active, p.base = nil, nil
	if p.logger != nil {
		p.logger.Info("session_complete", "session", s.ID, "count", s.Count)
	}
	if p.controls != nil {
		p.controls.SetStatus(fmt.Sprintf("session_complete: %d crop(s)", s.Count))
	}
	quiet := p.quietClose
	p.quietClose = false
	if !quiet && p.dialogs != nil {
		p.dialogs.Info("Complete", fmt.Sprintf("Finished cropping: %d crop(s). Start a partial screenshot again for more crops.", s.Count))
	}
}

// displayBase returns the annotated copy scaled to the surface, rebuilt
// only when a new marker was stamped.
func (p *CropPresenter) displayBase() *image.RGBA {
	if p.active == nil {
		return nil
	}
	if p.base == nil || p.baseRev != p.active.Revision() {
		d := p.vp.Display
		p.base = images.ScaleToFit(p.active.Annotated(), d.X, d.Y)
		p.baseRev = p.active.Revision()
	}
	return p.base
}
