package presenter

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/soocke/leetsnap-go/domain/capture"
	"github.com/soocke/leetsnap-go/domain/crop"
	"github.com/soocke/leetsnap-go/domain/storage"
	"github.com/soocke/leetsnap-go/ui/model"
)

// Capturer narrows what the presenter needs from capture.Service.
type Capturer interface {
	Screenshot(ctx context.Context, delay time.Duration) (capture.Snapshot, error)
	Clipboard() (capture.Snapshot, error)
	Open(path string) (capture.Snapshot, error)
}

// Store narrows what the presenter needs from storage.Storage.
type Store interface {
	Save(prefix string, img image.Image, at time.Time) (string, error)
	SaveNamed(name string, img image.Image) (string, error)
	ResizedName(original string) string
	Directory() string
}

// WindowView hides the main window around a full screenshot.
type WindowView interface {
	Hide()
	Show()
}

type shotResult struct {
	snap   capture.Snapshot
	square image.Image
	err    error
}

// SourcePresenter owns the buttons and hotkeys that bring images in
// (paste, screenshot, upload) or take them out (download, reset).
type SourcePresenter struct {
	source   *model.SourceModel
	results  *model.ResultsModel
	capturer Capturer
	store    Store
	window   WindowView
	gallery  GalleryView
	dialogs  Dialogs
	controls ControlsView
	delay    time.Duration
	logger   *slog.Logger

	ctx     context.Context
	pending chan shotResult
	busy    bool
}

// SourceDeps groups the collaborators of a SourcePresenter.
type SourceDeps struct {
	Source   *model.SourceModel
	Results  *model.ResultsModel
	Capturer Capturer
	Store    Store
	Window   WindowView
	Gallery  GalleryView
	Dialogs  Dialogs
	Controls ControlsView
}

// NewSourcePresenter returns a presenter whose screenshots wait delay after
// hiding the window. ctx cancels a pending screenshot.
func NewSourcePresenter(ctx context.Context, d SourceDeps, delay time.Duration, logger *slog.Logger) *SourcePresenter {
	if ctx == nil {
		ctx = context.Background()
	}
	return &SourcePresenter{
		source:   d.Source,
		results:  d.Results,
		capturer: d.Capturer,
		store:    d.Store,
		window:   d.Window,
		gallery:  d.Gallery,
		dialogs:  d.Dialogs,
		controls: d.Controls,
		delay:    delay,
		logger:   logger,
		ctx:      ctx,
		pending:  make(chan shotResult, 1),
	}
}

// SetDelay changes how long later screenshots wait after hiding the window.
func (p *SourcePresenter) SetDelay(d time.Duration) {
	if p != nil {
		p.delay = d
	}
}

// Paste makes the clipboard image the current source.
func (p *SourcePresenter) Paste() {
	if p == nil || p.capturer == nil {
		return
	}
	snap, err := p.capturer.Clipboard()
	if errors.Is(err, capture.ErrNoClipboardImage) {
		p.warn("Warning", "No image found in clipboard!")
		return
	}
	if err != nil {
		p.fail("paste", fmt.Errorf("Failed to paste image: %w", err))
		return
	}
	path, err := p.store.Save(storage.PrefixPasted, snap.Image, snap.CapturedAt)
	if err != nil {
		p.fail("paste", fmt.Errorf("Failed to paste image: %w", err))
		return
	}
	p.source.Set(snap.Image, path)
	if p.gallery != nil {
		p.gallery.AddSingle("Pasted Screenshot", snap.Image)
	}
	p.enableDownload()
	p.status("pasted: " + path)
	if p.logger != nil {
		p.logger.Info("image pasted", "path", path)
	}
}

// Screenshot hides the window and captures the full screen in the
// background. The result is applied by Tick on the UI thread.
func (p *SourcePresenter) Screenshot() {
	if p == nil || p.capturer == nil || p.busy {
		return
	}
	p.busy = true
	if p.window != nil {
		p.window.Hide()
	}
	ctx, capturer, delay := p.ctx, p.capturer, p.delay
	go func() {
		snap, err := capturer.Screenshot(ctx, delay)
		var sq image.Image
		if err == nil {
			sq = crop.Square(snap.Image)
		}
		p.pending <- shotResult{snap: snap, square: sq, err: err}
	}()
}

// Busy reports whether a screenshot is in flight.
func (p *SourcePresenter) Busy() bool { return p != nil && p.busy }

// Tick applies a finished screenshot, if any. Call from the UI thread.
func (p *SourcePresenter) Tick() {
	if p == nil || !p.busy {
		return
	}
	select {
	case res := <-p.pending:
		p.busy = false
		if p.window != nil {
			p.window.Show()
		}
		p.applyScreenshot(res)
	default:
	}
}

func (p *SourcePresenter) applyScreenshot(res shotResult) {
	if res.err != nil {
		if errors.Is(res.err, context.Canceled) {
			return
		}
		p.fail("screenshot", fmt.Errorf("Failed to take screenshot: %w", res.err))
		return
	}
	path, err := p.store.Save(storage.PrefixScreenshot, res.snap.Image, res.snap.CapturedAt)
	if err != nil {
		p.fail("screenshot", fmt.Errorf("Failed to save screenshot: %w", err))
		return
	}
	p.source.Set(res.snap.Image, path)
	p.results.Append(model.Entry{Original: res.snap.Image, Resized: res.square, Path: path})
	if p.gallery != nil {
		p.gallery.AddPair(res.snap.Image, res.square)
	}
	p.enableDownload()
	p.status("screenshot: " + path)
	if p.logger != nil {
		p.logger.Info("screenshot saved", "path", path)
	}
}

// Upload replaces the result list with the given files, each stretched to
// a square. Files that fail to decode are reported and skipped.
func (p *SourcePresenter) Upload(paths []string) {
	if p == nil || p.capturer == nil || len(paths) == 0 {
		return
	}
	entries := make([]model.Entry, len(paths))
	errs := make([]error, len(paths))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			snap, err := p.capturer.Open(path)
			if err != nil {
				errs[i] = err
				return nil
			}
			entries[i] = model.Entry{Original: snap.Image, Resized: crop.Square(snap.Image), Path: path}
			return nil
		})
	}
	_ = g.Wait()

	kept := entries[:0]
	var failed []string
	for i, e := range entries {
		if errs[i] != nil {
			failed = append(failed, errs[i].Error())
			continue
		}
		kept = append(kept, e)
	}
	p.results.Replace(kept)
	if p.gallery != nil {
		p.gallery.Clear()
		for _, e := range kept {
			p.gallery.AddPair(e.Original, e.Resized)
		}
	}
	if len(kept) > 0 {
		p.enableDownload()
	}
	if p.logger != nil {
		p.logger.Info("images uploaded", "count", len(kept), "failed", len(failed))
	}
	if len(failed) > 0 {
		p.fail("upload", fmt.Errorf("Failed to open images:\n%s", strings.Join(failed, "\n")))
	}
}

// DownloadAll writes every resized image as <name>_resized<ext>.
func (p *SourcePresenter) DownloadAll() {
	if p == nil {
		return
	}
	entries := p.results.Entries()
	if len(entries) == 0 {
		p.warn("Warning", "There are no resized images to save.")
		return
	}
	for i, e := range entries {
		name := e.Path
		if name == "" {
			name = fmt.Sprintf("image_%d", i+1)
		}
		if _, err := p.store.SaveNamed(p.store.ResizedName(name), e.Resized); err != nil {
			p.fail("download", fmt.Errorf("Failed to save images: %w", err))
			return
		}
	}
	if p.logger != nil {
		p.logger.Info("resized images saved", "count", len(entries), "dir", p.store.Directory())
	}
	if p.dialogs != nil {
		p.dialogs.Info("Success", fmt.Sprintf("%d images saved successfully in %s!", len(entries), p.store.Directory()))
	}
}

// Reset clears the results, the source image and the gallery.
func (p *SourcePresenter) Reset() {
	if p == nil {
		return
	}
	p.results.Reset()
	p.source.Clear()
	if p.gallery != nil {
		p.gallery.Clear()
	}
	if p.controls != nil {
		p.controls.SetDownloadEnabled(false)
		p.controls.SetStatus("")
	}
	if p.dialogs != nil {
		p.dialogs.Info("Reset", "Application has been reset successfully!")
	}
}

func (p *SourcePresenter) enableDownload() {
	if p.controls != nil {
		p.controls.SetDownloadEnabled(true)
	}
}

func (p *SourcePresenter) status(s string) {
	if p.controls != nil {
		p.controls.SetStatus(s)
	}
}

func (p *SourcePresenter) warn(title, msg string) {
	if p.logger != nil {
		p.logger.Warn(msg)
	}
	if p.dialogs != nil {
		p.dialogs.Warn(title, msg)
	}
}

func (p *SourcePresenter) fail(op string, err error) {
	if p.logger != nil {
		p.logger.Error(op+" failed", "error", err)
	}
	if p.dialogs != nil {
		p.dialogs.Error("Error", err.Error())
	}
}
