package presenter

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"time"

	"github.com/soocke/leetsnap-go/domain/capture"
	"github.com/soocke/leetsnap-go/domain/storage"
)

type mockSurface struct {
	opened, closed int
	shown          []image.Image
	handlers       SurfaceHandlers
}

func (s *mockSurface) Open(img image.Image, h SurfaceHandlers) {
	s.opened++
	s.handlers = h
	s.shown = append(s.shown, img)
}
func (s *mockSurface) Show(img image.Image) { s.shown = append(s.shown, img) }
func (s *mockSurface) Close()               { s.closed++ }

type mockGallery struct {
	pairs   [][2]image.Image
	singles []string
	cleared int
}

func (g *mockGallery) AddPair(o, r image.Image) {
	g.pairs = append(g.pairs, [2]image.Image{o, r})
}

func (g *mockGallery) AddSingle(caption string, _ image.Image) {
	g.singles = append(g.singles, caption)
}

func (g *mockGallery) Clear() {
	g.cleared++
	g.pairs = nil
	g.singles = nil
}

type mockDialogs struct{ infos, warns, errs []string }

func (d *mockDialogs) Info(_, msg string)  { d.infos = append(d.infos, msg) }
func (d *mockDialogs) Warn(_, msg string)  { d.warns = append(d.warns, msg) }
func (d *mockDialogs) Error(_, msg string) { d.errs = append(d.errs, msg) }

type mockControls struct {
	download bool
	status   string
}

func (c *mockControls) SetDownloadEnabled(b bool) { c.download = b }
func (c *mockControls) SetStatus(s string)        { c.status = s }

type mockWindow struct{ hidden, shown int }

func (w *mockWindow) Hide() { w.hidden++ }
func (w *mockWindow) Show() { w.shown++ }

// mockSaver satisfies crop.Saver; fail makes the next saves return a WriteError.
type mockSaver struct {
	saved []string
	fail  bool
}

func (s *mockSaver) SaveCrop(img image.Image, at time.Time) (string, error) {
	if s.fail {
		return "", &storage.WriteError{Path: "out/x.png", Err: errors.New("disk full")}
	}
	p := filepath.Join("out", "cropped_"+at.Format(storage.TimestampLayout)+"_"+string(rune('a'+len(s.saved)))+".png")
	s.saved = append(s.saved, p)
	return p, nil
}

type mockStore struct {
	saved  map[string]image.Image
	fail   bool
	prefix []string
}

func newMockStore() *mockStore { return &mockStore{saved: map[string]image.Image{}} }

func (s *mockStore) Save(prefix string, img image.Image, at time.Time) (string, error) {
	if s.fail {
		return "", &storage.WriteError{Path: prefix, Err: errors.New("denied")}
	}
	s.prefix = append(s.prefix, prefix)
	p := filepath.Join("out", prefix+"_"+at.Format(storage.TimestampLayout)+".png")
	s.saved[p] = img
	return p, nil
}

func (s *mockStore) SaveNamed(name string, img image.Image) (string, error) {
	if s.fail {
		return "", &storage.WriteError{Path: name, Err: errors.New("denied")}
	}
	p := filepath.Join("out", name)
	s.saved[p] = img
	return p, nil
}

func (s *mockStore) ResizedName(original string) string {
	base := filepath.Base(original)
	ext := filepath.Ext(base)
	if ext == "" {
		ext = ".png"
	}
	return base[:len(base)-len(filepath.Ext(base))] + "_resized" + ext
}

func (s *mockStore) Directory() string { return "out" }

type mockCapturer struct {
	shot    *image.RGBA
	shotErr error
	clip    *image.RGBA
	clipErr error
	files   map[string]*image.RGBA
	gate    chan struct{}
	delays  []time.Duration
}

func (c *mockCapturer) Screenshot(ctx context.Context, delay time.Duration) (capture.Snapshot, error) {
	if c.gate != nil {
		<-c.gate
	}
	c.delays = append(c.delays, delay)
	if c.shotErr != nil {
		return capture.Snapshot{}, c.shotErr
	}
	return capture.Snapshot{Image: c.shot, Origin: capture.OriginScreen, CapturedAt: time.Unix(1700000000, 0)}, nil
}

func (c *mockCapturer) Clipboard() (capture.Snapshot, error) {
	if c.clipErr != nil {
		return capture.Snapshot{}, c.clipErr
	}
	return capture.Snapshot{Image: c.clip, Origin: capture.OriginClipboard, CapturedAt: time.Unix(1700000000, 0)}, nil
}

func (c *mockCapturer) Open(path string) (capture.Snapshot, error) {
	img, ok := c.files[path]
	if !ok {
		return capture.Snapshot{}, errors.New("open " + path + ": not found")
	}
	return capture.Snapshot{Image: img, Origin: capture.OriginFile, Path: path}, nil
}

func solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	return img
}
