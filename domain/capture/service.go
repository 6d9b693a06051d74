package capture

import (
	"context"
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/soocke/leetsnap-go/domain/crop"
)

// Service acquires source images from the screen, the clipboard or disk and
// keeps instrumentation counters. Use NewService to construct an instance.
type Service struct {
	logger *slog.Logger

	grab      func() (*image.RGBA, error)
	clipboard func() (image.Image, error)
	open      func(string) (image.Image, error)
	now       func() time.Time

	captures     atomic.Uint64
	failures     atomic.Uint64
	captureNanos atomic.Uint64
	sequence     atomic.Uint64
	lastAt       atomic.Int64
}

// Option customises a Service.
type Option func(*Service)

// WithGrabber replaces the screen grabber.
func WithGrabber(fn func() (*image.RGBA, error)) Option { return func(s *Service) { s.grab = fn } }

// WithClipboard replaces the clipboard reader.
func WithClipboard(fn func() (image.Image, error)) Option {
	return func(s *Service) { s.clipboard = fn }
}

// WithOpener replaces the file decoder.
func WithOpener(fn func(string) (image.Image, error)) Option { return func(s *Service) { s.open = fn } }

// WithClock replaces time.Now.
func WithClock(fn func() time.Time) Option { return func(s *Service) { s.now = fn } }

func NewService(logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		logger:    logger,
		grab:      Grab,
		clipboard: ReadClipboardImage,
		open:      OpenImage,
		now:       time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Screenshot waits delay (so callers can hide their windows first) and then
// grabs the full screen. ctx cancels the wait.
func (s *Service) Screenshot(ctx context.Context, delay time.Duration) (Snapshot, error) {
	if delay > 0 {
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return Snapshot{}, ctx.Err()
		case <-t.C:
		}
	}
	start := s.now()
	img, err := s.grab()
	if err != nil {
		s.failures.Add(1)
		if s.logger != nil {
			s.logger.Error("capture full", "error", err)
		}
		return Snapshot{}, err
	}
	s.captureNanos.Add(uint64(s.now().Sub(start).Nanoseconds()))
	s.captures.Add(1)
	return s.snapshot(img, OriginScreen, ""), nil
}

// Clipboard returns the clipboard image. ErrNoClipboardImage is returned
// unwrapped so the UI can tell "nothing there" from a failure.
func (s *Service) Clipboard() (Snapshot, error) {
	img, err := s.clipboard()
	if err != nil {
		if err != ErrNoClipboardImage {
			s.failures.Add(1)
		}
		return Snapshot{}, err
	}
	return s.snapshot(crop.ToRGBA(img), OriginClipboard, ""), nil
}

// Open decodes an image file.
func (s *Service) Open(path string) (Snapshot, error) {
	img, err := s.open(path)
	if err != nil {
		s.failures.Add(1)
		return Snapshot{}, err
	}
	return s.snapshot(crop.ToRGBA(img), OriginFile, path), nil
}

func (s *Service) Stats() Stats {
	captures := s.captures.Load()
	total := s.captureNanos.Load()
	var avg time.Duration
	if captures > 0 {
		avg = time.Duration(total / captures)
	}
	var last time.Time
	if ns := s.lastAt.Load(); ns != 0 {
		last = time.Unix(0, ns)
	}
	return Stats{
		Captures:   captures,
		Failures:   s.failures.Load(),
		AvgCapture: avg,
		LastAt:     last,
	}
}

func (s *Service) snapshot(img *image.RGBA, origin Origin, path string) Snapshot {
	at := s.now()
	s.lastAt.Store(at.UnixNano())
	snap := Snapshot{
		Image:      img,
		Origin:     origin,
		Path:       path,
		CapturedAt: at,
		Sequence:   s.sequence.Add(1),
	}
	if s.logger != nil {
		b := img.Bounds()
		s.logger.Debug("capture.acquired", "origin", origin.String(), "width", b.Dx(), "height", b.Dy(), "seq", snap.Sequence)
	}
	return snap
}
