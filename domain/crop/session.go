package crop

import (
	"image"
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Options tunes a Session. The zero value uses package defaults.
type Options struct {
	MinSelection int
	Now          func() time.Time
	Logger       *slog.Logger
}

// Session is the explicit state record of one interactive crop session.
// Handlers are called serially from the UI event loop; Session does no locking.
type Session struct {
	id        string
	source    *image.RGBA
	annotated *image.RGBA
	revision  int
	state     State
	anchor    image.Point
	current   image.Point
	minSel    int
	saver     Saver
	listeners []Listener
	results   []Result
	now       func() time.Time
	logger    *slog.Logger
}

// NewSession starts a session over source. source is never modified.
func NewSession(source image.Image, saver Saver, opts Options) (*Session, error) {
	if isNil(source) || source.Bounds().Empty() {
		return nil, ErrNoSource
	}
	src := ToRGBA(source)
	minSel := opts.MinSelection
	if minSel <= 0 {
		minSel = DefaultMinSelection
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	s := &Session{
		id:        uuid.NewString(),
		source:    src,
		annotated: CloneRGBA(src),
		state:     StateIdle,
		minSel:    minSel,
		saver:     saver,
		now:       now,
		logger:    opts.Logger,
	}
	if s.logger != nil {
		b := src.Bounds()
		s.logger.Debug("crop session started", "session", s.id, "width", b.Dx(), "height", b.Dy())
	}
	return s, nil
}

// isNil also catches typed nil pointers stored in the interface.
func isNil(img image.Image) bool {
	if img == nil {
		return true
	}
	v := reflect.ValueOf(img)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (s *Session) AddListener(l Listener) {
	if l != nil {
		s.listeners = append(s.listeners, l)
	}
}

func (s *Session) ID() string        { return s.id }
func (s *Session) State() State      { return s.state }
func (s *Session) Count() int        { return len(s.results) }
func (s *Session) Revision() int     { return s.revision }
func (s *Session) MinSelection() int { return s.minSel }

// Source returns the unmodified source image.
func (s *Session) Source() *image.RGBA { return s.source }

// Annotated returns the running copy of the source with committed markers.
// Callers must treat it as read-only.
func (s *Session) Annotated() *image.RGBA { return s.annotated }

// Results returns the completed crops in the order they were drawn.
func (s *Session) Results() []Result {
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// Press anchors a new drag. A press while already dragging re-anchors.
func (s *Session) Press(p image.Point) error {
	if s.state == StateClosed {
		return ErrClosed
	}
	s.anchor, s.current = p, p
	s.transition(StateDragging)
	return nil
}

// Move updates the pointer while dragging and returns the in-progress
// rectangle. ok is false when no drag is active.
func (s *Session) Move(p image.Point) (r image.Rectangle, ok bool) {
	if s.state != StateDragging {
		return image.Rectangle{}, false
	}
	s.current = p
	return Normalize(s.anchor, p), true
}

// Dragging returns the in-progress rectangle, if any.
func (s *Session) Dragging() (image.Rectangle, bool) {
	if s.state != StateDragging {
		return image.Rectangle{}, false
	}
	return Normalize(s.anchor, s.current), true
}

// Release ends the drag at p. Degenerate drags produce no output. A save
// failure is returned as an error; the session stays usable.
func (s *Session) Release(p image.Point) (Outcome, error) {
	if s.state == StateClosed {
		return Outcome{}, ErrClosed
	}
	if s.state != StateDragging {
		return Outcome{}, nil
	}
	anchor := s.anchor
	s.transition(StateIdle)

	if Degenerate(anchor, p, s.minSel) {
		if s.logger != nil {
			s.logger.Debug("selection discarded", "session", s.id, "from", anchor, "to", p)
		}
		return Outcome{Degenerate: true}, nil
	}
	r := Normalize(anchor, p).Intersect(s.source.Bounds())
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return Outcome{Degenerate: true}, nil
	}

	StrokeRect(s.annotated, r, MarkerColor, MarkerWidth)
	s.revision++

	cropped := Extract(s.source, r)
	square := Square(cropped)
	at := s.now()
	path := ""
	if s.saver != nil {
		var err error
		path, err = s.saver.SaveCrop(square, at)
		if err != nil {
			if s.logger != nil {
				s.logger.Error("crop save failed", "session", s.id, "rect", r, "error", err)
			}
			return Outcome{}, err
		}
	}
	res := Result{Rect: r, Crop: cropped, Square: square, Path: path, At: at}
	s.results = append(s.results, res)
	if s.logger != nil {
		s.logger.Info("crop completed", "session", s.id, "rect", r, "square", square.Bounds().Dx(), "path", path)
	}
	for _, l := range s.listeners {
		l.CropCompleted(res)
	}
	return Outcome{Result: &res}, nil
}

// Done closes the session. An in-progress drag is abandoned. Calling Done
// more than once notifies listeners only the first time.
func (s *Session) Done() Summary {
	sum := Summary{ID: s.id, Count: len(s.results)}
	if s.state == StateClosed {
		return sum
	}
	if s.state == StateDragging && s.logger != nil {
		s.logger.Debug("drag abandoned", "session", s.id)
	}
	s.transition(StateClosed)
	for _, l := range s.listeners {
		l.SessionComplete(sum)
	}
	return sum
}

func (s *Session) transition(next State) {
	prev := s.state
	if prev == next {
		return
	}
	s.state = next
	if s.logger != nil {
		s.logger.Debug("crop state transition", "session", s.id, "from", prev.String(), "to", next.String())
	}
}
