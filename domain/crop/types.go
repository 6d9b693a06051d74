package crop

import (
	"errors"
	"image"
	"time"
)

// State enumerates the pointer states of a crop session.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// DefaultMinSelection is the largest drag extent (per axis) that is still
// treated as an accidental click.
const DefaultMinSelection = 10

// ErrNoSource is returned when a session is requested without a source image.
var ErrNoSource = errors.New("crop: no source image")

// ErrClosed is returned by handlers invoked after Done.
var ErrClosed = errors.New("crop: session closed")

// Result is one completed, persisted crop.
type Result struct {
	Rect   image.Rectangle // normalized, in source pixels
	Crop   *image.RGBA     // source restricted to Rect
	Square image.Image     // Crop stretched to max(w,h) square
	Path   string
	At     time.Time
}

// Outcome reports what a release produced. Result is nil when the selection
// was degenerate or the write failed.
type Outcome struct {
	Degenerate bool
	Result     *Result
}

// Summary is emitted when a session ends.
type Summary struct {
	ID    string
	Count int
}

// Saver persists a normalized square and returns the written path.
type Saver interface {
	SaveCrop(img image.Image, at time.Time) (string, error)
}

// Listener receives session notifications on the event-loop thread.
type Listener interface {
	CropCompleted(r Result)
	SessionComplete(s Summary)
}
