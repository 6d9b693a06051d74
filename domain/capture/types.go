package capture

import (
	"image"
	"time"
)

// Origin says where a captured image came from.
type Origin int

const (
	OriginScreen Origin = iota
	OriginClipboard
	OriginFile
)

func (o Origin) String() string {
	switch o {
	case OriginScreen:
		return "screen"
	case OriginClipboard:
		return "clipboard"
	case OriginFile:
		return "file"
	default:
		return "unknown"
	}
}

// Snapshot carries a captured image and its metadata.
type Snapshot struct {
	Image      *image.RGBA
	Origin     Origin
	Path       string
	CapturedAt time.Time
	Sequence   uint64
}

// Stats summarises capture behaviour for instrumentation.
type Stats struct {
	Captures   uint64
	Failures   uint64
	AvgCapture time.Duration
	LastAt     time.Time
}
