// Package storage writes images to the output directory under timestamped
// names.
package storage

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// TimestampLayout is the filename timestamp, e.g. 20250101_120000.
const TimestampLayout = "20060102_150405"

// Filename prefixes used by the resizer.
const (
	PrefixCropped    = "cropped"
	PrefixPasted     = "pasted"
	PrefixScreenshot = "screenshot"
)

// maxCollisions bounds the suffix search for names taken within one second.
const maxCollisions = 1000

// WriteError reports a failed image write. The session that produced the
// image stays usable.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write %s: %v", e.Path, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// Storage persists images into a single directory.
type Storage struct {
	directory string
	format    string
	quality   int
}

// NewStorage returns a Storage writing to directory. format is "png" or
// "jpg"; anything else falls back to png.
func NewStorage(directory, format string, quality int) *Storage {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	switch format {
	case "jpg", "jpeg":
		format = "jpg"
	default:
		format = "png"
	}
	if quality <= 0 || quality > 100 {
		quality = 95
	}
	return &Storage{directory: directory, format: format, quality: quality}
}

func (s *Storage) Directory() string { return s.directory }
func (s *Storage) Format() string    { return s.format }

// EnsureDir creates the output directory if needed.
func (s *Storage) EnsureDir() error {
	if err := os.MkdirAll(s.directory, 0o755); err != nil {
		return &WriteError{Path: s.directory, Err: err}
	}
	return nil
}

// SaveCrop writes a normalized crop as cropped_<ts>.<ext>.
func (s *Storage) SaveCrop(img image.Image, at time.Time) (string, error) {
	return s.Save(PrefixCropped, img, at)
}

// Save writes img as <prefix>_<ts>.<ext>. A name already taken gets a
// numeric suffix (_2, _3, ...) so no file is ever overwritten.
func (s *Storage) Save(prefix string, img image.Image, at time.Time) (string, error) {
	if err := s.EnsureDir(); err != nil {
		return "", err
	}
	base := fmt.Sprintf("%s_%s", prefix, at.Format(TimestampLayout))
	for n := 1; n <= maxCollisions; n++ {
		name := base
		if n > 1 {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		path := filepath.Join(s.directory, name+"."+s.format)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", &WriteError{Path: path, Err: err}
		}
		return path, s.encode(f, path, img)
	}
	return "", &WriteError{Path: filepath.Join(s.directory, base), Err: os.ErrExist}
}

// SaveNamed writes img under an explicit file name, replacing any existing
// file. The encoder is chosen from the extension.
func (s *Storage) SaveNamed(name string, img image.Image) (string, error) {
	if err := s.EnsureDir(); err != nil {
		return "", err
	}
	path := filepath.Join(s.directory, name)
	f, err := os.Create(path)
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	return path, s.encode(f, path, img)
}

// ResizedName maps an original path to <name>_resized<ext>. Paths with no
// recognised extension get the storage format.
func (s *Storage) ResizedName(original string) string {
	base := filepath.Base(original)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if _, err := imaging.FormatFromExtension(ext); err != nil || ext == "" {
		ext = "." + s.format
	}
	return stem + "_resized" + ext
}

func (s *Storage) encode(f *os.File, path string, img image.Image) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		format = imaging.PNG
	}
	encErr := imaging.Encode(f, img, format, imaging.JPEGQuality(s.quality))
	closeErr := f.Close()
	if encErr != nil {
		return &WriteError{Path: path, Err: encErr}
	}
	if closeErr != nil {
		return &WriteError{Path: path, Err: closeErr}
	}
	return nil
}
