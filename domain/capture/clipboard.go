package capture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
	"golang.design/x/clipboard"
)

// ErrNoClipboardImage is returned when the clipboard holds no image.
var ErrNoClipboardImage = errors.New("capture: no image in clipboard")

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// ReadClipboardImage returns the clipboard image, decoded from the PNG
// payload the clipboard package exposes.
func ReadClipboardImage() (image.Image, error) {
	clipboardOnce.Do(func() { clipboardErr = clipboard.Init() })
	if clipboardErr != nil {
		return nil, fmt.Errorf("clipboard init: %w", clipboardErr)
	}
	data := clipboard.Read(clipboard.FmtImage)
	if len(data) == 0 {
		return nil, ErrNoClipboardImage
	}
	return decodeClipboard(data)
}

func decodeClipboard(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode clipboard image: %w", err)
	}
	return img, nil
}
