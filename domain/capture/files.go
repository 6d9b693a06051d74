package capture

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// SupportedExtensions lists the file types accepted by the upload dialog.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif"}

// Supported reports whether path has an extension the decoder handles.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SupportedExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// OpenImage decodes the file at path, applying EXIF orientation.
func OpenImage(path string) (image.Image, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("open %s: unsupported image type", path)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return img, nil
}
