package model

import "image"

// SourceModel holds the one current Source Image. Every Set or Clear bumps
// the generation so holders of an older image can tell it was replaced.
// The zero value is empty and usable. Accessed only from the UI thread.
type SourceModel struct {
	img  *image.RGBA
	path string
	gen  uint64
}

// Set replaces the current image. path is where it was saved, if anywhere.
func (m *SourceModel) Set(img *image.RGBA, path string) {
	if m == nil {
		return
	}
	m.img, m.path = img, path
	m.gen++
}

// Clear drops the current image.
func (m *SourceModel) Clear() {
	if m == nil || (m.img == nil && m.path == "") {
		return
	}
	m.img, m.path = nil, ""
	m.gen++
}

// Current returns the image (nil when empty) and its generation.
func (m *SourceModel) Current() (*image.RGBA, uint64) {
	if m == nil {
		return nil, 0
	}
	return m.img, m.gen
}

func (m *SourceModel) Path() string {
	if m == nil {
		return ""
	}
	return m.path
}

func (m *SourceModel) Generation() uint64 {
	if m == nil {
		return 0
	}
	return m.gen
}
