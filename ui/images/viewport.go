package images

import "image"

// Viewport maps between source-image pixels and the scaled copy shown on
// screen. Scale is display/source and never exceeds 1.
type Viewport struct {
	Source  image.Point // source width, height
	Display image.Point // displayed width, height
	Scale   float64
}

// NewViewport fits a srcW x srcH image into maxW x maxH.
func NewViewport(srcW, srcH, maxW, maxH int) Viewport {
	w, h := FitSize(srcW, srcH, maxW, maxH)
	s := 1.0
	if srcW > 0 && w != srcW {
		s = float64(w) / float64(srcW)
	}
	return Viewport{Source: image.Pt(srcW, srcH), Display: image.Pt(w, h), Scale: s}
}

// ToSource converts a display point to source pixels, clamped to the source.
func (v Viewport) ToSource(p image.Point) image.Point {
	x, y := p.X, p.Y
	if v.Scale != 1 && v.Scale > 0 {
		x = int(float64(x)/v.Scale + 0.5)
		y = int(float64(y)/v.Scale + 0.5)
	}
	return image.Pt(clamp(x, 0, v.Source.X), clamp(y, 0, v.Source.Y))
}

// ToDisplay converts a source rectangle to display pixels.
func (v Viewport) ToDisplay(r image.Rectangle) image.Rectangle {
	if v.Scale == 1 || v.Scale <= 0 {
		return r
	}
	f := func(n int) int { return int(float64(n)*v.Scale + 0.5) }
	return image.Rect(f(r.Min.X), f(r.Min.Y), f(r.Max.X), f(r.Max.Y))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
