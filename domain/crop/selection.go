package crop

import (
	"image"

	"github.com/disintegration/imaging"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Degenerate reports whether the drag from a to b is too small on either axis.
func Degenerate(a, b image.Point, min int) bool {
	return abs(b.X-a.X) <= min || abs(b.Y-a.Y) <= min
}

// Normalize orders the corners so that Min <= Max on both axes.
func Normalize(a, b image.Point) image.Rectangle {
	return image.Rectangle{Min: a, Max: b}.Canon()
}

// Extract copies the pixels of src inside r into a new zero-origin RGBA.
// r is clipped to the source bounds; no resampling takes place.
func Extract(src *image.RGBA, r image.Rectangle) *image.RGBA {
	r = r.Intersect(src.Bounds())
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	if r.Empty() {
		return out
	}
	rowBytes := r.Dx() * 4
	for y := 0; y < r.Dy(); y++ {
		so := src.PixOffset(r.Min.X, r.Min.Y+y)
		do := y * out.Stride
		copy(out.Pix[do:do+rowBytes], src.Pix[so:so+rowBytes])
	}
	return out
}

// Square stretches img to max(w,h) on both axes with a Lanczos filter.
// The shorter axis is stretched; the image is never padded.
func Square(img image.Image) image.Image {
	b := img.Bounds()
	m := b.Dx()
	if b.Dy() > m {
		m = b.Dy()
	}
	if m == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	return imaging.Resize(img, m, m, imaging.Lanczos)
}
