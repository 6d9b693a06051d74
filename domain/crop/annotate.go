package crop

import (
	"image"
	"image/color"
	"image/draw"
)

// Marker colors: green while dragging, red once a crop is committed.
var (
	DragColor   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	MarkerColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// MarkerWidth is the stroke width in pixels.
const MarkerWidth = 2

// StrokeRect draws the outline of r onto dst with the given stroke width.
// The stroke is drawn inward from r's edges and clipped to dst.
func StrokeRect(dst draw.Image, r image.Rectangle, c color.Color, width int) {
	r = r.Canon()
	if r.Empty() || width <= 0 {
		return
	}
	if width*2 > r.Dx() || width*2 > r.Dy() {
		draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
		return
	}
	u := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width),
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y),
		image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(dst.Bounds()), u, image.Point{}, draw.Src)
	}
}

// CloneRGBA returns a deep copy of src with the same bounds.
func CloneRGBA(src *image.RGBA) *image.RGBA {
	out := &image.RGBA{
		Pix:    make([]byte, len(src.Pix)),
		Stride: src.Stride,
		Rect:   src.Rect,
	}
	copy(out.Pix, src.Pix)
	return out
}

// ToRGBA converts any image into a zero-origin *image.RGBA.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
