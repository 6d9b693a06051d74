package post

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Canvas is the letterbox background.
var Canvas = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Letterbox scales img to fit inside a size x size white canvas, keeping its
// aspect ratio, and centers it. Images smaller than the canvas are scaled up.
func Letterbox(img image.Image, size int) *image.NRGBA {
	bg := imaging.New(size, size, Canvas)
	b := img.Bounds()
	if b.Empty() || size <= 0 {
		return bg
	}
	ratio := float64(size) / float64(b.Dx())
	if r := float64(size) / float64(b.Dy()); r < ratio {
		ratio = r
	}
	w := int(float64(b.Dx()) * ratio)
	h := int(float64(b.Dy()) * ratio)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	scaled := imaging.Resize(img, w, h, imaging.CatmullRom)
	return imaging.PasteCenter(bg, scaled)
}
