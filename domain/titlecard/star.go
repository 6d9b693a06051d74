package titlecard

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// StarColor is the gold used for the star next to the card title.
var StarColor = color.RGBA{R: 255, G: 215, B: 0, A: 255}

// drawStar fills a five-pointed star centered at (cx, cy).
func drawStar(dst draw.Image, cx, cy, radius float64, c color.Color) {
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	inner := radius * 0.45
	for i := 0; i < 10; i++ {
		rad := radius
		if i%2 == 1 {
			rad = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		x := float32(cx + rad*math.Cos(a) - float64(b.Min.X))
		y := float32(cy + rad*math.Sin(a) - float64(b.Min.Y))
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
	r.DrawOp = draw.Over
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}
