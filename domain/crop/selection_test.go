package crop

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegenerate(t *testing.T) {
	tests := []struct {
		a, b image.Point
		want bool
	}{
		{image.Pt(0, 0), image.Pt(10, 50), true},
		{image.Pt(0, 0), image.Pt(11, 11), false},
		{image.Pt(50, 50), image.Pt(55, 58), true},
		{image.Pt(300, 400), image.Pt(100, 100), false},
		{image.Pt(0, 0), image.Pt(0, 0), true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Degenerate(tt.a, tt.b, DefaultMinSelection), "%v -> %v", tt.a, tt.b)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, image.Rect(10, 20, 30, 40), Normalize(image.Pt(30, 20), image.Pt(10, 40)))
	assert.Equal(t, image.Rect(10, 20, 30, 40), Normalize(image.Pt(10, 40), image.Pt(30, 20)))
}

func TestSquare_StretchesShortAxis(t *testing.T) {
	wide := image.NewRGBA(image.Rect(0, 0, 40, 10))
	sq := Square(wide)
	assert.Equal(t, image.Rect(0, 0, 40, 40), sq.Bounds())

	tall := image.NewRGBA(image.Rect(0, 0, 7, 19))
	assert.Equal(t, image.Rect(0, 0, 19, 19), Square(tall).Bounds())
}

func TestSquare_FlatColorSurvivesResample(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 12))
	fill := color.RGBA{R: 10, G: 200, B: 90, A: 255}
	for y := 0; y < 12; y++ {
		for x := 0; x < 30; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	sq := Square(img)
	r, g, b, a := sq.At(15, 15).RGBA()
	assert.InDelta(t, fill.R, r>>8, 1)
	assert.InDelta(t, fill.G, g>>8, 1)
	assert.InDelta(t, fill.B, b>>8, 1)
	assert.EqualValues(t, 255, a>>8)
}

func TestExtract_ClipsAndCopies(t *testing.T) {
	src := gradient(20, 20)
	out := Extract(src, image.Rect(15, 15, 40, 40))
	assert.Equal(t, image.Rect(0, 0, 5, 5), out.Bounds())
	assert.Equal(t, src.RGBAAt(15, 15), out.RGBAAt(0, 0))

	out.SetRGBA(0, 0, color.RGBA{})
	assert.NotEqual(t, color.RGBA{}, src.RGBAAt(15, 15))
}

func TestStrokeRect_DrawsOutlineOnly(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 50, 50))
	StrokeRect(dst, image.Rect(10, 10, 40, 40), MarkerColor, MarkerWidth)

	assert.Equal(t, MarkerColor, dst.RGBAAt(10, 10))
	assert.Equal(t, MarkerColor, dst.RGBAAt(39, 25))
	assert.Equal(t, MarkerColor, dst.RGBAAt(25, 38))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(25, 25))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(40, 40))
}

func TestToRGBA_ReoriginsSubImages(t *testing.T) {
	src := gradient(30, 30)
	sub := src.SubImage(image.Rect(10, 10, 20, 20))
	out := ToRGBA(sub)
	assert.Equal(t, image.Rect(0, 0, 10, 10), out.Bounds())
	assert.Equal(t, src.RGBAAt(10, 10), out.RGBAAt(0, 0))
}
