package titlecard

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// lineSpacing is the extra gap between lines of a multi-line block.
const lineSpacing = 4

func lineHeight(f font.Face) int {
	return f.Metrics().Height.Ceil() + lineSpacing
}

// measure returns the pixel width of the widest line in s.
func measure(f font.Face, s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		if lw := font.MeasureString(f, line).Ceil(); lw > w {
			w = lw
		}
	}
	return w
}

// drawText draws s with its top-left corner at (x, y). Each '\n' moves one
// line down.
func drawText(dst draw.Image, f font.Face, s string, x, y int, c color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: f}
	ascent := f.Metrics().Ascent.Ceil()
	for i, line := range strings.Split(s, "\n") {
		d.Dot = fixed.P(x, y+ascent+i*lineHeight(f))
		d.DrawString(line)
	}
}

// drawCentered draws s horizontally centered on a canvas of width size,
// shifted by dx.
func drawCentered(dst draw.Image, f font.Face, s string, size, y, dx int, c color.Color) int {
	w := measure(f, s)
	x := (size-w)/2 + dx
	drawText(dst, f, s, x, y, c)
	return x
}

// Wrap splits text into at most two lines no wider than maxWidth. Words that
// do not fit once the second line is full are dropped.
func Wrap(f font.Face, text string, maxWidth int) []string {
	var line1, line2 []string
	cur := &line1
	for _, word := range strings.Fields(text) {
		test := strings.Join(append(append([]string(nil), *cur...), word), " ")
		if font.MeasureString(f, test).Ceil() <= maxWidth {
			*cur = append(*cur, word)
			continue
		}
		if cur == &line1 {
			cur = &line2
			*cur = append(*cur, word)
			continue
		}
		break
	}
	out := []string{strings.Join(line1, " ")}
	if len(line2) > 0 {
		out = append(out, strings.Join(line2, " "))
	}
	return out
}
