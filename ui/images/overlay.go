package images

import (
	"image"

	"github.com/soocke/leetsnap-go/domain/crop"
)

// DragFrame renders the in-progress selection: a copy of base with r
// outlined in the drag color. base is left untouched.
func DragFrame(base *image.RGBA, r image.Rectangle) *image.RGBA {
	if base == nil {
		return nil
	}
	out := crop.CloneRGBA(base)
	crop.StrokeRect(out, r, crop.DragColor, crop.MarkerWidth)
	return out
}
