package view

import (
	"image"

	"github.com/soocke/leetsnap-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Gallery shows the most recent Original / Resized (1:1) pairs, newest
// first. Older pairs drop off the screen but stay in the results model.
type Gallery interface {
	AddPair(original, resized image.Image)
	AddSingle(caption string, img image.Image)
	Clear()
}

type galleryCell struct {
	frame  *FrameWidget
	photos []*Img
}

type gallery struct {
	parent  *FrameWidget
	maxSide int
	limit   int
	cells   []*galleryCell
}

// NewGallery grids an empty gallery frame at row. maxSide caps the displayed
// size of each image; limit is how many cells stay on screen.
func NewGallery(row, maxSide, limit int) Gallery {
	if limit < 1 {
		limit = 1
	}
	f := Frame(Borderwidth(1), Relief("sunken"))
	Grid(f, Row(row), Column(0), Columnspan(3), Sticky("nsew"), Padx("0.4m"), Pady("0.4m"))
	return &gallery{parent: f, maxSide: maxSide, limit: limit}
}

func (g *gallery) AddPair(original, resized image.Image) {
	if g == nil || original == nil || resized == nil {
		return
	}
	half := g.maxSide / 2
	cell := &galleryCell{frame: g.parent.Frame(Borderwidth(1), Relief("groove"))}
	for i, it := range []struct {
		caption string
		img     image.Image
	}{{"Original", original}, {"Resized (1:1)", resized}} {
		lbl := cell.frame.Label(Txt(it.caption))
		Grid(lbl, Row(0), Column(i), Padx("2m"))
		p := NewPhoto(Data(images.EncodePNG(images.ScaleToFit(it.img, half, half))))
		cell.photos = append(cell.photos, p)
		Grid(cell.frame.Label(Image(p), Borderwidth(1), Relief("sunken")), Row(1), Column(i), Padx("2m"), Pady("1m"))
	}
	g.push(cell)
}

func (g *gallery) AddSingle(caption string, img image.Image) {
	if g == nil || img == nil {
		return
	}
	cell := &galleryCell{frame: g.parent.Frame(Borderwidth(1), Relief("groove"))}
	Grid(cell.frame.Label(Txt(caption)), Row(0), Column(0))
	p := NewPhoto(Data(images.EncodePNG(images.ScaleToFit(img, g.maxSide, g.maxSide))))
	cell.photos = append(cell.photos, p)
	Grid(cell.frame.Label(Image(p), Borderwidth(1), Relief("sunken")), Row(1), Column(0), Pady("1m"))
	g.push(cell)
}

func (g *gallery) Clear() {
	if g == nil {
		return
	}
	for _, c := range g.cells {
		c.destroy()
	}
	g.cells = nil
}

// push adds cell on top and drops the oldest cells past the limit.
func (g *gallery) push(cell *galleryCell) {
	g.cells = append(g.cells, cell)
	for len(g.cells) > g.limit {
		g.cells[0].destroy()
		g.cells = g.cells[1:]
	}
	n := len(g.cells)
	for i, c := range g.cells {
		Grid(c.frame, In(g.parent), Row(n-1-i), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.6m"))
	}
}

func (c *galleryCell) destroy() {
	for _, p := range c.photos {
		p.Delete()
	}
	c.photos = nil
	if c.frame != nil {
		Destroy(c.frame)
		c.frame = nil
	}
}
