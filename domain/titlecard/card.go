// Package titlecard renders the square "Leetcode Daily Challenge" cards.
package titlecard

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"

	"github.com/soocke/leetsnap-go/domain/leetcode"
)

// Title is the card heading.
const Title = "Leetcode Daily Challenge"

// DefaultSize is the Instagram square edge.
const DefaultSize = 1080

// FilePrefix names saved daily cards: leetcode_daily_<ts>.png.
const FilePrefix = "leetcode_daily"

var (
	FallbackBackground = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	OverlayColor       = color.NRGBA{R: 0, G: 0, B: 0, A: 180}
	TextColor          = color.White
)

// Content is what a card shows.
type Content struct {
	Name       string // "<number>. <title>"
	Difficulty string
	Tags       string
	Date       time.Time
}

// ContentFor builds card content from a fetched problem shown on day.
func ContentFor(p leetcode.Problem, day time.Time) Content {
	return Content{Name: p.Name(), Difficulty: p.Difficulty, Tags: p.TagList(), Date: day}
}

// Renderer draws cards at a fixed size.
type Renderer struct {
	Size       int
	Background string // optional image path, resized to Size x Size
	Fonts      *Fonts
	Logger     *slog.Logger
}

// NewRenderer loads fonts from fontsDir and returns a Renderer.
func NewRenderer(size int, background, fontsDir string, logger *slog.Logger) (*Renderer, error) {
	if size <= 0 {
		size = DefaultSize
	}
	fonts, err := LoadFonts(fontsDir, logger)
	if err != nil {
		return nil, err
	}
	return &Renderer{Size: size, Background: background, Fonts: fonts, Logger: logger}, nil
}

// background returns the card base: the configured image stretched to the
// card size, or a flat dark canvas when it cannot be loaded.
func (r *Renderer) background() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, r.Size, r.Size))
	if r.Background != "" {
		src, err := imaging.Open(r.Background)
		if err == nil {
			bg := imaging.Resize(src, r.Size, r.Size, imaging.Lanczos)
			draw.Draw(dst, dst.Bounds(), bg, image.Point{}, draw.Src)
			return dst
		}
		if r.Logger != nil {
			r.Logger.Warn("card background unavailable", "path", r.Background, "error", err)
		}
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(FallbackBackground), image.Point{}, draw.Src)
	return dst
}

// Daily renders the centered card: background, dark overlay, title with a
// gold star, date, wrapped problem name, difficulty and tags.
func (r *Renderer) Daily(c Content) (image.Image, error) {
	size := r.Size
	dst := r.background()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(OverlayColor), image.Point{}, draw.Over)

	titleFace, err := face(r.Fonts.Title, 60)
	if err != nil {
		return nil, err
	}
	defer titleFace.Close()
	textFace, err := face(r.Fonts.Text, 45)
	if err != nil {
		return nil, err
	}
	defer textFace.Close()

	const titleY = 180
	tw := measure(titleFace, Title)
	drawText(dst, titleFace, Title, (size-tw)/2-30, titleY, TextColor)

	starR := 26.0
	starX := float64((size-tw)/2+tw-15) + starR
	starY := float64(titleY) + float64(titleFace.Metrics().Ascent.Ceil())/2 + 6
	drawStar(dst, starX, starY, starR, StarColor)

	drawCentered(dst, titleFace, c.Date.Format("02/01/2006"), size, titleY+120, -30, TextColor)

	lines := Wrap(textFace, c.Name, size-100)
	drawCentered(dst, textFace, lines[0], size, titleY+280, 0, TextColor)
	if len(lines) > 1 {
		drawCentered(dst, textFace, lines[1], size, titleY+340, 0, TextColor)
	}

	drawCentered(dst, textFace, "\nDifficulty : "+c.Difficulty, size, titleY+400, 0, TextColor)
	drawCentered(dst, textFace, "\nTags : "+c.Tags, size, titleY+520, 0, TextColor)

	if r.Logger != nil {
		r.Logger.Debug("daily card rendered", "name", c.Name, "lines", len(lines), "title_font", r.Fonts.TitleName)
	}
	return dst, nil
}

// Simple renders the left-aligned card used in composed posts. Layout
// coordinates are defined for a 1080 canvas and scaled to the renderer size.
func (r *Renderer) Simple(c Content) (image.Image, error) {
	size := r.Size
	scale := float64(size) / DefaultSize
	px := func(v int) int { return int(float64(v)*scale + 0.5) }

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(FallbackBackground), image.Point{}, draw.Src)

	big, err := face(r.Fonts.Title, 70*scale)
	if err != nil {
		return nil, err
	}
	defer big.Close()
	small, err := face(r.Fonts.Text, 40*scale)
	if err != nil {
		return nil, err
	}
	defer small.Close()

	x := px(80)
	drawText(dst, big, Title, x, px(100), TextColor)
	starR := 30 * scale
	starX := float64(x+font.MeasureString(big, Title+" ").Ceil()) + starR
	drawStar(dst, starX, float64(px(100))+float64(big.Metrics().Ascent.Ceil())/2, starR, StarColor)

	rows := []struct {
		text string
		y    int
	}{
		{c.Date.Format("02/01/2006"), 230},
		{c.Name, 300},
		{"Difficulty : " + c.Difficulty, 370},
		{"Tags : " + c.Tags, 440},
	}
	for _, row := range rows {
		drawText(dst, small, strings.TrimSpace(row.text), x, px(row.y), TextColor)
	}
	return dst, nil
}
