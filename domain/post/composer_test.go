package post

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soocke/leetsnap-go/config"
	"github.com/soocke/leetsnap-go/domain/titlecard"
)

type stubCards struct{ err error }

func (s stubCards) Simple(c titlecard.Content) (image.Image, error) {
	if s.err != nil {
		return nil, s.err
	}
	return imaging.New(40, 40, color.NRGBA{R: 30, G: 30, B: 30, A: 255}), nil
}

var content = titlecard.Content{
	Name:       "1123. Lowest Common Ancestor of Deepest Leaves",
	Difficulty: "Medium",
	Tags:       "DFS, BFS",
	Date:       time.Date(2025, 4, 4, 0, 0, 0, 0, time.UTC),
}

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, imaging.Save(imaging.New(w, h, color.NRGBA{B: 255, A: 255}), p))
	return p
}

func newComposer(t *testing.T, root string, cards CardRenderer) *Composer {
	t.Helper()
	c, err := NewComposer(root, 100, 90, config.DefaultHashtags, cards, nil)
	require.NoError(t, err)
	return c
}

func TestFolderName(t *testing.T) {
	assert.Equal(t, "Leetcode_2025-04-04_1123", FolderName(content.Date, content.Name))
}

func TestDescription_MatchesCaptionLayout(t *testing.T) {
	c := newComposer(t, t.TempDir(), stubCards{})
	got, err := c.Description(content, []string{
		"Traverse tree to find the deepest level",
		"Backtrack to find common ancestor of deepest leaves",
		"Used DFS to calculate depth",
	})
	require.NoError(t, err)
	want := "✨ Leetcode Daily Challenge - 2025-04-04\n" +
		"🔹 Problem: 1123. Lowest Common Ancestor of Deepest Leaves\n" +
		"🧠 Difficulty: Medium\n" +
		"🏷️ Tags: DFS, BFS\n" +
		"\n📌 Approach:\n" +
		"1. Traverse tree to find the deepest level\n" +
		"2. Backtrack to find common ancestor of deepest leaves\n" +
		"3. Used DFS to calculate depth\n" +
		"\n#leetcode #dsa #interviewprep #python #ai #coding"
	assert.Equal(t, want, got)
}

func TestDescription_DefaultApproachPlaceholders(t *testing.T) {
	c := newComposer(t, t.TempDir(), stubCards{})
	got, err := c.Description(content, nil)
	require.NoError(t, err)
	assert.Contains(t, got, "📌 Approach:\n1. \n2. \n3. \n")
}

func TestLetterbox_WideImageCenteredOnWhite(t *testing.T) {
	img := imaging.New(200, 50, color.NRGBA{R: 255, A: 255})
	out := Letterbox(img, 100)
	require.Equal(t, image.Rect(0, 0, 100, 100), out.Bounds())
	assert.Equal(t, Canvas, out.NRGBAAt(50, 5))
	assert.Equal(t, Canvas, out.NRGBAAt(50, 94))
	mid := out.NRGBAAt(50, 50)
	assert.Equal(t, uint8(255), mid.R)
	assert.Less(t, int(mid.G), 10)
}

func TestLetterbox_ScalesUpSmallImages(t *testing.T) {
	img := imaging.New(10, 20, color.NRGBA{G: 255, A: 255})
	out := Letterbox(img, 100)
	// 10x20 grows to 50x100, leaving 25px bars left and right.
	assert.Equal(t, Canvas, out.NRGBAAt(10, 50))
	assert.Equal(t, uint8(255), out.NRGBAAt(50, 50).G)
	assert.Equal(t, uint8(255), out.NRGBAAt(50, 1).G)
}

func TestCompose_RequiresTwoImages(t *testing.T) {
	c := newComposer(t, t.TempDir(), stubCards{})
	_, err := c.Compose(context.Background(), Request{Images: []string{"a.png"}, Content: content})
	assert.ErrorIs(t, err, ErrNeedTwoImages)

	_, err = c.Compose(context.Background(), Request{Images: []string{"a", "b", "c"}, Content: content})
	assert.ErrorIs(t, err, ErrNeedTwoImages)
}

func TestCompose_WritesAllAssets(t *testing.T) {
	src := t.TempDir()
	root := t.TempDir()
	c := newComposer(t, root, stubCards{})

	res, err := c.Compose(context.Background(), Request{
		Images:  []string{writePNG(t, src, "p.png", 300, 120), writePNG(t, src, "s.png", 80, 160)},
		Content: content,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "Leetcode_2025-04-04_1123"), res.Dir)
	require.Len(t, res.Files, 4)

	for _, name := range []string{ProblemFile, SolutionFile, TitleFile} {
		img, err := imaging.Open(filepath.Join(res.Dir, name))
		require.NoError(t, err, name)
		if name != TitleFile {
			assert.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds(), name)
		}
	}
	desc, err := os.ReadFile(filepath.Join(res.Dir, DescriptionFile))
	require.NoError(t, err)
	assert.Contains(t, string(desc), "🔹 Problem: 1123. Lowest Common Ancestor of Deepest Leaves")
}

func TestCompose_RenderFailureWritesNothing(t *testing.T) {
	src := t.TempDir()
	root := t.TempDir()
	c := newComposer(t, root, stubCards{err: errors.New("no fonts")})

	_, err := c.Compose(context.Background(), Request{
		Images:  []string{writePNG(t, src, "p.png", 30, 30), writePNG(t, src, "s.png", 30, 30)},
		Content: content,
	})
	require.Error(t, err)
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCompose_MissingScreenshot(t *testing.T) {
	c := newComposer(t, t.TempDir(), stubCards{})
	_, err := c.Compose(context.Background(), Request{
		Images:  []string{filepath.Join(t.TempDir(), "gone.png"), filepath.Join(t.TempDir(), "also.png")},
		Content: content,
	})
	assert.Error(t, err)
}
