package storage

import (
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
)

func solid(w, h int) *image.NRGBA {
	return imaging.New(w, h, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
}

var fixed = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestSaveCrop_NameAndContent(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage(dir, "png", 0)

	path, err := s.SaveCrop(solid(30, 30), fixed)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cropped_20250101_120000.png"), path)

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 30, img.Bounds().Dx())
}

func TestSave_CollisionGetsSuffix(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage(dir, "png", 0)

	first, err := s.SaveCrop(solid(4, 4), fixed)
	require.NoError(t, err)
	second, err := s.SaveCrop(solid(4, 4), fixed)
	require.NoError(t, err)
	third, err := s.SaveCrop(solid(4, 4), fixed)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, filepath.Join(dir, "cropped_20250101_120000_2.png"), second)
	assert.Equal(t, filepath.Join(dir, "cropped_20250101_120000_3.png"), third)
}

func TestSave_JPEGFormat(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage(dir, "JPEG", 80)
	assert.Equal(t, "jpg", s.Format())

	path, err := s.Save(PrefixScreenshot, solid(8, 8), fixed)
	require.NoError(t, err)
	assert.Equal(t, ".jpg", filepath.Ext(path))
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	s := NewStorage(dir, "png", 0)

	_, err := s.Save(PrefixPasted, solid(2, 2), fixed)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSave_WriteErrorIsTyped(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	s := NewStorage(filepath.Join(blocker, "sub"), "png", 0)

	_, err := s.SaveCrop(solid(2, 2), fixed)
	require.Error(t, err)
	var we *WriteError
	require.True(t, errors.As(err, &we))
	assert.NotEmpty(t, we.Path)
}

func TestResizedName(t *testing.T) {
	s := NewStorage(t.TempDir(), "png", 0)
	assert.Equal(t, "shot_resized.jpg", s.ResizedName("/tmp/shot.jpg"))
	assert.Equal(t, "cropped_20250101_120000_resized.png", s.ResizedName("out/cropped_20250101_120000.png"))
	assert.Equal(t, "clip_resized.png", s.ResizedName("clip"))
}

func TestSaveNamed_Overwrites(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage(dir, "png", 0)

	p1, err := s.SaveNamed("a_resized.png", solid(4, 4))
	require.NoError(t, err)
	p2, err := s.SaveNamed("a_resized.png", solid(6, 6))
	require.NoError(t, err)
	assert.Equal(t, p1, p2)

	img, err := imaging.Open(p2)
	require.NoError(t, err)
	assert.Equal(t, 6, img.Bounds().Dx())
}
