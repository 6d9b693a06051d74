// Package post assembles a ready-to-upload LeetCode post: two letterboxed
// screenshots, a title card and a caption, written into one folder.
package post

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/soocke/leetsnap-go/assets"
	"github.com/soocke/leetsnap-go/domain/capture"
	"github.com/soocke/leetsnap-go/domain/leetcode"
	"github.com/soocke/leetsnap-go/domain/storage"
	"github.com/soocke/leetsnap-go/domain/titlecard"
)

// Output file names inside a post folder.
const (
	ProblemFile     = "final_problem.jpg"
	SolutionFile    = "final_solution.jpg"
	TitleFile       = "final_title.jpg"
	DescriptionFile = "description.txt"
)

// ErrNeedTwoImages is returned unless exactly two screenshots are given.
var ErrNeedTwoImages = errors.New("post: exactly 2 images are required (problem + solution)")

// DefaultApproach is written when no approach steps are supplied; the
// numbered lines are meant to be filled in by hand.
var DefaultApproach = []string{"", "", ""}

// Request describes one post.
type Request struct {
	Images   []string // problem screenshot, solution screenshot
	Content  titlecard.Content
	Approach []string
}

// Result lists what was written.
type Result struct {
	Dir   string
	Files []string
}

// CardRenderer draws the title image.
type CardRenderer interface {
	Simple(c titlecard.Content) (image.Image, error)
}

// Composer writes posts under a root directory.
type Composer struct {
	Root     string
	Size     int
	Quality  int
	Hashtags []string
	Cards    CardRenderer
	Logger   *slog.Logger

	open    func(string) (image.Image, error)
	caption *template.Template
}

// NewComposer parses the embedded caption template and returns a Composer.
func NewComposer(root string, size, quality int, hashtags []string, cards CardRenderer, logger *slog.Logger) (*Composer, error) {
	t, err := assets.Caption()
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = titlecard.DefaultSize
	}
	return &Composer{
		Root:     root,
		Size:     size,
		Quality:  quality,
		Hashtags: hashtags,
		Cards:    cards,
		Logger:   logger,
		open:     capture.OpenImage,
		caption:  t,
	}, nil
}

// FolderName returns Leetcode_<YYYY-MM-DD>_<number>.
func FolderName(day time.Time, problemName string) string {
	return fmt.Sprintf("Leetcode_%s_%s", day.Format(leetcode.DateLayout), leetcode.NumberFromName(problemName))
}

// Description renders the caption text.
func (c *Composer) Description(content titlecard.Content, approach []string) (string, error) {
	if len(approach) == 0 {
		approach = DefaultApproach
	}
	data := struct {
		Date       string
		Problem    string
		Difficulty string
		Tags       string
		Approach   []string
		Hashtags   string
	}{
		Date:       content.Date.Format(leetcode.DateLayout),
		Problem:    content.Name,
		Difficulty: content.Difficulty,
		Tags:       content.Tags,
		Approach:   approach,
		Hashtags:   strings.Join(c.Hashtags, " "),
	}
	var buf bytes.Buffer
	if err := c.caption.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render caption: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// Compose renders every asset concurrently and writes them once all renders
// have succeeded.
func (c *Composer) Compose(ctx context.Context, req Request) (Result, error) {
	if len(req.Images) != 2 {
		return Result{}, ErrNeedTwoImages
	}
	if c.Cards == nil {
		return Result{}, errors.New("post: no card renderer")
	}

	var problem, solution, title image.Image
	var description string
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		img, err := c.screenshot(ctx, req.Images[0])
		problem = img
		return err
	})
	g.Go(func() error {
		img, err := c.screenshot(ctx, req.Images[1])
		solution = img
		return err
	})
	g.Go(func() error {
		img, err := c.Cards.Simple(req.Content)
		if err != nil {
			return fmt.Errorf("title card: %w", err)
		}
		title = img
		return nil
	})
	g.Go(func() error {
		d, err := c.Description(req.Content, req.Approach)
		description = d
		return err
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	dir := filepath.Join(c.Root, FolderName(req.Content.Date, req.Content.Name))
	out := storage.NewStorage(dir, "jpg", c.Quality)
	if err := out.EnsureDir(); err != nil {
		return Result{}, err
	}
	res := Result{Dir: dir}
	for _, f := range []struct {
		name string
		img  image.Image
	}{
		{ProblemFile, problem},
		{SolutionFile, solution},
		{TitleFile, title},
	} {
		p, err := out.SaveNamed(f.name, f.img)
		if err != nil {
			return res, err
		}
		res.Files = append(res.Files, p)
	}
	descPath := filepath.Join(dir, DescriptionFile)
	if err := os.WriteFile(descPath, []byte(description), 0o644); err != nil {
		return res, &storage.WriteError{Path: descPath, Err: err}
	}
	res.Files = append(res.Files, descPath)

	if c.Logger != nil {
		c.Logger.Info("post composed", "dir", dir, "files", len(res.Files))
	}
	return res, nil
}

func (c *Composer) screenshot(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := c.open(path)
	if err != nil {
		return nil, err
	}
	return Letterbox(img, c.Size), nil
}
