// Command postgen turns a problem screenshot and a solution screenshot into
// a ready-to-post folder: two letterboxed images, a title card and a caption.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/soocke/leetsnap-go/config"
	"github.com/soocke/leetsnap-go/domain/leetcode"
	"github.com/soocke/leetsnap-go/domain/post"
	"github.com/soocke/leetsnap-go/domain/titlecard"
	"github.com/soocke/leetsnap-go/logging"
)

// listFlag collects a repeated string flag.
type listFlag []string

func (l *listFlag) String() string     { return strings.Join(*l, "; ") }
func (l *listFlag) Set(v string) error { *l = append(*l, v); return nil }

type options struct {
	problemImage  string
	solutionImage string
	name          string
	difficulty    string
	tags          string
	approach      listFlag
	daily         bool
}

func main() {
	cfgPath := flag.String("config", "leetsnap.json", "path to the JSON config file")
	var o options
	flag.StringVar(&o.problemImage, "problem-image", "", "problem screenshot (runs without a window when set with -solution-image)")
	flag.StringVar(&o.solutionImage, "solution-image", "", "solution screenshot")
	flag.StringVar(&o.name, "name", "1123. Lowest Common Ancestor of Deepest Leaves", "problem name as '<number>. <title>'")
	flag.StringVar(&o.difficulty, "difficulty", "Medium", "problem difficulty")
	flag.StringVar(&o.tags, "tags", "DFS, BFS", "comma separated topic tags")
	flag.Var(&o.approach, "approach", "approach line for the caption (repeatable)")
	flag.BoolVar(&o.daily, "daily", false, "take name, difficulty and tags from today's challenge")
	flag.Parse()

	cfg, cfgErr := config.Load(*cfgPath)
	logger := logging.NewLogger(slog.LevelInfo, cfg.LogFile)
	if cfgErr != nil {
		logger.Error("config load failed, using defaults", "path", *cfgPath, "error", cfgErr)
	}

	g, err := newGenerator(cfg, o, logger)
	if err != nil {
		logger.Error("postgen init", "error", err)
		os.Exit(1)
	}
	if o.problemImage != "" || o.solutionImage != "" {
		res, err := g.generate(context.Background(), []string{o.problemImage, o.solutionImage})
		if err != nil {
			logger.Error("compose failed", "error", err)
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		fmt.Println(res.Dir)
		return
	}
	runGUI(g)
}

type generator struct {
	cfg      *config.Config
	opts     options
	composer *post.Composer
	logger   *slog.Logger
}

func newGenerator(cfg *config.Config, o options, logger *slog.Logger) (*generator, error) {
	cards, err := titlecard.NewRenderer(cfg.Post.Size, "", cfg.Card.FontsDir, logger)
	if err != nil {
		return nil, err
	}
	c, err := post.NewComposer(cfg.Post.RootDir, cfg.Post.Size, cfg.Post.JPEGQuality, cfg.Post.Hashtags, cards, logger)
	if err != nil {
		return nil, err
	}
	return &generator{cfg: cfg, opts: o, composer: c, logger: logger}, nil
}

// content resolves the problem metadata from flags or the daily challenge.
func (g *generator) content(ctx context.Context) (titlecard.Content, error) {
	today := time.Now()
	if !g.opts.daily {
		return titlecard.Content{Name: g.opts.name, Difficulty: g.opts.difficulty, Tags: g.opts.tags, Date: today}, nil
	}
	timeout := time.Duration(g.cfg.LeetCode.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	client := leetcode.NewClient(&http.Client{Timeout: timeout}, g.cfg.LeetCode.GraphQLURL, g.cfg.LeetCode.UserAgent, g.logger)
	p, err := client.FetchDaily(ctx)
	if err != nil {
		return titlecard.Content{}, fmt.Errorf("fetch daily challenge: %w", err)
	}
	return titlecard.ContentFor(p, today), nil
}

func (g *generator) generate(ctx context.Context, images []string) (post.Result, error) {
	if len(images) != 2 || images[0] == "" || images[1] == "" {
		return post.Result{}, post.ErrNeedTwoImages
	}
	content, err := g.content(ctx)
	if err != nil {
		return post.Result{}, err
	}
	return g.composer.Compose(ctx, post.Request{Images: images, Content: content, Approach: g.opts.approach})
}
