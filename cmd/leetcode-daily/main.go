// Command leetcode-daily fetches today's LeetCode challenge and renders it
// onto a square title card.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/soocke/leetsnap-go/config"
	"github.com/soocke/leetsnap-go/domain/leetcode"
	"github.com/soocke/leetsnap-go/domain/storage"
	"github.com/soocke/leetsnap-go/domain/titlecard"
	"github.com/soocke/leetsnap-go/logging"
)

func main() {
	cfgPath := flag.String("config", "leetsnap.json", "path to the JSON config file")
	outDir := flag.String("out", "", "card output directory (overrides config)")
	bg := flag.String("background", "", "background image (overrides config)")
	debugFlag := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	cfg, cfgErr := config.Load(*cfgPath)
	if *outDir != "" {
		cfg.Card.OutputDir = *outDir
	}
	if *bg != "" {
		cfg.Card.BackgroundPath = *bg
	}
	level := slog.LevelInfo
	if *debugFlag || cfg.Debug {
		level = slog.LevelDebug
	}
	logger := logging.NewLogger(level, cfg.LogFile)
	if cfgErr != nil {
		logger.Error("config load failed, using defaults", "path", *cfgPath, "error", cfgErr)
	}

	path, err := run(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("daily card failed", "error", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(path)
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (string, error) {
	timeout := time.Duration(cfg.LeetCode.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client := leetcode.NewClient(&http.Client{Timeout: timeout}, cfg.LeetCode.GraphQLURL, cfg.LeetCode.UserAgent, logger)
	p, err := client.FetchDaily(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch daily challenge: %w", err)
	}
	logger.Info("daily challenge", "problem", p.Name(), "difficulty", p.Difficulty, "tags", p.TagList(), "url", p.URL())

	r, err := titlecard.NewRenderer(cfg.Card.Size, cfg.Card.BackgroundPath, cfg.Card.FontsDir, logger)
	if err != nil {
		return "", err
	}
	img, err := r.Daily(titlecard.ContentFor(p, p.Date))
	if err != nil {
		return "", fmt.Errorf("render card: %w", err)
	}
	out := storage.NewStorage(cfg.Card.OutputDir, "png", 0)
	path, err := out.Save(titlecard.FilePrefix, img, time.Now())
	if err != nil {
		return "", err
	}
	logger.Info("card saved", "path", path)
	return path, nil
}
