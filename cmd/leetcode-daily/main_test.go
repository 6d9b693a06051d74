package main

import (
	"context"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soocke/leetsnap-go/config"
)

const dailyJSON = `{"data":{"activeDailyCodingChallengeQuestion":{"date":"2025-03-14","question":{
"questionFrontendId":"1123","title":"Lowest Common Ancestor of Deepest Leaves","titleSlug":"lca-deepest-leaves",
"difficulty":"Medium","topicTags":[{"name":"Tree"},{"name":"Depth-First Search"}]}}}}`

func testConfig(t *testing.T, url string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.LeetCode.GraphQLURL = url
	cfg.Card.OutputDir = filepath.Join(t.TempDir(), "saved_img")
	cfg.Card.FontsDir = filepath.Join(t.TempDir(), "no-fonts")
	cfg.Card.BackgroundPath = ""
	cfg.Card.Size = 540
	return cfg
}

func TestRun_WritesCard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, dailyJSON)
	}))
	defer server.Close()

	cfg := testConfig(t, server.URL)
	path, err := run(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "leetcode_daily_"))
	assert.Equal(t, ".png", filepath.Ext(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 540, img.Bounds().Dx())
	assert.Equal(t, 540, img.Bounds().Dy())
}

func TestRun_ServerErrorFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer server.Close()

	cfg := testConfig(t, server.URL)
	_, err := run(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	_, statErr := os.Stat(cfg.Card.OutputDir)
	assert.True(t, os.IsNotExist(statErr), "no output dir should be created on failure")
}
