package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MinSelection != 10 {
		t.Fatalf("expected min selection 10 got %d", cfg.MinSelection)
	}
	if cfg.CropHotkey != "ctrl+shift+a" {
		t.Fatalf("unexpected crop hotkey %q", cfg.CropHotkey)
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := &Config{
		OutputFormat:          "JPEG",
		JPEGQuality:           400,
		MinSelection:          -3,
		ScreenshotDelayMillis: -1,
		PreviewMaxSide:        1,
	}
	_ = cfg.Validate()
	if cfg.OutputFormat != "jpg" {
		t.Fatalf("expected jpg got %q", cfg.OutputFormat)
	}
	if cfg.JPEGQuality != 95 {
		t.Fatalf("expected quality reset got %d", cfg.JPEGQuality)
	}
	if cfg.MinSelection != 10 || cfg.ScreenshotDelayMillis != 0 || cfg.PreviewMaxSide != 600 {
		t.Fatalf("unexpected clamp result %+v", cfg)
	}
	if cfg.OutputDir == "" || cfg.Card.Size != 1080 || cfg.Post.Size != 1080 {
		t.Fatalf("nested defaults not applied %+v", cfg)
	}
	if len(cfg.Post.Hashtags) != len(DefaultHashtags) {
		t.Fatalf("expected default hashtags got %v", cfg.Post.Hashtags)
	}
}

func TestSaveLoadRoundTripKeepsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	cfg := DefaultConfig()
	cfg.OutputDir = "crops"
	cfg.Card.FontsDir = "/usr/share/fonts"
	cfg.Post.Hashtags = []string{"#go"}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.OutputDir != "crops" || got.Card.FontsDir != "/usr/share/fonts" {
		t.Fatalf("overrides lost: %+v", got)
	}
	if len(got.Post.Hashtags) != 1 || got.Post.Hashtags[0] != "#go" {
		t.Fatalf("hashtags lost: %v", got.Post.Hashtags)
	}
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.OutputFormat != "png" {
		t.Fatalf("expected defaults alongside error")
	}
}
