package config

import (
	"encoding/json"
	"os"
	"strings"
)

// LeetCodeConfig configures the daily challenge client.
type LeetCodeConfig struct {
	GraphQLURL     string `json:"graphql_url"`
	UserAgent      string `json:"user_agent"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// CardConfig configures the daily title card.
type CardConfig struct {
	Size           int    `json:"size"`
	BackgroundPath string `json:"background_path"`
	FontsDir       string `json:"fonts_dir"`
	OutputDir      string `json:"output_dir"`
}

// PostConfig configures the post composer.
type PostConfig struct {
	RootDir     string   `json:"root_dir"`
	Size        int      `json:"size"`
	JPEGQuality int      `json:"jpeg_quality"`
	Hashtags    []string `json:"hashtags"`
}

// Config holds runtime configuration for the resizer, the daily card
// fetcher and the post composer. Fields may be loaded from a JSON file and
// overridden by command-line flags.
type Config struct {
	Debug    bool   `json:"debug"`
	LogFile  string `json:"log_file"`
	DarkMode bool   `json:"dark_mode"`

	// Output of the resizer (crops, pastes, screenshots, resized downloads).
	OutputDir    string `json:"output_dir"`
	OutputFormat string `json:"output_format"`
	JPEGQuality  int    `json:"jpeg_quality"`

	// Interactive crop behaviour
	MinSelection          int    `json:"min_selection"`
	ScreenshotDelayMillis int    `json:"screenshot_delay_ms"`
	FullScreenshotHotkey  string `json:"full_screenshot_hotkey"`
	CropHotkey            string `json:"crop_hotkey"`
	PreviewMaxSide        int    `json:"preview_max_side"`

	LeetCode LeetCodeConfig `json:"leetcode"`
	Card     CardConfig     `json:"card"`
	Post     PostConfig     `json:"post"`
}

// DefaultHashtags close every post description.
var DefaultHashtags = []string{"#leetcode", "#dsa", "#interviewprep", "#python", "#ai", "#coding"}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                 false,
		LogFile:               "",
		OutputDir:             "output",
		OutputFormat:          "png",
		JPEGQuality:           95,
		MinSelection:          10,
		ScreenshotDelayMillis: 500,
		FullScreenshotHotkey:  "ctrl+shift+s",
		CropHotkey:            "ctrl+shift+a",
		PreviewMaxSide:        600,
		LeetCode: LeetCodeConfig{
			GraphQLURL:     "https://leetcode.com/graphql",
			UserAgent:      "Mozilla/5.0 (compatible; leetsnap/1.0)",
			TimeoutSeconds: 15,
		},
		Card: CardConfig{
			Size:           1080,
			BackgroundPath: "bg_img/wimg.jpg",
			FontsDir:       "fonts",
			OutputDir:      "saved_img",
		},
		Post: PostConfig{
			RootDir:     ".",
			Size:        1080,
			JPEGQuality: 95,
			Hashtags:    append([]string(nil), DefaultHashtags...),
		},
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	d := DefaultConfig()
	if strings.TrimSpace(c.OutputDir) == "" {
		c.OutputDir = d.OutputDir
	}
	switch strings.ToLower(c.OutputFormat) {
	case "png":
		c.OutputFormat = "png"
	case "jpg", "jpeg":
		c.OutputFormat = "jpg"
	default:
		c.OutputFormat = d.OutputFormat
	}
	if c.JPEGQuality <= 0 || c.JPEGQuality > 100 {
		c.JPEGQuality = d.JPEGQuality
	}
	if c.MinSelection < 0 {
		c.MinSelection = d.MinSelection
	}
	if c.ScreenshotDelayMillis < 0 {
		c.ScreenshotDelayMillis = 0
	}
	if c.ScreenshotDelayMillis > 10000 {
		c.ScreenshotDelayMillis = 10000
	}
	if c.PreviewMaxSide < 50 {
		c.PreviewMaxSide = d.PreviewMaxSide
	}
	if c.LeetCode.GraphQLURL == "" {
		c.LeetCode.GraphQLURL = d.LeetCode.GraphQLURL
	}
	if c.LeetCode.TimeoutSeconds <= 0 {
		c.LeetCode.TimeoutSeconds = d.LeetCode.TimeoutSeconds
	}
	if c.Card.Size <= 0 {
		c.Card.Size = d.Card.Size
	}
	if c.Card.OutputDir == "" {
		c.Card.OutputDir = d.Card.OutputDir
	}
	if c.Post.RootDir == "" {
		c.Post.RootDir = d.Post.RootDir
	}
	if c.Post.Size <= 0 {
		c.Post.Size = d.Post.Size
	}
	if c.Post.JPEGQuality <= 0 || c.Post.JPEGQuality > 100 {
		c.Post.JPEGQuality = d.Post.JPEGQuality
	}
	if c.Post.Hashtags == nil {
		c.Post.Hashtags = d.Post.Hashtags
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
