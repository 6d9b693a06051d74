package titlecard

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Preferred font files, tried in order inside the fonts directory before
// falling back to the embedded Go fonts.
var (
	TitleFontFiles = []string{"MontserratAlternates-Bold.ttf", "BebasNeue-Regular.ttf"}
	TextFontFiles  = []string{"Poppins-Regular.ttf", "Lato-Regular.ttf"}
)

// Fonts holds the parsed title and body fonts.
type Fonts struct {
	Title     *opentype.Font
	Text      *opentype.Font
	TitleName string
	TextName  string
}

// LoadFonts resolves fonts from dir. Missing or unparsable files are skipped
// and logged; the embedded Go fonts are the last resort, so LoadFonts only
// fails if those cannot be parsed.
func LoadFonts(dir string, logger *slog.Logger) (*Fonts, error) {
	title, titleName, err := firstFont(dir, TitleFontFiles, gobold.TTF, "gobold", logger)
	if err != nil {
		return nil, err
	}
	text, textName, err := firstFont(dir, TextFontFiles, goregular.TTF, "goregular", logger)
	if err != nil {
		return nil, err
	}
	return &Fonts{Title: title, Text: text, TitleName: titleName, TextName: textName}, nil
}

func firstFont(dir string, names []string, fallback []byte, fallbackName string, logger *slog.Logger) (*opentype.Font, string, error) {
	if dir != "" {
		for _, n := range names {
			p := filepath.Join(dir, n)
			data, err := os.ReadFile(p)
			if err != nil {
				continue
			}
			f, err := opentype.Parse(data)
			if err != nil {
				if logger != nil {
					logger.Warn("font parse failed", "path", p, "error", err)
				}
				continue
			}
			return f, n, nil
		}
	}
	if logger != nil {
		logger.Debug("using embedded font", "font", fallbackName, "dir", dir)
	}
	f, err := opentype.Parse(fallback)
	if err != nil {
		return nil, "", fmt.Errorf("parse %s: %w", fallbackName, err)
	}
	return f, fallbackName, nil
}

// face opens f at a pixel size. Callers close the returned face.
func face(f *opentype.Font, size float64) (font.Face, error) {
	fc, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("font face %.0f: %w", size, err)
	}
	return fc, nil
}
