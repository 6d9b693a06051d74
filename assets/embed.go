package assets

import (
	_ "embed"
	"fmt"
	"text/template"
)

// CaptionTemplate is the raw text/template used for post descriptions.
//
//go:embed caption.tmpl
var CaptionTemplate string

// Caption parses the embedded caption template. The template may call inc
// to turn a zero-based range index into a step number.
func Caption() (*template.Template, error) {
	if len(CaptionTemplate) == 0 {
		return nil, fmt.Errorf("embedded caption.tmpl is empty")
	}
	t, err := template.New("caption").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).Parse(CaptionTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse caption template: %w", err)
	}
	return t, nil
}
