package leetcode

import (
	"strings"
	"time"
)

// DateLayout is the date format used by the daily challenge API.
const DateLayout = "2006-01-02"

// Problem is the daily challenge question.
type Problem struct {
	Number     string
	Title      string
	Slug       string
	Difficulty string
	Tags       []string
	Date       time.Time
}

// Name is "<number>. <title>".
func (p Problem) Name() string {
	if p.Number == "" {
		return p.Title
	}
	return p.Number + ". " + p.Title
}

// TagList joins tags with ", ".
func (p Problem) TagList() string { return strings.Join(p.Tags, ", ") }

// URL points at the problem page.
func (p Problem) URL() string {
	if p.Slug == "" {
		return ""
	}
	return "https://leetcode.com/problems/" + p.Slug + "/"
}

// NumberFromName returns the text before the first '.' of a problem name
// such as "1. Two Sum", trimmed. Names without a '.' are returned whole.
func NumberFromName(name string) string {
	if i := strings.Index(name, "."); i >= 0 {
		return strings.TrimSpace(name[:i])
	}
	return strings.TrimSpace(name)
}
