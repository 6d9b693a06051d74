package model

import "image"

// Entry is one original/resized pair shown in the gallery.
type Entry struct {
	Original image.Image
	Resized  image.Image
	Path     string // file the entry came from or was saved to; may be empty
}

// ResultsModel is the ordered list of gallery entries. The zero value is
// empty and usable.
type ResultsModel struct {
	entries []Entry
}

func (m *ResultsModel) Append(e Entry) {
	if m == nil {
		return
	}
	m.entries = append(m.entries, e)
}

// Replace swaps the whole list, as an upload does.
func (m *ResultsModel) Replace(es []Entry) {
	if m == nil {
		return
	}
	m.entries = append([]Entry(nil), es...)
}

func (m *ResultsModel) Reset() {
	if m == nil {
		return
	}
	m.entries = nil
}

func (m *ResultsModel) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns a copy of the list in insertion order.
func (m *ResultsModel) Entries() []Entry {
	if m == nil {
		return nil
	}
	return append([]Entry(nil), m.entries...)
}
