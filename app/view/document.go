package view

import (
	"slices"
	"strings"
	"sync"
)

// Document stands in for the root <html> element while a page is composed.
// It satisfies theme.Marker.
type Document struct {
	mu      sync.Mutex
	classes []string
}

// NewDocument returns a document with no classes.
func NewDocument() *Document {
	return &Document{}
}

// AddClass adds class once. Empty names are ignored.
func (d *Document) AddClass(class string) {
	if class == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if !slices.Contains(d.classes, class) {
		d.classes = append(d.classes, class)
	}
}

// RemoveClass removes class if present.
func (d *Document) RemoveClass(class string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.classes = slices.DeleteFunc(d.classes, func(c string) bool { return c == class })
}

// HasClass reports whether class is set.
func (d *Document) HasClass(class string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Contains(d.classes, class)
}

// Class returns the class attribute value in insertion order.
func (d *Document) Class() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return strings.Join(d.classes, " ")
}
