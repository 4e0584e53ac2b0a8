package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

// HTML writes galleries and skeleton placeholders as HTML fragments.
// Links open in a new browsing context without opener or referrer.
type HTML struct {
	tmpl *template.Template
}

// NewHTML parses the embedded templates
func NewHTML() (*HTML, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &HTML{tmpl: tmpl}, nil
}

// WriteGallery writes the header row and the card grid
func (h *HTML) WriteGallery(w io.Writer, g Gallery) error {
	if err := h.tmpl.ExecuteTemplate(w, "gallery", g); err != nil {
		return fmt.Errorf("render gallery: %w", err)
	}
	return nil
}

// WriteSkeletons writes up to MaxSkeletons placeholder cards
func (h *HTML) WriteSkeletons(w io.Writer, n int) error {
	if err := h.tmpl.ExecuteTemplate(w, "skeletons", make([]struct{}, SkeletonCount(n))); err != nil {
		return fmt.Errorf("render skeletons: %w", err)
	}
	return nil
}

// Gallery returns the gallery markup as a string
func (h *HTML) Gallery(g Gallery) (string, error) {
	var buf bytes.Buffer
	if err := h.WriteGallery(&buf, g); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Skeletons returns the placeholder markup as a string
func (h *HTML) Skeletons(n int) (string, error) {
	var buf bytes.Buffer
	if err := h.WriteSkeletons(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
