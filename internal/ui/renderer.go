package ui

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown content for terminal display.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer implements MarkdownRenderer using glamour.
type GlamourRenderer struct{}

// NewGlamourRenderer creates a GlamourRenderer.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

// Render renders markdown wrapped to width.
func (r *GlamourRenderer) Render(content string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}
