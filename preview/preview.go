// Package preview renders Markdown documents to styled terminal output.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer turns Markdown source into ANSI-styled terminal text. It caches
// the underlying glamour renderer and rebuilds it only when the wrap width
// or style changes.
type Renderer struct {
	tr    *glamour.TermRenderer
	style string
	width int
}

// NewRenderer builds a renderer wrapping at width columns. style names a
// glamour standard style ("dark", "light", "notty", ...); empty selects the
// terminal-appropriate style automatically.
func NewRenderer(width int, style string) (*Renderer, error) {
	tr, err := newTermRenderer(width, style)
	if err != nil {
		return nil, err
	}
	return &Renderer{tr: tr, style: style, width: width}, nil
}

func newTermRenderer(width int, style string) (*glamour.TermRenderer, error) {
	if width < 0 {
		width = 0
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("build markdown renderer: %w", err)
	}
	return tr, nil
}

// SetWidth rebuilds the renderer for a new wrap width. A no-op when the
// width is unchanged.
func (r *Renderer) SetWidth(width int) error {
	if width < 0 {
		width = 0
	}
	if width == r.width {
		return nil
	}
	tr, err := newTermRenderer(width, r.style)
	if err != nil {
		return err
	}
	r.tr = tr
	r.width = width
	return nil
}

// Render converts Markdown source to styled terminal text.
func (r *Renderer) Render(markdown string) (string, error) {
	out, err := r.tr.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
