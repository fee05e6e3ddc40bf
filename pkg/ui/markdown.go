package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders the About text with glamour. The underlying
// renderer is rebuilt only when the wrap width or style changes.
type MarkdownRenderer struct {
	width    int
	style    string
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer creates a renderer wrapping at width cells.
func NewMarkdownRenderer(width int, theme Theme) *MarkdownRenderer {
	mr := &MarkdownRenderer{}
	mr.SetWidth(width, theme)
	return mr
}

// SetWidth updates the wrap width and style for theme.
func (mr *MarkdownRenderer) SetWidth(width int, theme Theme) {
	if width < MinBoxWidth {
		width = MinBoxWidth
	}
	style := "light"
	if theme.IsDark() {
		style = "dark"
	}
	if mr.renderer != nil && width == mr.width && style == mr.style {
		return
	}
	mr.width = width
	mr.style = style
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		mr.renderer = nil
		return
	}
	mr.renderer = r
}

// Render returns md as styled terminal text. When glamour is unavailable or
// fails, the text is word-wrapped as-is.
func (mr *MarkdownRenderer) Render(md string) string {
	if mr.renderer != nil {
		if out, err := mr.renderer.Render(md); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return strings.Join(wrapText(md, mr.width), "\n")
}
