package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing and glyphs
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
)

// Glyphs used across the page
const (
	IconCat    = "🐱"
	IconStar   = "★"
	IconInfo   = "ℹ"
	IconHeart  = "♥"
	IconCursor = "▶"
	IconTip    = "◆"
)

// ══════════════════════════════════════════════════════════════════════════════
// PANEL STYLES - Card and section boxes
// ══════════════════════════════════════════════════════════════════════════════

// CardStyle is the outer card that frames the whole page
func CardStyle(t Theme) lipgloss.Style {
	return t.Base.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, SpaceSM)
}

// PanelStyle is the default style for unfocused panels
func PanelStyle(t Theme) lipgloss.Style {
	return t.Base.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, SpaceXS)
}

// FocusedPanelStyle is the style for focused panels
func FocusedPanelStyle(t Theme) lipgloss.Style {
	return PanelStyle(t).BorderForeground(t.Primary)
}

// ══════════════════════════════════════════════════════════════════════════════
// BADGE RENDERING
// ══════════════════════════════════════════════════════════════════════════════

// RenderTabBadge renders one entry of the tab bar
func RenderTabBadge(label string, active bool, t Theme) string {
	style := t.Renderer.NewStyle().Padding(0, SpaceXS)
	if active {
		return style.Bold(true).Foreground(t.Primary).Underline(true).Render(label)
	}
	return style.Foreground(t.Muted).Render(label)
}

// RenderLikeButton renders the like button, filled once anyone liked.
func RenderLikeButton(count int, t Theme) string {
	heart := t.Renderer.NewStyle().Foreground(t.Muted).Render("♡")
	if count > 0 {
		heart = t.Renderer.NewStyle().Foreground(t.Heart).Bold(true).Render(IconHeart)
	}
	return t.Renderer.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		Padding(0, SpaceXS).
		Render(heart + " Like")
}

// ══════════════════════════════════════════════════════════════════════════════
// DIVIDERS AND TEXT HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal divider line
func RenderDivider(width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}

// RenderSubtleDivider renders a more subtle divider using dots
func RenderSubtleDivider(width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Muted).
		Render(strings.Repeat("·", width))
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// truncateOrPad truncates s to width cells or pads it with spaces to width.
func truncateOrPad(s string, width int) string {
	return runewidth.FillRight(truncate(s, width), width)
}

// wrapText breaks text on spaces so no line exceeds width cells.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, w := range words {
			switch {
			case line == "":
				line = truncate(w, width)
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(w) <= width:
				line += " " + w
			default:
				lines = append(lines, line)
				line = truncate(w, width)
			}
		}
		lines = append(lines, line)
	}
	return lines
}
