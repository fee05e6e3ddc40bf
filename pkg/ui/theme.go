package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme carries the adaptive palette and the renderer every style is built from.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor // titles, focused elements
	Secondary lipgloss.AdaptiveColor // section headers
	Accent    lipgloss.AdaptiveColor // tagline, gradient end
	Text      lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Star      lipgloss.AdaptiveColor // characteristic bullets
	Info      lipgloss.AdaptiveColor // fact bullets
	Heart     lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor

	// Base is the unstyled root every panel style is derived from
	Base lipgloss.Style
}

// DefaultTheme builds the purple/pink palette on renderer r. A nil renderer
// uses lipgloss.DefaultRenderer.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Renderer:  r,
		Primary:   lipgloss.AdaptiveColor{Light: "#7E22CE", Dark: "#C084FC"},
		Secondary: lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A5B4FC"},
		Accent:    lipgloss.AdaptiveColor{Light: "#DB2777", Dark: "#F472B6"},
		Text:      lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F8F8F2"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#BFBFBF"},
		Muted:     lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6272A4"},
		Border:    lipgloss.AdaptiveColor{Light: "#D8B4FE", Dark: "#44475A"},
		Star:      lipgloss.AdaptiveColor{Light: "#CA8A04", Dark: "#F1FA8C"},
		Info:      lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#8BE9FD"},
		Heart:     lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FF5555"},
		Success:   lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#50FA7B"},
		Danger:    lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#FF5555"},
		Base:      r.NewStyle(),
	}
}

// ThemeFor returns the default theme with the background forced to light or
// dark. Any other name keeps the renderer's own detection.
func ThemeFor(name string, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	switch name {
	case "light":
		r.SetHasDarkBackground(false)
	case "dark":
		r.SetHasDarkBackground(true)
	}
	return DefaultTheme(r)
}

// IsDark reports whether adaptive colors resolve to their dark variant
func (t Theme) IsDark() bool {
	return t.Renderer.HasDarkBackground()
}
