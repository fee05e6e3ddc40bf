package ui

import (
	"fmt"
	"strings"

	"github.com/Dicklesworthstone/cats_viewer/pkg/model"

	"github.com/charmbracelet/lipgloss"
)

var catArt = []string{
	` /\_/\ `,
	`( o.o )`,
	` > ^ < `,
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.helpOverlay.IsVisible() {
		return m.helpOverlay.View()
	}
	return m.renderPage(false) + "\n" + m.keyHelp.View(m.keys)
}

// Snapshot renders content once as a static page, every tab expanded and no
// timers running. Used when output is not an interactive terminal.
func Snapshot(content model.Content, theme Theme, width int) (string, error) {
	m, err := NewModel(content, Options{Theme: theme})
	if err != nil {
		return "", err
	}
	m.SetSize(width, 0)
	return m.renderPage(true), nil
}

func (m *Model) renderPage(expandTabs bool) string {
	w := pageWidth(m.width)

	parts := []string{
		m.renderHeader(w),
		m.renderCarousel(w),
	}
	if expandTabs {
		heading := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Secondary)
		for tab := Tab(0); tab < tabCount; tab++ {
			parts = append(parts, heading.Render(strings.ToUpper(tab.String())), m.renderTabBody(tab, w))
		}
	} else {
		parts = append(parts, m.renderTabBar(w), m.renderTabBody(m.tab, w))
	}
	parts = append(parts, m.renderFactPanel(w), m.renderFooter(w))

	return CardStyle(m.theme).Width(w + 2*SpaceSM).Render(strings.Join(parts, "\n\n"))
}

func (m *Model) renderHeader(w int) string {
	t := m.theme
	title := t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).
		Render(IconCat + " " + m.content.Title)
	tagline := t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true).
		Render(truncate(m.content.Tagline, w))
	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.PlaceHorizontal(w, lipgloss.Center, title),
		lipgloss.PlaceHorizontal(w, lipgloss.Center, tagline),
	)
}

func (m *Model) renderCarousel(w int) string {
	t := m.theme
	img := m.CurrentImage()
	inner := w - 4

	artStyle := t.Renderer.NewStyle().Foreground(t.Primary)
	var lines []string
	for _, l := range catArt {
		lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Center, artStyle.Render(l)))
	}

	caption := t.Renderer.NewStyle().Bold(true).Foreground(t.Text).Render(truncate(img.Caption, inner))
	url := t.Renderer.NewStyle().Foreground(t.Muted).Underline(true).Render(truncate(img.URL, inner))
	lines = append(lines, "", lipgloss.PlaceHorizontal(inner, lipgloss.Center, caption))
	lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Center, url))

	control := t.Renderer.NewStyle().Foreground(t.Secondary)
	position := t.Renderer.NewStyle().Foreground(t.Subtext).
		Render(fmt.Sprintf("%d / %d", m.nav.Index()+1, m.nav.Len()))
	prev := control.Render("← prev")
	next := control.Render("next →")
	gap := inner - lipgloss.Width(prev) - lipgloss.Width(next) - lipgloss.Width(position)
	if gap < 2 {
		gap = 2
	}
	left := gap / 2
	controls := prev + strings.Repeat(" ", left) + position + strings.Repeat(" ", gap-left) + next
	lines = append(lines, "", controls)

	return PanelStyle(t).Width(w - 2).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderTabBar(w int) string {
	sep := m.theme.Renderer.NewStyle().Foreground(m.theme.Border).Render("│")
	var badges []string
	for tab := Tab(0); tab < tabCount; tab++ {
		badges = append(badges, RenderTabBadge(fmt.Sprintf("%d %s", tab+1, tab), tab == m.tab, m.theme))
	}
	return strings.Join(badges, sep) + "\n" + RenderDivider(w, m.theme)
}

func (m *Model) renderTabBody(tab Tab, w int) string {
	t := m.theme
	switch tab {
	case TabAbout:
		return m.markdown.Render(m.content.About)

	case TabCharacteristics:
		if len(m.content.Characteristics) == 0 {
			return t.Renderer.NewStyle().Foreground(t.Muted).Italic(true).Render("Nothing listed yet.")
		}
		star := t.Renderer.NewStyle().Foreground(t.Star).Render(IconStar)
		return renderBulletList(m.content.Characteristics, w, func(int) string { return star }, t)

	case TabFacts:
		current := m.facts.State().FactIndex
		info := t.Renderer.NewStyle().Foreground(t.Info).Render(IconInfo)
		cursor := t.Renderer.NewStyle().Foreground(t.Primary).Bold(true).Render(IconCursor)
		return renderBulletList(m.content.Facts, w, func(i int) string {
			if i == current {
				return cursor
			}
			return info
		}, t)

	case TabBreeds:
		return m.renderBreeds(w)
	}
	return ""
}

// renderBulletList renders items with the bullet returned for each position,
// continuation lines indented under the text.
func renderBulletList(items []string, w int, bullet func(int) string, t Theme) string {
	text := t.Renderer.NewStyle().Foreground(t.Text)
	var lines []string
	for i, item := range items {
		for j, l := range wrapText(item, w-SpaceSM) {
			prefix := "  "
			if j == 0 {
				prefix = bullet(i) + " "
			}
			lines = append(lines, prefix+text.Render(l))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFactPanel(w int) string {
	t := m.theme
	inner := w - 4

	title := t.Renderer.NewStyle().Bold(true).Foreground(t.Secondary).Render("✨ Fact of the moment")
	if m.started && !m.facts.Running() {
		title += t.Renderer.NewStyle().Foreground(t.Muted).Render(" (paused)")
	}

	body := t.Renderer.NewStyle().Foreground(t.Text)
	lines := []string{title}
	for _, l := range wrapText(m.CurrentFact(), inner) {
		lines = append(lines, body.Render(l))
	}
	lines = append(lines, "", m.progress.ViewAs(m.facts.Percent()))

	return PanelStyle(t).Width(w - 2).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter(w int) string {
	t := m.theme
	button := RenderLikeButton(m.likes.Count(), t)
	counter := t.Renderer.NewStyle().Foreground(t.Subtext).
		Render(fmt.Sprintf("%d people love cats!", m.likes.Count()))

	gap := w - lipgloss.Width(button) - lipgloss.Width(counter)
	if gap < 1 {
		gap = 1
	}
	counterBlock := lipgloss.PlaceVertical(lipgloss.Height(button), lipgloss.Center, counter)
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Center, button, strings.Repeat(" ", gap), counterBlock)}

	if m.likes.Acknowledged() {
		lines = append(lines, t.Renderer.NewStyle().Bold(true).Foreground(t.Success).
			Render("😻 Thanks for spreading the love!"))
	}
	if m.notice != "" {
		color := t.Success
		if m.noticeIsError {
			color = t.Danger
		}
		lines = append(lines, t.Renderer.NewStyle().Foreground(color).Render(truncate(m.notice, w)))
	}
	return strings.Join(lines, "\n")
}
