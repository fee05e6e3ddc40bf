package ui

import (
	"strings"

	"github.com/Dicklesworthstone/cats_viewer/pkg/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// breedDetailWidth is the outer width of the breed detail panel
const breedDetailWidth = 34

type gridDir int

const (
	gridUp gridDir = iota
	gridDown
	gridLeft
	gridRight
)

// moveGridCursor moves cursor one cell in a row-major grid of n cells laid
// out cols wide. Moves that would leave the grid keep the cursor in place.
func moveGridCursor(cursor, n, cols int, dir gridDir) int {
	if n <= 0 {
		return 0
	}
	if cols < 1 {
		cols = 1
	}
	if cursor < 0 || cursor >= n {
		cursor = 0
	}
	switch dir {
	case gridUp:
		if cursor-cols >= 0 {
			return cursor - cols
		}
	case gridDown:
		if cursor+cols < n {
			return cursor + cols
		}
	case gridLeft:
		if cursor%cols > 0 {
			return cursor - 1
		}
	case gridRight:
		if cursor%cols < cols-1 && cursor+1 < n {
			return cursor + 1
		}
	}
	return cursor
}

// filterBreeds returns the positions in breeds that match query, best match
// first. A blank query keeps every breed in its original order.
func filterBreeds(breeds []model.BreedInfo, query string) []int {
	if strings.TrimSpace(query) == "" {
		all := make([]int, len(breeds))
		for i := range breeds {
			all[i] = i
		}
		return all
	}
	names := make([]string, len(breeds))
	for i, b := range breeds {
		names[i] = b.Name
	}
	matches := fuzzy.Find(query, names)
	out := make([]int, len(matches))
	for i, match := range matches {
		out[i] = match.Index
	}
	return out
}

// visibleBreeds returns the breed positions the grid currently shows
func (m *Model) visibleBreeds() []int {
	return filterBreeds(m.content.Breeds, m.filter.Value())
}

// focusedBreed returns the breed under the grid cursor
func (m *Model) focusedBreed() (model.BreedInfo, bool) {
	visible := m.visibleBreeds()
	if m.breedCursor < 0 || m.breedCursor >= len(visible) {
		return model.BreedInfo{}, false
	}
	return m.content.Breeds[visible[m.breedCursor]], true
}

// SelectedBreed returns the breed shown in the detail panel, if any. The
// selection is held by name and resolved against the current content.
func (m *Model) SelectedBreed() (*model.BreedInfo, bool) {
	return m.content.Breed(m.selectedBreed)
}

// toggleSelection selects the focused breed, or clears the selection when
// the focused breed is already selected.
func (m *Model) toggleSelection() {
	b, ok := m.focusedBreed()
	if !ok {
		return
	}
	if strings.EqualFold(m.selectedBreed, b.Name) {
		m.selectedBreed = ""
		return
	}
	m.selectedBreed = b.Name
}

func (m *Model) clampBreedCursor() {
	n := len(m.visibleBreeds())
	if m.breedCursor >= n {
		m.breedCursor = n - 1
	}
	if m.breedCursor < 0 {
		m.breedCursor = 0
	}
}

// gridColumns returns the number of card columns for a tab body of width
// cells, leaving room for the detail panel when it sits beside the grid.
func (m *Model) gridColumns(width int) int {
	if _, ok := m.SelectedBreed(); ok && width >= BreakpointMedium {
		width -= breedDetailWidth + SpaceSM
	}
	return breedColumns(width)
}

func (m *Model) renderBreeds(width int) string {
	t := m.theme
	var sections []string

	if m.filtering || m.filter.Value() != "" {
		sections = append(sections, m.filter.View())
	}

	if len(m.content.Breeds) == 0 {
		sections = append(sections, t.Renderer.NewStyle().Foreground(t.Muted).Italic(true).Render("No breeds to show."))
		return strings.Join(sections, "\n")
	}

	visible := m.visibleBreeds()
	if len(visible) == 0 {
		sections = append(sections, t.Renderer.NewStyle().Foreground(t.Muted).Italic(true).Render("No breeds match \""+m.filter.Value()+"\"."))
		return strings.Join(sections, "\n")
	}

	detail := m.renderBreedDetail()
	sideBySide := detail != "" && width >= BreakpointMedium
	cols := m.gridColumns(width)

	var rows []string
	for start := 0; start < len(visible); start += cols {
		end := start + cols
		if end > len(visible) {
			end = len(visible)
		}
		var cards []string
		for pos := start; pos < end; pos++ {
			cards = append(cards, m.renderBreedCard(m.content.Breeds[visible[pos]], pos == m.breedCursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)

	switch {
	case sideBySide:
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, grid, strings.Repeat(" ", SpaceSM), detail))
	case detail != "":
		sections = append(sections, grid, detail)
	default:
		sections = append(sections, grid)
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderBreedCard(b model.BreedInfo, focused bool) string {
	t := m.theme
	inner := BreedCardWidth - 4 // border + padding

	nameStyle := t.Renderer.NewStyle().Bold(true).Foreground(t.Text)
	prefix := "  "
	if strings.EqualFold(b.Name, m.selectedBreed) {
		nameStyle = nameStyle.Foreground(t.Accent)
		prefix = IconHeart + " "
	}
	if focused {
		nameStyle = nameStyle.Foreground(t.Primary)
	}
	lines := []string{nameStyle.Render(truncateOrPad(prefix+b.Name, inner))}

	// Tooltip line for the focused card
	var tip string
	if focused {
		tip = t.Renderer.NewStyle().Foreground(t.Muted).Italic(true).
			Render(truncateOrPad(IconTip+" from "+b.Origin, inner))
	} else {
		tip = strings.Repeat(" ", inner)
	}
	lines = append(lines, tip)

	style := PanelStyle(t)
	if focused {
		style = FocusedPanelStyle(t)
	}
	return style.Width(BreedCardWidth - 2).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderBreedDetail() string {
	b, ok := m.SelectedBreed()
	if !ok {
		return ""
	}
	t := m.theme
	inner := breedDetailWidth - 4
	label := t.Renderer.NewStyle().Foreground(t.Secondary).Bold(true)
	body := t.Renderer.NewStyle().Foreground(t.Subtext)

	var lines []string
	lines = append(lines, t.Renderer.NewStyle().Bold(true).Foreground(t.Accent).Render(truncate(b.Name, inner)))
	lines = append(lines, RenderSubtleDivider(inner, t))
	lines = append(lines, label.Render("Origin"))
	lines = append(lines, body.Render(truncate(b.Origin, inner)))
	lines = append(lines, label.Render("Personality"))
	for _, l := range wrapText(b.Personality, inner) {
		lines = append(lines, body.Render(l))
	}
	return FocusedPanelStyle(t).Width(breedDetailWidth - 2).Render(strings.Join(lines, "\n"))
}
