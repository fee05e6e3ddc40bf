package ui

// Layout breakpoints. These values decide how many breed cards fit on a row
// and when side panels stack vertically.
const (
	// BreakpointNarrow is the width below which panels stack and the breed
	// grid collapses to a single column.
	BreakpointNarrow = 60

	// BreakpointMedium is the width above which the breed detail panel sits
	// beside the grid.
	BreakpointMedium = 90
)

// Box and panel dimension constraints.
const (
	// DefaultWidth is used before the first WindowSizeMsg arrives.
	DefaultWidth = 80

	// MaxPageWidth caps the card so long lines stay readable on wide terminals.
	MaxPageWidth = 100

	// MinBoxWidth is the minimum width for bordered content boxes.
	MinBoxWidth = 20

	// BreedCardWidth is the outer width of one breed card, borders included.
	BreedCardWidth = 22

	// MaxBreedColumns caps the breed grid width.
	MaxBreedColumns = 3
)

// pageWidth returns the inner content width for a terminal width.
func pageWidth(termWidth int) int {
	w := termWidth
	if w <= 0 {
		w = DefaultWidth
	}
	if w > MaxPageWidth {
		w = MaxPageWidth
	}
	// card border (2) + card padding (4)
	w -= 6
	if w < MinBoxWidth {
		w = MinBoxWidth
	}
	return w
}

// breedColumns returns how many breed cards fit on a row of width cells.
func breedColumns(width int) int {
	if width < BreakpointNarrow {
		return 1
	}
	cols := width / (BreedCardWidth + 1)
	if cols < 1 {
		cols = 1
	}
	if cols > MaxBreedColumns {
		cols = MaxBreedColumns
	}
	return cols
}
