// Package carousel implements circular navigation over a fixed ordered list.
package carousel

import "errors"

// ErrEmpty is returned when a navigator is built over zero items.
var ErrEmpty = errors.New("carousel has no items")

// Advance returns the index after index in a ring of n items.
// n must be positive; for n <= 0 the result is 0.
func Advance(index, n int) int {
	if n <= 0 {
		return 0
	}
	return (normalize(index, n) + 1) % n
}

// Retreat returns the index before index in a ring of n items.
// n must be positive; for n <= 0 the result is 0.
func Retreat(index, n int) int {
	if n <= 0 {
		return 0
	}
	return (normalize(index, n) - 1 + n) % n
}

func normalize(index, n int) int {
	return ((index % n) + n) % n
}

// Navigator holds the current position in a ring of n items.
// The zero value is not usable; build one with New.
type Navigator struct {
	index int
	n     int
}

// New creates a navigator positioned at the first of n items.
func New(n int) (Navigator, error) {
	if n <= 0 {
		return Navigator{}, ErrEmpty
	}
	return Navigator{n: n}, nil
}

// Index returns the current position
func (nav Navigator) Index() int { return nav.index }

// Len returns the number of items
func (nav Navigator) Len() int { return nav.n }

// Next moves one item forward, wrapping to the start.
func (nav Navigator) Next() Navigator {
	nav.index = Advance(nav.index, nav.n)
	return nav
}

// Prev moves one item back, wrapping to the end.
func (nav Navigator) Prev() Navigator {
	nav.index = Retreat(nav.index, nav.n)
	return nav
}

// Resize changes the ring length, keeping the position when it is still in
// range and clamping to the last item otherwise.
func (nav Navigator) Resize(n int) (Navigator, error) {
	if n <= 0 {
		return nav, ErrEmpty
	}
	nav.n = n
	if nav.index >= n {
		nav.index = n - 1
	}
	return nav, nil
}
