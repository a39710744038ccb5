// Package selector tracks which menu option is highlighted and which frame
// of the selector sprite is on screen. The two counters are independent:
// navigation never touches the animation and vice versa.
package selector

import "errors"

// ErrNoLocations is returned when a selection is built without positions
var ErrNoLocations = errors.New("selector: at least one location is required")

// Point is a screen position in pixels
type Point struct {
	X, Y float64
}

// Selection is the highlighted menu option. Indices wrap around in both
// directions and never leave [0, Options()].
type Selection struct {
	locations []Point
	options   int
	current   int
}

// NewSelection stores N+1 selector positions. Index 0 is selected first.
func NewSelection(locations []Point) (*Selection, error) {
	if len(locations) == 0 {
		return nil, ErrNoLocations
	}
	locs := make([]Point, len(locations))
	copy(locs, locations)
	return &Selection{
		locations: locs,
		options:   len(locs) - 1,
	}, nil
}

// Options returns the highest valid index (the number of locations minus one)
func (s *Selection) Options() int {
	return s.options
}

// Current returns the selected index
func (s *Selection) Current() int {
	return s.current
}

// Location returns the position of the selected option
func (s *Selection) Location() Point {
	return s.locations[s.current]
}

// Locations returns a copy of all positions
func (s *Selection) Locations() []Point {
	locs := make([]Point, len(s.locations))
	copy(locs, s.locations)
	return locs
}

// Forward moves to the next option, wrapping to 0 after the last one.
func (s *Selection) Forward() {
	s.current++
	if s.current > s.options {
		s.current = 0
	}
}

// Back moves to the previous option, wrapping to the last one before 0.
func (s *Selection) Back() {
	s.current--
	if s.current < 0 {
		s.current = s.options
	}
}

// Set restores a previously selected index. Out-of-range values are ignored
// and reported as false.
func (s *Selection) Set(index int) bool {
	if index < 0 || index > s.options {
		return false
	}
	s.current = index
	return true
}
