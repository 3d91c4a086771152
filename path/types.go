package path

import (
	"errors"
	"fmt"
)

// ErrInvalidStep is returned by AddStep when the step would leave the
// grid or enter a building.
var ErrInvalidStep = errors.New("path: step leaves the grid or enters a building")

// Direction is a single monotone move.
type Direction int

const (
	// East moves one column right.
	East Direction = iota
	// South moves one row down.
	South
)

// delta returns the (row, column) offset of d.
func (d Direction) delta() (dr, dc int, ok bool) {
	switch d {
	case East:
		return 0, 1, true
	case South:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// String returns "east" or "south".
func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case South:
		return "south"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// MarshalText encodes d as its String form.
func (d Direction) MarshalText() ([]byte, error) {
	if _, _, ok := d.delta(); !ok {
		return nil, fmt.Errorf("path: unknown direction %d", int(d))
	}
	return []byte(d.String()), nil
}
