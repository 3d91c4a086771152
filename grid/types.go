package grid

import (
	"errors"
	"strconv"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidCell indicates a cell value that is neither Building nor a crane count.
	ErrInvalidCell = errors.New("grid: cell must be a building or a non-negative crane count")
	// ErrBadToken indicates an unreadable token in the text format.
	ErrBadToken = errors.New("grid: bad cell token")
	// ErrBadOption indicates RandomOptions outside their allowed range.
	ErrBadOption = errors.New("grid: random option out of range")
)

// Cell is the content of a single grid cell: Building, or a crane count ≥ 0.
type Cell int

// Building marks an impassable cell.
const Building Cell = -1

// Empty is a passable cell holding no cranes.
const Empty Cell = 0

// Text tokens used by Parse and String.
const (
	buildingToken = "X"
	emptyToken    = "."
)

// IsBuilding reports whether c is the building marker.
func (c Cell) IsBuilding() bool {
	return c == Building
}

// Cranes returns the crane count of c, 0 for buildings.
func (c Cell) Cranes() int {
	if c.IsBuilding() {
		return 0
	}
	return int(c)
}

// String renders c as a text-format token.
func (c Cell) String() string {
	switch {
	case c.IsBuilding():
		return buildingToken
	case c == Empty:
		return emptyToken
	default:
		return strconv.Itoa(int(c))
	}
}

// Coordinate addresses a cell by row and column, both zero-based.
type Coordinate struct {
	Row, Column int
}

// Grid is an immutable rectangle of cells. Cells[r][c] is never exposed
// directly; use Get.
type Grid struct {
	rows, columns int
	cells         [][]Cell
}
