package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to cells do not leak in.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrInvalidCell
// if a value is below Building.
// Complexity: O(R×C) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, columns := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != columns {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	copied := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		copied[r] = make([]Cell, columns)
		for c, v := range cells[r] {
			if v < Building {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidCell, v, r, c)
			}
			copied[r][c] = v
		}
	}

	return &Grid{rows: rows, columns: columns, cells: copied}, nil
}

// FromInts is New for plain integers; -1 is a building.
func FromInts(values [][]int) (*Grid, error) {
	cells := make([][]Cell, len(values))
	for r, row := range values {
		cells[r] = make([]Cell, len(row))
		for c, v := range row {
			cells[r][c] = Cell(v)
		}
	}

	return New(cells)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// Get returns the cell at (r, c). It panics if (r, c) is out of bounds,
// like an index expression would.
func (g *Grid) Get(r, c int) Cell {
	return g.cells[r][c]
}

// InBounds reports whether (r, c) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.columns
}

// IsBuilding reports whether (r, c) is in bounds and holds a building.
func (g *Grid) IsBuilding(r, c int) bool {
	return g.InBounds(r, c) && g.cells[r][c].IsBuilding()
}

// Cranes returns the crane count at (r, c); 0 for buildings.
func (g *Grid) Cranes(r, c int) int {
	return g.cells[r][c].Cranes()
}

// Destination returns the bottom-right coordinate.
func (g *Grid) Destination() Coordinate {
	return Coordinate{Row: g.rows - 1, Column: g.columns - 1}
}

// TotalMoves returns the number of steps in any monotone path from the
// origin to the destination: rows+columns-2.
func (g *Grid) TotalMoves() int {
	return g.rows + g.columns - 2
}

// Cells returns a deep copy of the cell matrix.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := range g.cells {
		out[r] = make([]Cell, g.columns)
		copy(out[r], g.cells[r])
	}

	return out
}

// String renders the grid in the format accepted by Parse, columns
// right-aligned to the widest token.
func (g *Grid) String() string {
	return g.render(func(r, c int) string { return g.cells[r][c].String() })
}

// Render is String with a per-cell override: mark returns the token to
// print and true, or false to fall back to the cell itself.
func (g *Grid) Render(mark func(r, c int) (string, bool)) string {
	return g.render(func(r, c int) string {
		if tok, ok := mark(r, c); ok {
			return tok
		}
		return g.cells[r][c].String()
	})
}

func (g *Grid) render(token func(r, c int) string) string {
	tokens := make([][]string, g.rows)
	width := 1
	for r := 0; r < g.rows; r++ {
		tokens[r] = make([]string, g.columns)
		for c := 0; c < g.columns; c++ {
			tok := token(r, c)
			tokens[r][c] = tok
			if len(tok) > width {
				width = len(tok)
			}
		}
	}

	var sb strings.Builder
	for r, row := range tokens {
		for c, tok := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strings.Repeat(" ", width-len(tok)))
			sb.WriteString(tok)
		}
		if r < len(tokens)-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
