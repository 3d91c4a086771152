package path

import (
	"fmt"
	"strings"

	"github.com/Ravunus/Crane-Problem/grid"
)

// Path is an incrementally built monotone walk from the grid origin.
type Path struct {
	g      *grid.Grid
	row    int
	column int
	steps  []Direction
	total  int
}

// New returns an empty path at (0,0). Its total is the origin's crane
// count, 0 when the origin is a building.
func New(g *grid.Grid) *Path {
	return &Path{g: g, total: g.Cranes(0, 0)}
}

// Grid returns the grid the path walks.
func (p *Path) Grid() *grid.Grid { return p.g }

// Position returns the current cell.
func (p *Path) Position() grid.Coordinate {
	return grid.Coordinate{Row: p.row, Column: p.column}
}

// TotalCranes returns the cranes collected so far.
func (p *Path) TotalCranes() int { return p.total }

// Len returns the number of steps taken.
func (p *Path) Len() int { return len(p.steps) }

// Steps returns a copy of the step sequence.
func (p *Path) Steps() []Direction {
	out := make([]Direction, len(p.steps))
	copy(out, p.steps)
	return out
}

// Complete reports whether the path has reached the destination.
func (p *Path) Complete() bool {
	return p.Position() == p.g.Destination()
}

// IsStepValid reports whether d stays within the grid and lands on a
// non-building cell. A path stuck on a building origin has no valid steps.
// Complexity: O(1).
func (p *Path) IsStepValid(d Direction) bool {
	dr, dc, ok := d.delta()
	if !ok || p.g.IsBuilding(p.row, p.column) {
		return false
	}
	r, c := p.row+dr, p.column+dc
	return p.g.InBounds(r, c) && !p.g.IsBuilding(r, c)
}

// AddStep appends d, moves the position and adds the new cell's cranes.
// It returns ErrInvalidStep and leaves p untouched if IsStepValid(d) is
// false.
// Complexity: amortized O(1).
func (p *Path) AddStep(d Direction) error {
	if !p.IsStepValid(d) {
		return fmt.Errorf("%w: %v from (%d,%d)", ErrInvalidStep, d, p.row, p.column)
	}
	dr, dc, _ := d.delta()
	p.row += dr
	p.column += dc
	p.steps = append(p.steps, d)
	p.total += p.g.Cranes(p.row, p.column)

	return nil
}

// Clone returns an independent copy sharing only the read-only grid.
// Complexity: O(Len).
func (p *Path) Clone() *Path {
	cp := *p
	// Spare capacity for the step the caller is about to add.
	cp.steps = make([]Direction, len(p.steps), len(p.steps)+1)
	copy(cp.steps, p.steps)
	return &cp
}

// Visited returns every cell on the path in order, origin first.
func (p *Path) Visited() []grid.Coordinate {
	out := make([]grid.Coordinate, 0, len(p.steps)+1)
	r, c := 0, 0
	out = append(out, grid.Coordinate{Row: r, Column: c})
	for _, d := range p.steps {
		dr, dc, _ := d.delta()
		r, c = r+dr, c+dc
		out = append(out, grid.Coordinate{Row: r, Column: c})
	}

	return out
}

// String summarizes the path, e.g. "cranes=7 steps=[east south]".
func (p *Path) String() string {
	names := make([]string, len(p.steps))
	for i, d := range p.steps {
		names[i] = d.String()
	}
	return fmt.Sprintf("cranes=%d steps=[%s]", p.total, strings.Join(names, " "))
}

// Render draws the grid with every visited cell replaced by "*".
func (p *Path) Render() string {
	onPath := make(map[grid.Coordinate]bool, len(p.steps)+1)
	for _, at := range p.Visited() {
		onPath[at] = true
	}
	return p.g.Render(func(r, c int) (string, bool) {
		if onPath[grid.Coordinate{Row: r, Column: c}] {
			return "*", true
		}
		return "", false
	})
}
