package cranes

import (
	"fmt"

	"github.com/Ravunus/Crane-Problem/grid"
	"github.com/Ravunus/Crane-Problem/path"
)

// SolveDynProg finds the best path with a row-major dynamic program.
//
// Algorithm Outline:
//  1. Allocate an R×C table A of paths; nil means "no path reaches here".
//  2. A[0][0] = empty path at the origin.
//  3. For r = 0..R-1, c = 0..C-1 (skipping the origin):
//     building          → A[r][c] = nil
//     above = A[r-1][c] (nil on the top edge)
//     left  = A[r][c-1] (nil on the left edge)
//     both present      → extend the one with more cranes; ties go to above (South)
//     one present       → extend it
//     neither           → A[r][c] = nil
//  4. The answer is A[R-1][C-1].
//
// Row-major order is enough because each cell depends only on its north
// and west neighbours. Every stored entry is an independent clone, so
// extending one never disturbs another.
//
// Returns ErrNilGrid for a nil grid, ErrOriginBlocked when (0,0) is a
// building and ErrUnreachable when no path reaches the destination.
//
// Complexity:
//
//	Time   = O(R·C·(R+C)) (each cell clones a prefix of length < R+C)
//	Memory = O(R·C·(R+C))
func SolveDynProg(g *grid.Grid) (*path.Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.IsBuilding(0, 0) {
		return nil, ErrOriginBlocked
	}

	rows, columns := g.Rows(), g.Columns()
	table := make([][]*path.Path, rows)
	for r := range table {
		table[r] = make([]*path.Path, columns)
	}
	table[0][0] = path.New(g)

	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			if r == 0 && c == 0 {
				continue
			}
			if g.IsBuilding(r, c) {
				continue
			}

			var above, left *path.Path
			if r > 0 {
				above = table[r-1][c]
			}
			if c > 0 {
				left = table[r][c-1]
			}

			switch {
			case above != nil && left != nil:
				if above.TotalCranes() < left.TotalCranes() {
					table[r][c] = extend(left, path.East)
				} else {
					table[r][c] = extend(above, path.South)
				}
			case above != nil:
				table[r][c] = extend(above, path.South)
			case left != nil:
				table[r][c] = extend(left, path.East)
			}
		}
	}

	best := table[rows-1][columns-1]
	if best == nil {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrUnreachable, rows-1, columns-1)
	}

	return best, nil
}

// extend clones p and appends d. The target cell is known to be in
// bounds and open, so the step cannot fail.
func extend(p *path.Path, d path.Direction) *path.Path {
	next := p.Clone()
	_ = next.AddStep(d)
	return next
}
