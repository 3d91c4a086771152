package cranes

import (
	"fmt"

	"github.com/Ravunus/Crane-Problem/path"
)

// Verify re-walks p from the origin and checks that every step stays on
// the grid and avoids buildings, and that the crane sum over the visited
// cells equals p.TotalCranes().
// Problems are reported as ErrInvalidPath wrapped with details.
// Complexity: O(p.Len()).
func Verify(p *path.Path) error {
	if p == nil || p.Grid() == nil {
		return fmt.Errorf("%w: nil path", ErrInvalidPath)
	}
	g := p.Grid()
	if g.IsBuilding(0, 0) {
		return fmt.Errorf("%w: origin is a building", ErrInvalidPath)
	}

	replayed := path.New(g)
	for i, d := range p.Steps() {
		if err := replayed.AddStep(d); err != nil {
			return fmt.Errorf("%w: step %d: %v", ErrInvalidPath, i, err)
		}
	}

	// AddStep already maintains the total and position, so these only
	// fail if Path stops enforcing its own invariants.
	sum := 0
	for _, at := range p.Visited() {
		sum += g.Cranes(at.Row, at.Column)
	}
	if sum != p.TotalCranes() {
		return fmt.Errorf("%w: total %d, visited cells sum to %d", ErrInvalidPath, p.TotalCranes(), sum)
	}
	if replayed.Position() != p.Position() {
		return fmt.Errorf("%w: ends at %v, steps lead to %v", ErrInvalidPath, p.Position(), replayed.Position())
	}

	return nil
}
