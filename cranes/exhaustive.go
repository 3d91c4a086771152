package cranes

import (
	"fmt"

	"github.com/Ravunus/Crane-Problem/grid"
	"github.com/Ravunus/Crane-Problem/path"
)

// SolveExhaustive finds the best path by trying every East/South step
// sequence of length n = g.TotalMoves().
//
// Each integer bits in [0, 2^n) encodes one candidate: bit k set means
// step k goes South, clear means East. A candidate is replayed from the
// origin until its first invalid step (off the grid or into a building)
// and then scored as whatever prefix was applied. The best score wins;
// on ties the lowest bits value is kept.
//
// The result may stop short of the destination when no complete path
// exists. Callers that need a complete path check Complete() or use
// Solve with RequireComplete.
//
// Returns ErrNilGrid for a nil grid and ErrTooManyMoves when n exceeds
// MaxExhaustiveMoves.
//
// Time complexity:   O(2^n · n)
// Memory complexity: O(n)
func SolveExhaustive(g *grid.Grid) (*path.Path, error) {
	return enumerate(g, false)
}

// enumerate runs the bit-pattern search. With completeOnly, truncated
// candidates are discarded instead of scored and ErrUnreachable is
// returned when no candidate reaches the destination.
func enumerate(g *grid.Grid, completeOnly bool) (*path.Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	moves := g.TotalMoves()
	if moves > MaxExhaustiveMoves {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyMoves, moves, MaxExhaustiveMoves)
	}

	var best *path.Path
	if !completeOnly {
		best = path.New(g)
	}
	limit := int64(1) << moves
	for bits := int64(0); bits < limit; bits++ {
		candidate := replay(g, bits, moves)
		if completeOnly && !candidate.Complete() {
			continue
		}
		if best == nil || candidate.TotalCranes() > best.TotalCranes() {
			best = candidate
		}
	}
	if best == nil {
		dst := g.Destination()
		return nil, fmt.Errorf("%w: (%d,%d)", ErrUnreachable, dst.Row, dst.Column)
	}

	return best, nil
}

// replay decodes bits into up to moves steps, stopping at the first
// invalid one.
func replay(g *grid.Grid, bits int64, moves int) *path.Path {
	p := path.New(g)
	for k := 0; k < moves; k++ {
		d := path.East
		if bits&(int64(1)<<k) != 0 {
			d = path.South
		}
		if !p.IsStepValid(d) {
			break
		}
		// IsStepValid was just checked.
		_ = p.AddStep(d)
	}

	return p
}
