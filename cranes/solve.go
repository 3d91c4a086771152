package cranes

import (
	"fmt"

	"github.com/Ravunus/Crane-Problem/grid"
	"github.com/Ravunus/Crane-Problem/path"
)

// Solve routes g to the solver chosen by opts.Algorithm.
//
// Contracts:
//   - g must be non-nil and is only read.
//   - With RequireComplete, Exhaustive scores only candidates that reach
//     the destination and reports ErrUnreachable when there are none,
//     matching DynProg's contract. A zero-crane tail can make the
//     best-effort search settle on a prefix even when a complete path of
//     the same total exists; RequireComplete rules that out.
//
// Errors: the chosen solver's sentinels, or ErrUnsupportedAlgorithm.
func Solve(g *grid.Grid, opts Options) (*path.Path, error) {
	switch opts.Algorithm {
	case DynProg:
		return SolveDynProg(g)
	case Exhaustive:
		return enumerate(g, opts.RequireComplete)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, opts.Algorithm)
	}
}
