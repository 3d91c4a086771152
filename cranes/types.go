package cranes

import (
	"errors"
	"fmt"
	"strings"
)

// MaxExhaustiveMoves is the largest step count Exhaustive enumerates:
// 1<<MaxExhaustiveMoves still fits in a signed 64-bit integer.
const MaxExhaustiveMoves = 62

// Sentinel errors for the solvers.
var (
	// ErrNilGrid indicates a nil grid was passed in.
	ErrNilGrid = errors.New("cranes: grid must be non-nil")
	// ErrTooManyMoves indicates the grid is too large to enumerate.
	ErrTooManyMoves = errors.New("cranes: too many moves for exhaustive search")
	// ErrOriginBlocked indicates the origin cell is a building.
	ErrOriginBlocked = errors.New("cranes: origin is a building")
	// ErrUnreachable indicates no monotone path reaches the destination.
	ErrUnreachable = errors.New("cranes: destination is unreachable")
	// ErrUnsupportedAlgorithm indicates an unknown Algorithm.
	ErrUnsupportedAlgorithm = errors.New("cranes: unsupported algorithm")
	// ErrInvalidPath indicates a path that breaks the monotone walk rules.
	ErrInvalidPath = errors.New("cranes: invalid path")
)

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// DynProg is the dynamic-programming solver (default).
	DynProg Algorithm = iota
	// Exhaustive is the brute-force enumeration solver.
	Exhaustive
)

// String returns "dynprog" or "exhaustive".
func (a Algorithm) String() string {
	switch a {
	case DynProg:
		return "dynprog"
	case Exhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// "dp" and "dyn_prog" are accepted for DynProg, "brute" for Exhaustive.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dynprog", "dyn_prog", "dp":
		return DynProg, nil
	case "exhaustive", "brute":
		return Exhaustive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}

// Options configures Solve.
//
// Fields:
//   - Algorithm       — which solver to run.
//   - RequireComplete — only paths that reach the destination count, and
//     ErrUnreachable is returned when none does. DynProg always behaves
//     this way; for Exhaustive it replaces the best-effort prefix.
type Options struct {
	Algorithm       Algorithm
	RequireComplete bool
}

// DefaultOptions returns Options{Algorithm: DynProg, RequireComplete: false}.
func DefaultOptions() Options {
	return Options{Algorithm: DynProg}
}
