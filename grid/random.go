package grid

import (
	"fmt"
	"math/rand"
)

// defaultSeed is used when RandomOptions.Seed is 0.
const defaultSeed int64 = 1

// RandomOptions tunes Random.
//
// Fields:
//   - Seed                — RNG seed; 0 selects a fixed default, so output is always reproducible.
//   - BuildingProbability — chance in [0,1) that a cell other than the origin is a building.
//   - MaxCranes           — crane counts are drawn uniformly from [0, MaxCranes].
type RandomOptions struct {
	Seed                int64
	BuildingProbability float64
	MaxCranes           int
}

// DefaultRandomOptions returns RandomOptions with Seed=0,
// BuildingProbability=0.2 and MaxCranes=9.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{
		Seed:                0,
		BuildingProbability: 0.2,
		MaxCranes:           9,
	}
}

// Random builds a rows×columns grid from opts. The same options always
// yield the same grid. The origin is never a building; nothing else is
// guaranteed, so the destination may be unreachable.
// Returns ErrEmptyGrid for non-positive dimensions and ErrBadOption for
// out-of-range options.
// Complexity: O(R×C).
func Random(rows, columns int, opts RandomOptions) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, ErrEmptyGrid
	}
	if opts.BuildingProbability < 0 || opts.BuildingProbability >= 1 {
		return nil, fmt.Errorf("%w: building probability %v", ErrBadOption, opts.BuildingProbability)
	}
	if opts.MaxCranes < 0 {
		return nil, fmt.Errorf("%w: max cranes %d", ErrBadOption, opts.MaxCranes)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	cells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]Cell, columns)
		for c := 0; c < columns; c++ {
			// Draw both values for every cell so the stream does not depend
			// on which cells became buildings.
			building := rng.Float64() < opts.BuildingProbability
			cranes := Cell(rng.Intn(opts.MaxCranes + 1))
			if building && (r != 0 || c != 0) {
				cells[r][c] = Building
				continue
			}
			cells[r][c] = cranes
		}
	}

	return New(cells)
}
