package cranes_test

import (
	"testing"

	"github.com/Ravunus/Crane-Problem/cranes"
	"github.com/Ravunus/Crane-Problem/grid"
	"github.com/Ravunus/Crane-Problem/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// X marks a building in test fixtures.
const X = -1

// E and S shorten expected step lists.
const (
	E = path.East
	S = path.South
)

// mustGrid builds a grid from ints or fails the test.
func mustGrid(t testing.TB, values [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.FromInts(values)
	require.NoError(t, err)
	return g
}

// solver names a solver entry point for table tests.
type solver struct {
	name  string
	solve func(*grid.Grid) (*path.Path, error)
}

var solvers = []solver{
	{"Exhaustive", cranes.SolveExhaustive},
	{"DynProg", cranes.SolveDynProg},
}

//----------------------------------------------------------------------------//
// Shared behaviour
//----------------------------------------------------------------------------//

// TestSolvers_SingleCell: a 1×1 grid needs no steps and scores its own cranes.
func TestSolvers_SingleCell(t *testing.T) {
	g := mustGrid(t, [][]int{{5}})
	for _, s := range solvers {
		t.Run(s.name, func(t *testing.T) {
			best, err := s.solve(g)
			require.NoError(t, err)
			assert.Zero(t, best.Len())
			assert.Equal(t, 5, best.TotalCranes())
			assert.True(t, best.Complete())
		})
	}
}

// TestSolvers_ObstacleRouting: with a building in the middle, both solvers
// go down the left side (1+4+6+7+8) rather than across the top (1+2+3+5+8).
func TestSolvers_ObstacleRouting(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 2, 3},
		{4, X, 5},
		{6, 7, 8},
	})
	for _, s := range solvers {
		t.Run(s.name, func(t *testing.T) {
			best, err := s.solve(g)
			require.NoError(t, err)
			assert.Equal(t, 26, best.TotalCranes())
			assert.Equal(t, []path.Direction{S, S, E, E}, best.Steps())
			assert.True(t, best.Complete())
			assert.NoError(t, cranes.Verify(best))
		})
	}
}

// TestSolvers_Fixtures checks hand-computed optima on larger grids.
func TestSolvers_Fixtures(t *testing.T) {
	cases := []struct {
		name  string
		grid  [][]int
		total int
		steps []path.Direction
	}{
		{
			name:  "SingleRow",
			grid:  [][]int{{3, 1, 4, 1, 5}},
			total: 14,
			steps: []path.Direction{E, E, E, E},
		},
		{
			name:  "SingleColumn",
			grid:  [][]int{{2}, {7}, {1}, {8}},
			total: 18,
			steps: []path.Direction{S, S, S},
		},
		{
			name: "Zigzag",
			grid: [][]int{
				{1, X, 0, 0},
				{2, 3, X, 0},
				{X, 4, 5, 6},
			},
			total: 21,
			steps: []path.Direction{S, E, S, E, E},
		},
		{
			name: "Dock4x5",
			grid: [][]int{
				{2, 0, 3, X, 1},
				{1, 4, X, 2, 0},
				{0, X, 5, 1, 3},
				{3, 1, 0, 0, 2},
			},
			total: 9,
			steps: []path.Direction{S, S, S, E, E, E, E},
		},
	}
	for _, tc := range cases {
		g := mustGrid(t, tc.grid)
		for _, s := range solvers {
			t.Run(tc.name+"/"+s.name, func(t *testing.T) {
				best, err := s.solve(g)
				require.NoError(t, err)
				assert.Equal(t, tc.total, best.TotalCranes())
				assert.Equal(t, tc.steps, best.Steps())
				assert.NoError(t, cranes.Verify(best))
			})
		}
	}
}

// TestSolvers_Deterministic: repeated solves over one grid give identical paths.
func TestSolvers_Deterministic(t *testing.T) {
	opts := grid.DefaultRandomOptions()
	opts.Seed = 7
	g, err := grid.Random(5, 6, opts)
	require.NoError(t, err)
	for _, s := range solvers {
		t.Run(s.name, func(t *testing.T) {
			first, err1 := s.solve(g)
			second, err2 := s.solve(g)
			assert.Equal(t, err1, err2)
			if err1 != nil {
				return
			}
			assert.Equal(t, first.Steps(), second.Steps())
			assert.Equal(t, first.TotalCranes(), second.TotalCranes())
		})
	}
}

// TestSolvers_Agreement compares DynProg against complete-only exhaustive
// search on many random grids, and checks both results with Verify.
func TestSolvers_Agreement(t *testing.T) {
	exhaustive := cranes.Options{Algorithm: cranes.Exhaustive, RequireComplete: true}
	solved := 0
	for seed := int64(1); seed <= 60; seed++ {
		opts := grid.RandomOptions{Seed: seed, BuildingProbability: 0.25, MaxCranes: 9}
		rows, columns := int(seed%5)+1, int(seed%7)+1
		g, err := grid.Random(rows, columns, opts)
		require.NoError(t, err)

		dp, dpErr := cranes.SolveDynProg(g)
		ex, exErr := cranes.Solve(g, exhaustive)
		if dpErr != nil {
			assert.ErrorIs(t, dpErr, cranes.ErrUnreachable, "seed %d", seed)
			assert.ErrorIs(t, exErr, cranes.ErrUnreachable, "seed %d", seed)
			continue
		}
		solved++
		require.NoError(t, exErr, "seed %d", seed)
		assert.Equal(t, ex.TotalCranes(), dp.TotalCranes(), "seed %d\n%v", seed, g)
		assert.NoError(t, cranes.Verify(dp), "seed %d", seed)
		assert.NoError(t, cranes.Verify(ex), "seed %d", seed)
		assert.True(t, dp.Complete())
		assert.True(t, ex.Complete())

		// Best-effort search can only do as well or better, via a dead end.
		be, err := cranes.SolveExhaustive(g)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, be.TotalCranes(), dp.TotalCranes(), "seed %d", seed)
		if be.Complete() {
			assert.Equal(t, dp.TotalCranes(), be.TotalCranes(), "seed %d", seed)
		}
	}
	assert.Positive(t, solved, "fixture seeds must include solvable grids")
}

// TestSolvers_NilGrid rejects nil input.
func TestSolvers_NilGrid(t *testing.T) {
	for _, s := range solvers {
		t.Run(s.name, func(t *testing.T) {
			_, err := s.solve(nil)
			assert.ErrorIs(t, err, cranes.ErrNilGrid)
		})
	}
}

//----------------------------------------------------------------------------//
// Exhaustive
//----------------------------------------------------------------------------//

// TestExhaustive_FullyBlocked returns the origin when both exits are buildings.
func TestExhaustive_FullyBlocked(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, X},
		{X, 1},
	})
	best, err := cranes.SolveExhaustive(g)
	require.NoError(t, err)
	assert.Zero(t, best.Len())
	assert.Equal(t, 1, best.TotalCranes())
	assert.False(t, best.Complete())
}

// TestExhaustive_BestPrefix returns the richest dead end when the
// destination cannot be reached.
func TestExhaustive_BestPrefix(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 5, X},
		{2, X, 0},
		{X, 0, 0},
	})
	best, err := cranes.SolveExhaustive(g)
	require.NoError(t, err)
	assert.Equal(t, []path.Direction{E}, best.Steps())
	assert.Equal(t, 6, best.TotalCranes())
	assert.False(t, best.Complete())
}

// TestExhaustive_DeadEndBeatsCompletePath documents that best-effort search
// scores truncated candidates: a rich dead end outranks a poor complete path.
func TestExhaustive_DeadEndBeatsCompletePath(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0, 0},
		{9, X, 0},
		{X, 0, 0},
	})
	best, err := cranes.SolveExhaustive(g)
	require.NoError(t, err)
	assert.Equal(t, []path.Direction{S}, best.Steps())
	assert.Equal(t, 9, best.TotalCranes())

	complete, err := cranes.Solve(g, cranes.Options{Algorithm: cranes.Exhaustive, RequireComplete: true})
	require.NoError(t, err)
	assert.Equal(t, 0, complete.TotalCranes())
	assert.True(t, complete.Complete())
}

// TestExhaustive_TieKeepsFirst: bit pattern 0 (east, east) stops after one
// step with 1 crane; later patterns only tie, so the prefix is kept.
func TestExhaustive_TieKeepsFirst(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 1},
		{1, 0},
	})
	best, err := cranes.SolveExhaustive(g)
	require.NoError(t, err)
	assert.Equal(t, []path.Direction{E}, best.Steps())
	assert.Equal(t, 1, best.TotalCranes())

	// Among complete paths, pattern 1 (south, east) comes first.
	complete, err := cranes.Solve(g, cranes.Options{Algorithm: cranes.Exhaustive, RequireComplete: true})
	require.NoError(t, err)
	assert.Equal(t, []path.Direction{S, E}, complete.Steps())
}

// TestExhaustive_BuildingOrigin cannot move off a building.
func TestExhaustive_BuildingOrigin(t *testing.T) {
	g := mustGrid(t, [][]int{
		{X, 3},
		{4, 5},
	})
	best, err := cranes.SolveExhaustive(g)
	require.NoError(t, err)
	assert.Zero(t, best.Len())
	assert.Zero(t, best.TotalCranes())
}

// TestExhaustive_TooManyMoves guards the 64-bit enumeration limit.
func TestExhaustive_TooManyMoves(t *testing.T) {
	row := make([]int, cranes.MaxExhaustiveMoves+2) // moves = MaxExhaustiveMoves+1
	g := mustGrid(t, [][]int{row})
	_, err := cranes.SolveExhaustive(g)
	assert.ErrorIs(t, err, cranes.ErrTooManyMoves)

	// DynProg has no such limit.
	best, err := cranes.SolveDynProg(g)
	require.NoError(t, err)
	assert.Equal(t, cranes.MaxExhaustiveMoves+1, best.Len())
}

//----------------------------------------------------------------------------//
// DynProg
//----------------------------------------------------------------------------//

// TestDynProg_FullyBlocked reports an unreachable destination.
func TestDynProg_FullyBlocked(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, X},
		{X, 1},
	})
	_, err := cranes.SolveDynProg(g)
	assert.ErrorIs(t, err, cranes.ErrUnreachable)
}

// TestDynProg_BuildingDestination is unreachable too.
func TestDynProg_BuildingDestination(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 2},
		{3, X},
	})
	_, err := cranes.SolveDynProg(g)
	assert.ErrorIs(t, err, cranes.ErrUnreachable)
}

// TestDynProg_OriginBlocked rejects a building at (0,0).
func TestDynProg_OriginBlocked(t *testing.T) {
	g := mustGrid(t, [][]int{
		{X, 3},
		{4, 5},
	})
	_, err := cranes.SolveDynProg(g)
	assert.ErrorIs(t, err, cranes.ErrOriginBlocked)
}

// TestDynProg_TieFavorsSouth: equal totals from north and west pick north.
func TestDynProg_TieFavorsSouth(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 1},
		{1, 0},
	})
	best, err := cranes.SolveDynProg(g)
	require.NoError(t, err)
	assert.Equal(t, []path.Direction{E, S}, best.Steps())
	assert.Equal(t, 1, best.TotalCranes())
}

// TestDynProg_PicksRicherNeighbour: the west neighbour wins when strictly better.
func TestDynProg_PicksRicherNeighbour(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 1},
		{2, 0},
	})
	best, err := cranes.SolveDynProg(g)
	require.NoError(t, err)
	assert.Equal(t, []path.Direction{S, E}, best.Steps())
	assert.Equal(t, 2, best.TotalCranes())
}

//----------------------------------------------------------------------------//
// Solve, ParseAlgorithm, Verify
//----------------------------------------------------------------------------//

// TestSolve_Routes dispatches by Algorithm.
func TestSolve_Routes(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, X},
		{X, 1},
	})

	_, err := cranes.Solve(g, cranes.DefaultOptions())
	assert.ErrorIs(t, err, cranes.ErrUnreachable, "default is DynProg")

	best, err := cranes.Solve(g, cranes.Options{Algorithm: cranes.Exhaustive})
	require.NoError(t, err)
	assert.Zero(t, best.Len(), "best-effort exhaustive")

	_, err = cranes.Solve(g, cranes.Options{Algorithm: cranes.Exhaustive, RequireComplete: true})
	assert.ErrorIs(t, err, cranes.ErrUnreachable)

	_, err = cranes.Solve(g, cranes.Options{Algorithm: cranes.Algorithm(42)})
	assert.ErrorIs(t, err, cranes.ErrUnsupportedAlgorithm)
}

// TestParseAlgorithm covers names, aliases and failures.
func TestParseAlgorithm(t *testing.T) {
	cases := map[string]cranes.Algorithm{
		"dynprog":    cranes.DynProg,
		"DP":         cranes.DynProg,
		"dyn_prog":   cranes.DynProg,
		"Exhaustive": cranes.Exhaustive,
		" brute ":    cranes.Exhaustive,
	}
	for name, want := range cases {
		got, err := cranes.ParseAlgorithm(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := cranes.ParseAlgorithm("greedy")
	assert.ErrorIs(t, err, cranes.ErrUnsupportedAlgorithm)

	assert.Equal(t, "dynprog", cranes.DynProg.String())
	assert.Equal(t, "exhaustive", cranes.Exhaustive.String())
	assert.Equal(t, "Algorithm(42)", cranes.Algorithm(42).String())
}

// TestVerify accepts hand-built paths and rejects broken inputs.
func TestVerify(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 2},
		{X, 3},
	})
	p := path.New(g)
	require.NoError(t, p.AddStep(E))
	require.NoError(t, p.AddStep(S))
	assert.NoError(t, cranes.Verify(p))
	assert.NoError(t, cranes.Verify(path.New(g)), "empty path is valid")

	assert.ErrorIs(t, cranes.Verify(nil), cranes.ErrInvalidPath)

	blocked := path.New(mustGrid(t, [][]int{{X, 1}}))
	assert.ErrorIs(t, cranes.Verify(blocked), cranes.ErrInvalidPath)
}
