// Package cranes solves the crane unloading problem: on a dock grid of
// buildings and crane counts, find the East/South path from the top-left
// cell to the bottom-right cell that visits the most cranes without
// entering a building.
//
// 🚀 Solvers:
//
//	Exhaustive — enumerates every bit pattern of length rows+columns-2,
//	             bit k set meaning "step k goes South". Exact, exponential,
//	             and best-effort: if no path reaches the destination it
//	             still returns the highest-scoring prefix it saw.
//	DynProg    — fills a table of best paths to every cell in row-major
//	             order from each cell's north and west neighbours. Exact,
//	             O(rows·columns) cells, and fails with ErrUnreachable when
//	             the destination cannot be reached.
//
// Exhaustive may prefer a dead end that outscores every complete route.
// Run through Solve with RequireComplete it scores complete routes only,
// and then both agree on TotalCranes for every solvable grid small
// enough to enumerate. Ties are broken deterministically: Exhaustive keeps the
// lowest-numbered bit pattern, DynProg prefers arriving from the north.
//
// ⚙️ Usage:
//
//	g, _ := grid.ParseString(". 3 X\n1 X .\n. 2 4")
//	best, err := cranes.Solve(g, cranes.DefaultOptions())
//	if err != nil {
//	  // ErrUnreachable, ErrOriginBlocked, ErrTooManyMoves, ...
//	}
//	fmt.Println(best.TotalCranes(), best.Steps())
//
// Performance:
//
//   - Exhaustive: O(2^(R+C-2) · (R+C)) time, O(R+C) memory.
//   - DynProg:    O(R·C) cells, each holding a copied path prefix, so
//     O(R·C·(R+C)) time and memory overall.
//
// Errors:
//
//   - ErrNilGrid:              grid is nil.
//   - ErrTooManyMoves:         rows+columns-2 exceeds MaxExhaustiveMoves.
//   - ErrOriginBlocked:        DynProg was given a building at (0,0).
//   - ErrUnreachable:          no path reaches the destination.
//   - ErrUnsupportedAlgorithm: unknown Algorithm value or name.
//   - ErrInvalidPath:          Verify found a broken path.
package cranes
