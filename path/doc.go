// Package path is a monotone walk over a grid.Grid: it starts at (0,0)
// and grows one East or South step at a time, never leaving the grid and
// never entering a building, while keeping a running total of the cranes
// it has collected (origin included).
//
// A Path owns its step history and total; it only borrows the grid,
// which must not change while the path is in use. Clone yields a fully
// independent copy, so solvers can branch without aliasing.
package path
