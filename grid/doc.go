// Package grid models the dock on which cranes are unloaded: a fixed
// rectangle of cells, each either an impassable building or a
// non-negative number of cranes.
//
// What:
//
//   - Grid wraps a rectangular [][]Cell; it is immutable once built.
//   - Building (-1) marks an impassable cell; any value ≥ 0 is a crane count.
//   - Parse and String read and write a plain-text format (one row per line).
//   - Random builds reproducible grids from a seed for experiments and benchmarks.
//
// Text format:
//
//	# comment lines and blank lines are ignored
//	.  3  X
//	1  X  .
//	.  2  4
//
// X (or x) is a building, "." is an empty cell, any other token is a
// decimal crane count.
//
// Complexity:
//
//   - New, Parse, String, Random: O(R×C) time and memory.
//   - Get, InBounds, IsBuilding, Cranes: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell: a cell value below Building.
//   - ErrBadToken: an unreadable token in the text format.
//   - ErrBadOption: RandomOptions out of range.
package grid
