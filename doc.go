// Package craneproblem solves the crane unloading problem: on a dock grid
// of warehouses and berths with waiting cranes, drive a truck from the
// north-west corner to the south-east corner, east or south only, past as
// many cranes as possible.
//
// 🚀 What is in the module?
//
//	grid/       — the dock: cells, construction, text format, random docks
//	path/       — a monotone East/South walk with a running crane total
//	cranes/     — Exhaustive and DynProg solvers, Solve dispatcher, Verify
//	config/     — CRANES_* environment settings (with .env support)
//	server/     — gin HTTP API: POST /solve, GET /healthz
//	cmd/cranes/ — CLI: solve, random, bench, serve
//
// Quick ASCII example:
//
//	1 2 3        * 2 3
//	4 X 5   →    * X 5    cranes = 1+4+6+7+8 = 26
//	6 7 8        * * *
//
// When the exhaustive solver is asked for complete routes only, both
// solvers agree on the optimum for every dock that has a route to the
// exit. The exhaustive one is exponential and meant for small docks and
// for cross-checking.
//
//	go get github.com/Ravunus/Crane-Problem
package craneproblem
