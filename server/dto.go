package server

import (
	"github.com/Ravunus/Crane-Problem/path"
)

// SolveRequest is the body of POST /solve.
// Grid holds one token slice per row in the text grid format
// ("X" building, "." empty, or a crane count).
type SolveRequest struct {
	Grid            [][]string `json:"grid" binding:"required"`
	Algorithm       string     `json:"algorithm"`
	RequireComplete bool       `json:"require_complete"`
}

// SolveResponse is the body of a successful POST /solve.
type SolveResponse struct {
	RequestID string           `json:"request_id"`
	Algorithm string           `json:"algorithm"`
	Cranes    int              `json:"cranes"`
	Steps     []path.Direction `json:"steps"`
	Complete  bool             `json:"complete"`
	Path      [][2]int         `json:"path"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}
