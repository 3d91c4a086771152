package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Ravunus/Crane-Problem/cranes"
	"github.com/Ravunus/Crane-Problem/grid"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// solve handles POST /solve.
func (s *Server) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.fail(ctx, http.StatusRequestEntityTooLarge,
				fmt.Errorf("request body exceeds %d bytes", tooBig.Limit))
			return
		}
		s.fail(ctx, http.StatusBadRequest, err)
		return
	}

	algo := s.cfg.DefaultAlgorithm
	if request.Algorithm != "" {
		var err error
		if algo, err = cranes.ParseAlgorithm(request.Algorithm); err != nil {
			s.fail(ctx, http.StatusBadRequest, err)
			return
		}
	}

	if cells := countCells(request.Grid); s.cfg.MaxGridCells > 0 && cells > s.cfg.MaxGridCells {
		s.fail(ctx, http.StatusRequestEntityTooLarge,
			fmt.Errorf("grid has %d cells, limit is %d", cells, s.cfg.MaxGridCells))
		return
	}

	g, err := grid.ParseRows(request.Grid)
	if err != nil {
		s.fail(ctx, http.StatusBadRequest, err)
		return
	}
	if algo == cranes.Exhaustive && g.TotalMoves() > s.cfg.MaxMoves {
		s.fail(ctx, http.StatusUnprocessableEntity,
			fmt.Errorf("%w: %d moves, limit is %d", cranes.ErrTooManyMoves, g.TotalMoves(), s.cfg.MaxMoves))
		return
	}
	if steps := tableSteps(g); algo == cranes.DynProg && s.cfg.MaxTable > 0 && steps > s.cfg.MaxTable {
		s.fail(ctx, http.StatusRequestEntityTooLarge,
			fmt.Errorf("%d×%d grid needs a %d-step table, limit is %d", g.Rows(), g.Columns(), steps, s.cfg.MaxTable))
		return
	}

	start := time.Now()
	best, err := cranes.Solve(g, cranes.Options{Algorithm: algo, RequireComplete: request.RequireComplete})
	if err != nil {
		s.fail(ctx, statusFor(err), err)
		return
	}

	visited := best.Visited()
	coords := make([][2]int, len(visited))
	for i, at := range visited {
		coords[i] = [2]int{at.Row, at.Column}
	}

	s.logger(ctx).WithFields(logrus.Fields{
		"algorithm": algo.String(),
		"rows":      g.Rows(),
		"columns":   g.Columns(),
		"cranes":    best.TotalCranes(),
		"steps":     best.Len(),
		"elapsed":   time.Since(start),
	}).Info("grid solved")

	ctx.JSON(http.StatusOK, SolveResponse{
		RequestID: ctx.GetString(requestIDKey),
		Algorithm: algo.String(),
		Cranes:    best.TotalCranes(),
		Steps:     best.Steps(),
		Complete:  best.Complete(),
		Path:      coords,
	})
}

// fail writes an ErrorResponse and logs client errors at debug level.
func (s *Server) fail(ctx *gin.Context, status int, err error) {
	s.logger(ctx).WithError(err).WithField("status", status).Debug("request rejected")
	ctx.JSON(status, ErrorResponse{RequestID: ctx.GetString(requestIDKey), Error: err.Error()})
}

// statusFor maps solver errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, cranes.ErrUnreachable),
		errors.Is(err, cranes.ErrOriginBlocked),
		errors.Is(err, cranes.ErrTooManyMoves):
		return http.StatusUnprocessableEntity
	case errors.Is(err, cranes.ErrUnsupportedAlgorithm):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// countCells sums row lengths without trusting the grid to be rectangular.
func countCells(rows [][]string) int {
	n := 0
	for _, row := range rows {
		n += len(row)
	}
	return n
}

// tableSteps bounds the steps stored by the DynProg table: every cell
// holds a copied prefix of at most rows+columns-2 steps.
func tableSteps(g *grid.Grid) int {
	return g.Rows() * g.Columns() * (g.TotalMoves() + 1)
}
