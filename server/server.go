// Package server exposes the crane solvers over HTTP with gin.
//
// Routes:
//
//	GET  /healthz  liveness probe
//	POST /solve    solve a grid posted as JSON (see SolveRequest)
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Ravunus/Crane-Problem/cranes"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// shutdownTimeout bounds graceful shutdown in Run.
const shutdownTimeout = 5 * time.Second

// Config holds configuration settings for creating a new Server instance.
type Config struct {
	Addr             string           // Address to listen on
	GinMode          string           // gin mode: release, debug or test
	DefaultAlgorithm cranes.Algorithm // Used when a request names no algorithm
	MaxGridCells     int              // Largest rows×columns accepted
	MaxMoves         int              // Largest rows+columns-2 for the exhaustive solver
	MaxTable         int              // Largest rows·columns·(rows+columns-1) for the DP solver
	MaxBodyBytes     int64            // Largest request body; 0 means unlimited
}

// Server wires the solvers to a gin engine.
type Server struct {
	cfg    Config
	log    logrus.FieldLogger
	engine *gin.Engine
}

// New builds a Server and registers its routes. A nil log discards output.
func New(cfg Config, log logrus.FieldLogger) *Server {
	if log == nil {
		silent := logrus.New()
		silent.Out = io.Discard
		log = silent
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	s := &Server{cfg: cfg, log: log}
	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestID(), s.accessLog(), s.limitBody())
	engine.GET("/healthz", s.healthz)
	engine.POST("/solve", s.solve)
	s.engine = engine

	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.cfg.Addr).Info("http server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("http server stopped")

	return nil
}

// healthz reports liveness.
func (s *Server) healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
