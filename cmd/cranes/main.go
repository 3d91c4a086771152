// Command cranes solves crane unloading grids from the command line and
// can serve the solvers over HTTP.
//
// Usage:
//
//	cranes solve [-algo dynprog|exhaustive|both] [-render] [-complete] FILE
//	cranes random [-rows N] [-cols N] [-seed S] [-buildings P] [-max-cranes K]
//	cranes bench [-max N] [-seed S] [-max-moves M]
//	cranes serve
//
// Settings come from CRANES_* environment variables, optionally read from
// a .env file in the working directory. CRANES_PROFILE=cpu|mem writes a
// profile for the command's run.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ravunus/Crane-Problem/config"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
)

// errUsage reports a bad command line; main prints usage for it.
var errUsage = errors.New("usage")

const usage = `usage: cranes <command> [flags]

commands:
  solve   FILE    solve a grid file ("-" reads stdin)
  random          print a random grid
  bench           time both solvers on growing random grids
  serve           run the HTTP API`

func main() {
	os.Exit(realMain())
}

// realMain holds main's body so deferred profile flushing runs before exit.
func realMain() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			return 2
		}
		log.WithError(err).Error("cranes failed")
		return 1
	}
	return 0
}

// run dispatches args[0] to its command.
func run(ctx context.Context, cfg config.Config, log logrus.FieldLogger, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "solve":
		return solveCmd(cfg, log, args[1:], stdin, stdout)
	case "random":
		return randomCmd(args[1:], stdout)
	case "bench":
		return benchCmd(cfg, log, args[1:], stdout)
	case "serve":
		return serveCmd(ctx, cfg, log)
	case "-h", "-help", "--help", "help":
		fmt.Fprintln(stdout, usage)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

// newLogger builds a logrus logger from cfg.
func newLogger(cfg config.Config, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", config.ErrBadConfig, config.EnvLogLevel, err)
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log, nil
}
