package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Ravunus/Crane-Problem/config"
	"github.com/Ravunus/Crane-Problem/cranes"
	"github.com/Ravunus/Crane-Problem/grid"
	"github.com/Ravunus/Crane-Problem/path"
	"github.com/Ravunus/Crane-Problem/server"
	"github.com/sirupsen/logrus"
)

// errDisagree reports that the two solvers found different optima.
var errDisagree = errors.New("solvers disagree")

// algoBoth runs both solvers and cross-checks them. The exhaustive leg
// then only accepts paths that reach the destination.
const algoBoth = "both"

// parseFlags parses args into fs, treating -h as success.
func parseFlags(fs *flag.FlagSet, args []string) (help bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, fmt.Errorf("%w: %v", errUsage, err)
	}
	return false, nil
}

// solveCmd implements "cranes solve".
func solveCmd(cfg config.Config, log logrus.FieldLogger, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	algoName := fs.String("algo", cfg.Algorithm, "dynprog, exhaustive or both")
	render := fs.Bool("render", false, "draw the path over the grid")
	complete := fs.Bool("complete", false, "exhaustive: only accept paths that reach the destination")
	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: solve needs exactly one grid file", errUsage)
	}

	g, err := readGrid(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"rows": g.Rows(), "columns": g.Columns()}).Debug("grid loaded")

	var algos []cranes.Algorithm
	both := strings.EqualFold(*algoName, algoBoth)
	if both {
		algos = []cranes.Algorithm{cranes.DynProg, cranes.Exhaustive}
	} else {
		algo, err := cranes.ParseAlgorithm(*algoName)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		algos = []cranes.Algorithm{algo}
	}

	var (
		results  = make([]*path.Path, 0, len(algos))
		firstErr error
	)
	for _, algo := range algos {
		// A best-effort prefix is not comparable with a complete route.
		requireComplete := *complete || (both && algo == cranes.Exhaustive)
		best, err := solveOne(g, algo, requireComplete, log)
		if err != nil {
			fmt.Fprintf(stdout, "%s: %v\n", algo, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		fmt.Fprintf(stdout, "%s: %v complete=%t\n", algo, best, best.Complete())
		if *render {
			fmt.Fprintln(stdout, best.Render())
		}
		results = append(results, best)
	}
	if firstErr != nil {
		return firstErr
	}
	if len(results) == 2 && results[0].TotalCranes() != results[1].TotalCranes() {
		return fmt.Errorf("%w: %s=%d %s=%d", errDisagree,
			algos[0], results[0].TotalCranes(), algos[1], results[1].TotalCranes())
	}

	return nil
}

// solveOne runs and verifies a single solver.
func solveOne(g *grid.Grid, algo cranes.Algorithm, complete bool, log logrus.FieldLogger) (*path.Path, error) {
	start := time.Now()
	best, err := cranes.Solve(g, cranes.Options{Algorithm: algo, RequireComplete: complete})
	if err != nil {
		return nil, err
	}
	if err := cranes.Verify(best); err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"algorithm": algo.String(),
		"cranes":    best.TotalCranes(),
		"steps":     best.Len(),
		"elapsed":   time.Since(start),
	}).Info("grid solved")

	return best, nil
}

// readGrid parses name, or stdin when name is "-".
func readGrid(name string, stdin io.Reader) (*grid.Grid, error) {
	if name == "-" {
		return grid.Parse(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := grid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return g, nil
}

// randomCmd implements "cranes random".
func randomCmd(args []string, stdout io.Writer) error {
	defaults := grid.DefaultRandomOptions()
	fs := flag.NewFlagSet("random", flag.ContinueOnError)
	rows := fs.Int("rows", 5, "number of rows")
	cols := fs.Int("cols", 5, "number of columns")
	seed := fs.Int64("seed", defaults.Seed, "RNG seed (0 = fixed default)")
	buildings := fs.Float64("buildings", defaults.BuildingProbability, "building probability in [0,1)")
	maxCranes := fs.Int("max-cranes", defaults.MaxCranes, "largest crane count per cell")
	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}

	g, err := grid.Random(*rows, *cols, grid.RandomOptions{
		Seed:                *seed,
		BuildingProbability: *buildings,
		MaxCranes:           *maxCranes,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, g)
	return nil
}

// benchCmd implements "cranes bench": for n = 1..max it times both
// solvers on a random n×n grid and prints one row per size.
func benchCmd(cfg config.Config, log logrus.FieldLogger, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	maxN := fs.Int("max", 10, "largest grid side")
	seed := fs.Int64("seed", 1, "RNG seed")
	maxMoves := fs.Int("max-moves", cfg.MaxMoves, "skip exhaustive search above this many moves")
	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}
	if *maxN < 1 {
		return fmt.Errorf("%w: -max must be at least 1", errUsage)
	}

	fmt.Fprintf(stdout, "%4s %14s %14s %7s\n", "n", "dynprog", "exhaustive", "cranes")
	for n := 1; n <= *maxN; n++ {
		g, err := grid.Random(n, n, grid.RandomOptions{Seed: *seed, BuildingProbability: 0.1, MaxCranes: 9})
		if err != nil {
			return err
		}

		start := time.Now()
		dp, dpErr := cranes.SolveDynProg(g)
		dpElapsed := time.Since(start)

		exCol := "-"
		var ex *path.Path
		if g.TotalMoves() <= *maxMoves && g.TotalMoves() <= cranes.MaxExhaustiveMoves {
			start = time.Now()
			ex, err = cranes.Solve(g, cranes.Options{Algorithm: cranes.Exhaustive, RequireComplete: true})
			exCol = time.Since(start).String()
			if err != nil && !errors.Is(err, cranes.ErrUnreachable) {
				return err
			}
		}

		cranesCol := "unreachable"
		if dpErr == nil {
			cranesCol = fmt.Sprint(dp.TotalCranes())
			if ex != nil && ex.TotalCranes() != dp.TotalCranes() {
				return fmt.Errorf("%w at n=%d: dynprog=%d exhaustive=%d", errDisagree, n, dp.TotalCranes(), ex.TotalCranes())
			}
		} else if !errors.Is(dpErr, cranes.ErrUnreachable) {
			return dpErr
		}

		log.WithFields(logrus.Fields{"n": n, "dynprog": dpElapsed, "exhaustive": exCol}).Debug("bench row")
		fmt.Fprintf(stdout, "%4d %14s %14s %7s\n", n, dpElapsed, exCol, cranesCol)
	}

	return nil
}

// serveCmd implements "cranes serve".
func serveCmd(ctx context.Context, cfg config.Config, log logrus.FieldLogger) error {
	algo, err := cranes.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}
	srv := server.New(server.Config{
		Addr:             cfg.HTTPAddr,
		GinMode:          cfg.GinMode,
		DefaultAlgorithm: algo,
		MaxGridCells:     cfg.MaxGridCells,
		MaxMoves:         cfg.MaxMoves,
		MaxTable:         cfg.MaxTable,
		MaxBodyBytes:     cfg.MaxBodyBytes,
	}, log)

	return srv.Run(ctx)
}
