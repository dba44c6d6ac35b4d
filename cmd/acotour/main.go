// Command acotour plans a closed sampling route over a set of locations
// with ant colony optimization.
//
// Usage:
//
//	acotour run  [-matrix m.csv | -locations l.json] [-ants 25] [-iterations 40] [-polish] ...
//	acotour runs [-store sqlite] [-db acotour.db]
//
// With no input flag the built-in Ankara sample set is used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/acotour/aco"
	"github.com/katalvlaran/acotour/distance"
	"github.com/katalvlaran/acotour/exact"
	"github.com/katalvlaran/acotour/matrix"
	"github.com/katalvlaran/acotour/refine"
	"github.com/katalvlaran/acotour/report"
	"github.com/katalvlaran/acotour/store"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := realMain(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func realMain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := dispatch(ctx, args, stdout, stderr)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, aco.ErrConfiguration), errors.Is(err, distance.ErrBadInput), errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		return exitConfig
	default:
		fmt.Fprintln(stderr, err)
		return exitFailed
	}
}

func dispatch(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 || args[0] == "run" {
		if len(args) > 0 {
			args = args[1:]
		}
		return runRun(ctx, args, stdout, stderr)
	}
	switch args[0] {
	case "runs":
		return runRuns(ctx, args[1:], stdout, stderr)
	default:
		if args[0] != "" && args[0][0] == '-' {
			return runRun(ctx, args, stdout, stderr)
		}
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func runRun(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	resolve := runFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	cfg, err := resolve()
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	lvl, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	if cfg.Store != "" && !store.Persistent(cfg.Store) {
		return fmt.Errorf("%w: -store %s is not a persistent backend; use -store sqlite", errUsage, cfg.Store)
	}

	tbl, err := loadInput(ctx, cfg)
	if err != nil {
		return err
	}
	labels, dist := tbl.Labels, tbl.Dist
	logger.Info("input loaded", "locations", dist.Rows(), "source", inputSource(cfg))
	if tbl.Unreachable > 0 {
		logger.Warn("missing distances replaced", "count", tbl.Unreachable, "value", distance.Unreachable)
	}

	engine, err := aco.NewEngine(dist, cfg.params(),
		aco.WithContext(ctx),
		aco.WithSeed(cfg.Seed),
		aco.WithWorkers(cfg.Workers),
		aco.WithOnIteration(func(st aco.IterationStats) error {
			logger.Debug("iteration",
				"n", st.Iteration,
				"iteration_best", st.IterationBest,
				"best", st.Best,
				"improved", st.Improved,
			)
			return nil
		}),
	)
	if err != nil {
		return err
	}

	started := time.Now()
	res, runErr := engine.Run()
	if runErr != nil {
		if res.Iterations == 0 {
			return runErr
		}
		logger.Warn("run aborted, reporting partial result", "iterations", res.Iterations, "err", runErr)
	}
	logger.Info("run finished",
		"distance", res.Distance,
		"iterations", res.Iterations,
		"degenerate", res.Degenerate,
		"elapsed", time.Since(started).Round(time.Millisecond),
	)
	if tau, ok := engine.Pheromone().(*matrix.Dense); ok {
		logger.Debug("pheromone", "sum", tau.Sum(), "min", tau.Min())
	}

	if cfg.Polish && len(res.Tour) > 0 {
		res = polish(ctx, dist, res, logger)
	}

	var optimum float64
	if cfg.Exact {
		optimum = solveExact(dist, logger)
	}

	if err = report.WriteSummary(stdout, report.Summary{Labels: labels, Result: res, Optimum: optimum}); err != nil {
		return err
	}

	if cfg.Plot != "" {
		opts := report.DefaultPlotOptions()
		opts.Optimum = optimum
		if err = report.PlotConvergence(res.History, cfg.Plot, opts); err != nil {
			return err
		}
		logger.Info("plot written", "path", cfg.Plot)
	}

	if cfg.Store != "" {
		run := store.NewRun(cfg.params(), cfg.Seed, labels, res)
		run.Optimum = optimum
		run.System = store.CollectSysInfo()
		if err = saveRun(ctx, cfg, run); err != nil {
			return err
		}
		logger.Info("run stored", "id", run.ID, "store", cfg.Store)
	}

	return runErr
}

func loadInput(ctx context.Context, cfg Config) (distance.Table, error) {
	if cfg.Matrix != "" && cfg.Locations != "" {
		return distance.Table{}, fmt.Errorf("%w: -matrix and -locations are mutually exclusive", errUsage)
	}
	if cfg.Matrix != "" {
		return distance.LoadFile(cfg.Matrix)
	}

	locs := distance.AnkaraSample()
	if cfg.Locations != "" {
		f, err := os.Open(cfg.Locations)
		if err != nil {
			return distance.Table{}, err
		}
		defer f.Close()
		if locs, err = distance.LoadLocations(f); err != nil {
			return distance.Table{}, err
		}
	}

	d, err := distance.HaversineProvider{Detour: cfg.Detour}.Matrix(ctx, locs)
	if err != nil {
		return distance.Table{}, err
	}
	tbl := distance.Table{Labels: make([]string, len(locs)), Dist: d}
	for i, l := range locs {
		tbl.Labels[i] = l.Name
	}
	tbl.Unreachable = distance.Sanitize(d)
	return tbl, nil
}

func inputSource(cfg Config) string {
	switch {
	case cfg.Matrix != "":
		return cfg.Matrix
	case cfg.Locations != "":
		return cfg.Locations
	default:
		return "ankara-sample"
	}
}

func solveExact(dist *matrix.Dense, logger *slog.Logger) float64 {
	sol, err := exact.HeldKarp(dist)
	if err != nil {
		logger.Warn("exact solution skipped", "err", err)
		return 0
	}
	logger.Info("exact solution", "distance", sol.Cost)
	return sol.Cost
}

// polish replaces the tour with its 2-opt local optimum when that is shorter.
// History is left as the colony produced it.
func polish(ctx context.Context, dist *matrix.Dense, res aco.Result, logger *slog.Logger) aco.Result {
	pol, err := refine.TwoOpt(ctx, dist, res.Tour, refine.DefaultOptions())
	switch {
	case errors.Is(err, refine.ErrShortTour):
		return res
	case err != nil && ctx.Err() == nil:
		logger.Warn("polish skipped", "err", err)
		return res
	}
	if pol.Cost < res.Distance {
		logger.Info("tour polished", "before", res.Distance, "after", pol.Cost, "moves", pol.Moves)
		res.Tour = pol.Tour
		res.Distance = pol.Cost
	}
	return res
}

func saveRun(ctx context.Context, cfg Config, run store.Run) error {
	s, err := store.Open(ctx, cfg.Store, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.CloseIfSupported(s) }()

	return s.SaveRun(ctx, run)
}

func runRuns(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	storeKind := fs.String("store", store.KindSQLite, "store backend (only sqlite persists)")
	dbPath := fs.String("db", defaultConfig().DBPath, "sqlite database path")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if !store.Persistent(*storeKind) {
		return fmt.Errorf("%w: -store %s is not a persistent backend; use -store sqlite", errUsage, *storeKind)
	}
	s, err := store.Open(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.CloseIfSupported(s) }()

	runs, err := s.ListRuns(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(stdout, "no runs found")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(stdout, "%s  %s  distance=%.4f  iterations=%d  ants=%d\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.Distance, len(r.History), r.Params.Ants)
	}
	return nil
}
