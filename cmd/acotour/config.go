package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/acotour/aco"
)

// Config is everything one `acotour run` needs. It is filled from defaults,
// then an optional JSON file, then explicitly set flags.
type Config struct {
	Matrix    string  `json:"matrix"`
	Locations string  `json:"locations"`
	Detour    float64 `json:"detour"`

	Ants       int     `json:"ants"`
	Elite      int     `json:"elite"`
	Iterations int     `json:"iterations"`
	Decay      float64 `json:"decay"`
	Alpha      float64 `json:"alpha"`
	Beta       float64 `json:"beta"`
	Seed       int64   `json:"seed"`
	Workers    int     `json:"workers"`

	Plot     string `json:"plot"`
	Store    string `json:"store"`
	DBPath   string `json:"db_path"`
	Exact    bool   `json:"exact"`
	Polish   bool   `json:"polish"`
	LogLevel string `json:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Ants:       25,
		Elite:      5,
		Iterations: 40,
		Decay:      0.63,
		Alpha:      1.71,
		Beta:       1.01,
		Workers:    1,
		DBPath:     "acotour.db",
		LogLevel:   "info",
	}
}

// loadConfig overlays the JSON document at path onto the defaults.
// Keys absent from the file keep their default value.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) params() aco.Params {
	return aco.Params{
		Ants:       c.Ants,
		Elite:      c.Elite,
		Iterations: c.Iterations,
		Decay:      c.Decay,
		Alpha:      c.Alpha,
		Beta:       c.Beta,
	}
}

// runFlags binds every Config field to fs. The returned function resolves
// the final Config once fs has been parsed.
func runFlags(fs *flag.FlagSet) func() (Config, error) {
	def := defaultConfig()
	var f Config
	configPath := fs.String("config", "", "optional JSON config path")
	fs.StringVar(&f.Matrix, "matrix", "", "distance matrix file (.json or .csv)")
	fs.StringVar(&f.Locations, "locations", "", "JSON locations file; great-circle distances are computed")
	fs.Float64Var(&f.Detour, "detour", def.Detour, "factor applied to great-circle distances (0 = none)")
	fs.IntVar(&f.Ants, "ants", def.Ants, "ants per iteration")
	fs.IntVar(&f.Elite, "elite", def.Elite, "shortest tours reinforced per iteration")
	fs.IntVar(&f.Iterations, "iterations", def.Iterations, "iteration budget")
	fs.Float64Var(&f.Decay, "decay", def.Decay, "evaporation rate in (0,1)")
	fs.Float64Var(&f.Alpha, "alpha", def.Alpha, "pheromone exponent")
	fs.Float64Var(&f.Beta, "beta", def.Beta, "distance exponent")
	fs.Int64Var(&f.Seed, "seed", def.Seed, "rng seed (0 = fixed default)")
	fs.IntVar(&f.Workers, "workers", def.Workers, "tour-building goroutines (0 = NumCPU)")
	fs.StringVar(&f.Plot, "plot", "", "write convergence chart to this path (.png, .svg, .pdf)")
	fs.StringVar(&f.Store, "store", "", "persist the run (sqlite)")
	fs.StringVar(&f.DBPath, "db", def.DBPath, "sqlite database path")
	fs.BoolVar(&f.Exact, "exact", false, "also compute the exact optimum (small inputs only)")
	fs.BoolVar(&f.Polish, "polish", false, "apply 2-opt local search to the best tour")
	fs.StringVar(&f.LogLevel, "log-level", def.LogLevel, "debug|info|warn|error")

	return func() (Config, error) {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			return Config{}, err
		}
		fs.Visit(func(fl *flag.Flag) {
			applyFlag(&cfg, f, fl.Name)
		})
		return cfg, nil
	}
}

func applyFlag(cfg *Config, f Config, name string) {
	switch name {
	case "matrix":
		cfg.Matrix = f.Matrix
	case "locations":
		cfg.Locations = f.Locations
	case "detour":
		cfg.Detour = f.Detour
	case "ants":
		cfg.Ants = f.Ants
	case "elite":
		cfg.Elite = f.Elite
	case "iterations":
		cfg.Iterations = f.Iterations
	case "decay":
		cfg.Decay = f.Decay
	case "alpha":
		cfg.Alpha = f.Alpha
	case "beta":
		cfg.Beta = f.Beta
	case "seed":
		cfg.Seed = f.Seed
	case "workers":
		cfg.Workers = f.Workers
	case "plot":
		cfg.Plot = f.Plot
	case "store":
		cfg.Store = f.Store
	case "db":
		cfg.DBPath = f.DBPath
	case "exact":
		cfg.Exact = f.Exact
	case "polish":
		cfg.Polish = f.Polish
	case "log-level":
		cfg.LogLevel = f.LogLevel
	}
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}
