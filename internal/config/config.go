// Package config provides configuration management for the perturb
// command-line tool. It defines the configuration structure, parses
// command-line flags with environment-variable defaults, and validates the
// result.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/exactgeom/perturb/internal/errors"
)

// EnvPrefix is the prefix for all environment variables read by the tool.
// Environment variables provide defaults that flags can still override.
const EnvPrefix = "PERTURB_"

// Default configuration values.
const (
	// DefaultIndices is the number of point ids exercised per (m, degree) pair.
	DefaultIndices = 20
	// DefaultParallel is the number of self-test cases run concurrently.
	DefaultParallel = 4
)

// AppConfig aggregates the tool's configuration parameters.
type AppConfig struct {
	// Dims restricts the predicate families to run ("all", "1", "2", "3").
	Dims string
	// Degrees restricts the degrees to run ("all", "1", "2", "3").
	Degrees string
	// Indices is the number of point ids exercised per (m, degree) pair.
	Indices int
	// Parallel bounds how many cases run concurrently.
	Parallel int
	// Verbose enables the engine's debug trace.
	Verbose bool
	// Quiet suppresses the spinner and per-case progress.
	Quiet bool
	// JSONOutput emits the run summary as JSON.
	JSONOutput bool
	// MetricsAddr, when nonempty, serves Prometheus metrics on this address
	// (e.g. ":9090") for the duration of the run.
	MetricsAddr string
	// NoColor disables colored terminal output.
	NoColor bool
}

// ParseConfig parses flags (with environment defaults) into an AppConfig
// and validates it. Flag errors and invalid values are reported as
// ConfigError.
func ParseConfig(name string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	fs.StringVar(&cfg.Dims, "m", getEnvString("M", "all"),
		"predicate families to run: all, 1, 2, or 3")
	fs.StringVar(&cfg.Degrees, "degrees", getEnvString("DEGREES", "all"),
		"degrees to run: all, 1, 2, or 3")
	fs.IntVar(&cfg.Indices, "indices", getEnvInt("INDICES", DefaultIndices),
		"number of point ids per (m, degree) pair")
	fs.IntVar(&cfg.Parallel, "parallel", getEnvInt("PARALLEL", DefaultParallel),
		"number of cases run concurrently")
	fs.BoolVar(&cfg.Verbose, "verbose", getEnvBool("VERBOSE", false),
		"log the engine's evaluation trace")
	fs.BoolVar(&cfg.Quiet, "quiet", getEnvBool("QUIET", false),
		"suppress progress output")
	fs.BoolVar(&cfg.JSONOutput, "json", getEnvBool("JSON", false),
		"emit the run summary as JSON")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", getEnvString("METRICS_ADDR", ""),
		"serve Prometheus metrics on this address during the run")
	fs.BoolVar(&cfg.NoColor, "no-color", getEnvBool("NO_COLOR", false),
		"disable colored output")

	if err := fs.Parse(args); err != nil {
		return cfg, apperrors.NewConfigError("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *AppConfig) Validate() error {
	if err := validateChoice("m", c.Dims); err != nil {
		return err
	}
	if err := validateChoice("degrees", c.Degrees); err != nil {
		return err
	}
	if c.Indices < 1 {
		return apperrors.NewConfigError("indices must be at least 1, got %d", c.Indices)
	}
	if c.Parallel < 1 {
		return apperrors.NewConfigError("parallel must be at least 1, got %d", c.Parallel)
	}
	return nil
}

// Selected reports whether the given value passes an "all, 1, 2, 3" choice.
func Selected(choice string, v int) bool {
	return choice == "all" || choice == fmt.Sprint(v)
}

func validateChoice(name, v string) error {
	switch strings.ToLower(v) {
	case "all", "1", "2", "3":
		return nil
	}
	return apperrors.NewConfigError("%s must be one of all, 1, 2, 3; got %q", name, v)
}
