// Package app wires configuration, the self-test runner, and the optional
// metrics endpoint into the perturb binary's lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/exactgeom/perturb/internal/cli"
	"github.com/exactgeom/perturb/internal/config"
	apperrors "github.com/exactgeom/perturb/internal/errors"
)

// Application represents one invocation of the perturb tool.
type Application struct {
	// Config holds the parsed configuration.
	Config config.AppConfig
	// ErrWriter is the writer for error and progress output.
	ErrWriter io.Writer
}

// New creates an Application by parsing command-line arguments. args is the
// full argument vector including the program name.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "perturb"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}
	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// Run executes the application and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.MetricsAddr != "" {
		stop, err := a.serveMetrics()
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "metrics endpoint: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		defer stop()
	}

	err := cli.Run(ctx, a.Config, out, a.ErrWriter)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(a.ErrWriter, "%v\n", err)
	}
	return apperrors.ExitCode(err)
}

// serveMetrics starts the Prometheus scrape endpoint and returns a function
// that shuts it down.
func (a *Application) serveMetrics() (func(), error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: a.Config.MetricsAddr, Handler: mux}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	// Give a bad address a moment to fail fast.
	select {
	case err := <-errc:
		return nil, err
	case <-time.After(50 * time.Millisecond):
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
