// Command perturb runs the perturbation engine's self-test battery: every
// supported predicate family and degree, checked against brute-force
// big-integer evaluation. A clean exit means the engine, the perturbation
// sequence, and the interpolation tables all agree.
//
// Usage:
//
//	perturb [-m all|1|2|3] [-degrees all|1|2|3] [-indices N] [-parallel N]
//	        [-verbose] [-quiet] [-json] [-metrics-addr :9090] [-no-color]
//
// Flags default from PERTURB_-prefixed environment variables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/exactgeom/perturb/internal/app"
	apperrors "github.com/exactgeom/perturb/internal/errors"
)

func main() {
	a, err := app.New(os.Args, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(apperrors.ExitCode(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(a.Run(ctx, os.Stdout))
}
