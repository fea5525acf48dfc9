package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/exactgeom/perturb"
	"github.com/exactgeom/perturb/internal/config"
	apperrors "github.com/exactgeom/perturb/internal/errors"
	"github.com/exactgeom/perturb/internal/selftest"
)

// Summary is the outcome of a self-test run.
type Summary struct {
	Total    int      `json:"total"`
	Passed   int      `json:"passed"`
	Failed   int      `json:"failed"`
	Failures []string `json:"failures,omitempty"`
	Duration string   `json:"duration"`
}

// Run executes the configured self-test battery and writes the summary to
// out. Progress goes to errOut. It returns a MismatchError when any case
// fails, or the context's error when the run is canceled.
func Run(ctx context.Context, cfg config.AppConfig, out, errOut io.Writer) error {
	logger := zerolog.Nop()
	if cfg.Verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: errOut, NoColor: cfg.NoColor}).
			Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}

	cases := selectCases(cfg)
	results := make([]error, len(cases))

	spin := newSpinner(errOut, !cfg.Quiet && !cfg.JSONOutput)
	spin.Start()
	defer spin.Stop()

	start := time.Now()
	var done atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = c.Run(perturb.WithLogger(logger.With().Str("case", c.String()).Logger()))
			spin.UpdateSuffix(fmt.Sprintf("%d/%d cases", done.Add(1), len(cases)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	spin.Stop()

	sum := Summary{Total: len(cases), Duration: time.Since(start).Round(time.Millisecond).String()}
	for _, err := range results {
		if err == nil {
			sum.Passed++
		} else {
			sum.Failed++
			sum.Failures = append(sum.Failures, err.Error())
		}
	}
	if err := writeSummary(out, cfg, sum); err != nil {
		return err
	}
	if sum.Failed > 0 {
		return apperrors.NewMismatchError("%d of %d self-test cases failed", sum.Failed, sum.Total)
	}
	return nil
}

func selectCases(cfg config.AppConfig) []selftest.Case {
	var cases []selftest.Case
	for _, c := range selftest.Matrix(cfg.Indices) {
		if config.Selected(cfg.Dims, c.M) && config.Selected(cfg.Degrees, c.Degree) {
			cases = append(cases, c)
		}
	}
	return cases
}

func writeSummary(out io.Writer, cfg config.AppConfig, sum Summary) error {
	if cfg.JSONOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}
	fmt.Fprintf(out, "self-test: %d cases, %d passed, %d failed in %s\n",
		sum.Total, sum.Passed, sum.Failed, sum.Duration)
	for _, f := range sum.Failures {
		fmt.Fprintf(out, "  FAIL %s\n", f)
	}
	return nil
}
