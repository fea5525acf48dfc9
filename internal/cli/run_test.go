package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/exactgeom/perturb/internal/config"
)

func TestSelectCasesFiltering(t *testing.T) {
	cfg := config.AppConfig{Dims: "2", Degrees: "all", Indices: 4}
	cases := selectCases(cfg)
	if len(cases) != 3*4 {
		t.Fatalf("got %d cases, want %d", len(cases), 3*4)
	}
	for _, c := range cases {
		if c.M != 2 {
			t.Fatalf("case %s leaked through the m=2 filter", c)
		}
	}
}

func TestRunSmallBattery(t *testing.T) {
	cfg := config.AppConfig{
		Dims: "1", Degrees: "1", Indices: 2, Parallel: 2, Quiet: true,
	}
	var out, errOut bytes.Buffer
	if err := Run(context.Background(), cfg, &out, &errOut); err != nil {
		t.Fatalf("Run: %v (stderr: %s)", err, errOut.String())
	}
	if !strings.Contains(out.String(), "2 passed") {
		t.Errorf("summary output %q does not report the passes", out.String())
	}
}

func TestRunJSONSummary(t *testing.T) {
	cfg := config.AppConfig{
		Dims: "1", Degrees: "2", Indices: 1, Parallel: 1, Quiet: true, JSONOutput: true,
	}
	var out, errOut bytes.Buffer
	if err := Run(context.Background(), cfg, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	var sum Summary
	if err := json.Unmarshal(out.Bytes(), &sum); err != nil {
		t.Fatalf("summary is not valid JSON: %v\n%s", err, out.String())
	}
	if sum.Total != 1 || sum.Passed != 1 || sum.Failed != 0 {
		t.Errorf("summary = %+v, want one passing case", sum)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := config.AppConfig{
		Dims: "all", Degrees: "all", Indices: 5, Parallel: 1, Quiet: true,
	}
	var out, errOut bytes.Buffer
	if err := Run(ctx, cfg, &out, &errOut); err == nil {
		t.Error("expected a context error from a canceled run")
	}
}
