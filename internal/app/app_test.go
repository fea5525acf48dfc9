package app

import (
	"bytes"
	"context"
	"testing"

	apperrors "github.com/exactgeom/perturb/internal/errors"
)

func TestNewRejectsBadFlags(t *testing.T) {
	var errOut bytes.Buffer
	if _, err := New([]string{"perturb", "-m", "9"}, &errOut); err == nil {
		t.Fatal("expected a config error")
	}
}

func TestRunSmallBattery(t *testing.T) {
	var out, errOut bytes.Buffer
	a, err := New([]string{"perturb", "-m", "1", "-degrees", "1", "-indices", "1", "-quiet"}, &errOut)
	if err != nil {
		t.Fatal(err)
	}
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code %d, stderr %s", code, errOut.String())
	}
}

func TestRunCanceled(t *testing.T) {
	var out, errOut bytes.Buffer
	a, err := New([]string{"perturb", "-quiet"}, &errOut)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if code := a.Run(ctx, &out); code != apperrors.ExitErrorCanceled {
		t.Fatalf("exit code %d, want %d", code, apperrors.ExitErrorCanceled)
	}
}
