package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestErrorTypesAndUnwrap(t *testing.T) {
	pre := NewPreconditionError("degree %d out of range", 99)
	if !errors.As(pre, &PreconditionError{}) {
		t.Fatalf("want PreconditionError, got %T", pre)
	}
	if pre.Error() != "degree 99 out of range" {
		t.Errorf("message = %q", pre.Error())
	}

	cause := fmt.Errorf("overflow")
	pe := PredicateError{Cause: cause}
	if !errors.Is(pe, cause) {
		t.Error("PredicateError does not unwrap to its cause")
	}

	cfg := NewConfigError("bad flag %q", "-x")
	if !errors.As(cfg, &ConfigError{}) {
		t.Fatalf("want ConfigError, got %T", cfg)
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitSuccess},
		{context.Canceled, ExitErrorCanceled},
		{fmt.Errorf("wrapped: %w", context.Canceled), ExitErrorCanceled},
		{NewConfigError("bad"), ExitErrorConfig},
		{NewMismatchError("sign flipped"), ExitErrorMismatch},
		{fmt.Errorf("anything"), ExitErrorGeneric},
		{PredicateError{Cause: fmt.Errorf("boom")}, ExitErrorGeneric},
	}
	for _, c := range cases {
		if got := ExitCode(c.err); got != c.want {
			t.Errorf("ExitCode(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
