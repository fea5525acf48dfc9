package perturb

import "github.com/rs/zerolog"

// engineOptions collects the per-call knobs of PerturbedSign.
type engineOptions struct {
	logger    zerolog.Logger
	selfCheck bool
}

// Option configures a single PerturbedSign call.
type Option func(*engineOptions)

// WithLogger attaches a zerolog logger for the verbose evaluation trace:
// inputs, perturbation vectors, predicate values, and interpolated
// coefficients, all at debug level. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *engineOptions) { o.logger = logger }
}

// WithSelfCheck enables the internal consistency assertions: the unperturbed
// predicate must vanish, divided differences must pair matching
// multi-indices, and a coefficient known to be zero from an earlier round
// must not reappear. Violations are reported as precondition errors. Meant
// for tests and debugging; the checks cost extra predicate evaluations.
func WithSelfCheck(on bool) Option {
	return func(o *engineOptions) { o.selfCheck = on }
}

func buildOptions(opts []Option) engineOptions {
	o := engineOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
