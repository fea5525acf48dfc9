package perturb

import (
	"fmt"
	"math/big"

	apperrors "github.com/exactgeom/perturb/internal/errors"
	"github.com/exactgeom/perturb/internal/exact"
	"github.com/exactgeom/perturb/internal/interp"
	"github.com/exactgeom/perturb/internal/metrics"
	"github.com/exactgeom/perturb/internal/monomial"
	"github.com/exactgeom/perturb/internal/prng"
	"github.com/exactgeom/perturb/internal/vandermonde"
)

const (
	// MaxDegree is the largest predicate degree the precomputed Vandermonde
	// tables support.
	MaxDegree = vandermonde.MaxDegree
	// MaxDimension is the largest point dimension, limited by the 128-bit
	// perturbation block.
	MaxDimension = 4
	// LogBound is B in the perturbation component range [-2^B, 2^B).
	LogBound = prng.LogBound
)

// Point is one input point: a stable integer id and integer coordinates.
// Two queries that pass the same id receive the same perturbation at every
// level, which is what keeps signs consistent across predicates. Ids must be
// unique within one call.
type Point struct {
	ID    int
	Coord []int64
}

// Predicate is a caller-supplied pure function over n points in dimension m,
// polynomial of bounded total degree in the concatenated coordinates, and
// exact: it returns the integer value, never an approximation. It must not
// mutate its argument, and must not retain it: the engine reuses the
// argument buffers between evaluations.
type Predicate func(args [][]*big.Int) (*big.Int, error)

// PerturbedSign reports whether the sign of pred at pts, after symbolic
// perturbation, is positive. degree must be an upper bound on pred's total
// polynomial degree (tight is optimal, higher is safe) and at most
// MaxDegree. The result is a deterministic function of the inputs and is
// never "zero": perturbation breaks all ties.
//
// Callers that observe a nonzero unperturbed predicate value should use its
// sign directly and skip the engine. The engine always runs the perturbed
// path and treats the unperturbed value as zero (the round-1 solve has no
// constant term), so for such input its result need not match the raw sign.
func PerturbedSign(pred Predicate, degree int, pts []Point, opts ...Option) (bool, error) {
	o := buildOptions(opts)
	m, err := validate(degree, pts)
	if err != nil {
		return false, err
	}
	metrics.QueriesTotal.Inc()

	n := len(pts)
	log := o.logger
	log.Debug().Int("degree", degree).Int("points", n).Int("dim", m).
		Msg("perturbed sign query")

	// Scratch matrix handed to the predicate, reused across evaluations.
	z := make([][]*big.Int, n)
	for i := range z {
		z[i] = make([]*big.Int, m)
		for c := range z[i] {
			z[i][c] = new(big.Int)
		}
	}
	eval := func() (*big.Int, error) {
		v, err := pred(z)
		if err != nil {
			return nil, PredicateFailed(err)
		}
		metrics.PredicateEvaluationsTotal.Inc()
		return v, nil
	}

	if o.selfCheck {
		for i, p := range pts {
			for c, x := range p.Coord {
				z[i][c].SetInt64(x)
			}
		}
		v, err := eval()
		if err != nil {
			return false, err
		}
		if v.Sign() != 0 {
			return false, apperrors.NewPreconditionError(
				"self-check: predicate is nonzero (%s) at the unperturbed input", v)
		}
	}

	// Perturbation slabs, one vector per (level, point).
	slabs := [][][]int64{perturbationSlab(1, pts, m)}
	log.Debug().Str("Y1", fmt.Sprint(slabs[0])).Msg("level 1 perturbation")

	// Round 1: a single perturbation variable, integers only. Evaluate at
	// epsilon = 1..degree; the constant term is zero because the predicate
	// vanishes at the unperturbed input.
	values := make([]*exact.Int, degree)
	for j := 1; j <= degree; j++ {
		for i, p := range pts {
			for c, x := range p.Coord {
				z[i][c].SetInt64(x + int64(j)*slabs[0][i][c])
			}
		}
		v, err := eval()
		if err != nil {
			return false, err
		}
		values[j-1] = new(exact.Int)
		exact.SetBig(values[j-1], v)
	}
	interp.ScaledUnivariate(values)
	for j := 0; j < degree; j++ {
		if s := values[j].Sign(); s != 0 {
			log.Debug().Int("round", 1).Int("epsilon_power", j+1).Int("sign", s).
				Msg("resolved on fast path")
			return s > 0, nil
		}
	}

	// The predicate vanishes along the whole first perturbation line. Add
	// one perturbation variable after another until a coefficient survives;
	// nondegeneracy of the perturbation guarantees termination. Work from
	// earlier rounds is deliberately repeated; the first escalation round
	// suffices almost always, so sharing would buy nothing.
	metrics.QueriesEscalatedTotal.Inc()
	for d := 2; ; d++ {
		metrics.EscalationRoundsTotal.Inc()
		slabs = append(slabs, perturbationSlab(d, pts, m))

		lambda, err := monomial.Enumerate(degree, d)
		if err != nil {
			return false, err
		}
		rvalues := make([]exact.Rat, lambda.Rows)
		for j := 0; j < lambda.Rows; j++ {
			for i, p := range pts {
				for c, x := range p.Coord {
					acc := x
					for v := 0; v < d; v++ {
						acc += int64(lambda.At(j, v)) * slabs[v][i][c]
					}
					z[i][c].SetInt64(acc)
				}
			}
			v, err := eval()
			if err != nil {
				return false, err
			}
			rvalues[j].SetBigInt(v)
		}
		if err := interp.InPlaceInterpolate(degree, lambda, rvalues, o.selfCheck); err != nil {
			return false, err
		}

		// Among the surviving coefficients, the sign is carried by the one
		// whose monomial is the largest remaining infinitesimal.
		sign, signJ := 0, -1
		for j := 0; j < lambda.Rows; j++ {
			s := rvalues[j].Sign()
			if s == 0 {
				continue
			}
			if o.selfCheck && lambda.At(j, d-1) == 0 {
				return false, apperrors.NewPreconditionError(
					"self-check: coefficient %s vanished in round %d but is nonzero now",
					monomial.String(lambda.Row(j)), d-1)
			}
			if sign == 0 || monomial.Less(lambda.Row(signJ), lambda.Row(j)) {
				sign, signJ = s, j
			}
		}
		if sign != 0 {
			log.Debug().Int("round", d).
				Str("monomial", monomial.String(lambda.Row(signJ))).Int("sign", sign).
				Msg("resolved by escalation")
			return sign > 0, nil
		}
	}
}

// PredicateFailed wraps an error returned by a Predicate so callers can
// distinguish predicate failures from engine precondition violations.
func PredicateFailed(cause error) error {
	return apperrors.PredicateError{Cause: cause}
}

// validate enforces the call preconditions and returns the point dimension.
func validate(degree int, pts []Point) (int, error) {
	if degree < 1 || degree > MaxDegree {
		return 0, apperrors.NewPreconditionError(
			"degree %d out of range [1, %d]", degree, MaxDegree)
	}
	if len(pts) == 0 {
		return 0, apperrors.NewPreconditionError("no input points")
	}
	m := len(pts[0].Coord)
	if m < 1 || m > MaxDimension {
		return 0, apperrors.NewPreconditionError(
			"point dimension %d out of range [1, %d]", m, MaxDimension)
	}
	seen := make(map[int]struct{}, len(pts))
	for _, p := range pts {
		if len(p.Coord) != m {
			return 0, apperrors.NewPreconditionError(
				"point %d has dimension %d, want %d", p.ID, len(p.Coord), m)
		}
		if _, dup := seen[p.ID]; dup {
			return 0, apperrors.NewPreconditionError("duplicate point id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return m, nil
}

// perturbationSlab computes the level-th perturbation vector of every point.
func perturbationSlab(level int, pts []Point, m int) [][]int64 {
	slab := make([][]int64, len(pts))
	for i, p := range pts {
		slab[i] = make([]int64, m)
		prng.Perturbation(slab[i], level, p.ID)
	}
	return slab
}
