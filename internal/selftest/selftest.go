// Package selftest cross-checks the perturbation engine against brute-force
// evaluation. Each case uses a deliberately malicious predicate that
// vanishes along the first m-1 perturbation levels, forcing the engine
// through its escalation rounds, and then compares the engine's answer with
// the sign of the predicate evaluated at explicit big-integer coordinates
// whose perturbation levels are separated by large powers of two.
package selftest

import (
	"fmt"
	"math/big"

	"github.com/exactgeom/perturb"
	apperrors "github.com/exactgeom/perturb/internal/errors"
	"github.com/exactgeom/perturb/internal/prng"
)

// Case identifies one self-test: the predicate family m (1, 2, or 3), the
// polynomial degree (1, 2, or 3), and the point id under test.
type Case struct {
	M      int
	Degree int
	Index  int
}

func (c Case) String() string {
	return fmt.Sprintf("m=%d degree=%d index=%d", c.M, c.Degree, c.Index)
}

// Predicate builds the case's nasty predicate:
//
//	m=1: f(X) = X[0].x^degree
//	m=2: f(X) = det(X[0], Y(1,index))^degree
//	m=3: f(X) = det(X[0], Y(1,index), Y(2,index))^degree
//
// For m >= 2 the predicate is built from the point's own perturbation
// vectors, so it is identically zero along the first m-1 perturbation
// levels and only the m-th level can break the tie.
func (c Case) Predicate() perturb.Predicate {
	y1 := perturbationBig(1, c.Index, c.M)
	y2 := perturbationBig(2, c.Index, c.M)
	return func(args [][]*big.Int) (*big.Int, error) {
		var v *big.Int
		switch c.M {
		case 1:
			v = new(big.Int).Set(args[0][0])
		case 2:
			v = det2(args[0], y1)
		case 3:
			v = det3(args[0], y1, y2)
		default:
			return nil, fmt.Errorf("unsupported dimension %d", c.M)
		}
		return pow(v, c.Degree), nil
	}
}

// Run evaluates the case with the engine and with brute force, returning a
// MismatchError when the two disagree. Extra engine options (typically a
// logger) are passed through to PerturbedSign.
func (c Case) Run(opts ...perturb.Option) error {
	pred := c.Predicate()
	pts := []perturb.Point{{ID: c.Index, Coord: make([]int64, c.M)}}
	fast, err := perturb.PerturbedSign(pred, c.Degree, pts,
		append([]perturb.Option{perturb.WithSelfCheck(true)}, opts...)...)
	if err != nil {
		return fmt.Errorf("%s: %w", c, err)
	}
	if c.Degree%2 == 0 && !fast {
		return apperrors.NewMismatchError(
			"%s: even degree must perturb to a positive sign", c)
	}
	want := -1
	if fast {
		want = 1
	}

	// Brute force: approximate the nested infinitesimals with powers of two
	// separated widely enough that no level can interfere with the one
	// above: P_i = (degree+1)*P_{i-1} + 128. Level i contributes
	// Y(i) << (P_m - P_{i-1}), so level 1 carries the largest scale.
	powers := make([]int, c.M+1)
	for i := 0; i < c.M; i++ {
		powers[i+1] = (c.Degree+1)*powers[i] + 128
	}
	sx := make([]*big.Int, c.M)
	for j := range sx {
		sx[j] = new(big.Int)
	}
	yp := new(big.Int)
	for i := 0; i <= c.M+1; i++ {
		if i > 0 {
			y := make([]int64, c.M)
			prng.Perturbation(y, i, c.Index)
			shift := uint(powers[c.M] - powers[i-1])
			for j := range sx {
				yp.SetInt64(y[j])
				yp.Lsh(yp, shift)
				sx[j].Add(sx[j], yp)
			}
		}
		v, err := pred([][]*big.Int{sx})
		if err != nil {
			return fmt.Errorf("%s: brute force: %w", c, err)
		}
		slow := v.Sign()
		// Zero until level m is reached, then locked to the engine's sign.
		expect := 0
		if i >= c.M {
			expect = want
		}
		if slow != expect {
			return apperrors.NewMismatchError(
				"%s: brute force sign %d at level %d, engine implies %d", c, slow, i, expect)
		}
	}
	return nil
}

// Matrix returns the full battery of self-test cases over all supported
// predicate families and degrees, with indices 0..indices-1.
func Matrix(indices int) []Case {
	var cases []Case
	for _, m := range []int{1, 2, 3} {
		for _, degree := range []int{1, 2, 3} {
			for index := 0; index < indices; index++ {
				cases = append(cases, Case{M: m, Degree: degree, Index: index})
			}
		}
	}
	return cases
}

func perturbationBig(level, index, m int) []*big.Int {
	raw := make([]int64, m)
	prng.Perturbation(raw, level, index)
	out := make([]*big.Int, m)
	for i, v := range raw {
		out[i] = big.NewInt(v)
	}
	return out
}

func pow(v *big.Int, degree int) *big.Int {
	out := new(big.Int).Set(v)
	for i := 1; i < degree; i++ {
		out.Mul(out, v)
	}
	return out
}

func det2(a, b []*big.Int) *big.Int {
	t1 := new(big.Int).Mul(a[0], b[1])
	t2 := new(big.Int).Mul(a[1], b[0])
	return t1.Sub(t1, t2)
}

func det3(a, b, c []*big.Int) *big.Int {
	out := new(big.Int).Mul(minor(b, c, 1, 2), a[0])
	t := new(big.Int).Mul(minor(b, c, 0, 2), a[1])
	out.Sub(out, t)
	t.Mul(minor(b, c, 0, 1), a[2])
	return out.Add(out, t)
}

// minor computes b[i]*c[j] - b[j]*c[i].
func minor(b, c []*big.Int, i, j int) *big.Int {
	t1 := new(big.Int).Mul(b[i], c[j])
	t2 := new(big.Int).Mul(b[j], c[i])
	return t1.Sub(t1, t2)
}
