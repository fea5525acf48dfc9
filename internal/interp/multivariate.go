package interp

import (
	"bytes"

	apperrors "github.com/exactgeom/perturb/internal/errors"
	"github.com/exactgeom/perturb/internal/exact"
	"github.com/exactgeom/perturb/internal/monomial"
	"github.com/exactgeom/perturb/internal/vandermonde"
)

// denseIndexCap bounds the size of the dense multi-index lookup array,
// (degree+1)^variables entries. Past the cap a hash map takes over; the
// asymptotics of the divided difference passes do not change.
const denseIndexCap = 1 << 22

// flatIndex maps a multi-index, encoded in base degree+1, to its row in the
// monomial table in O(1).
type flatIndex struct {
	powers   []int
	fromFlat []int
	dense    []int32 // -1 where no row exists
	sparse   map[int]int32
}

func newFlatIndex(degree int, lambda *monomial.Table) *flatIndex {
	f := &flatIndex{
		powers:   make([]int, lambda.Vars+1),
		fromFlat: make([]int, lambda.Rows),
	}
	f.powers[0] = 1
	for i := 0; i < lambda.Vars; i++ {
		f.powers[i+1] = f.powers[i] * (degree + 1)
	}
	if total := f.powers[lambda.Vars]; total <= denseIndexCap {
		f.dense = make([]int32, total)
		for i := range f.dense {
			f.dense[i] = -1
		}
	} else {
		f.sparse = make(map[int]int32, lambda.Rows)
	}
	for k := 0; k < lambda.Rows; k++ {
		flat := 0
		for i := 0; i < lambda.Vars; i++ {
			flat += f.powers[i] * int(lambda.At(k, i))
		}
		f.fromFlat[k] = flat
		if f.dense != nil {
			f.dense[flat] = int32(k)
		} else {
			f.sparse[flat] = int32(k)
		}
	}
	return f
}

// child returns the row whose multi-index equals row k's with component v
// decremented.
func (f *flatIndex) child(k, v int) int {
	flat := f.fromFlat[k] - f.powers[v]
	if f.dense != nil {
		return int(f.dense[flat])
	}
	return int(f.sparse[flat])
}

// InPlaceInterpolate solves in place for the monomial-basis coefficients of
// the unique polynomial of total degree <= degree interpolating the given
// values. values[k] must hold the polynomial's value at the lattice point
// whose coordinates are the multi-index lambda[k]; on return values[k] is
// the exact coefficient of the monomial lambda[k].
//
// Phase one runs the multivariate divided difference recurrence of Neidinger
// to obtain the Newton-form coefficients. Phase two expands the Newton basis
// into the monomial basis through the signed elementary symmetric polynomial
// table. Both phases rely on lambda being sorted by ascending total degree.
//
// With check set, the pass verifies that each divided difference combines
// rows whose multi-indices agree after the decrement, the invariant that
// makes the in-place update sound.
func InPlaceInterpolate(degree int, lambda *monomial.Table, values []exact.Rat, check bool) error {
	n := lambda.Vars
	f := newFlatIndex(degree, lambda)

	// Per-row cursor into the multi-index: cursor is the variable currently
	// being decremented, remaining the count left at that variable.
	type tick struct {
		cursor    int
		remaining uint8
	}
	info := make([]tick, lambda.Rows)
	for k := range info {
		info[k] = tick{0, lambda.At(k, 0)}
	}
	var alpha [][]uint8
	if check {
		alpha = make([][]uint8, lambda.Rows)
		for k := range alpha {
			alpha[k] = append([]uint8(nil), lambda.Row(k)...)
		}
	}

	// Divided differences, one pass per total degree.
	for pass := 1; pass <= degree; pass++ {
	rows:
		for k := lambda.Rows - 1; k >= 0; k-- {
			in := &info[k]
			for in.remaining == 0 {
				in.cursor++
				if in.cursor == n {
					// Rows below k have no smaller total degree left either;
					// lambda's degree ordering lets the whole pass stop here.
					break rows
				}
				in.remaining = lambda.At(k, in.cursor)
			}
			in.remaining--
			child := f.child(k, in.cursor)
			values[k].Sub(&values[child])
			values[k].DivInt64(int64(lambda.At(k, in.cursor)) - int64(in.remaining))
			if check {
				alpha[k][in.cursor]--
				if !bytes.Equal(alpha[k], alpha[child]) {
					return apperrors.NewPreconditionError(
						"divided difference pairing broke at row %d (pass %d): %s vs %s",
						k, pass, monomial.String(alpha[k]), monomial.String(alpha[child]))
				}
			}
		}
	}

	// Newton to monomial expansion. Each Newton coefficient at beta feeds
	// every gamma <= beta (componentwise) with the integer weight
	// prod_i sigma(beta_i, gamma_i); the weight is 1 on the diagonal since
	// Newton basis polynomials are monic.
	for k := 0; k < lambda.Rows; k++ {
		beta := lambda.Row(k)
		for kk := 0; kk < k; kk++ {
			gamma := lambda.Row(kk)
			taus := int64(1)
			ok := true
			for i := 0; i < n; i++ {
				if gamma[i] > beta[i] {
					ok = false
					break
				}
				if gamma[i] < beta[i] {
					taus *= int64(vandermonde.Sigma(int(beta[i]), int(gamma[i])))
				}
			}
			if ok {
				values[kk].AddMulInt64(&values[k], taus)
			}
		}
	}
	return nil
}
