// Package monomial enumerates multivariate monomial multi-indices and
// defines the relative size order on the infinitesimal products they stand
// for. A multi-index alpha = (a_1, ..., a_d) with sum(a_i) <= degree names
// the monomial e_1^a_1 * ... * e_d^a_d over the perturbation variables.
package monomial

import (
	apperrors "github.com/exactgeom/perturb/internal/errors"
)

// MaxCount caps the number of enumerated monomials. Interpolating past a
// million evaluation points is never intentional; refusing early turns a
// runaway escalation into a diagnosable failure.
const MaxCount = 1 << 20

// Table holds multi-indices as rows of a dense Rows x Vars byte matrix.
type Table struct {
	Rows int
	Vars int
	data []uint8
}

// At returns component v of row k.
func (t *Table) At(k, v int) uint8 {
	return t.data[k*t.Vars+v]
}

// Row returns row k as a slice aliasing the table's storage.
func (t *Table) Row(k int) []uint8 {
	return t.data[k*t.Vars : (k+1)*t.Vars]
}

// Count returns the number of d-variate monomials of total degree at most
// degree, which is choose(degree+d, degree). It errors when the count
// exceeds MaxCount.
func Count(degree, variables int) (int, error) {
	num, den := uint64(1), uint64(1)
	for k := 1; k <= degree; k++ {
		num *= uint64(k + variables)
		den *= uint64(k)
	}
	num /= den
	if num > MaxCount {
		return 0, apperrors.NewPreconditionError(
			"monomial count %d for degree %d in %d variables exceeds the cap of %d",
			num, degree, variables, MaxCount)
	}
	return int(num), nil
}

// Enumerate lists all multi-indices of total degree <= degree over the given
// number of variables, ordered by ascending total degree and, within a
// degree, by the odometer traversal below. Row 0 is the zero multi-index.
//
// This is the order the divided difference passes need. It is NOT the
// infinitesimal size order; see Less.
func Enumerate(degree, variables int) (*Table, error) {
	n, err := Count(degree, variables)
	if err != nil {
		return nil, err
	}
	t := &Table{Rows: n, Vars: variables, data: make([]uint8, n*variables)}
	if variables == 0 {
		return t, nil
	}

	// An explicit stack walk: alpha[0..i) holds the committed prefix, left is
	// the degree still to distribute over alpha[i..variables).
	next := 0
	alpha := make([]uint8, variables)
degrees:
	for d := 0; d <= degree; d++ {
		i := 0
		left := uint8(d)
		alpha[0] = 0
		for {
			if i < variables-1 {
				i++
				continue
			}
			// Complete monomial: the last variable takes whatever is left.
			alpha[i] = left
			copy(t.data[next*variables:], alpha)
			next++
			// Walk back up until some alpha[i] can be incremented.
			for {
				i--
				if i < 0 {
					continue degrees
				}
				if left == 0 {
					left += alpha[i]
					alpha[i] = 0
				} else {
					left--
					alpha[i]++
					break
				}
			}
		}
	}
	if next != n {
		panic("monomial: enumeration produced a wrong count")
	}
	return t, nil
}

// Less is the relative size order on infinitesimals: it reports whether the
// monomial a is smaller, as an infinitesimal, than b. Level k+1 is
// infinitely smaller than level k, so the comparison scans from the highest
// level down; at the first differing level, the monomial carrying the larger
// exponent is the smaller infinitesimal.
func Less(a, b []uint8) bool {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}

// String renders a multi-index as a digit string, e.g. (0,2,1) -> "021".
// Only used by diagnostics; exponents above 9 render as the ASCII characters
// that follow '9' (':' for 10, 'A' for 17).
func String(alpha []uint8) string {
	s := make([]byte, len(alpha))
	for i, a := range alpha {
		s[i] = '0' + a
	}
	return string(s)
}
