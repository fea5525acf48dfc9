// Package interp recovers monomial coefficients of a polynomial from its
// values on integer lattice points, using the divided difference algorithm
// with precomputed inverse-Vandermonde tables. The univariate solver works
// on exact integers only; the general multivariate solver needs exact
// rationals for the intermediate divided differences.
package interp

import (
	"github.com/exactgeom/perturb/internal/exact"
	"github.com/exactgeom/perturb/internal/vandermonde"
)

// ScaledUnivariate solves in place for the coefficients of the univariate
// polynomial of degree len(values) with zero constant term whose value at
// j is values[j-1] for j = 1..degree. On return, values[k-1] holds the
// coefficient of x^k multiplied by degree!.
//
// The scale factor is what keeps everything integral: row k of the inverse
// lower-triangular Vandermonde factor is stored premultiplied by k!, and the
// inverse of the special upper-triangular factor is integral on its own.
// Since degree! > 0, the scaled coefficients carry the exact signs of the
// true ones, which is all the sign scan downstream needs.
func ScaledUnivariate(values []*exact.Int) {
	degree := len(values)
	// Inverse lower-triangular pass, bottom row first. Row k of L^-1 is
	// stored times k!, so using it at row k requires the factor degree!/k!.
	factor := int64(1)
	for k := degree - 1; k >= 0; k-- {
		for i := 0; i < k; i++ {
			exact.AddMulInt64(values[k], values[i], int64(vandermonde.LowerTriangle(k+1, i+1)))
		}
		if factor > 1 {
			exact.MulInt64(values[k], factor)
		}
		factor *= int64(k + 1)
	}
	// Inverse special upper-triangular pass; integral, no extra factors.
	for k := 0; k < degree; k++ {
		for i := 0; i < k; i++ {
			exact.AddMulInt64(values[i], values[k], int64(vandermonde.Sigma(k+1, i+1)))
		}
	}
}
