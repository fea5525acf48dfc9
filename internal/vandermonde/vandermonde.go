// Package vandermonde holds the precomputed integer tables used to invert
// Vandermonde systems over the lattice evaluation points 0, 1, ..., k.
//
// Two dense lower-triangular tables are stored, regenerated by
// cmd/generate-tables:
//
//	Sigma(n, k) = tau_{n-k}(n)
//
// where tau_r(k) = (-1)^r * e_r(0, 1, ..., k-1) are the signed elementary
// symmetric polynomials; equivalently, Sigma(n, k) is the signed Stirling
// number of the first kind s(n, k). The generator uses the recurrence
//
//	sigma(0, 0) = 1
//	sigma(n+1, k) = sigma(n, k-1) - n*sigma(n, k)
//
// LowerTriangle(k, i) is row k of the inverse of the lower-triangular factor
// of the k x k Vandermonde matrix V_ij = j^i (i, j in 1..k), scaled by k! to
// clear fractions; in closed form
//
//	LowerTriangle(k, i) = (-1)^(k-i) * choose(k, i)
//
// The tables cover degrees up to MaxDegree. The generator checks that every
// entry fits in an int32 and refuses to emit overflowing tables; the Sigma
// row for degree 13 still fits, and degree 14 is the first that overflows.
package vandermonde

//go:generate go run github.com/exactgeom/perturb/cmd/generate-tables -out tables_generated.go

// MaxDegree bounds the polynomial degree supported by the tables.
const MaxDegree = 12

// LowerTriangle returns the (k, i) entry of the scaled inverse
// lower-triangular Vandermonde factor, for 1 <= i <= k <= MaxDegree.
func LowerTriangle(k, i int) int32 {
	return lowerTriangle[k-1][i-1]
}

// Sigma returns sigma(n, k) = tau_{n-k}(n) for 0 <= k <= n <= MaxDegree.
func Sigma(n, k int) int32 {
	return sigma[n][k]
}
