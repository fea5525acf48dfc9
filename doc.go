// Package perturb deterministically resolves degenerate sign queries for
// exact geometric predicates by black-box simulation of simplicity.
//
// Given an integer polynomial predicate f over n points, the engine computes
//
//	PerturbedSign(f, X) = lim_{e_k -> 0+} sign(f(X + sum_{k>=1} e_k Y_k))
//
// where the Y_k are fixed pseudorandom integer vectors indexed by point
// identity and the e_k form a strictly decreasing sequence of infinitesimals
// (e_i >> e_j for i < j). The result is never zero, and it is consistent
// across every predicate evaluation that shares a point id, which is what
// makes downstream geometric algorithms (clipping, CSG, triangulation)
// behave as if their input were in general position.
//
// Almost all of the time the first perturbation variable already reaches
// nondegeneracy, so the practical cost is one predicate evaluation per
// degree. The scheme combines the fully general method of Yap with the
// randomized linear method of Seidel:
//
//	Yap 1990, "Symbolic treatment of geometric degeneracies".
//	Seidel 1998, "The nature and meaning of perturbations in geometric computing".
//
// The expanded predicate at each level is recovered by the divided
// difference algorithm of
//
//	Neidinger 2010, "Multivariable interpolating polynomials in Newton forms",
//
// evaluated on "easy corners" where the lattice coordinates are 0..degree.
// In the univariate case the LU decomposition of the Vandermonde matrix is
// precomputed, inverted, and cleared of fractions so no rational arithmetic
// is needed; its structure follows
//
//	Oliver 2009, "On multivariate interpolation".
package perturb
