//go:build !gmp

// Package exact supplies the exact integer and rational arithmetic used by
// the interpolation and sign-resolution code. All arithmetic is exact; there
// is no rounding anywhere in this package.
//
// The integer type is selected at build time. The default build uses the
// standard library's math/big, which is portable and requires no CGO. Building
// with the "gmp" tag swaps in github.com/ncw/gmp, which wraps libgmp and is
// noticeably faster on large operands:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp
//
// Both types expose the same method set, so the rest of the package is
// written once against the Int alias.
package exact

import "math/big"

// Int is the exact signed integer used throughout the engine.
// The zero value is ready to use and represents 0.
type Int = big.Int

// SetBig sets z to the value of x. In this build Int is big.Int, so this is
// a plain Set.
func SetBig(z *Int, x *big.Int) {
	z.Set(x)
}

// ToBig returns the value of x as a *big.Int. In this build the two types
// coincide, so a copy is returned to keep ownership rules uniform with the
// gmp build.
func ToBig(x *Int) *big.Int {
	return new(big.Int).Set(x)
}
