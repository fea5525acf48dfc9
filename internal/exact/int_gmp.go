//go:build gmp

// This file provides the GMP-backed integer type, conditionally compiled with
// the "gmp" build tag. The build tag architecture ensures that:
//   - The module builds without GMP by default (using math/big)
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp installed
package exact

import (
	"math/big"

	"github.com/ncw/gmp"
)

// Int is the exact signed integer used throughout the engine, backed by
// libgmp in this build. The zero value is ready to use and represents 0.
type Int = gmp.Int

// SetBig sets z to the value of x, converting from math/big to gmp.
// gmp.Int.SetBytes works on magnitudes, so the sign is carried separately.
func SetBig(z *Int, x *big.Int) {
	z.SetBytes(x.Bytes())
	if x.Sign() < 0 {
		z.Neg(z)
	}
}

// ToBig returns the value of x as a *big.Int, converting from gmp to
// math/big with the sign carried separately.
func ToBig(x *Int) *big.Int {
	b := new(big.Int).SetBytes(x.Bytes())
	if x.Sign() < 0 {
		b.Neg(b)
	}
	return b
}
