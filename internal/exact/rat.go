package exact

import "math/big"

// Rat is an exact rational held as an explicit numerator/denominator pair of
// exact integers. The denominator is kept strictly positive, and the pair is
// kept in lowest terms (callers of the raw mutators below rely on that
// canonical form when reading signs).
//
// The type is deliberately minimal: it implements exactly the operations the
// multivariate interpolation needs, so that the build-selected Int backend
// serves rational arithmetic too. The zero value is not ready for use; call
// one of the Set methods first.
type Rat struct {
	num, den Int
}

// SetInt64 sets r to v.
func (r *Rat) SetInt64(v int64) {
	r.num.SetInt64(v)
	r.den.SetInt64(1)
}

// SetBigInt sets r to the integer value n with denominator one. The value is
// copied out of n; n is not retained.
func (r *Rat) SetBigInt(n *big.Int) {
	SetBig(&r.num, n)
	r.den.SetInt64(1)
}

// Sub subtracts o from r in place and reduces to lowest terms.
func (r *Rat) Sub(o *Rat) {
	var t Int
	t.Mul(&o.num, &r.den)
	r.num.Mul(&r.num, &o.den)
	r.num.Sub(&r.num, &t)
	r.den.Mul(&r.den, &o.den)
	r.reduce()
}

// DivInt64 divides r by n in place. n must be positive. The common factor of
// the numerator and n is divided out first so that only the leftover part of
// n lands on the denominator, keeping magnitudes bounded without a full
// re-reduction.
func (r *Rat) DivInt64(n int64) {
	g := gcdInt64(&r.num, n)
	if g > 1 {
		var t Int
		t.SetInt64(g)
		r.num.Quo(&r.num, &t)
		n /= g
	}
	if n > 1 {
		MulInt64(&r.den, n)
	}
}

// AddMulInt64 adds c*o to r in place and reduces to lowest terms.
func (r *Rat) AddMulInt64(o *Rat, c int64) {
	var t Int
	t.SetInt64(c)
	t.Mul(&t, &o.num)
	t.Mul(&t, &r.den)
	r.num.Mul(&r.num, &o.den)
	r.num.Add(&r.num, &t)
	r.den.Mul(&r.den, &o.den)
	r.reduce()
}

// Sign returns -1, 0, or +1 according to the sign of r.
func (r *Rat) Sign() int {
	return r.num.Sign()
}

// EqInt64 reports whether r equals the integer v.
func (r *Rat) EqInt64(v int64) bool {
	var t Int
	t.SetInt64(v)
	t.Mul(&t, &r.den)
	return r.num.Cmp(&t) == 0
}

// Num returns the numerator as a *big.Int copy.
func (r *Rat) Num() *big.Int { return ToBig(&r.num) }

// Den returns the denominator as a *big.Int copy.
func (r *Rat) Den() *big.Int { return ToBig(&r.den) }

// String formats r as num or num/den.
func (r *Rat) String() string {
	if r.den.Sign() == 0 {
		return "uninitialized"
	}
	var one Int
	one.SetInt64(1)
	if r.den.Cmp(&one) == 0 {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}

// reduce restores lowest terms. The denominator stays positive because every
// mutator only ever multiplies it by positive integers.
func (r *Rat) reduce() {
	if r.num.Sign() == 0 {
		r.den.SetInt64(1)
		return
	}
	var g Int
	GCD(&g, &r.num, &r.den)
	var one Int
	one.SetInt64(1)
	if g.Cmp(&one) != 0 {
		r.num.Quo(&r.num, &g)
		r.den.Quo(&r.den, &g)
	}
}
