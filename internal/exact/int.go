package exact

// Build-independent helpers on Int. Only the method-set shared by math/big
// and github.com/ncw/gmp may be used here: Abs, Add, Cmp, Int64, Mod, Mul,
// Neg, Quo, Set, SetInt64, Sign, Sub, String, Bytes, SetBytes.

// NewInt returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// AddMulInt64 adds c*x to z in place.
func AddMulInt64(z, x *Int, c int64) {
	var t Int
	t.SetInt64(c)
	t.Mul(&t, x)
	z.Add(z, &t)
}

// MulInt64 multiplies z by c in place.
func MulInt64(z *Int, c int64) {
	var t Int
	t.SetInt64(c)
	z.Mul(z, &t)
}

// GCD sets z to the greatest common divisor of |a| and |b| using the
// Euclidean algorithm. GCD(0, 0) is defined as 0. a and b are not modified.
func GCD(z, a, b *Int) {
	var x, y Int
	x.Abs(a)
	y.Abs(b)
	for y.Sign() != 0 {
		var r Int
		r.Mod(&x, &y)
		x.Set(&y)
		y.Set(&r)
	}
	z.Set(&x)
}

// gcdInt64 returns gcd(|x|, n) for n > 0. The result always divides n, so it
// fits in an int64.
func gcdInt64(x *Int, n int64) int64 {
	var m, r Int
	m.SetInt64(n)
	r.Abs(x)
	r.Mod(&r, &m)
	a, b := n, r.Int64()
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
