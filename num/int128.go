package num

import "math/big"

// Int128 is a signed two's-complement 128-bit integer with wrapping
// arithmetic, stored as a signed high limb and an unsigned low limb.
type Int128 struct {
	Hi int64
	Lo uint64
}

// NewInt128 returns hi*2^64 + lo, with hi carrying the sign.
func NewInt128(hi int64, lo uint64) Int128 {
	return Int128{Hi: hi, Lo: lo}
}

// Int128From64 returns v sign-extended to 128 bits.
func Int128From64(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

// Uint128 reinterprets the bits of x as an unsigned 128-bit integer.
func (x Int128) Uint128() Uint128 {
	return Uint128{Hi: uint64(x.Hi), Lo: x.Lo}
}

// IsZero reports whether x == 0.
func (x Int128) IsZero() bool {
	return x.Hi == 0 && x.Lo == 0
}

// IsNeg reports whether x < 0.
func (x Int128) IsNeg() bool {
	return x.Hi < 0
}

// Add returns x + y mod 2^128.
func (x Int128) Add(y Int128) Int128 {
	return x.Uint128().Add(y.Uint128()).Int128()
}

// Sub returns x - y mod 2^128.
func (x Int128) Sub(y Int128) Int128 {
	return x.Uint128().Sub(y.Uint128()).Int128()
}

// Mul returns x * y mod 2^128.
func (x Int128) Mul(y Int128) Int128 {
	return x.Uint128().Mul(y.Uint128()).Int128()
}

// Neg returns -x mod 2^128.
func (x Int128) Neg() Int128 {
	return Uint128{}.Sub(x.Uint128()).Int128()
}

// mag returns |x| as an unsigned value. The minimum value maps onto its own
// bit pattern, which is its magnitude mod 2^128.
func (x Int128) mag() Uint128 {
	if x.IsNeg() {
		return x.Neg().Uint128()
	}
	return x.Uint128()
}

// QuoRem returns the quotient and remainder of x / y with truncation towards
// zero, the semantics of the built-in signed types. It panics when y is zero.
// MinInt128 / -1 wraps to MinInt128 instead of trapping.
func (x Int128) QuoRem(y Int128) (q, r Int128) {
	qu, ru := x.mag().QuoRem(y.mag())
	q, r = qu.Int128(), ru.Int128()
	if x.IsNeg() != y.IsNeg() {
		q = q.Neg()
	}
	if x.IsNeg() {
		r = r.Neg()
	}
	return
}

// Quo returns x / y.
func (x Int128) Quo(y Int128) Int128 {
	q, _ := x.QuoRem(y)
	return q
}

// Rem returns x % y.
func (x Int128) Rem(y Int128) Int128 {
	_, r := x.QuoRem(y)
	return r
}

// Cmp returns 1 if x > y, 0 if x == y and -1 if x < y.
func (x Int128) Cmp(y Int128) int {
	switch {
	case x.Hi > y.Hi:
		return 1
	case x.Hi < y.Hi:
		return -1
	case x.Lo > y.Lo:
		return 1
	case x.Lo < y.Lo:
		return -1
	default:
		return 0
	}
}

// And returns x & y.
func (x Int128) And(y Int128) Int128 {
	return x.Uint128().And(y.Uint128()).Int128()
}

// Or returns x | y.
func (x Int128) Or(y Int128) Int128 {
	return x.Uint128().Or(y.Uint128()).Int128()
}

// Xor returns x ^ y.
func (x Int128) Xor(y Int128) Int128 {
	return x.Uint128().Xor(y.Uint128()).Int128()
}

// Not returns ^x.
func (x Int128) Not() Int128 {
	return x.Uint128().Not().Int128()
}

// Lsh returns x << n.
func (x Int128) Lsh(n uint) Int128 {
	return x.Uint128().Lsh(n).Int128()
}

// Rsh returns x >> n (arithmetic shift, replicating the sign bit).
func (x Int128) Rsh(n uint) Int128 {
	sign := x.Hi >> 63
	switch {
	case n >= 128:
		return Int128{Hi: sign, Lo: uint64(sign)}
	case n >= 64:
		return Int128{Hi: sign, Lo: uint64(x.Hi >> (n - 64))}
	case n == 0:
		return x
	default:
		return Int128{Hi: x.Hi >> n, Lo: x.Lo>>n | uint64(x.Hi)<<(64-n)}
	}
}

// Big returns x as a big.Int.
func (x Int128) Big() *big.Int {
	if x.IsNeg() {
		return new(big.Int).Neg(x.mag().Big())
	}
	return x.Uint128().Big()
}

func (x Int128) String() string {
	return x.Big().String()
}
