package secret

import (
	"math/bits"

	"github.com/tuneinsight/secint/num"
)

// Uint128 is a secret unsigned 128-bit integer.
type Uint128 struct {
	v num.Uint128
}

// ClassifyUint128 tags a raw 128-bit carrier value as secret.
func ClassifyUint128(v num.Uint128) Uint128 {
	return Uint128{v: v}
}

// Declassify strips the secrecy tag and returns the raw carrier value. See
// Int.Declassify.
func (x Uint128) Declassify() num.Uint128 {
	return x.v
}

// And returns x & y.
func (x Uint128) And(y Uint128) Uint128 { return Uint128{v: x.v.And(y.v)} }

// Or returns x | y.
func (x Uint128) Or(y Uint128) Uint128 { return Uint128{v: x.v.Or(y.v)} }

// Xor returns x ^ y.
func (x Uint128) Xor(y Uint128) Uint128 { return Uint128{v: x.v.Xor(y.v)} }

// Not returns ^x.
func (x Uint128) Not() Uint128 { return Uint128{v: x.v.Not()} }

// Lsh returns x << n. The shift count is public.
func (x Uint128) Lsh(n uint) Uint128 { return Uint128{v: x.v.Lsh(n)} }

// Rsh returns x >> n. The shift count is public.
func (x Uint128) Rsh(n uint) Uint128 { return Uint128{v: x.v.Rsh(n)} }

// SelectUint128 returns a where mask is all ones and b where mask is all
// zeros, using only bitwise operations.
func SelectUint128(mask, a, b Uint128) Uint128 {
	return mask.And(a).Or(mask.Not().And(b))
}

// CompEq returns the all-ones mask if x == y, all zeros otherwise, without
// branching on the operands.
func (x Uint128) CompEq(y Uint128) Uint128 {
	return Uint128{v: mask128(eqBit128(x.v, y.v))}
}

// CompNe returns the all-ones mask if x != y, all zeros otherwise, without
// branching on the operands.
func (x Uint128) CompNe(y Uint128) Uint128 {
	return Uint128{v: mask128(1 ^ eqBit128(x.v, y.v))}
}

// CompGt returns the all-ones mask if x > y, all zeros otherwise, without
// branching on the operands.
func (x Uint128) CompGt(y Uint128) Uint128 {
	return Uint128{v: mask128(ltBit128(y.v, x.v))}
}

// CompGte returns the all-ones mask if x >= y, all zeros otherwise, without
// branching on the operands.
func (x Uint128) CompGte(y Uint128) Uint128 {
	return Uint128{v: mask128(1 ^ ltBit128(x.v, y.v))}
}

// CompLt returns the all-ones mask if x < y, all zeros otherwise, without
// branching on the operands.
func (x Uint128) CompLt(y Uint128) Uint128 {
	return Uint128{v: mask128(ltBit128(x.v, y.v))}
}

// CompLte returns the all-ones mask if x <= y, all zeros otherwise, without
// branching on the operands.
func (x Uint128) CompLte(y Uint128) Uint128 {
	return Uint128{v: mask128(1 ^ ltBit128(y.v, x.v))}
}

// NumBits returns 128.
func (Uint128) NumBits() uint { return 128 }

// Zero returns 0.
func (Uint128) Zero() Uint128 { return Uint128{} }

// One returns 1.
func (Uint128) One() Uint128 { return Uint128{v: num.Uint128{Lo: 1}} }

// Two returns 2.
func (Uint128) Two() Uint128 { return Uint128{v: num.Uint128{Lo: 2}} }

// FromLiteral classifies the full 128-bit literal.
func (Uint128) FromLiteral(lit num.Uint128) Uint128 { return ClassifyUint128(lit) }

// MaxVal returns 2^128 - 1.
func (Uint128) MaxVal() Uint128 {
	return Uint128{v: num.Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}}
}

// WrapAdd returns x + y mod 2^128.
func (x Uint128) WrapAdd(y Uint128) Uint128 { return Uint128{v: x.v.Add(y.v)} }

// WrapSub returns x - y mod 2^128.
func (x Uint128) WrapSub(y Uint128) Uint128 { return Uint128{v: x.v.Sub(y.v)} }

// WrapMul returns x * y mod 2^128.
func (x Uint128) WrapMul(y Uint128) Uint128 { return Uint128{v: x.v.Mul(y.v)} }

// WrapDiv is unsupported: there is no constant-time division to delegate to.
func (x Uint128) WrapDiv(_ Uint128) Uint128 {
	panic(num.Unsupported("WrapDiv", "secret.Uint128"))
}

// Pow returns x^exp by repeated wrapping multiplication. The exponent MUST be
// public.
func (x Uint128) Pow(exp uint) Uint128 {
	r := num.Uint128{Lo: 1}
	for i := uint(0); i < exp; i++ {
		r = r.Mul(x.v)
	}
	return Uint128{v: r}
}

// PowSelf is unsupported.
func (x Uint128) PowSelf(_ Uint128) Uint128 {
	panic(num.Unsupported("PowSelf", "secret.Uint128"))
}

// AddMod returns (x + y) % n. NOT CONSTANT TIME: declassifies internally.
func (x Uint128) AddMod(y, n Uint128) Uint128 {
	return ClassifyUint128(x.Declassify().Add(y.Declassify()).Rem(n.Declassify()))
}

// SubMod returns (x - y) % n on the wrapped difference. NOT CONSTANT TIME:
// declassifies internally.
func (x Uint128) SubMod(y, n Uint128) Uint128 {
	return ClassifyUint128(x.Declassify().Sub(y.Declassify()).Rem(n.Declassify()))
}

// MulMod returns (x * y) % n on the wrapped product. NOT CONSTANT TIME:
// declassifies internally.
func (x Uint128) MulMod(y, n Uint128) Uint128 {
	return ClassifyUint128(x.Declassify().Mul(y.Declassify()).Rem(n.Declassify()))
}

// PowMod is unsupported.
func (x Uint128) PowMod(_, _ Uint128) Uint128 {
	panic(num.Unsupported("PowMod", "secret.Uint128"))
}

// Div returns x / y. NOT CONSTANT TIME: declassifies both operands.
func (x Uint128) Div(y Uint128) Uint128 {
	return ClassifyUint128(x.Declassify().Quo(y.Declassify()))
}

// Rem returns x % n. NOT CONSTANT TIME: declassifies both operands.
func (x Uint128) Rem(n Uint128) Uint128 {
	return ClassifyUint128(x.Declassify().Rem(n.Declassify()))
}

// Inv is unsupported.
func (x Uint128) Inv(_ Uint128) Uint128 {
	panic(num.Unsupported("Inv", "secret.Uint128"))
}

// Abs is unsupported.
func (x Uint128) Abs() Uint128 {
	panic(num.Unsupported("Abs", "secret.Uint128"))
}

// Equal reports x == y after declassifying both operands.
func (x Uint128) Equal(y Uint128) bool { return x.Declassify().Cmp(y.Declassify()) == 0 }

// NotEqual reports x != y after declassifying both operands.
func (x Uint128) NotEqual(y Uint128) bool { return x.Declassify().Cmp(y.Declassify()) != 0 }

// GreaterThan reports x > y after declassifying both operands.
func (x Uint128) GreaterThan(y Uint128) bool { return x.Declassify().Cmp(y.Declassify()) > 0 }

// GreaterThanOrEqual reports x >= y after declassifying both operands.
func (x Uint128) GreaterThanOrEqual(y Uint128) bool { return x.Declassify().Cmp(y.Declassify()) >= 0 }

// LessThan reports x < y after declassifying both operands.
func (x Uint128) LessThan(y Uint128) bool { return x.Declassify().Cmp(y.Declassify()) < 0 }

// LessThanOrEqual reports x <= y after declassifying both operands.
func (x Uint128) LessThanOrEqual(y Uint128) bool { return x.Declassify().Cmp(y.Declassify()) <= 0 }

// EqualMask returns all ones if x == y, else all zeros, without declassifying.
func (x Uint128) EqualMask(y Uint128) Uint128 { return x.CompEq(y) }

// NotEqualMask returns all ones if x != y, else all zeros, without
// declassifying.
func (x Uint128) NotEqualMask(y Uint128) Uint128 { return x.CompNe(y) }

// GreaterThanMask returns all ones if x > y, else all zeros, without
// declassifying.
func (x Uint128) GreaterThanMask(y Uint128) Uint128 { return x.CompGt(y) }

// GreaterThanOrEqualMask returns all ones if x >= y, else all zeros, without
// declassifying.
func (x Uint128) GreaterThanOrEqualMask(y Uint128) Uint128 { return x.CompGte(y) }

// LessThanMask returns all ones if x < y, else all zeros, without
// declassifying.
func (x Uint128) LessThanMask(y Uint128) Uint128 { return x.CompLt(y) }

// LessThanOrEqualMask returns all ones if x <= y, else all zeros, without
// declassifying.
func (x Uint128) LessThanOrEqualMask(y Uint128) Uint128 { return x.CompLte(y) }

// Int128 is a secret signed 128-bit integer.
type Int128 struct {
	v num.Int128
}

// ClassifyInt128 tags a raw 128-bit carrier value as secret.
func ClassifyInt128(v num.Int128) Int128 {
	return Int128{v: v}
}

// Declassify strips the secrecy tag and returns the raw carrier value. See
// Int.Declassify.
func (x Int128) Declassify() num.Int128 {
	return x.v
}

// And returns x & y.
func (x Int128) And(y Int128) Int128 { return Int128{v: x.v.And(y.v)} }

// Or returns x | y.
func (x Int128) Or(y Int128) Int128 { return Int128{v: x.v.Or(y.v)} }

// Xor returns x ^ y.
func (x Int128) Xor(y Int128) Int128 { return Int128{v: x.v.Xor(y.v)} }

// Not returns ^x.
func (x Int128) Not() Int128 { return Int128{v: x.v.Not()} }

// Lsh returns x << n. The shift count is public.
func (x Int128) Lsh(n uint) Int128 { return Int128{v: x.v.Lsh(n)} }

// Rsh returns x >> n (arithmetic shift). The shift count is public.
func (x Int128) Rsh(n uint) Int128 { return Int128{v: x.v.Rsh(n)} }

// SelectInt128 returns a where mask is all ones and b where mask is all
// zeros, using only bitwise operations.
func SelectInt128(mask, a, b Int128) Int128 {
	return mask.And(a).Or(mask.Not().And(b))
}

// CompEq returns the all-ones mask if x == y, all zeros otherwise, without
// branching on the operands.
func (x Int128) CompEq(y Int128) Int128 {
	return Int128{v: mask128(eqBit128(x.v.Uint128(), y.v.Uint128())).Int128()}
}

// CompNe returns the all-ones mask if x != y, all zeros otherwise, without
// branching on the operands.
func (x Int128) CompNe(y Int128) Int128 {
	return Int128{v: mask128(1 ^ eqBit128(x.v.Uint128(), y.v.Uint128())).Int128()}
}

// CompGt returns the all-ones mask if x > y, all zeros otherwise, without
// branching on the operands.
func (x Int128) CompGt(y Int128) Int128 {
	return Int128{v: mask128(ltBit128(orderKey128(y.v), orderKey128(x.v))).Int128()}
}

// CompGte returns the all-ones mask if x >= y, all zeros otherwise, without
// branching on the operands.
func (x Int128) CompGte(y Int128) Int128 {
	return Int128{v: mask128(1 ^ ltBit128(orderKey128(x.v), orderKey128(y.v))).Int128()}
}

// CompLt returns the all-ones mask if x < y, all zeros otherwise, without
// branching on the operands.
func (x Int128) CompLt(y Int128) Int128 {
	return Int128{v: mask128(ltBit128(orderKey128(x.v), orderKey128(y.v))).Int128()}
}

// CompLte returns the all-ones mask if x <= y, all zeros otherwise, without
// branching on the operands.
func (x Int128) CompLte(y Int128) Int128 {
	return Int128{v: mask128(1 ^ ltBit128(orderKey128(y.v), orderKey128(x.v))).Int128()}
}

// NumBits returns 128.
func (Int128) NumBits() uint { return 128 }

// Zero returns 0.
func (Int128) Zero() Int128 { return Int128{} }

// One returns 1.
func (Int128) One() Int128 { return Int128{v: num.Int128{Lo: 1}} }

// Two returns 2.
func (Int128) Two() Int128 { return Int128{v: num.Int128{Lo: 2}} }

// FromLiteral reinterprets the 128-bit literal as signed and classifies it.
func (Int128) FromLiteral(lit num.Uint128) Int128 { return ClassifyInt128(lit.Int128()) }

// MaxVal returns 2^127 - 1.
func (Int128) MaxVal() Int128 {
	return Int128{v: num.Int128{Hi: int64(^uint64(0) >> 1), Lo: ^uint64(0)}}
}

// WrapAdd returns x + y mod 2^128.
func (x Int128) WrapAdd(y Int128) Int128 { return Int128{v: x.v.Add(y.v)} }

// WrapSub returns x - y mod 2^128.
func (x Int128) WrapSub(y Int128) Int128 { return Int128{v: x.v.Sub(y.v)} }

// WrapMul returns x * y mod 2^128.
func (x Int128) WrapMul(y Int128) Int128 { return Int128{v: x.v.Mul(y.v)} }

// WrapDiv is unsupported: there is no constant-time division to delegate to.
func (x Int128) WrapDiv(_ Int128) Int128 {
	panic(num.Unsupported("WrapDiv", "secret.Int128"))
}

// Pow returns x^exp by repeated wrapping multiplication. The exponent MUST be
// public.
func (x Int128) Pow(exp uint) Int128 {
	r := num.Int128{Lo: 1}
	for i := uint(0); i < exp; i++ {
		r = r.Mul(x.v)
	}
	return Int128{v: r}
}

// PowSelf is unsupported.
func (x Int128) PowSelf(_ Int128) Int128 {
	panic(num.Unsupported("PowSelf", "secret.Int128"))
}

// AddMod returns (x + y) % n. NOT CONSTANT TIME: declassifies internally.
func (x Int128) AddMod(y, n Int128) Int128 {
	return ClassifyInt128(x.Declassify().Add(y.Declassify()).Rem(n.Declassify()))
}

// SubMod returns (x - y) % n on the wrapped difference. NOT CONSTANT TIME:
// declassifies internally.
func (x Int128) SubMod(y, n Int128) Int128 {
	return ClassifyInt128(x.Declassify().Sub(y.Declassify()).Rem(n.Declassify()))
}

// MulMod returns (x * y) % n on the wrapped product. NOT CONSTANT TIME:
// declassifies internally.
func (x Int128) MulMod(y, n Int128) Int128 {
	return ClassifyInt128(x.Declassify().Mul(y.Declassify()).Rem(n.Declassify()))
}

// PowMod is unsupported.
func (x Int128) PowMod(_, _ Int128) Int128 {
	panic(num.Unsupported("PowMod", "secret.Int128"))
}

// Div returns x / y. NOT CONSTANT TIME: declassifies both operands.
func (x Int128) Div(y Int128) Int128 {
	return ClassifyInt128(x.Declassify().Quo(y.Declassify()))
}

// Rem returns x % n. NOT CONSTANT TIME: declassifies both operands.
func (x Int128) Rem(n Int128) Int128 {
	return ClassifyInt128(x.Declassify().Rem(n.Declassify()))
}

// Inv is unsupported.
func (x Int128) Inv(_ Int128) Int128 {
	panic(num.Unsupported("Inv", "secret.Int128"))
}

// Abs is unsupported.
func (x Int128) Abs() Int128 {
	panic(num.Unsupported("Abs", "secret.Int128"))
}

// Equal reports x == y after declassifying both operands.
func (x Int128) Equal(y Int128) bool { return x.Declassify().Cmp(y.Declassify()) == 0 }

// NotEqual reports x != y after declassifying both operands.
func (x Int128) NotEqual(y Int128) bool { return x.Declassify().Cmp(y.Declassify()) != 0 }

// GreaterThan reports x > y after declassifying both operands.
func (x Int128) GreaterThan(y Int128) bool { return x.Declassify().Cmp(y.Declassify()) > 0 }

// GreaterThanOrEqual reports x >= y after declassifying both operands.
func (x Int128) GreaterThanOrEqual(y Int128) bool { return x.Declassify().Cmp(y.Declassify()) >= 0 }

// LessThan reports x < y after declassifying both operands.
func (x Int128) LessThan(y Int128) bool { return x.Declassify().Cmp(y.Declassify()) < 0 }

// LessThanOrEqual reports x <= y after declassifying both operands.
func (x Int128) LessThanOrEqual(y Int128) bool { return x.Declassify().Cmp(y.Declassify()) <= 0 }

// EqualMask returns all ones if x == y, else all zeros, without declassifying.
func (x Int128) EqualMask(y Int128) Int128 { return x.CompEq(y) }

// NotEqualMask returns all ones if x != y, else all zeros, without
// declassifying.
func (x Int128) NotEqualMask(y Int128) Int128 { return x.CompNe(y) }

// GreaterThanMask returns all ones if x > y, else all zeros, without
// declassifying.
func (x Int128) GreaterThanMask(y Int128) Int128 { return x.CompGt(y) }

// GreaterThanOrEqualMask returns all ones if x >= y, else all zeros, without
// declassifying.
func (x Int128) GreaterThanOrEqualMask(y Int128) Int128 { return x.CompGte(y) }

// LessThanMask returns all ones if x < y, else all zeros, without
// declassifying.
func (x Int128) LessThanMask(y Int128) Int128 { return x.CompLt(y) }

// LessThanOrEqualMask returns all ones if x <= y, else all zeros, without
// declassifying.
func (x Int128) LessThanOrEqualMask(y Int128) Int128 { return x.CompLte(y) }

// eqBit128 returns 1 if a == b and 0 otherwise, without branching.
func eqBit128(a, b num.Uint128) uint64 {
	d := (a.Hi ^ b.Hi) | (a.Lo ^ b.Lo)
	return 1 &^ ((d | -d) >> 63)
}

// ltBit128 returns 1 if a < b in unsigned order and 0 otherwise, using the
// borrow chain of a full-width subtraction.
func ltBit128(a, b num.Uint128) uint64 {
	_, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	_, borrow = bits.Sub64(a.Hi, b.Hi, borrow)
	return borrow
}

// orderKey128 flips the sign bit so that unsigned order on the result matches
// signed order on the argument.
func orderKey128(v num.Int128) num.Uint128 {
	u := v.Uint128()
	u.Hi ^= 1 << 63
	return u
}

// mask128 broadcasts the low bit to all 128 bits.
func mask128(bit uint64) num.Uint128 {
	m := -(bit & 1)
	return num.Uint128{Hi: m, Lo: m}
}

var (
	_ num.Numeric[Uint128] = Uint128{}
	_ num.Numeric[Int128]  = Int128{}
)
