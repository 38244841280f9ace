package public

import "github.com/tuneinsight/secint/num"

// Uint128 is a public unsigned 128-bit integer.
type Uint128 struct {
	v num.Uint128
}

// NewUint128 wraps a raw 128-bit carrier value as a public integer.
func NewUint128(v num.Uint128) Uint128 {
	return Uint128{v: v}
}

// Value returns the raw carrier value.
func (x Uint128) Value() num.Uint128 { return x.v }

func (x Uint128) String() string { return x.v.String() }

// NumBits returns 128.
func (Uint128) NumBits() uint { return 128 }

// Zero returns 0.
func (Uint128) Zero() Uint128 { return Uint128{} }

// One returns 1.
func (Uint128) One() Uint128 { return Uint128{v: num.Uint128{Lo: 1}} }

// Two returns 2.
func (Uint128) Two() Uint128 { return Uint128{v: num.Uint128{Lo: 2}} }

// FromLiteral wraps the full 128-bit literal.
func (Uint128) FromLiteral(lit num.Uint128) Uint128 { return Uint128{v: lit} }

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

// WrapDiv returns x / y. Division by zero panics.
func (x Uint128) WrapDiv(y Uint128) Uint128 { return Uint128{v: x.v.Quo(y.v)} }

// Pow returns x^exp by repeated wrapping multiplication.
func (x Uint128) Pow(exp uint) Uint128 {
	r := num.Uint128{Lo: 1}
	for i := uint(0); i < exp; i++ {
		r = r.Mul(x.v)
	}
	return Uint128{v: r}
}

// PowSelf is unsupported.
func (x Uint128) PowSelf(_ Uint128) Uint128 {
	panic(num.Unsupported("PowSelf", "public.Uint128"))
}

// AddMod returns (x + y) % n, the sum wrapping at 128 bits.
func (x Uint128) AddMod(y, n Uint128) Uint128 { return Uint128{v: x.v.Add(y.v).Rem(n.v)} }

// SubMod returns (x - y) % n, the difference wrapping at 128 bits.
func (x Uint128) SubMod(y, n Uint128) Uint128 { return Uint128{v: x.v.Sub(y.v).Rem(n.v)} }

// MulMod returns (x * y) % n, the product wrapping at 128 bits.
func (x Uint128) MulMod(y, n Uint128) Uint128 { return Uint128{v: x.v.Mul(y.v).Rem(n.v)} }

// PowMod is unsupported.
func (x Uint128) PowMod(_, _ Uint128) Uint128 {
	panic(num.Unsupported("PowMod", "public.Uint128"))
}

// Div returns x / y.
func (x Uint128) Div(y Uint128) Uint128 { return Uint128{v: x.v.Quo(y.v)} }

// Rem returns x % n.
func (x Uint128) Rem(n Uint128) Uint128 { return Uint128{v: x.v.Rem(n.v)} }

// Inv is unsupported.
func (x Uint128) Inv(_ Uint128) Uint128 {
	panic(num.Unsupported("Inv", "public.Uint128"))
}

// Abs is unsupported.
func (x Uint128) Abs() Uint128 {
	panic(num.Unsupported("Abs", "public.Uint128"))
}

// Equal reports x == y.
func (x Uint128) Equal(y Uint128) bool { return x.v.Cmp(y.v) == 0 }

// NotEqual reports x != y.
func (x Uint128) NotEqual(y Uint128) bool { return x.v.Cmp(y.v) != 0 }

// GreaterThan reports x > y.
func (x Uint128) GreaterThan(y Uint128) bool { return x.v.Cmp(y.v) > 0 }

// GreaterThanOrEqual reports x >= y.
func (x Uint128) GreaterThanOrEqual(y Uint128) bool { return x.v.Cmp(y.v) >= 0 }

// LessThan reports x < y.
func (x Uint128) LessThan(y Uint128) bool { return x.v.Cmp(y.v) < 0 }

// LessThanOrEqual reports x <= y.
func (x Uint128) LessThanOrEqual(y Uint128) bool { return x.v.Cmp(y.v) <= 0 }

// EqualMask returns all ones if x == y, else all zeros.
func (x Uint128) EqualMask(y Uint128) Uint128 { return maskU128(x.v.Cmp(y.v) == 0) }

// NotEqualMask returns all ones if x != y, else all zeros.
func (x Uint128) NotEqualMask(y Uint128) Uint128 { return maskU128(x.v.Cmp(y.v) != 0) }

// GreaterThanMask returns all ones if x > y, else all zeros.
func (x Uint128) GreaterThanMask(y Uint128) Uint128 { return maskU128(x.v.Cmp(y.v) > 0) }

// GreaterThanOrEqualMask returns all ones if x >= y, else all zeros.
func (x Uint128) GreaterThanOrEqualMask(y Uint128) Uint128 { return maskU128(x.v.Cmp(y.v) >= 0) }

// LessThanMask returns all ones if x < y, else all zeros.
func (x Uint128) LessThanMask(y Uint128) Uint128 { return maskU128(x.v.Cmp(y.v) < 0) }

// LessThanOrEqualMask returns all ones if x <= y, else all zeros.
func (x Uint128) LessThanOrEqualMask(y Uint128) Uint128 { return maskU128(x.v.Cmp(y.v) <= 0) }

func maskU128(cond bool) Uint128 {
	if cond {
		return Uint128{v: num.Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}}
	}
	return Uint128{}
}

// Int128 is a public signed 128-bit integer.
type Int128 struct {
	v num.Int128
}

// NewInt128 wraps a raw 128-bit carrier value as a public integer.
func NewInt128(v num.Int128) Int128 {
	return Int128{v: v}
}

// Value returns the raw carrier value.
func (x Int128) Value() num.Int128 { return x.v }

func (x Int128) String() string { return x.v.String() }

// NumBits returns 128.
func (Int128) NumBits() uint { return 128 }

// Zero returns 0.
func (Int128) Zero() Int128 { return Int128{} }

// One returns 1.
func (Int128) One() Int128 { return Int128{v: num.Int128{Lo: 1}} }

// Two returns 2.
func (Int128) Two() Int128 { return Int128{v: num.Int128{Lo: 2}} }

// FromLiteral reinterprets the 128-bit literal as signed.
func (Int128) FromLiteral(lit num.Uint128) Int128 { return Int128{v: lit.Int128()} }

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

// WrapDiv returns x / y, wrapping on MinInt128 / -1. Division by zero panics.
func (x Int128) WrapDiv(y Int128) Int128 { return Int128{v: x.v.Quo(y.v)} }

// Pow returns x^exp by repeated wrapping multiplication.
func (x Int128) Pow(exp uint) Int128 {
	r := num.Int128{Lo: 1}
	for i := uint(0); i < exp; i++ {
		r = r.Mul(x.v)
	}
	return Int128{v: r}
}

// PowSelf is unsupported.
func (x Int128) PowSelf(_ Int128) Int128 {
	panic(num.Unsupported("PowSelf", "public.Int128"))
}

// AddMod returns (x + y) % n, the sum wrapping at 128 bits.
func (x Int128) AddMod(y, n Int128) Int128 { return Int128{v: x.v.Add(y.v).Rem(n.v)} }

// SubMod returns (x - y) % n, the difference wrapping at 128 bits.
func (x Int128) SubMod(y, n Int128) Int128 { return Int128{v: x.v.Sub(y.v).Rem(n.v)} }

// MulMod returns (x * y) % n, the product wrapping at 128 bits.
func (x Int128) MulMod(y, n Int128) Int128 { return Int128{v: x.v.Mul(y.v).Rem(n.v)} }

// PowMod is unsupported.
func (x Int128) PowMod(_, _ Int128) Int128 {
	panic(num.Unsupported("PowMod", "public.Int128"))
}

// Div returns x / y.
func (x Int128) Div(y Int128) Int128 { return Int128{v: x.v.Quo(y.v)} }

// Rem returns x % n.
func (x Int128) Rem(n Int128) Int128 { return Int128{v: x.v.Rem(n.v)} }

// Inv is unsupported.
func (x Int128) Inv(_ Int128) Int128 {
	panic(num.Unsupported("Inv", "public.Int128"))
}

// Abs is unsupported.
func (x Int128) Abs() Int128 {
	panic(num.Unsupported("Abs", "public.Int128"))
}

// Equal reports x == y.
func (x Int128) Equal(y Int128) bool { return x.v.Cmp(y.v) == 0 }

// NotEqual reports x != y.
func (x Int128) NotEqual(y Int128) bool { return x.v.Cmp(y.v) != 0 }

// GreaterThan reports x > y.
func (x Int128) GreaterThan(y Int128) bool { return x.v.Cmp(y.v) > 0 }

// GreaterThanOrEqual reports x >= y.
func (x Int128) GreaterThanOrEqual(y Int128) bool { return x.v.Cmp(y.v) >= 0 }

// LessThan reports x < y.
func (x Int128) LessThan(y Int128) bool { return x.v.Cmp(y.v) < 0 }

// LessThanOrEqual reports x <= y.
func (x Int128) LessThanOrEqual(y Int128) bool { return x.v.Cmp(y.v) <= 0 }

// EqualMask returns all ones if x == y, else all zeros.
func (x Int128) EqualMask(y Int128) Int128 { return maskI128(x.v.Cmp(y.v) == 0) }

// NotEqualMask returns all ones if x != y, else all zeros.
func (x Int128) NotEqualMask(y Int128) Int128 { return maskI128(x.v.Cmp(y.v) != 0) }

// GreaterThanMask returns all ones if x > y, else all zeros.
func (x Int128) GreaterThanMask(y Int128) Int128 { return maskI128(x.v.Cmp(y.v) > 0) }

// GreaterThanOrEqualMask returns all ones if x >= y, else all zeros.
func (x Int128) GreaterThanOrEqualMask(y Int128) Int128 { return maskI128(x.v.Cmp(y.v) >= 0) }

// LessThanMask returns all ones if x < y, else all zeros.
func (x Int128) LessThanMask(y Int128) Int128 { return maskI128(x.v.Cmp(y.v) < 0) }

// LessThanOrEqualMask returns all ones if x <= y, else all zeros.
func (x Int128) LessThanOrEqualMask(y Int128) Int128 { return maskI128(x.v.Cmp(y.v) <= 0) }

func maskI128(cond bool) Int128 {
	if cond {
		return Int128{v: num.Int128{Hi: -1, Lo: ^uint64(0)}}
	}
	return Int128{}
}

var (
	_ num.Numeric[Uint128] = Uint128{}
	_ num.Numeric[Int128]  = Int128{}
)
