// Package public implements the machine-integer contract for public values:
// integers whose contents may freely drive comparisons and control flow. It is
// the family used to check a generic algorithm against plain integers before
// instantiating it with the secret family.
//
// The eight widths up to 64 bits share the single generic implementation
// Int[T]; the 128-bit widths are built on the carriers of the num package.
package public

import (
	"fmt"

	"github.com/tuneinsight/secint/num"
)

// Int is a public machine integer over the built-in width T.
type Int[T num.Machine] struct {
	v T
}

// The ten types of the public family. Uint128 and Int128 live in their own
// files.
type (
	Uint8  = Int[uint8]
	Uint16 = Int[uint16]
	Uint32 = Int[uint32]
	Uint64 = Int[uint64]
	Int8   = Int[int8]
	Int16  = Int[int16]
	Int32  = Int[int32]
	Int64  = Int[int64]
)

// New wraps a raw machine value as a public integer.
func New[T num.Machine](v T) Int[T] {
	return Int[T]{v: v}
}

// Value returns the raw machine value.
func (x Int[T]) Value() T {
	return x.v
}

func (x Int[T]) String() string {
	return fmt.Sprintf("%d", x.v)
}

// NumBits returns the width of the type in bits.
func (Int[T]) NumBits() uint {
	return num.BitsOf[T]()
}

// Zero returns 0.
func (Int[T]) Zero() Int[T] { return Int[T]{} }

// One returns 1.
func (Int[T]) One() Int[T] { return Int[T]{v: 1} }

// Two returns 2.
func (Int[T]) Two() Int[T] { return Int[T]{v: 2} }

// FromLiteral keeps the low NumBits bits of lit, reinterpreted in the type's
// signedness. Out-of-range literals wrap silently.
func (Int[T]) FromLiteral(lit num.Uint128) Int[T] {
	return Int[T]{v: T(lit.Lo)}
}

// MaxVal returns the largest representable value.
func (Int[T]) MaxVal() Int[T] {
	if num.IsSigned[T]() {
		return Int[T]{v: ^(T(1) << (num.BitsOf[T]() - 1))}
	}
	return Int[T]{v: ^T(0)}
}

// WrapAdd returns x + y mod 2^NumBits.
func (x Int[T]) WrapAdd(y Int[T]) Int[T] { return Int[T]{v: x.v + y.v} }

// WrapSub returns x - y mod 2^NumBits.
func (x Int[T]) WrapSub(y Int[T]) Int[T] { return Int[T]{v: x.v - y.v} }

// WrapMul returns x * y mod 2^NumBits.
func (x Int[T]) WrapMul(y Int[T]) Int[T] { return Int[T]{v: x.v * y.v} }

// WrapDiv returns x / y. The built-in operator already wraps the one signed
// overflow case (the minimum value divided by -1). Division by zero panics.
func (x Int[T]) WrapDiv(y Int[T]) Int[T] {
	return Int[T]{v: x.v / y.v}
}

// Pow returns x^exp by repeated wrapping multiplication.
func (x Int[T]) Pow(exp uint) Int[T] {
	r := T(1)
	for i := uint(0); i < exp; i++ {
		r *= x.v
	}
	return Int[T]{v: r}
}

// PowSelf is unsupported.
func (x Int[T]) PowSelf(_ Int[T]) Int[T] {
	panic(num.Unsupported("PowSelf", typeName[T]()))
}

// AddMod returns (x + y) % n, the sum wrapping at the type width.
func (x Int[T]) AddMod(y, n Int[T]) Int[T] { return Int[T]{v: (x.v + y.v) % n.v} }

// SubMod returns (x - y) % n, the difference wrapping at the type width.
func (x Int[T]) SubMod(y, n Int[T]) Int[T] { return Int[T]{v: (x.v - y.v) % n.v} }

// MulMod returns (x * y) % n, the product wrapping at the type width.
func (x Int[T]) MulMod(y, n Int[T]) Int[T] { return Int[T]{v: (x.v * y.v) % n.v} }

// PowMod is unsupported.
func (x Int[T]) PowMod(_, _ Int[T]) Int[T] {
	panic(num.Unsupported("PowMod", typeName[T]()))
}

// Div returns x / y.
func (x Int[T]) Div(y Int[T]) Int[T] { return Int[T]{v: x.v / y.v} }

// Rem returns x % n.
func (x Int[T]) Rem(n Int[T]) Int[T] { return Int[T]{v: x.v % n.v} }

// Inv is unsupported.
func (x Int[T]) Inv(_ Int[T]) Int[T] {
	panic(num.Unsupported("Inv", typeName[T]()))
}

// Abs is unsupported.
func (x Int[T]) Abs() Int[T] {
	panic(num.Unsupported("Abs", typeName[T]()))
}

// Equal reports x == y.
func (x Int[T]) Equal(y Int[T]) bool { return x.v == y.v }

// NotEqual reports x != y.
func (x Int[T]) NotEqual(y Int[T]) bool { return x.v != y.v }

// GreaterThan reports x > y.
func (x Int[T]) GreaterThan(y Int[T]) bool { return x.v > y.v }

// GreaterThanOrEqual reports x >= y.
func (x Int[T]) GreaterThanOrEqual(y Int[T]) bool { return x.v >= y.v }

// LessThan reports x < y.
func (x Int[T]) LessThan(y Int[T]) bool { return x.v < y.v }

// LessThanOrEqual reports x <= y.
func (x Int[T]) LessThanOrEqual(y Int[T]) bool { return x.v <= y.v }

// Bitmask comparisons. Branching on public data is harmless, so these are
// plain branches picking between the all-one-bits and all-zero patterns.

// EqualMask returns all ones if x == y, else all zeros.
func (x Int[T]) EqualMask(y Int[T]) Int[T] { return boolMask[T](x.v == y.v) }

// NotEqualMask returns all ones if x != y, else all zeros.
func (x Int[T]) NotEqualMask(y Int[T]) Int[T] { return boolMask[T](x.v != y.v) }

// GreaterThanMask returns all ones if x > y, else all zeros.
func (x Int[T]) GreaterThanMask(y Int[T]) Int[T] { return boolMask[T](x.v > y.v) }

// GreaterThanOrEqualMask returns all ones if x >= y, else all zeros.
func (x Int[T]) GreaterThanOrEqualMask(y Int[T]) Int[T] { return boolMask[T](x.v >= y.v) }

// LessThanMask returns all ones if x < y, else all zeros.
func (x Int[T]) LessThanMask(y Int[T]) Int[T] { return boolMask[T](x.v < y.v) }

// LessThanOrEqualMask returns all ones if x <= y, else all zeros.
func (x Int[T]) LessThanOrEqualMask(y Int[T]) Int[T] { return boolMask[T](x.v <= y.v) }

func boolMask[T num.Machine](cond bool) Int[T] {
	if cond {
		return Int[T]{v: ^T(0)}
	}
	return Int[T]{}
}

func typeName[T num.Machine]() string {
	var t T
	return fmt.Sprintf("public.Int[%T]", t)
}

var (
	_ num.Numeric[Uint8]  = Uint8{}
	_ num.Numeric[Uint16] = Uint16{}
	_ num.Numeric[Uint32] = Uint32{}
	_ num.Numeric[Uint64] = Uint64{}
	_ num.Numeric[Int8]   = Int8{}
	_ num.Numeric[Int16]  = Int16{}
	_ num.Numeric[Int32]  = Int32{}
	_ num.Numeric[Int64]  = Int64{}
)
