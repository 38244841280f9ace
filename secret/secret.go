package secret

import (
	"fmt"

	"github.com/tuneinsight/secint/num"
)

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
// signedness, and classifies the result. The literal itself is
// specification-time data, so construction does not leak.
func (Int[T]) FromLiteral(lit num.Uint128) Int[T] {
	return Classify(T(lit.Lo))
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

// WrapDiv is unsupported: there is no constant-time division to delegate to,
// and a declassifying stand-in here would mask a real gap in the secrecy
// contract.
func (x Int[T]) WrapDiv(_ Int[T]) Int[T] {
	panic(num.Unsupported("WrapDiv", typeName[T]()))
}

// Pow returns x^exp by repeated wrapping multiplication. The exponent MUST
// be public: the trip count of the loop is exp, and a secret exponent would
// leak through timing.
func (x Int[T]) Pow(exp uint) Int[T] {
	r := T(1)
	for i := uint(0); i < exp; i++ {
		r *= x.v
	}
	return Int[T]{v: r}
}

// PowSelf (secret base and secret exponent) is unsupported: no constant-time
// exponentiation ladder is provided here.
func (x Int[T]) PowSelf(_ Int[T]) Int[T] {
	panic(num.Unsupported("PowSelf", typeName[T]()))
}

// AddMod returns (x + y) % n. NOT CONSTANT TIME: the operands and the modulus
// are declassified, reduced in the clear and re-classified.
func (x Int[T]) AddMod(y, n Int[T]) Int[T] {
	return Classify((x.Declassify() + y.Declassify()) % n.Declassify())
}

// SubMod returns (x - y) % n on the wrapped difference. NOT CONSTANT TIME:
// the operands and the modulus are declassified, reduced in the clear and
// re-classified.
func (x Int[T]) SubMod(y, n Int[T]) Int[T] {
	return Classify((x.Declassify() - y.Declassify()) % n.Declassify())
}

// MulMod returns (x * y) % n on the wrapped product. NOT CONSTANT TIME: the
// operands and the modulus are declassified, reduced in the clear and
// re-classified.
func (x Int[T]) MulMod(y, n Int[T]) Int[T] {
	return Classify((x.Declassify() * y.Declassify()) % n.Declassify())
}

// PowMod is unsupported.
func (x Int[T]) PowMod(_, _ Int[T]) Int[T] {
	panic(num.Unsupported("PowMod", typeName[T]()))
}

// Div returns x / y. NOT CONSTANT TIME: both operands are declassified.
func (x Int[T]) Div(y Int[T]) Int[T] {
	return Classify(x.Declassify() / y.Declassify())
}

// Rem returns x % n. NOT CONSTANT TIME: both operands are declassified.
func (x Int[T]) Rem(n Int[T]) Int[T] {
	return Classify(x.Declassify() % n.Declassify())
}

// Inv is unsupported.
func (x Int[T]) Inv(_ Int[T]) Int[T] {
	panic(num.Unsupported("Inv", typeName[T]()))
}

// Abs is unsupported.
func (x Int[T]) Abs() Int[T] {
	panic(num.Unsupported("Abs", typeName[T]()))
}

// Boolean comparisons. Each declassifies both operands and compares in the
// clear: they are for use sites that have already accepted a
// declassification, such as specification-level assertions. Algorithm
// branches that must stay constant time use the Comp*/Mask family instead.

// Equal reports x == y after declassifying both operands.
func (x Int[T]) Equal(y Int[T]) bool { return x.Declassify() == y.Declassify() }

// NotEqual reports x != y after declassifying both operands.
func (x Int[T]) NotEqual(y Int[T]) bool { return x.Declassify() != y.Declassify() }

// GreaterThan reports x > y after declassifying both operands.
func (x Int[T]) GreaterThan(y Int[T]) bool { return x.Declassify() > y.Declassify() }

// GreaterThanOrEqual reports x >= y after declassifying both operands.
func (x Int[T]) GreaterThanOrEqual(y Int[T]) bool { return x.Declassify() >= y.Declassify() }

// LessThan reports x < y after declassifying both operands.
func (x Int[T]) LessThan(y Int[T]) bool { return x.Declassify() < y.Declassify() }

// LessThanOrEqual reports x <= y after declassifying both operands.
func (x Int[T]) LessThanOrEqual(y Int[T]) bool { return x.Declassify() <= y.Declassify() }

// Bitmask comparisons delegate to the branchless carrier primitives and
// uphold the constant-time contract.

// EqualMask returns all ones if x == y, else all zeros, without declassifying.
func (x Int[T]) EqualMask(y Int[T]) Int[T] { return x.CompEq(y) }

// NotEqualMask returns all ones if x != y, else all zeros, without
// declassifying.
func (x Int[T]) NotEqualMask(y Int[T]) Int[T] { return x.CompNe(y) }

// GreaterThanMask returns all ones if x > y, else all zeros, without
// declassifying.
func (x Int[T]) GreaterThanMask(y Int[T]) Int[T] { return x.CompGt(y) }

// GreaterThanOrEqualMask returns all ones if x >= y, else all zeros, without
// declassifying.
func (x Int[T]) GreaterThanOrEqualMask(y Int[T]) Int[T] { return x.CompGte(y) }

// LessThanMask returns all ones if x < y, else all zeros, without
// declassifying.
func (x Int[T]) LessThanMask(y Int[T]) Int[T] { return x.CompLt(y) }

// LessThanOrEqualMask returns all ones if x <= y, else all zeros, without
// declassifying.
func (x Int[T]) LessThanOrEqualMask(y Int[T]) Int[T] { return x.CompLte(y) }

func typeName[T num.Machine]() string {
	var t T
	return fmt.Sprintf("secret.Int[%T]", t)
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
