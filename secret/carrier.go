// Package secret implements the machine-integer contract for secret values:
// integers whose contents must never drive control flow or be observably
// compared without the explicit Declassify step.
//
// The carrier surface (Classify, Declassify, the bitwise operators and the six
// Comp* primitives) is the foundation everything else builds on. The Comp*
// primitives are branchless: they compute the all-one-bits or all-zero mask
// without declassifying and without any operand-dependent branch, and combined
// with Select they are the mechanism for secret-dependent conditional logic.
//
// Not every contract member preserves secrecy. The modular operations, Div,
// Rem and the boolean comparisons declassify internally and are documented as
// such on each method; they exist as auditable escape hatches, not as
// constant-time primitives.
package secret

import (
	"math/bits"

	"github.com/tuneinsight/secint/num"
)

// Int is a secret machine integer over the built-in width T. The wrapped
// value is reachable only through Declassify.
type Int[T num.Machine] struct {
	v T
}

// The ten types of the secret family. Uint128 and Int128 live in their own
// file.
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

// Classify tags a raw machine value as secret.
func Classify[T num.Machine](v T) Int[T] {
	return Int[T]{v: v}
}

// Declassify strips the secrecy tag and returns the raw value. This is the
// explicit, auditable point where the constant-time guarantee is given up;
// every call site is a place where secret data becomes observable.
func (x Int[T]) Declassify() T {
	return x.v
}

// And returns x & y.
func (x Int[T]) And(y Int[T]) Int[T] { return Int[T]{v: x.v & y.v} }

// Or returns x | y.
func (x Int[T]) Or(y Int[T]) Int[T] { return Int[T]{v: x.v | y.v} }

// Xor returns x ^ y.
func (x Int[T]) Xor(y Int[T]) Int[T] { return Int[T]{v: x.v ^ y.v} }

// Not returns ^x.
func (x Int[T]) Not() Int[T] { return Int[T]{v: ^x.v} }

// Lsh returns x << n. The shift count is public.
func (x Int[T]) Lsh(n uint) Int[T] { return Int[T]{v: x.v << n} }

// Rsh returns x >> n (arithmetic on signed widths). The shift count is
// public.
func (x Int[T]) Rsh(n uint) Int[T] { return Int[T]{v: x.v >> n} }

// Select returns a where mask is all ones and b where mask is all zeros,
// using only bitwise operations. The mask must come from one of the Comp*
// primitives or the *Mask comparisons.
func Select[T num.Machine](mask, a, b Int[T]) Int[T] {
	return Int[T]{v: (mask.v & a.v) | (^mask.v & b.v)}
}

// CompEq returns the all-ones mask if x == y, all zeros otherwise, without
// branching on the operands.
func (x Int[T]) CompEq(y Int[T]) Int[T] {
	return Int[T]{v: bitToMask[T](eqBit(x.v, y.v))}
}

// CompNe returns the all-ones mask if x != y, all zeros otherwise, without
// branching on the operands.
func (x Int[T]) CompNe(y Int[T]) Int[T] {
	return Int[T]{v: bitToMask[T](1 ^ eqBit(x.v, y.v))}
}

// CompGt returns the all-ones mask if x > y, all zeros otherwise, without
// branching on the operands.
func (x Int[T]) CompGt(y Int[T]) Int[T] {
	return Int[T]{v: bitToMask[T](ltBit(y.v, x.v))}
}

// CompGte returns the all-ones mask if x >= y, all zeros otherwise, without
// branching on the operands.
func (x Int[T]) CompGte(y Int[T]) Int[T] {
	return Int[T]{v: bitToMask[T](1 ^ ltBit(x.v, y.v))}
}

// CompLt returns the all-ones mask if x < y, all zeros otherwise, without
// branching on the operands.
func (x Int[T]) CompLt(y Int[T]) Int[T] {
	return Int[T]{v: bitToMask[T](ltBit(x.v, y.v))}
}

// CompLte returns the all-ones mask if x <= y, all zeros otherwise, without
// branching on the operands.
func (x Int[T]) CompLte(y Int[T]) Int[T] {
	return Int[T]{v: bitToMask[T](1 ^ ltBit(y.v, x.v))}
}

// eqBit returns 1 if a == b and 0 otherwise. The conversion to uint64 is
// injective per width, so equality of the extended patterns is equality of
// the values.
func eqBit[T num.Machine](a, b T) uint64 {
	d := uint64(a) ^ uint64(b)
	return 1 &^ ((d | -d) >> 63)
}

// ltBit returns 1 if a < b in the type's native order and 0 otherwise.
func ltBit[T num.Machine](a, b T) uint64 {
	_, borrow := bits.Sub64(orderKey(a), orderKey(b), 0)
	return borrow
}

// orderKey maps a value to a uint64 whose unsigned order matches the type's
// native order: zero- or sign-extension preserves order within a family, and
// flipping the top bit turns signed order into unsigned order. Signedness is
// a property of the type, not of the operands, so the branch below does not
// depend on secret data.
func orderKey[T num.Machine](v T) uint64 {
	k := uint64(v)
	if num.IsSigned[T]() {
		k ^= 1 << 63
	}
	return k
}

// bitToMask broadcasts the low bit to the full width.
func bitToMask[T num.Machine](bit uint64) T {
	return T(0) - T(bit&1)
}
