// Package num defines the contract shared by every machine-integer type of the
// library, together with the 128-bit carriers the built-in widths lack.
//
// The contract is split in two layers. Integer is the identity layer: the bit
// width, the canonical small constants and literal construction. Base is the
// operational layer: wrapping arithmetic, modular arithmetic, ordering and
// equality, and the bitmask variants of each predicate. Numeric composes both
// and is the single bound generic algorithm code is expected to use:
//
//	func Algorithm[T num.Numeric[T]](x, y T) T { ... }
//
// Twenty concrete types satisfy Numeric: the public and secret families of the
// packages public and secret, each covering the 8, 16, 32, 64 and 128-bit
// signed and unsigned widths.
package num

// Integer is the identity layer of a machine integer: its width, its
// canonical constants and construction from an unsigned 128-bit literal.
// All methods are callable on the zero value of the type.
type Integer[T any] interface {
	// NumBits returns the exact width of the representation in bits.
	NumBits() uint

	// Zero, One and Two return the canonical small constants of the type.
	Zero() T
	One() T
	Two() T

	// FromLiteral builds a value from an unsigned 128-bit literal, keeping
	// the low NumBits bits and reinterpreting them in the type's native
	// signedness. Out-of-range literals wrap silently: literals are
	// author-controlled constants, not external data.
	FromLiteral(lit Uint128) T
}

// Base is the operational layer of a machine integer.
//
// The contract is deliberately wider than what every type supports: Inv, Abs,
// PowSelf and PowMod have no sound implementation anywhere in the library, and
// WrapDiv has none for the secret family. Calling an unsupported member panics
// with an *UnsupportedOpError rather than returning a plausible-looking value.
type Base[T any] interface {
	// MaxVal returns the largest value the type can represent.
	MaxVal() T

	// Wrapping arithmetic. Overflow and underflow reduce modulo 2^NumBits
	// in two's complement; these never fail.
	WrapAdd(rhs T) T
	WrapSub(rhs T) T
	WrapMul(rhs T) T
	WrapDiv(rhs T) T

	// Pow returns the receiver raised to exp by repeated wrapping
	// multiplication. The exponent is always public, including on secret
	// types: an exponent-dependent trip count is a timing side channel.
	Pow(exp uint) T
	// PowSelf (secret base and secret exponent) is unsupported.
	PowSelf(exp T) T

	// Modular arithmetic: (receiver op rhs) % n on the native, wrapped
	// intermediate value. On secret types these declassify internally and
	// are not constant time; see the secret package.
	AddMod(rhs, n T) T
	SubMod(rhs, n T) T
	MulMod(rhs, n T) T
	// PowMod is unsupported: no modular exponentiation path is specified.
	PowMod(exp, n T) T

	Div(rhs T) T
	Rem(n T) T
	// Inv (modular inverse) is unsupported.
	Inv(n T) T
	// Abs is unsupported.
	Abs() T

	// Boolean comparisons. On secret types both operands are declassified
	// first: these are for use sites that have already accepted a
	// declassification, never for constant-time algorithm branches.
	Equal(other T) bool
	NotEqual(other T) bool
	GreaterThan(other T) bool
	GreaterThanOrEqual(other T) bool
	LessThan(other T) bool
	LessThanOrEqual(other T) bool

	// Bitmask comparisons return the all-one-bits pattern when the
	// predicate holds and the all-zero pattern otherwise, never a third
	// value. On secret types they are branchless and never declassify;
	// combined with masking selection they are the mechanism for
	// secret-dependent conditional logic.
	EqualMask(other T) T
	NotEqualMask(other T) T
	GreaterThanMask(other T) T
	GreaterThanOrEqualMask(other T) T
	LessThanMask(other T) T
	LessThanOrEqualMask(other T) T
}

// Numeric is the capability bound for generic numeric algorithms.
type Numeric[T any] interface {
	Integer[T]
	Base[T]
}
