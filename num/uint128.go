package num

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer with two's-complement wrapping
// arithmetic, stored as two 64-bit limbs.
type Uint128 struct {
	Hi, Lo uint64
}

// NewUint128 returns hi*2^64 + lo.
func NewUint128(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// Uint128From64 returns v zero-extended to 128 bits.
func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Uint128FromBytes decodes a little-endian 16-byte encoding, the inverse of
// Bytes.
func Uint128FromBytes(b [16]byte) Uint128 {
	return Uint128{
		Lo: binary.LittleEndian.Uint64(b[:8]),
		Hi: binary.LittleEndian.Uint64(b[8:]),
	}
}

// Bytes returns the little-endian 16-byte encoding of x.
func (x Uint128) Bytes() (b [16]byte) {
	binary.LittleEndian.PutUint64(b[:8], x.Lo)
	binary.LittleEndian.PutUint64(b[8:], x.Hi)
	return
}

// IsZero reports whether x == 0.
func (x Uint128) IsZero() bool {
	return x.Hi|x.Lo == 0
}

// Add returns x + y mod 2^128.
func (x Uint128) Add(y Uint128) Uint128 {
	lo, c := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, c)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub returns x - y mod 2^128.
func (x Uint128) Sub(y Uint128) Uint128 {
	lo, b := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, b)
	return Uint128{Hi: hi, Lo: lo}
}

// Mul returns x * y mod 2^128.
func (x Uint128) Mul(y Uint128) Uint128 {
	hi, lo := bits.Mul64(x.Lo, y.Lo)
	hi += x.Hi*y.Lo + x.Lo*y.Hi
	return Uint128{Hi: hi, Lo: lo}
}

func (x Uint128) mul64(y uint64) Uint128 {
	hi, lo := bits.Mul64(x.Lo, y)
	return Uint128{Hi: hi + x.Hi*y, Lo: lo}
}

// QuoRem returns the quotient and remainder of x / y. It panics when y is
// zero, matching the built-in integer types.
func (x Uint128) QuoRem(y Uint128) (q, r Uint128) {
	if y.IsZero() {
		panic("secint: division by zero")
	}
	if y.Hi == 0 {
		var r64 uint64
		q, r64 = x.quoRem64(y.Lo)
		r = Uint128{Lo: r64}
		return
	}
	// Normalize the divisor so its top bit is set, estimate a one-limb
	// quotient with the hardware 128/64 division, then correct by at most
	// one (Knuth, TAoCP vol. 2, 4.3.1).
	n := uint(bits.LeadingZeros64(y.Hi))
	yn := y.Lsh(n)
	xn := x.Rsh(1)
	tq, _ := bits.Div64(xn.Hi, xn.Lo, yn.Hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}
	q = Uint128{Lo: tq}
	r = x.Sub(y.mul64(tq))
	if r.Cmp(y) >= 0 {
		q = q.Add(Uint128{Lo: 1})
		r = r.Sub(y)
	}
	return
}

func (x Uint128) quoRem64(y uint64) (q Uint128, r uint64) {
	if x.Hi < y {
		q.Lo, r = bits.Div64(x.Hi, x.Lo, y)
		return
	}
	q.Hi, r = x.Hi/y, x.Hi%y
	q.Lo, r = bits.Div64(r, x.Lo, y)
	return
}

// Quo returns x / y.
func (x Uint128) Quo(y Uint128) Uint128 {
	q, _ := x.QuoRem(y)
	return q
}

// Rem returns x % y.
func (x Uint128) Rem(y Uint128) Uint128 {
	_, r := x.QuoRem(y)
	return r
}

// Cmp returns 1 if x > y, 0 if x == y and -1 if x < y.
func (x Uint128) Cmp(y Uint128) int {
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
func (x Uint128) And(y Uint128) Uint128 {
	return Uint128{Hi: x.Hi & y.Hi, Lo: x.Lo & y.Lo}
}

// Or returns x | y.
func (x Uint128) Or(y Uint128) Uint128 {
	return Uint128{Hi: x.Hi | y.Hi, Lo: x.Lo | y.Lo}
}

// Xor returns x ^ y.
func (x Uint128) Xor(y Uint128) Uint128 {
	return Uint128{Hi: x.Hi ^ y.Hi, Lo: x.Lo ^ y.Lo}
}

// Not returns ^x.
func (x Uint128) Not() Uint128 {
	return Uint128{Hi: ^x.Hi, Lo: ^x.Lo}
}

// Lsh returns x << n.
func (x Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: x.Lo << (n - 64)}
	case n == 0:
		return x
	default:
		return Uint128{Hi: x.Hi<<n | x.Lo>>(64-n), Lo: x.Lo << n}
	}
}

// Rsh returns x >> n (logical shift).
func (x Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: x.Hi >> (n - 64)}
	case n == 0:
		return x
	default:
		return Uint128{Hi: x.Hi >> n, Lo: x.Lo>>n | x.Hi<<(64-n)}
	}
}

// Int128 reinterprets the bits of x as a signed 128-bit integer.
func (x Uint128) Int128() Int128 {
	return Int128{Hi: int64(x.Hi), Lo: x.Lo}
}

// Big returns x as a big.Int.
func (x Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(x.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(x.Lo))
}

func (x Uint128) String() string {
	return x.Big().String()
}
