// Package sampling implements deterministic and secure sampling of random
// bytes and machine integers, used by the randomized property tests of the
// integer families.
package sampling

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"

	"github.com/tuneinsight/secint/num"
)

// Uniform returns a uniformly distributed integer of type T read from prng.
// Widths below 64 bits keep the low bits of a 64-bit draw.
func Uniform[T constraints.Integer](prng PRNG) T {
	var b [8]byte
	if _, err := prng.Read(b[:]); err != nil {
		panic(err)
	}
	return T(binary.LittleEndian.Uint64(b[:]))
}

// UniformUint128 returns a uniformly distributed 128-bit value read from
// prng.
func UniformUint128(prng PRNG) num.Uint128 {
	var b [16]byte
	if _, err := prng.Read(b[:]); err != nil {
		panic(err)
	}
	return num.Uint128FromBytes(b)
}

// UniformInt128 returns a uniformly distributed signed 128-bit value read
// from prng.
func UniformInt128(prng PRNG) num.Int128 {
	return UniformUint128(prng).Int128()
}
