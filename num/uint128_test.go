package num_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/secint/num"
	"github.com/tuneinsight/secint/utils/sampling"
)

var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

// wrap128 reduces b to [0, 2^128).
func wrap128(b *big.Int) *big.Int {
	return new(big.Int).Mod(b, two128)
}

// signed128 reduces b to [-2^127, 2^127).
func signed128(b *big.Int) *big.Int {
	m := wrap128(b)
	if m.Bit(127) == 1 {
		m.Sub(m, two128)
	}
	return m
}

func testPRNG(t *testing.T, domain string) *sampling.KeyedPRNG {
	prng, err := sampling.NewKeyedPRNG(sampling.KeyFromSeed([]byte(domain)))
	require.NoError(t, err)
	return prng
}

func TestUint128Arithmetic(t *testing.T) {

	prng := testPRNG(t, "TestUint128Arithmetic")

	for i := 0; i < 1000; i++ {

		x := sampling.UniformUint128(prng)
		y := sampling.UniformUint128(prng)
		xb, yb := x.Big(), y.Big()

		require.Equal(t, wrap128(new(big.Int).Add(xb, yb)).String(), x.Add(y).String())
		require.Equal(t, wrap128(new(big.Int).Sub(xb, yb)).String(), x.Sub(y).String())
		require.Equal(t, wrap128(new(big.Int).Mul(xb, yb)).String(), x.Mul(y).String())

		if !y.IsZero() {
			q, r := x.QuoRem(y)
			qb, rb := new(big.Int).QuoRem(xb, yb, new(big.Int))
			require.Equal(t, qb.String(), q.String())
			require.Equal(t, rb.String(), r.String())
		}
	}
}

func TestUint128QuoRem(t *testing.T) {

	one := num.Uint128{Lo: 1}
	maxVal := num.Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

	t.Run("WideDivisor", func(t *testing.T) {
		// Divisor with a non-zero high limb exercises the normalized
		// estimate-and-correct path.
		x := num.NewUint128(0xFFFF_FFFF_0000_0001, 0x1234_5678_9ABC_DEF0)
		y := num.NewUint128(0x0000_0001_0000_0000, 0xFFFF_FFFF_FFFF_FFFF)
		q, r := x.QuoRem(y)
		qb, rb := new(big.Int).QuoRem(x.Big(), y.Big(), new(big.Int))
		require.Equal(t, qb.String(), q.String())
		require.Equal(t, rb.String(), r.String())
	})

	t.Run("DividendSmaller", func(t *testing.T) {
		q, r := one.QuoRem(maxVal)
		require.True(t, q.IsZero())
		require.Equal(t, one, r)
	})

	t.Run("SelfDivision", func(t *testing.T) {
		q, r := maxVal.QuoRem(maxVal)
		require.Equal(t, one, q)
		require.True(t, r.IsZero())
	})

	t.Run("ByZero", func(t *testing.T) {
		require.Panics(t, func() { one.QuoRem(num.Uint128{}) })
		require.Panics(t, func() { num.Int128From64(1).QuoRem(num.Int128{}) })
	})
}

func TestUint128Shifts(t *testing.T) {

	prng := testPRNG(t, "TestUint128Shifts")

	for _, n := range []uint{0, 1, 7, 63, 64, 65, 100, 127, 128, 200} {
		for i := 0; i < 50; i++ {
			x := sampling.UniformUint128(prng)
			xb := x.Big()

			require.Equal(t, wrap128(new(big.Int).Lsh(xb, n)).String(), x.Lsh(n).String(), "lsh %d", n)
			require.Equal(t, new(big.Int).Rsh(xb, n).String(), x.Rsh(n).String(), "rsh %d", n)

			s := sampling.UniformInt128(prng)
			require.Equal(t, new(big.Int).Rsh(s.Big(), n).String(), s.Rsh(n).String(), "arithmetic rsh %d", n)
		}
	}
}

func TestUint128Bytes(t *testing.T) {

	prng := testPRNG(t, "TestUint128Bytes")

	for i := 0; i < 100; i++ {
		x := sampling.UniformUint128(prng)
		require.Equal(t, x, num.Uint128FromBytes(x.Bytes()))
	}

	b := num.NewUint128(0x100F0E0D0C0B0A09, 0x0807060504030201).Bytes()
	for i := range b {
		require.Equal(t, byte(i+1), b[i])
	}
}

func TestUint128String(t *testing.T) {
	require.Equal(t, "0", num.Uint128{}.String())
	require.Equal(t, "18446744073709551616", num.NewUint128(1, 0).String())
	require.Equal(t, "340282366920938463463374607431768211455",
		num.NewUint128(^uint64(0), ^uint64(0)).String())
	require.Equal(t, "-1", num.Int128From64(-1).String())
	require.Equal(t, "-170141183460469231731687303715884105728",
		num.NewInt128(-1<<63, 0).String())
}

func TestInt128Arithmetic(t *testing.T) {

	prng := testPRNG(t, "TestInt128Arithmetic")

	for i := 0; i < 1000; i++ {

		x := sampling.UniformInt128(prng)
		y := sampling.UniformInt128(prng)
		xb, yb := x.Big(), y.Big()

		require.Equal(t, signed128(new(big.Int).Add(xb, yb)).String(), x.Add(y).String())
		require.Equal(t, signed128(new(big.Int).Sub(xb, yb)).String(), x.Sub(y).String())
		require.Equal(t, signed128(new(big.Int).Mul(xb, yb)).String(), x.Mul(y).String())
		require.Equal(t, signed128(new(big.Int).Neg(xb)).String(), x.Neg().String())

		if !y.IsZero() {
			q, r := x.QuoRem(y)
			qb, rb := new(big.Int).QuoRem(xb, yb, new(big.Int))
			require.Equal(t, qb.String(), q.String())
			require.Equal(t, rb.String(), r.String())
		}

		require.Equal(t, xb.Cmp(yb), x.Cmp(y))
	}
}

func TestInt128From64(t *testing.T) {
	require.Equal(t, "-1", num.Int128From64(-1).String())
	require.Equal(t, "-9223372036854775808", num.Int128From64(-1<<63).String())
	require.Equal(t, "9223372036854775807", num.Int128From64(1<<63-1).String())
	require.True(t, num.Int128From64(-5).IsNeg())
	require.False(t, num.Int128From64(5).IsNeg())
}

func TestInt128MinByMinusOne(t *testing.T) {
	// The single signed overflow case wraps instead of trapping.
	min := num.NewInt128(-1<<63, 0)
	q, r := min.QuoRem(num.Int128From64(-1))
	require.Equal(t, min, q)
	require.True(t, r.IsZero())
}
