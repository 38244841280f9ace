package public_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/secint/num"
	"github.com/tuneinsight/secint/public"
	"github.com/tuneinsight/secint/utils/sampling"
)

func testPRNG(t *testing.T, domain string) *sampling.KeyedPRNG {
	prng, err := sampling.NewKeyedPRNG(sampling.KeyFromSeed([]byte(domain)))
	require.NoError(t, err)
	return prng
}

// bigOf widens a machine value to a big.Int, preserving its signed value.
func bigOf[T num.Machine](v T) *big.Int {
	if num.IsSigned[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

// wrapToMachine reduces b modulo 2^NumBits and reinterprets the low bits in
// the signedness of T, the reference for two's-complement wraparound.
func wrapToMachine[T num.Machine](b *big.Int) T {
	mask := new(big.Int).Lsh(big.NewInt(1), num.BitsOf[T]())
	mask.Sub(mask, big.NewInt(1))
	return T(new(big.Int).And(b, mask).Uint64())
}

func requireUnsupported(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
		require.ErrorIs(t, err, num.ErrUnsupported)
	}()
	fn()
}

func TestPublicFamily(t *testing.T) {
	testPublic[uint8](t, "uint8")
	testPublic[uint16](t, "uint16")
	testPublic[uint32](t, "uint32")
	testPublic[uint64](t, "uint64")
	testPublic[int8](t, "int8")
	testPublic[int16](t, "int16")
	testPublic[int32](t, "int32")
	testPublic[int64](t, "int64")
}

func testPublic[T num.Machine](t *testing.T, name string) {
	t.Run(name, func(t *testing.T) {

		prng := testPRNG(t, "public/"+name)
		zero := public.Int[T]{}

		t.Run("Identity", func(t *testing.T) {
			require.Equal(t, num.BitsOf[T](), zero.NumBits())
			require.Equal(t, T(0), zero.Zero().Value())
			require.Equal(t, T(1), zero.One().Value())
			require.Equal(t, T(2), zero.Two().Value())

			if num.IsSigned[T]() {
				require.Equal(t, ^(T(1) << (num.BitsOf[T]() - 1)), zero.MaxVal().Value())
			} else {
				require.Equal(t, ^T(0), zero.MaxVal().Value())
			}
		})

		t.Run("FromLiteral", func(t *testing.T) {
			for i := 0; i < 200; i++ {
				lit := sampling.UniformUint128(prng)
				require.Equal(t, wrapToMachine[T](lit.Big()), zero.FromLiteral(lit).Value())
			}
		})

		t.Run("WrapArithmetic", func(t *testing.T) {
			for i := 0; i < 500; i++ {
				a := sampling.Uniform[T](prng)
				b := sampling.Uniform[T](prng)
				x, y := public.New(a), public.New(b)

				require.Equal(t, wrapToMachine[T](new(big.Int).Add(bigOf(a), bigOf(b))), x.WrapAdd(y).Value())
				require.Equal(t, wrapToMachine[T](new(big.Int).Sub(bigOf(a), bigOf(b))), x.WrapSub(y).Value())
				require.Equal(t, wrapToMachine[T](new(big.Int).Mul(bigOf(a), bigOf(b))), x.WrapMul(y).Value())

				if b != 0 {
					require.Equal(t, a/b, x.WrapDiv(y).Value())
					require.Equal(t, a/b, x.Div(y).Value())
					require.Equal(t, a%b, x.Rem(y).Value())
				}
			}
		})

		t.Run("ModArithmetic", func(t *testing.T) {
			for i := 0; i < 500; i++ {
				a := sampling.Uniform[T](prng)
				b := sampling.Uniform[T](prng)
				n := sampling.Uniform[T](prng)
				if n == 0 {
					continue
				}
				x, y, m := public.New(a), public.New(b), public.New(n)

				require.Equal(t, (a+b)%n, x.AddMod(y, m).Value())
				require.Equal(t, (a-b)%n, x.SubMod(y, m).Value())
				require.Equal(t, (a*b)%n, x.MulMod(y, m).Value())
			}
		})

		t.Run("Pow", func(t *testing.T) {
			for i := 0; i < 100; i++ {
				a := sampling.Uniform[T](prng)
				x := public.New(a)

				require.Equal(t, T(1), x.Pow(0).Value())
				require.Equal(t, a, x.Pow(1).Value())
				require.Equal(t, a*a*a, x.Pow(3).Value())
			}
		})

		t.Run("Comparisons", func(t *testing.T) {
			allOnes := ^T(0)
			for i := 0; i < 500; i++ {
				a := sampling.Uniform[T](prng)
				b := sampling.Uniform[T](prng)
				x, y := public.New(a), public.New(b)

				require.Equal(t, a == b, x.Equal(y))
				require.Equal(t, a != b, x.NotEqual(y))
				require.Equal(t, a > b, x.GreaterThan(y))
				require.Equal(t, a >= b, x.GreaterThanOrEqual(y))
				require.Equal(t, a < b, x.LessThan(y))
				require.Equal(t, a <= b, x.LessThanOrEqual(y))

				preds := []bool{a == b, a != b, a > b, a >= b, a < b, a <= b}
				masks := []T{
					x.EqualMask(y).Value(),
					x.NotEqualMask(y).Value(),
					x.GreaterThanMask(y).Value(),
					x.GreaterThanOrEqualMask(y).Value(),
					x.LessThanMask(y).Value(),
					x.LessThanOrEqualMask(y).Value(),
				}
				want := make([]T, len(preds))
				for j, p := range preds {
					if p {
						want[j] = allOnes
					}
				}
				if diff := cmp.Diff(want, masks); diff != "" {
					t.Fatalf("mask/boolean mismatch for (%v, %v):\n%s", a, b, diff)
				}
			}
		})

		t.Run("Unsupported", func(t *testing.T) {
			x := public.New(sampling.Uniform[T](prng))
			requireUnsupported(t, func() { x.Inv(x) })
			requireUnsupported(t, func() { x.Abs() })
			requireUnsupported(t, func() { x.PowSelf(x) })
			requireUnsupported(t, func() { x.PowMod(x, x) })
		})
	})
}

func TestPublicLiteralAnchors(t *testing.T) {

	lit := func(lo uint64) num.Uint128 { return num.Uint128{Lo: lo} }

	require.Equal(t, uint8(44), public.Uint8{}.FromLiteral(lit(300)).Value())
	require.Equal(t, int8(44), public.Int8{}.FromLiteral(lit(300)).Value())
	require.Equal(t, int8(-56), public.Int8{}.FromLiteral(lit(200)).Value())
	require.Equal(t, uint16(4464), public.Uint16{}.FromLiteral(lit(70000)).Value())

	five := public.Uint8{}.FromLiteral(lit(5))
	three := public.Uint8{}.FromLiteral(lit(3))
	require.Equal(t, uint8(0xFF), five.GreaterThanMask(three).Value())
	require.Equal(t, uint8(0x00), three.GreaterThanMask(five).Value())
}

func TestPublicUint128(t *testing.T) {

	prng := testPRNG(t, "public/uint128")
	zero := public.Uint128{}

	require.Equal(t, uint(128), zero.NumBits())
	require.Equal(t, "1", zero.One().String())
	require.Equal(t, "2", zero.Two().String())
	require.Equal(t, num.NewUint128(^uint64(0), ^uint64(0)), zero.MaxVal().Value())

	allOnes := num.NewUint128(^uint64(0), ^uint64(0))

	for i := 0; i < 300; i++ {
		a := sampling.UniformUint128(prng)
		b := sampling.UniformUint128(prng)
		x, y := public.NewUint128(a), public.NewUint128(b)

		require.Equal(t, a.Add(b), x.WrapAdd(y).Value())
		require.Equal(t, a.Sub(b), x.WrapSub(y).Value())
		require.Equal(t, a.Mul(b), x.WrapMul(y).Value())

		if !b.IsZero() {
			require.Equal(t, a.Quo(b), x.WrapDiv(y).Value())
			require.Equal(t, a.Add(b).Rem(b), x.AddMod(y, y).Value())
		}

		require.Equal(t, a.Cmp(b) == 0, x.Equal(y))
		require.Equal(t, a.Cmp(b) > 0, x.GreaterThan(y))
		require.Equal(t, a.Cmp(b) < 0, x.LessThan(y))

		gt := x.GreaterThanMask(y).Value()
		if a.Cmp(b) > 0 {
			require.Equal(t, allOnes, gt)
		} else {
			require.True(t, gt.IsZero())
		}
	}

	require.Equal(t, "1", zero.One().Pow(100).String())
	x := public.NewUint128(num.Uint128{Lo: 3})
	require.Equal(t, "81", x.Pow(4).String())
	require.Equal(t, "1", x.Pow(0).String())

	requireUnsupported(t, func() { x.Inv(x) })
	requireUnsupported(t, func() { x.Abs() })
	requireUnsupported(t, func() { x.PowSelf(x) })
	requireUnsupported(t, func() { x.PowMod(x, x) })
}

func TestPublicInt128(t *testing.T) {

	prng := testPRNG(t, "public/int128")
	zero := public.Int128{}

	require.Equal(t, uint(128), zero.NumBits())
	require.Equal(t, "170141183460469231731687303715884105727", zero.MaxVal().String())

	minusOne := num.Int128From64(-1)

	for i := 0; i < 300; i++ {
		a := sampling.UniformInt128(prng)
		b := sampling.UniformInt128(prng)
		x, y := public.NewInt128(a), public.NewInt128(b)

		require.Equal(t, a.Add(b), x.WrapAdd(y).Value())
		require.Equal(t, a.Sub(b), x.WrapSub(y).Value())
		require.Equal(t, a.Mul(b), x.WrapMul(y).Value())

		if !b.IsZero() {
			require.Equal(t, a.Quo(b), x.Div(y).Value())
			require.Equal(t, a.Rem(b), x.Rem(y).Value())
		}

		require.Equal(t, a.Cmp(b) < 0, x.LessThan(y))

		lt := x.LessThanMask(y).Value()
		if a.Cmp(b) < 0 {
			require.Equal(t, minusOne, lt)
		} else {
			require.True(t, lt.IsZero())
		}
	}

	// FromLiteral reinterprets the top bit as the sign.
	neg := public.Int128{}.FromLiteral(num.NewUint128(^uint64(0), ^uint64(0)))
	require.Equal(t, "-1", neg.String())

	requireUnsupported(t, func() { zero.One().Inv(zero.One()) })
	requireUnsupported(t, func() { zero.One().Abs() })
}
