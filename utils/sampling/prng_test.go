package sampling_test

import (
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/secint/utils/sampling"
)

func Test_PRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	t.Run("Deterministic", func(t *testing.T) {

		Ha, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		Hb, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			Hb.Read(sum1)
		}

		Hb.Reset()

		Ha.Read(sum0)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
	})

	t.Run("Key", func(t *testing.T) {

		Ha, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		sum0 := make([]byte, 64)
		Ha.Read(sum0)

		Hb, err := sampling.NewKeyedPRNG(Ha.Key())
		require.NoError(t, err)

		sum1 := make([]byte, 64)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
	})

	t.Run("ThreadSafe", func(t *testing.T) {

		prng, err := sampling.NewPRNG()
		require.NoError(t, err)

		sum := make([]byte, 64)
		n, err := prng.Read(sum)
		require.NoError(t, err)
		require.Equal(t, len(sum), n)
	})

	t.Run("KeyFromSeed", func(t *testing.T) {

		k0 := sampling.KeyFromSeed([]byte("uniform machine integers"))
		k1 := sampling.KeyFromSeed([]byte("uniform machine integers"))
		k2 := sampling.KeyFromSeed([]byte("something else"))

		require.Len(t, k0, 32)
		require.Equal(t, k0, k1)
		require.NotEqual(t, k0, k2)
	})
}

func Test_Uniform(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG(sampling.KeyFromSeed([]byte("Test_Uniform")))
	require.NoError(t, err)

	t.Run("Determinism", func(t *testing.T) {

		a, err := sampling.NewKeyedPRNG([]byte{1, 2, 3})
		require.NoError(t, err)
		b, err := sampling.NewKeyedPRNG([]byte{1, 2, 3})
		require.NoError(t, err)

		for i := 0; i < 16; i++ {
			require.Equal(t, sampling.Uniform[uint64](a), sampling.Uniform[uint64](b))
		}
		require.Equal(t, sampling.UniformUint128(a), sampling.UniformUint128(b))
		require.Equal(t, sampling.UniformInt128(a), sampling.UniformInt128(b))
	})

	// Coarse distribution sanity check: the empirical mean of 64k uniform
	// bytes must sit near 127.5. A broken sampler (stuck bytes, short
	// reads) lands far outside the bound.
	t.Run("ByteMean", func(t *testing.T) {

		samples := make([]float64, 1<<16)
		for i := range samples {
			samples[i] = float64(sampling.Uniform[uint8](prng))
		}

		mean, err := stats.Mean(samples)
		require.NoError(t, err)
		require.InDelta(t, 127.5, mean, 2.0)
	})
}
