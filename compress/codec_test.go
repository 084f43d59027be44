package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripAllCodecs(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeated: the quick brown fox jumps over the lazy dog")

	for _, algo := range []Algorithm{None, Zstd, S2, LZ4, BZip2} {
		t.Run(algo.String(), func(t *testing.T) {
			codec, err := GetCodec(algo)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)

			assert.Equal(t, data, decompressed)
		})
	}
}

func TestGetCodecUnknownAlgorithm(t *testing.T) {
	_, err := GetCodec(Brotli)
	require.Error(t, err)
}

func TestEmptyInputRoundTrip(t *testing.T) {
	for _, algo := range []Algorithm{Zstd, S2, LZ4, BZip2} {
		codec, err := GetCodec(algo)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err)
		assert.Empty(t, decompressed)
	}
}

func TestNoOpCodecIsIdentity(t *testing.T) {
	data := []byte("unchanged")
	codec := NoOpCodec{}

	compressed, _ := codec.Compress(data)
	assert.Equal(t, data, compressed)

	decompressed, _ := codec.Decompress(compressed)
	assert.Equal(t, data, decompressed)
}

func TestAlgorithmString(t *testing.T) {
	assert.Equal(t, "zstd", Zstd.String())
	assert.Equal(t, "brotli", Brotli.String())
	assert.Equal(t, "unknown", Algorithm(99).String())
}
