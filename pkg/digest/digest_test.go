package digest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strutil/pkg/digest"
)

const fox = "The quick brown fox jumps over the lazy dog"

func TestHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		algo     string
		input    string
		expected string
	}{
		{"md5", "", "d41d8cd98f00b204e9800998ecf8427e"},
		{"md5", "abc", "900150983cd24fb0d6963f7d28e17f72"},
		{"md5", fox, "9e107d9d372bb6826bd81d3542a419d6"},
		{"sha1", "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"sha1", "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"sha1", fox, "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12"},
		{"sha224", "abc", "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{"sha256", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"sha256", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"sha256", fox, "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592"},
		{"sha384", "abc", "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
		{"sha512", "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	}

	for _, tt := range tests {
		t.Run(tt.algo+"/"+tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := digest.Hex(tt.input, tt.algo)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHexAlgorithmName(t *testing.T) {
	t.Parallel()

	t.Run("case insensitive", func(t *testing.T) {
		t.Parallel()

		got, err := digest.Hex("abc", "SHA256")
		require.NoError(t, err)
		assert.Equal(t, digest.SHA256("abc"), got)
	})

	t.Run("surrounding whitespace ignored", func(t *testing.T) {
		t.Parallel()

		got, err := digest.Hex("abc", "  sha1\t")
		require.NoError(t, err)
		assert.Equal(t, digest.SHA1("abc"), got)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		t.Parallel()

		_, err := digest.Hex("abc", "whirlpool")
		require.ErrorIs(t, err, digest.ErrUnsupportedAlgorithm)
		assert.Contains(t, err.Error(), "whirlpool")
	})

	t.Run("empty algorithm", func(t *testing.T) {
		t.Parallel()

		_, err := digest.Hex("abc", "")
		require.ErrorIs(t, err, digest.ErrUnsupportedAlgorithm)
	})
}

func TestFixedAlgorithmHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", digest.MD5(""))
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", digest.SHA1(""))
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", digest.SHA256(""))
	assert.Equal(t, "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e", digest.SHA512(""))

	// Helpers agree with the name-based lookup
	for _, algo := range []string{"md5", "sha1", "sha256", "sha512"} {
		viaHex, err := digest.Hex(fox, algo)
		require.NoError(t, err)
		switch algo {
		case "md5":
			assert.Equal(t, viaHex, digest.MD5(fox))
		case "sha1":
			assert.Equal(t, viaHex, digest.SHA1(fox))
		case "sha256":
			assert.Equal(t, viaHex, digest.SHA256(fox))
		case "sha512":
			assert.Equal(t, viaHex, digest.SHA512(fox))
		}
	}
}

func TestAlgorithms(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"md5", "sha1", "sha224", "sha256", "sha384", "sha512"}, digest.Algorithms())
}

func BenchmarkHex(b *testing.B) {
	for _, algo := range []string{"md5", "sha256", "sha512"} {
		b.Run(algo, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = digest.Hex(fox, algo)
			}
		})
	}
}
