package pkg

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZstdRoundTrip(t *testing.T) {
	text := strings.Repeat("compress me, compress me again. ", 64)
	input := writeInput(t, "input.txt", text)

	codec := NewZstd()
	compressed, err := codec.Compress(input, "")
	require.NoError(t, err)
	require.Equal(t, strings.TrimSuffix(input, ".txt")+".zsq", compressed)
	require.Less(t, codec.Stats().CompressedSize, codec.Stats().OriginalSize)

	decompressed, err := codec.Decompress(compressed, "")
	require.NoError(t, err)
	decoded, err := os.ReadFile(decompressed)
	require.NoError(t, err)
	require.Equal(t, text, string(decoded))
}

func TestZstdEmptyInput(t *testing.T) {
	input := writeInput(t, "empty.txt", "")

	codec := NewZstd()
	compressed, err := codec.Compress(input, "")
	require.NoError(t, err)
	require.Equal(t, float64(0), codec.Stats().Ratio)

	decompressed, err := codec.Decompress(compressed, "")
	require.NoError(t, err)
	decoded, err := os.ReadFile(decompressed)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestZstdBadMagic(t *testing.T) {
	input := writeInput(t, "garbage.zsq", "definitely not a container")
	codec := NewZstd()
	_, err := codec.Decompress(input, "")
	require.ErrorIs(t, err, ErrBadMagic)
}
