package pkg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInspectHuffman(t *testing.T) {
	input := writeInput(t, "input.txt", "aaabbbcc")
	codec := NewHuffman()
	compressed, err := codec.Compress(input, "")
	require.NoError(t, err)

	info, err := Inspect(compressed)
	require.NoError(t, err)
	require.Equal(t, "Huffman Coding", info.Algorithm)
	require.Equal(t, int64(8), info.OriginalSize)
	require.Equal(t, 8, info.CharacterCount)
	require.Equal(t, 3, info.DistinctSymbols)
	require.Equal(t, codec.Stats().FileHash, info.FileHash)
	require.NotEmpty(t, info.Timestamp)
}

func TestInspectRLE(t *testing.T) {
	input := writeInput(t, "input.txt", "aaaaa")
	codec := NewRunLength()
	compressed, err := codec.Compress(input, "")
	require.NoError(t, err)

	info, err := Inspect(compressed)
	require.NoError(t, err)
	require.Equal(t, "Run-Length Encoding", info.Algorithm)
	require.Equal(t, int64(5), info.OriginalSize)
	require.Equal(t, int64(4), info.PayloadSize)
}

func TestInspectZstd(t *testing.T) {
	input := writeInput(t, "input.txt", "aaaaa")
	codec := NewZstd()
	compressed, err := codec.Compress(input, "")
	require.NoError(t, err)

	info, err := Inspect(compressed)
	require.NoError(t, err)
	require.Equal(t, "Zstandard", info.Algorithm)
	require.Equal(t, int64(5), info.OriginalSize)
}

func TestInspectGarbage(t *testing.T) {
	path := writeInput(t, "garbage.bin", "nothing to see here")
	_, err := Inspect(path)
	require.Error(t, err)
}
