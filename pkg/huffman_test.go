package pkg

import (
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestHuffmanRoundTrip(t *testing.T) {
	input := writeInput(t, "input.txt", "aaabbbcc")

	codec := NewHuffman()
	compressed, err := codec.Compress(input, "")
	require.NoError(t, err)
	require.Equal(t, strings.TrimSuffix(input, ".txt")+".huff", compressed)

	stats := codec.Stats()
	require.Equal(t, int64(8), stats.OriginalSize)
	require.Equal(t, 8, stats.CharacterCount)
	require.Equal(t, "Huffman Coding", stats.Algorithm)
	require.Len(t, stats.FileHash, 8)

	decompressed, err := codec.Decompress(compressed, "")
	require.NoError(t, err)

	decoded, err := os.ReadFile(decompressed)
	require.NoError(t, err)
	require.Equal(t, "aaabbbcc", string(decoded))
	require.True(t, codec.Stats().Verified)
	require.True(t, codec.Stats().ChecksumOK)
}

func TestHuffmanEmptyInput(t *testing.T) {
	input := writeInput(t, "empty.txt", "")

	codec := NewHuffman()
	compressed, err := codec.Compress(input, "")
	require.NoError(t, err)
	require.Equal(t, float64(0), codec.Stats().Ratio)

	info, err := Inspect(compressed)
	require.NoError(t, err)
	require.Equal(t, int64(0), info.PayloadSize)
	require.Equal(t, 0, info.DistinctSymbols)

	decompressed, err := codec.Decompress(compressed, "")
	require.NoError(t, err)
	decoded, err := os.ReadFile(decompressed)
	require.NoError(t, err)
	require.Empty(t, decoded)
	require.True(t, codec.Stats().Verified)
}

func TestHuffmanSingleSymbol(t *testing.T) {
	input := writeInput(t, "single.txt", "x")

	codec := NewHuffman()
	compressed, err := codec.Compress(input, "")
	require.NoError(t, err)

	decompressed, err := codec.Decompress(compressed, "")
	require.NoError(t, err)
	decoded, err := os.ReadFile(decompressed)
	require.NoError(t, err)
	require.Equal(t, "x", string(decoded))
	require.True(t, codec.Stats().Verified)
}

func TestHuffmanUnicodeRoundTrip(t *testing.T) {
	text := "héllo wörld\n\ttabs and \x00 control bytes survive 字字字"
	input := writeInput(t, "unicode.txt", text)

	codec := NewHuffman()
	compressed, err := codec.Compress(input, "")
	require.NoError(t, err)

	decompressed, err := codec.Decompress(compressed, "")
	require.NoError(t, err)
	decoded, err := os.ReadFile(decompressed)
	require.NoError(t, err)
	require.Equal(t, text, string(decoded))
	require.True(t, codec.Stats().Verified)
}

func TestHuffmanBadMagic(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.huff")
	require.NoError(t, os.WriteFile(garbage, []byte("not a container"), 0644))

	codec := NewHuffman()
	_, err := codec.Decompress(garbage, "")
	require.ErrorIs(t, err, ErrBadMagic)

	// Nothing was written for the failed decode.
	_, statErr := os.Stat(filepath.Join(dir, "garbage_decompressed.txt"))
	require.True(t, os.IsNotExist(statErr))
}

func TestHuffmanTruncatedContainer(t *testing.T) {
	input := writeInput(t, "input.txt", "some text to truncate")
	codec := NewHuffman()
	compressed, err := codec.Compress(input, "")
	require.NoError(t, err)

	raw, err := os.ReadFile(compressed)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(compressed, raw[:6], 0644))

	_, err = codec.Decompress(compressed, "")
	require.ErrorIs(t, err, ErrTruncated)
}

func TestXORChecksumBitFlips(t *testing.T) {
	payload := []byte{0x12, 0x34, 0x56, 0x78}
	base := xorChecksum(payload)

	// Any single flipped bit changes the fold.
	for i := range payload {
		for bit := 0; bit < 8; bit++ {
			flipped := append([]byte(nil), payload...)
			flipped[i] ^= 1 << bit
			require.NotEqual(t, base, xorChecksum(flipped), "byte %d bit %d", i, bit)
		}
	}

	// Flipping the same bit position in two bytes cancels out: the
	// documented weakness of a parity fold.
	flipped := append([]byte(nil), payload...)
	flipped[0] ^= 1 << 3
	flipped[2] ^= 1 << 3
	require.Equal(t, base, xorChecksum(flipped))
}

func TestChecksumMismatchIsAdvisory(t *testing.T) {
	input := writeInput(t, "input.txt", "aaabbbcc aaabbbcc")
	codec := NewHuffman()
	compressed, err := codec.Compress(input, "")
	require.NoError(t, err)

	// Rewrite the container with a wrong stored checksum.
	raw, err := os.ReadFile(compressed)
	require.NoError(t, err)
	metaLen := int(binary.BigEndian.Uint32(raw[4:8]))
	var meta huffMetadata
	require.NoError(t, json.Unmarshal(raw[8:8+metaLen], &meta))
	meta.Checksum = (meta.Checksum + 1) % 256
	newMeta, err := json.Marshal(meta)
	require.NoError(t, err)

	tampered := append([]byte(huffMagic), make([]byte, 4)...)
	binary.BigEndian.PutUint32(tampered[4:8], uint32(len(newMeta)))
	tampered = append(tampered, newMeta...)
	tampered = append(tampered, raw[8+metaLen:]...)
	require.NoError(t, os.WriteFile(compressed, tampered, 0644))

	// Decoding proceeds; the mismatch is only recorded.
	decompressed, err := codec.Decompress(compressed, "")
	require.NoError(t, err)
	require.False(t, codec.Stats().ChecksumOK)
	require.True(t, codec.Stats().Verified)

	decoded, err := os.ReadFile(decompressed)
	require.NoError(t, err)
	require.Equal(t, "aaabbbcc aaabbbcc", string(decoded))
}

func TestDecodeBitsRejectsUnmatchedTail(t *testing.T) {
	reverse := map[string]rune{"0": 'a', "10": 'b', "11": 'c'}
	decoded, err := decodeBits("01011", reverse)
	require.NoError(t, err)
	require.Equal(t, "abc", decoded)

	_, err = decodeBits("0101", reverse)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, 1, decodeErr.Remaining)
}

func TestHuffmanExplicitOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(input, []byte("explicit paths"), 0644))

	codec := NewHuffman()
	out := filepath.Join(dir, "custom.bin")
	got, err := codec.Compress(input, out)
	require.NoError(t, err)
	require.Equal(t, out, got)

	restored := filepath.Join(dir, "restored.txt")
	got, err = codec.Decompress(out, restored)
	require.NoError(t, err)
	require.Equal(t, restored, got)

	decoded, err := os.ReadFile(restored)
	require.NoError(t, err)
	require.Equal(t, "explicit paths", string(decoded))
}
