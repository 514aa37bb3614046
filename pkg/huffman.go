package pkg

import (
	"bytes"
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Huffman container layout:
//
//	"HUFF" | metaLen(uint32 BE) | metadata JSON | freqLen(uint32 BE) | freq JSON | payload
//
// The frequency table is stored instead of the tree; the decoder rebuilds the
// identical tree from it (see tree.go). The checksum is an XOR fold of the
// packed payload bytes — a weak, advisory check that catches any odd number
// of flipped bits and misses even ones. The file hash is the first 8 hex
// characters of the MD5 of the original text and only confirms round-trip
// fidelity, not tamper resistance.

const huffMagic = "HUFF"

type huffMetadata struct {
	OriginalSize   int64  `json:"original_size"`
	CharacterCount int    `json:"character_count"`
	Checksum       int    `json:"checksum"`
	FileHash       string `json:"file_hash"`
	Timestamp      string `json:"timestamp"`
}

// Huffman is the entropy-coding codec. One instance serves one call at a
// time; its stats are overwritten per call.
type Huffman struct {
	log   *logrus.Logger
	stats CompressionStats
}

func NewHuffman() *Huffman {
	return &Huffman{log: logrus.StandardLogger()}
}

func (h *Huffman) Name() string { return "Huffman Coding" }

func (h *Huffman) Stats() CompressionStats { return h.stats }

// Compress encodes the file at inputPath into a HUFF container. An empty
// outputPath derives "<stem>.huff" from the input.
func (h *Huffman) Compress(inputPath, outputPath string) (string, error) {
	start := time.Now()
	if outputPath == "" {
		outputPath = defaultPath(inputPath, ".huff")
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return "", err
	}
	text := string(raw)

	freqs := CountFrequencies(text)
	tree := buildTree(freqs)
	codes, _ := tree.codeTables()

	var bits strings.Builder
	for _, r := range text {
		bits.WriteString(codes[r])
	}
	payload, err := PackBits(bits.String())
	if err != nil {
		return "", err
	}

	checksum := xorChecksum(payload)
	hash := contentHash(text)

	meta := huffMetadata{
		OriginalSize:   int64(len(raw)),
		CharacterCount: utf8.RuneCountInString(text),
		Checksum:       int(checksum),
		FileHash:       hash,
		Timestamp:      time.Now().Format(time.RFC3339),
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return "", err
	}
	freqJSON, err := json.Marshal(freqs)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	out.WriteString(huffMagic)
	binary.Write(&out, binary.BigEndian, uint32(len(metaJSON)))
	out.Write(metaJSON)
	binary.Write(&out, binary.BigEndian, uint32(len(freqJSON)))
	out.Write(freqJSON)
	out.Write(payload)

	if err := os.WriteFile(outputPath, out.Bytes(), 0644); err != nil {
		return "", err
	}

	h.stats = CompressionStats{
		Algorithm:      h.Name(),
		OriginalSize:   meta.OriginalSize,
		CharacterCount: meta.CharacterCount,
		CompressedSize: int64(out.Len()),
		Ratio:          ratio(meta.OriginalSize, int64(out.Len())),
		Duration:       time.Since(start),
		OutputPath:     outputPath,
		Checksum:       checksum,
		FileHash:       hash,
	}
	return outputPath, nil
}

// Decompress decodes a HUFF container back to text. Checksum and content-hash
// mismatches are advisory: they are logged and recorded in the stats, and
// decoding proceeds. A bitstream that cannot be fully resolved against the
// rebuilt code table is fatal and leaves the output path untouched.
func (h *Huffman) Decompress(inputPath, outputPath string) (string, error) {
	start := time.Now()
	if outputPath == "" {
		outputPath = defaultPath(inputPath, "")
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return "", err
	}

	meta, freqs, payload, err := parseHuffContainer(raw)
	if err != nil {
		return "", err
	}

	checksum := xorChecksum(payload)
	checksumOK := int(checksum) == meta.Checksum
	if !checksumOK {
		h.log.Warnf("checksum mismatch on %s: container records %d, payload folds to %d",
			inputPath, meta.Checksum, checksum)
	}

	tree := buildTree(freqs)
	_, reverse := tree.codeTables()

	bits, err := UnpackBits(payload)
	if err != nil {
		return "", err
	}
	decoded, err := decodeBits(bits, reverse)
	if err != nil {
		return "", err
	}

	hash := contentHash(decoded)
	verified := hash == meta.FileHash
	if !verified {
		h.log.Warnf("content hash mismatch on %s: container records %q, decoded text hashes to %q",
			inputPath, meta.FileHash, hash)
	}

	if err := os.WriteFile(outputPath, []byte(decoded), 0644); err != nil {
		return "", err
	}

	h.stats = CompressionStats{
		Algorithm:      h.Name(),
		OriginalSize:   meta.OriginalSize,
		CharacterCount: meta.CharacterCount,
		CompressedSize: int64(len(raw)),
		Duration:       time.Since(start),
		OutputPath:     outputPath,
		Checksum:       checksum,
		FileHash:       hash,
		ChecksumOK:     checksumOK,
		Verified:       verified,
	}
	return outputPath, nil
}

// decodeBits walks the bit-string, emitting a symbol whenever the accumulated
// prefix matches a table entry. Leftover unmatched bits mean the stream was
// corrupted beyond what the padding rules allow.
func decodeBits(bits string, reverse map[string]rune) (string, error) {
	var out strings.Builder
	pos := 0
	for i := 0; i < len(bits); i++ {
		if r, ok := reverse[bits[pos:i+1]]; ok {
			out.WriteRune(r)
			pos = i + 1
		}
	}
	if pos != len(bits) {
		return "", &DecodeError{Remaining: len(bits) - pos}
	}
	return out.String(), nil
}

func parseHuffContainer(raw []byte) (huffMetadata, FrequencyTable, []byte, error) {
	var meta huffMetadata
	if len(raw) < len(huffMagic) || string(raw[:len(huffMagic)]) != huffMagic {
		return meta, nil, nil, ErrBadMagic
	}

	off := len(huffMagic)
	block := func() ([]byte, error) {
		if len(raw)-off < 4 {
			return nil, ErrTruncated
		}
		n := int(binary.BigEndian.Uint32(raw[off : off+4]))
		off += 4
		if n > len(raw)-off {
			return nil, ErrTruncated
		}
		b := raw[off : off+n]
		off += n
		return b, nil
	}

	metaJSON, err := block()
	if err != nil {
		return meta, nil, nil, err
	}
	if err := json.Unmarshal(metaJSON, &meta); err != nil {
		return meta, nil, nil, fmt.Errorf("metadata block: %w", err)
	}

	freqJSON, err := block()
	if err != nil {
		return meta, nil, nil, err
	}
	var freqs FrequencyTable
	if err := json.Unmarshal(freqJSON, &freqs); err != nil {
		return meta, nil, nil, fmt.Errorf("frequency block: %w", err)
	}

	return meta, freqs, raw[off:], nil
}

// xorChecksum folds all payload bytes with XOR. Single-bit errors always
// change the result; an even number of flips in the same bit position cancels
// out, which is the documented weakness of this check.
func xorChecksum(data []byte) byte {
	var parity byte
	for _, b := range data {
		parity ^= b
	}
	return parity
}

// contentHash is the first 8 hex characters of the MD5 of the text.
func contentHash(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])[:8]
}
