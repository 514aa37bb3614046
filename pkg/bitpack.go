package pkg

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// Bit packing for the Huffman payload. A packed buffer is one padding-count
// byte followed by the bits MSB-first; the count records how many zero bits
// were appended to reach a byte boundary and is part of the payload itself,
// not of the container metadata. PackBits of the empty string is a
// zero-length buffer, so an empty input compresses to a zero-length payload.

// PackBits turns a string of '0'/'1' symbols into its padded byte form.
func PackBits(bits string) ([]byte, error) {
	if len(bits) == 0 {
		return []byte{}, nil
	}

	padding := byte((8 - len(bits)%8) % 8)

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := w.WriteByte(padding); err != nil {
		return nil, err
	}
	for i := 0; i < len(bits); i++ {
		if err := w.WriteBool(bits[i] == '1'); err != nil {
			return nil, err
		}
	}
	// Close aligns to a byte boundary with zero bits, which is exactly the
	// padding the prefix byte declares.
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnpackBits reverses PackBits: it reads the padding-count prefix, expands
// the remaining bytes to a flat bit-string and strips exactly that many
// trailing bits.
func UnpackBits(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	r := bitio.NewReader(bytes.NewReader(data))
	padding, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	if padding > 7 {
		return "", fmt.Errorf("invalid padding count %d: %w", padding, ErrTruncated)
	}

	total := (len(data)-1)*8 - int(padding)
	var sb strings.Builder
	sb.Grow(total)
	for i := 0; i < total; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", err
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String(), nil
}
