package pkg

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"
)

// Zstd wraps a zstandard stream in the same magic-plus-metadata container
// shape the other codecs use, so the comparison harness can run it beside
// them:
//
//	"ZSQZ" | metaLen(uint32 BE) | metadata JSON | zstd frames
//
// Like RLE it carries no checksum or hash of its own; zstd frames already
// embed their own integrity data.

const zstdMagic = "ZSQZ"

type zstdMetadata struct {
	OriginalSize int64  `json:"original_size"`
	Algorithm    string `json:"algorithm"`
	Timestamp    string `json:"timestamp"`
}

type Zstd struct {
	log   *logrus.Logger
	stats CompressionStats
}

func NewZstd() *Zstd {
	return &Zstd{log: logrus.StandardLogger()}
}

func (c *Zstd) Name() string { return "Zstandard" }

func (c *Zstd) Stats() CompressionStats { return c.stats }

// Compress writes a ZSQZ container. An empty outputPath derives "<stem>.zsq".
func (c *Zstd) Compress(inputPath, outputPath string) (string, error) {
	start := time.Now()
	if outputPath == "" {
		outputPath = defaultPath(inputPath, ".zsq")
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return "", err
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return "", err
	}
	payload := enc.EncodeAll(raw, nil)
	if err := enc.Close(); err != nil {
		return "", err
	}

	meta := zstdMetadata{
		OriginalSize: int64(len(raw)),
		Algorithm:    c.Name(),
		Timestamp:    time.Now().Format(time.RFC3339),
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	out.WriteString(zstdMagic)
	binary.Write(&out, binary.BigEndian, uint32(len(metaJSON)))
	out.Write(metaJSON)
	out.Write(payload)

	if err := os.WriteFile(outputPath, out.Bytes(), 0644); err != nil {
		return "", err
	}
	c.log.Debugf("zstd: wrote %d payload bytes to %s", len(payload), outputPath)

	c.stats = CompressionStats{
		Algorithm:      c.Name(),
		OriginalSize:   meta.OriginalSize,
		CompressedSize: int64(out.Len()),
		Ratio:          ratio(meta.OriginalSize, int64(out.Len())),
		Duration:       time.Since(start),
		OutputPath:     outputPath,
	}
	return outputPath, nil
}

// Decompress expands a ZSQZ container. An empty outputPath derives
// "<stem>_decompressed.txt".
func (c *Zstd) Decompress(inputPath, outputPath string) (string, error) {
	start := time.Now()
	if outputPath == "" {
		outputPath = defaultPath(inputPath, "")
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return "", err
	}

	meta, payload, err := parseZstdContainer(raw)
	if err != nil {
		return "", err
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return "", err
	}
	defer dec.Close()

	decoded, err := dec.DecodeAll(payload, nil)
	if err != nil {
		return "", fmt.Errorf("zstd payload: %w", err)
	}

	if err := os.WriteFile(outputPath, decoded, 0644); err != nil {
		return "", err
	}

	c.stats = CompressionStats{
		Algorithm:      c.Name(),
		OriginalSize:   meta.OriginalSize,
		CompressedSize: int64(len(raw)),
		Duration:       time.Since(start),
		OutputPath:     outputPath,
	}
	return outputPath, nil
}

func parseZstdContainer(raw []byte) (zstdMetadata, []byte, error) {
	var meta zstdMetadata
	if len(raw) < len(zstdMagic) || string(raw[:len(zstdMagic)]) != zstdMagic {
		return meta, nil, ErrBadMagic
	}
	off := len(zstdMagic)
	if len(raw)-off < 4 {
		return meta, nil, ErrTruncated
	}
	n := int(binary.BigEndian.Uint32(raw[off : off+4]))
	off += 4
	if n > len(raw)-off {
		return meta, nil, ErrTruncated
	}
	if err := json.Unmarshal(raw[off:off+n], &meta); err != nil {
		return meta, nil, fmt.Errorf("metadata block: %w", err)
	}
	return meta, raw[off+n:], nil
}
