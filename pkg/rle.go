package pkg

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Run-length container: a text file whose first line is a JSON metadata
// record, followed by the concatenation of fixed-width run records. Each
// record is a 3-digit zero-padded count and the run's symbol, 4 characters
// total. The count field caps a run at 255: longer runs are split into
// multiple records. There is no tree, table or integrity field here, so the
// stats omit checksum and hash.

const (
	rleAlgorithm = "Run-Length Encoding"
	maxRunLength = 255
)

type rleMetadata struct {
	OriginalSize int64  `json:"original_size"`
	Algorithm    string `json:"algorithm"`
	Timestamp    string `json:"timestamp"`
}

// RunLength is the count-prefixed run codec.
type RunLength struct {
	log   *logrus.Logger
	stats CompressionStats
}

func NewRunLength() *RunLength {
	return &RunLength{log: logrus.StandardLogger()}
}

func (c *RunLength) Name() string { return rleAlgorithm }

func (c *RunLength) Stats() CompressionStats { return c.stats }

// Compress writes the RLE container for inputPath. An empty outputPath
// derives "<stem>.rle".
func (c *RunLength) Compress(inputPath, outputPath string) (string, error) {
	start := time.Now()
	if outputPath == "" {
		outputPath = defaultPath(inputPath, ".rle")
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return "", err
	}
	text := []rune(string(raw))

	meta := rleMetadata{
		OriginalSize: int64(len(raw)),
		Algorithm:    rleAlgorithm,
		Timestamp:    time.Now().Format(time.RFC3339),
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return "", err
	}

	runs := encodeRuns(text)

	var out strings.Builder
	out.Write(metaJSON)
	out.WriteByte('\n')
	out.WriteString(runs)

	if err := os.WriteFile(outputPath, []byte(out.String()), 0644); err != nil {
		return "", err
	}
	c.log.Debugf("rle: wrote %d run records to %s", utf8.RuneCountInString(runs)/4, outputPath)

	compressedSize := int64(out.Len())
	c.stats = CompressionStats{
		Algorithm:      c.Name(),
		OriginalSize:   meta.OriginalSize,
		CharacterCount: len(text),
		CompressedSize: compressedSize,
		Ratio:          ratio(meta.OriginalSize, compressedSize),
		Duration:       time.Since(start),
		OutputPath:     outputPath,
	}
	return outputPath, nil
}

// Decompress expands an RLE container. An empty outputPath derives
// "<stem>_decompressed.txt".
func (c *RunLength) Decompress(inputPath, outputPath string) (string, error) {
	start := time.Now()
	if outputPath == "" {
		outputPath = defaultPath(inputPath, "")
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return "", err
	}

	meta, body, err := parseRLEContainer(string(raw))
	if err != nil {
		return "", err
	}

	decoded, err := decodeRuns(body)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputPath, []byte(decoded), 0644); err != nil {
		return "", err
	}

	c.stats = CompressionStats{
		Algorithm:      c.Name(),
		OriginalSize:   meta.OriginalSize,
		CharacterCount: utf8.RuneCountInString(decoded),
		CompressedSize: int64(len(raw)),
		Duration:       time.Since(start),
		OutputPath:     outputPath,
	}
	return outputPath, nil
}

// encodeRuns scans the text left to right, grouping maximal runs of one
// symbol. A boundary is forced at 255 even when the symbol continues, so the
// count always fits its 3-digit field.
func encodeRuns(text []rune) string {
	var out strings.Builder
	i := 0
	for i < len(text) {
		count := 1
		for i+count < len(text) && text[i+count] == text[i] && count < maxRunLength {
			count++
		}
		fmt.Fprintf(&out, "%03d%c", count, text[i])
		i += count
	}
	return out.String()
}

// decodeRuns consumes exactly 4 symbols per record: 3 digits and the symbol
// to repeat.
func decodeRuns(body []rune) (string, error) {
	var out strings.Builder
	for i := 0; i < len(body); i += 4 {
		if i+4 > len(body) {
			return "", fmt.Errorf("run record at offset %d: %w", i, ErrTruncated)
		}
		count, err := strconv.Atoi(string(body[i : i+3]))
		if err != nil {
			return "", fmt.Errorf("run record at offset %d: %w", i, err)
		}
		out.WriteString(strings.Repeat(string(body[i+3]), count))
	}
	return out.String(), nil
}

func parseRLEContainer(content string) (rleMetadata, []rune, error) {
	var meta rleMetadata
	line, body, found := strings.Cut(content, "\n")
	if !found {
		return meta, nil, ErrBadMagic
	}
	if err := json.Unmarshal([]byte(line), &meta); err != nil {
		return meta, nil, fmt.Errorf("metadata line: %w", err)
	}
	if meta.Algorithm != rleAlgorithm {
		return meta, nil, ErrBadMagic
	}
	return meta, []rune(body), nil
}
