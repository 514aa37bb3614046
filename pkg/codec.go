package pkg

import (
	"path/filepath"
	"strings"
	"time"
)

// Codec is the contract every compression algorithm implements. Compress and
// Decompress take an input path and an optional output path (empty string
// picks a default derived from the input) and return the path actually
// written. Stats returns the record produced by the most recent call.
//
// A codec instance is synchronous and not reentrant: its stats are
// overwritten on every call. Callers that want parallelism use one instance
// per in-flight call.
type Codec interface {
	Name() string
	Compress(inputPath, outputPath string) (string, error)
	Decompress(inputPath, outputPath string) (string, error)
	Stats() CompressionStats
}

// CompressionStats describes one compress or decompress call.
// Checksum/FileHash/Verified/ChecksumOK are only meaningful for codecs that
// carry integrity fields in their container (Huffman); other codecs leave
// them zero.
type CompressionStats struct {
	Algorithm      string
	OriginalSize   int64
	CharacterCount int
	CompressedSize int64
	Ratio          float64
	Duration       time.Duration
	OutputPath     string

	Checksum   byte
	FileHash   string
	ChecksumOK bool
	Verified   bool
}

// ComparisonResult is one entry of a Manager.CompareAlgorithms run. Err is
// set when the codec failed; the remaining fields are then zero.
type ComparisonResult struct {
	Algorithm      string
	OriginalSize   int64
	CompressedSize int64
	Ratio          float64
	Duration       time.Duration
	Err            error
}

// ratio is the percentage of space saved. An empty input has no meaningful
// ratio and reports 0.
func ratio(originalSize, compressedSize int64) float64 {
	if originalSize == 0 {
		return 0
	}
	return (1 - float64(compressedSize)/float64(originalSize)) * 100
}

// defaultPath swaps the input's extension for ext ("" means a bare
// "_decompressed.txt" suffix on the stem, matching the decode default).
func defaultPath(inputPath, ext string) string {
	stem := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	if ext == "" {
		return stem + "_decompressed.txt"
	}
	return stem + ext
}
