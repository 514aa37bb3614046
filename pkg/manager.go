package pkg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Manager holds a named set of codec instances and runs each of them against
// one input to produce comparable metrics. It does not rank the results;
// callers decide what "best" means.
type Manager struct {
	log    *logrus.Logger
	order  []string
	codecs map[string]Codec
}

// NewManager returns a manager with the standard codecs registered.
func NewManager() *Manager {
	m := &Manager{
		log:    logrus.StandardLogger(),
		codecs: make(map[string]Codec),
	}
	m.Register(NewHuffman())
	m.Register(NewRunLength())
	m.Register(NewZstd())
	return m
}

// Register adds a codec under its own name. Registering the same name twice
// replaces the instance but keeps its position.
func (m *Manager) Register(c Codec) {
	if _, ok := m.codecs[c.Name()]; !ok {
		m.order = append(m.order, c.Name())
	}
	m.codecs[c.Name()] = c
}

// Codec returns the registered codec with the given name, or nil.
func (m *Manager) Codec(name string) Codec { return m.codecs[name] }

// Names lists the registered codecs in registration order.
func (m *Manager) Names() []string {
	return append([]string(nil), m.order...)
}

// CompareAlgorithms compresses inputPath once per registered codec, captures
// each codec's stats and removes the temporary artifact. One codec failing
// does not abort the run: its entry records the error and the remaining
// codecs still execute.
func (m *Manager) CompareAlgorithms(inputPath string) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(m.order))
	for _, name := range m.order {
		codec := m.codecs[name]
		tmp := tempOutputPath(inputPath, name)

		if _, err := codec.Compress(inputPath, tmp); err != nil {
			m.log.Warnf("comparison: %s failed on %s: %v", name, inputPath, err)
			os.Remove(tmp)
			results = append(results, ComparisonResult{Algorithm: name, Err: err})
			continue
		}

		stats := codec.Stats()
		os.Remove(tmp)

		results = append(results, ComparisonResult{
			Algorithm:      name,
			OriginalSize:   stats.OriginalSize,
			CompressedSize: stats.CompressedSize,
			Ratio:          stats.Ratio,
			Duration:       stats.Duration,
		})
	}
	return results
}

// CodecForPath picks a fresh codec instance for a compressed file based on
// its extension.
func CodecForPath(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".huff":
		return NewHuffman(), nil
	case ".rle":
		return NewRunLength(), nil
	case ".zsq":
		return NewZstd(), nil
	}
	return nil, fmt.Errorf("no codec registered for %q files", filepath.Ext(path))
}

func tempOutputPath(inputPath, algorithm string) string {
	slug := strings.ToLower(strings.ReplaceAll(algorithm, " ", "_"))
	stem := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return stem + "_" + slug + "_temp"
}
