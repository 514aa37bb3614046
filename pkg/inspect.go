package pkg

import "os"

// ContainerInfo summarizes a compressed file's embedded metadata without
// decoding its payload.
type ContainerInfo struct {
	Algorithm       string
	OriginalSize    int64
	CharacterCount  int
	DistinctSymbols int
	Checksum        int
	FileHash        string
	Timestamp       string
	PayloadSize     int64
}

// Inspect reads just the metadata blocks of a container file. The codec is
// detected from the content, not the file name.
func Inspect(path string) (ContainerInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ContainerInfo{}, err
	}

	if len(raw) >= len(huffMagic) && string(raw[:len(huffMagic)]) == huffMagic {
		meta, freqs, payload, err := parseHuffContainer(raw)
		if err != nil {
			return ContainerInfo{}, err
		}
		return ContainerInfo{
			Algorithm:       "Huffman Coding",
			OriginalSize:    meta.OriginalSize,
			CharacterCount:  meta.CharacterCount,
			DistinctSymbols: len(freqs),
			Checksum:        meta.Checksum,
			FileHash:        meta.FileHash,
			Timestamp:       meta.Timestamp,
			PayloadSize:     int64(len(payload)),
		}, nil
	}

	if len(raw) >= len(zstdMagic) && string(raw[:len(zstdMagic)]) == zstdMagic {
		meta, payload, err := parseZstdContainer(raw)
		if err != nil {
			return ContainerInfo{}, err
		}
		return ContainerInfo{
			Algorithm:    meta.Algorithm,
			OriginalSize: meta.OriginalSize,
			Timestamp:    meta.Timestamp,
			PayloadSize:  int64(len(payload)),
		}, nil
	}

	meta, body, err := parseRLEContainer(string(raw))
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{
		Algorithm:    meta.Algorithm,
		OriginalSize: meta.OriginalSize,
		Timestamp:    meta.Timestamp,
		PayloadSize:  int64(len(body)),
	}, nil
}
