package pkg

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic means the file's magic tag does not match the codec's
	// container format. Nothing is written to the output path.
	ErrBadMagic = errors.New("unrecognized container magic")

	// ErrTruncated means a length-prefixed block claims more bytes than the
	// file holds.
	ErrTruncated = errors.New("container truncated")
)

// DecodeError means the packed bitstream could not be fully resolved against
// the reconstructed code table. The decoded output is discarded; nothing is
// written.
type DecodeError struct {
	Remaining int // unmatched trailing bits
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed bitstream: %d unmatched trailing bits", e.Remaining)
}
