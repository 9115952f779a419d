package picamraw

import (
	"bytes"
	"fmt"
	"io"
)

// ByteSource is an opened capture file: random access reads plus a known
// total length. *bytes.Reader and *io.SectionReader satisfy it.
type ByteSource interface {
	io.ReaderAt
	Size() int64
}

// locateRawBlock computes where the raw block starts. The block is always
// the trailing TotalBytes of the file; the position is computed, never
// scanned for. The magic read is a sanity check only.
func locateRawBlock(src ByteSource, g ModeGeometry) (int64, error) {
	offset := src.Size() - int64(g.TotalBytes)
	if offset < 0 {
		return 0, fmt.Errorf("locate raw block: file %d bytes, need %d: %w", src.Size(), g.TotalBytes, ErrTruncatedFile)
	}
	magic := make([]byte, len(rawBlockMagic))
	if _, err := src.ReadAt(magic, offset); err != nil {
		return 0, fmt.Errorf("locate raw block: read magic: %w", ErrTruncatedFile)
	}
	if !bytes.Equal(magic, rawBlockMagic) {
		return 0, fmt.Errorf("locate raw block: magic %q at offset %d: %w", magic, offset, ErrTruncatedFile)
	}
	return offset, nil
}
