package picamraw

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const rawHeaderSize = 32 + 2*4 + 4*6 + 2 + 2 + 1 + 1

// RawHeader is the little-endian Broadcom metadata record embedded
// headerByteOffset bytes into the raw block.
type RawHeader struct {
	Name         string
	Width        uint16
	Height       uint16
	PaddingRight uint16
	PaddingDown  uint16
	Transform    uint16
	Format       uint16
	BayerOrder   uint8
	BayerFormat  uint8
}

// Flips decodes the transform field's mirror bits.
func (h *RawHeader) Flips() (hFlip, vFlip bool) {
	return h.Transform&1 != 0, h.Transform&2 != 0
}

// Order maps the header's bayer_order byte to the enum, false when the byte
// is out of range.
func (h *RawHeader) Order() (BayerOrder, bool) {
	if int(h.BayerOrder) >= len(orderFromBroadcom) {
		return 0, false
	}
	return orderFromBroadcom[h.BayerOrder], true
}

// parseRawHeader reads the embedded header of the block starting at
// blockStart.
func parseRawHeader(src ByteSource, blockStart int64) (*RawHeader, error) {
	buf := make([]byte, rawHeaderSize)
	if _, err := src.ReadAt(buf, blockStart+headerByteOffset); err != nil {
		return nil, fmt.Errorf("parse raw header: %w", ErrCorruptRawBlock)
	}
	name := buf[:32]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	h := &RawHeader{
		Name:         string(name),
		Width:        binary.LittleEndian.Uint16(buf[32:]),
		Height:       binary.LittleEndian.Uint16(buf[34:]),
		PaddingRight: binary.LittleEndian.Uint16(buf[36:]),
		PaddingDown:  binary.LittleEndian.Uint16(buf[38:]),
		Transform:    binary.LittleEndian.Uint16(buf[64:]),
		Format:       binary.LittleEndian.Uint16(buf[66:]),
		BayerOrder:   buf[68],
		BayerFormat:  buf[69],
	}
	return h, nil
}
