package picamraw

const (
	// Offsets within the raw block.
	headerByteOffset = 176
	pixelDataOffset  = 32768
)

const (
	// Packed row alignment: 4 pixels per 5 bytes, rows padded to 32 bytes,
	// row count padded to a multiple of 16.
	groupBytes  = 5
	groupPixels = 4
)

// rawBlockMagic opens every Broadcom raw block.
var rawBlockMagic = []byte{'B', 'R', 'C', 'M'}
