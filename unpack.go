package picamraw

import "fmt"

// unpackRawBlock decodes the packed pixel stream of the raw block starting
// at blockStart into a dense bayer array.
//
// Pixel data begins pixelDataOffset bytes into the block. Each stored row is
// g.Stride bytes; every 5 bytes carry 4 pixels as four high bytes followed
// by one byte holding the four 2-bit remainders, highest pair first. Rows
// carry alignment padding past Width pixels, which is discarded, as are any
// padding rows past Height.
func unpackRawBlock(src ByteSource, blockStart int64, g ModeGeometry) (*BayerArray, error) {
	pixStart := blockStart + pixelDataOffset
	need := int64(g.Height) * int64(g.Stride)
	if pixStart+need > src.Size() {
		return nil, fmt.Errorf("unpack raw block: %d pixel bytes at offset %d exceed source size %d: %w",
			need, pixStart, src.Size(), ErrCorruptRawBlock)
	}

	out := &BayerArray{
		Width:  g.Width,
		Height: g.Height,
		Pix:    make([]uint16, g.Width*g.Height),
	}
	row := make([]byte, g.Stride)
	for r := 0; r < g.Height; r++ {
		if _, err := src.ReadAt(row, pixStart+int64(r)*int64(g.Stride)); err != nil {
			return nil, fmt.Errorf("unpack raw block: row %d: %w", r, ErrCorruptRawBlock)
		}
		dst := out.Pix[r*g.Width : (r+1)*g.Width]
		c := 0
		for b := 0; c < g.Width; b += groupBytes {
			low := row[b+4]
			for i := 0; i < groupPixels && c < g.Width; i++ {
				dst[c] = uint16(row[b+i])<<2 | uint16(low>>((3-i)*2))&3
				c++
			}
		}
	}
	return out, nil
}
