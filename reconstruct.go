package picamraw

import "fmt"

// BayerToRGB collapses every non-overlapping 2x2 bayer tile into one RGB
// pixel. The two green samples are averaged, rounding half up. The output
// is half the bayer resolution in each axis.
func BayerToRGB(bayer *BayerArray, order BayerOrder) (*RGBArray, error) {
	if bayer.Width%2 != 0 || bayer.Height%2 != 0 {
		return nil, fmt.Errorf("reconstruct rgb: %dx%d has odd dimension: %w",
			bayer.Width, bayer.Height, ErrInvalidShape)
	}
	cc := channelCoords[order]
	out := &RGBArray{
		Width:  bayer.Width / 2,
		Height: bayer.Height / 2,
		Pix:    make([]uint16, bayer.Width/2*bayer.Height/2*3),
	}
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			ty, tx := y*2, x*2
			g1 := bayer.At(ty+cc.g1y, tx+cc.g1x)
			g2 := bayer.At(ty+cc.g2y, tx+cc.g2x)
			i := (y*out.Width + x) * 3
			out.Pix[i] = bayer.At(ty+cc.ry, tx+cc.rx)
			out.Pix[i+1] = (g1 + g2 + 1) / 2
			out.Pix[i+2] = bayer.At(ty+cc.by, tx+cc.bx)
		}
	}
	return out, nil
}

// BayerTo3D copies every bayer sample into its matching RGB channel at the
// same position, leaving the other channels zero. Lossless: summing the
// channel axis reproduces the bayer array.
func BayerTo3D(bayer *BayerArray, order BayerOrder) *RGBArray {
	cc := channelCoords[order]
	out := &RGBArray{
		Width:  bayer.Width,
		Height: bayer.Height,
		Pix:    make([]uint16, bayer.Width*bayer.Height*3),
	}
	for y := 0; y < bayer.Height; y++ {
		ty := y & 1
		for x := 0; x < bayer.Width; x++ {
			var c int
			switch {
			case ty == cc.ry && x&1 == cc.rx:
				c = 0
			case ty == cc.by && x&1 == cc.bx:
				c = 2
			default:
				c = 1
			}
			out.Pix[(y*bayer.Width+x)*3+c] = bayer.Pix[y*bayer.Width+x]
		}
	}
	return out
}
