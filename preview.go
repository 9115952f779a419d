package picamraw

import (
	"image"
	"image/color"

	"github.com/nfnt/resize"
)

// Image renders the collapsed RGB view as a 16-bit image, scaling the
// 10-bit samples to the full 16-bit range.
func (r *RawBayer) Image() (image.Image, error) {
	rgb, err := r.ToRGB()
	if err != nil {
		return nil, err
	}
	img := image.NewNRGBA64(image.Rect(0, 0, rgb.Width, rgb.Height))
	for y := 0; y < rgb.Height; y++ {
		for x := 0; x < rgb.Width; x++ {
			i := (y*rgb.Width + x) * 3
			img.SetNRGBA64(x, y, color.NRGBA64{
				R: rgb.Pix[i] << 6,
				G: rgb.Pix[i+1] << 6,
				B: rgb.Pix[i+2] << 6,
				A: 0xFFFF,
			})
		}
	}
	return img, nil
}

// Thumbnail renders the collapsed RGB view downscaled to fit within
// maxWidth x maxHeight, preserving aspect ratio.
func (r *RawBayer) Thumbnail(maxWidth, maxHeight uint) (image.Image, error) {
	img, err := r.Image()
	if err != nil {
		return nil, err
	}
	return resize.Thumbnail(maxWidth, maxHeight, img, resize.Bilinear), nil
}
