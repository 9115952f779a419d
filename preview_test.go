package picamraw

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformRaw(t *testing.T, k uint16) *RawBayer {
	t.Helper()
	bayer := &BayerArray{Width: 8, Height: 8, Pix: make([]uint16, 64)}
	for i := range bayer.Pix {
		bayer.Pix[i] = k
	}
	return &RawBayer{Bayer: bayer, Order: OrderBGGR}
}

func TestImage(t *testing.T) {
	raw := uniformRaw(t, 1023)

	img, err := raw.Image()
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())

	r, g, b, a := img.At(0, 0).RGBA()
	// 1023<<6 = 0xFFC0: full-scale 10-bit maps to near-white.
	assert.Equal(t, uint32(0xFFC0), r)
	assert.Equal(t, uint32(0xFFC0), g)
	assert.Equal(t, uint32(0xFFC0), b)
	assert.Equal(t, uint32(0xFFFF), a)
}

func TestThumbnail(t *testing.T) {
	raw := uniformRaw(t, 512)

	img, err := raw.Thumbnail(2, 2)
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), 2)
	assert.LessOrEqual(t, bounds.Dy(), 2)
}
