package picamraw

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBayerToRGBSmall(t *testing.T) {
	// One RGGB tile: [[1,2],[3,4]] collapses to R=1, G=(2+3+1)/2=3, B=4.
	bayer := &BayerArray{Width: 2, Height: 2, Pix: []uint16{1, 2, 3, 4}}

	rgb, err := BayerToRGB(bayer, OrderRGGB)
	if err != nil {
		t.Fatalf("to rgb: %v", err)
	}
	if rgb.Width != 1 || rgb.Height != 1 {
		t.Fatalf("shape %dx%d, want 1x1", rgb.Width, rgb.Height)
	}
	if diff := cmp.Diff([]uint16{1, 3, 4}, rgb.Pix); diff != "" {
		t.Errorf("rgb mismatch (-want +got):\n%s", diff)
	}
}

func TestBayerToRGBUniform(t *testing.T) {
	const k = 777
	bayer := &BayerArray{Width: 4, Height: 4, Pix: make([]uint16, 16)}
	for i := range bayer.Pix {
		bayer.Pix[i] = k
	}
	for o := OrderRGGB; o <= OrderGRBG; o++ {
		rgb, err := BayerToRGB(bayer, o)
		if err != nil {
			t.Fatalf("%v: %v", o, err)
		}
		for i, v := range rgb.Pix {
			if v != k {
				t.Fatalf("%v: channel value %d at %d, want %d", o, v, i, k)
			}
		}
	}
}

func TestBayerToRGBOddShape(t *testing.T) {
	bayer := &BayerArray{Width: 3, Height: 2, Pix: make([]uint16, 6)}
	if _, err := BayerToRGB(bayer, OrderRGGB); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("err = %v, want ErrInvalidShape", err)
	}
	bayer = &BayerArray{Width: 2, Height: 5, Pix: make([]uint16, 10)}
	if _, err := BayerToRGB(bayer, OrderRGGB); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("err = %v, want ErrInvalidShape", err)
	}
}

func TestBayerTo3DSmall(t *testing.T) {
	bayer := &BayerArray{Width: 2, Height: 2, Pix: []uint16{1, 2, 3, 4}}

	got := BayerTo3D(bayer, OrderRGGB)
	want := []uint16{
		1, 0, 0, 0, 2, 0,
		0, 3, 0, 0, 0, 4,
	}
	if diff := cmp.Diff(want, got.Pix); diff != "" {
		t.Errorf("split layout mismatch (-want +got):\n%s", diff)
	}
}

func TestBayerTo3DRoundTrip(t *testing.T) {
	bayer := &BayerArray{Width: 6, Height: 4, Pix: make([]uint16, 24)}
	for i := range bayer.Pix {
		bayer.Pix[i] = uint16((i * 37) % 1024)
	}
	for o := OrderRGGB; o <= OrderGRBG; o++ {
		split := BayerTo3D(bayer, o)
		for i := range bayer.Pix {
			sum := split.Pix[i*3] + split.Pix[i*3+1] + split.Pix[i*3+2]
			if sum != bayer.Pix[i] {
				t.Fatalf("%v: channel sum %d at %d, want %d", o, sum, i, bayer.Pix[i])
			}
		}
	}
}

// Each order must place exactly one R, one B, and two G samples per tile.
func TestChannelCoordsCoverTile(t *testing.T) {
	for o := OrderRGGB; o <= OrderGRBG; o++ {
		cc := channelCoords[o]
		seen := map[[2]int]int{}
		seen[[2]int{cc.ry, cc.rx}]++
		seen[[2]int{cc.g1y, cc.g1x}]++
		seen[[2]int{cc.g2y, cc.g2x}]++
		seen[[2]int{cc.by, cc.bx}]++
		if len(seen) != 4 {
			t.Errorf("%v: coordinates collide: %v", o, seen)
		}
	}
}
