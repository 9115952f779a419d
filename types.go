package picamraw

// CameraVersion identifies a supported camera module generation.
type CameraVersion int

const (
	CameraV1 CameraVersion = iota + 1 // OV5647 sensor
	CameraV2                          // IMX219 sensor
)

func (v CameraVersion) String() string {
	switch v {
	case CameraV1:
		return "OV5647"
	case CameraV2:
		return "IMX219"
	}
	return "unknown"
}

// BayerOrder names the color at positions (0,0),(0,1),(1,0),(1,1) of the
// repeating 2x2 color filter tile.
type BayerOrder int

const (
	OrderRGGB BayerOrder = iota
	OrderGBRG
	OrderBGGR
	OrderGRBG
)

func (o BayerOrder) String() string {
	switch o {
	case OrderRGGB:
		return "RGGB"
	case OrderGBRG:
		return "GBRG"
	case OrderBGGR:
		return "BGGR"
	case OrderGRBG:
		return "GRBG"
	}
	return "unknown"
}

// BayerArray stores one 10-bit sensor sample per cell in 16-bit cells,
// row-major. Values are in [0,1023], unscaled.
type BayerArray struct {
	Width  int
	Height int
	Pix    []uint16 // len = Width*Height
}

// At returns the sample at row y, column x.
func (a *BayerArray) At(y, x int) uint16 {
	return a.Pix[y*a.Width+x]
}

// RGBArray stores RGB triplets row-major. Produced either collapsed (one
// triplet per 2x2 bayer tile) or split (bayer resolution, two of the three
// channels zero at every position).
type RGBArray struct {
	Width  int
	Height int
	Pix    []uint16 // len = Width*Height*3
}

// At returns channel c (0=R, 1=G, 2=B) at row y, column x.
func (a *RGBArray) At(y, x, c int) uint16 {
	return a.Pix[(y*a.Width+x)*3+c]
}

// ModeGeometry fixes the raw block layout for one (version, mode) pair.
type ModeGeometry struct {
	Width      int // output pixels per row
	Height     int // output rows
	Stride     int // packed bytes per stored row, incl. alignment padding
	TotalBytes int // raw block length, incl. the header region
}

// RawBayer is the result of extracting the raw block from one capture.
type RawBayer struct {
	Bayer  *BayerArray
	Order  BayerOrder
	Header *RawHeader // embedded Broadcom header, nil if unreadable
}

// ToRGB collapses each 2x2 bayer tile into one RGB pixel; the two green
// samples are averaged. Output is half the bayer resolution in each axis.
func (r *RawBayer) ToRGB() (*RGBArray, error) {
	return BayerToRGB(r.Bayer, r.Order)
}

// To3D re-layouts every bayer sample into its RGB channel at full
// resolution, leaving the other two channels zero.
func (r *RawBayer) To3D() *RGBArray {
	return BayerTo3D(r.Bayer, r.Order)
}
