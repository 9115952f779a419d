package picamraw

import "fmt"

type modeKey struct {
	version CameraVersion
	mode    int
}

// modeTable is the single source of truth for raw block layout. File size
// never feeds back into it; it only validates the table's prediction.
//
// Block sizes match the firmware's appended raw output per sensor mode.
// Strides are the packed row width padded to 32 bytes; the stored row count
// (TotalBytes minus the header region, divided by Stride) exceeds Height by
// the firmware's bottom padding. Only (V2, mode 0) is verified against real
// captures; the remaining entries carry the upstream sizes unchanged.
var modeTable = map[modeKey]ModeGeometry{
	{CameraV1, 0}: {Width: 2592, Height: 1944, Stride: 3264, TotalBytes: 6404096},
	{CameraV1, 1}: {Width: 1920, Height: 1080, Stride: 2432, TotalBytes: 2717696},
	{CameraV1, 2}: {Width: 2592, Height: 1944, Stride: 3264, TotalBytes: 6404096},
	{CameraV1, 3}: {Width: 2592, Height: 1944, Stride: 3264, TotalBytes: 6404096},
	{CameraV1, 4}: {Width: 1296, Height: 972, Stride: 1632, TotalBytes: 1625600},
	{CameraV1, 5}: {Width: 1296, Height: 730, Stride: 1632, TotalBytes: 1233920},
	{CameraV1, 6}: {Width: 640, Height: 480, Stride: 832, TotalBytes: 445440},
	{CameraV1, 7}: {Width: 640, Height: 480, Stride: 832, TotalBytes: 445440},

	{CameraV2, 0}: {Width: 3280, Height: 2464, Stride: 4128, TotalBytes: 10270208},
	{CameraV2, 1}: {Width: 1920, Height: 1080, Stride: 2432, TotalBytes: 2678784},
	{CameraV2, 2}: {Width: 3280, Height: 2464, Stride: 4128, TotalBytes: 10270208},
	{CameraV2, 3}: {Width: 3280, Height: 2464, Stride: 4128, TotalBytes: 10270208},
	{CameraV2, 4}: {Width: 1640, Height: 1232, Stride: 2080, TotalBytes: 2628608},
	{CameraV2, 5}: {Width: 1640, Height: 922, Stride: 2080, TotalBytes: 1963008},
	{CameraV2, 6}: {Width: 1280, Height: 720, Stride: 1632, TotalBytes: 1233920},
	{CameraV2, 7}: {Width: 640, Height: 480, Stride: 832, TotalBytes: 445440},
}

// LookupMode returns the raw block geometry for a (version, mode) pair.
func LookupMode(version CameraVersion, mode int) (ModeGeometry, error) {
	g, ok := modeTable[modeKey{version, mode}]
	if !ok {
		return ModeGeometry{}, fmt.Errorf("lookup %v mode %d: %w", version, mode, ErrUnsupportedMode)
	}
	return g, nil
}
