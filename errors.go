package picamraw

import "errors"

var (
	// ErrUnsupportedMode reports a (camera version, sensor mode) pair that
	// is not in the known geometry table.
	ErrUnsupportedMode = errors.New("picamraw: unsupported camera version or sensor mode")
	// ErrTruncatedFile reports a file too short to hold the raw block, or a
	// block that does not start with the BRCM magic.
	ErrTruncatedFile = errors.New("picamraw: truncated file")
	// ErrCorruptRawBlock reports a raw block with fewer readable bytes than
	// its geometry requires.
	ErrCorruptRawBlock = errors.New("picamraw: corrupt raw block")
	// ErrInvalidShape reports a channel reconstruction on a bayer array with
	// odd dimensions.
	ErrInvalidShape = errors.New("picamraw: invalid array shape")
)
