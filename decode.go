package picamraw

import (
	"bytes"
	"os"
)

// Decode extracts the raw bayer data appended to a JPEG+RAW capture.
//
// The source is borrowed for the duration of the call only; the returned
// arrays are owned by the result. hFlip and vFlip are the capture's
// orientation mirror flags, normally sourced from EXIF metadata (see
// OrientationFlips).
func Decode(src ByteSource, version CameraVersion, mode int, hFlip, vFlip bool) (*RawBayer, error) {
	g, err := LookupMode(version, mode)
	if err != nil {
		return nil, err
	}
	blockStart, err := locateRawBlock(src, g)
	if err != nil {
		return nil, err
	}
	bayer, err := unpackRawBlock(src, blockStart, g)
	if err != nil {
		return nil, err
	}
	// The embedded header is informational; its absence does not fail the
	// decode once the pixel data has been read.
	header, _ := parseRawHeader(src, blockStart)
	return &RawBayer{
		Bayer:  bayer,
		Order:  ResolveBayerOrder(version, hFlip, vFlip),
		Header: header,
	}, nil
}

// DecodeBytes decodes a capture held in memory.
func DecodeBytes(data []byte, version CameraVersion, mode int, hFlip, vFlip bool) (*RawBayer, error) {
	return Decode(bytes.NewReader(data), version, mode, hFlip, vFlip)
}

// DecodeFile decodes a JPEG+RAW capture from disk.
func DecodeFile(path string, version CameraVersion, mode int, hFlip, vFlip bool) (*RawBayer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data, version, mode, hFlip, vFlip)
}
