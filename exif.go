package picamraw

import (
	"bytes"
	"encoding/binary"
)

const (
	markerStart = 0xFF
	markerSOI   = 0xD8
	markerEOI   = 0xD9
	markerSOS   = 0xDA
	markerAPP1  = 0xE1
)

var exifSig = []byte{'E', 'x', 'i', 'f', 0, 0}

const orientationTag = 0x0112

// OrientationFlips reads the EXIF orientation of the compressed preview and
// translates it to mirror flags. Orientations 1..4 are pure flips and map
// directly; 5..8 involve a transpose the sensor never applies, so they (and
// a missing tag) report ok=false.
func OrientationFlips(jpegData []byte) (hFlip, vFlip bool, ok bool) {
	exif := findExifSegment(jpegData)
	if exif == nil {
		return false, false, false
	}
	orientation, ok := findOrientation(exif[len(exifSig):])
	if !ok {
		return false, false, false
	}
	switch orientation {
	case 1:
		return false, false, true
	case 2:
		return true, false, true
	case 3:
		return true, true, true
	case 4:
		return false, true, true
	}
	return false, false, false
}

// findExifSegment walks the preview's APP segments for the EXIF APP1
// payload. The scan stops at the first SOS; the raw block is far past it.
func findExifSegment(data []byte) []byte {
	if len(data) < 4 || data[0] != markerStart || data[1] != markerSOI {
		return nil
	}
	pos := 2
	for pos+3 < len(data) {
		if data[pos] != markerStart {
			pos++
			continue
		}
		for pos < len(data) && data[pos] == markerStart {
			pos++
		}
		if pos >= len(data) {
			return nil
		}
		marker := data[pos]
		pos++
		if marker == markerSOS || marker == markerEOI {
			return nil
		}
		if marker >= 0xD0 && marker <= 0xD7 || marker == 0x01 || marker == markerSOI {
			continue
		}
		if pos+1 >= len(data) {
			return nil
		}
		segLen := int(binary.BigEndian.Uint16(data[pos:]))
		if segLen < 2 || pos+segLen > len(data) {
			return nil
		}
		segStart := pos + 2
		segEnd := pos + segLen
		if marker == markerAPP1 && bytes.HasPrefix(data[segStart:segEnd], exifSig) {
			return data[segStart:segEnd]
		}
		pos = segEnd
	}
	return nil
}

// findOrientation walks IFD0 of a TIFF blob for the orientation tag.
func findOrientation(tiff []byte) (uint16, bool) {
	if len(tiff) < 8 {
		return 0, false
	}
	var order binary.ByteOrder
	switch {
	case tiff[0] == 0x4D && tiff[1] == 0x4D:
		order = binary.BigEndian
	case tiff[0] == 0x49 && tiff[1] == 0x49:
		order = binary.LittleEndian
	default:
		return 0, false
	}
	if order.Uint16(tiff[2:4]) != 0x002A {
		return 0, false
	}
	ifdPos := int(order.Uint32(tiff[4:8]))
	if ifdPos < 0 || ifdPos+2 > len(tiff) {
		return 0, false
	}
	tagCount := int(order.Uint16(tiff[ifdPos : ifdPos+2]))
	ifdPos += 2
	for i := 0; i < tagCount; i++ {
		if ifdPos+12 > len(tiff) {
			return 0, false
		}
		tag := order.Uint16(tiff[ifdPos : ifdPos+2])
		typ := order.Uint16(tiff[ifdPos+2 : ifdPos+4])
		if tag == orientationTag && typ == 3 { // SHORT
			return order.Uint16(tiff[ifdPos+8 : ifdPos+10]), true
		}
		ifdPos += 12
	}
	return 0, false
}
