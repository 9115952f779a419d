// Package picamraw extracts the raw 10-bit bayer data that Raspberry Pi
// cameras append after the compressed stream in JPEG+RAW captures.
//
// The raw block is the trailing portion of the file; its size is fixed per
// (camera version, sensor mode) pair. Decoding unpacks the packed 10-bit
// pixel stream into a dense 16-bit bayer array and resolves the 2x2 color
// filter arrangement from the camera version and orientation flips, so the
// array can be collapsed to RGB or split into per-channel planes.
package picamraw
