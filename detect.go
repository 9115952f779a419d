package picamraw

// ModeMatch is a (version, mode) pair whose raw block geometry fits a file.
type ModeMatch struct {
	Version  CameraVersion
	Mode     int
	Geometry ModeGeometry
}

// DetectModes lists the configurations whose raw block would fit the source
// and whose computed offset carries the block magic. Several modes share a
// block size, so more than one match is common; an empty result means the
// file has no recognizable appended raw block.
func DetectModes(src ByteSource) []ModeMatch {
	var matches []ModeMatch
	for _, version := range []CameraVersion{CameraV1, CameraV2} {
		for mode := 0; mode <= 7; mode++ {
			g, err := LookupMode(version, mode)
			if err != nil {
				continue
			}
			if _, err := locateRawBlock(src, g); err != nil {
				continue
			}
			matches = append(matches, ModeMatch{Version: version, Mode: mode, Geometry: g})
		}
	}
	return matches
}
