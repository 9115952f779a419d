package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vearutop/picamraw"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "extract":
		if err := runExtract(os.Args[2:]); err != nil {
			fail(err)
		}
	case "info":
		if err := runInfo(os.Args[2:]); err != nil {
			fail(err)
		}
	case "detect":
		if err := runDetect(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: rawtool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  extract -in capture.jpg -out out.png -camera v1|v2 [-mode 0] [-hflip] [-vflip] [-max-w 0] [-max-h 0]")
	fmt.Fprintln(os.Stderr, "  info    -in capture.jpg -camera v1|v2 [-mode 0] [-hflip] [-vflip]")
	fmt.Fprintln(os.Stderr, "  detect  -in capture.jpg")
	fmt.Fprintln(os.Stderr, "Flip flags default to the preview's EXIF orientation when present.")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func parseCamera(s string) (picamraw.CameraVersion, error) {
	switch strings.ToLower(s) {
	case "v1", "ov5647":
		return picamraw.CameraV1, nil
	case "v2", "imx219":
		return picamraw.CameraV2, nil
	}
	return 0, fmt.Errorf("unknown camera %q (want v1 or v2)", s)
}

// decodeArgs loads the capture and applies EXIF orientation defaults for
// flip flags the user did not set explicitly.
func decodeArgs(fs *flag.FlagSet, inPath, camera string, mode int, hFlip, vFlip bool) (*picamraw.RawBayer, error) {
	version, err := parseCamera(camera)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Clean(inPath))
	if err != nil {
		return nil, err
	}
	hSet, vSet := false, false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "hflip":
			hSet = true
		case "vflip":
			vSet = true
		}
	})
	if eh, ev, ok := picamraw.OrientationFlips(data); ok {
		if !hSet {
			hFlip = eh
		}
		if !vSet {
			vFlip = ev
		}
	}
	return picamraw.DecodeBytes(data, version, mode, hFlip, vFlip)
}

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	inPath := fs.String("in", "", "input JPEG+RAW capture")
	outPath := fs.String("out", "", "output PNG")
	camera := fs.String("camera", "", "camera version: v1 or v2")
	mode := fs.Int("mode", 0, "sensor mode")
	hFlip := fs.Bool("hflip", false, "horizontal flip")
	vFlip := fs.Bool("vflip", false, "vertical flip")
	maxW := fs.Uint("max-w", 0, "thumbnail max width, 0 for full size")
	maxH := fs.Uint("max-h", 0, "thumbnail max height, 0 for full size")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" || *camera == "" {
		return errors.New("missing required arguments")
	}
	raw, err := decodeArgs(fs, *inPath, *camera, *mode, *hFlip, *vFlip)
	if err != nil {
		return err
	}
	var img image.Image
	if *maxW > 0 && *maxH > 0 {
		img, err = raw.Thumbnail(*maxW, *maxH)
	} else {
		img, err = raw.Image()
	}
	if err != nil {
		return err
	}
	out, err := os.Create(filepath.Clean(*outPath))
	if err != nil {
		return err
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return err
	}
	return out.Close()
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	inPath := fs.String("in", "", "input JPEG+RAW capture")
	camera := fs.String("camera", "", "camera version: v1 or v2")
	mode := fs.Int("mode", 0, "sensor mode")
	hFlip := fs.Bool("hflip", false, "horizontal flip")
	vFlip := fs.Bool("vflip", false, "vertical flip")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *camera == "" {
		return errors.New("missing required arguments")
	}
	raw, err := decodeArgs(fs, *inPath, *camera, *mode, *hFlip, *vFlip)
	if err != nil {
		return err
	}
	info := struct {
		Width      int                 `json:"width"`
		Height     int                 `json:"height"`
		BayerOrder string              `json:"bayer_order"`
		Header     *picamraw.RawHeader `json:"header,omitempty"`
	}{
		Width:      raw.Bayer.Width,
		Height:     raw.Bayer.Height,
		BayerOrder: raw.Order.String(),
		Header:     raw.Header,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

func runDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	inPath := fs.String("in", "", "input JPEG+RAW capture")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}
	f, err := os.Open(filepath.Clean(*inPath))
	if err != nil {
		return err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return err
	}
	matches := picamraw.DetectModes(io.NewSectionReader(f, 0, st.Size()))
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "no raw block found")
		return nil
	}
	for _, m := range matches {
		fmt.Fprintf(os.Stdout, "%s mode %d: %dx%d (%d bytes)\n",
			m.Version, m.Mode, m.Geometry.Width, m.Geometry.Height, m.Geometry.TotalBytes)
	}
	return nil
}
