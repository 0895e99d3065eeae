//go:build !tinygo

// Command mkasset writes display assets: [width][height] followed by
// little-endian RGB565 pixels, row-major.
//
//	mkasset -in robot.png -out robot.b -flip
//	mkasset -pattern sphere -out sphere.b
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input image (png, jpeg, gif, bmp, webp).")
		outPath = flag.String("out", "", "Output .b file.")
		pattern = flag.String("pattern", "", "Generate a built-in pattern instead of converting -in: "+strings.Join(patternNames(), "|")+".")
		size    = flag.Int("size", 240, "Output side length in pixels (1..240).")
		flip    = flag.Bool("flip", false, "Rotate by 180 degrees, for panels mounted upside down.")
	)
	flag.Parse()

	if *outPath == "" || (*inPath == "") == (*pattern == "") {
		fatalf("usage: mkasset (-in image | -pattern name) -out file.b [-size 240] [-flip]")
	}
	if *size < 1 || *size > 240 {
		fatalf("size out of range: %d", *size)
	}

	var img image.Image
	var err error
	if *pattern != "" {
		img, err = generate(*pattern, *size)
	} else {
		img, err = load(*inPath)
	}
	if err != nil {
		fatalf("%v", err)
	}

	blob := encode(fit(img, *size), *flip)
	if err := os.WriteFile(*outPath, blob, 0o644); err != nil {
		fatalf("write %q: %v", *outPath, err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return img, nil
}

func patternNames() []string {
	names := make([]string, 0, len(patterns))
	for n := range patterns {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
