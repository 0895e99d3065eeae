//go:build !tinygo

package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"badge/raster"

	"github.com/lucasb-eyer/go-colorful"
)

func TestEncode(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.SetRGBA(0, 0, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
	img.SetRGBA(1, 0, color.RGBA{0xFF, 0, 0, 0xFF})
	img.SetRGBA(2, 0, color.RGBA{0x80, 0x80, 0x80, 0xFF})

	tests := []struct {
		flip bool
		want []byte
	}{
		{false, []byte{3, 1, 0xFF, 0xFF, 0x00, 0xF8, 0xEF, 0x7B}},
		{true, []byte{3, 1, 0xEF, 0x7B, 0x00, 0xF8, 0xFF, 0xFF}},
	}
	for _, tt := range tests {
		if got := encode(img, tt.flip); !bytes.Equal(got, tt.want) {
			t.Errorf("flip=%v: % x, want % x", tt.flip, got, tt.want)
		}
	}
}

func TestEncodeTransparentIsBlack(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{0xFF, 0xFF, 0xFF, 0})
	if got := encode(img, false); !bytes.Equal(got, []byte{1, 1, 0, 0}) {
		t.Fatalf("% x", got)
	}
}

func TestPatternsProduceAssets(t *testing.T) {
	for _, name := range patternNames() {
		img, err := generate(name, 240)
		if err != nil {
			t.Fatal(err)
		}
		a, err := raster.ParseAsset(encode(img, true))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if a.Width() != 240 || a.Height() != 240 {
			t.Fatalf("%s: %dx%d", name, a.Width(), a.Height())
		}
	}
	if _, err := generate("nope", 240); err == nil {
		t.Fatal("unknown pattern accepted")
	}
}

func TestPatternPixels(t *testing.T) {
	img, _ := generate("eye", 240)
	r, g, b := colorful.Hsv(50, 0.6, 1).RGB255()
	if got := img.At(120, 120); got != (color.RGBA{r, g, b, 0xFF}) {
		t.Fatalf("eye core = %v", got)
	}
	if got := img.At(0, 0); got != (color.RGBA{0, 0, 0, 0xFF}) {
		t.Fatalf("eye corner = %v", got)
	}

	img, _ = generate("plasma", 240)
	if got := img.At(0, 0); got != (color.RGBA{0xFF, 0, 0, 0xFF}) {
		t.Fatalf("plasma origin = %v", got)
	}
}

func TestFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if fit(src, 10) != image.Image(src) {
		t.Fatal("same-size image should pass through")
	}
	if b := fit(src, 4).Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("bounds %v", b)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 7, 5))); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	img, err := load(path)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 7 || b.Dy() != 5 {
		t.Fatalf("bounds %v", b)
	}
	if _, err := load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("missing file loaded")
	}
}
