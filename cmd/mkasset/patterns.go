//go:build !tinygo

package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// patterns are the procedural stand-ins for the photographic assets. Each
// takes coordinates relative to the center of a size x size canvas plus the
// raw coordinates, and returns the color of that pixel.
var patterns = map[string]func(x, y, dx, dy int) colorful.Color{
	"eye":     eye,
	"rings":   rings,
	"checker": checker,
	"sphere":  sphere,
	"plasma":  plasma,
	"stripes": stripes,
}

func generate(name string, size int) (image.Image, error) {
	fn, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q", name)
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b := fn(x, y, x-c, y-c).Clamped().RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	return img, nil
}

// eye is a red lens with a bright core inside a grey rim.
func eye(_, _, dx, dy int) colorful.Color {
	d2 := dx*dx + dy*dy
	switch {
	case d2 < 64:
		return colorful.Hsv(50, 0.6, 1)
	case d2 < 100*100:
		return colorful.Hsv(0, 1, 1-float64(d2)/10000*0.9)
	case d2 < 110*110:
		return colorful.Hsv(0, 0, 0.75)
	}
	return colorful.Color{}
}

// rings are 12 pixel concentric bands on white.
func rings(_, _, dx, dy int) colorful.Color {
	k := int(math.Sqrt(float64(dx*dx+dy*dy))) / 12
	if k%2 == 0 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return colorful.Hsv(210, 0.8, 0.9-float64(k)*0.05)
}

func checker(x, y, _, _ int) colorful.Color {
	cx, cy := x/30, y/30
	if (cx+cy)%2 == 0 {
		return colorful.Hsv(float64((cx*45+cy*20)%360), 0.8, 0.9)
	}
	return colorful.Hsv(0, 0, 0.1)
}

// sphere is a lambert-shaded ball of radius 100 lit from the upper left.
func sphere(_, _, dx, dy int) colorful.Color {
	d2 := dx*dx + dy*dy
	if d2 >= 100*100 {
		return colorful.Color{}
	}
	z := math.Sqrt(float64(10000 - d2))
	norm := math.Sqrt(1 + 1 + 2.25)
	shade := (float64(-dx-dy) + 1.5*z) / (100 * norm)
	if shade < 0 {
		shade = 0
	}
	return colorful.Hsv(200, 0.9, 0.25).BlendRgb(colorful.Hsv(190, 0.3, 1), shade)
}

func plasma(x, y, _, _ int) colorful.Color {
	return colorful.Hsv(float64((x*3+y*2+x*y/64)%360), 1, 1)
}

// stripes are diagonal rainbow bands with dark seams.
func stripes(x, y, _, _ int) colorful.Color {
	if (x+y)%20 < 2 {
		return colorful.Color{}
	}
	return colorful.Hsv(float64((x+y)/20%6*60), 0.9, 0.9)
}
