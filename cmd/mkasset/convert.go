//go:build !tinygo

package main

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// fit scales img to size x size. Images already at that size are returned
// untouched so generated patterns stay exact.
func fit(img image.Image, size int) image.Image {
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// encode packs img into an asset blob. Channels are truncated to 5-6-5 bits
// from their unit-range value; fully transparent pixels become black.
func encode(img image.Image, flip bool) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]byte, 2, 2+2*w*h)
	out[0], out[1] = byte(w), byte(h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := x, y
			if flip {
				sx, sy = w-1-x, h-1-y
			}
			c, _ := colorful.MakeColor(img.At(b.Min.X+sx, b.Min.Y+sy))
			px := pack565(c)
			out = append(out, byte(px), byte(px>>8))
		}
	}
	return out
}

func pack565(c colorful.Color) uint16 {
	c = c.Clamped()
	return uint16(c.R*31)<<11 | uint16(c.G*63)<<5 | uint16(c.B*31)
}
