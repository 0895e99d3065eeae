// Package raster holds the RGB565 image model shared by the display layer and
// the effect engine.
//
// Pixels are stored little-endian, two bytes per pixel, row-major with the
// origin at the top-left corner. Width and height fit in a byte; the display
// itself is 240x240.
package raster

import (
	"errors"
	"fmt"
)

// MaxSide is the largest width or height an image may have.
const MaxSide = 240

var (
	// ErrInvalidOperation is returned for requests the image (or the
	// display built on top of it) cannot honor, such as writing to an
	// immutable asset.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrBadAsset is returned when an asset blob does not match its header.
	ErrBadAsset = errors.New("malformed asset")
)

// Image is read access to a rectangular RGB565 pixel grid.
//
// len(Buffer()) is always 2*Width()*Height().
type Image interface {
	Width() uint8
	Height() uint8
	Buffer() []byte
}

// Mutable is an Image that accepts pixel writes. Immutable variants return
// ErrInvalidOperation from SetRaw.
type Mutable interface {
	Image
	SetRaw(x, y uint8, b [2]byte) error
}

func offset(img Image, x, y uint8) int {
	if x >= img.Width() || y >= img.Height() {
		panic(fmt.Sprintf("raster: pixel (%d,%d) outside %dx%d image", x, y, img.Width(), img.Height()))
	}
	return 2 * (int(x) + int(y)*int(img.Width()))
}

// RawAt returns the two buffer bytes of pixel (x, y).
func RawAt(img Image, x, y uint8) [2]byte {
	off := offset(img, x, y)
	buf := img.Buffer()
	return [2]byte{buf[off], buf[off+1]}
}

// PixelAt returns pixel (x, y) as a packed color.
func PixelAt(img Image, x, y uint8) uint16 {
	off := offset(img, x, y)
	buf := img.Buffer()
	return uint16(buf[off]) + uint16(buf[off+1])*256
}

// SetPixel stores a packed color at (x, y).
func SetPixel(m Mutable, x, y uint8, c uint16) error {
	return m.SetRaw(x, y, [2]byte{byte(c), byte(c >> 8)})
}

// Fill sets every pixel of m to c.
func Fill(m Mutable, c uint16) error {
	for y := uint8(0); y < m.Height(); y++ {
		for x := uint8(0); x < m.Width(); x++ {
			if err := SetPixel(m, x, y, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// Pixels returns a copy of the image as packed colors in row-major order.
func Pixels(img Image) []uint16 {
	buf := img.Buffer()
	out := make([]uint16, len(buf)/2)
	for i := range out {
		out[i] = uint16(buf[2*i]) | uint16(buf[2*i+1])<<8
	}
	return out
}

// RGB565 packs 8-bit channels into a 5-6-5 color.
func RGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}
