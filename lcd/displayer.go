package lcd

import (
	"fmt"
	"image/color"

	"badge/raster"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Device)(nil)

// Size returns the panel size in the current rotation.
func (d *Device) Size() (x, y int16) { return Width, Height }

// SetPixel draws one pixel through a 1x1 window. Pixels outside the panel are
// ignored. A transport fault is kept and reported by the next Display call,
// since the drivers.Displayer signature has no error.
func (d *Device) SetPixel(x, y int16, c color.RGBA) {
	if d.err != nil || x < 0 || y < 0 || x >= Width || y >= Height {
		return
	}
	if err := d.SetWindow(uint8(x), uint8(y), uint8(x)+1, uint8(y)+1); err != nil {
		d.err = err
		return
	}
	if err := d.StreamPixels([]uint16{raster.RGB565(c.R, c.G, c.B)}); err != nil {
		d.err = err
	}
}

// Display reports, and clears, the first error seen by SetPixel, SetScroll
// or FillRectangle since the last call. Drawing is unbuffered, so there is
// nothing to flush.
func (d *Device) Display() error {
	err := d.err
	d.err = nil
	return err
}

// FillRectangle fills a clipped rectangle given as origin plus size.
func (d *Device) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0, y0 := clamp(x), clamp(y)
	x1, y1 := clamp(x+width), clamp(y+height)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	return d.FillRect(uint8(x0), uint8(y0), uint8(x1), uint8(y1), raster.RGB565(c.R, c.G, c.B))
}

func clamp(v int16) int16 {
	if v < 0 {
		return 0
	}
	if v > Width {
		return Width
	}
	return v
}

// SetScroll sets the first displayed line of the vertical scroll area, which
// covers the whole panel.
func (d *Device) SetScroll(line int16) {
	if d.err != nil {
		return
	}
	if line < 0 {
		line = 0
	}
	line %= Height
	if err := d.command([]byte{cmdVSCRDEF}, []byte{0, 0, 0, Height, 0, 0}); err != nil {
		d.err = err
		return
	}
	if err := d.command([]byte{cmdVSCRSAD}, []byte{byte(line >> 8), byte(line)}); err != nil {
		d.err = err
	}
}

// SetRotation changes the scan direction. The panel is square, so Size does
// not change.
func (d *Device) SetRotation(r drivers.Rotation) error {
	var m byte
	switch r {
	case drivers.Rotation0:
		m = madctlVertical
	case drivers.Rotation90:
		m = madctlMX | madctlMV | madctlBGR
	case drivers.Rotation180:
		m = madctlHorizontal
	case drivers.Rotation270:
		m = madctlMY | madctlMV | madctlBGR
	default:
		return fmt.Errorf("%w: rotation %d", raster.ErrInvalidOperation, r)
	}
	if err := d.command([]byte{cmdMADCTL}, []byte{m}); err != nil {
		return err
	}
	d.rotation = r
	return nil
}

// Rotation returns the rotation last set.
func (d *Device) Rotation() drivers.Rotation { return d.rotation }
