// Package lcd drives a 240x240 GC9A01-class RGB565 controller over a
// hal.Transport.
//
// Drawing always follows the same protocol: program an address window, then
// stream exactly width*height big-endian pixels into it.
package lcd

import (
	"errors"
	"fmt"

	"badge/hal"
	"badge/random"
	"badge/raster"

	"tinygo.org/x/drivers"
)

// Panel geometry.
const (
	Width  = 240
	Height = 240
)

const (
	cmdSLPOUT  = 0x11
	cmdINVON   = 0x21
	cmdDISPON  = 0x29
	cmdCASET   = 0x2A
	cmdRASET   = 0x2B
	cmdRAMWR   = 0x2C
	cmdVSCRDEF = 0x33
	cmdTEON    = 0x35
	cmdMADCTL  = 0x36
	cmdVSCRSAD = 0x37
	cmdCOLMOD  = 0x3A
)

// MADCTL values.
const (
	madctlMY  = 0x80
	madctlMX  = 0x40
	madctlMV  = 0x20
	madctlBGR = 0x08

	madctlHorizontal = madctlMY | madctlMX | madctlBGR
	madctlVertical   = madctlBGR
)

const chunkBytes = 4096

var (
	// ErrTransportFault wraps any failure reported by the transport.
	ErrTransportFault = errors.New("lcd: transport fault")

	// ErrInvalidWindow is returned for windows outside 0 <= start < end <= 240.
	ErrInvalidWindow = fmt.Errorf("%w: lcd window", raster.ErrInvalidOperation)
)

// Device is the window/stream layer on top of a transport. It is not safe for
// concurrent use.
type Device struct {
	t        hal.Transport
	chunk    []byte
	rotation drivers.Rotation
	err      error
}

// New returns a Device writing through t. Init must run before drawing.
func New(t hal.Transport) *Device {
	return &Device{t: t, chunk: make([]byte, chunkBytes)}
}

func (d *Device) command(cmd []byte, data []byte) error {
	if err := d.t.SendCommand(cmd); err != nil {
		return fmt.Errorf("%w: command %#02x: %w", ErrTransportFault, cmd[len(cmd)-1], err)
	}
	if len(data) == 0 {
		return nil
	}
	return d.data(data)
}

func (d *Device) data(b []byte) error {
	if err := d.t.SendData(b); err != nil {
		return fmt.Errorf("%w: data: %w", ErrTransportFault, err)
	}
	return nil
}

// Init replays the controller setup, wakes the panel and turns it on. It
// waits 120 ms after sleep out and 20 ms after display on.
func (d *Device) Init(delay hal.Delay) error {
	for _, w := range initSequence {
		if err := d.command(w.cmd, w.data); err != nil {
			return err
		}
	}
	if err := d.command([]byte{cmdSLPOUT}, nil); err != nil {
		return err
	}
	delay.DelayMs(120)
	if err := d.command([]byte{cmdDISPON}, nil); err != nil {
		return err
	}
	delay.DelayMs(20)
	// The table's last MADCTL write is BGR only.
	d.rotation = drivers.Rotation0
	return d.command([]byte{cmdINVON}, nil)
}

// SetWindow programs the address window [x0, x1) x [y0, y1) and opens a
// memory write. The controller takes inclusive end coordinates, so x1-1 and
// y1-1 go on the wire.
func (d *Device) SetWindow(x0, y0, x1, y1 uint8) error {
	if x0 >= x1 || y0 >= y1 || x1 > Width || y1 > Height {
		return fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrInvalidWindow, x0, y0, x1, y1)
	}
	if err := d.command([]byte{cmdCASET}, []byte{0x00, x0, 0x00, x1 - 1}); err != nil {
		return err
	}
	if err := d.command([]byte{cmdRASET}, []byte{0x00, y0, 0x00, y1 - 1}); err != nil {
		return err
	}
	return d.command([]byte{cmdRAMWR}, nil)
}

// StreamPixels writes colors into the open window, big-endian.
func (d *Device) StreamPixels(px []uint16) error {
	for len(px) > 0 {
		n := len(px)
		if n > len(d.chunk)/2 {
			n = len(d.chunk) / 2
		}
		for i, c := range px[:n] {
			d.chunk[2*i] = byte(c >> 8)
			d.chunk[2*i+1] = byte(c)
		}
		if err := d.data(d.chunk[:2*n]); err != nil {
			return err
		}
		px = px[n:]
	}
	return nil
}

// StreamLE writes a little-endian pixel buffer into the open window,
// swapping each pixel to wire order. An odd-length buffer is rejected before
// anything is sent.
func (d *Device) StreamLE(buf []byte) error {
	if len(buf)%2 != 0 {
		return fmt.Errorf("%w: pixel buffer of %d bytes", raster.ErrInvalidOperation, len(buf))
	}
	for off := 0; off < len(buf); {
		n := len(d.chunk)
		if remain := len(buf) - off; n > remain {
			n = remain
		}
		src := buf[off : off+n]
		for i := 0; i < n; i += 2 {
			d.chunk[i] = src[i+1]
			d.chunk[i+1] = src[i]
		}
		if err := d.data(d.chunk[:n]); err != nil {
			return err
		}
		off += n
	}
	return nil
}

// Blit draws img with its top-left corner at (x, y).
func (d *Device) Blit(x, y uint8, img raster.Image) error {
	return d.BlitClamped(x, y, img, img.Height())
}

// BlitClamped draws at most maxRows rows of img at (x, y). Nothing is sent
// when no rows remain.
func (d *Device) BlitClamped(x, y uint8, img raster.Image, maxRows uint8) error {
	h := img.Height()
	if maxRows < h {
		h = maxRows
	}
	if h == 0 {
		return nil
	}
	x1, y1 := int(x)+int(img.Width()), int(y)+int(h)
	if x1 > Width || y1 > Height {
		return fmt.Errorf("%w: %dx%d image at (%d,%d)", ErrInvalidWindow, img.Width(), h, x, y)
	}
	if err := d.SetWindow(x, y, uint8(x1), uint8(y1)); err != nil {
		return err
	}
	return d.StreamLE(img.Buffer()[:2*int(img.Width())*int(h)])
}

// FillRect paints [x0, x1) x [y0, y1) with c.
func (d *Device) FillRect(x0, y0, x1, y1 uint8, c uint16) error {
	return d.fillWith(x0, y0, x1, y1, func() uint16 { return c })
}

// NoiseRect paints [x0, x1) x [y0, y1) with NextU16 values from rnd.
func (d *Device) NoiseRect(x0, y0, x1, y1 uint8, rnd *random.Random) error {
	return d.fillWith(x0, y0, x1, y1, rnd.NextU16)
}

func (d *Device) fillWith(x0, y0, x1, y1 uint8, next func() uint16) error {
	if err := d.SetWindow(x0, y0, x1, y1); err != nil {
		return err
	}
	for n := int(x1-x0) * int(y1-y0); n > 0; {
		m := n
		if m > len(d.chunk)/2 {
			m = len(d.chunk) / 2
		}
		for i := 0; i < m; i++ {
			c := next()
			d.chunk[2*i] = byte(c >> 8)
			d.chunk[2*i+1] = byte(c)
		}
		if err := d.data(d.chunk[:2*m]); err != nil {
			return err
		}
		n -= m
	}
	return nil
}
