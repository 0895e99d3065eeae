package raster

import "fmt"

// Arena sizes used by the effects.
const (
	Arena8K  = 8192
	Arena512 = 512
)

// Buffer is a mutable image backed by a fixed-size arena. Its logical size can
// change after construction as long as it keeps fitting in the arena.
type Buffer struct {
	w, h  uint8
	arena []byte
}

// New8K returns an image on an 8 KiB arena. If w*h pixels do not fit, the
// height is reduced until they do.
func New8K(w, h uint8) *Buffer { return newBuffer(make([]byte, Arena8K), w, h) }

// New512 returns an image on a 512 byte arena, clamped like New8K.
func New512(w, h uint8) *Buffer { return newBuffer(make([]byte, Arena512), w, h) }

func newBuffer(arena []byte, w, h uint8) *Buffer {
	if w > 0 && 2*int(w)*int(h) > len(arena) {
		h = uint8(len(arena) / int(w) / 2)
	}
	return &Buffer{w: w, h: h, arena: arena}
}

func (b *Buffer) Width() uint8   { return b.w }
func (b *Buffer) Height() uint8  { return b.h }
func (b *Buffer) Buffer() []byte { return b.arena[:2*int(b.w)*int(b.h)] }

// Capacity returns the arena size in bytes.
func (b *Buffer) Capacity() int { return len(b.arena) }

func (b *Buffer) SetRaw(x, y uint8, c [2]byte) error {
	off := offset(b, x, y)
	b.arena[off] = c[0]
	b.arena[off+1] = c[1]
	return nil
}

// Resize changes the logical dimensions without touching the arena contents.
func (b *Buffer) Resize(w, h uint8) error {
	if 2*int(w)*int(h) > len(b.arena) {
		return fmt.Errorf("%w: %dx%d does not fit in %d bytes", ErrInvalidOperation, w, h, len(b.arena))
	}
	b.w, b.h = w, h
	return nil
}

// SwapXY exchanges width and height. The buffer contents are reinterpreted,
// not transposed.
func (b *Buffer) SwapXY() *Buffer {
	b.w, b.h = b.h, b.w
	return b
}

// MirrorGradient returns a copy with the pixel order reversed. Source pixel i
// lands at destination index count-i, so destination pixel 0 stays zero and
// source pixel 0 is written one pixel past the logical end, inside the arena.
// When the image fills its whole arena there is no such pixel and source
// pixel 0 is dropped.
func (b *Buffer) MirrorGradient() *Buffer {
	g := newBuffer(make([]byte, len(b.arena)), b.w, b.h)
	count := int(b.w) * int(b.h)
	for i := 0; i < count; i++ {
		j := 2 * (count - i)
		if j+1 >= len(g.arena) {
			continue
		}
		g.arena[j] = b.arena[2*i]
		g.arena[j+1] = b.arena[2*i+1]
	}
	return g
}

// Gradient samples img along the line from (x0, y0) to (x1, y1) at count
// evenly spaced integer positions and returns them as a count x 1 image.
// Positions use truncating integer division; there is no sub-pixel blending.
func Gradient(img Image, x0, y0, x1, y1, count uint8) *Buffer {
	g := New512(count, 1)
	dx := int(x1) - int(x0)
	dy := int(y1) - int(y0)
	for i := 0; i < int(count); i++ {
		x := int(x0) + dx*i/int(count)
		y := int(y0) + dy*i/int(count)
		px := RawAt(img, uint8(x), uint8(y))
		g.arena[2*i], g.arena[2*i+1] = px[0], px[1]
	}
	return g
}
