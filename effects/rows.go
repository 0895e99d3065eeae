package effects

import "badge/lcd"

type rowOrder uint8

const (
	sequential rowOrder = iota
	// interlaced draws all even rows, then all odd rows.
	interlaced
)

func (o rowOrder) at(i, n int) int {
	if o == interlaced {
		half := (n + 1) / 2
		if i < half {
			return 2 * i
		}
		return 2*(i-half) + 1
	}
	return i
}

// streamRows is the shared per-row primitive: for each of the first n rows,
// taken in order, fill lets the caller update the row buffer, then the row is
// windowed across the full panel width and streamed. The buffer keeps its
// contents between rows.
func (e *Engine) streamRows(order rowOrder, n int, fill func(y int, row []uint16)) error {
	for i := 0; i < n; i++ {
		y := order.at(i, n)
		fill(y, e.row[:])
		if err := e.dev.SetWindow(0, uint8(y), lcd.Width, uint8(y)+1); err != nil {
			return err
		}
		if err := e.dev.StreamPixels(e.row[:]); err != nil {
			return err
		}
	}
	return nil
}

// perPixel adapts a coordinate function to streamRows.
func perPixel(fn func(x, y int) uint16) func(y int, row []uint16) {
	return func(y int, row []uint16) {
		for x := range row {
			row[x] = fn(x, y)
		}
	}
}

func (e *Engine) resetRow() {
	e.row = [lcd.Width]uint16{}
}
