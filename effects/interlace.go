package effects

import (
	"badge/lcd"
	"badge/raster"
)

const interlaceGroups = lcd.Height/4 - 4

// Interlaced sweeps the image in from both edges over four scripted passes,
// then blits it.
func (e *Engine) Interlaced(img raster.Image) error {
	if err := requireFull(img); err != nil {
		return err
	}
	src := source(img.Buffer())
	return e.run("interlaced", func() error {
		var steps [][2]int
		for j := 0; j < 16; j++ {
			steps = append(steps, [2]int{15 - j, 0})
		}
		steps = append(steps, [2]int{0, 2})
		for j := 0; j < 16; j++ {
			steps = append(steps, [2]int{j, 0}, [2]int{15 - j, 2})
		}
		steps = append(steps, [2]int{0, 0})
		for j := 0; j < 16; j++ {
			steps = append(steps, [2]int{15 - j, 0}, [2]int{j, 2})
		}
		steps = append(steps, [2]int{0, 0})
		for j := 0; j < 16; j++ {
			steps = append(steps, [2]int{15 - j, 0}, [2]int{15 - j, 2})
		}
		for _, s := range steps {
			if err := e.interlacePass(src, s[0], s[1]); err != nil {
				return err
			}
		}
		return e.full(img)
	})
}

// interlacePass draws, for every fourth row starting at oy, the start of the
// row squeezed between ox and width-ox, and the same pixels left-aligned on
// the row below.
func (e *Engine) interlacePass(src source, ox, oy int) error {
	for i := 0; i < interlaceGroups; i++ {
		y := oy + 4*i
		row := src.row(y)
		n := lcd.Width - 2*ox
		if err := e.dev.SetWindow(uint8(ox), uint8(y), uint8(ox+n), uint8(y+1)); err != nil {
			return err
		}
		if err := e.dev.StreamLE(row[:2*n]); err != nil {
			return err
		}
		n = lcd.Width - ox
		if err := e.dev.SetWindow(0, uint8(y+1), uint8(n), uint8(y+2)); err != nil {
			return err
		}
		if err := e.dev.StreamLE(row[:2*n]); err != nil {
			return err
		}
	}
	return nil
}
