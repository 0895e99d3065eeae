package effects

import (
	"math"

	"badge/lcd"
	"badge/raster"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Full draws img over the whole panel in one window. Randomized and partial
// effects finish with it.
func (e *Engine) Full(img raster.Image) error {
	if err := requireFull(img); err != nil {
		return err
	}
	return e.full(img)
}

func (e *Engine) full(img raster.Image) error {
	return e.dev.Blit(0, 0, img)
}

// Show draws img at (x, y) without touching the rest of the panel.
func (e *Engine) Show(x, y uint8, img raster.Image) error {
	return e.dev.Blit(x, y, img)
}

// ShowClamped draws at most maxRows rows of img at (x, y).
func (e *Engine) ShowClamped(x, y uint8, img raster.Image, maxRows uint8) error {
	return e.dev.BlitClamped(x, y, img, maxRows)
}

// HorizontalShift draws img rotated left by offset columns: each row is sent
// as [offset, width) followed by [0, offset), in two windows. The offset is
// taken modulo the panel width, so 0 and 240 both draw img unchanged.
func (e *Engine) HorizontalShift(img raster.Image, offset int) error {
	if err := requireFull(img); err != nil {
		return err
	}
	return e.shift(source(img.Buffer()), offset)
}

func (e *Engine) shift(src source, offset int) error {
	off := ((offset % lcd.Width) + lcd.Width) % lcd.Width
	split := uint8(lcd.Width - off)
	for y := 0; y < lcd.Height; y++ {
		row := src.row(y)
		if err := e.dev.SetWindow(0, uint8(y), split, uint8(y)+1); err != nil {
			return err
		}
		if err := e.dev.StreamLE(row[2*off:]); err != nil {
			return err
		}
		if off == 0 {
			continue
		}
		if err := e.dev.SetWindow(split, uint8(y), lcd.Width, uint8(y)+1); err != nil {
			return err
		}
		if err := e.dev.StreamLE(row[:2*off]); err != nil {
			return err
		}
	}
	return nil
}

// ShiftSweep draws count horizontal shifts whose offsets are tweened from
// from toward to with fn (ease.Linear when nil). The offset of frame i is the
// tween value at time i, so the last frame stops one step short of to.
func (e *Engine) ShiftSweep(img raster.Image, from, to, count int, fn ease.TweenFunc) error {
	if err := requireFull(img); err != nil {
		return err
	}
	if fn == nil {
		fn = ease.Linear
	}
	return e.run("shift-sweep", func() error {
		src := source(img.Buffer())
		tw := gween.New(float32(from), float32(to), float32(count), fn)
		cur := float32(from)
		for i := 0; i < count; i++ {
			if err := e.shift(src, int(math.Round(float64(cur)))); err != nil {
				return err
			}
			cur, _ = tw.Update(1)
		}
		return nil
	})
}
