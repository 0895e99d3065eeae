package effects

import (
	"fmt"

	"badge/lcd"
	"badge/raster"
)

// Draw counts of the built-in noise reveals. They leave most, not all,
// pixels touched; the closing full blit covers the rest.
const (
	noise1Tiles      = 400000
	noise20Tiles     = 10000
	noiseJitterTiles = 20000
)

// Noise1 reveals img one random pixel at a time.
func (e *Engine) Noise1(img raster.Image) error {
	return e.noiseReveal("noise1", img, 1, lcd.Width, noise1Tiles)
}

// Noise20 reveals img in random 20 pixel wide strips.
func (e *Engine) Noise20(img raster.Image) error {
	return e.noiseReveal("noise20", img, 20, lcd.Width-20, noise20Tiles)
}

// NoiseTiles reveals img in count random strips of the given width. Strips
// may start at any column that keeps them on the panel.
func (e *Engine) NoiseTiles(img raster.Image, width uint8, count int) error {
	if width == 0 || int(width) > lcd.Width {
		return fmt.Errorf("%w: tile width %d", raster.ErrInvalidOperation, width)
	}
	return e.noiseReveal(fmt.Sprintf("noise-tiles-%d", width), img, width, lcd.Width+1-int(width), count)
}

// noiseReveal draws count tiles of width pixels taken from img at
// (NextU8 % xmod, NextU8 % 240), then blits img.
func (e *Engine) noiseReveal(name string, img raster.Image, width uint8, xmod, count int) error {
	if err := requireFull(img); err != nil {
		return err
	}
	src := source(img.Buffer())
	return e.run(name, func() error {
		for i := 0; i < count; i++ {
			x := uint8(int(e.rnd.NextU8()) % xmod)
			y := uint8(int(e.rnd.NextU8()) % lcd.Height)
			if err := e.tile(src, x, y, x, y, width); err != nil {
				return err
			}
		}
		return e.full(img)
	})
}

// NoiseJitter reveals img in 11 pixel strips drawn slightly away from where
// they were sampled. The displacement shrinks over three passes (10, 5 and 2
// pixels).
func (e *Engine) NoiseJitter(img raster.Image) error {
	if err := requireFull(img); err != nil {
		return err
	}
	const width = 11
	src := source(img.Buffer())
	return e.run("noise-jitter", func() error {
		for _, d := range []int{10, 5, 2} {
			for i := 0; i < noiseJitterTiles; i++ {
				x := int(e.rnd.NextU8()) % (lcd.Width - width - d)
				y := int(e.rnd.NextU8()) % (lcd.Height - d)
				ox := int(e.rnd.NextU8()) % d
				oy := int(e.rnd.NextU8()) % d
				if err := e.tile(src, uint8(x), uint8(y), uint8(x+ox), uint8(y+oy), width); err != nil {
					return err
				}
			}
		}
		return e.full(img)
	})
}

// tile copies width pixels of row sy starting at sx to (dx, dy).
func (e *Engine) tile(src source, sx, sy, dx, dy, width uint8) error {
	if err := e.dev.SetWindow(dx, dy, dx+width, dy+1); err != nil {
		return err
	}
	o := 2 * (int(sy)*lcd.Width + int(sx))
	return e.dev.StreamLE(src[o : o+2*int(width)])
}

// NoiseSquares paints n-1 concentric squares of random pixels growing from
// (cx, cy), the largest with a half-size of n-1.
func (e *Engine) NoiseSquares(cx, cy, n uint8) error {
	return e.run("noise-squares", func() error {
		for i := uint8(1); i < n; i++ {
			if i > cx || i > cy || int(cx)+int(i) > lcd.Width || int(cy)+int(i) > lcd.Height {
				return fmt.Errorf("%w: square %d around (%d,%d) leaves the panel", raster.ErrInvalidOperation, i, cx, cy)
			}
			if err := e.dev.NoiseRect(cx-i, cy-i, cx+i, cy+i, e.rnd); err != nil {
				return err
			}
		}
		return nil
	})
}
