package effects

import (
	"badge/lcd"
	"badge/raster"
)

const barLength = 80

// GradientBars samples a vertical line of img from the center upward, then
// draws it as pairs of mirrored one-pixel bars sweeping across the panel with
// randomly walking lengths, rounds times. It ends with a full blit of img.
func (e *Engine) GradientBars(img raster.Image, rounds int) error {
	if err := requireFull(img); err != nil {
		return err
	}
	g := raster.Gradient(img, 120, 120, 120, 120-barLength, barLength).SwapXY()
	mirrored := g.MirrorGradient()
	return e.run("gradient-bars", func() error {
		if err := e.full(img); err != nil {
			return err
		}
		for k := 0; k < rounds; k++ {
			d := 8
			for x := 0; x < lcd.Width; x++ {
				d += int(e.rnd.NextU8()/64) - 2
				if d < 0 {
					d = 0
				}
				if d > barLength-1 {
					d = barLength - 1
				}
				rows := uint8(barLength - d)
				if err := e.dev.BlitClamped(uint8(x), uint8(d), mirrored, rows); err != nil {
					return err
				}
				if err := e.dev.BlitClamped(uint8(x), uint8(120-d), g, rows); err != nil {
					return err
				}
			}
		}
		return e.full(img)
	})
}
