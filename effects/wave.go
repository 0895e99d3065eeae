package effects

import (
	"badge/lcd"
	"badge/raster"
)

const (
	waveFrames   = 150
	rotateFrames = 200
)

// wave is an odd triangle-like wave with period 2*period: a positive parabolic
// lobe on (0, period) and a negative one on (period, 2*period). Non-positive
// x is reflected to period-x first.
func wave(x, period, amplitude int) int {
	if x <= 0 {
		x = period - x
	}
	x %= 2 * period
	sign := 1
	if x >= period {
		x -= period
		sign = -1
	}
	return sign * x * (period - x) * amplitude / period / period / 4
}

// wave2 squares a unit wave and scales it by amplitude, keeping the sign of x.
func wave2(x, period, amplitude int) int {
	w := wave(x, period, 128)
	ww := amplitude * w * w / 128
	if x > 0 {
		return ww / 16
	}
	return -ww / 16
}

type waveFunc func(x, period, amplitude int) int

// Wave distorts img with two radial waves whose amplitude decays to zero over
// 150 frames. Rows are drawn interlaced.
func (e *Engine) Wave(img raster.Image) error {
	return e.waveEffect("wave", img, interlaced, wave)
}

// WaveSequential is Wave with rows drawn top to bottom.
func (e *Engine) WaveSequential(img raster.Image) error {
	return e.waveEffect("wave-sequential", img, sequential, wave)
}

// Ripple is Wave with a squared vertical component.
func (e *Engine) Ripple(img raster.Image) error {
	return e.waveEffect("ripple", img, interlaced, wave2)
}

func (e *Engine) waveEffect(name string, img raster.Image, order rowOrder, vertical waveFunc) error {
	if err := requireFull(img); err != nil {
		return err
	}
	src := source(img.Buffer())
	return e.run(name, func() error {
		return frames(waveFrames, func(t, tt int) error {
			return e.streamRows(order, lcd.Height, perPixel(func(x, y int) uint16 {
				r2 := ((x-120)*(x-120) + (y-120)*(y-120)) / (10 + t)
				w1 := wave(x+5*t+r2, 30+t/2, tt)
				w2 := vertical(x+r2/2, 20+t, 2*tt)
				xx, yy := x+w1, y+w2
				if !inside(xx, yy) {
					return 0
				}
				return src.at(xx, yy)
			}))
		})
	})
}

// Rotate swirls img around the panel center and unwinds it over 200 frames.
// Samples falling off the panel are replaced by a pattern built from three
// radial terms.
func (e *Engine) Rotate(img raster.Image) error {
	if err := requireFull(img); err != nil {
		return err
	}
	src := source(img.Buffer())
	return e.run("rotate", func() error {
		return frames(rotateFrames, func(t, tt int) error {
			return e.streamRows(interlaced, lcd.Height, perPixel(func(x, y int) uint16 {
				dx, dy := 120-x, 120-y
				xx := x + dy*tt/50
				yy := y - dx*tt/50
				if inside(xx, yy) {
					return src.at(xx, yy)
				}
				r2 := ((x-120)*(x-120) + (y-120)*(y-120)) / (1 + 5*t)
				r3 := ((x-119)*(x-119) + (y-120)*(y-120)) / (1 + t)
				r4 := ((x-122)*(x-120) + (y-120)*(y-120)) / (10 + 10*t)
				return uint16(r2) | uint16(r3) | uint16(r4)
			}))
		})
	})
}
