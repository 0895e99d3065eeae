package effects

import (
	"badge/lcd"
	"badge/raster"
)

const (
	logicFrames = 50
	triFrames   = 30
)

// Logic ORs each pixel's four neighbours at distance tt, with tt shrinking
// from 50 to 0. Pixels whose neighbourhood leaves the panel are white.
// Colors are combined as raw 16-bit words, not per channel.
func (e *Engine) Logic(img raster.Image) error {
	return e.neighbourhood("logic", img, 0xFFFF, func(src source, x, y, tt int) uint16 {
		return src.at(x-tt, y) | src.at(x+tt, y) | src.at(x, y-tt) | src.at(x, y+tt)
	})
}

// LogicTri ANDs the left, right and upper neighbours at distance tt. Pixels
// whose neighbourhood leaves the panel are black.
func (e *Engine) LogicTri(img raster.Image) error {
	return e.neighbourhood("logic-tri", img, 0, func(src source, x, y, tt int) uint16 {
		return src.at(x-tt, y) & src.at(x+tt, y) & src.at(x, y-tt)
	})
}

func (e *Engine) neighbourhood(name string, img raster.Image, fill uint16, combine func(src source, x, y, tt int) uint16) error {
	if err := requireFull(img); err != nil {
		return err
	}
	src := source(img.Buffer())
	return e.run(name, func() error {
		return frames(logicFrames, func(_, tt int) error {
			return e.streamRows(sequential, lcd.Height, perPixel(func(x, y int) uint16 {
				if !inside(x-tt, y-tt) || !inside(x+tt, y+tt) {
					return fill
				}
				return combine(src, x, y, tt)
			}))
		})
	})
}

// Tri mixes each pixel with its right and lower neighbours at distance tt as
// p | right & below, over the top-left (240-tt) square; tt shrinks from 30 to
// 0. Row tails beyond the square keep whatever the previous row left there.
func (e *Engine) Tri(img raster.Image) error {
	if err := requireFull(img); err != nil {
		return err
	}
	src := source(img.Buffer())
	return e.run("tri", func() error {
		e.resetRow()
		return frames(triFrames, func(_, tt int) error {
			return e.streamRows(sequential, lcd.Height-tt, func(y int, row []uint16) {
				for x := 0; x < lcd.Width-tt; x++ {
					row[x] = src.at(x, y) | src.at(x+tt, y)&src.at(x, y+tt)
				}
			})
		})
	})
}
