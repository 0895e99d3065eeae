// Package effects renders transition animations onto an lcd.Device.
//
// Every effect is a blocking, deterministic pass over its progress range and
// leaves the panel showing its source image. The first transport error
// aborts the effect and is returned unchanged.
package effects

import (
	"fmt"

	"badge/hal"
	"badge/lcd"
	"badge/random"
	"badge/raster"
)

// Engine owns the row scratch buffer and the generator used by the
// randomized effects. It is not safe for concurrent use.
type Engine struct {
	dev *lcd.Device
	rnd *random.Random
	log hal.Logger
	row [lcd.Width]uint16
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger logs effect start, completion and faults to l.
func WithLogger(l hal.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New returns an engine drawing on dev. A nil rnd gets a default-seeded
// generator.
func New(dev *lcd.Device, rnd *random.Random, opts ...Option) *Engine {
	if rnd == nil {
		rnd = random.New()
	}
	e := &Engine{dev: dev, rnd: rnd, log: hal.NopLogger{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Device returns the display the engine draws on.
func (e *Engine) Device() *lcd.Device { return e.dev }

// Random returns the engine's generator.
func (e *Engine) Random() *random.Random { return e.rnd }

func (e *Engine) run(name string, fn func() error) error {
	e.log.WriteLineString("effect " + name + ": start")
	if err := fn(); err != nil {
		e.log.WriteLineString("effect " + name + ": " + err.Error())
		return fmt.Errorf("%s: %w", name, err)
	}
	e.log.WriteLineString("effect " + name + ": done")
	return nil
}

func requireFull(img raster.Image) error {
	if img.Width() != lcd.Width || img.Height() != lcd.Height {
		return fmt.Errorf("%w: need a %dx%d image, have %dx%d",
			raster.ErrInvalidOperation, lcd.Width, lcd.Height, img.Width(), img.Height())
	}
	return nil
}

// source is a full-screen little-endian pixel buffer.
type source []byte

func (s source) at(x, y int) uint16 {
	o := 2 * (y*lcd.Width + x)
	return uint16(s[o]) | uint16(s[o+1])<<8
}

func (s source) row(y int) []byte {
	return s[2*y*lcd.Width : 2*(y+1)*lcd.Width]
}

func inside(x, y int) bool {
	return x >= 0 && x < lcd.Width && y >= 0 && y < lcd.Height
}

// frames calls frame for t = 0..last with tt = last-t.
func frames(last int, frame func(t, tt int) error) error {
	for t := 0; t <= last; t++ {
		if err := frame(t, last-t); err != nil {
			return err
		}
	}
	return nil
}

// Clear fills the whole panel with c.
func (e *Engine) Clear(c uint16) error {
	return e.dev.FillRect(0, 0, lcd.Width, lcd.Height, c)
}
