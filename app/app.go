// Package app plays playlists of transition effects on the panel.
package app

import (
	"context"
	"fmt"

	"badge/effects"
	"badge/hal"
	"badge/internal/buildinfo"
	"badge/lcd"
	"badge/random"
	"badge/raster"

	"github.com/tanema/gween/ease"
)

// Config controls a playlist run.
type Config struct {
	// Loops is the number of passes over the playlist; 0 loops forever.
	Loops int
	// SkipFailed logs a failing step and moves on instead of stopping.
	SkipFailed bool
	// Seed seeds the effect generator; 0 keeps the default seed.
	Seed uint32
	// Banner shows the boot console before the first step.
	Banner bool
}

type runner struct {
	h   hal.HAL
	log hal.Logger
	dev *lcd.Device
	eng *effects.Engine
}

// Run initializes the panel and plays pl until the loop budget is spent or
// ctx is done. The context is checked between steps only.
func Run(ctx context.Context, h hal.HAL, pl Playlist, cfg Config) error {
	if err := pl.Validate(); err != nil {
		return fmt.Errorf("playlist %s: %w", pl.Name, err)
	}
	log := h.Logger()

	dev := lcd.New(h.Transport())
	if err := dev.Init(h.Delay()); err != nil {
		return fmt.Errorf("lcd init: %w", err)
	}

	rnd := random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	if cfg.Banner {
		lines := []string{
			"badge " + buildinfo.Short(),
			"gc9a01 240x240",
			fmt.Sprintf("playlist %s", pl.Name),
			fmt.Sprintf("%d steps", len(pl.Steps)),
			fmt.Sprintf("seed %d", rnd.State()),
		}
		prev, err := bootConsole(dev, lines)
		if err != nil {
			return fmt.Errorf("boot console: %w", err)
		}
		h.Delay().DelayMs(bannerMs)
		if err := endConsole(dev, prev); err != nil {
			return fmt.Errorf("boot console: %w", err)
		}
	}

	r := &runner{
		h:   h,
		log: log,
		dev: dev,
		eng: effects.New(dev, rnd, effects.WithLogger(log)),
	}
	for loop := 0; cfg.Loops == 0 || loop < cfg.Loops; loop++ {
		for i, s := range pl.Steps {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := r.step(s)
			if err == nil {
				continue
			}
			err = fmt.Errorf("loop %d step %d (%s): %w", loop, i, s.Effect, err)
			if !cfg.SkipFailed {
				showFault(dev, log, err)
				return err
			}
			log.WriteLineString("skipping: " + err.Error())
		}
	}
	return nil
}

func (r *runner) step(s Step) error {
	if err := actions[s.Effect].run(r, s); err != nil {
		return err
	}
	if s.DelayMs > 0 {
		r.h.Delay().DelayMs(s.DelayMs)
	}
	return nil
}

type action struct {
	asset bool
	run   func(r *runner, s Step) error
}

func imageAction(fn func(*effects.Engine, raster.Image) error) action {
	return action{asset: true, run: func(r *runner, s Step) error {
		return fn(r.eng, s.image())
	}}
}

var actions = map[string]action{
	"full":            imageAction((*effects.Engine).Full),
	"interlaced":      imageAction((*effects.Engine).Interlaced),
	"noise1":          imageAction((*effects.Engine).Noise1),
	"noise20":         imageAction((*effects.Engine).Noise20),
	"noise-jitter":    imageAction((*effects.Engine).NoiseJitter),
	"wave":            imageAction((*effects.Engine).Wave),
	"wave-sequential": imageAction((*effects.Engine).WaveSequential),
	"ripple":          imageAction((*effects.Engine).Ripple),
	"rotate":          imageAction((*effects.Engine).Rotate),
	"logic":           imageAction((*effects.Engine).Logic),
	"logic-tri":       imageAction((*effects.Engine).LogicTri),
	"tri":             imageAction((*effects.Engine).Tri),

	"shift": {asset: true, run: func(r *runner, s Step) error {
		return r.eng.HorizontalShift(s.image(), s.Offset)
	}},
	"shift-sweep": {asset: true, run: func(r *runner, s Step) error {
		frames := s.Frames
		if frames <= 0 {
			frames = 60
		}
		var fn ease.TweenFunc
		if s.Ease != "" {
			fn = easings[s.Ease]
		}
		return r.eng.ShiftSweep(s.image(), s.From, s.To, frames, fn)
	}},
	"noise-tiles": {asset: true, run: func(r *runner, s Step) error {
		w, err := u8("width", s.Width)
		if err != nil {
			return err
		}
		return r.eng.NoiseTiles(s.image(), w, s.Count)
	}},
	"gradient-bars": {asset: true, run: func(r *runner, s Step) error {
		rounds := s.Rounds
		if rounds <= 0 {
			rounds = 1
		}
		return r.eng.GradientBars(s.image(), rounds)
	}},

	"noise-squares": {run: func(r *runner, s Step) error {
		x, err := u8("x", s.X)
		if err != nil {
			return err
		}
		y, err := u8("y", s.Y)
		if err != nil {
			return err
		}
		n, err := u8("n", s.N)
		if err != nil {
			return err
		}
		return r.eng.NoiseSquares(x, y, n)
	}},
	"clear": {run: func(r *runner, s Step) error {
		return r.eng.Clear(s.Color)
	}},
	"led-on": {run: func(r *runner, _ Step) error {
		r.h.LED().High()
		return nil
	}},
	"led-off": {run: func(r *runner, _ Step) error {
		r.h.LED().Low()
		return nil
	}},
	"delay": {run: func(*runner, Step) error { return nil }},
}

func u8(name string, v int) (uint8, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("%w: %s %d out of range", raster.ErrInvalidOperation, name, v)
	}
	return uint8(v), nil
}
