//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host HostConfig
	// Hz is the rate of the progress ticker.
	Hz int
	// Ticks stops the run after that many ticks; 0 runs to completion.
	Ticks uint64
}

// RunHeadless runs the player without opening a window. Every tick logs the
// number of pixels the panel has received since the previous one. When the
// tick budget runs out the context passed to run is cancelled and
// RunHeadless waits for run to return.
func RunHeadless(ctx context.Context, run func(context.Context, HAL) error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 1
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h, err := NewHost(cfg.Host)
	if err != nil {
		return err
	}
	defer Close(h)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- run(ctx, h) }()

	t := time.NewTicker(d)
	defer t.Stop()

	hh := h.(*hostHAL)
	var tick uint64
	var last int
	for {
		select {
		case err := <-done:
			return err
		case <-t.C:
			tick++
			if hh.panel != nil {
				n := hh.panel.PixelsWritten()
				hh.logger.debug(fmt.Sprintf("tick %d: %d pixels", tick, n-last))
				last = n
			}
			if cfg.Ticks > 0 && tick == cfg.Ticks {
				cancel()
			}
		}
	}
}
