//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"badge/app"
	"badge/hal"
	"badge/internal/buildinfo"
)

func main() {
	var cfg hal.HeadlessConfig
	var run app.Config
	var headless, version bool
	var playlist string
	var seed uint

	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 2, "Progress log rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run to completion).")
	flag.StringVar(&playlist, "playlist", "", "YAML playlist to play instead of the built-in one.")
	flag.IntVar(&run.Loops, "loops", 1, "Passes over the playlist (0 = forever).")
	flag.BoolVar(&run.SkipFailed, "skip-failed", false, "Log failing steps and keep going.")
	flag.BoolVar(&run.Banner, "banner", true, "Show the boot console first.")
	flag.UintVar(&seed, "seed", 0, "Effect generator seed (0 = default).")
	flag.BoolVar(&cfg.Host.Fast, "fast", false, "Skip all delays.")
	flag.BoolVar(&cfg.Host.Verbose, "v", false, "Log debug lines.")
	flag.StringVar(&cfg.Host.SPI.Port, "spi", "", "Linux SPI port driving a real panel, e.g. /dev/spidev0.0 (headless only).")
	flag.StringVar(&cfg.Host.SPI.DC, "dc", "GPIO25", "Data/command GPIO for -spi.")
	flag.StringVar(&cfg.Host.SPI.RST, "rst", "GPIO27", "Reset GPIO for -spi.")
	flag.Int64Var(&cfg.Host.SPI.Hz, "spi-hz", 0, "SPI clock for -spi (0 = 40MHz).")
	flag.BoolVar(&version, "version", false, "Print the build and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}
	run.Seed = uint32(seed)

	pl := app.DefaultPlaylist()
	if playlist != "" {
		var err error
		if pl, err = app.LoadPlaylist(playlist); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	play := func(ctx context.Context, h hal.HAL) error {
		return app.Run(ctx, h, pl, run)
	}

	var err error
	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, play, cfg)
	} else {
		err = hal.RunWindow(play, cfg.Host)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
