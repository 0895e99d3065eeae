//go:build !tinygo && cgo

package hal

import (
	"context"
	"errors"
	"image"

	"badge/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window showing the simulated panel at 2x while
// run drives it from another goroutine. It blocks until the window closes or
// run returns, and reports run's error.
func RunWindow(run func(context.Context, HAL) error, cfg HostConfig) error {
	if cfg.SPI.Port != "" {
		return errors.New("window mode needs the simulated panel; drop -spi")
	}
	hh, err := NewHost(cfg)
	if err != nil {
		return err
	}
	h := hh.(*hostHAL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- run(ctx, h) }()

	g := &hostGame{panel: h.panel, done: done}
	ebiten.SetWindowTitle("badge (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.panel.Width()*2, h.panel.Height()*2)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errRunFinished) {
		return err
	}
	if g.finished {
		return g.err
	}
	cancel()
	return <-done
}

var errRunFinished = errors.New("run finished")

type hostGame struct {
	panel *Panel
	img   *image.RGBA
	pimg  *ebiten.Image
	done  <-chan error

	finished bool
	err      error
}

func (g *hostGame) Update() error {
	select {
	case err := <-g.done:
		g.finished = true
		g.err = err
		return errRunFinished
	default:
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.pimg == nil {
		g.pimg = ebiten.NewImage(g.panel.Width(), g.panel.Height())
	}
	g.img = g.panel.SnapshotRGBA(g.img)
	g.pimg.WritePixels(g.img.Pix)
	screen.DrawImage(g.pimg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.panel.Width(), g.panel.Height()
}
