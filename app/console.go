package app

import (
	"image/color"
	"strings"

	"badge/lcd"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

const bannerMs = 1500

var consoleFont = &proggy.TinySZ8pt7b

// Proggy metrics for tinyterm.
const (
	consoleFontHeight = 10
	consoleFontOffset = 6
)

// bootConsole clears the panel and prints lines through a terminal, roughly
// centered. The panel is drawn upright; the terminal scrolls in hardware, so
// the text block is pushed up by as many blank lines as sit above it. Call
// endConsole with the returned rotation once the banner has been shown.
func bootConsole(dev *lcd.Device, lines []string) (drivers.Rotation, error) {
	prev := dev.Rotation()
	if err := dev.SetRotation(drivers.Rotation0); err != nil {
		return prev, err
	}
	if err := dev.FillRect(0, 0, lcd.Width, lcd.Height, 0); err != nil {
		return prev, err
	}

	term := tinyterm.NewTerminal(dev)
	term.Configure(&tinyterm.Config{
		Font:       consoleFont,
		FontHeight: consoleFontHeight,
		FontOffset: consoleFontOffset,
	})

	_, cw := tinyfont.LineWidth(consoleFont, "0")
	cols := lcd.Width / int(cw)
	pad := (lcd.Height/consoleFontHeight - len(lines)) / 2
	for _, l := range lines {
		if n := (cols - len(l)) / 2; n > 0 {
			l = strings.Repeat(" ", n) + l
		}
		term.Write([]byte("\n" + l))
	}
	for i := 0; i < pad; i++ {
		term.Write([]byte{'\n'})
	}
	return prev, dev.Display()
}

// endConsole undoes the terminal's scroll and puts back the scan direction
// that was current before bootConsole.
func endConsole(dev *lcd.Device, prev drivers.Rotation) error {
	dev.SetScroll(0)
	if err := dev.Display(); err != nil {
		return err
	}
	return dev.SetRotation(prev)
}

// drawLines writes lines top to bottom from y, wrapping at the panel width.
// It stops at the bottom edge.
func drawLines(d drivers.Displayer, lines []string, y int16, fg color.RGBA) {
	_, cw := tinyfont.LineWidth(consoleFont, "0")
	if cw == 0 {
		return
	}
	cols := int16(lcd.Width / int(cw))
	for _, line := range lines {
		for {
			if y+consoleFontHeight > lcd.Height {
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, consoleFont, 0, y+consoleFontOffset, chunk, fg)
			y += consoleFontHeight
			if line = strings.TrimLeft(rest, " "); line == "" {
				break
			}
		}
	}
}
