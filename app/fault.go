package app

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"badge/hal"
	"badge/lcd"

	"tinygo.org/x/drivers"
)

// showFault logs err and, if the panel still answers, paints it on a white
// screen. Drawing errors are dropped: the bus is usually what failed.
func showFault(dev *lcd.Device, log hal.Logger, err error) {
	log.WriteLineString("fault: " + err.Error())

	if dev.SetRotation(drivers.Rotation0) != nil {
		return
	}
	if dev.FillRect(0, 0, lcd.Width, lcd.Height, 0xFFFF) != nil {
		return
	}
	lines := []string{"", "", "", "", "fault:"}
	lines = append(lines, strings.Split(err.Error(), ": ")...)
	drawLines(dev, lines, 0, color.RGBA{A: 0xFF})
	_ = dev.Display()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
