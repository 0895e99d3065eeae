//go:build tinygo

package main

import (
	"context"

	"badge/app"
	"badge/hal"
)

func main() {
	h := hal.New()
	err := app.Run(context.Background(), h, app.DefaultPlaylist(), app.Config{
		SkipFailed: true,
		Banner:     true,
	})
	if err != nil {
		h.Logger().WriteLineString("halted: " + err.Error())
	}
	select {}
}
