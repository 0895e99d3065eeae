package app

import (
	"errors"
	"fmt"

	"badge/assets"
	"badge/raster"
)

var (
	ErrEmptyPlaylist = errors.New("playlist has no steps")
	ErrUnknownEffect = errors.New("unknown effect")
	ErrUnknownAsset  = errors.New("unknown asset")
	ErrUnknownEase   = errors.New("unknown ease")
)

// Step is one playlist entry: an effect, the parameters it reads, and a
// pause after it. Fields an effect does not use are ignored.
type Step struct {
	Effect  string `yaml:"effect"`
	Asset   string `yaml:"asset,omitempty"`
	DelayMs uint32 `yaml:"delay_ms,omitempty"`

	// shift-sweep
	From   int    `yaml:"from,omitempty"`
	To     int    `yaml:"to,omitempty"`
	Frames int    `yaml:"frames,omitempty"`
	Ease   string `yaml:"ease,omitempty"`

	// shift
	Offset int `yaml:"offset,omitempty"`

	// noise-squares
	X int `yaml:"x,omitempty"`
	Y int `yaml:"y,omitempty"`
	N int `yaml:"n,omitempty"`

	// clear
	Color uint16 `yaml:"color,omitempty"`

	// noise-tiles
	Width int `yaml:"width,omitempty"`
	Count int `yaml:"count,omitempty"`

	// gradient-bars
	Rounds int `yaml:"rounds,omitempty"`
}

// Playlist is an ordered list of steps played in a loop.
type Playlist struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Validate checks that every step names a known effect, and a known asset and
// ease where the effect takes one.
func (p Playlist) Validate() error {
	if len(p.Steps) == 0 {
		return ErrEmptyPlaylist
	}
	for i, s := range p.Steps {
		a, ok := actions[s.Effect]
		if !ok {
			return fmt.Errorf("step %d: %w %q", i, ErrUnknownEffect, s.Effect)
		}
		if a.asset {
			if _, ok := assets.ByName[s.Asset]; !ok {
				return fmt.Errorf("step %d (%s): %w %q", i, s.Effect, ErrUnknownAsset, s.Asset)
			}
		}
		if s.Ease != "" {
			if _, ok := easings[s.Ease]; !ok {
				return fmt.Errorf("step %d (%s): %w %q", i, s.Effect, ErrUnknownEase, s.Ease)
			}
		}
	}
	return nil
}

func (s Step) image() raster.Image { return assets.ByName[s.Asset] }

// DefaultPlaylist is the built-in show: one pass of every headline effect
// with the LED blinking in the middle of the loop.
func DefaultPlaylist() Playlist {
	return Playlist{
		Name: "default",
		Steps: []Step{
			{Effect: "led-on"},
			{Effect: "clear", Color: 0xFFFF},
			{Effect: "interlaced", Asset: "rings"},
			{Effect: "shift-sweep", Asset: "rings", From: 240, To: 0, Frames: 60},
			{Effect: "logic", Asset: "checker", DelayMs: 2000},
			{Effect: "noise-squares", X: 120, Y: 120, N: 120, DelayMs: 2000},
			{Effect: "logic-tri", Asset: "eye"},
			{Effect: "led-off", DelayMs: 100},
			{Effect: "led-on", DelayMs: 100},
			{Effect: "led-off", DelayMs: 100},
			{Effect: "led-on", DelayMs: 1000},
			{Effect: "wave", Asset: "sphere"},
			{Effect: "full", Asset: "sphere", DelayMs: 1000},
			{Effect: "noise1", Asset: "plasma"},
			{Effect: "full", Asset: "plasma", DelayMs: 100},
			{Effect: "wave", Asset: "stripes"},
			{Effect: "full", Asset: "stripes", DelayMs: 100},
			{Effect: "noise20", Asset: "checker"},
			{Effect: "full", Asset: "checker", DelayMs: 3000},
			{Effect: "rotate", Asset: "sphere", DelayMs: 3000},
		},
	}
}
