//go:build !tinygo

package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// LoadPlaylist reads and validates a YAML playlist:
//
//	name: demo
//	steps:
//	  - effect: clear
//	    color: 0xFFFF
//	  - effect: shift-sweep
//	    asset: rings
//	    from: 240
//	    frames: 60
//	    ease: out-cubic
//	    delay_ms: 500
func LoadPlaylist(path string) (Playlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Playlist{}, err
	}
	pl, err := ParsePlaylist(data)
	if err != nil {
		return Playlist{}, fmt.Errorf("%s: %w", path, err)
	}
	return pl, nil
}

// ParsePlaylist decodes a YAML playlist. Unknown keys are rejected.
func ParsePlaylist(data []byte) (Playlist, error) {
	var pl Playlist
	if err := yaml.UnmarshalStrict(data, &pl); err != nil {
		return Playlist{}, err
	}
	if err := pl.Validate(); err != nil {
		return Playlist{}, err
	}
	return pl, nil
}
