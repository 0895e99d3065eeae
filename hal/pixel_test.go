package hal

import "testing"

func TestRGB888From565(t *testing.T) {
	tests := []struct {
		in      uint16
		r, g, b uint8
	}{
		{0x0000, 0, 0, 0},
		{0xFFFF, 0xFF, 0xFF, 0xFF},
		{0xF800, 0xFF, 0, 0},
		{0x07E0, 0, 0xFF, 0},
		{0x001F, 0, 0, 0xFF},
		{0x8410, 0x84, 0x82, 0x84},
	}
	for _, tt := range tests {
		r, g, b := rgb888From565(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("rgb888From565(%#04x) = %d,%d,%d want %d,%d,%d", tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
