package assets

import (
	"testing"

	"badge/raster"
)

func TestAssetsAreFullScreen(t *testing.T) {
	for name, a := range ByName {
		if a.Width() != 240 || a.Height() != 240 {
			t.Errorf("%s is %dx%d", name, a.Width(), a.Height())
		}
		if len(a.Buffer()) != 2*240*240 {
			t.Errorf("%s has %d pixel bytes", name, len(a.Buffer()))
		}
	}
}

func TestAssetsDiffer(t *testing.T) {
	seen := map[string]string{}
	for name, a := range ByName {
		key := string(a.Buffer())
		if other, ok := seen[key]; ok {
			t.Fatalf("%s and %s are identical", name, other)
		}
		seen[key] = name
	}
}

func TestAssetsStoredTopRowFirst(t *testing.T) {
	if got := raster.PixelAt(Plasma, 0, 0); got != 0xF800 {
		t.Fatalf("plasma (0,0) = %#04x, want red", got)
	}
}
