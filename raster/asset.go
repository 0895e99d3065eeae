package raster

import "fmt"

// Asset is an immutable image stored as [width, height, pixels...].
type Asset struct {
	data []byte
}

// ParseAsset validates blob against its two byte header.
func ParseAsset(blob []byte) (Asset, error) {
	if len(blob) < 2 {
		return Asset{}, fmt.Errorf("%w: %d byte blob has no header", ErrBadAsset, len(blob))
	}
	w, h := int(blob[0]), int(blob[1])
	if w > MaxSide || h > MaxSide {
		return Asset{}, fmt.Errorf("%w: %dx%d exceeds %d", ErrBadAsset, w, h, MaxSide)
	}
	if want := 2 + 2*w*h; len(blob) != want {
		return Asset{}, fmt.Errorf("%w: %dx%d needs %d bytes, have %d", ErrBadAsset, w, h, want, len(blob))
	}
	return Asset{data: blob}, nil
}

// MustAsset is ParseAsset for compiled-in blobs. It panics on a bad blob.
func MustAsset(blob []byte) Asset {
	a, err := ParseAsset(blob)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Asset) Width() uint8   { return a.data[0] }
func (a Asset) Height() uint8  { return a.data[1] }
func (a Asset) Buffer() []byte { return a.data[2:] }

// SetRaw always fails: assets are read-only.
func (a Asset) SetRaw(x, y uint8, b [2]byte) error {
	return fmt.Errorf("%w: asset is read-only", ErrInvalidOperation)
}

// Encode serializes img in the asset format.
func Encode(img Image) []byte {
	out := make([]byte, 0, 2+len(img.Buffer()))
	out = append(out, img.Width(), img.Height())
	return append(out, img.Buffer()...)
}
