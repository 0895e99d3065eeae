package raster

import (
	"errors"
	"testing"
)

func TestNewClampsHeight(t *testing.T) {
	tests := []struct {
		name  string
		make  func(w, h uint8) *Buffer
		w, h  uint8
		wantH uint8
	}{
		{"8k fits", New8K, 64, 64, 64},
		{"8k exact", New8K, 64, 32, 32},
		{"8k 100x100", New8K, 100, 100, 40},
		{"8k 240x240", New8K, 240, 240, 17},
		{"512 fits", New512, 16, 16, 16},
		{"512 80x80", New512, 80, 80, 3},
		{"512 count row", New512, 255, 1, 1},
		{"zero width", New8K, 0, 200, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.make(tt.w, tt.h)
			if b.Width() != tt.w || b.Height() != tt.wantH {
				t.Fatalf("got %dx%d, want %dx%d", b.Width(), b.Height(), tt.w, tt.wantH)
			}
			if got, want := len(b.Buffer()), 2*int(b.Width())*int(b.Height()); got != want {
				t.Fatalf("len(Buffer()) = %d, want %d", got, want)
			}
			if len(b.Buffer()) > b.Capacity() {
				t.Fatalf("buffer %d exceeds arena %d", len(b.Buffer()), b.Capacity())
			}
		})
	}
}

func TestResize(t *testing.T) {
	b := New512(10, 10)
	if err := b.Resize(16, 16); err != nil {
		t.Fatalf("Resize(16,16): %v", err)
	}
	if err := b.Resize(17, 16); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("Resize(17,16) = %v, want ErrInvalidOperation", err)
	}
	if b.Width() != 16 || b.Height() != 16 {
		t.Fatalf("failed resize changed size to %dx%d", b.Width(), b.Height())
	}
}

func TestPixelAccess(t *testing.T) {
	b := New8K(3, 2)
	if err := SetPixel(b, 2, 1, 0xABCD); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	if got := PixelAt(b, 2, 1); got != 0xABCD {
		t.Fatalf("PixelAt = %#04x, want 0xabcd", got)
	}
	if got := RawAt(b, 2, 1); got != [2]byte{0xCD, 0xAB} {
		t.Fatalf("RawAt = %v, want little-endian bytes", got)
	}
	buf := b.Buffer()
	if buf[10] != 0xCD || buf[11] != 0xAB {
		t.Fatalf("buffer tail = %x", buf[10:])
	}
}

func TestPixelAccessOutOfRangePanics(t *testing.T) {
	b := New8K(3, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for x == width")
		}
	}()
	PixelAt(b, 3, 0)
}

func TestSwapXYKeepsContents(t *testing.T) {
	b := New512(4, 2)
	for i := range b.Buffer() {
		b.Buffer()[i] = byte(i)
	}
	before := append([]byte(nil), b.Buffer()...)
	b.SwapXY()
	if b.Width() != 2 || b.Height() != 4 {
		t.Fatalf("got %dx%d, want 2x4", b.Width(), b.Height())
	}
	if string(before) != string(b.Buffer()) {
		t.Fatal("SwapXY changed buffer contents")
	}
}

func TestUniformGradient(t *testing.T) {
	img := New8K(4, 4)
	if err := Fill(img, 0x1234); err != nil {
		t.Fatal(err)
	}
	g := Gradient(img, 0, 0, 3, 3, 4)
	if g.Width() != 4 || g.Height() != 1 {
		t.Fatalf("gradient is %dx%d, want 4x1", g.Width(), g.Height())
	}
	for i, p := range Pixels(g) {
		if p != 0x1234 {
			t.Fatalf("pixel %d = %#04x, want 0x1234", i, p)
		}
	}
}

func TestGradientSamplesTruncate(t *testing.T) {
	img := New8K(10, 1)
	for x := uint8(0); x < 10; x++ {
		_ = SetPixel(img, x, 0, uint16(x))
	}
	// dx = 9, count = 4: positions 0, 9/4=2, 18/4=4, 27/4=6.
	g := Gradient(img, 0, 0, 9, 0, 4)
	want := []uint16{0, 2, 4, 6}
	got := Pixels(g)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d = %d, want %d (all %v)", i, got[i], want[i], got)
		}
	}

	// Reverse direction truncates toward zero, toward the start point.
	g = Gradient(img, 9, 0, 0, 0, 4)
	want = []uint16{9, 7, 5, 3}
	got = Pixels(g)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("reverse sample %d = %d, want %d (all %v)", i, got[i], want[i], got)
		}
	}
}

func TestMirrorGradientIndexing(t *testing.T) {
	src := New512(4, 1)
	for i := uint8(0); i < 4; i++ {
		_ = SetPixel(src, i, 0, 0x100+uint16(i))
	}
	m := src.MirrorGradient()
	want := []uint16{0, 0x103, 0x102, 0x101}
	got := Pixels(m)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mirror pixel %d = %#x, want %#x (all %#x)", i, got[i], want[i], got)
		}
	}
	// Source pixel 0 lands just past the logical end.
	if m.arena[8] != 0x00 || m.arena[9] != 0x01 {
		t.Fatalf("arena past end = %x %x, want 00 01", m.arena[8], m.arena[9])
	}

	// Mirroring twice restores everything except pixel 0 and the pixel
	// that was pushed out.
	mm := m.MirrorGradient()
	got = Pixels(mm)
	want = []uint16{0, 0x101, 0x102, 0x103}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("double mirror pixel %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestMirrorGradientFullArena(t *testing.T) {
	tests := []struct {
		name   string
		make   func(w, h uint8) *Buffer
		w, h   uint8
		spills bool
	}{
		{"512 16x16", New512, 16, 16, false},
		{"8k 64x64", New8K, 64, 64, false},
		{"512 255x1", New512, 255, 1, true},
		{"8k 100x100 clamped", New8K, 100, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := tt.make(tt.w, tt.h)
			count := int(src.Width()) * int(src.Height())
			for i := 0; i < count; i++ {
				src.arena[2*i] = byte(i)
				src.arena[2*i+1] = byte(i>>8) | 0x80
			}
			m := src.MirrorGradient()
			if m.Width() != src.Width() || m.Height() != src.Height() {
				t.Fatalf("mirror is %dx%d", m.Width(), m.Height())
			}
			if m.arena[0] != 0 || m.arena[1] != 0 {
				t.Fatalf("pixel 0 = %x %x, want zero", m.arena[0], m.arena[1])
			}
			for k := 1; k < count; k++ {
				if m.arena[2*k] != src.arena[2*(count-k)] || m.arena[2*k+1] != src.arena[2*(count-k)+1] {
					t.Fatalf("pixel %d does not hold source pixel %d", k, count-k)
				}
			}
			spilled := 2*count+1 < len(m.arena) && m.arena[2*count+1] == 0x80
			if spilled != tt.spills {
				t.Fatalf("source pixel 0 past the end: %v, want %v", spilled, tt.spills)
			}
		})
	}
}

func TestAsset(t *testing.T) {
	blob := []byte{2, 1, 0x34, 0x12, 0xCD, 0xAB}
	a, err := ParseAsset(blob)
	if err != nil {
		t.Fatalf("ParseAsset: %v", err)
	}
	if a.Width() != 2 || a.Height() != 1 {
		t.Fatalf("size %dx%d", a.Width(), a.Height())
	}
	if got := PixelAt(a, 1, 0); got != 0xABCD {
		t.Fatalf("PixelAt = %#x", got)
	}
	if err := SetPixel(a, 0, 0, 0); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("SetPixel on asset = %v, want ErrInvalidOperation", err)
	}
	if PixelAt(a, 0, 0) != 0x1234 {
		t.Fatal("asset changed after rejected write")
	}
	if got := Encode(a); string(got) != string(blob) {
		t.Fatalf("Encode = %x, want %x", got, blob)
	}
}

func TestParseAssetRejects(t *testing.T) {
	tests := []struct {
		name string
		blob []byte
	}{
		{"empty", nil},
		{"short", []byte{2, 2, 0, 0}},
		{"long", []byte{1, 1, 0, 0, 0}},
		{"too wide", append([]byte{241, 0}, make([]byte, 0)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseAsset(tt.blob); !errors.Is(err, ErrBadAsset) {
				t.Fatalf("ParseAsset = %v, want ErrBadAsset", err)
			}
		})
	}
}

func TestRGB565(t *testing.T) {
	if got := RGB565(255, 255, 255); got != 0xFFFF {
		t.Fatalf("white = %#x", got)
	}
	if got := RGB565(255, 0, 0); got != 0xF800 {
		t.Fatalf("red = %#x", got)
	}
	if got := RGB565(0, 255, 0); got != 0x07E0 {
		t.Fatalf("green = %#x", got)
	}
}
