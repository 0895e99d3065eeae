package lcd

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"badge/hal"
	"badge/random"
	"badge/raster"

	"tinygo.org/x/drivers"
)

type call struct {
	cmd  bool
	data []byte
}

type recorder struct {
	calls []call
	fail  int // fail on this 1-based call; 0 never
}

func (r *recorder) add(cmd bool, b []byte) error {
	r.calls = append(r.calls, call{cmd: cmd, data: append([]byte(nil), b...)})
	if r.fail > 0 && len(r.calls) == r.fail {
		return hal.ErrBusFault
	}
	return nil
}

func (r *recorder) SendCommand(b []byte) error { return r.add(true, b) }
func (r *recorder) SendData(b []byte) error    { return r.add(false, b) }

func TestInitSequence(t *testing.T) {
	rec := &recorder{}
	var delays []uint32
	d := New(rec)
	if err := d.Init(hal.DelayFunc(func(ms uint32) { delays = append(delays, ms) })); err != nil {
		t.Fatalf("Init: %v", err)
	}

	var want []call
	for _, w := range initSequence {
		want = append(want, call{true, w.cmd})
		if len(w.data) > 0 {
			want = append(want, call{false, w.data})
		}
	}
	want = append(want, call{true, []byte{0x11}}, call{true, []byte{0x29}}, call{true, []byte{0x21}})

	if len(rec.calls) != len(want) {
		t.Fatalf("got %d transport calls, want %d", len(rec.calls), len(want))
	}
	for i := range want {
		if rec.calls[i].cmd != want[i].cmd || !bytes.Equal(rec.calls[i].data, want[i].data) {
			t.Fatalf("call %d = %+v, want %+v", i, rec.calls[i], want[i])
		}
	}
	if len(delays) != 2 || delays[0] != 120 || delays[1] != 20 {
		t.Fatalf("delays = %v, want [120 20]", delays)
	}
	if d.Rotation() != drivers.Rotation0 {
		t.Fatalf("rotation after init = %d, want 0", d.Rotation())
	}

	// Spot-check a few vendor constants.
	first := rec.calls[:6]
	if !bytes.Equal(first[0].data, []byte{0x36}) || !bytes.Equal(first[1].data, []byte{0xC8}) {
		t.Fatalf("scan direction = %x %x", first[0].data, first[1].data)
	}
	if !bytes.Equal(first[2].data, []byte{0xEF, 0xEB}) || !bytes.Equal(first[4].data, []byte{0xFE, 0xEF, 0xEB}) {
		t.Fatalf("unlock = %x / %x", first[2].data, first[4].data)
	}
}

func TestInitAbortsOnFault(t *testing.T) {
	rec := &recorder{fail: 5}
	err := New(rec).Init(hal.DelayFunc(func(uint32) { t.Fatal("delay after fault") }))
	if !errors.Is(err, ErrTransportFault) || !errors.Is(err, hal.ErrBusFault) {
		t.Fatalf("Init = %v, want transport fault wrapping bus fault", err)
	}
	if len(rec.calls) != 5 {
		t.Fatalf("kept writing after fault: %d calls", len(rec.calls))
	}
}

func TestSetWindowEndCoordinates(t *testing.T) {
	rec := &recorder{}
	d := New(rec)
	for x0 := 0; x0 < Width; x0 += 7 {
		for x1 := x0 + 1; x1 <= Width; x1 += 13 {
			for _, y := range [][2]int{{0, 1}, {0, 240}, {100, 101}, {239, 240}, {17, 200}} {
				rec.calls = rec.calls[:0]
				if err := d.SetWindow(uint8(x0), uint8(y[0]), uint8(x1), uint8(y[1])); err != nil {
					t.Fatalf("SetWindow(%d,%d,%d,%d): %v", x0, y[0], x1, y[1], err)
				}
				wantX := []byte{0, byte(x0), 0, byte(x1 - 1)}
				wantY := []byte{0, byte(y[0]), 0, byte(y[1] - 1)}
				if !bytes.Equal(rec.calls[1].data, wantX) || !bytes.Equal(rec.calls[3].data, wantY) {
					t.Fatalf("window (%d,%d,%d,%d): got %x %x", x0, y[0], x1, y[1], rec.calls[1].data, rec.calls[3].data)
				}
				if !bytes.Equal(rec.calls[4].data, []byte{0x2C}) {
					t.Fatalf("missing memory write: %x", rec.calls[4].data)
				}
			}
		}
	}
}

func TestSetWindowRejects(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 uint8
	}{
		{"zero x end", 0, 0, 0, 10},
		{"zero y end", 0, 0, 10, 0},
		{"empty", 5, 5, 5, 6},
		{"reversed", 10, 0, 5, 1},
		{"wide", 0, 0, 241, 1},
		{"tall", 0, 0, 1, 241},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			err := New(rec).SetWindow(tt.x0, tt.y0, tt.x1, tt.y1)
			if !errors.Is(err, ErrInvalidWindow) || !errors.Is(err, raster.ErrInvalidOperation) {
				t.Fatalf("err = %v, want ErrInvalidWindow", err)
			}
			if len(rec.calls) != 0 {
				t.Fatalf("sent %d calls for an invalid window", len(rec.calls))
			}
		})
	}
}

func TestStreamByteOrder(t *testing.T) {
	rec := &recorder{}
	d := New(rec)
	if err := d.StreamPixels([]uint16{0x1234, 0xABCD}); err != nil {
		t.Fatal(err)
	}
	if err := d.StreamLE([]byte{0x34, 0x12, 0xCD, 0xAB}); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x12, 0x34, 0xAB, 0xCD}
	for i, c := range rec.calls {
		if !bytes.Equal(c.data, want) {
			t.Fatalf("call %d = %x, want %x", i, c.data, want)
		}
	}
}

func TestStreamLERejectsOddLength(t *testing.T) {
	rec := &recorder{}
	d := New(rec)
	if err := d.StreamLE([]byte{0x34, 0x12, 0xCD}); !errors.Is(err, raster.ErrInvalidOperation) {
		t.Fatalf("err = %v, want ErrInvalidOperation", err)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("sent %d calls for an odd buffer", len(rec.calls))
	}
}

func TestStreamChunks(t *testing.T) {
	rec := &recorder{}
	d := New(rec)
	px := make([]uint16, Width*Height)
	if err := d.StreamPixels(px); err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, c := range rec.calls {
		if len(c.data) > chunkBytes {
			t.Fatalf("chunk of %d bytes", len(c.data))
		}
		total += len(c.data)
	}
	if total != 2*Width*Height {
		t.Fatalf("streamed %d bytes", total)
	}
}

func TestBlitOnPanel(t *testing.T) {
	p := hal.NewPanel(Width, Height)
	d := New(p)
	img := raster.New512(3, 2)
	for i := range img.Buffer() {
		img.Buffer()[i] = byte(i + 1)
	}
	if err := d.Blit(10, 20, img); err != nil {
		t.Fatal(err)
	}
	for y := uint8(0); y < 2; y++ {
		for x := uint8(0); x < 3; x++ {
			if got, want := p.Pixel(10+int(x), 20+int(y)), raster.PixelAt(img, x, y); got != want {
				t.Fatalf("(%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}

	if err := d.Blit(239, 0, img); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("off-panel blit = %v", err)
	}
}

func TestBlitClamped(t *testing.T) {
	p := hal.NewPanel(Width, Height)
	d := New(p)
	img := raster.New512(2, 4)
	_ = raster.Fill(img, 0x0F0F)
	if err := d.BlitClamped(0, 0, img, 2); err != nil {
		t.Fatal(err)
	}
	if p.Pixel(1, 1) != 0x0F0F || p.Pixel(0, 2) != 0 {
		t.Fatalf("clamp: row1=%#x row2=%#x", p.Pixel(1, 1), p.Pixel(0, 2))
	}
	before := p.PixelsWritten()
	if err := d.BlitClamped(0, 0, img, 0); err != nil {
		t.Fatal(err)
	}
	if p.PixelsWritten() != before {
		t.Fatal("zero-row blit streamed pixels")
	}
}

func TestFillAndNoiseRect(t *testing.T) {
	p := hal.NewPanel(Width, Height)
	d := New(p)
	if err := d.FillRect(0, 0, Width, Height, 0xFFFF); err != nil {
		t.Fatal(err)
	}
	if p.Pixel(239, 239) != 0xFFFF {
		t.Fatal("fill did not reach the last pixel")
	}

	if err := d.NoiseRect(10, 10, 12, 11, random.New()); err != nil {
		t.Fatal(err)
	}
	want := random.New()
	if p.Pixel(10, 10) != want.NextU16() || p.Pixel(11, 10) != want.NextU16() {
		t.Fatal("noise rect does not follow the generator")
	}
	if p.Pixel(12, 10) != 0xFFFF {
		t.Fatal("noise rect spilled outside its window")
	}
}

func TestDisplayer(t *testing.T) {
	p := hal.NewPanel(Width, Height)
	d := New(p)
	d.SetPixel(5, 6, color.RGBA{R: 255, A: 255})
	d.SetPixel(-1, 0, color.RGBA{G: 255, A: 255})
	d.SetPixel(240, 0, color.RGBA{G: 255, A: 255})
	if err := d.Display(); err != nil {
		t.Fatal(err)
	}
	if p.Pixel(5, 6) != 0xF800 {
		t.Fatalf("SetPixel = %#x", p.Pixel(5, 6))
	}

	if err := d.FillRectangle(-10, 230, 20, 50, color.RGBA{B: 255, A: 255}); err != nil {
		t.Fatal(err)
	}
	if p.Pixel(0, 239) != 0x001F || p.Pixel(9, 230) != 0x001F || p.Pixel(10, 230) != 0 {
		t.Fatal("FillRectangle clipping")
	}

	if err := d.SetRotation(drivers.Rotation90); err != nil {
		t.Fatal(err)
	}
	if got := p.Register(0x36); !bytes.Equal(got, []byte{0x68}) || d.Rotation() != drivers.Rotation90 {
		t.Fatalf("MADCTL = %x", got)
	}

	d.SetScroll(250)
	if got := p.Register(0x37); !bytes.Equal(got, []byte{0, 10}) {
		t.Fatalf("VSCRSAD = %x", got)
	}
}

func TestSetPixelFaultSurfacesOnDisplay(t *testing.T) {
	p := hal.NewPanel(Width, Height)
	p.FailAfter(0)
	d := New(p)
	d.SetPixel(1, 1, color.RGBA{A: 255})
	if err := d.Display(); !errors.Is(err, ErrTransportFault) {
		t.Fatalf("Display = %v, want transport fault", err)
	}
	if err := d.Display(); err != nil {
		t.Fatalf("error not cleared: %v", err)
	}
}
