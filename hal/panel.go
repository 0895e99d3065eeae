package hal

import (
	"fmt"
	"image"
	"sync"
)

// Controller opcodes the panel model understands.
const (
	panelCASET   = 0x2A
	panelRASET   = 0x2B
	panelRAMWR   = 0x2C
	panelRAMWRC  = 0x3C
	panelMADCTL  = 0x36
	panelVSCRSAD = 0x37
	panelSLPOUT  = 0x11
	panelDISPON  = 0x29
	panelINVON   = 0x21
	panelINVOFF  = 0x20
)

// Panel is an in-memory model of a GC9A01-style controller: it decodes the
// address-window commands and the RGB565 pixel stream into a frame.
//
// It implements Transport, so it can stand in for the real bus on the host
// and in tests. Panel is safe for one writer plus concurrent snapshots.
type Panel struct {
	mu sync.Mutex

	w, h int
	ram  []uint16

	cmd    byte
	params []byte
	regs   map[byte][]byte

	x0, x1, y0, y1 int
	cx, cy         int
	half           byte
	halfOK         bool

	awake     bool
	on        bool
	inverted  bool
	scroll    int
	calls     int
	pixels    int
	failAfter int
}

// NewPanel returns a blank w x h panel.
func NewPanel(w, h int) *Panel {
	return &Panel{
		w:         w,
		h:         h,
		ram:       make([]uint16, w*h),
		regs:      make(map[byte][]byte),
		x1:        w - 1,
		y1:        h - 1,
		failAfter: -1,
	}
}

func (p *Panel) Width() int  { return p.w }
func (p *Panel) Height() int { return p.h }

// FailAfter makes every transport call after the next n fail with
// ErrBusFault. A negative n disables fault injection.
func (p *Panel) FailAfter(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failAfter = n
	p.calls = 0
}

func (p *Panel) fault() error {
	if p.failAfter < 0 {
		return nil
	}
	p.calls++
	if p.calls > p.failAfter {
		return fmt.Errorf("panel: call %d: %w", p.calls, ErrBusFault)
	}
	return nil
}

func (p *Panel) SendCommand(cmd []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.fault(); err != nil {
		return err
	}
	for _, c := range cmd {
		p.command(c)
	}
	return nil
}

func (p *Panel) command(c byte) {
	p.cmd = c
	p.params = p.params[:0]
	p.halfOK = false
	switch c {
	case panelRAMWR:
		p.cx, p.cy = p.x0, p.y0
	case panelSLPOUT:
		p.awake = true
	case panelDISPON:
		p.on = true
	case panelINVON:
		p.inverted = true
	case panelINVOFF:
		p.inverted = false
	}
}

func (p *Panel) SendData(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.fault(); err != nil {
		return err
	}
	switch p.cmd {
	case panelRAMWR, panelRAMWRC:
		p.stream(data)
		return nil
	}
	p.params = append(p.params, data...)
	p.regs[p.cmd] = append([]byte(nil), p.params...)
	switch p.cmd {
	case panelCASET:
		if len(p.params) >= 4 {
			p.x0 = int(p.params[0])<<8 | int(p.params[1])
			p.x1 = int(p.params[2])<<8 | int(p.params[3])
		}
	case panelRASET:
		if len(p.params) >= 4 {
			p.y0 = int(p.params[0])<<8 | int(p.params[1])
			p.y1 = int(p.params[2])<<8 | int(p.params[3])
		}
	case panelVSCRSAD:
		if len(p.params) >= 2 {
			p.scroll = int(p.params[0])<<8 | int(p.params[1])
		}
	}
	return nil
}

func (p *Panel) stream(data []byte) {
	for _, b := range data {
		if !p.halfOK {
			p.half = b
			p.halfOK = true
			continue
		}
		p.halfOK = false
		p.put(uint16(p.half)<<8 | uint16(b))
	}
}

func (p *Panel) put(c uint16) {
	if p.cx >= 0 && p.cx < p.w && p.cy >= 0 && p.cy < p.h {
		p.ram[p.cy*p.w+p.cx] = c
	}
	p.pixels++
	p.cx++
	if p.cx > p.x1 {
		p.cx = p.x0
		p.cy++
		if p.cy > p.y1 {
			p.cy = p.y0
		}
	}
}

// Pixel returns the stored color at (x, y).
func (p *Panel) Pixel(x, y int) uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ram[y*p.w+x]
}

// Frame returns a copy of the panel memory in row-major order.
func (p *Panel) Frame() []uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]uint16(nil), p.ram...)
}

// Register returns the parameter bytes last written to cmd.
func (p *Panel) Register(cmd byte) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]byte(nil), p.regs[cmd]...)
}

// Window returns the current inclusive address window.
func (p *Panel) Window() (x0, y0, x1, y1 int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.x0, p.y0, p.x1, p.y1
}

// Ready reports whether the panel has left sleep and turned the display on.
func (p *Panel) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.awake && p.on
}

// Inverted reports whether display inversion is on.
func (p *Panel) Inverted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inverted
}

// PixelsWritten returns the number of pixels streamed since creation.
func (p *Panel) PixelsWritten() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pixels
}

// Clear fills the panel memory with c without touching controller state.
func (p *Panel) Clear(c uint16) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.ram {
		p.ram[i] = c
	}
}

// Scan direction bits of the memory access control register.
const (
	madctlMY = 0x80
	madctlMX = 0x40
	madctlMV = 0x20
)

// SnapshotRGBA renders what the glass shows into dst, allocating it when nil
// or mis-sized. The scan direction last written to 0x36 and the vertical
// scroll offset are applied; panel memory itself stays in controller order.
func (p *Panel) SnapshotRGBA(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds().Dx() != p.w || dst.Bounds().Dy() != p.h {
		dst = image.NewRGBA(image.Rect(0, 0, p.w, p.h))
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	var madctl byte
	if r := p.regs[panelMADCTL]; len(r) > 0 {
		madctl = r[0]
	}
	for gy := 0; gy < p.h; gy++ {
		for gx := 0; gx < p.w; gx++ {
			x, y := gx, gy
			if madctl&madctlMV != 0 {
				x, y = y, x
			}
			if madctl&madctlMX != 0 {
				x = p.w - 1 - x
			}
			if madctl&madctlMY != 0 {
				y = p.h - 1 - y
			}
			y = (y + p.scroll) % p.h
			r, g, b := rgb888From565(p.ram[y*p.w+x])
			j := gy*dst.Stride + gx*4
			dst.Pix[j+0] = r
			dst.Pix[j+1] = g
			dst.Pix[j+2] = b
			dst.Pix[j+3] = 0xFF
		}
	}
	return dst
}
