//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"

	logxi "github.com/mgutz/logxi/v1"
)

// Size of the simulated panel.
const (
	PanelWidth  = 240
	PanelHeight = 240
)

// HostConfig selects what the host HAL drives.
type HostConfig struct {
	// Fast turns every delay into a no-op.
	Fast bool
	// Verbose enables debug lines (LED changes, bus setup).
	Verbose bool
	// SPI drives a real panel when SPI.Port is set; otherwise the HAL
	// renders into an in-memory Panel.
	SPI SPIConfig
}

// SPIConfig names the Linux SPI port and GPIO lines wired to the panel.
type SPIConfig struct {
	Port string
	DC   string
	RST  string
	Hz   int64
}

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	panel  *Panel
	t      Transport
	delay  Delay
	close  func() error
}

// New returns a host HAL backed by a simulated panel.
func New() HAL {
	h, _ := NewHost(HostConfig{})
	return h
}

// NewHost returns a host HAL configured by cfg.
func NewHost(cfg HostConfig) (HAL, error) {
	logger := newHostLogger(cfg.Verbose)
	h := &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		delay:  sleepDelay{},
		close:  func() error { return nil },
	}
	if cfg.Fast {
		h.delay = DelayFunc(func(uint32) {})
	}

	if cfg.SPI.Port == "" {
		h.panel = NewPanel(PanelWidth, PanelHeight)
		h.t = h.panel
		return h, nil
	}

	t, err := openSPI(cfg.SPI, h.delay)
	if err != nil {
		return nil, fmt.Errorf("spi %s: %w", cfg.SPI.Port, err)
	}
	logger.debug("spi: " + t.String())
	h.t = t
	h.close = t.Close
	return h, nil
}

func (h *hostHAL) Logger() Logger       { return h.logger }
func (h *hostHAL) LED() LED             { return h.led }
func (h *hostHAL) Transport() Transport { return h.t }
func (h *hostHAL) Delay() Delay         { return h.delay }

// SimulatedPanel returns the in-memory panel behind h, or nil when h drives
// real hardware or is not a host HAL.
func SimulatedPanel(h HAL) *Panel {
	if hh, ok := h.(*hostHAL); ok {
		return hh.panel
	}
	return nil
}

// Close releases the bus of a hardware-backed host HAL.
func Close(h HAL) error {
	if hh, ok := h.(*hostHAL); ok {
		return hh.close()
	}
	return nil
}

type sleepDelay struct{}

func (sleepDelay) DelayMs(ms uint32) { time.Sleep(time.Duration(ms) * time.Millisecond) }

type hostLogger struct {
	log logxi.Logger
}

func newHostLogger(verbose bool) *hostLogger {
	l := logxi.NewLogger(logxi.NewConcurrentWriter(os.Stdout), "badge")
	l.SetLevel(logxi.LevelInfo)
	if verbose {
		l.SetLevel(logxi.LevelDebug)
	}
	return &hostLogger{log: l}
}

func (l *hostLogger) WriteLineString(s string) { l.log.Info(s) }
func (l *hostLogger) WriteLineBytes(b []byte)  { l.log.Info(string(b)) }

func (l *hostLogger) debug(s string) { l.log.Debug(s) }

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
	l.logger.debug("led: HIGH")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
	l.logger.debug("led: LOW")
}
