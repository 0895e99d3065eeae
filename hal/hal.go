package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

// Transport is the blocking command/data link to the display controller.
//
// SendCommand transmits bytes with the data/command line low, SendData with
// it high. Both return only after the bus has finished.
type Transport interface {
	SendCommand(cmd []byte) error
	SendData(data []byte) error
}

// Delay blocks the caller.
type Delay interface {
	DelayMs(ms uint32)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrBusFault is returned by transports whose underlying write failed.
	ErrBusFault = errors.New("bus fault")
)

// HAL provides the only contact point between the player and the board.
type HAL interface {
	Logger() Logger
	LED() LED
	Transport() Transport
	Delay() Delay
}

// DelayFunc adapts a function to Delay.
type DelayFunc func(ms uint32)

func (f DelayFunc) DelayMs(ms uint32) { f(ms) }

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) WriteLineString(string) {}
func (NopLogger) WriteLineBytes([]byte)  {}
