package hal

import (
	"fmt"

	"tinygo.org/x/drivers"
)

// Pin is a push-pull output line.
type Pin interface {
	High()
	Low()
}

// SPIBus is a Transport over a 4-wire SPI link: chip select framing each
// transfer and a data/command line telling the controller how to read it.
type SPIBus struct {
	bus drivers.SPI
	dc  Pin
	cs  Pin
}

// NewSPIBus returns a transport writing through bus. cs is left high.
func NewSPIBus(bus drivers.SPI, dc, cs Pin) *SPIBus {
	cs.High()
	dc.High()
	return &SPIBus{bus: bus, dc: dc, cs: cs}
}

func (b *SPIBus) SendCommand(cmd []byte) error {
	return b.send(false, cmd)
}

func (b *SPIBus) SendData(data []byte) error {
	return b.send(true, data)
}

func (b *SPIBus) send(data bool, p []byte) error {
	if len(p) == 0 {
		return nil
	}
	b.cs.Low()
	defer b.cs.High()
	if data {
		b.dc.High()
	} else {
		b.dc.Low()
	}
	if err := b.bus.Tx(p, nil); err != nil {
		return fmt.Errorf("spi: %w: %w", ErrBusFault, err)
	}
	return nil
}
