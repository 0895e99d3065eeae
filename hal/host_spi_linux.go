//go:build linux && !tinygo

package hal

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

const (
	defaultSPIHz = 40_000_000
	// spidev rejects transfers above its bufsiz, 4096 by default.
	spiMaxTx = 4096
)

type spiTransport struct {
	port spi.PortCloser
	conn spi.Conn
	dc   gpio.PinIO
	rst  gpio.PinIO
}

func openSPI(cfg SPIConfig, delay Delay) (*spiTransport, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	port, err := spireg.Open(cfg.Port)
	if err != nil {
		return nil, err
	}
	hz := cfg.Hz
	if hz <= 0 {
		hz = defaultSPIHz
	}
	conn, err := port.Connect(physic.Frequency(hz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, err
	}
	t := &spiTransport{port: port, conn: conn}
	if t.dc = gpioreg.ByName(cfg.DC); t.dc == nil {
		port.Close()
		return nil, fmt.Errorf("dc pin %q not found", cfg.DC)
	}
	if t.rst = gpioreg.ByName(cfg.RST); t.rst == nil {
		port.Close()
		return nil, fmt.Errorf("rst pin %q not found", cfg.RST)
	}
	if err := t.reset(delay); err != nil {
		port.Close()
		return nil, err
	}
	return t, nil
}

func (t *spiTransport) reset(delay Delay) error {
	if err := t.dc.Out(gpio.High); err != nil {
		return err
	}
	if err := t.rst.Out(gpio.High); err != nil {
		return err
	}
	delay.DelayMs(100)
	if err := t.rst.Out(gpio.Low); err != nil {
		return err
	}
	if err := t.rst.Out(gpio.High); err != nil {
		return err
	}
	delay.DelayMs(100)
	return nil
}

func (t *spiTransport) String() string { return t.conn.String() }

func (t *spiTransport) Close() error { return t.port.Close() }

func (t *spiTransport) SendCommand(cmd []byte) error {
	return t.send(gpio.Low, cmd)
}

func (t *spiTransport) SendData(data []byte) error {
	return t.send(gpio.High, data)
}

func (t *spiTransport) send(dc gpio.Level, b []byte) error {
	if err := t.dc.Out(dc); err != nil {
		return fmt.Errorf("dc: %w: %w", ErrBusFault, err)
	}
	for len(b) > 0 {
		n := len(b)
		if n > spiMaxTx {
			n = spiMaxTx
		}
		if err := t.conn.Tx(b[:n], nil); err != nil {
			return fmt.Errorf("spi tx: %w: %w", ErrBusFault, err)
		}
		b = b[n:]
	}
	return nil
}
