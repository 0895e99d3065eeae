//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	bus    *SPIBus
	delay  Delay
}

// New returns an RP2040 HAL driving a GC9A01 panel.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// LCD: SPI1 SCK GP10 / SDO GP11, DC GP8, CS GP9, RST GP12.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		Frequency: 62_500_000,
		Mode:      0,
	})
	dc, cs, rst := machine.GP8, machine.GP9, machine.GP12
	for _, p := range []machine.Pin{dc, cs, rst} {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	resetPanel(rst)

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		led:    &pinLED{pin: ledPin},
		bus:    NewSPIBus(machine.SPI1, dc, cs),
		delay:  DelayFunc(func(ms uint32) { time.Sleep(time.Duration(ms) * time.Millisecond) }),
	}
}

func resetPanel(rst machine.Pin) {
	rst.High()
	time.Sleep(100 * time.Millisecond)
	rst.Low()
	rst.High()
	time.Sleep(100 * time.Millisecond)
}

func (h *tinyGoHAL) Logger() Logger       { return h.logger }
func (h *tinyGoHAL) LED() LED             { return h.led }
func (h *tinyGoHAL) Transport() Transport { return h.bus }
func (h *tinyGoHAL) Delay() Delay         { return h.delay }
