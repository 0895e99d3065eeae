package lcd

type regWrite struct {
	cmd  []byte
	data []byte
}

func reg(cmd byte, data ...byte) regWrite { return regWrite{cmd: []byte{cmd}, data: data} }

// initSequence is the vendor register setup, replayed in order before sleep
// out. Values are opaque panel constants.
var initSequence = []regWrite{
	reg(cmdMADCTL, madctlHorizontal),

	{cmd: []byte{0xEF, 0xEB}, data: []byte{0x14}},
	{cmd: []byte{0xFE, 0xEF, 0xEB}, data: []byte{0x14}},

	reg(0x84, 0x40),
	reg(0x85, 0xFF),
	reg(0x86, 0xFF),
	reg(0x87, 0xFF),
	reg(0x88, 0x0A),
	reg(0x89, 0x21),
	reg(0x8A, 0x00),
	reg(0x8B, 0x80),
	reg(0x8C, 0x01),
	reg(0x8D, 0x01),
	reg(0x8E, 0xFF),
	reg(0x8F, 0xFF),

	reg(0xB6, 0x00, 0x20),
	reg(cmdMADCTL, madctlVertical),
	reg(cmdCOLMOD, 0x05), // 16 bpp

	reg(0x90, 0x08, 0x08, 0x08, 0x08),
	reg(0xBD, 0x06),
	reg(0xBC, 0x00),
	reg(0xFF, 0x60, 0x01, 0x04),
	reg(0xC3, 0x13), // VREG1A
	reg(0xC4, 0x13), // VREG1B
	reg(0xC9, 0x22), // VREG2A
	reg(0xBE, 0x11),
	reg(0xE1, 0x10, 0x0E),
	reg(0xDF, 0x21, 0x0C, 0x02),

	// Gamma.
	reg(0xF0, 0x45, 0x09, 0x08, 0x08, 0x26, 0x2A),
	reg(0xF1, 0x43, 0x70, 0x72, 0x36, 0x37, 0x6F),
	reg(0xF2, 0x45, 0x09, 0x08, 0x08, 0x26, 0x2A),
	reg(0xF3, 0x43, 0x70, 0x72, 0x36, 0x37, 0x6F),

	reg(0xED, 0x1B, 0x0B),
	reg(0xAE, 0x77),
	reg(0xCD, 0x63),
	reg(0x70, 0x07, 0x07, 0x04, 0x0E, 0x0F, 0x09, 0x07, 0x08, 0x03),
	reg(0xE8, 0x34), // frame rate
	reg(0x62, 0x18, 0x0D, 0x71, 0xED, 0x70, 0x70, 0x18, 0x0F, 0x71, 0xEF, 0x70, 0x70),
	reg(0x63, 0x18, 0x11, 0x71, 0xF1, 0x70, 0x70, 0x18, 0x13, 0x71, 0xF3, 0x70, 0x70),
	reg(0x64, 0x28, 0x29, 0xF1, 0x01, 0xF1, 0x00, 0x07),
	reg(0x66, 0x3C, 0x00, 0xCD, 0x67, 0x45, 0x45, 0x10, 0x00, 0x00, 0x00),
	reg(0x67, 0x00, 0x3C, 0x00, 0x00, 0x00, 0x01, 0x54, 0x10, 0x32, 0x98),
	reg(0x74, 0x10, 0x85, 0x80, 0x00, 0x00, 0x4E, 0x00),
	reg(0x98, 0x3E, 0x07),
	reg(cmdTEON, 0x21),
}
