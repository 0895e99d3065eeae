package hal

// rgb888From565 widens a 565 color by bit replication, so full-scale
// channels map to 0xFF and zero to zero.
func rgb888From565(p uint16) (r, g, b uint8) {
	rr := uint8(p>>11) & 0x1F
	gg := uint8(p>>5) & 0x3F
	bb := uint8(p) & 0x1F
	return rr<<3 | rr>>2, gg<<2 | gg>>4, bb<<3 | bb>>2
}
