// Package random provides the linear congruential generator that drives the
// randomized reveal effects.
//
// The stream is reproducible per seed; it is not uniformly distributed.
package random

// DefaultSeed is the seed used by New.
const DefaultSeed uint32 = 12345

const (
	multiplier uint32 = 1664525
	increment  uint32 = 1013904223
)

// Random is a 32-bit LCG. The zero value is a generator seeded with 0.
type Random struct {
	state uint32
}

// New returns a generator seeded with DefaultSeed.
func New() *Random { return &Random{state: DefaultSeed} }

// NewSeeded returns a generator seeded with seed.
func NewSeeded(seed uint32) *Random { return &Random{state: seed} }

// State returns the current generator state.
func (r *Random) State() uint32 { return r.state }

// NextU32 advances the state and returns it.
func (r *Random) NextU32() uint32 {
	r.state = r.state*multiplier + increment
	return r.state
}

// NextU16 returns the low 16 bits of NextU32()/23.
func (r *Random) NextU16() uint16 {
	return uint16((r.NextU32() / 23) & 0xFFFF)
}

// NextU8 returns the low 8 bits of NextU32()/23.
func (r *Random) NextU8() uint8 {
	return uint8((r.NextU32() / 23) & 0xFF)
}
