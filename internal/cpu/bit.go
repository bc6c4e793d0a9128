package cpu

import "github.com/thelolagemann/dmgcore/pkg/bits"

// testBit tests the bit at the given position in n.
//
//	BIT b, n
//	b = 0-7
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(n uint8, position uint8) {
	c.setFlags(!bits.Test(n, position), false, true, c.isFlagSet(FlagCarry))
}

// setBit sets the bit at the given position in n. No flags are affected.
//
//	SET b, n
func setBit(n uint8, position uint8) uint8 {
	return bits.Set(n, position)
}

// resetBit clears the bit at the given position in n. No flags are affected.
//
//	RES b, n
func resetBit(n uint8, position uint8) uint8 {
	return bits.Reset(n, position)
}
