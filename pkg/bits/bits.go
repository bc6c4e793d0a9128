// Package bits provides helpers for the bit and byte manipulation the
// SM83 performs on its 8-bit registers and 16-bit register pairs.
package bits

import "golang.org/x/exp/constraints"

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test tests the bit at the given index of an 8 or 16-bit value.
func Test[T constraints.Unsigned](v T, i uint8) bool {
	return (v>>i)&1 != 0
}

// High returns the most significant byte of v.
func High(v uint16) uint8 {
	return uint8(v >> 8)
}

// Low returns the least significant byte of v.
func Low(v uint16) uint8 {
	return uint8(v)
}

// Join combines two bytes into a 16-bit value, high byte first.
func Join(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}
