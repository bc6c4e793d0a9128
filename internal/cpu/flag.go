package cpu

import "github.com/thelolagemann/dmgcore/internal/types"

// Flag is a bit mask of the F register.
type Flag = uint8

const (
	// FlagZero is set when the result of an operation is zero.
	FlagZero Flag = types.Bit7
	// FlagSubtract is set when the last arithmetic operation was a subtraction.
	FlagSubtract Flag = types.Bit6
	// FlagHalfCarry is set on a carry out of, or borrow into, bit 3.
	FlagHalfCarry Flag = types.Bit5
	// FlagCarry is set on a carry out of, or borrow into, bit 7.
	FlagCarry Flag = types.Bit4
)

// Flag returns true if the given flag is set.
func (r *Registers) Flag(flag Flag) bool {
	return r.F&flag == flag
}

// SetFlag sets or clears the given flag.
func (r *Registers) SetFlag(flag Flag, value bool) {
	if value {
		r.F |= flag
	} else {
		r.F &^= flag
	}
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F |= flag
}

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F &^= flag
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&flag == flag
}

// setFlags rebuilds the F register from the given flag states.
func (c *CPU) setFlags(zero bool, subtract bool, halfCarry bool, carry bool) {
	c.F = 0
	if zero {
		c.F |= FlagZero
	}
	if subtract {
		c.F |= FlagSubtract
	}
	if halfCarry {
		c.F |= FlagHalfCarry
	}
	if carry {
		c.F |= FlagCarry
	}
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	if value == 0 {
		c.setFlag(FlagZero)
	} else {
		c.clearFlag(FlagZero)
	}
}
