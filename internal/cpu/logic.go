package cpu

import "fmt"

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares n to the A Register, without storing the result.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Set if no borrow.
func (c *CPU) compare(n uint8) {
	c.setFlags(c.A-n == 0, true, n&0x0F > c.A&0x0F, n > c.A)
}

func defineLogicInstructions() {
	DefineInstruction(0xE6, "AND d8", func(c *CPU) { c.and(c.readOperand()) })
	DefineInstruction(0xEE, "XOR d8", func(c *CPU) { c.xor(c.readOperand()) })
	DefineInstruction(0xF6, "OR d8", func(c *CPU) { c.or(c.readOperand()) })
	DefineInstruction(0xFE, "CP d8", func(c *CPU) { c.compare(c.readOperand()) })

	DefineInstruction(0x2F, "CPL", func(c *CPU) {
		c.A = 0xFF ^ c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})
	DefineInstruction(0x37, "SCF", func(c *CPU) {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU) {
		if c.isFlagSet(FlagCarry) {
			c.clearFlag(FlagCarry)
		} else {
			c.setFlag(FlagCarry)
		}
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})

	for i := uint8(0); i < 8; i++ {
		from := i
		DefineInstruction(0xA0+from, fmt.Sprintf("AND %s", registerNames[from]), func(c *CPU) { c.and(c.load8(from)) })
		DefineInstruction(0xA8+from, fmt.Sprintf("XOR %s", registerNames[from]), func(c *CPU) { c.xor(c.load8(from)) })
		DefineInstruction(0xB0+from, fmt.Sprintf("OR %s", registerNames[from]), func(c *CPU) { c.or(c.load8(from)) })
		DefineInstruction(0xB8+from, fmt.Sprintf("CP %s", registerNames[from]), func(c *CPU) { c.compare(c.load8(from)) })
	}
}
