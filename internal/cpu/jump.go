package cpu

import "fmt"

// conditions are the branch conditions encoded by bits 3-4 of the
// conditional jump, call and return opcodes.
var conditions = [4]string{"NZ", "Z", "NC", "C"}

// condition returns true if the condition with the given encoding holds.
func (c *CPU) condition(cc uint8) bool {
	switch cc {
	case 0:
		return !c.isFlagSet(FlagZero)
	case 1:
		return c.isFlagSet(FlagZero)
	case 2:
		return !c.isFlagSet(FlagCarry)
	default:
		return c.isFlagSet(FlagCarry)
	}
}

// jumpRelative jumps to the address relative to the current PC, if the
// given condition is true. The offset is read in either case.
//
//	JR e
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(condition bool) {
	offset := int8(c.readOperand())
	if condition {
		c.PC = uint16(int32(c.PC) + int32(offset))
		c.tickCycle()
	}
}

// jumpAbsolute jumps to the 16-bit immediate address, if the given
// condition is true.
//
//	JP nn
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute(condition bool) {
	address := c.readOperand16()
	if condition {
		c.PC = address
		c.tickCycle()
	}
}

// call pushes the address of the next instruction onto the stack and
// jumps to the 16-bit immediate address, if the given condition is true.
//
//	CALL nn
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) call(condition bool) {
	address := c.readOperand16()
	if condition {
		c.tickCycle()
		c.push(c.PC)
		c.PC = address
	}
}

// ret pops the top two bytes off the stack and jumps to that address.
//
//	RET
func (c *CPU) ret() {
	address := c.pop()
	c.tickCycle()
	c.PC = address
}

// retConditional returns if the given condition is true. Evaluating
// the condition costs a cycle of its own.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) retConditional(condition bool) {
	c.tickCycle()
	if condition {
		c.ret()
	}
}

// rst pushes the address of the next instruction onto the stack and
// jumps to one of the fixed restart vectors.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) rst(vector uint16) {
	c.tickCycle()
	c.push(c.PC)
	c.PC = vector
}

func defineJumpInstructions() {
	DefineInstruction(0x18, "JR r8", func(c *CPU) { c.jumpRelative(true) })
	DefineInstruction(0xC3, "JP a16", func(c *CPU) { c.jumpAbsolute(true) })
	DefineInstruction(0xCD, "CALL a16", func(c *CPU) { c.call(true) })
	DefineInstruction(0xC9, "RET", func(c *CPU) { c.ret() })
	DefineInstruction(0xD9, "RETI", func(c *CPU) {
		c.ret()
		c.SetIME(true)
	})
	DefineInstruction(0xE9, "JP (HL)", func(c *CPU) { c.PC = c.Read16(HL) })

	for i := uint8(0); i < 4; i++ {
		cc := i
		DefineInstruction(0x20+cc*8, fmt.Sprintf("JR %s, r8", conditions[cc]), func(c *CPU) {
			c.jumpRelative(c.condition(cc))
		})
		DefineInstruction(0xC0+cc*8, fmt.Sprintf("RET %s", conditions[cc]), func(c *CPU) {
			c.retConditional(c.condition(cc))
		})
		DefineInstruction(0xC2+cc*8, fmt.Sprintf("JP %s, a16", conditions[cc]), func(c *CPU) {
			c.jumpAbsolute(c.condition(cc))
		})
		DefineInstruction(0xC4+cc*8, fmt.Sprintf("CALL %s, a16", conditions[cc]), func(c *CPU) {
			c.call(c.condition(cc))
		})
	}

	generateRSTInstructions()
}

// generateRSTInstructions generates the 8 RST instructions.
func generateRSTInstructions() {
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 8
		DefineInstruction(0xC7+i*8, fmt.Sprintf("RST %02XH", vector), func(c *CPU) {
			c.rst(vector)
		})
	}
}
