package cpu

import "fmt"

// defineCBInstructions generates the extended instruction set. Every
// opcode operates on the operand encoded by its lower 3 bits.
//
//	0x00 - 0x3F  RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL
//	0x40 - 0x7F  BIT b
//	0x80 - 0xBF  RES b
//	0xC0 - 0xFF  SET b
func defineCBInstructions() {
	generateRotateInstructions()
	generateShiftInstructions()
	generateBitInstructions()
}

// modifyOperand reads the operand with the given encoding, applies op
// and writes the result back.
func (c *CPU) modifyOperand(index uint8, op func(uint8) uint8) {
	c.store8(index, op(c.load8(index)))
}

func generateRotateInstructions() {
	// loop through each register (B, C, D, E, H, L, (HL), A)
	for j := uint8(0); j < 8; j++ {
		reg := j

		// 0x00 - 0x07 - RLC r
		DefineInstructionCB(0x00+reg, fmt.Sprintf("RLC %s", registerNames[reg]), func(c *CPU) {
			c.modifyOperand(reg, c.rotateLeftCarry)
		})

		// 0x08 - 0x0F - RRC r
		DefineInstructionCB(0x08+reg, fmt.Sprintf("RRC %s", registerNames[reg]), func(c *CPU) {
			c.modifyOperand(reg, c.rotateRightCarry)
		})

		// 0x10 - 0x17 - RL r
		DefineInstructionCB(0x10+reg, fmt.Sprintf("RL %s", registerNames[reg]), func(c *CPU) {
			c.modifyOperand(reg, c.rotateLeftThroughCarry)
		})

		// 0x18 - 0x1F - RR r
		DefineInstructionCB(0x18+reg, fmt.Sprintf("RR %s", registerNames[reg]), func(c *CPU) {
			c.modifyOperand(reg, c.rotateRightThroughCarry)
		})
	}
}

func generateShiftInstructions() {
	// loop through each register (B, C, D, E, H, L, (HL), A)
	for j := uint8(0); j < 8; j++ {
		reg := j

		// 0x20 - 0x27 - SLA r
		DefineInstructionCB(0x20+reg, fmt.Sprintf("SLA %s", registerNames[reg]), func(c *CPU) {
			c.modifyOperand(reg, c.shiftLeftArithmetic)
		})

		// 0x28 - 0x2F - SRA r
		DefineInstructionCB(0x28+reg, fmt.Sprintf("SRA %s", registerNames[reg]), func(c *CPU) {
			c.modifyOperand(reg, c.shiftRightArithmetic)
		})

		// 0x30 - 0x37 - SWAP r
		DefineInstructionCB(0x30+reg, fmt.Sprintf("SWAP %s", registerNames[reg]), func(c *CPU) {
			c.modifyOperand(reg, c.swap)
		})

		// 0x38 - 0x3F - SRL r
		DefineInstructionCB(0x38+reg, fmt.Sprintf("SRL %s", registerNames[reg]), func(c *CPU) {
			c.modifyOperand(reg, c.shiftRightLogical)
		})
	}
}

func generateBitInstructions() {
	for b := uint8(0); b < 8; b++ {
		for j := uint8(0); j < 8; j++ {
			position, reg := b, j

			// 0x40 - 0x7F - BIT b, r
			DefineInstructionCB(0x40+position*8+reg, fmt.Sprintf("BIT %d, %s", position, registerNames[reg]), func(c *CPU) {
				c.testBit(c.load8(reg), position)
			})

			// 0x80 - 0xBF - RES b, r
			DefineInstructionCB(0x80+position*8+reg, fmt.Sprintf("RES %d, %s", position, registerNames[reg]), func(c *CPU) {
				c.store8(reg, resetBit(c.load8(reg), position))
			})

			// 0xC0 - 0xFF - SET b, r
			DefineInstructionCB(0xC0+position*8+reg, fmt.Sprintf("SET %d, %s", position, registerNames[reg]), func(c *CPU) {
				c.store8(reg, setBit(c.load8(reg), position))
			})
		}
	}
}
