package cpu

import "fmt"

// loadRegister16 loads a 16-bit immediate value into the given pair.
//
//	LD nn, d16
//	nn = BC, DE, HL, SP
func (c *CPU) loadRegister16(pair Pair) {
	c.Write16(pair, c.readOperand16())
}

// loadMemoryToAccumulator loads the byte at the given address into A.
//
//	LD A, (nn)
func (c *CPU) loadMemoryToAccumulator(address uint16) {
	c.A = c.readByte(address)
}

// loadAccumulatorToMemory stores A at the given address.
//
//	LD (nn), A
func (c *CPU) loadAccumulatorToMemory(address uint16) {
	c.writeByte(address, c.A)
}

// loadAccumulatorToHardware stores A in the high page, 0xFF00 + offset.
//
//	LDH (a8), A
//	LD (C), A
func (c *CPU) loadAccumulatorToHardware(offset uint8) {
	c.writeByte(0xFF00+uint16(offset), c.A)
}

// loadHardwareToAccumulator loads the byte at 0xFF00 + offset into A.
//
//	LDH A, (a8)
//	LD A, (C)
func (c *CPU) loadHardwareToAccumulator(offset uint8) {
	c.A = c.readByte(0xFF00 + uint16(offset))
}

func defineLoadInstructions() {
	DefineInstruction(0x01, "LD BC, d16", func(c *CPU) { c.loadRegister16(BC) })
	DefineInstruction(0x11, "LD DE, d16", func(c *CPU) { c.loadRegister16(DE) })
	DefineInstruction(0x21, "LD HL, d16", func(c *CPU) { c.loadRegister16(HL) })
	DefineInstruction(0x31, "LD SP, d16", func(c *CPU) { c.loadRegister16(SP) })

	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) { c.loadAccumulatorToMemory(c.Read16(BC)) })
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) { c.loadAccumulatorToMemory(c.Read16(DE)) })
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) { c.loadMemoryToAccumulator(c.Read16(BC)) })
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) { c.loadMemoryToAccumulator(c.Read16(DE)) })

	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) {
		hl := c.Read16(HL)
		c.loadAccumulatorToMemory(hl)
		c.Write16(HL, hl+1)
	})
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) {
		hl := c.Read16(HL)
		c.loadMemoryToAccumulator(hl)
		c.Write16(HL, hl+1)
	})
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) {
		hl := c.Read16(HL)
		c.loadAccumulatorToMemory(hl)
		c.Write16(HL, hl-1)
	})
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) {
		hl := c.Read16(HL)
		c.loadMemoryToAccumulator(hl)
		c.Write16(HL, hl-1)
	})

	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU) {
		address := c.readOperand16()
		c.writeByte(address, uint8(c.SP))
		c.writeByte(address+1, uint8(c.SP>>8))
	})

	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) { c.loadAccumulatorToHardware(c.readOperand()) })
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) { c.loadHardwareToAccumulator(c.readOperand()) })
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) { c.loadAccumulatorToHardware(c.C) })
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) { c.loadHardwareToAccumulator(c.C) })
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) { c.loadAccumulatorToMemory(c.readOperand16()) })
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) { c.loadMemoryToAccumulator(c.readOperand16()) })

	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU) {
		c.SP = c.Read16(HL)
		c.tickCycle()
	})
	// signed SP arithmetic is not modelled
	DefineInstruction(0xF8, "LD HL, SP+r8", nil)

	generateLoadImmediateInstructions()
	generateLoadRegisterToRegisterInstructions()
}

// generateLoadImmediateInstructions generates LD r, d8 for each operand.
//
//	0x06 LD B, d8
//	0x0E LD C, d8
//	....
//	0x3E LD A, d8
func generateLoadImmediateInstructions() {
	for i := uint8(0); i < 8; i++ {
		to := i
		DefineInstruction(0x06+to*8, fmt.Sprintf("LD %s, d8", registerNames[to]), func(c *CPU) {
			c.store8(to, c.readOperand())
		})
	}
}

// generateLoadRegisterToRegisterInstructions generates the instructions
// for loading a register to another register. (e.g. LD B, A)
//
// The instructions are generated in the following format:
//
//	0x40 LD B, B
//	0x41 LD B, C
//	....
//	0x7F LD A, A
//
// 0x76, which would be LD (HL), (HL), is HALT.
func generateLoadRegisterToRegisterInstructions() {
	for i := uint8(0); i < 8; i++ {
		for j := uint8(0); j < 8; j++ {
			if i == 6 && j == 6 {
				continue
			}
			to, from := i, j
			DefineInstruction(0x40+to*8+from, fmt.Sprintf("LD %s, %s", registerNames[to], registerNames[from]), func(c *CPU) {
				c.store8(to, c.load8(from))
			})
		}
	}
}
