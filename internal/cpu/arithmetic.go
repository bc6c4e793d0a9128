package cpu

import "fmt"

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 0x01
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.isFlagSet(FlagCarry))
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 0x01
	c.setFlags(decremented == 0, true, n&0xF == 0, c.isFlagSet(FlagCarry))
	return decremented
}

// incrementNN increments the given pair by 1. No flags are affected.
//
//	INC nn
//	nn = BC, DE, HL, SP
func (c *CPU) incrementNN(pair Pair) {
	c.Write16(pair, c.Read16(pair)+1)
	c.tickCycle()
}

// decrementNN decrements the given pair by 1. No flags are affected.
//
//	DEC nn
//	nn = BC, DE, HL, SP
func (c *CPU) decrementNN(pair Pair) {
	c.Write16(pair, c.Read16(pair)-1)
	c.tickCycle()
}

// addHLRR adds the given pair to HL.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
func (c *CPU) addHLRR(pair Pair) {
	c.Write16(HL, c.addUint16(c.Read16(HL), c.Read16(pair)))
	c.tickCycle()
}

// add is a helper function for adding n to A and setting the flags
// accordingly.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, shouldCarry bool) {
	newCarry := c.isFlagSet(FlagCarry) && shouldCarry
	sum := uint16(c.A) + uint16(n)
	sumHalf := (c.A & 0xF) + (n & 0xF)
	if newCarry {
		sum++
		sumHalf++
	}
	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// addUint16 is a helper function for adding two uint16 values together and
// setting the flags accordingly.
//
// Used by:
//
//	ADD HL, nn
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	c.setFlags(c.isFlagSet(FlagZero), false, (a&0xFFF)+(b&0xFFF) > 0xFFF, sum > 0xFFFF)
	return uint16(sum)
}

// sub is a helper function for subtracting n from A and setting the
// flags accordingly.
//
// Used by:
//
//	SUB A, n
//	SBC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Set if no borrow.
func (c *CPU) sub(n uint8, shouldCarry bool) {
	newCarry := c.isFlagSet(FlagCarry) && shouldCarry
	sub := int16(c.A) - int16(n)
	subHalf := int16(c.A&0xF) - int16(n&0xF)
	if newCarry {
		sub--
		subHalf--
	}

	c.setFlags(uint8(sub) == 0, true, subHalf < 0, sub < 0)
	c.A = uint8(sub)
}

// decimalAdjust adjusts A to hold the binary coded decimal result of
// the previous addition or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the adjustment carried out of bit 7.
func (c *CPU) decimalAdjust() {
	carry := c.isFlagSet(FlagCarry)
	if !c.isFlagSet(FlagSubtract) {
		if carry || c.A > 0x99 {
			c.A += 0x60
			carry = true
		}
		if c.isFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
			c.A += 0x06
		}
	} else if carry && c.isFlagSet(FlagHalfCarry) {
		c.A += 0x9A
	} else if carry {
		c.A += 0xA0
	} else if c.isFlagSet(FlagHalfCarry) {
		c.A += 0xFA
	}
	c.setFlags(c.A == 0, c.isFlagSet(FlagSubtract), false, carry)
}

// pushNN pushes the given pair onto the stack.
//
//	PUSH nn
//	nn = BC, DE, HL, AF
func (c *CPU) pushNN(pair Pair) {
	c.tickCycle()
	c.push(c.Read16(pair))
}

// popNN pops the given pair off the stack. Popping into AF discards
// the lower nibble of F.
//
//	POP nn
//	nn = BC, DE, HL, AF
func (c *CPU) popNN(pair Pair) {
	c.Write16(pair, c.pop())
}

func defineArithmeticInstructions() {
	pairs := [4]Pair{BC, DE, HL, SP}
	for i, pair := range pairs {
		p := pair
		opcode := uint8(i) << 4
		DefineInstruction(0x03+opcode, fmt.Sprintf("INC %s", p), func(c *CPU) { c.incrementNN(p) })
		DefineInstruction(0x0B+opcode, fmt.Sprintf("DEC %s", p), func(c *CPU) { c.decrementNN(p) })
		DefineInstruction(0x09+opcode, fmt.Sprintf("ADD HL, %s", p), func(c *CPU) { c.addHLRR(p) })
	}

	stackPairs := [4]Pair{BC, DE, HL, AF}
	for i, pair := range stackPairs {
		p := pair
		opcode := uint8(i) << 4
		DefineInstruction(0xC1+opcode, fmt.Sprintf("POP %s", p), func(c *CPU) { c.popNN(p) })
		DefineInstruction(0xC5+opcode, fmt.Sprintf("PUSH %s", p), func(c *CPU) { c.pushNN(p) })
	}

	DefineInstruction(0x27, "DAA", func(c *CPU) { c.decimalAdjust() })

	DefineInstruction(0xC6, "ADD A, d8", func(c *CPU) { c.add(c.readOperand(), false) })
	DefineInstruction(0xCE, "ADC A, d8", func(c *CPU) { c.add(c.readOperand(), true) })
	DefineInstruction(0xD6, "SUB d8", func(c *CPU) { c.sub(c.readOperand(), false) })
	DefineInstruction(0xDE, "SBC A, d8", func(c *CPU) { c.sub(c.readOperand(), true) })

	// signed SP arithmetic is not modelled
	DefineInstruction(0xE8, "ADD SP, r8", nil)

	generateIncrementInstructions()
	generateArithmeticInstructions()
}

// generateIncrementInstructions generates INC n and DEC n for each operand.
//
//	0x04 INC B
//	0x05 DEC B
//	....
//	0x3D DEC A
func generateIncrementInstructions() {
	for i := uint8(0); i < 8; i++ {
		reg := i
		DefineInstruction(0x04+reg*8, fmt.Sprintf("INC %s", registerNames[reg]), func(c *CPU) {
			c.store8(reg, c.increment(c.load8(reg)))
		})
		DefineInstruction(0x05+reg*8, fmt.Sprintf("DEC %s", registerNames[reg]), func(c *CPU) {
			c.store8(reg, c.decrement(c.load8(reg)))
		})
	}
}

// generateArithmeticInstructions generates ADD, ADC, SUB and SBC for
// each operand.
//
//	0x80 ADD A, B
//	....
//	0x9F SBC A, A
func generateArithmeticInstructions() {
	for i := uint8(0); i < 8; i++ {
		from := i
		DefineInstruction(0x80+from, fmt.Sprintf("ADD A, %s", registerNames[from]), func(c *CPU) {
			c.add(c.load8(from), false)
		})
		DefineInstruction(0x88+from, fmt.Sprintf("ADC A, %s", registerNames[from]), func(c *CPU) {
			c.add(c.load8(from), true)
		})
		DefineInstruction(0x90+from, fmt.Sprintf("SUB %s", registerNames[from]), func(c *CPU) {
			c.sub(c.load8(from), false)
		})
		DefineInstruction(0x98+from, fmt.Sprintf("SBC A, %s", registerNames[from]), func(c *CPU) {
			c.sub(c.load8(from), true)
		})
	}
}
