// Package cpu implements the Sharp SM83, the CPU of the Game Boy.
// Instructions are executed one at a time by Tick, and cost exactly
// as many T-cycles as the DMG takes to run them.
package cpu

import "github.com/thelolagemann/dmgcore/pkg/bits"

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304

	// prefixCB selects the extended instruction set.
	prefixCB = 0xCB
)

// Bus is the address space the CPU reads from and writes to.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers, the 16-bit register
	// pairs, SP, PC and IME.
	Registers

	bus    Bus
	tracer Tracer

	currentTick uint8
}

// Opt configures a CPU.
type Opt func(c *CPU)

// WithTracer sets a Tracer that is handed an Event after every
// successfully executed instruction.
func WithTracer(t Tracer) Opt {
	return func(c *CPU) {
		c.tracer = t
	}
}

// NewCPU creates a new CPU instance with the given Bus. The registers
// hold their post boot ROM values, see Reset.
func NewCPU(bus Bus, opts ...Opt) *CPU {
	c := &CPU{
		Registers: NewRegisters(false),
		bus:       bus,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Reset sets the registers to their power on values, depending on
// whether a boot ROM is mapped.
func (c *CPU) Reset(bootROM bool) {
	c.Registers = NewRegisters(bootROM)
}

// Tick executes a single instruction and returns the number of
// T-cycles it took. An opcode that is not implemented is reported with
// an *UnimplementedOpcodeError, after the opcode has been fetched but
// before anything else is changed.
func (c *CPU) Tick() (uint8, error) {
	// reset tick counter
	c.currentTick = 0

	pc := c.PC
	opcode := c.readOperand()
	extended := false
	instruction := InstructionSet[opcode]
	if opcode == prefixCB {
		opcode = c.readOperand()
		extended = true
		instruction = InstructionSetCB[opcode]
	}

	if instruction.fn == nil {
		return c.currentTick, &UnimplementedOpcodeError{
			Opcode:   opcode,
			Extended: extended,
			PC:       pc,
			Name:     instruction.name,
		}
	}

	instruction.fn(c)

	if c.tracer != nil {
		c.tracer.Trace(Event{
			PC:        pc,
			Opcode:    opcode,
			Extended:  extended,
			Name:      instruction.name,
			Cycles:    c.currentTick,
			Registers: c.Registers,
		})
	}

	return c.currentTick, nil
}

// tickCycle advances the instruction by one machine cycle.
func (c *CPU) tickCycle() {
	c.currentTick += 4
}

// readOperand reads the byte at PC and increments PC. Opcodes are
// fetched the same way.
func (c *CPU) readOperand() uint8 {
	c.tickCycle()
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads a little endian 16-bit operand.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return bits.Join(high, low)
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	c.tickCycle()
	return c.bus.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.tickCycle()
	c.bus.Write(addr, val)
}

// push writes a 16-bit value to the stack, high byte first.
func (c *CPU) push(value uint16) {
	c.SP--
	c.writeByte(c.SP, bits.High(value))
	c.SP--
	c.writeByte(c.SP, bits.Low(value))
}

// pop reads a 16-bit value from the stack, low byte first.
func (c *CPU) pop() uint16 {
	low := c.readByte(c.SP)
	c.SP++
	high := c.readByte(c.SP)
	c.SP++
	return bits.Join(high, low)
}

// registerNames are the operands encoded by the lower 3 bits of most
// opcodes, in encoding order.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// load8 returns the operand with the given encoding. Index 6 reads the
// byte addressed by HL.
func (c *CPU) load8(index uint8) uint8 {
	switch index {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.readByte(c.Read16(HL))
	default:
		return c.A
	}
}

// store8 sets the operand with the given encoding. Index 6 writes the
// byte addressed by HL.
func (c *CPU) store8(index uint8, value uint8) {
	switch index {
	case 0:
		c.B = value
	case 1:
		c.C = value
	case 2:
		c.D = value
	case 3:
		c.E = value
	case 4:
		c.H = value
	case 5:
		c.L = value
	case 6:
		c.writeByte(c.Read16(HL), value)
	default:
		c.A = value
	}
}
