package cpu

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/pkg/bits"
)

// Register identifies one of the 8-bit registers.
type Register uint8

const (
	A Register = iota
	B
	C
	D
	E
	F
	H
	L
)

var registerNameMap = map[Register]string{
	A: "A",
	B: "B",
	C: "C",
	D: "D",
	E: "E",
	F: "F",
	H: "H",
	L: "L",
}

func (r Register) String() string {
	return registerNameMap[r]
}

// Pair identifies a 16-bit view of the register file. AF, BC, DE and
// HL are formed from two 8-bit registers, SP and PC are stored
// independently.
type Pair uint8

const (
	AF Pair = iota
	BC
	DE
	HL
	SP
	PC
)

var pairNameMap = map[Pair]string{
	AF: "AF",
	BC: "BC",
	DE: "DE",
	HL: "HL",
	SP: "SP",
	PC: "PC",
}

func (p Pair) String() string {
	return pairNameMap[p]
}

// Registers holds the register file of the SM83. The 16-bit pairs AF,
// BC, DE and HL have no storage of their own, they are views over the
// 8-bit registers with the first register as the high byte.
type Registers struct {
	A, B, C, D, E, F, H, L uint8

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next byte to be fetched.
	PC uint16

	ime bool
}

// NewRegisters returns the register file as it is left after power on.
// When a boot ROM is mapped every register starts at zero, so the boot
// ROM runs from 0x0000. Otherwise the values the DMG boot ROM leaves
// behind are used, and execution starts at the cartridge entry point.
func NewRegisters(bootROM bool) Registers {
	if bootROM {
		return Registers{}
	}
	return Registers{
		A:  0x01,
		F:  0x00,
		B:  0x00,
		C:  0x13,
		D:  0x00,
		E:  0xD8,
		H:  0x01,
		L:  0x4D,
		SP: 0xFFFE,
		PC: 0x0100,
	}
}

// Read8 returns the value of the given 8-bit register.
func (r *Registers) Read8(reg Register) uint8 {
	switch reg {
	case A:
		return r.A
	case B:
		return r.B
	case C:
		return r.C
	case D:
		return r.D
	case E:
		return r.E
	case F:
		return r.F
	case H:
		return r.H
	case L:
		return r.L
	}
	panic(fmt.Sprintf("invalid register: %d", reg))
}

// Write8 sets the given 8-bit register. The lower nibble of F does not
// exist on hardware and is always masked off.
func (r *Registers) Write8(reg Register, value uint8) {
	switch reg {
	case A:
		r.A = value
	case B:
		r.B = value
	case C:
		r.C = value
	case D:
		r.D = value
	case E:
		r.E = value
	case F:
		r.F = value & 0xF0
	case H:
		r.H = value
	case L:
		r.L = value
	default:
		panic(fmt.Sprintf("invalid register: %d", reg))
	}
}

// Read16 returns the value of the given 16-bit view.
func (r *Registers) Read16(pair Pair) uint16 {
	switch pair {
	case AF:
		return bits.Join(r.A, r.F)
	case BC:
		return bits.Join(r.B, r.C)
	case DE:
		return bits.Join(r.D, r.E)
	case HL:
		return bits.Join(r.H, r.L)
	case SP:
		return r.SP
	case PC:
		return r.PC
	}
	panic(fmt.Sprintf("invalid register pair: %d", pair))
}

// Write16 sets the given 16-bit view, high byte first.
func (r *Registers) Write16(pair Pair, value uint16) {
	switch pair {
	case AF:
		r.A, r.F = bits.High(value), bits.Low(value)&0xF0
	case BC:
		r.B, r.C = bits.High(value), bits.Low(value)
	case DE:
		r.D, r.E = bits.High(value), bits.Low(value)
	case HL:
		r.H, r.L = bits.High(value), bits.Low(value)
	case SP:
		r.SP = value
	case PC:
		r.PC = value
	default:
		panic(fmt.Sprintf("invalid register pair: %d", pair))
	}
}

// IME returns the state of the interrupt master enable flag.
func (r *Registers) IME() bool {
	return r.ime
}

// SetIME sets the interrupt master enable flag.
func (r *Registers) SetIME(enabled bool) {
	r.ime = enabled
}

func (r Registers) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X",
		r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L, r.SP, r.PC)
}
