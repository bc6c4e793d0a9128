package cpu

import (
	"errors"
	"fmt"
)

// ErrUnimplementedOpcode is matched by every *UnimplementedOpcodeError.
var ErrUnimplementedOpcode = errors.New("unimplemented opcode")

// UnimplementedOpcodeError is returned by Tick when the fetched opcode
// has no behaviour. This covers the opcodes that are not assigned on
// the SM83, as well as STOP, HALT, ADD SP, r8 and LD HL, SP+r8.
type UnimplementedOpcodeError struct {
	Opcode   uint8
	Extended bool
	PC       uint16
	Name     string
}

func (e *UnimplementedOpcodeError) Error() string {
	if e.Extended {
		return fmt.Sprintf("%v: CB %02X (%s) at %04X", ErrUnimplementedOpcode, e.Opcode, e.Name, e.PC)
	}
	return fmt.Sprintf("%v: %02X (%s) at %04X", ErrUnimplementedOpcode, e.Opcode, e.Name, e.PC)
}

// Is reports whether target is ErrUnimplementedOpcode.
func (e *UnimplementedOpcodeError) Is(target error) bool {
	return target == ErrUnimplementedOpcode
}
