package cpu

import "fmt"

// disallowedOpcodes are not assigned to any instruction on the SM83.
var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	defineControlInstructions()
	defineLoadInstructions()
	defineArithmeticInstructions()
	defineLogicInstructions()
	defineRotateInstructions()
	defineJumpInstructions()
	defineCBInstructions()

	if err := verifyInstructionSets(); err != nil {
		panic(err)
	}
}

func defineControlInstructions() {
	DefineInstruction(0x00, "NOP", func(c *CPU) {})
	DefineInstruction(0xF3, "DI", func(c *CPU) { c.SetIME(false) })
	DefineInstruction(0xFB, "EI", func(c *CPU) { c.SetIME(true) })

	// dispatched by Tick
	DefineInstruction(prefixCB, "PREFIX CB", nil)

	// low power modes are not modelled
	DefineInstruction(0x10, "STOP", nil)
	DefineInstruction(0x76, "HALT", nil)

	for _, opcode := range disallowedOpcodes {
		DefineInstruction(opcode, fmt.Sprintf("ILLEGAL %02X", opcode), nil)
	}
}

// verifyInstructionSets ensures that every opcode of both instruction
// sets has been defined.
func verifyInstructionSets() error {
	for i, instruction := range InstructionSet {
		if instruction.name == "" {
			return fmt.Errorf("cpu: opcode %02X is not defined", i)
		}
	}
	for i, instruction := range InstructionSetCB {
		if instruction.name == "" {
			return fmt.Errorf("cpu: opcode CB %02X is not defined", i)
		}
		if instruction.fn == nil {
			return fmt.Errorf("cpu: opcode CB %02X is not implemented", i)
		}
	}
	return nil
}
