package cpu

// Event describes an executed instruction.
type Event struct {
	// PC is the address the opcode was fetched from.
	PC       uint16
	Opcode   uint8
	Extended bool
	Name     string
	// Cycles is the number of T-cycles the instruction took.
	Cycles uint8
	// Registers is the register file after the instruction.
	Registers Registers
}

// Tracer receives an Event for every executed instruction.
type Tracer interface {
	Trace(e Event)
}

// TracerFunc is an adapter to allow the use of ordinary functions as
// a Tracer.
type TracerFunc func(e Event)

// Trace calls f(e).
func (f TracerFunc) Trace(e Event) {
	f(e)
}

// Mnemonic returns the name of the instruction with the given opcode.
func Mnemonic(opcode uint8, extended bool) string {
	if extended {
		return InstructionSetCB[opcode].name
	}
	return InstructionSet[opcode].name
}
