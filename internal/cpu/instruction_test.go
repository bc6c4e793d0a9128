package cpu

import "testing"

func TestInstruction_Timing(t *testing.T) {
	// machine cycles, conditional instructions not taken
	timings := []uint8{
		1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1,
		0, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1,
		2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1,
		2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		2, 2, 2, 2, 2, 2, 0, 2, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 0, 3, 6, 2, 4,
		2, 3, 3, 0, 3, 4, 2, 4, 2, 4, 3, 0, 3, 0, 2, 4,
		3, 3, 2, 0, 0, 4, 2, 4, 0, 1, 4, 0, 0, 0, 2, 4,
		3, 3, 2, 1, 0, 4, 2, 4, 0, 2, 4, 1, 0, 0, 2, 4,
	}
	for i, timing := range timings {
		if timing == 0 {
			continue
		}
		opcode := uint8(i)

		testInstruction(t, InstructionSet[opcode].Name(), []uint8{opcode, 0x00, 0x00}, func(t *testing.T, c *CPU) {
			// make every condition false: NZ and NC with Z and C set,
			// Z and C with Z and C reset
			if opcode&0x08 == 0 {
				c.F = 0xF0
			} else {
				c.F = 0x00
			}
			c.Write16(HL, 0xC100)

			if cycles := step(t, c); cycles != timing*4 {
				t.Errorf("expected %d cycles, got %d", timing*4, cycles)
			}
		})
	}

	cbTimings := []uint8{
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	}
	for i, timing := range cbTimings {
		opcode := uint8(i)

		testInstruction(t, InstructionSetCB[opcode].Name(), []uint8{prefixCB, opcode}, func(t *testing.T, c *CPU) {
			c.Write16(HL, 0xC100)

			if cycles := step(t, c); cycles != timing*4 {
				t.Errorf("expected %d cycles, got %d", timing*4, cycles)
			}
		})
	}
}

func TestInstruction_TimingTaken(t *testing.T) {
	tests := []struct {
		opcode uint8
		cycles uint8
	}{
		{0x20, 12}, {0x28, 12}, {0x30, 12}, {0x38, 12}, // JR cc
		{0xC2, 16}, {0xCA, 16}, {0xD2, 16}, {0xDA, 16}, // JP cc
		{0xC4, 24}, {0xCC, 24}, {0xD4, 24}, {0xDC, 24}, // CALL cc
		{0xC0, 20}, {0xC8, 20}, {0xD0, 20}, {0xD8, 20}, // RET cc
	}
	for _, tt := range tests {
		tt := tt
		testInstruction(t, InstructionSet[tt.opcode].Name(), []uint8{tt.opcode, 0x00, 0xC0}, func(t *testing.T, c *CPU) {
			// make every condition true
			if tt.opcode&0x08 == 0 {
				c.F = 0x00
			} else {
				c.F = 0xF0
			}

			if cycles := step(t, c); cycles != tt.cycles {
				t.Errorf("expected %d cycles, got %d", tt.cycles, cycles)
			}
		})
	}
}

func TestInstruction_Names(t *testing.T) {
	seen := make(map[string]uint8)
	for i, instruction := range InstructionSet {
		if prev, ok := seen[instruction.name]; ok {
			t.Errorf("opcode 0x%02X shares the name %q with 0x%02X", i, instruction.name, prev)
		}
		seen[instruction.name] = uint8(i)
	}
	seenCB := make(map[string]bool)
	for i, instruction := range InstructionSetCB {
		if seenCB[instruction.name] {
			t.Errorf("opcode CB 0x%02X has a duplicate name %q", i, instruction.name)
		}
		seenCB[instruction.name] = true
	}
}
