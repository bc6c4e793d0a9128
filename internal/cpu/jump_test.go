package cpu

import "testing"

func TestInstruction_Jump(t *testing.T) {
	// 0x18 - JR r8
	t.Run("JR -2", func(t *testing.T) {
		c := newTestCPU()
		c.bus.Write(0x0200, 0x18)
		c.bus.Write(0x0201, 0xFE)
		c.PC = 0x0200

		for i := 0; i < 3; i++ {
			if cycles := step(t, c); cycles != 12 {
				t.Errorf("expected 12 cycles, got %d", cycles)
			}
			if c.PC != 0x0200 {
				t.Fatalf("expected PC to stay at 0x0200, got 0x%04X", c.PC)
			}
		}
	})
	t.Run("JR forward", func(t *testing.T) {
		c := newTestCPU(0x18, 0x7F)

		step(t, c)
		if c.PC != programStart+2+0x7F {
			t.Errorf("expected PC to be 0x%04X, got 0x%04X", programStart+2+0x7F, c.PC)
		}
	})
	// 0x20 - JR NZ, r8
	testInstruction(t, "JR NZ, r8 taken", []uint8{0x20, 0x10}, func(t *testing.T, c *CPU) {
		c.F = 0

		step(t, c)
		if c.PC != programStart+0x12 {
			t.Errorf("expected PC to be 0x%04X, got 0x%04X", programStart+0x12, c.PC)
		}
	})
	testInstruction(t, "JR NZ, r8 not taken", []uint8{0x20, 0x10}, func(t *testing.T, c *CPU) {
		c.F = FlagZero

		step(t, c)
		if c.PC != programStart+2 {
			t.Errorf("expected PC to be 0x%04X, got 0x%04X", programStart+2, c.PC)
		}
	})
	// 0xC3 - JP a16
	testInstruction(t, "JP a16", []uint8{0xC3, 0x34, 0x12}, func(t *testing.T, c *CPU) {
		if cycles := step(t, c); cycles != 16 {
			t.Errorf("expected 16 cycles, got %d", cycles)
		}
		if c.PC != 0x1234 {
			t.Errorf("expected PC to be 0x1234, got 0x%04X", c.PC)
		}
	})
	// 0xDA - JP C, a16
	testInstruction(t, "JP C, a16 not taken", []uint8{0xDA, 0x34, 0x12}, func(t *testing.T, c *CPU) {
		c.F = 0

		step(t, c)
		if c.PC != programStart+3 {
			t.Errorf("expected PC to be 0x%04X, got 0x%04X", programStart+3, c.PC)
		}
	})
	// 0xE9 - JP (HL)
	testInstruction(t, "JP (HL)", []uint8{0xE9}, func(t *testing.T, c *CPU) {
		c.Write16(HL, 0x4000)

		if cycles := step(t, c); cycles != 4 {
			t.Errorf("expected 4 cycles, got %d", cycles)
		}
		if c.PC != 0x4000 {
			t.Errorf("expected PC to be 0x4000, got 0x%04X", c.PC)
		}
	})
}

func TestInstruction_Call(t *testing.T) {
	// 0xCD - CALL a16, 0xC9 - RET
	testInstruction(t, "CALL a16", []uint8{0xCD, 0x00, 0xC1}, func(t *testing.T, c *CPU) {
		c.bus.Write(0xC100, 0xC9)
		sp := c.SP

		if cycles := step(t, c); cycles != 24 {
			t.Errorf("expected 24 cycles, got %d", cycles)
		}
		if c.PC != 0xC100 {
			t.Errorf("expected PC to be 0xC100, got 0x%04X", c.PC)
		}
		if c.SP != sp-2 {
			t.Errorf("expected SP to be 0x%04X, got 0x%04X", sp-2, c.SP)
		}
		if c.bus.Read(sp-1) != 0xC0 || c.bus.Read(sp-2) != 0x03 {
			t.Errorf("expected return address 0xC003 on the stack")
		}

		if cycles := step(t, c); cycles != 16 {
			t.Errorf("expected 16 cycles, got %d", cycles)
		}
		if c.PC != programStart+3 {
			t.Errorf("expected PC to be 0x%04X, got 0x%04X", programStart+3, c.PC)
		}
		if c.SP != sp {
			t.Errorf("expected SP to be 0x%04X, got 0x%04X", sp, c.SP)
		}
	})
	// 0xC4 - CALL NZ, a16
	testInstruction(t, "CALL NZ, a16 not taken", []uint8{0xC4, 0x00, 0xC1}, func(t *testing.T, c *CPU) {
		c.F = FlagZero
		sp := c.SP

		step(t, c)
		if c.PC != programStart+3 || c.SP != sp {
			t.Errorf("expected PC=0x%04X SP=0x%04X, got PC=0x%04X SP=0x%04X", programStart+3, sp, c.PC, c.SP)
		}
	})
	// 0xD8 - RET C
	testInstruction(t, "RET C", []uint8{0xD8, 0xD8}, func(t *testing.T, c *CPU) {
		c.push(0x1234)
		sp := c.SP

		c.F = 0
		if cycles := step(t, c); cycles != 8 {
			t.Errorf("expected 8 cycles, got %d", cycles)
		}
		if c.SP != sp || c.PC != programStart+1 {
			t.Errorf("expected stack to be untouched, got PC=0x%04X SP=0x%04X", c.PC, c.SP)
		}

		c.F = FlagCarry
		if cycles := step(t, c); cycles != 20 {
			t.Errorf("expected 20 cycles, got %d", cycles)
		}
		if c.PC != 0x1234 || c.SP != sp+2 {
			t.Errorf("expected PC=0x1234 SP=0x%04X, got PC=0x%04X SP=0x%04X", sp+2, c.PC, c.SP)
		}
	})
	// 0xD9 - RETI
	testInstruction(t, "RETI", []uint8{0xD9}, func(t *testing.T, c *CPU) {
		c.push(0x0150)
		c.SetIME(false)

		if cycles := step(t, c); cycles != 16 {
			t.Errorf("expected 16 cycles, got %d", cycles)
		}
		if c.PC != 0x0150 {
			t.Errorf("expected PC to be 0x0150, got 0x%04X", c.PC)
		}
		if !c.IME() {
			t.Errorf("expected IME to be enabled")
		}
	})
	// 0xC7 - 0xFF - RST n
	for i := uint8(0); i < 8; i++ {
		opcode := 0xC7 + i*8
		vector := uint16(i) * 8
		testInstruction(t, InstructionSet[opcode].Name(), []uint8{opcode}, func(t *testing.T, c *CPU) {
			sp := c.SP

			if cycles := step(t, c); cycles != 16 {
				t.Errorf("expected 16 cycles, got %d", cycles)
			}
			if c.PC != vector {
				t.Errorf("expected PC to be 0x%04X, got 0x%04X", vector, c.PC)
			}
			if c.pop() != programStart+1 || c.SP != sp {
				t.Errorf("expected return address 0x%04X on the stack", programStart+1)
			}
		})
	}
}

func TestInstruction_Interrupts(t *testing.T) {
	// 0xFB - EI
	testInstruction(t, "EI", []uint8{0xFB, 0xF3}, func(t *testing.T, c *CPU) {
		step(t, c)
		if !c.IME() {
			t.Errorf("expected IME to be enabled immediately")
		}
		// 0xF3 - DI
		step(t, c)
		if c.IME() {
			t.Errorf("expected IME to be disabled")
		}
	})
}
