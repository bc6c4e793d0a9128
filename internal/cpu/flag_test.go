package cpu

import "testing"

func TestFlag(t *testing.T) {
	var r Registers
	flags := []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry}
	masks := []uint8{0x80, 0x40, 0x20, 0x10}

	for i, flag := range flags {
		r.F = 0
		r.SetFlag(flag, true)
		if r.F != masks[i] {
			t.Errorf("expected F to be 0x%02X, got 0x%02X", masks[i], r.F)
		}
		if !r.Flag(flag) {
			t.Errorf("expected flag 0x%02X to be set", flag)
		}
		r.SetFlag(flag, false)
		if r.F != 0 || r.Flag(flag) {
			t.Errorf("expected flag 0x%02X to be cleared, got F 0x%02X", flag, r.F)
		}
	}
}

func TestCPU_setFlags(t *testing.T) {
	c := newTestCPU()
	c.F = 0xF0

	c.setFlags(false, true, false, true)
	if c.F != FlagSubtract|FlagCarry {
		t.Errorf("expected F to be 0x50, got 0x%02X", c.F)
	}

	c.shouldZeroFlag(0)
	if !c.isFlagSet(FlagZero) {
		t.Errorf("expected zero flag to be set")
	}
	c.shouldZeroFlag(1)
	if c.isFlagSet(FlagZero) {
		t.Errorf("expected zero flag to be cleared")
	}
}
