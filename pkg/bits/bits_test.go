package bits

import "testing"

func TestBits(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		if v := Set(0x00, 3); v != 0x08 {
			t.Errorf("expected 0x08, got 0x%02X", v)
		}
	})
	t.Run("reset", func(t *testing.T) {
		if v := Reset(0xFF, 7); v != 0x7F {
			t.Errorf("expected 0x7F, got 0x%02X", v)
		}
	})
	t.Run("test", func(t *testing.T) {
		for i := uint8(0); i < 8; i++ {
			if !Test(uint8(0xFF), i) {
				t.Errorf("expected bit %d to be set", i)
			}
			if Test(uint8(0x00), i) {
				t.Errorf("expected bit %d to be unset", i)
			}
		}
	})
	t.Run("uint16", func(t *testing.T) {
		if !Test(uint16(0x0200), 9) || Test(uint16(0x0200), 8) {
			t.Errorf("unexpected bit values for 0x0200")
		}
	})
}

func TestJoin(t *testing.T) {
	v := Join(0x12, 0x34)
	if v != 0x1234 {
		t.Fatalf("expected 0x1234, got 0x%04X", v)
	}
	if High(v) != 0x12 {
		t.Errorf("expected high byte 0x12, got 0x%02X", High(v))
	}
	if Low(v) != 0x34 {
		t.Errorf("expected low byte 0x34, got 0x%02X", Low(v))
	}
}
