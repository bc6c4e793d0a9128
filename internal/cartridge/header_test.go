package cartridge

import (
	"errors"
	"testing"
)

func newTestROM(title string, cartType Type) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x134:], title)
	rom[0x147] = uint8(cartType)
	rom[0x148] = 0x00
	rom[0x149] = 0x02

	var sum uint8
	for _, b := range rom[0x134:0x14D] {
		sum = sum - b - 1
	}
	rom[0x14D] = sum
	rom[0x14E] = 0x12
	rom[0x14F] = 0x34
	return rom
}

func TestParse(t *testing.T) {
	h, err := Parse(newTestROM("CPU_INSTRS", MBC1))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if h.Title != "CPU_INSTRS" {
		t.Errorf("expected title CPU_INSTRS, got %q", h.Title)
	}
	if h.CartridgeType != MBC1 {
		t.Errorf("expected MBC1, got %s", h.CartridgeType)
	}
	if h.ROMSize != 32*1024 {
		t.Errorf("expected 32kB ROM, got %d", h.ROMSize)
	}
	if h.RAMSize != 8*1024 {
		t.Errorf("expected 8kB RAM, got %d", h.RAMSize)
	}
	if h.GlobalChecksum != 0x1234 {
		t.Errorf("expected global checksum 0x1234, got 0x%04X", h.GlobalChecksum)
	}
	if !h.Valid() {
		t.Errorf("expected header checksum to be valid")
	}
	if h.Hardware() != "DMG" || h.GameboyColor() {
		t.Errorf("expected DMG hardware, got %s", h.Hardware())
	}
}

func TestParse_InvalidChecksum(t *testing.T) {
	rom := newTestROM("TETRIS", ROM)
	rom[0x14D]++

	h, err := Parse(rom)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if h.Valid() {
		t.Errorf("expected header checksum to be invalid")
	}
}

func TestParse_CGB(t *testing.T) {
	rom := newTestROM("POKEMON GOLD", MBC3TIMERRAMBATT)
	rom[0x143] = 0x80

	h, _ := Parse(rom)
	if !h.GameboyColor() {
		t.Errorf("expected CGB support")
	}
	if h.CartridgeType.String() != "MBC3+TIMER+RAM+BATTERY" {
		t.Errorf("expected MBC3+TIMER+RAM+BATTERY, got %s", h.CartridgeType)
	}
}

func TestParse_TooShort(t *testing.T) {
	for _, size := range []int{0, 0x100, 0x14F} {
		if _, err := Parse(make([]byte, size)); !errors.Is(err, ErrHeaderTooShort) {
			t.Errorf("expected ErrHeaderTooShort for %d bytes, got %v", size, err)
		}
	}
}

func TestType_String(t *testing.T) {
	if Type(0xEE).String() != "UNKNOWN(0xEE)" {
		t.Errorf("expected UNKNOWN(0xEE), got %s", Type(0xEE))
	}
}
