// Package interrupts holds the interrupt enable (IE) and interrupt flag
// (IF) registers. It is the collaborator hardware blocks use to request
// interrupts; servicing them is left to the host.
package interrupts

import (
	"github.com/thelolagemann/dmgcore/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// requested every time the PPU enters VBlank.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), requested
	// by the LCD STAT register when certain conditions are met.
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// requested when TIMA overflows and is reloaded from TMA.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3),
	// requested when a serial transfer is completed.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt flag (bit 4),
	// requested when a selected input line goes low.
	JoypadFlag = types.Bit4
)

// Service holds the two interrupt registers. Both are plain 8-bit
// shadow registers: reads return exactly what was last written or
// requested.
//
// The interrupt master enable (IME) lives with the CPU registers, as it
// is only ever changed by EI, DI and RETI.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service with no interrupts enabled or
// requested.
func NewService() *Service {
	return &Service{}
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// Clear acknowledges the specified interrupt, by clearing
// the corresponding bit in the Flag register.
func (s *Service) Clear(flag uint8) {
	s.Flag &^= flag
}

// Pending returns the interrupts that are both requested
// and enabled, limited to the five interrupt sources.
func (s *Service) Pending() uint8 {
	return s.Enable & s.Flag & 0x1F
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Pending() != 0
}
