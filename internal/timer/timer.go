// Package timer provides an implementation of the Game Boy
// timer. TIMA is clocked by a falling edge of a divider bit
// selected by TAC, and is reloaded from TMA when it overflows.
package timer

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/bits"
)

// ErrUnmappedRegister is matched by UnmappedRegisterError.
var ErrUnmappedRegister = errors.New("timer: unmapped register")

// UnmappedRegisterError is returned when the timer is asked to read or
// write an address outside of DIV, TIMA, TMA and TAC.
type UnmappedRegisterError struct {
	Address uint16
}

func (e *UnmappedRegisterError) Error() string {
	return fmt.Sprintf("timer: unmapped register 0x%04X", e.Address)
}

func (e *UnmappedRegisterError) Is(target error) bool {
	return target == ErrUnmappedRegister
}

// taps holds the divider bits selected by TAC bits 0-1.
//
//	00 = bit 9 (4096 Hz)
//	01 = bit 3 (262144 Hz)
//	10 = bit 5 (65536 Hz)
//	11 = bit 7 (16384 Hz)
var taps = [4]uint8{9, 3, 5, 7}

// Controller is a timer controller. The divider is advanced once per
// call to Tick, and TIMA is incremented on each falling edge of the
// selected divider bit while the timer is enabled.
type Controller struct {
	div uint16

	tima uint8
	tma  uint8
	tac  uint8

	// enabled is the output of the edge detector on the last tick
	enabled bool
}

// NewController returns a new timer controller.
func NewController() *Controller {
	return &Controller{}
}

// Tick advances the divider by one and clocks TIMA on a falling
// edge. It returns true on the tick TIMA overflows and is reloaded
// from TMA, which should raise a timer interrupt request.
func (c *Controller) Tick() bool {
	c.div++

	result := bits.Test(c.div, taps[c.tac&0b11]) && bits.Test(c.tac, 2)

	overflow := false
	if c.enabled && !result {
		c.tima++
		if c.tima == 0 {
			c.tima = c.tma
			overflow = true
		}
	}

	c.enabled = result
	return overflow
}

// Read returns the value of one of the timer registers.
func (c *Controller) Read(address uint16) (uint8, error) {
	switch address {
	case types.DIV:
		return uint8(c.div >> 8), nil
	case types.TIMA:
		return c.tima, nil
	case types.TMA:
		return c.tma, nil
	case types.TAC:
		return c.tac, nil
	}
	return 0, &UnmappedRegisterError{Address: address}
}

// Write writes to one of the timer registers. Any write to DIV resets
// the whole 16-bit divider.
func (c *Controller) Write(address uint16, value uint8) error {
	switch address {
	case types.DIV:
		c.div = 0
	case types.TIMA:
		c.tima = value
	case types.TMA:
		c.tma = value
	case types.TAC:
		c.tac = value
	default:
		return &UnmappedRegisterError{Address: address}
	}
	return nil
}

// Div returns the full 16-bit internal divider.
func (c *Controller) Div() uint16 {
	return c.div
}
