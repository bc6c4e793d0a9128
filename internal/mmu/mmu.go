// Package mmu provides the address space of the Game Boy. ROM, video
// RAM, work RAM and echo RAM share a single flat array, with a small
// set of hardware registers redirected to the components that own them.
package mmu

import (
	"io"
	"os"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/timer"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Size is the size of the flat array backing the address space,
// covering 0x0000 - 0xFFFE. 0xFFFF is always redirected to IE.
const Size = 0xFFFF

// MMU is the memory management unit for the Game Boy. Every access is
// resolved by the first matching rule:
//
//  1. boot ROM loaded and address < 0x100: reads come from the boot ROM
//  2. 0xFFFF: interrupt enable register
//  3. outside of the array: reads return 0, writes are ignored
//  4. 0xFF0F: interrupt flag register
//  5. 0xFF02 written with 0x81: the byte held in 0xFF01 is sent to the
//     serial output, then the write continues to the array
//  6. 0xFF04 - 0xFF07: timer registers
//  7. everything else: the flat array
type MMU struct {
	raw [Size]uint8

	// 0x0000 - 0x00FF - BOOT ROM (256B)
	bootROM       [boot.Size]uint8
	bootROMLoaded bool

	// 0xFF0F & 0xFFFF - interrupt flag and enable registers
	irq *interrupts.Service
	// 0xFF04 - 0xFF07 - timer registers
	timer *timer.Controller

	serial io.Writer

	Log log.Logger
}

// Opt configures an MMU.
type Opt func(m *MMU)

// WithSerialOutput sets the writer that receives the bytes sent over
// the serial port. It defaults to os.Stdout.
func WithSerialOutput(w io.Writer) Opt {
	return func(m *MMU) {
		m.serial = w
	}
}

// WithLogger sets the logger used to report unexpected conditions.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = l
	}
}

// NewMMU returns a new zero-filled MMU, redirecting the interrupt
// registers to irq and the timer registers to t.
func NewMMU(irq *interrupts.Service, t *timer.Controller, opts ...Opt) *MMU {
	m := &MMU{
		irq:    irq,
		timer:  t,
		serial: os.Stdout,
		Log:    log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// AttachSerial replaces the serial output writer.
func (m *MMU) AttachSerial(w io.Writer) {
	m.serial = w
}

// SerialOutput returns the current serial output writer.
func (m *MMU) SerialOutput() io.Writer {
	return m.serial
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case m.bootROMLoaded && address < boot.Size:
		return m.bootROM[address]
	case address == types.IE:
		return m.irq.Enable
	case int(address) >= len(m.raw):
		return 0
	case address == types.IF:
		return m.irq.Flag
	case address >= types.DIV && address <= types.TAC:
		v, err := m.timer.Read(address)
		if err != nil {
			m.Log.Errorf("mmu: %v", err)
		}
		return v
	}

	return m.raw[address]
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address == types.IE:
		m.irq.Enable = value
		return
	case int(address) >= len(m.raw):
		return
	case address == types.IF:
		m.irq.Flag = value
		return
	case address == types.SC && value == types.SerialTransfer:
		m.transfer()
	case address >= types.DIV && address <= types.TAC:
		if err := m.timer.Write(address, value); err != nil {
			m.Log.Errorf("mmu: %v", err)
		}
		return
	}

	m.raw[address] = value
}

// transfer sends the byte held in SB to the serial output.
func (m *MMU) transfer() {
	if m.serial == nil {
		return
	}
	if _, err := m.serial.Write([]byte{m.raw[types.SB]}); err != nil {
		m.Log.Errorf("mmu: serial output: %v", err)
	}
}

// WriteBootROM overlays the boot ROM over 0x0000 - 0x00FF. The
// overlay stays mapped for the lifetime of the MMU.
func (m *MMU) WriteBootROM(rom [boot.Size]byte) {
	m.bootROM = rom
	m.bootROMLoaded = true
}

// BootROMLoaded returns true if a boot ROM overlay is mapped.
func (m *MMU) BootROMLoaded() bool {
	return m.bootROMLoaded
}

// WriteGame copies game into the address space starting at 0x0000.
// Addresses past the end of game keep their previous contents, and
// bytes that do not fit in the address space are dropped.
func (m *MMU) WriteGame(game []byte) {
	copy(m.raw[:], game)
}

// Digest returns the xxhash of the flat array, a cheap fingerprint of
// the memory contents that ignores the redirected registers.
func (m *MMU) Digest() uint64 {
	return xxhash.Sum64(m.raw[:])
}
