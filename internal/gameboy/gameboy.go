// Package gameboy ties the components of the Game Boy core together.
// The GameBoy owns the CPU, the address space, the timer and the
// interrupt registers, and advances them in lock step.
package gameboy

import (
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/timer"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = 70224
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	Interrupts *interrupts.Service
	Timer      *timer.Controller

	log.Logger

	bootROM       []byte
	timerDisabled bool

	// set by SerialDebugger once the test ROM has reported a result
	breakpoint bool

	cycles uint64
}

// NewGameBoy returns a new GameBoy, with nothing but zeroes in memory.
// The registers hold their post boot ROM values unless WithBootROM is
// given.
func NewGameBoy(opts ...Opt) *GameBoy {
	irq := interrupts.NewService()
	timerCtl := timer.NewController()
	memBus := mmu.NewMMU(irq, timerCtl)

	g := &GameBoy{
		CPU:        cpu.NewCPU(memBus),
		MMU:        memBus,
		Interrupts: irq,
		Timer:      timerCtl,
		Logger:     log.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(g)
	}
	g.MMU.Log = g.Logger

	if g.bootROM != nil {
		g.loadBootROM()
	}

	return g
}

// loadBootROM maps the boot ROM given by WithBootROM, and resets the
// CPU so that it is executed from 0x0000. An invalid image is ignored.
func (g *GameBoy) loadBootROM() {
	rom, err := boot.LoadBootROM(g.bootROM)
	if err != nil {
		g.Errorf("ignoring boot rom: %v", err)
		return
	}

	g.MMU.WriteBootROM(rom.Bytes())
	g.CPU.Reset(true)
	g.WithFields(log.Fields{
		"model":    rom.Model(),
		"checksum": rom.Checksum(),
	}).Infof("loaded boot rom")
}

// LoadGame copies the game into memory, starting at 0x0000.
func (g *GameBoy) LoadGame(game []byte) {
	g.MMU.WriteGame(game)
	g.WithFields(log.Fields{
		"size":   len(game),
		"xxhash": xxhash.Sum64(game),
	}).Infof("loaded game")
}

// Tick executes a single instruction, and then advances the timer by
// the number of cycles the instruction took, requesting a timer
// interrupt for every overflow. The timer is advanced even when the
// instruction fails, for the cycles spent fetching it.
func (g *GameBoy) Tick() (uint8, error) {
	cycles, err := g.CPU.Tick()
	g.cycles += uint64(cycles)

	if !g.timerDisabled {
		for i := uint8(0); i < cycles; i++ {
			if g.Timer.Tick() {
				g.Interrupts.Request(interrupts.TimerFlag)
			}
		}
	}

	return cycles, err
}

// Run executes instructions until an error occurs, a SerialDebugger
// sees a result, or at least maxCycles cycles have been executed. A
// maxCycles of 0 runs without a limit. It returns the number of cycles
// executed.
func (g *GameBoy) Run(maxCycles uint64) (uint64, error) {
	var executed uint64
	for maxCycles == 0 || executed < maxCycles {
		cycles, err := g.Tick()
		executed += uint64(cycles)
		if err != nil {
			return executed, err
		}
		if g.breakpoint {
			break
		}
	}

	return executed, nil
}

// Cycles returns the total number of cycles executed.
func (g *GameBoy) Cycles() uint64 {
	return g.cycles
}

// Breakpoint returns true once a SerialDebugger has seen a result.
func (g *GameBoy) Breakpoint() bool {
	return g.breakpoint
}

// PokeLY writes v to LY. Without a PPU nothing else updates it, so
// ROMs waiting for a given scanline can be satisfied this way.
func (g *GameBoy) PokeLY(v uint8) {
	g.MMU.Write(types.LY, v)
}

// LogTracer returns a cpu.Tracer that logs every instruction at debug
// level.
func LogTracer(l log.Logger) cpu.Tracer {
	return cpu.TracerFunc(func(e cpu.Event) {
		l.WithFields(log.Fields{
			"pc":     e.PC,
			"opcode": e.Opcode,
			"cb":     e.Extended,
			"cycles": e.Cycles,
			"af":     e.Registers.Read16(cpu.AF),
			"bc":     e.Registers.Read16(cpu.BC),
			"de":     e.Registers.Read16(cpu.DE),
			"hl":     e.Registers.Read16(cpu.HL),
			"sp":     e.Registers.SP,
		}).Debugf("%s", e.Name)
	})
}
