// Command goboy runs a Game Boy ROM on the CPU core without a display,
// printing serial output to stdout. It is intended for test ROMs that
// report their result over the serial port.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/gameboy"
	"github.com/thelolagemann/dmgcore/pkg/log"
	"github.com/thelolagemann/dmgcore/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	bootROM := flag.String("boot", "", "The boot rom file to load")
	cycles := flag.Uint64("cycles", 0, "The number of cycles to run for, 0 runs until the rom reports a result")
	lenient := flag.Bool("lenient", false, "Log and skip unimplemented opcodes instead of stopping")
	trace := flag.Bool("trace", false, "Log every executed instruction")
	ly := flag.Uint("ly", 0x90, "The value to hold LY (0xFF44) at")
	noTimer := flag.Bool("no-timer", false, "Disable the timer")
	flag.Parse()

	level := log.InfoLevel
	if *trace {
		level = log.DebugLevel
	}
	logger := log.New(os.Stderr, level)

	if *romFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	// open the rom file
	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("loading rom: %v", err)
		os.Exit(1)
	}
	if header, err := cartridge.Parse(rom); err != nil {
		logger.Errorf("reading cartridge header: %v", err)
	} else {
		logger.WithFields(log.Fields{
			"valid": header.Valid(),
		}).Infof("%s", header)
	}

	var output string
	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.WithSerialOutput(os.Stdout),
		gameboy.SerialDebugger(&output),
	}

	// open the boot rom file
	if *bootROM != "" {
		boot, err := utils.LoadFile(*bootROM)
		if err != nil {
			logger.Errorf("loading boot rom: %v", err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}
	if *trace {
		opts = append(opts, gameboy.WithTracer(gameboy.LogTracer(logger)))
	}
	if *noTimer {
		opts = append(opts, gameboy.WithTimerDisabled())
	}

	gb := gameboy.NewGameBoy(opts...)
	gb.LoadGame(rom)
	gb.PokeLY(uint8(*ly))

	if err := run(gb, *cycles, *lenient, logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	logger.WithFields(log.Fields{
		"cycles": gb.Cycles(),
		"memory": fmt.Sprintf("%016x", gb.MMU.Digest()),
	}).Infof("stopped")

	if strings.Contains(output, "Failed") {
		os.Exit(1)
	}
}

// run drives the GameBoy until it hits a breakpoint, an error occurs
// or the budget is spent. When lenient, unimplemented opcodes are
// logged and execution continues past them.
func run(gb *gameboy.GameBoy, budget uint64, lenient bool, logger log.Logger) error {
	var executed uint64
	for {
		remaining := uint64(0)
		if budget != 0 {
			if executed >= budget {
				return nil
			}
			remaining = budget - executed
		}

		n, err := gb.Run(remaining)
		executed += n
		switch {
		case err == nil:
			return nil
		case lenient && errors.Is(err, cpu.ErrUnimplementedOpcode):
			logger.Errorf("skipping: %v", err)
		default:
			return err
		}
	}
}
