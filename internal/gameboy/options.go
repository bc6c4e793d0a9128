package gameboy

import (
	"io"
	"strings"

	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// WithLogger sets the logger used by the GameBoy and its components.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithBootROM sets the boot ROM for the emulator. If the boot ROM is
// valid, the emulator starts at 0x0000 with every register zeroed,
// otherwise it is ignored and the emulator starts at 0x0100 with the
// registers set to the values upon completion of the boot ROM.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.bootROM = rom
	}
}

// WithSerialOutput sets the writer that receives bytes sent over the
// serial port.
func WithSerialOutput(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.MMU.AttachSerial(w)
	}
}

// WithTracer sets a tracer that is handed every executed instruction.
func WithTracer(t cpu.Tracer) Opt {
	return func(gb *GameBoy) {
		cpu.WithTracer(t)(gb.CPU)
	}
}

// WithTimerDisabled stops the timer from being advanced.
func WithTimerDisabled() Opt {
	return func(gb *GameBoy) {
		gb.timerDisabled = true
	}
}

// SerialDebugger intercepts serial output and appends it to output.
// Once the output contains "Passed" or "Failed", the GameBoy hits a
// breakpoint and Run returns. Serial output is still sent to the
// writer set before this option.
func SerialDebugger(output *string) Opt {
	return func(gb *GameBoy) {
		recorder := &serialRecorder{gb: gb, output: output}
		if w := gb.MMU.SerialOutput(); w != nil {
			gb.MMU.AttachSerial(io.MultiWriter(w, recorder))
		} else {
			gb.MMU.AttachSerial(recorder)
		}
	}
}

type serialRecorder struct {
	gb     *GameBoy
	output *string
}

func (s *serialRecorder) Write(p []byte) (int, error) {
	*s.output += string(p)
	if strings.Contains(*s.output, "Passed") || strings.Contains(*s.output, "Failed") {
		s.gb.breakpoint = true
	}
	return len(p), nil
}
