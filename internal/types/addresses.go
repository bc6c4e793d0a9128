package types

// HardwareAddress represents the address of a hardware register of
// the Game Boy. The hardware registers are mapped to memory addresses
// 0xFF00 - 0xFF7F & 0xFFFF.
//
// Only the registers that the instruction-execution core redirects,
// or that a host is expected to poke, are listed here.
type HardwareAddress = uint16

const (
	// SB is the address of the SB hardware register, holding the
	// byte to be transferred over the serial port. Test ROMs write
	// the character they wish to print here.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register, controlling
	// the serial port. Writing SerialTransfer starts a transfer of
	// the byte held in SB.
	SC HardwareAddress = 0xFF02
	// DIV is the address of the DIV hardware register. Internally
	// the divider is a 16-bit counter incremented every T-cycle, of
	// which only the upper 8 bits may be read. Any write resets it.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register. It is
	// incremented at the rate selected by TAC, and reloaded from
	// TMA when it overflows.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register, the value
	// loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register.
	//
	//  Bit  2  : Timer Enable
	//  Bits 1-0: Input Clock Select (divider bit 9, 3, 5, 7)
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register, used to
	// request interrupts.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// LY is the address of the LY hardware register, the current
	// scanline of the PPU. The PPU is not part of the core, so hosts
	// write a fixed value here to satisfy ROMs that poll it.
	LY HardwareAddress = 0xFF44
	// IE is the address of the IE hardware register, with the same
	// bit layout as IF. A set bit enables the matching interrupt.
	IE HardwareAddress = 0xFFFF
)

// SerialTransfer is the value written to SC by test ROMs to start a
// transfer using the internal clock.
const SerialTransfer uint8 = 0x81
