package runner

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/mnemonic"
	"github.com/retroenv/retrogolib/log"
)

// LogState writes the machine state of a snapshot to the logger.
func LogState(logger *log.Logger, snapshot *chip8.Snapshot) {
	regs := snapshot.Registers
	logger.Info("Machine state",
		log.Hex("pc", regs.PC),
		log.Hex("i", regs.I),
		log.Uint8("sp", regs.SP),
		log.Uint8("delay", snapshot.Delay),
		log.Uint8("sound", snapshot.Sound),
		log.Stringer("state", snapshot.State),
		log.Int("cycles", int(snapshot.Cycles)),
		log.String("last", mnemonic.Format(snapshot.LastOpcode)),
		log.String("v", FormatRegisters(regs.V)),
	)
}

// FormatRegisters returns the general purpose registers as hex bytes V0 to VF.
func FormatRegisters(v [16]uint8) string {
	var sb strings.Builder
	for i, value := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", value)
	}
	return sb.String()
}
