package mnemonic

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// ListingOptions controls the comments of a program listing.
type ListingOptions struct {
	HexComments    bool // output the instruction bytes as comment
	OffsetComments bool // output the memory address as comment
}

// WriteListing writes a linear listing of the program, one instruction word
// per line, starting at the program load address. A trailing odd byte is
// output as a single data byte.
func WriteListing(w io.Writer, rom []byte, opts ListingOptions) error {
	bw := bufio.NewWriter(w)

	for offset := 0; offset < len(rom); offset += 2 {
		address := chip8.ProgramStart + offset

		var line, hex string
		if offset+1 < len(rom) {
			opcode := uint16(rom[offset])<<8 | uint16(rom[offset+1])
			line = Format(opcode)
			hex = fmt.Sprintf("%02X %02X", rom[offset], rom[offset+1])
		} else {
			line = fmt.Sprintf(".byte $%02X", rom[offset])
			hex = fmt.Sprintf("%02X", rom[offset])
		}

		if _, err := fmt.Fprintf(bw, "  %-20s%s\n", line, listingComment(address, hex, opts)); err != nil {
			return fmt.Errorf("writing listing line: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing listing: %w", err)
	}
	return nil
}

func listingComment(address int, hex string, opts ListingOptions) string {
	switch {
	case opts.OffsetComments && opts.HexComments:
		return fmt.Sprintf("; $%03X %s", address, hex)
	case opts.OffsetComments:
		return fmt.Sprintf("; $%03X", address)
	case opts.HexComments:
		return "; " + hex
	default:
		return ""
	}
}
