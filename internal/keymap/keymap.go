// Package keymap maps the physical keyboard to the 16-key CHIP-8 pad.
//
// The left block of a QWERTY keyboard is used, which mirrors the
// physical arrangement of the original hex keypad:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
package keymap

import "unicode"

// Layout lists the physical key for every CHIP-8 key value 0x0-0xF.
var Layout = [16]rune{
	'x', '1', '2', '3',
	'q', 'w', 'e', 'a',
	's', 'd', 'z', 'c',
	'4', 'r', 'f', 'v',
}

var lookup = func() map[rune]uint8 {
	m := make(map[rune]uint8, len(Layout))
	for key, r := range Layout {
		m[r] = uint8(key)
	}
	return m
}()

// Key returns the CHIP-8 key value for a physical key character.
// Letters are matched case insensitive.
func Key(r rune) (uint8, bool) {
	key, ok := lookup[unicode.ToLower(r)]
	return key, ok
}
