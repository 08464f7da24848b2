package chip8

// KeyCount is the number of keys of the input pad.
const KeyCount = 16

// Keys is a snapshot of the 16-key input pad, indexed by key value 0x0-0xF.
type Keys [KeyCount]bool

// Pressed returns whether the key is pressed. The second return value is
// false if the key index is out of range.
func (k *Keys) Pressed(key uint8) (bool, bool) {
	if int(key) >= KeyCount {
		return false, false
	}
	return k[key], true
}

// First returns the lowest-indexed pressed key.
func (k *Keys) First() (uint8, bool) {
	for i, pressed := range k {
		if pressed {
			return uint8(i), true
		}
	}
	return 0, false
}
