package chip8

// Timers contains the delay and sound countdown counters.
type Timers struct {
	Delay uint8
	Sound uint8
}

// Tick decrements both counters by one if they are above zero.
func (t *Timers) Tick() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
	}
}

// ToneActive returns whether the tone should sound. This is only the case
// when the sound timer is exactly 1 at the moment of sampling.
func (t Timers) ToneActive() bool {
	return t.Sound == 1
}
