// Package audio turns the tone signal of the virtual machine into sound.
//
// The beeper plays a square wave through the system audio device, the
// recorder writes the same signal to a .wav file. Both only read published
// machine snapshots and never access the machine itself.
package audio

// ToneFrequency is the frequency of the generated square wave in Hz.
const ToneFrequency = 440

// squareWave generates a square wave with a fixed frequency.
type squareWave struct {
	sampleRate int
	phase      int
}

// next returns the next sample of the wave as +1 or -1.
func (w *squareWave) next() int {
	period := w.sampleRate / ToneFrequency
	value := 1
	if w.phase >= period/2 {
		value = -1
	}
	w.phase++
	if w.phase >= period {
		w.phase = 0
	}
	return value
}
