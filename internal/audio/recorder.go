package audio

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/youpy/go-wav"
)

const (
	recorderSampleRate = 22050
	recorderSilence    = 128
	recorderAmplitude  = 64
)

// Recorder collects the tone signal once per tick and writes it as an
// 8 bit mono .wav file on Close.
type Recorder struct {
	path           string
	samplesPerTick int
	wave           squareWave
	buffer         []wav.Sample
}

// NewRecorder returns a recorder writing to path. tickRate is the number of
// ticks per second the runner executes.
func NewRecorder(path string, tickRate int) (*Recorder, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("invalid tick rate %d", tickRate)
	}
	return &Recorder{
		path:           path,
		samplesPerTick: recorderSampleRate / tickRate,
		wave:           squareWave{sampleRate: recorderSampleRate},
	}, nil
}

// ObserveTick appends one tick worth of samples.
func (r *Recorder) ObserveTick(snapshot *chip8.Snapshot) {
	for range r.samplesPerTick {
		value := recorderSilence
		if snapshot.ToneActive {
			value += r.wave.next() * recorderAmplitude
		}

		s := wav.Sample{}
		s.Values[0] = value
		r.buffer = append(r.buffer, s)
	}
}

func (r *Recorder) sampleCount() int {
	return len(r.buffer)
}

// Close writes the recorded samples to the file.
func (r *Recorder) Close() (rerr error) {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", r.path, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("closing file %s: %w", r.path, err)
		}
	}()

	enc := wav.NewWriter(f, uint32(r.sampleCount()), 1, recorderSampleRate, 8)
	if enc == nil {
		return errors.New("bad parameters for wav encoding")
	}
	if err := enc.WriteSamples(r.buffer); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	return nil
}
