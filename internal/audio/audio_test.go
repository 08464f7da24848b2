package audio

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestSquareWave(t *testing.T) {
	w := squareWave{sampleRate: ToneFrequency * 4}

	values := make([]int, 8)
	for i := range values {
		values[i] = w.next()
	}
	assert.Equal(t, []int{1, 1, -1, -1, 1, 1, -1, -1}, values)
}

func TestToneStream(t *testing.T) {
	active := false
	s := &toneStream{
		source: func() bool { return active },
		wave:   squareWave{sampleRate: beeperSampleRate},
	}

	buf := make([]byte, 9)
	n, err := s.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, make([]byte, 9), buf)

	active = true
	_, err = s.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, uint16(beeperAmplitude), binary.LittleEndian.Uint16(buf))
}

func TestRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	r, err := NewRecorder(path, 60)
	assert.NoError(t, err)

	r.ObserveTick(&chip8.Snapshot{ToneActive: true})
	r.ObserveTick(&chip8.Snapshot{})
	samplesPerTick := recorderSampleRate / 60
	assert.Equal(t, 2*samplesPerTick, r.sampleCount())
	assert.Equal(t, recorderSilence+recorderAmplitude, r.buffer[0].Values[0])
	assert.Equal(t, recorderSilence, r.buffer[samplesPerTick].Values[0])

	assert.NoError(t, r.Close())

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, 44+2*samplesPerTick, len(data))
}

func TestRecorderInvalidTickRate(t *testing.T) {
	_, err := NewRecorder("tone.wav", 0)
	assert.Error(t, err)
}
