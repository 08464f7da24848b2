package audio

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

const (
	beeperSampleRate = 44100
	beeperAmplitude  = 6000
)

// ToneSource reports whether the tone is currently active.
// It is called from the audio goroutine.
type ToneSource func() bool

// Beeper plays a square wave while the tone source is active.
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player
	mu     sync.Mutex
}

// NewBeeper opens the audio device and starts playback.
func NewBeeper(source ToneSource) (*Beeper, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   beeperSampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	stream := &toneStream{
		source: source,
		wave:   squareWave{sampleRate: beeperSampleRate},
	}
	player := ctx.NewPlayer(stream)
	player.Play()

	return &Beeper{
		ctx:    ctx,
		player: player,
	}, nil
}

// Close stops the playback.
func (b *Beeper) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.player == nil {
		return nil
	}
	err := b.player.Close()
	b.player = nil
	if err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}

// toneStream is an endless stream of signed 16 bit mono samples.
type toneStream struct {
	source ToneSource
	wave   squareWave
}

func (s *toneStream) Read(p []byte) (int, error) {
	active := s.source()
	n := len(p) &^ 1
	for i := 0; i < n; i += 2 {
		var sample int16
		if active {
			sample = int16(s.wave.next() * beeperAmplitude)
		}
		binary.LittleEndian.PutUint16(p[i:], uint16(sample))
	}
	return n, nil
}
