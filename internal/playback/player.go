// Package playback plays rendered sample buffers through the ebiten audio
// context. At most one buffer sounds at a time.
package playback

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/cwbudde/algo-fourier/dsp/signal"
)

var (
	audioContextOnce sync.Once
	audioContext     *ebitaudio.Context
	audioSampleRate  int
)

// sharedAudioContext returns the process-wide context. ebiten allows only
// one, so a second rate is an error.
func sharedAudioContext(sampleRate int) (*ebitaudio.Context, error) {
	audioContextOnce.Do(func() {
		audioSampleRate = sampleRate
		audioContext = ebitaudio.NewContext(sampleRate)
	})
	if audioSampleRate != sampleRate {
		return nil, fmt.Errorf("playback: audio context already initialized at %d Hz (requested %d Hz)",
			audioSampleRate, sampleRate)
	}
	return audioContext, nil
}

// voice is one sounding stream; *ebitaudio.Player satisfies it.
type voice interface {
	Play()
	Pause()
	Close() error
	IsPlaying() bool
}

// Player owns the currently sounding buffer.
type Player struct {
	mu         sync.Mutex
	newVoice   func(io.Reader) (voice, error)
	sampleRate int
	current    voice
}

// New returns a player bound to the shared audio context.
func New(sampleRate int) (*Player, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("playback: sample rate must be > 0: %d", sampleRate)
	}
	ctx, err := sharedAudioContext(sampleRate)
	if err != nil {
		return nil, err
	}
	return newPlayer(sampleRate, func(r io.Reader) (voice, error) {
		pl, err := ctx.NewPlayerF32(r)
		if err != nil {
			return nil, err
		}
		return pl, nil
	}), nil
}

func newPlayer(sampleRate int, newVoice func(io.Reader) (voice, error)) *Player {
	return &Player{newVoice: newVoice, sampleRate: sampleRate}
}

// SampleRate returns the playback rate.
func (p *Player) SampleRate() int { return p.sampleRate }

// Play stops whatever is playing and starts samples from the beginning.
func (p *Player) Play(samples []float64) error {
	frames, err := Frames(samples)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.stopLocked(); err != nil {
		return err
	}
	pl, err := p.newVoice(bytes.NewReader(frames))
	if err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	pl.Play()
	p.current = pl
	return nil
}

// Stop silences the current buffer, if any.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopLocked()
}

// IsPlaying reports whether a buffer is still sounding.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current != nil && p.current.IsPlaying()
}

func (p *Player) stopLocked() error {
	if p.current == nil {
		return nil
	}
	p.current.Pause()
	err := p.current.Close()
	p.current = nil
	if err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	return nil
}

// Frames converts samples into the stereo float32 little-endian stream the
// audio context consumes. Samples are hard-clipped to [-1, 1].
func Frames(samples []float64) ([]byte, error) {
	clipped, err := signal.Clip(samples, -1, 1)
	if err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}

	out := make([]byte, len(clipped)*8)
	for i, s := range clipped {
		bits := math.Float32bits(float32(s))
		binary.LittleEndian.PutUint32(out[i*8:], bits)
		binary.LittleEndian.PutUint32(out[i*8+4:], bits)
	}
	return out, nil
}
