// Package sound plays the brew-finished chime.
package sound

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// ErrNotInitialized is returned by Play before the speaker is ready.
var ErrNotInitialized = errors.New("speaker not initialized")

// Clip is a decoded sound held in memory.
type Clip struct {
	buffer *beep.Buffer
}

// Decode reads a WAV file into memory.
func Decode(data []byte) (*Clip, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return &Clip{buffer: buffer}, nil
}

// Format returns the clip's sample format.
func (clip *Clip) Format() beep.Format {
	return clip.buffer.Format()
}

// Duration returns the clip's play length.
func (clip *Clip) Duration() time.Duration {
	return clip.buffer.Format().SampleRate.D(clip.buffer.Len())
}

// Chime plays a clip through the system speaker.
type Chime struct {
	mu     sync.Mutex
	clip   *Clip
	volume float64
	ready  bool
}

// NewChime prepares a chime for clip. The speaker is opened lazily by Init.
func NewChime(clip *Clip, volume float64) *Chime {
	return &Chime{clip: clip, volume: volume}
}

// Init opens the audio device at the clip's sample rate.
func (chime *Chime) Init() error {
	chime.mu.Lock()
	defer chime.mu.Unlock()
	if chime.ready {
		return nil
	}
	sampleRate := chime.clip.Format().SampleRate
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	chime.ready = true
	return nil
}

// SetVolume sets the volume as a power of two; 0 is unchanged, -1 is half.
func (chime *Chime) SetVolume(volume float64) {
	chime.mu.Lock()
	defer chime.mu.Unlock()
	chime.volume = volume
}

// Play starts the chime without waiting for it to finish.
func (chime *Chime) Play() error {
	chime.mu.Lock()
	defer chime.mu.Unlock()
	if !chime.ready {
		return ErrNotInitialized
	}
	speaker.Play(chime.streamerLocked())
	return nil
}

func (chime *Chime) streamerLocked() beep.Streamer {
	buffer := chime.clip.buffer
	return &effects.Volume{
		Streamer: buffer.Streamer(0, buffer.Len()),
		Base:     2,
		Volume:   chime.volume,
		Silent:   chime.volume <= -4,
	}
}
