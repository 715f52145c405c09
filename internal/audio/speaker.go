package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/timber/internal/core"
)

// Speaker plays cues from a Bank on the default output device.
// The device is process-wide; create at most one Speaker.
type Speaker struct {
	bank *Bank
}

// NewSpeaker opens the output device at the bank's sample rate.
func NewSpeaker(bank *Bank) (*Speaker, error) {
	rate := bank.Format().SampleRate
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: cannot open output device: %w", err)
	}
	return &Speaker{bank: bank}, nil
}

// OpenDefault decodes the embedded cues and opens the output device.
func OpenDefault() (*Speaker, error) {
	sounds, err := DefaultSounds()
	if err != nil {
		return nil, err
	}
	bank, err := LoadBank(sounds, SampleRate)
	if err != nil {
		return nil, err
	}
	return NewSpeaker(bank)
}

// Play hands the cue to the speaker's mixer. Overlapping cues mix.
func (s *Speaker) Play(cue core.Cue) {
	streamer, ok := s.bank.Streamer(cue)
	if !ok {
		return
	}
	speaker.Play(streamer)
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}
