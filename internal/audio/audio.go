// Package audio plays the game's sound cues. Playback never blocks the
// caller: a cue is handed to the output mixer and the call returns.
package audio

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/timber/internal/core"
)

// SampleRate is the output rate every cue is resampled to.
const SampleRate = beep.SampleRate(44100)

//go:embed assets/*.wav
var assets embed.FS

var assetNames = map[core.Cue]string{
	core.CueWood:     "assets/wood.wav",
	core.CueTree:     "assets/tree.wav",
	core.CueGameOver: "assets/game_over.wav",
}

// Player plays a cue without waiting for it to finish.
type Player interface {
	Play(cue core.Cue)
}

// Silent is a Player that discards every cue.
type Silent struct{}

// Play does nothing.
func (Silent) Play(core.Cue) {}

// DefaultSounds returns the embedded WAV data for every cue.
func DefaultSounds() (map[core.Cue][]byte, error) {
	sounds := make(map[core.Cue][]byte, len(assetNames))
	for cue, name := range assetNames {
		data, err := assets.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("audio: read %s: %w", name, err)
		}
		sounds[cue] = data
	}
	return sounds, nil
}

// Bank holds decoded cues in memory, ready for repeated playback.
type Bank struct {
	format  beep.Format
	buffers map[core.Cue]*beep.Buffer
}

// LoadBank decodes WAV data for each cue and resamples it to rate.
func LoadBank(sounds map[core.Cue][]byte, rate beep.SampleRate) (*Bank, error) {
	b := &Bank{
		format:  beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
		buffers: make(map[core.Cue]*beep.Buffer, len(sounds)),
	}

	for cue, data := range sounds {
		buf, err := b.decode(data)
		if err != nil {
			return nil, fmt.Errorf("audio: decode %s cue: %w", cue, err)
		}
		b.buffers[cue] = buf
	}
	return b, nil
}

// decode reads one WAV into a buffer at the bank's format.
func (b *Bank) decode(data []byte) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != b.format.SampleRate {
		s = beep.Resample(4, format.SampleRate, b.format.SampleRate, s)
	}

	buf := beep.NewBuffer(b.format)
	buf.Append(s)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("empty sound")
	}
	return buf, nil
}

// Format returns the format shared by all cues in the bank.
func (b *Bank) Format() beep.Format {
	return b.format
}

// Len returns the length of a cue in samples, 0 if the cue is unknown.
func (b *Bank) Len(cue core.Cue) int {
	buf, ok := b.buffers[cue]
	if !ok {
		return 0
	}
	return buf.Len()
}

// Streamer returns a fresh streamer over the whole cue.
func (b *Bank) Streamer(cue core.Cue) (beep.StreamSeeker, bool) {
	buf, ok := b.buffers[cue]
	if !ok {
		return nil, false
	}
	return buf.Streamer(0, buf.Len()), true
}
