// Package audio implements the engine's audio mixer collaborator
// (SPEC_FULL.md §13): a gopxl/beep-backed implementation of sound
// loading, decoded-stream playback, and per-channel volume. Grounded on
// the pack's only audio stack, lixenwraith/vi-fighter's audio/engine.go
// and audio/effects.go — this package keeps that code's speaker-init and
// effects.Volume idioms but replaces its typing-game-specific sound
// catalog with a path-loaded, handle-based, multi-channel mixer.
package audio

import (
	"fmt"
	"math"
	"os"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// SoundHandle identifies a decoded sound loaded via Mixer.LoadSound.
type SoundHandle uint32

// Mixer is the interface the frame orchestrator's manager context
// exposes to game code (§4.4 phase 3 "context exposes the mixer").
type Mixer interface {
	LoadSound(path string) (SoundHandle, error)
	Play(handle SoundHandle, channel string) error
	SetChannelVolume(channel string, volume float64)
	SetMasterVolume(volume float64)
	Close() error
}

// BeepMixer is the gopxl/beep-backed Mixer. One speaker.Init call is
// made per process; playback requests decode once at load time
// (beep.Buffer) and stream copies per Play call so the same sound can
// overlap itself.
type BeepMixer struct {
	sampleRate beep.SampleRate
	sounds     map[SoundHandle]*beep.Buffer
	byPath     map[string]SoundHandle
	nextHandle SoundHandle

	channelVolume map[string]float64
	masterVolume  float64
}

// NewBeepMixer initializes the speaker at sampleRate and returns a ready
// Mixer. bufferSize is the speaker's internal buffer length in samples;
// teacher's engine.go uses rate.N(time.Second/10) (100ms) as a
// responsiveness/underrun tradeoff, which this constructor exposes
// directly instead of hardcoding.
func NewBeepMixer(sampleRate beep.SampleRate, bufferSize int) (*BeepMixer, error) {
	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}
	return &BeepMixer{
		sampleRate:    sampleRate,
		sounds:        make(map[SoundHandle]*beep.Buffer),
		byPath:        make(map[string]SoundHandle),
		channelVolume: make(map[string]float64),
		masterVolume:  1,
	}, nil
}

// LoadSound decodes the WAV file at path into an in-memory buffer and
// returns its handle, idempotent on path equality like asset.LoadTexture.
func (m *BeepMixer) LoadSound(path string) (SoundHandle, error) {
	if h, ok := m.byPath[path]; ok {
		return h, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("audio: open %q: %w", path, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("audio: decode %q: %w", path, err)
	}
	defer streamer.Close()

	resampled := beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	buf := beep.NewBuffer(beep.Format{SampleRate: m.sampleRate, NumChannels: format.NumChannels, Precision: format.Precision})
	buf.Append(resampled)

	m.nextHandle++
	h := m.nextHandle
	m.sounds[h] = buf
	m.byPath[path] = h
	return h, nil
}

// Play streams a fresh copy of handle's buffer through channel's current
// volume multiplied by the master volume (teacher effects.go's
// newVolume, generalized to per-channel instead of a single master
// knob).
func (m *BeepMixer) Play(handle SoundHandle, channel string) error {
	buf, ok := m.sounds[handle]
	if !ok {
		return fmt.Errorf("audio: unknown sound handle %d", handle)
	}

	vol := m.masterVolume * m.channelVolumeOrDefault(channel)
	streamer := buf.Streamer(0, buf.Len())
	speaker.Play(applyVolume(streamer, vol))
	return nil
}

// SetChannelVolume sets the volume multiplier (0..1, clamped) applied to
// every Play call on channel from this point on. Already-playing sounds
// are unaffected, matching teacher's per-call (not retroactive) volume
// model.
func (m *BeepMixer) SetChannelVolume(channel string, volume float64) {
	m.channelVolume[channel] = clampVolume(volume)
}

// SetMasterVolume sets the global volume multiplier applied on top of
// every channel's volume.
func (m *BeepMixer) SetMasterVolume(volume float64) {
	m.masterVolume = clampVolume(volume)
}

// Close releases the speaker. The frame orchestrator calls this during
// ShuttingDown, first among the managers it releases, since the mixer is
// the last manager Init creates (reverse init order, §9 Design Notes).
func (m *BeepMixer) Close() error {
	speaker.Close()
	return nil
}

func (m *BeepMixer) channelVolumeOrDefault(channel string) float64 {
	if v, ok := m.channelVolume[channel]; ok {
		return v
	}
	return 1
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// applyVolume wraps s in an effects.Volume, matching teacher effects.go's
// newVolume: math.Log2(0) is -Inf, so zero volume is expressed via
// Silent instead of Volume.
func applyVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
