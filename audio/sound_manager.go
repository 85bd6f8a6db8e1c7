package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ragdoll-volley/constant"
)

const sampleRate = beep.SampleRate(constant.AudioSampleRate)

// Cue names a sound the game can request
type Cue uint8

const (
	CueHitPlayer Cue = iota
	CueHitBot
	CuePointPlayer
	CuePointBot
)

// SoundManager plays game cues through one mixer on the speaker
// Every method is safe to call before Initialize or after a failed Initialize; they do nothing
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
}

// NewSoundManager creates a silent manager
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// Initialize opens the audio device and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Play queues a cue on the mixer
func (sm *SoundManager) Play(cue Cue) error {
	s, err := CueStreamer(cue)
	if err != nil {
		return err
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return nil
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// ToggleMute silences or restores output and returns the new muted state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.volume.Silent = !sm.volume.Silent
	return sm.volume.Silent
}

// Muted reports whether output is silenced
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume.Silent
}

// Cleanup drops queued sounds and closes the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

// CueStreamer builds a fresh finite streamer for cue
func CueStreamer(cue Cue) (beep.Streamer, error) {
	switch cue {
	case CueHitPlayer:
		return hitSound(constant.HitSoundPlayerHz)
	case CueHitBot:
		return hitSound(constant.HitSoundBotHz)
	case CuePointPlayer:
		return chime(constant.ChimeLowHz, constant.ChimeHighHz), nil
	case CuePointBot:
		return chime(constant.ChimeHighHz, constant.ChimeLowHz), nil
	}
	return nil, fmt.Errorf("unknown cue %d", cue)
}

// hitSound is a short sine blip
func hitSound(freq float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("hit tone %.0fHz: %w", freq, err)
	}
	quiet := &effects.Gain{Streamer: sine, Gain: constant.HitSoundAmplitude - 1}
	return beep.Take(sampleRate.N(constant.HitSoundDuration), quiet), nil
}

// chime plays two notes in sequence; rising for a player point, falling for a bot point
func chime(first, second float64) beep.Streamer {
	return beep.Seq(
		NewTone(sampleRate, first, constant.ChimeNoteDuration, constant.ChimeRelease, constant.ChimeAmplitude),
		NewTone(sampleRate, second, constant.ChimeNoteDuration, constant.ChimeRelease, constant.ChimeAmplitude),
	)
}
