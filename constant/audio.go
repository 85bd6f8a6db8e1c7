package constant

import "time"

// Audio hardware settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
)

// Hit sound
const (
	HitSoundDuration  = 50 * time.Millisecond
	HitSoundPlayerHz  = 880.0
	HitSoundBotHz     = 660.0
	HitSoundAmplitude = 0.3
)

// Point chime: two rising notes for a player point, falling for a bot point
const (
	ChimeNoteDuration = 120 * time.Millisecond
	ChimeLowHz        = 523.25
	ChimeHighHz       = 783.99
	ChimeAmplitude    = 0.25
	ChimeRelease      = 80 * time.Millisecond
)
