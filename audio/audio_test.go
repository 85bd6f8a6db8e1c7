package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/ragdoll-volley/constant"
)

// drain streams s to completion and returns the samples
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never ended")
	return nil
}

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone := NewTone(rate, 440, 100*time.Millisecond, 20*time.Millisecond, 0.5)

	samples := drain(t, tone)
	if len(samples) != rate.N(100*time.Millisecond) {
		t.Errorf("streamed %d samples, want %d", len(samples), rate.N(100*time.Millisecond))
	}
	for i, s := range samples {
		if math.Abs(s[0]) > 0.5+1e-9 || s[0] != s[1] {
			t.Fatalf("sample %d = %v, want mono within amplitude", i, s)
		}
	}
	if tone.Err() != nil {
		t.Errorf("Err = %v", tone.Err())
	}
}

func TestToneEnvelopeStartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(t, NewTone(rate, 440, 50*time.Millisecond, 10*time.Millisecond, 1))

	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", samples[0][0])
	}
	if last := samples[len(samples)-1][0]; math.Abs(last) > 0.01 {
		t.Errorf("last sample = %f, want near silence", last)
	}
}

func TestToneReleaseClampedToLength(t *testing.T) {
	tone := NewTone(beep.SampleRate(8000), 200, 10*time.Millisecond, time.Second, 1)
	if tone.release != tone.Len() {
		t.Errorf("release = %d, want clamp to %d", tone.release, tone.Len())
	}
}

func TestCueStreamersAreFinite(t *testing.T) {
	tests := []struct {
		cue  Cue
		want int
	}{
		{CueHitPlayer, sampleRate.N(constant.HitSoundDuration)},
		{CueHitBot, sampleRate.N(constant.HitSoundDuration)},
		{CuePointPlayer, 2 * sampleRate.N(constant.ChimeNoteDuration)},
		{CuePointBot, 2 * sampleRate.N(constant.ChimeNoteDuration)},
	}
	for _, tt := range tests {
		s, err := CueStreamer(tt.cue)
		if err != nil {
			t.Fatalf("cue %d: %v", tt.cue, err)
		}
		if got := len(drain(t, s)); got != tt.want {
			t.Errorf("cue %d: %d samples, want %d", tt.cue, got, tt.want)
		}
	}

	if _, err := CueStreamer(Cue(99)); err == nil {
		t.Error("unknown cue should fail")
	}
}

func TestSoundManagerWithoutDevice(t *testing.T) {
	sm := NewSoundManager()

	// Uninitialized manager accepts calls silently
	if err := sm.Play(CueHitPlayer); err != nil {
		t.Errorf("Play before Initialize: %v", err)
	}
	if !sm.ToggleMute() || !sm.Muted() {
		t.Error("ToggleMute should mute")
	}
	if sm.ToggleMute() {
		t.Error("second ToggleMute should unmute")
	}
	sm.Cleanup()
}
