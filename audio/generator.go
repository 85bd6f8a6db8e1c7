package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone is a finite sine note with a linear attack and release
type Tone struct {
	rate    beep.SampleRate
	freq    float64
	amp     float64
	total   int
	attack  int
	release int
	pos     int
}

// NewTone creates a note of freq Hz lasting d
func NewTone(rate beep.SampleRate, freq float64, d, release time.Duration, amp float64) *Tone {
	total := rate.N(d)
	rel := rate.N(release)
	if rel > total {
		rel = total
	}
	return &Tone{
		rate:    rate,
		freq:    freq,
		amp:     amp,
		total:   total,
		attack:  rate.N(5 * time.Millisecond),
		release: rel,
	}
}

// Stream fills samples until the note ends
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		v := t.amp * t.envelope() * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.rate))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) envelope() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if left := t.total - t.pos; t.release > 0 && left < t.release {
		return float64(left) / float64(t.release)
	}
	return 1
}

// Err never fails
func (t *Tone) Err() error {
	return nil
}

// Len returns the note length in samples
func (t *Tone) Len() int {
	return t.total
}
