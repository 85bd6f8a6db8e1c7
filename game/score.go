package game

import "github.com/lixenwraith/ragdoll-volley/physics"

// ScoreTracker detects landing events
//
// A landing is the ball's lower edge crossing past the threshold line. The
// tracker disarms on a landing and re-arms only after it sees the ball back
// above the line, so a ball lingering low scores once, not once per step.
type ScoreTracker struct {
	threshold float64
	midX      float64
	armed     bool
}

// NewScoreTracker creates an armed tracker
func NewScoreTracker(threshold, midX float64) *ScoreTracker {
	return &ScoreTracker{threshold: threshold, midX: midX, armed: true}
}

// Observe inspects the ball after a step and reports which side earned a point
// A ball landing on the left half scores for the bot, anywhere else for the player
func (t *ScoreTracker) Observe(ball *physics.Ball) (Side, bool) {
	if ball.Bottom() <= t.threshold {
		t.armed = true
		return 0, false
	}
	if !t.armed {
		return 0, false
	}

	t.armed = false
	if ball.Position().X < t.midX {
		return SideBot, true
	}
	return SidePlayer, true
}

// Rearm forces the tracker back to armed
func (t *ScoreTracker) Rearm() {
	t.armed = true
}
