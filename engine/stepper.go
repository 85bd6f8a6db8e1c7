package engine

import "time"

// Stepper converts elapsed game time into a whole number of fixed steps
// Leftover time carries into the next call so the step rate stays exact
type Stepper struct {
	step     time.Duration
	maxSteps int

	last    time.Time
	started bool
	acc     time.Duration
	dropped uint64
}

// NewStepper creates a stepper for the given step length
// maxSteps caps catch-up after a stall; the excess is dropped, not replayed
func NewStepper(step time.Duration, maxSteps int) *Stepper {
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &Stepper{step: step, maxSteps: maxSteps}
}

// Advance returns how many steps are due at now
// The first call only records the reference time
func (s *Stepper) Advance(now time.Time) int {
	if !s.started {
		s.started = true
		s.last = now
		return 0
	}

	elapsed := now.Sub(s.last)
	s.last = now
	if elapsed <= 0 {
		return 0
	}
	s.acc += elapsed

	n := int(s.acc / s.step)
	s.acc -= time.Duration(n) * s.step
	if n > s.maxSteps {
		s.dropped += uint64(n - s.maxSteps)
		n = s.maxSteps
	}
	return n
}

// Reset rebases on now and discards accumulated time
func (s *Stepper) Reset(now time.Time) {
	s.last = now
	s.started = true
	s.acc = 0
}

// Step returns the fixed step length
func (s *Stepper) Step() time.Duration {
	return s.step
}

// Dropped returns how many steps were discarded by the catch-up cap
func (s *Stepper) Dropped() uint64 {
	return s.dropped
}
