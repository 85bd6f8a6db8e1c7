package engine

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("expected t2 after t1, got t1=%v t2=%v", t1, t2)
	}
}

func TestManualTimeProviderAdvance(t *testing.T) {
	m := NewManualTimeProvider(epoch)
	if !m.Now().Equal(epoch) {
		t.Fatalf("initial time = %v, want %v", m.Now(), epoch)
	}

	m.Advance(time.Second)
	m.Advance(500 * time.Millisecond)
	if want := epoch.Add(1500 * time.Millisecond); !m.Now().Equal(want) {
		t.Errorf("time = %v, want %v", m.Now(), want)
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	src := NewManualTimeProvider(epoch)
	pc := NewPausableClock(src)

	src.Advance(100 * time.Millisecond)
	if got := pc.Now().Sub(epoch); got != 100*time.Millisecond {
		t.Fatalf("game elapsed = %v, want 100ms", got)
	}

	pc.Pause()
	src.Advance(time.Second)
	if got := pc.Now().Sub(epoch); got != 100*time.Millisecond {
		t.Errorf("game elapsed while paused = %v, want 100ms", got)
	}
	if got := pc.TotalPaused(); got != time.Second {
		t.Errorf("TotalPaused during pause = %v, want 1s", got)
	}

	pc.Resume()
	src.Advance(50 * time.Millisecond)
	if got := pc.Now().Sub(epoch); got != 150*time.Millisecond {
		t.Errorf("game elapsed after resume = %v, want 150ms", got)
	}
}

func TestPausableClockToggleIdempotence(t *testing.T) {
	src := NewManualTimeProvider(epoch)
	pc := NewPausableClock(src)

	pc.Pause()
	pc.Pause()
	src.Advance(time.Second)
	pc.Resume()
	pc.Resume()

	if got := pc.TotalPaused(); got != time.Second {
		t.Errorf("TotalPaused = %v, want 1s", got)
	}

	if !pc.Toggle() || !pc.IsPaused() {
		t.Error("Toggle from running should pause")
	}
	if pc.Toggle() || pc.IsPaused() {
		t.Error("Toggle from paused should resume")
	}
}

func TestStepperFirstAdvanceOnlyRecords(t *testing.T) {
	s := NewStepper(10*time.Millisecond, 4)
	if n := s.Advance(epoch); n != 0 {
		t.Errorf("first Advance = %d, want 0", n)
	}
}

func TestStepperCarriesRemainder(t *testing.T) {
	s := NewStepper(10*time.Millisecond, 8)
	s.Advance(epoch)

	tests := []struct {
		at   time.Duration
		want int
	}{
		{15 * time.Millisecond, 1}, // 5ms left over
		{20 * time.Millisecond, 1}, // 5 + 5
		{29 * time.Millisecond, 0}, // 9ms pending
		{30 * time.Millisecond, 1},
		{60 * time.Millisecond, 3},
	}
	for _, tt := range tests {
		if got := s.Advance(epoch.Add(tt.at)); got != tt.want {
			t.Errorf("Advance at %v = %d, want %d", tt.at, got, tt.want)
		}
	}
}

func TestStepperCapsCatchUp(t *testing.T) {
	s := NewStepper(10*time.Millisecond, 3)
	s.Advance(epoch)

	if got := s.Advance(epoch.Add(100 * time.Millisecond)); got != 3 {
		t.Errorf("capped Advance = %d, want 3", got)
	}
	if s.Dropped() != 7 {
		t.Errorf("Dropped = %d, want 7", s.Dropped())
	}
	// Dropped steps are not replayed
	if got := s.Advance(epoch.Add(105 * time.Millisecond)); got != 0 {
		t.Errorf("Advance after cap = %d, want 0", got)
	}
}

func TestStepperResetDiscardsAccumulated(t *testing.T) {
	s := NewStepper(10*time.Millisecond, 8)
	s.Advance(epoch)
	s.Advance(epoch.Add(9 * time.Millisecond))

	s.Reset(epoch.Add(9 * time.Millisecond))
	if got := s.Advance(epoch.Add(18 * time.Millisecond)); got != 0 {
		t.Errorf("Advance after Reset = %d, want 0", got)
	}
}

func TestStepperClampsMaxSteps(t *testing.T) {
	s := NewStepper(time.Second/120, 0)
	if s.Step() != time.Second/120 {
		t.Errorf("Step = %v, want %v", s.Step(), time.Second/120)
	}

	s.Advance(epoch)
	if got := s.Advance(epoch.Add(time.Second)); got != 1 {
		t.Errorf("Advance with maxSteps 0 = %d, want clamp to 1", got)
	}
}
