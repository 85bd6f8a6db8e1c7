package input

import "time"

// Edge is a held-state transition, recorded in arrival order
type Edge struct {
	Action Action
	Down   bool
}

// State tracks which gameplay actions are held
//
// Terminals report presses and auto-repeats but no releases, so a key stays
// held until holdWindow passes without a repeat; that expiry is its release.
// Hosts that do report releases call Release directly.
type State struct {
	holdWindow time.Duration
	lastSeen   map[Action]time.Time
	edges      []Edge
}

// NewState creates an empty input state
func NewState(holdWindow time.Duration) *State {
	return &State{
		holdWindow: holdWindow,
		lastSeen:   make(map[Action]time.Time),
	}
}

// Press marks action held at now; only a not-held to held transition records an edge
// Repeats refresh the hold window
func (s *State) Press(action Action, now time.Time) {
	if !action.Gameplay() {
		return
	}
	if _, held := s.lastSeen[action]; !held {
		s.edges = append(s.edges, Edge{Action: action, Down: true})
	}
	s.lastSeen[action] = now
}

// Release marks action not held
func (s *State) Release(action Action) {
	if _, held := s.lastSeen[action]; !held {
		return
	}
	delete(s.lastSeen, action)
	s.edges = append(s.edges, Edge{Action: action, Down: false})
}

// heldOrder fixes the order release edges are recorded in
var heldOrder = [...]Action{ActionLeft, ActionRight, ActionJump, ActionHit}

// Expire releases every action whose hold window elapsed by now
func (s *State) Expire(now time.Time) {
	for _, a := range heldOrder {
		seen, held := s.lastSeen[a]
		if held && now.Sub(seen) >= s.holdWindow {
			s.Release(a)
		}
	}
}

// ReleaseAll releases every held action, recording an up edge for each
func (s *State) ReleaseAll() {
	for _, a := range heldOrder {
		s.Release(a)
	}
}

// Held reports whether action is currently held
func (s *State) Held(action Action) bool {
	_, held := s.lastSeen[action]
	return held
}

// Edges returns pending transitions and clears them
func (s *State) Edges() []Edge {
	if len(s.edges) == 0 {
		return nil
	}
	out := s.edges
	s.edges = nil
	return out
}

// Clear releases everything without recording edges
func (s *State) Clear() {
	clear(s.lastSeen)
	s.edges = nil
}
