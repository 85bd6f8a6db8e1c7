package input

// Action is what a key means to the game
type Action uint8

const (
	ActionNone Action = iota

	// Gameplay actions feed State and the per-step update
	ActionLeft
	ActionRight
	ActionJump
	ActionHit

	// System actions are handled by the driver loop
	ActionPause
	ActionRestart
	ActionOverlay
	ActionMute
	ActionQuit

	actionCount
)

// actionNames maps config names to actions
var actionNames = map[string]Action{
	"left":    ActionLeft,
	"right":   ActionRight,
	"jump":    ActionJump,
	"hit":     ActionHit,
	"pause":   ActionPause,
	"restart": ActionRestart,
	"overlay": ActionOverlay,
	"mute":    ActionMute,
	"quit":    ActionQuit,
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}

func (a Action) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return "none"
}

// Gameplay reports whether the action is held-tracked game input
func (a Action) Gameplay() bool {
	return a >= ActionLeft && a <= ActionHit
}
