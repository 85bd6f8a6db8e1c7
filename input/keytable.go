package input

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// runeAliases name keys that are awkward as bare config strings
var runeAliases = map[string]rune{
	"space": ' ',
	"comma": ',',
	"slash": '/',
}

// specialKeys name non-rune keys accepted in config
var specialKeys = map[string]tcell.Key{
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"f1":     tcell.KeyF1,
	"ctrl-c": tcell.KeyCtrlC,
}

// KeyTable maps terminal keys to actions
// Rune bindings are stored lowercase and matched case-insensitively
type KeyTable struct {
	Runes map[rune]Action
	Keys  map[tcell.Key]Action
}

// DefaultKeyTable returns the WASD + space layout with arrow-key aliases
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'a': ActionLeft,
			'd': ActionRight,
			'w': ActionJump,
			' ': ActionHit,
			'p': ActionPause,
			'r': ActionRestart,
			'?': ActionOverlay,
			'm': ActionMute,
			'q': ActionQuit,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyUp:     ActionJump,
			tcell.KeyF1:     ActionOverlay,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

// Lookup returns the action bound to a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[unicode.ToLower(ev.Rune())]
	}
	return kt.Keys[ev.Key()]
}

// binding is one parsed key: a rune or a special key
type binding struct {
	r      rune
	k      tcell.Key
	isRune bool
}

// parseKey resolves a single character, a rune alias ("space") or a special key name ("left")
func parseKey(key string) (binding, error) {
	name := strings.ToLower(strings.TrimSpace(key))
	if name == "" {
		return binding{}, fmt.Errorf("empty key")
	}
	if r, ok := runeAliases[name]; ok {
		return binding{r: r, isRune: true}, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return binding{r: r, isRune: true}, nil
	}
	if k, ok := specialKeys[name]; ok {
		return binding{k: k}, nil
	}
	return binding{}, fmt.Errorf("unknown key %q", key)
}

func (kt *KeyTable) owner(b binding) Action {
	if b.isRune {
		return kt.Runes[b.r]
	}
	return kt.Keys[b.k]
}

// Bind makes key the only rune binding of action
// Special-key aliases of action (arrows, F1, Esc) stay bound. A key that
// already belongs to another action is rejected, never taken over.
func (kt *KeyTable) Bind(action Action, key string) error {
	if action == ActionNone || action >= actionCount {
		return fmt.Errorf("bind %q: invalid action", key)
	}

	b, err := parseKey(key)
	if err != nil {
		return fmt.Errorf("bind %s: %w", action, err)
	}
	if owner := kt.owner(b); owner != ActionNone && owner != action {
		return fmt.Errorf("bind %s: key %q already bound to %s", action, key, owner)
	}

	kt.unbind(action)
	if b.isRune {
		kt.Runes[b.r] = action
	} else {
		kt.Keys[b.k] = action
	}
	return nil
}

// BindNamed applies a config map of action name to key
// Every named action drops its rune bindings first, so keys may be swapped
// between named actions. Names apply in sorted order; one key named twice is an error.
func (kt *KeyTable) BindNamed(bindings map[string]string) error {
	names := slices.Sorted(maps.Keys(bindings))
	actions := make([]Action, len(names))
	used := make(map[binding]string, len(names))

	for i, name := range names {
		action, ok := ActionByName(name)
		if !ok {
			return fmt.Errorf("unknown action %q", name)
		}
		b, err := parseKey(bindings[name])
		if err != nil {
			return fmt.Errorf("bind %s: %w", name, err)
		}
		if other, dup := used[b]; dup {
			return fmt.Errorf("key %q bound to both %s and %s", bindings[name], other, name)
		}
		used[b] = name
		actions[i] = action
	}

	for _, action := range actions {
		kt.unbind(action)
	}
	for i, name := range names {
		if err := kt.Bind(actions[i], bindings[name]); err != nil {
			return err
		}
	}
	return nil
}

// unbind drops the rune bindings of action
func (kt *KeyTable) unbind(action Action) {
	for r, a := range kt.Runes {
		if a == action {
			delete(kt.Runes, r)
		}
	}
}
