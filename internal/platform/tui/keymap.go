package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/musou/internal/core"
)

// DefaultHoldTicks is how long a movement key counts as held after its last
// key event. Terminals only report presses and auto-repeat, never releases.
const DefaultHoldTicks = 8

// KeyMap defines the key bindings for the shooter.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Boost   key.Binding
	Fire    key.Binding
	Spread  key.Binding
	Shield  key.Binding
	Gravity key.Binding
	Hyper   key.Binding
	EMP     key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Spread, k.Shield, k.Gravity, k.Hyper, k.EMP, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Boost},
		{k.Fire, k.Spread, k.Shield, k.Gravity},
		{k.Hyper, k.EMP, k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Boost: key.NewBinding(
			key.WithKeys("shift+up", "shift+down", "shift+left", "shift+right"),
			key.WithHelp("shift+arrows", "boost"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Spread: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "spread"),
		),
		Shield: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shield"),
		),
		Gravity: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "gravity"),
		),
		Hyper: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hyper"),
		),
		EMP: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "emp"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions and keeps
// movement keys held for a short window after each key event.
type KeyMapper struct {
	keys      KeyMap
	holdTicks int
	held      map[core.Action]int // Remaining ticks per held action
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyMapper{
		keys:      DefaultKeyMap(),
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
	}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKeyToFrame records a key message in frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
		return true
	case key.Matches(msg, k.Boost):
		km.hold(core.ActionBoost)
		km.hold(direction(msg.String()))
	case key.Matches(msg, k.Up):
		km.hold(core.ActionUp)
	case key.Matches(msg, k.Down):
		km.hold(core.ActionDown)
	case key.Matches(msg, k.Left):
		km.hold(core.ActionLeft)
	case key.Matches(msg, k.Right):
		km.hold(core.ActionRight)
	case key.Matches(msg, k.Fire):
		frame.Set(core.ActionFire)
	case key.Matches(msg, k.Spread):
		frame.Set(core.ActionFire)
		frame.Hold(core.ActionSpread)
	case key.Matches(msg, k.Shield):
		frame.Set(core.ActionShield)
	case key.Matches(msg, k.Gravity):
		frame.Set(core.ActionGravity)
	case key.Matches(msg, k.Hyper):
		frame.Set(core.ActionHyper)
	case key.Matches(msg, k.EMP):
		frame.Set(core.ActionEMP)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
	}
	return false
}

// Apply adds the still-held actions to frame and ages every hold by one tick.
func (km *KeyMapper) Apply(frame *core.InputFrame) {
	for a, left := range km.held {
		frame.Hold(a)
		if left <= 1 {
			delete(km.held, a)
		} else {
			km.held[a] = left - 1
		}
	}
}

// Release drops every held action.
func (km *KeyMapper) Release() {
	clear(km.held)
}

func (km *KeyMapper) hold(a core.Action) {
	if a == core.ActionNone {
		return
	}
	km.held[a] = km.holdTicks
	// Opposite directions cancel in the simulation, so the newest one wins.
	if opp := opposite(a); opp != core.ActionNone {
		delete(km.held, opp)
	}
}

// direction returns the movement action of a shifted arrow key.
func direction(k string) core.Action {
	switch k {
	case "shift+up":
		return core.ActionUp
	case "shift+down":
		return core.ActionDown
	case "shift+left":
		return core.ActionLeft
	case "shift+right":
		return core.ActionRight
	}
	return core.ActionNone
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
