package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shape-shifter/internal/core"
)

// KeyMap holds the game's key bindings. It implements help.KeyMap.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Fire       key.Binding
	Circle     key.Binding
	Triangle   key.Binding
	Cube       key.Binding
	Pause      key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding

	// Second player; unbound outside two-player games.
	P2Left     key.Binding
	P2Right    key.Binding
	P2Up       key.Binding
	P2Down     key.Binding
	P2Fire     key.Binding
	P2Circle   key.Binding
	P2Triangle key.Binding
	P2Cube     key.Binding
}

// DefaultKeyMap returns the default bindings: arrows or WASD to move,
// space to fire, 1/2/3 to change shape.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:       key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Up:         key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Fire:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire")),
		Circle:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "circle")),
		Triangle:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "triangle")),
		Cube:       key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "cube")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "levels")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// DuelKeyMap returns the shared-keyboard bindings: player one keeps the
// arrows, space and 1/2/3, player two gets WASD, F and Z/X/C.
func DuelKeyMap() KeyMap {
	k := DefaultKeyMap()
	k.Left = key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "p1 left"))
	k.Right = key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "p1 right"))
	k.Up = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "p1 up"))
	k.Down = key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "p1 down"))
	k.Fire = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "p1 fire"))

	k.P2Left = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "p2 left"))
	k.P2Right = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "p2 right"))
	k.P2Up = key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "p2 up"))
	k.P2Down = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "p2 down"))
	k.P2Fire = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "p2 fire"))
	k.P2Circle = key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "p2 circle"))
	k.P2Triangle = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "p2 triangle"))
	k.P2Cube = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "p2 cube"))
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Circle, k.Triangle, k.Cube, k.Pause, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Fire, k.Circle, k.Triangle, k.Cube},
		{k.P2Left, k.P2Right, k.P2Up, k.P2Down},
		{k.P2Fire, k.P2Circle, k.P2Triangle, k.P2Cube},
		{k.Pause, k.Confirm, k.Back},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys    KeyMap
	actions []boundAction
}

type boundAction struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a key mapper over the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{
		keys: keys,
		actions: []boundAction{
			{keys.Left, core.ActionLeft},
			{keys.Right, core.ActionRight},
			{keys.Up, core.ActionUp},
			{keys.Down, core.ActionDown},
			{keys.Fire, core.ActionFire},
			{keys.Circle, core.ActionShapeCircle},
			{keys.Triangle, core.ActionShapeTriangle},
			{keys.Cube, core.ActionShapeCube},
			{keys.Pause, core.ActionPause},
			{keys.Confirm, core.ActionConfirm},
			{keys.P2Left, core.ActionP2Left},
			{keys.P2Right, core.ActionP2Right},
			{keys.P2Up, core.ActionP2Up},
			{keys.P2Down, core.ActionP2Down},
			{keys.P2Fire, core.ActionP2Fire},
			{keys.P2Circle, core.ActionP2Circle},
			{keys.P2Triangle, core.ActionP2Triangle},
			{keys.P2Cube, core.ActionP2Cube},
		},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.keys.Quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.actions {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame appends the key's action to an input frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionNext // Next game mode
	MenuActionPrev // Previous game mode
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab", "right", "d", "l":
		return MenuActionNext
	case "shift+tab", "left", "a", "h":
		return MenuActionPrev
	}

	return MenuActionNone
}
