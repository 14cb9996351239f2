package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shape-shifter/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{"1", runeKey('1'), core.ActionShapeCircle, false},
		{"2", runeKey('2'), core.ActionShapeTriangle, false},
		{"3", runeKey('3'), core.ActionShapeCube, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
		{"back is platform only", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestDuelKeyMapSplitsKeyboard(t *testing.T) {
	km := NewKeyMapper(DuelKeyMap())

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire},
		{runeKey('1'), core.ActionShapeCircle},
		{runeKey('a'), core.ActionP2Left},
		{runeKey('d'), core.ActionP2Right},
		{runeKey('w'), core.ActionP2Up},
		{runeKey('s'), core.ActionP2Down},
		{runeKey('f'), core.ActionP2Fire},
		{runeKey('z'), core.ActionP2Circle},
		{runeKey('x'), core.ActionP2Triangle},
		{runeKey('c'), core.ActionP2Cube},
		{runeKey('p'), core.ActionPause},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if action, _ := km.MapKey(tt.msg); action != tt.action {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), action, tt.action)
			}
		})
	}
}

func TestDefaultKeyMapHasNoSecondPlayer(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	for _, r := range "fzc" {
		if action, _ := km.MapKey(runeKey(r)); action != core.ActionNone {
			t.Errorf("%q should be unbound in single-player, got %v", r, action)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame) {
		t.Fatal("space is not a quit key")
	}
	km.MapKeyToFrame(runeKey('3'), &frame)
	km.MapKeyToFrame(runeKey('x'), &frame)

	if !frame.Has(core.ActionFire) || !frame.Has(core.ActionShapeCube) {
		t.Errorf("Expected fire and cube, got %v", frame.Actions())
	}
	if len(frame.Actions()) != 2 {
		t.Errorf("Unbound keys should not add intents, got %v", frame.Actions())
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should be a quit request")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("Quit should never reach the game")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{"k", runeKey('k'), MenuActionUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{"j", runeKey('j'), MenuActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{"q", runeKey('q'), MenuActionQuit},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, MenuActionNext},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, MenuActionNext},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, MenuActionPrev},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, MenuActionPrev},
		{"other", runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
				t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	if got := enabledBindings(keys.FullHelp()); got != 14 {
		t.Errorf("FullHelp should show 14 single-player bindings, got %d", got)
	}
	if got := enabledBindings(DuelKeyMap().FullHelp()); got != 22 {
		t.Errorf("FullHelp should show 22 duel bindings, got %d", got)
	}
}

func enabledBindings(cols [][]key.Binding) int {
	n := 0
	for _, col := range cols {
		for _, b := range col {
			if b.Enabled() {
				n++
			}
		}
	}
	return n
}
