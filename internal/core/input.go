package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionLeft                 // Left arrow, A
	ActionRight                // Right arrow, D
	ActionUp                   // Up arrow, W
	ActionDown                 // Down arrow, S
	ActionFire                 // Space
	ActionShapeCircle          // 1
	ActionShapeTriangle        // 2
	ActionShapeCube            // 3
	ActionPause                // P
	ActionConfirm              // Enter - start or restart
	ActionQuit                 // Q, Ctrl+C - exit game/session

	// Second player on a shared keyboard.
	ActionP2Left     // A
	ActionP2Right    // D
	ActionP2Up       // W
	ActionP2Down     // S
	ActionP2Fire     // F
	ActionP2Circle   // Z
	ActionP2Triangle // X
	ActionP2Cube     // C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionShapeCircle:
		return "Circle"
	case ActionShapeTriangle:
		return "Triangle"
	case ActionShapeCube:
		return "Cube"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	case ActionP2Left:
		return "P2Left"
	case ActionP2Right:
		return "P2Right"
	case ActionP2Up:
		return "P2Up"
	case ActionP2Down:
		return "P2Down"
	case ActionP2Fire:
		return "P2Fire"
	case ActionP2Circle:
		return "P2Circle"
	case ActionP2Triangle:
		return "P2Triangle"
	case ActionP2Cube:
		return "P2Cube"
	default:
		return "Unknown"
	}
}

// InputFrame holds the intents collected for a single simulation tick.
// Intents keep their arrival order: three presses of Left are three moves.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make([]Action, 0, 8)}
}

// FrameOf builds a frame from the given actions, in order.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set appends an intent to this frame. ActionNone is dropped.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered at least once this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the intents of this frame in arrival order.
// The returned slice must not be modified.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of intents in this frame.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{actions: make([]Action, len(f.actions))}
	copy(clone.actions, f.actions)
	return clone
}
