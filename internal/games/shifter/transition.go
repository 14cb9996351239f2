package shifter

// Fade parameters: alpha moves by 1/transitionSteps per transition tick.
const (
	transitionSteps = 20 // 0.05 per step
)

// FadeDirection is the state of the level transition.
type FadeDirection int

const (
	FadeIdle FadeDirection = iota
	FadeOut
	FadeIn
)

// String returns the state name.
func (d FadeDirection) String() string {
	switch d {
	case FadeOut:
		return "fading_out"
	case FadeIn:
		return "fading_in"
	default:
		return "idle"
	}
}

// Transition is the fade-out/fade-in sequence played between levels.
// Alpha is stored as a step count so the sequence is exact: twenty
// increments to 1.0, twenty decrements to 0.0, then completion.
type Transition struct {
	dir  FadeDirection
	step int
	from Level
	to   Level
}

// Start begins a transition from one level to the next. Starting while
// active restarts the fade at alpha 0.
func (t *Transition) Start(from, to Level) {
	t.dir = FadeOut
	t.step = 0
	t.from = from
	t.to = to
}

// Advance applies one transition tick and reports whether the transition
// completed on this tick. Completion is reported exactly once; an idle
// transition never completes.
func (t *Transition) Advance() bool {
	switch t.dir {
	case FadeOut:
		t.step++
		if t.step >= transitionSteps {
			t.step = transitionSteps
			t.dir = FadeIn
		}
	case FadeIn:
		t.step--
		if t.step <= 0 {
			t.step = 0
			t.dir = FadeIdle
			return true
		}
	}
	return false
}

// Cancel stops the transition without completing it.
func (t *Transition) Cancel() {
	t.dir = FadeIdle
	t.step = 0
}

// Active reports whether a fade is running.
func (t *Transition) Active() bool {
	return t.dir != FadeIdle
}

// Direction returns the current fade state.
func (t *Transition) Direction() FadeDirection {
	return t.dir
}

// Alpha returns the overlay opacity in [0, 1].
func (t *Transition) Alpha() float64 {
	return float64(t.step) / transitionSteps
}

// Target returns the level being transitioned to.
func (t *Transition) Target() Level {
	return t.to
}

// Shown returns the level whose banner is displayed: the old level while
// fading out, the new one while fading in.
func (t *Transition) Shown() Level {
	if t.dir == FadeIn {
		return t.to
	}
	return t.from
}
