//go:build !shifterdebug

package shifter

import "testing"

func TestContractViolationsClampInRelease(t *testing.T) {
	if got := NewLevel(0).Number(); got != 1 {
		t.Errorf("NewLevel(0).Number() = %d, expected clamp to 1", got)
	}

	lvl := NewLevel(1)
	lvl.AddPoints(-50)
	if lvl.CurrentPoints() != 0 {
		t.Errorf("negative points should be ignored, got %d", lvl.CurrentPoints())
	}

	e := NewEnemy(Shape(9), -10, NewLevel(1))
	if e.Kind != Circle || e.X != 0 {
		t.Errorf("invalid enemy should clamp to a Circle at x=0, got %s at %d", e.Kind, e.X)
	}
}
