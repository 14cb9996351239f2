package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionFire)
	f.Set(ActionLeft)
	f.Set(ActionNone)

	got := f.Actions()
	want := []Action{ActionLeft, ActionFire, ActionLeft}
	if len(got) != len(want) {
		t.Fatalf("Actions() len = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %s, expected %s", i, got[i], want[i])
		}
	}
	if !f.Has(ActionFire) || f.Has(ActionPause) {
		t.Error("Has() does not match the recorded actions")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := FrameOf(ActionUp, ActionConfirm)
	c := f.Clone()

	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Clear() left %d actions", f.Len())
	}
	if c.Len() != 2 || !c.Has(ActionConfirm) {
		t.Errorf("clone should keep its actions after the source is cleared, got %v", c.Actions())
	}
}

func TestActionString(t *testing.T) {
	if ActionShapeTriangle.String() != "Triangle" {
		t.Errorf("ActionShapeTriangle.String() = %q", ActionShapeTriangle.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
