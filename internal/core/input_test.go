package core

import "testing"

func TestInputFrameCounts(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionTap) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionTap)
	f.Set(ActionTap)
	f.Set(ActionPause)

	if f.Count(ActionTap) != 2 {
		t.Errorf("Count(Tap) = %d, expected 2", f.Count(ActionTap))
	}
	if !f.Has(ActionPause) {
		t.Error("Has(Pause) should be true")
	}

	f.Clear()
	if f.Has(ActionTap) {
		t.Error("Clear should reset actions")
	}

	var zero InputFrame
	if zero.Has(ActionTap) || zero.Count(ActionTap) != 0 {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionTap:     "Tap",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, expected := range tests {
		if a.String() != expected {
			t.Errorf("Action(%d).String() = %q, expected %q", a, a.String(), expected)
		}
	}
}
