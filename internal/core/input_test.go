package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) || !f.Empty() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionUp)
	f.Set(ActionConfirm)
	if !f.Has(ActionUp) || !f.Has(ActionConfirm) {
		t.Error("expected set actions to be reported")
	}
	if f.Has(ActionDown) {
		t.Error("unexpected action reported")
	}

	c := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}
	if !c.Has(ActionUp) || !c.Has(ActionConfirm) {
		t.Error("clone should be independent of the original")
	}
}

func TestInputOf(t *testing.T) {
	f := InputOf(ActionLeft, ActionMute)
	if !f.Has(ActionLeft) || !f.Has(ActionMute) || f.Has(ActionRight) {
		t.Errorf("unexpected frame %v", f.Actions)
	}
	if !InputOf().Empty() {
		t.Error("InputOf() should be empty")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionUp, "Up"},
		{ActionDensityUp, "DensityUp"},
		{ActionMute, "Mute"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
