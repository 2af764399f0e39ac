package core

import "testing"

func TestInputFrameHeldAndPressed(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.Hold(ActionLeft)

	if !f.Has(ActionFire) {
		t.Error("Has(Fire) should be true")
	}
	if f.IsHeld(ActionFire) {
		t.Error("IsHeld(Fire) should be false, it was only pressed")
	}
	if !f.IsHeld(ActionLeft) {
		t.Error("IsHeld(Left) should be true")
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionFire) || f.IsHeld(ActionLeft) {
		t.Error("Clear should reset pressed and held actions")
	}
	if !clone.Has(ActionFire) || !clone.IsHeld(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) || f.IsHeld(ActionUp) {
		t.Error("zero InputFrame should report nothing")
	}
	f.Hold(ActionUp)
	if !f.IsHeld(ActionUp) {
		t.Error("Hold on zero InputFrame should allocate")
	}
}
