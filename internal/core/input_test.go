package core

import "testing"

func TestInputFrameHeldSurvivesClear(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionLeft, true)
	f.Set(ActionJump)
	f.Click(3, 4)

	f.Clear()

	if f.Has(ActionJump) {
		t.Error("Clear should drop discrete actions")
	}
	if f.Pointer.Valid {
		t.Error("Clear should drop the pointer")
	}
	if !f.IsHeld(ActionLeft) {
		t.Error("held keys should survive Clear")
	}

	f.Hold(ActionLeft, false)
	if f.IsHeld(ActionLeft) {
		t.Error("released key should not be held")
	}
}

func TestInputFramePressCountsAsHeld(t *testing.T) {
	var f InputFrame
	f.Set(ActionFire)
	if !f.IsHeld(ActionFire) {
		t.Error("a press should count as held for its frame")
	}
}

func TestInputFrameClickSetsPlace(t *testing.T) {
	f := NewInputFrame()
	f.Click(7, 2)
	if !f.Has(ActionPlace) {
		t.Error("Click should trigger ActionPlace")
	}
	if f.Pointer != (Pointer{X: 7, Y: 2, Valid: true}) {
		t.Errorf("Pointer = %+v", f.Pointer)
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionBuy)
	c := f.Clone()
	f.Clear()
	if !c.Has(ActionBuy) {
		t.Error("clone should keep its own actions")
	}
}

func TestSelectIndex(t *testing.T) {
	tests := []struct {
		action   Action
		expected int
	}{
		{ActionSelect1, 0},
		{ActionSelect3, 2},
		{ActionSelect5, 4},
		{ActionJump, -1},
	}
	for _, tc := range tests {
		if got := tc.action.SelectIndex(); got != tc.expected {
			t.Errorf("%v.SelectIndex() = %d, expected %d", tc.action, got, tc.expected)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int]string{
		0:       "0",
		999:     "999",
		25000:   "25,000",
		1234567: "1,234,567",
	}
	for n, expected := range tests {
		if got := FormatNumber(n); got != expected {
			t.Errorf("FormatNumber(%d) = %q, expected %q", n, got, expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	if ParseColor("pink") != ColorPink {
		t.Error("pink should parse")
	}
	if ParseColor("nope") != ColorDefault {
		t.Error("unknown color should map to default")
	}
}
