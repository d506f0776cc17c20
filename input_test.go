package ui_test

import (
	"testing"

	"github.com/poorcraft/ui"
)

func TestInputMouseEdges(t *testing.T) {
	in := ui.NewInputState()

	in.SetMouseButton(ui.PointerButtonLeft, true)
	if !in.MousePressed(ui.PointerButtonLeft) || !in.MouseDown(ui.PointerButtonLeft) {
		t.Error("press should set both pressed edge and down state")
	}

	in.Reset()
	if in.MousePressed(ui.PointerButtonLeft) {
		t.Error("pressed edge should clear on Reset")
	}
	if !in.MouseDown(ui.PointerButtonLeft) {
		t.Error("down state should persist across Reset")
	}

	in.SetMouseButton(ui.PointerButtonLeft, false)
	if !in.MouseReleased(ui.PointerButtonLeft) {
		t.Error("release should set the released edge")
	}
	if in.MouseDown(ui.PointerButtonLeft) {
		t.Error("down state should clear on release")
	}
}

func TestInputRepeatedPressNoDoubleEdge(t *testing.T) {
	in := ui.NewInputState()

	in.SetMouseButton(ui.PointerButtonLeft, true)
	in.Reset()
	in.SetMouseButton(ui.PointerButtonLeft, true) // Still held
	if in.MousePressed(ui.PointerButtonLeft) {
		t.Error("holding a button must not re-trigger the pressed edge")
	}
}

func TestInputKeyEdges(t *testing.T) {
	in := ui.NewInputState()

	in.SetKey(ui.KeyEnter, true)
	if !in.KeyPressed(ui.KeyEnter) || !in.KeyDown(ui.KeyEnter) {
		t.Error("key press should set both edge and down state")
	}

	in.Reset()
	if in.KeyPressed(ui.KeyEnter) {
		t.Error("key edge should clear on Reset")
	}
	if !in.KeyDown(ui.KeyEnter) {
		t.Error("key down state should persist across Reset")
	}
}

func TestInputCharsAndWheelClearOnReset(t *testing.T) {
	in := ui.NewInputState()
	in.AddChar('a')
	in.AddChar('b')
	in.WheelY = 3

	if len(in.Chars) != 2 {
		t.Fatalf("len(Chars) = %d, want 2", len(in.Chars))
	}

	in.Reset()
	if len(in.Chars) != 0 {
		t.Errorf("len(Chars) after Reset = %d, want 0", len(in.Chars))
	}
	if in.WheelY != 0 {
		t.Errorf("WheelY after Reset = %v, want 0", in.WheelY)
	}
}

func TestInputOutOfRangeIgnored(t *testing.T) {
	in := ui.NewInputState()

	in.SetMouseButton(ui.PointerButton(99), true)
	if in.MouseDown(ui.PointerButton(99)) {
		t.Error("out-of-range button should be ignored")
	}

	in.SetKey(ui.Key(-1), true)
	if in.KeyDown(ui.Key(-1)) {
		t.Error("out-of-range key should be ignored")
	}
}
