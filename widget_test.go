package ui_test

import (
	"testing"

	"github.com/poorcraft/ui"
)

func TestButtonClick(t *testing.T) {
	clicks := 0
	b := ui.NewButton(10, 10, 100, 40, "OK", func() { clicks++ })

	b.OnPointerDown(50, 20, ui.PointerButtonLeft)
	b.OnPointerUp(50, 20, ui.PointerButtonLeft)

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestButtonClickCancelledByLeaving(t *testing.T) {
	clicks := 0
	b := ui.NewButton(10, 10, 100, 40, "OK", func() { clicks++ })

	b.OnPointerDown(50, 20, ui.PointerButtonLeft)
	b.OnPointerUp(500, 20, ui.PointerButtonLeft) // Released elsewhere

	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 when released off the button", clicks)
	}

	// The press was consumed; a release back on the button does nothing.
	b.OnPointerUp(50, 20, ui.PointerButtonLeft)
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 without a fresh press", clicks)
	}
}

func TestButtonIgnoresRightClick(t *testing.T) {
	clicks := 0
	b := ui.NewButton(10, 10, 100, 40, "OK", func() { clicks++ })

	b.OnPointerDown(50, 20, ui.PointerButtonRight)
	b.OnPointerUp(50, 20, ui.PointerButtonRight)

	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 for right button", clicks)
	}
}

func TestButtonDisabled(t *testing.T) {
	clicks := 0
	b := ui.NewButton(10, 10, 100, 40, "OK", func() { clicks++ })
	b.SetEnabled(false)

	b.OnPointerDown(50, 20, ui.PointerButtonLeft)
	b.OnPointerUp(50, 20, ui.PointerButtonLeft)

	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 when disabled", clicks)
	}
}

func TestCheckboxToggle(t *testing.T) {
	var last bool
	changes := 0
	c := ui.NewCheckbox(10, 10, 150, 24, "Fog", false, func(on bool) {
		last = on
		changes++
	})

	c.OnPointerDown(20, 20, ui.PointerButtonLeft)
	if !c.Checked || !last || changes != 1 {
		t.Errorf("after first toggle: Checked=%v last=%v changes=%d, want true/true/1",
			c.Checked, last, changes)
	}

	c.OnPointerDown(20, 20, ui.PointerButtonLeft)
	if c.Checked || last || changes != 2 {
		t.Errorf("after second toggle: Checked=%v last=%v changes=%d, want false/false/2",
			c.Checked, last, changes)
	}
}

func TestCheckboxIgnoresOutsidePress(t *testing.T) {
	c := ui.NewCheckbox(10, 10, 150, 24, "Fog", false, nil)

	c.OnPointerDown(500, 500, ui.PointerButtonLeft)
	if c.Checked {
		t.Error("press outside bounds should not toggle")
	}
}

func TestSliderValueClampedOnCreate(t *testing.T) {
	s := ui.NewSlider(0, 0, 200, 20, 0, 100, 250, nil)
	if s.Value != 100 {
		t.Errorf("Value = %v, want clamped 100", s.Value)
	}
}

func TestSliderDragSetsValue(t *testing.T) {
	var got float32
	s := ui.NewSlider(0, 0, 210, 20, 0, 100, 0, func(v float32) { got = v })

	// The grab is 10 wide, so the usable track spans 200px with a 5px
	// margin each side. Pressing at the track center yields 50.
	s.OnPointerDown(105, 10, ui.PointerButtonLeft)
	if got != 50 {
		t.Errorf("value at track center = %v, want 50", got)
	}

	// Drag to the far right end, past the track.
	s.OnPointerMove(1000, 10)
	if got != 100 {
		t.Errorf("value past right end = %v, want 100", got)
	}

	// Release ends the drag; further movement must not change the value.
	s.OnPointerUp(1000, 10, ui.PointerButtonLeft)
	s.OnPointerMove(105, 10)
	if got != 100 {
		t.Errorf("value after release = %v, want unchanged 100", got)
	}
}

func TestSliderIgnoresOutsidePress(t *testing.T) {
	changes := 0
	s := ui.NewSlider(0, 0, 200, 20, 0, 100, 50, func(float32) { changes++ })

	s.OnPointerDown(300, 10, ui.PointerButtonLeft)
	s.OnPointerMove(120, 10)

	if changes != 0 {
		t.Errorf("changes = %d, want 0 for a press outside bounds", changes)
	}
	if s.Value != 50 {
		t.Errorf("Value = %v, want unchanged 50", s.Value)
	}
}

func TestButtonHoverAnimation(t *testing.T) {
	b := ui.NewButton(10, 10, 100, 40, "OK", nil)

	b.OnPointerMove(50, 20)
	if !b.Hovered() {
		t.Fatal("pointer over bounds should set hover")
	}

	b.OnPointerMove(500, 500)
	if b.Hovered() {
		t.Error("pointer off bounds should clear hover")
	}
}

func TestLabelAutosizesOnRender(t *testing.T) {
	l := ui.NewLabel(10, 10, "hi")
	fonts := ui.NewFontRenderer(20) // Degraded: measures 0, line height 20

	dl := ui.AcquireDrawList()
	defer ui.ReleaseDrawList(dl)

	l.Render(dl, fonts)

	b := l.Bounds()
	if b.W != 0 {
		t.Errorf("degraded label width = %v, want 0", b.W)
	}
	if b.H != 20 {
		t.Errorf("degraded label height = %v, want the line height 20", b.H)
	}
}
