package ui_test

import (
	"testing"

	"github.com/poorcraft/ui"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want float32
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tc := range cases {
		if got := ui.Clamp(tc.value, tc.min, tc.max); got != tc.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.value, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestScaleFractions(t *testing.T) {
	if got := ui.ScaleWidthFraction(1920, 0.25, 100, 600); got != 480 {
		t.Errorf("ScaleWidthFraction = %v, want 480", got)
	}
	if got := ui.ScaleWidthFraction(200, 0.25, 100, 600); got != 100 {
		t.Errorf("ScaleWidthFraction small window = %v, want clamped 100", got)
	}
	if got := ui.ScaleHeightFraction(10000, 0.5, 100, 600); got != 600 {
		t.Errorf("ScaleHeightFraction large window = %v, want clamped 600", got)
	}
}

func TestCenterAxis(t *testing.T) {
	if got := ui.CenterAxis(800, 200); got != 300 {
		t.Errorf("CenterAxis(800, 200) = %v, want 300", got)
	}
	// An extent larger than the span centers negative; callers decide
	// whether that is acceptable.
	if got := ui.CenterAxis(100, 200); got != -50 {
		t.Errorf("CenterAxis(100, 200) = %v, want -50", got)
	}
}

func TestButtonSizing(t *testing.T) {
	if got := ui.ButtonWidth(1.0); got != 200 {
		t.Errorf("ButtonWidth(1.0) = %v, want 200", got)
	}
	if got := ui.ButtonWidth(0.1); got != 180 {
		t.Errorf("ButtonWidth(0.1) = %v, want the 180 floor", got)
	}
	if got := ui.ButtonWidth(10); got != 400 {
		t.Errorf("ButtonWidth(10) = %v, want the 400 ceiling", got)
	}

	if got := ui.ButtonHeight(1.0); got != 40 {
		t.Errorf("ButtonHeight(1.0) = %v, want the 40 floor", got)
	}
	if got := ui.ButtonHeight(3.0); got != 60 {
		t.Errorf("ButtonHeight(3.0) = %v, want 60", got)
	}
}

func TestButtonStackHeight(t *testing.T) {
	if got := ui.ButtonStackHeight(3, 40, 12); got != 144 {
		t.Errorf("ButtonStackHeight(3, 40, 12) = %v, want 144", got)
	}
	if got := ui.ButtonStackHeight(1, 40, 12); got != 40 {
		t.Errorf("ButtonStackHeight(1, 40, 12) = %v, want 40 (no spacing)", got)
	}
	if got := ui.ButtonStackHeight(0, 40, 12); got != 0 {
		t.Errorf("ButtonStackHeight(0, ...) = %v, want 0", got)
	}
	if got := ui.ButtonStackHeight(-2, 40, 12); got != 0 {
		t.Errorf("ButtonStackHeight(-2, ...) = %v, want 0", got)
	}
}

func TestPanelSizing(t *testing.T) {
	if got := ui.PanelWidth(1920, 1.0); got != 600 {
		t.Errorf("PanelWidth(1920, 1.0) = %v, want the 600 ceiling", got)
	}
	if got := ui.PanelWidth(640, 1.0); got != 400 {
		t.Errorf("PanelWidth(640, 1.0) = %v, want the 400 floor", got)
	}
	if got := ui.PanelHeight(1080, 1.0); got != 648 {
		t.Errorf("PanelHeight(1080, 1.0) = %v, want 648", got)
	}
	if got := ui.PanelPadding(500); got != 40 {
		t.Errorf("PanelPadding(500) = %v, want 40", got)
	}
	if got := ui.PanelPadding(100); got != 24 {
		t.Errorf("PanelPadding(100) = %v, want the 24 floor", got)
	}
}

func TestCenterStack(t *testing.T) {
	if got := ui.CenterStack(1080, 480); got != 300 {
		t.Errorf("CenterStack(1080, 480) = %v, want 300", got)
	}
}
