package ui

// Responsive layout helpers: pure functions mapping window dimensions and
// a user scale factor to clamped pixel sizes. Inputs are not validated
// beyond numeric clamping; an inverted min > max range is the caller's
// responsibility.

// Classic menu layout constants. These mirror the sizing conventions of
// traditional block-game menu screens.
const (
	MenuButtonWidth   float32 = 200
	MenuButtonHeight  float32 = 20
	MenuButtonSpacing float32 = 24
	MenuPanelPadding  float32 = 32
	MenuTitleScale    float32 = 2.0
	MenuSubtitleScale float32 = 1.2
	MenuLabelScale    float32 = 1.0
)

// Clamp limits value to [minVal, maxVal].
func Clamp(value, minVal, maxVal float32) float32 {
	return maxf(minVal, minf(maxVal, value))
}

// ScaleWidthFraction returns fraction of the total width, clamped.
func ScaleWidthFraction(totalWidth, fraction, minVal, maxVal float32) float32 {
	return Clamp(totalWidth*fraction, minVal, maxVal)
}

// ScaleHeightFraction returns fraction of the total height, clamped.
func ScaleHeightFraction(totalHeight, fraction, minVal, maxVal float32) float32 {
	return Clamp(totalHeight*fraction, minVal, maxVal)
}

// CenterAxis returns the coordinate that centers an extent inside a total
// span. Works for either axis.
func CenterAxis(total, extent float32) float32 {
	return (total - extent) / 2
}

// ButtonWidth computes a responsive menu button width, clamped to stay
// readable on small and large windows alike.
func ButtonWidth(uiScale float32) float32 {
	return Clamp(MenuButtonWidth*uiScale, 180, 400)
}

// ButtonHeight computes a responsive menu button height.
func ButtonHeight(uiScale float32) float32 {
	return Clamp(MenuButtonHeight*uiScale, 40, 80)
}

// ButtonSpacing derives stacked-button spacing from the button height.
func ButtonSpacing(buttonHeight float32) float32 {
	return buttonHeight * 0.3
}

// PanelWidth computes the ideal menu panel width, roughly half the window.
func PanelWidth(windowWidth, uiScale float32) float32 {
	return Clamp(windowWidth*0.5*uiScale, 400, 600)
}

// PanelHeight computes the ideal menu panel height, roughly 60% of the
// window.
func PanelHeight(windowHeight, uiScale float32) float32 {
	return Clamp(windowHeight*0.6*uiScale, 400, 700)
}

// PanelPadding derives inner panel padding from the panel width.
func PanelPadding(panelWidth float32) float32 {
	return Clamp(panelWidth*0.08, 24, 48)
}

// ButtonStackHeight returns the vertical space needed for a stack of
// equally sized, equally spaced buttons.
func ButtonStackHeight(buttonCount int, buttonHeight, spacing float32) float32 {
	if buttonCount <= 0 {
		return 0
	}
	return buttonHeight*float32(buttonCount) + spacing*float32(buttonCount-1)
}

// CenterStack returns the top Y coordinate that vertically centers a
// button stack of the given height.
func CenterStack(windowHeight, stackHeight float32) float32 {
	return CenterAxis(windowHeight, stackHeight)
}
