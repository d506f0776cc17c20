package ui

// Style defines the visual appearance of the widget set. Widgets read it
// at render time; screens may hold several styles and swap them.
type Style struct {
	// Text
	TextColor         uint32
	TextDisabledColor uint32
	ShadowText        bool // draw widget labels with a drop shadow

	// Buttons
	ButtonColor         uint32
	ButtonHoveredColor  uint32
	ButtonActiveColor   uint32
	ButtonDisabledColor uint32
	ButtonBorderColor   uint32

	// Checkbox
	CheckboxBoxColor   uint32
	CheckboxCheckColor uint32

	// Slider
	SliderTrackColor  uint32
	SliderFillColor   uint32
	SliderGrabColor   uint32
	SliderGrabHovered uint32

	// Text field
	InputBoxColor        uint32
	InputBoxFocusedColor uint32
	InputCursorColor     uint32

	// Sizing
	TextScale     float32
	ButtonPadding float32
}

// DefaultStyle returns the stock dark theme.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,
		ShadowText:        true,

		ButtonColor:         RGBAf(0.16, 0.16, 0.22, 0.92),
		ButtonHoveredColor:  RGBAf(0.26, 0.30, 0.42, 0.95),
		ButtonActiveColor:   RGBAf(0.32, 0.38, 0.52, 1.0),
		ButtonDisabledColor: RGBAf(0.12, 0.12, 0.14, 0.80),
		ButtonBorderColor:   RGBAf(0.45, 0.50, 0.62, 0.90),

		CheckboxBoxColor:   RGBAf(0.14, 0.14, 0.18, 0.95),
		CheckboxCheckColor: RGBAf(0.45, 0.75, 0.85, 1.0),

		SliderTrackColor:  RGBAf(0.12, 0.12, 0.16, 0.90),
		SliderFillColor:   RGBAf(0.30, 0.55, 0.70, 0.95),
		SliderGrabColor:   RGBAf(0.55, 0.70, 0.80, 1.0),
		SliderGrabHovered: RGBAf(0.70, 0.85, 0.95, 1.0),

		InputBoxColor:        RGBAf(0.10, 0.10, 0.14, 0.95),
		InputBoxFocusedColor: RGBAf(0.14, 0.16, 0.22, 0.98),
		InputCursorColor:     RGBAf(0.85, 0.90, 0.95, 1.0),

		TextScale:     1.0,
		ButtonPadding: 8,
	}
}

// defaultStyle is the style widgets use unless one is set explicitly.
var defaultStyle = DefaultStyle()
