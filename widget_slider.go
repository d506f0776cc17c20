package ui

// sliderGrabWidth is the width of the draggable handle.
const sliderGrabWidth float32 = 10

// Slider is a horizontal value slider. The value is set from the pointer
// X position while pressed; OnChange fires on every change.
type Slider struct {
	WidgetBase

	Min, Max float32
	Value    float32
	Style    Style
	OnChange func(value float32)

	dragging bool
}

// NewSlider creates a slider at the given bounds. value is clamped into
// [min, max].
func NewSlider(x, y, width, height float32, min, max, value float32, onChange func(float32)) *Slider {
	return &Slider{
		WidgetBase: NewWidgetBase(x, y, width, height),
		Min:        min,
		Max:        max,
		Value:      clampf(value, min, max),
		Style:      defaultStyle,
		OnChange:   onChange,
	}
}

// fraction returns the value's normalized position in [0, 1].
func (s *Slider) fraction() float32 {
	if s.Max <= s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Render draws the track, the filled portion and the grab handle.
func (s *Slider) Render(dl *DrawList, fonts *FontRenderer) {
	if !s.Visible() {
		return
	}

	trackH := s.Height * 0.3
	trackY := s.Y + (s.Height-trackH)/2

	dl.AddRect(s.X, trackY, s.Width, trackH, s.Style.SliderTrackColor)
	dl.AddRect(s.X, trackY, s.Width*s.fraction(), trackH, s.Style.SliderFillColor)

	grabX := s.X + s.fraction()*(s.Width-sliderGrabWidth)
	grabColor := s.Style.SliderGrabColor
	if s.Hovered() || s.dragging {
		grabColor = s.Style.SliderGrabHovered
	}
	dl.AddRect(grabX, s.Y, sliderGrabWidth, s.Height, grabColor)
}

// OnPointerDown begins a drag and snaps the value to the press position.
func (s *Slider) OnPointerDown(x, y float32, button PointerButton) {
	if button != PointerButtonLeft || !s.Enabled() || !s.IsPointerOver(x, y) {
		return
	}
	s.dragging = true
	s.setFromPointer(x)
}

// OnPointerMove updates the value while dragging.
func (s *Slider) OnPointerMove(x, y float32) {
	s.WidgetBase.OnPointerMove(x, y)
	if s.dragging {
		s.setFromPointer(x)
	}
}

// OnPointerUp ends the drag on the primary button.
func (s *Slider) OnPointerUp(x, y float32, button PointerButton) {
	if button == PointerButtonLeft {
		s.dragging = false
	}
}

func (s *Slider) setFromPointer(x float32) {
	if s.Width <= sliderGrabWidth {
		return
	}

	frac := clampf((x-s.X-sliderGrabWidth/2)/(s.Width-sliderGrabWidth), 0, 1)
	newValue := s.Min + frac*(s.Max-s.Min)
	if newValue == s.Value {
		return
	}

	s.Value = newValue
	if s.OnChange != nil {
		s.OnChange(s.Value)
	}
}
